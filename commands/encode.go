package commands

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/edgee-cloud/didomi-component/privacy/didomi"
	"github.com/edgee-cloud/didomi-component/util/jsonutil"
)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [json]",
		Short: "Encode a JSON consent document as a Didomi cookie value",
		Long: `encode reads a Didomi consent document from the argument, or from stdin when no
argument is given, and prints the cookie value a browser would send.`,
		Example: `  didomi-component encode '{"purposes":{"disabled":[]}}'`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var document []byte
			if len(args) == 1 {
				document = []byte(args[0])
			} else {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				document = bytes.TrimSpace(b)
			}

			var payload didomi.Payload
			if err := jsonutil.Unmarshal(document, &payload); err != nil {
				return fmt.Errorf("invalid consent document: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), didomi.CookieEncoder{}.EncodeRaw(document))
			return nil
		},
	}
}
