package commands

import (
	"flag"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/edgee-cloud/didomi-component/config"
)

const configFileName = "didomi"

// app carries what the subcommands share once the root command has loaded the configuration.
type app struct {
	configFile string
	cfg        *config.Configuration
}

// NewRootCmd creates the root command. goFlags are exposed as persistent flags so glog's
// -v, -logtostderr and friends keep working.
func NewRootCmd(revision string, goFlags *flag.FlagSet) *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "didomi-component",
		Short:         "Map a Didomi consent cookie to a consent verdict",
		Long:          `didomi-component reads the Didomi consent token from a set of cookies and prints pending, granted or denied.`,
		Version:       revision,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
	}

	if goFlags != nil {
		cmd.PersistentFlags().AddGoFlagSet(goFlags)
	}
	cmd.PersistentFlags().StringVar(&a.configFile, "config", configFileName, "Config file name, looked up in . and /etc/config (empty disables)")

	cmd.AddCommand(
		newMapCmd(a),
		newEncodeCmd(),
	)

	return cmd
}

func (a *app) loadConfig() error {
	v := viper.New()
	if err := config.SetupViper(v, a.configFile); err != nil {
		return err
	}
	cfg, err := config.New(v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}
