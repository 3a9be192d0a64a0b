package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/common/expfmt"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"

	"github.com/edgee-cloud/didomi-component/component"
	"github.com/edgee-cloud/didomi-component/consent"
	"github.com/edgee-cloud/didomi-component/errortypes"
	metricsConf "github.com/edgee-cloud/didomi-component/metrics/config"
)

func newMapCmd(a *app) *cobra.Command {
	var (
		cookies      []string
		settings     []string
		printMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Print the consent verdict for the given cookies",
		Example: `  didomi-component map --cookie didomi_token=eyJwdXJwb3NlcyI6eyJkaXNhYmxlZCI6W119fQ%3D%3D
  didomi-component map --setting cookie_name=edgee_cookie --cookie edgee_cookie=...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cookieDict, cookieErrs := parsePairs("cookie", cookies)
			settingDict, settingErrs := parsePairs("setting", settings)
			if errs := append(cookieErrs, settingErrs...); len(errs) > 0 {
				return errortypes.NewAggregateErrors("invalid arguments", errs)
			}

			engine := metricsConf.NewMetricsEngine(a.cfg)
			mapper := component.NewMapper(nil, engine)

			verdict := mapper.Map(cookieDict, append(defaultSettings(a.cfg.Settings), settingDict...))
			fmt.Fprintln(cmd.OutOrStdout(), verdict)

			if printMetrics {
				return writeMetrics(cmd.OutOrStdout(), engine)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&cookies, "cookie", nil, "Cookie as name=value, repeatable")
	cmd.Flags().StringArrayVar(&settings, "setting", nil, "Setting as key=value, repeatable; overrides the config file")
	cmd.Flags().BoolVar(&printMetrics, "print-metrics", false, "Print the enabled metrics registries after the verdict")

	return cmd
}

// parsePairs splits name=value arguments, keeping their order so a repeated name resolves to the
// last one.
func parsePairs(kind string, raw []string) (consent.Dict, []error) {
	dict := make(consent.Dict, 0, len(raw))
	var errs []error
	for _, r := range raw {
		key, value, ok := strings.Cut(r, "=")
		if !ok || key == "" {
			errs = append(errs, fmt.Errorf("%s %q: expected name=value", kind, r))
			continue
		}
		dict = append(dict, consent.Pair{Key: key, Value: value})
	}
	return dict, errs
}

// defaultSettings orders the configured settings by key so the output does not depend on map
// iteration.
func defaultSettings(m map[string]string) consent.Dict {
	dict := consent.DictFromMap(m)
	sort.Slice(dict, func(i, j int) bool { return dict[i].Key < dict[j].Key })
	return dict
}

func writeMetrics(w io.Writer, engine *metricsConf.DetailedMetricsEngine) error {
	if engine.GoMetrics != nil {
		gometrics.WriteOnce(engine.GoMetrics.MetricsRegistry, w)
	}
	if engine.PrometheusMetrics != nil {
		families, err := engine.PrometheusMetrics.Registry.Gather()
		if err != nil {
			return err
		}
		for _, family := range families {
			if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
				return err
			}
		}
	}
	return nil
}
