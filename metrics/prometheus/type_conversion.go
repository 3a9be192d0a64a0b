package prometheusmetrics

import (
	"github.com/edgee-cloud/didomi-component/consent"
	"github.com/edgee-cloud/didomi-component/metrics"
)

func verdictsAsString() []string {
	values := consent.Verdicts()
	valuesAsString := make([]string, len(values))
	for i, v := range values {
		valuesAsString[i] = v.String()
	}
	return valuesAsString
}

func errorReasonsAsString() []string {
	values := metrics.ErrorReasons()
	valuesAsString := make([]string, len(values))
	for i, v := range values {
		valuesAsString[i] = string(v)
	}
	return valuesAsString
}
