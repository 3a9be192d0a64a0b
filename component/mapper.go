// Package component is the entry point the host calls to map a request's Didomi cookie to a
// consent verdict.
package component

import (
	"github.com/edgee-cloud/didomi-component/config"
	"github.com/edgee-cloud/didomi-component/consent"
	"github.com/edgee-cloud/didomi-component/errortypes"
	"github.com/edgee-cloud/didomi-component/logger"
	"github.com/edgee-cloud/didomi-component/metrics"
	"github.com/edgee-cloud/didomi-component/privacy/didomi"
)

// Mapper resolves settings, decodes the consent cookie and decides the verdict. It keeps no
// per-call state and is safe for concurrent use.
type Mapper struct {
	resolveSettings func(raw map[string]string) (*config.Settings, error)
	decoder         didomi.Decoder
	metricsEngine   metrics.MetricsEngine
}

// NewMapper builds a Mapper. A nil decoder or metrics engine falls back to the cookie decoder
// and the no-op engine.
func NewMapper(decoder didomi.Decoder, metricsEngine metrics.MetricsEngine) *Mapper {
	if decoder == nil {
		decoder = didomi.CookieDecoder{}
	}
	if metricsEngine == nil {
		metricsEngine = metrics.NewNilMetricsEngine()
	}
	return &Mapper{
		resolveSettings: config.NewSettings,
		decoder:         decoder,
		metricsEngine:   metricsEngine,
	}
}

var defaultMapper = NewMapper(nil, nil)

// Map computes the consent verdict for one request using the default Mapper.
func Map(cookies, settings consent.Dict) consent.Verdict {
	return defaultMapper.Map(cookies, settings)
}

// Map computes the consent verdict for one request. It never fails: settings or cookie
// problems are logged and yield VerdictPending.
func (m *Mapper) Map(cookies, settings consent.Dict) consent.Verdict {
	verdict := m.mapVerdict(cookies, settings)
	m.metricsEngine.RecordConsentVerdict(verdict)
	return verdict
}

func (m *Mapper) mapVerdict(cookies, settings consent.Dict) consent.Verdict {
	resolved, err := m.resolveSettings(settings.Map())
	if err != nil {
		m.degrade("Could not get settings", err)
		return consent.VerdictPending
	}

	payload, err := m.decoder.Decode(cookies.Map(), resolved.CookieName)
	if err != nil {
		m.degrade("Could not get cookies", err)
		return consent.VerdictPending
	}

	return didomi.Decide(*payload)
}

func (m *Mapper) degrade(msg string, err error) {
	reason := errortypes.CodeLabel(err)
	logger.Warn(msg, "reason", reason, "error", err.Error())
	m.metricsEngine.RecordConsentError(metrics.ErrorReason(reason))
}
