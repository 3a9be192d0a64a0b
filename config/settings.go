package config

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/edgee-cloud/didomi-component/errortypes"
)

// DefaultCookieName is the cookie the Didomi SDK writes its consent token to.
const DefaultCookieName = "didomi_token"

// Settings holds the per-call options supplied by the host.
type Settings struct {
	// CookieName is the cookie holding the consent payload.
	CookieName string `mapstructure:"cookie_name"`
}

// settingKeys lists the options NewSettings understands. Everything else is ignored.
var settingKeys = []string{"cookie_name"}

// NewSettings resolves the raw host settings, applying defaults for anything not supplied.
// Keys are matched exactly.
func NewSettings(raw map[string]string) (*Settings, error) {
	v := viper.New()
	setSettingDefaults(v)

	for _, key := range settingKeys {
		if value, ok := raw[key]; ok {
			v.Set(key, value)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings, func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = true
	}); err != nil {
		return nil, &errortypes.InvalidSettings{
			Message: fmt.Sprintf("invalid settings: %v", err),
			Cause:   err,
		}
	}
	return &settings, nil
}

func setSettingDefaults(v *viper.Viper) {
	v.SetDefault("cookie_name", DefaultCookieName)
}
