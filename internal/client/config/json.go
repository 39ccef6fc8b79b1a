package config

import (
	"encoding/json"
	"os"

	"github.com/Guru-25/FreeFusion/internal/flagx"
	"github.com/Guru-25/FreeFusion/internal/timex"
)

// jsonConfig is a DTO used only for JSON unmarshalling. timex.Duration lets
// the file specify the timeout either as a string ("15s") or as integer
// nanoseconds.
type jsonConfig struct {
	GatewayBaseURL string         `json:"gateway_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJSON overlays cfg with values loaded from the JSON file named by the
// -c/-config flag. When no file is given, nothing changes. Read or unmarshal
// errors panic; config parsing runs before anything worth preserving.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.GatewayBaseURL != "" {
		cfg.GatewayBaseURL = jc.GatewayBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
