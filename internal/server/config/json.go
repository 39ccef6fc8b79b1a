package config

import (
	"encoding/json"
	"os"

	"github.com/Guru-25/FreeFusion/internal/flagx"
	"github.com/Guru-25/FreeFusion/internal/timex"
)

// jsonConfig is a DTO used only for JSON unmarshalling.
type jsonConfig struct {
	EndpointAddr                string         `json:"endpoint_addr"`
	DatabaseDSN                 string         `json:"database_dsn"`
	RedisAddr                   string         `json:"redis_addr"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	CORSAllowedOrigins          []string       `json:"cors_allowed_origins"`
}

// parseJSON overlays cfg with values loaded from the JSON file named by the
// -c/-config flag. Missing file flag means no overlay. Read or unmarshal
// errors panic; configuration runs before anything worth preserving.
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

	if jc.EndpointAddr != "" {
		cfg.EndpointAddr = jc.EndpointAddr
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.RedisAddr != "" {
		cfg.RedisAddr = jc.RedisAddr
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.AccessTokenValidityDuration.Duration != 0 {
		cfg.AccessTokenValidityDuration = jc.AccessTokenValidityDuration.Duration
	}
	if len(jc.CORSAllowedOrigins) > 0 {
		cfg.CORSAllowedOrigins = jc.CORSAllowedOrigins
	}
}
