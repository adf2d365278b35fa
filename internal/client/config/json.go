package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/imarchenko/stockroom/internal/flagx"
	"github.com/imarchenko/stockroom/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	BackendBaseURL string         `json:"backend_base_url"`
	AuthBasePath   string         `json:"auth_base_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DatabaseDSN    string         `json:"database_dsn"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c/-config flags. Missing file path means no JSON is loaded. Read or
// unmarshal errors panic (caller should recover if desired). Zero-valued
// fields in the file leave the corresponding Config fields untouched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BackendBaseURL != "" {
		cfg.BackendBaseURL = jc.BackendBaseURL
	}
	if jc.AuthBasePath != "" {
		cfg.AuthBasePath = jc.AuthBasePath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
}
