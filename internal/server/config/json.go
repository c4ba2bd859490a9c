package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/youquote/internal/flagx"
	"github.com/dmitrijs2005/youquote/internal/timex"
)

// JsonConfig is the file form of Config. TokenValidity accepts "90m" as
// well as integer nanoseconds.
type JsonConfig struct {
	Address       string         `json:"address"`
	SecretKey     string         `json:"secret_key"`
	TokenValidity timex.Duration `json:"token_validity"`
	LogLevel      string         `json:"log_level"`
}

// parseJson overlays the file named by -c/-config onto config. Keys absent
// from the file leave the current values alone. An unreadable or malformed
// file panics.
func parseJson(config *Config) {
	path := flagx.JSONConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Address != "" {
		config.Address = c.Address
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidity.Duration != 0 {
		config.TokenValidity = c.TokenValidity.Duration
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
