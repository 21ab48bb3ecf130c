package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON decoding. Duration
// fields use the [Duration] wrapper so settings files can write "30s" instead
// of nanosecond integers.
type StructuredJSONConfig struct {
	Build struct {
		ConfigPath string `json:"config_path"`
		Algorithm  string `json:"algorithm"`
		Profile    string `json:"profile"`
		DryRun     bool   `json:"dry_run"`
		Force      bool   `json:"force"`
		NoCheckEnv bool   `json:"no_check_env"`
		Verbose    bool   `json:"verbose"`
	} `json:"build,omitempty"`

	MetaMCP struct {
		BaseURL        string   `json:"base_url"`
		SessionToken   string   `json:"session_token"`
		CookieFile     string   `json:"cookie_file"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"metamcp,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Build: Build{
			ConfigPath: jsonCfg.Build.ConfigPath,
			Algorithm:  jsonCfg.Build.Algorithm,
			Profile:    jsonCfg.Build.Profile,
			DryRun:     jsonCfg.Build.DryRun,
			Force:      jsonCfg.Build.Force,
			NoCheckEnv: jsonCfg.Build.NoCheckEnv,
			Verbose:    jsonCfg.Build.Verbose,
		},
		MetaMCP: MetaMCP{
			BaseURL:        jsonCfg.MetaMCP.BaseURL,
			SessionToken:   jsonCfg.MetaMCP.SessionToken,
			CookieFile:     jsonCfg.MetaMCP.CookieFile,
			RequestTimeout: time.Duration(jsonCfg.MetaMCP.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
