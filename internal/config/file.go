package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// fileConfig is the layout of the JSON or YAML configuration file.
type fileConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		DriverPercent int      `json:"driver_percent" yaml:"driver_percent"`
		LogLevel      string   `json:"log_level" yaml:"log_level"`
		Version       string   `json:"version" yaml:"version"`
	} `json:"app,omitempty" yaml:"app"`

	Storage struct {
		DB struct {
			Driver       string `json:"driver" yaml:"driver"`
			DSN          string `json:"dsn" yaml:"dsn"`
			MaxOpenConns int    `json:"max_open_conns" yaml:"max_open_conns"`
		} `json:"db,omitempty" yaml:"db"`
	} `json:"storage,omitempty" yaml:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server,omitempty" yaml:"server"`
}

// parseFile reads the configuration file at path, YAML for .yaml/.yml and
// JSON otherwise.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return fc.structured(), nil
}

func (fc *fileConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  fc.App.TokenSignKey,
			TokenIssuer:   fc.App.TokenIssuer,
			TokenDuration: time.Duration(fc.App.TokenDuration),
			DriverPercent: fc.App.DriverPercent,
			LogLevel:      fc.App.LogLevel,
			Version:       fc.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver:       fc.Storage.DB.Driver,
				DSN:          fc.Storage.DB.DSN,
				MaxOpenConns: fc.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     fc.Server.HTTPAddress,
			RequestTimeout:  time.Duration(fc.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(fc.Server.ShutdownTimeout),
		},
	}
}

// Duration reads either a Go duration string ("1h", "30s") or a number of
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var ns int64
		if err := node.Decode(&ns); err != nil {
			return err
		}
		*d = Duration(ns)
		return nil
	}

	return d.parse(node.Value)
}

func (d *Duration) parse(s string) error {
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}

	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
