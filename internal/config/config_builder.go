package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects partial configs in priority order. The first error
// of any source is kept and reported by build.
type configBuilder struct {
	environ map[string]string
	args    []string

	configs []*StructuredConfig
	err     error
}

func newConfigBuilder(environ map[string]string, args []string) *configBuilder {
	return &configBuilder{
		environ: environ,
		args:    args,
		configs: make([]*StructuredConfig, 0, 3),
	}
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.add(parseEnv(b.environ))
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add(parseFlags(b.args))
}

// withJSON reads the config file named by the last source that set JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	var path string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	return b.add(parseFile(path))
}

func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, cfg)
	return b
}

// build merges the collected configs so that the earliest non-zero value of
// a field wins, fills the rest from defaultConfig and validates the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, cfg := range append(b.configs, defaultConfig()) {
		if err := mergo.Merge(merged, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := merged.validate(); err != nil {
		return nil, err
	}

	return merged, nil
}
