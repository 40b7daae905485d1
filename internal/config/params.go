package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// ModelParam is a single tunable coefficient with its optimization bounds.
type ModelParam struct {
	Value       float64 `json:"value" mapstructure:"value"`
	Description string  `json:"description" mapstructure:"description"`
	OptiMin     float64 `json:"opti_min" mapstructure:"opti_min"`
	OptiMax     float64 `json:"opti_max" mapstructure:"opti_max"`
}

// ModelConfig holds every coefficient consumed by the rating engine, keyed
// by "section.name" (e.g. "unit_config.pass_off_sf").
type ModelConfig struct {
	Params map[string]ModelParam
}

// SectionUnit and SectionElo are the two config sections.
const (
	SectionUnit = "unit_config"
	SectionElo  = "elo_config"
)

// LoadModelConfig reads a nested parameter file.
func LoadModelConfig(path string) (*ModelConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading model config: %w", err)
	}

	var nested map[string]map[string]ModelParam
	if err := v.Unmarshal(&nested); err != nil {
		return nil, fmt.Errorf("parsing model config: %w", err)
	}

	cfg := &ModelConfig{Params: make(map[string]ModelParam)}
	for section, params := range nested {
		for name, param := range params {
			cfg.Params[section+"."+name] = param
		}
	}
	return cfg, nil
}

// Save writes the config back in the nested file layout. Load then Save is
// lossless for all four ModelParam fields.
func (c *ModelConfig) Save(path string) error {
	nested := make(map[string]map[string]ModelParam)
	for key, param := range c.Params {
		section, name, ok := strings.Cut(key, ".")
		if !ok {
			return fmt.Errorf("parameter %q missing section prefix", key)
		}
		if nested[section] == nil {
			nested[section] = make(map[string]ModelParam)
		}
		nested[section][name] = param
	}
	data, err := json.MarshalIndent(nested, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding model config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing model config: %w", err)
	}
	return nil
}

// Clone returns a deep copy, letting optimizer workers mutate their own
// config without sharing state.
func (c *ModelConfig) Clone() *ModelConfig {
	params := make(map[string]ModelParam, len(c.Params))
	for k, v := range c.Params {
		params[k] = v
	}
	return &ModelConfig{Params: params}
}

// Param returns a parameter by its flat key.
func (c *ModelConfig) Param(key string) (ModelParam, error) {
	p, ok := c.Params[key]
	if !ok {
		return ModelParam{}, fmt.Errorf("missing config parameter: %q", key)
	}
	return p, nil
}

// ApplyUpdates sets new values for existing parameters. Unknown keys are an
// error so optimizer typos surface immediately.
func (c *ModelConfig) ApplyUpdates(updates map[string]float64) error {
	for key, value := range updates {
		p, ok := c.Params[key]
		if !ok {
			return fmt.Errorf("cannot update unknown parameter: %q", key)
		}
		p.Value = value
		c.Params[key] = p
	}
	return nil
}

// SectionKeys returns the sorted flat keys of one section. Sorting keeps
// optimizer feature ordering deterministic across runs.
func (c *ModelConfig) SectionKeys(section string) []string {
	keys := make([]string, 0, len(c.Params))
	for k := range c.Params {
		if strings.HasPrefix(k, section+".") {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
