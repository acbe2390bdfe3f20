package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/address-parser/usaddress/address"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides: ADDRESS_EXPAND_STREETS,
// ADDRESS_SIMILARITY_JW_WEIGHT, ...
const EnvPrefix = "ADDRESS"

// SimilarityCfg weighs the metrics used to score street names
type SimilarityCfg struct {
	JWWeight  float64 `yaml:"jw_weight" json:"jw_weight" mapstructure:"jw_weight"`
	LevWeight float64 `yaml:"lev_weight" json:"lev_weight" mapstructure:"lev_weight"`
}

// ParserCfg configures the address parser and the parse service
type ParserCfg struct {
	ExpandStreets bool          `yaml:"expand_streets" json:"expand_streets" mapstructure:"expand_streets"`
	CacheSize     int           `yaml:"cache_size" json:"cache_size" mapstructure:"cache_size"`
	Similarity    SimilarityCfg `yaml:"similarity" json:"similarity" mapstructure:"similarity"`
	LogLevel      string        `yaml:"log_level" json:"log_level" mapstructure:"log_level"`
}

// Default returns the configuration used when nothing is set
func Default() ParserCfg {
	return ParserCfg{
		ExpandStreets: true,
		CacheSize:     10000,
		Similarity: SimilarityCfg{
			JWWeight:  0.6,
			LevWeight: 0.4,
		},
		LogLevel: "info",
	}
}

// Load reads a YAML file through viper. Keys missing from the file keep
// their defaults, and ADDRESS_* environment variables override both. An
// empty path reads defaults and environment only.
func Load(path string) (ParserCfg, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return ParserCfg{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg ParserCfg
	if err := v.Unmarshal(&cfg); err != nil {
		return ParserCfg{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return ParserCfg{}, err
	}
	return cfg, nil
}

// Parse decodes a YAML document over the defaults
func Parse(b []byte) (ParserCfg, error) {
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return ParserCfg{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return ParserCfg{}, err
	}
	return cfg, nil
}

// Validate rejects negative sizes and weights
func (c ParserCfg) Validate() error {
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}
	if c.Similarity.JWWeight < 0 || c.Similarity.LevWeight < 0 {
		return errors.New("similarity weights must not be negative")
	}
	return nil
}

// Options converts the configuration into parser options
func (c ParserCfg) Options(logger *zap.Logger) []address.Option {
	opts := []address.Option{
		address.WithExpandStreets(c.ExpandStreets),
		address.WithSimilarityWeights(c.Similarity.JWWeight, c.Similarity.LevWeight),
	}
	if logger != nil {
		opts = append(opts, address.WithLogger(logger))
	}
	return opts
}

// NewLogger builds a production zap logger at the configured level
func (c ParserCfg) NewLogger() (*zap.Logger, error) {
	level := c.LogLevel
	if level == "" {
		level = "info"
	}
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	config := zap.NewProductionConfig()
	config.Level = atomicLevel
	return config.Build()
}

func setDefaults(v *viper.Viper, d ParserCfg) {
	v.SetDefault("expand_streets", d.ExpandStreets)
	v.SetDefault("cache_size", d.CacheSize)
	v.SetDefault("similarity.jw_weight", d.Similarity.JWWeight)
	v.SetDefault("similarity.lev_weight", d.Similarity.LevWeight)
	v.SetDefault("log_level", d.LogLevel)
}
