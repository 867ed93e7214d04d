package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvbap/flow"
)

// Separation modes.
const (
	ModeSingle       = "single"
	ModeSubtours     = "subtours"
	ModeMostViolated = "most-violated"
)

// ErrUnknownKeys is returned when a TOML file contains keys Config does not define.
var ErrUnknownKeys = errors.New("config: unknown keys")

// Config is the lvbap runtime configuration.
type Config struct {
	Log        LogConfig        `toml:"log"`
	Separation SeparationConfig `toml:"separation"`
	Workers    int              `toml:"workers" validate:"gte=1,lte=256"`
	Metrics    MetricsConfig    `toml:"metrics"`
}

// LogConfig selects logrus level and formatter.
type LogConfig struct {
	Level  string `toml:"level" validate:"oneof=trace debug info warn error"`
	Format string `toml:"format" validate:"oneof=text json"`
}

// SeparationConfig selects the separation operation and its strategy.
type SeparationConfig struct {
	Algorithm string `toml:"algorithm" validate:"oneof=dinic edmonds-karp ford-fulkerson push-relabel"`
	Mode      string `toml:"mode" validate:"oneof=single subtours most-violated"`
	MaxCuts   int    `toml:"max_cuts" validate:"gte=0"`
}

// MetricsConfig controls the Prometheus textfile dump. Empty disables it.
type MetricsConfig struct {
	Textfile string `toml:"textfile"`
}

// Default returns production-safe defaults.
func Default() Config {
	return Config{
		Log:     LogConfig{Level: "info", Format: "text"},
		Workers: 4,
		Separation: SeparationConfig{
			Algorithm: flow.AlgoDinic.String(),
			Mode:      ModeMostViolated,
			MaxCuts:   10,
		},
	}
}

// Load decodes the TOML file at path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return finish(cfg, meta)
}

// Parse decodes TOML text over Default and validates the result.
func Parse(data string) (Config, error) {
	cfg := Default()
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return finish(cfg, meta)
}

func finish(cfg Config, meta toml.MetaData) (Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)

		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field constraint and reports all violations at once.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: %w", err)
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s: %q fails %s=%s", fe.Namespace(), fmt.Sprint(fe.Value()), fe.Tag(), fe.Param())
	}

	return fmt.Errorf("config: invalid: %s", strings.Join(msgs, "; "))
}

// Algorithm returns the configured max-flow strategy.
func (c Config) Algorithm() (flow.Algorithm, error) {
	return flow.ParseAlgorithm(c.Separation.Algorithm)
}

// Logger builds a logrus logger honouring Log.Level and Log.Format.
func (c Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	l := logrus.New()
	l.SetLevel(level)
	if c.Log.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return l, nil
}
