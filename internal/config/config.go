// Package config loads the tuning constants and process settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"facescore/internal/calibration"
	"facescore/internal/pose"
	"facescore/internal/quality"
	"facescore/internal/scoring"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultEnvFile   = ".env"
	defaultLogLevel  = "info"
	defaultLogFormat = "json"

	envConfigPath = "FACESCORE_CONFIG"
	envLogLevel   = "LOG_LEVEL"
	envLogFormat  = "LOG_FORMAT"
)

// ErrInvalid is returned when a tuning file or setting fails validation.
var ErrInvalid = errors.New("config: invalid")

var validate = validator.New()

// Tuning is the single structure holding every tunable constant.
type Tuning struct {
	Pose        pose.Params        `yaml:"pose"`
	Quality     quality.Params     `yaml:"quality"`
	Calibration calibration.Params `yaml:"calibration"`
	Scoring     scoring.Params     `yaml:"scoring"`
}

// Default returns the production tuning.
func Default() Tuning {
	return Tuning{
		Pose:        pose.DefaultParams(),
		Quality:     quality.DefaultParams(),
		Calibration: calibration.DefaultParams(),
		Scoring:     scoring.DefaultParams(),
	}
}

// Validate checks every constant against its declared bounds.
func (t Tuning) Validate() error {
	if err := validate.Struct(t); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Namespace())
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Parse overlays YAML onto the defaults. Keys that are absent keep their
// default value; unknown keys are rejected.
func Parse(data []byte) (Tuning, error) {
	t := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("%w: parse tuning: %v", ErrInvalid, err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// LoadFile reads a tuning file. An empty path yields the defaults.
func LoadFile(path string) (Tuning, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning file %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("tuning file %s: %w", path, err)
	}
	return t, nil
}

// Marshal encodes t as YAML, suitable for writing a starting tuning file.
func Marshal(t Tuning) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return nil, fmt.Errorf("encode tuning: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode tuning: %w", err)
	}
	return buf.Bytes(), nil
}

// Settings are the process-level options read from the environment.
type Settings struct {
	ConfigPath string
	LogLevel   string `validate:"oneof=debug info warn error"`
	LogFormat  string `validate:"oneof=json console"`
}

// Option customises LoadSettings.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile   string
	envMap    map[string]string
	systemEnv bool
}

// WithEnvFile reads the given dotenv file. An empty path disables it.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) { o.envFile = path }
}

// WithEnvMap supplies values that take precedence over every other source.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) { o.envMap = values }
}

// WithoutSystemEnv ignores the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) { o.systemEnv = false }
}

// LoadSettings merges the dotenv file, the process environment and explicit
// values, in increasing precedence. A missing default .env file is not an
// error.
func LoadSettings(opts ...Option) (Settings, error) {
	o := loaderOptions{envFile: defaultEnvFile, systemEnv: true}
	for _, opt := range opts {
		opt(&o)
	}

	values := map[string]string{}
	if o.envFile != "" {
		fileValues, err := godotenv.Read(o.envFile)
		switch {
		case err == nil:
			for k, v := range fileValues {
				values[k] = v
			}
		case errors.Is(err, os.ErrNotExist) && o.envFile == defaultEnvFile:
		default:
			return Settings{}, fmt.Errorf("read env file %s: %w", o.envFile, err)
		}
	}
	if o.systemEnv {
		for _, key := range []string{envConfigPath, envLogLevel, envLogFormat} {
			if v, ok := os.LookupEnv(key); ok {
				values[key] = v
			}
		}
	}
	for k, v := range o.envMap {
		values[k] = v
	}

	s := Settings{
		ConfigPath: strings.TrimSpace(values[envConfigPath]),
		LogLevel:   strings.ToLower(strings.TrimSpace(values[envLogLevel])),
		LogFormat:  strings.ToLower(strings.TrimSpace(values[envLogFormat])),
	}
	if s.LogLevel == "" {
		s.LogLevel = defaultLogLevel
	}
	if s.LogFormat == "" {
		s.LogFormat = defaultLogFormat
	}
	if err := validate.Struct(s); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return s, nil
}

// Load reads the settings and the tuning file they point at.
func Load(opts ...Option) (Settings, Tuning, error) {
	s, err := LoadSettings(opts...)
	if err != nil {
		return Settings{}, Tuning{}, err
	}
	t, err := LoadFile(s.ConfigPath)
	if err != nil {
		return Settings{}, Tuning{}, err
	}
	return s, t, nil
}
