// Package config loads sieve runs from YAML.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"spireseed/pkg/game/filter"
	"spireseed/pkg/game/seed"
	"spireseed/pkg/game/sieve"
)

// Config describes one sieve run. Seeds are seed strings; a leading '#'
// reads the rest as a decimal seed.
type Config struct {
	Start     seed.Seed `yaml:"start"`
	End       seed.Seed `yaml:"end"`
	Workers   int       `yaml:"workers,omitempty"`
	ChunkSize uint64    `yaml:"chunk_size,omitempty"`
	Filter    string    `yaml:"filter"`
	Ascension bool      `yaml:"ascension"`
	LogLevel  string    `yaml:"log_level"`
}

// Default scans every seed for a floor six bottleneck on ascension maps.
func Default() Config {
	return Config{
		Start:     0,
		End:       seed.Seed(-1),
		ChunkSize: sieve.DefaultChunkSize,
		Filter:    "bottleneck(6)",
		Ascension: true,
		LogLevel:  logrus.InfoLevel.String(),
	}
}

// Load reads path over the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer f.Close()
	cfg, err := Read(f)
	return cfg, errors.Wrap(err, path)
}

// Read decodes YAML from r over the defaults. Unknown keys are errors.
func Read(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decode config")
	}
	return cfg, cfg.Validate()
}

// Validate checks the range, the log level and the filter expression.
func (c Config) Validate() error {
	if c.End.Uint64() < c.Start.Uint64() {
		return errors.Wrapf(sieve.ErrEmptyRange, "start %s is after end %s", c.Start, c.End)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	if _, err := c.CompileFilter(); err != nil {
		return err
	}
	return nil
}

// CompileFilter parses the filter expression.
func (c Config) CompileFilter() (filter.Filter, error) {
	return filter.Options{Ascension: c.Ascension}.ParseExpression(c.Filter)
}

// Level returns the configured log level, or info when it does not parse.
func (c Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// Sieve builds the sieve the config describes.
func (c Config) Sieve(log *logrus.Entry) (*sieve.Sieve, error) {
	f, err := c.CompileFilter()
	if err != nil {
		return nil, err
	}
	return &sieve.Sieve{
		Start:     c.Start.Uint64(),
		End:       c.End.Uint64(),
		Filter:    f,
		Workers:   c.Workers,
		ChunkSize: c.ChunkSize,
		Log:       log,
	}, nil
}

// YAML encodes c.
func (c Config) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, errors.Wrap(err, "encode config")
	}
	return buf.Bytes(), enc.Close()
}
