package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/hupe1980/wordgrid"
	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration.
//
// Values are resolved with priority: flags > env > file > defaults.
type Config struct {
	Strategies  []string     `yaml:"strategies"`
	Concurrency int          `yaml:"concurrency"`
	Hash        HashConfig   `yaml:"hash"`
	Trie        TrieConfig   `yaml:"trie"`
	Linear      LinearConfig `yaml:"linear"`
	Log         LogConfig    `yaml:"log"`
}

// HashConfig configures the hash strategy.
type HashConfig struct {
	WordLen int `yaml:"word_len"`
}

// TrieConfig configures the trie strategy.
type TrieConfig struct {
	MaxWordLen int `yaml:"max_word_len"`
	ChunkSize  int `yaml:"chunk_size"`
}

// LinearConfig configures the linear strategy.
type LinearConfig struct {
	Delimiter string `yaml:"delimiter"`
}

// LogConfig configures diagnostic output on stderr.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	strategies := make([]string, len(wordgrid.Kinds))
	for i, k := range wordgrid.Kinds {
		strategies[i] = string(k)
	}

	return Config{
		Strategies:  strategies,
		Concurrency: 0, // GOMAXPROCS
		Hash:        HashConfig{WordLen: 4},
		Trie:        TrieConfig{MaxWordLen: 0, ChunkSize: 4096},
		Linear:      LinearConfig{Delimiter: "."},
		Log:         LogConfig{Level: "warn", Format: "text"},
	}
}

// LoadConfig loads configuration from an optional YAML file and
// WORDGRID_* environment variables, then validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	loadConfigFromEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func loadConfigFromEnv(cfg *Config) {
	if v := os.Getenv("WORDGRID_STRATEGIES"); v != "" {
		cfg.Strategies = strings.Split(v, ",")
	}
	if v := os.Getenv("WORDGRID_CONCURRENCY"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Concurrency = i
		}
	}
	if v := os.Getenv("WORDGRID_HASH_WORD_LEN"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Hash.WordLen = i
		}
	}
	if v := os.Getenv("WORDGRID_TRIE_MAX_WORD_LEN"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Trie.MaxWordLen = i
		}
	}
	if v := os.Getenv("WORDGRID_LINEAR_DELIMITER"); v != "" {
		cfg.Linear.Delimiter = v
	}
	if v := os.Getenv("WORDGRID_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("WORDGRID_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// Validate checks that the configuration is valid.
func (c Config) Validate() error {
	if len(c.Strategies) == 0 {
		return errors.New("strategies must not be empty")
	}
	if _, err := c.Kinds(); err != nil {
		return err
	}
	if c.Hash.WordLen < 1 {
		return fmt.Errorf("hash.word_len must be >= 1, got %d", c.Hash.WordLen)
	}
	if c.Trie.MaxWordLen < 0 {
		return fmt.Errorf("trie.max_word_len must be >= 0, got %d", c.Trie.MaxWordLen)
	}
	if len(c.Linear.Delimiter) != 1 {
		return fmt.Errorf("linear.delimiter must be a single byte, got %q", c.Linear.Delimiter)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// Kinds returns the configured strategies.
func (c Config) Kinds() ([]wordgrid.Kind, error) {
	kinds := make([]wordgrid.Kind, 0, len(c.Strategies))
	for _, s := range c.Strategies {
		k, err := wordgrid.ParseKind(s)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Logger returns the logger described by the log section.
func (c Config) Logger() *wordgrid.Logger {
	level, _ := parseLevel(c.Log.Level)
	if c.Log.Format == "json" {
		return wordgrid.NewJSONLogger(level)
	}
	return wordgrid.NewTextLogger(level)
}

// Options returns the solver options described by the configuration.
func (c Config) Options() []wordgrid.Option {
	return []wordgrid.Option{
		wordgrid.WithWordLen(c.Hash.WordLen),
		wordgrid.WithMaxWordLen(c.Trie.MaxWordLen),
		wordgrid.WithChunkSize(c.Trie.ChunkSize),
		wordgrid.WithDelimiter(c.Linear.Delimiter[0]),
		wordgrid.WithConcurrency(c.Concurrency),
		wordgrid.WithLogger(c.Logger()),
	}
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
