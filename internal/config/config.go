// Package config provides chatlint configuration with CLI > env > file precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for chatlint.
type Config struct {
	// Kind forces the payload kind to validate against: message,
	// completion, completion_chunk, or embedding. Empty means detect
	// from the payload itself.
	Kind string `yaml:"kind"`

	// Format selects report output: "text" or "markdown".
	Format string `yaml:"format"`

	// Interactive starts a prompt loop reading one payload per line.
	Interactive bool `yaml:"interactive"`

	// Files are the payload files to validate, from positional args.
	Files []string `yaml:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Format: "text",
	}
}

// Load builds a Config by merging CLI flags, environment variables, and
// config files. Precedence: CLI args > env vars > config files (cwd then
// $HOME).
func Load(args []string) (*Config, error) {
	cfg := DefaultConfig()

	// Load config files (lowest precedence first, then overwrite).
	if home, err := os.UserHomeDir(); err == nil {
		_ = cfg.loadYAML(filepath.Join(home, ".chatlint.yml"))
	}
	_ = cfg.loadYAML(".chatlint.yml")

	// Load .env files.
	_ = godotenv.Load()

	// Apply env vars.
	cfg.applyEnv()

	// Parse CLI flags (highest precedence).
	if err := cfg.parseFlags(args); err != nil {
		return nil, err
	}

	switch cfg.Format {
	case "text", "markdown":
	default:
		return nil, fmt.Errorf("unknown format %q (want text or markdown)", cfg.Format)
	}
	return cfg, nil
}

func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) applyEnv() {
	if v := os.Getenv("CHATLINT_KIND"); v != "" {
		c.Kind = v
	}
	if v := os.Getenv("CHATLINT_FORMAT"); v != "" {
		c.Format = v
	}
}

func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("chatlint", flag.ContinueOnError)
	fs.StringVar(&c.Kind, "kind", c.Kind, "Payload kind (message, completion, completion_chunk, embedding; default: detect)")
	fs.StringVar(&c.Format, "format", c.Format, "Report format (text, markdown)")
	fs.BoolVarP(&c.Interactive, "interactive", "i", c.Interactive, "Read payloads interactively, one per line")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.Files = fs.Args()
	return nil
}
