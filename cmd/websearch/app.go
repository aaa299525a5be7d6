package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/websearch/config"
	"github.com/randalmurphal/websearch/format"
	"github.com/randalmurphal/websearch/internal/logging"
	"github.com/randalmurphal/websearch/ollama"
	"github.com/randalmurphal/websearch/websearch"
)

// loadConfig builds the effective config: defaults, then the --config file,
// then the environment, then explicit flags.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg := config.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, path, err
		}
	}
	cfg.LoadFromEnv()

	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}
	if cmd.Flags().Changed("transport") {
		cfg.Transport, _ = cmd.Flags().GetString("transport")
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr, _ = cmd.Flags().GetString("addr")
	}
	if cmd.Flags().Changed("max-chars") {
		cfg.MaxChars, _ = cmd.Flags().GetInt("max-chars")
	}
	if cmd.Flags().Changed("no-truncate") {
		noTruncate, _ := cmd.Flags().GetBool("no-truncate")
		cfg.Truncate = format.Bool(!noTruncate)
	}
	return cfg, path, nil
}

// setup loads and validates config, initializes logging and builds the
// service.
func setup(cmd *cobra.Command) (config.Config, string, *websearch.Service, error) {
	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return cfg, path, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, path, nil, fmt.Errorf("invalid config: %w", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, path, nil, err
	}
	logging.Init(level, cfg.LogFormat, cmd.ErrOrStderr())

	opts := append(cfg.ClientOptions(), ollama.WithLogger(logging.New("ollama")))
	client := ollama.NewClient(cfg.APIKey, opts...)
	svc := websearch.NewService(client, websearch.WithLogger(logging.New("websearch")))
	return cfg, path, svc, nil
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Int("max-chars", format.DefaultMaxChars, "maximum characters of output")
	cmd.Flags().Bool("no-truncate", false, "print full content regardless of size")
}
