// Package config loads server and CLI settings from YAML or TOML files and
// the environment.
//
//	cfg, err := config.Load("websearch.yaml")
//	cfg.LoadFromEnv()
//	if err := cfg.Validate(); err != nil { ... }
//
// Watch reloads a file whenever it changes on disk, which lets a running
// server pick up new output defaults without a restart.
package config
