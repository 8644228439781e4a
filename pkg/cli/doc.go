// Package cli provides common CLI utilities for the fishvoice command-line
// tools.
//
// This package includes:
//   - Configuration management (named contexts holding API credentials)
//   - Output formatting (JSON, YAML, raw)
//   - Request file loading (YAML/JSON)
//   - Terminal print helpers and a slog logger for verbose mode
//
// Configuration is stored in ~/.fishvoice/<app>/, supporting multiple
// contexts similar to kubectl.
//
// Example usage:
//
//	cfg, err := cli.LoadConfig("fishaudio")
//
//	ctx, err := cfg.ResolveContext(name)
//
//	cli.Output(result, cli.OutputOptions{
//	    Format: cli.FormatJSON,
//	    File:   outputPath,
//	})
package cli
