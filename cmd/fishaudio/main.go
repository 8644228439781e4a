// Package main provides the Fish Audio CLI tool.
//
// Usage:
//
//	fishaudio [flags] <service> <command> [args]
//
// Services:
//
//	wallet   - Account credit
//	model    - Voice model management (clone, get, delete)
//	tts      - Speech synthesis
//	config   - Configuration management
//
// Configuration:
//
//	The CLI stores configuration in ~/.fishvoice/fishaudio/
//	Use 'fishaudio config' commands to manage contexts. Without a context,
//	FISH_AUDIO_API_KEY is read from the environment or a local .env file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/digitaltwins/fishvoice/cmd/fishaudio/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := commands.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
