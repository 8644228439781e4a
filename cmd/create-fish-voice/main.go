// Package main provides create-fish-voice, which clones a voice on Fish Audio
// from one audio file.
//
// Usage:
//
//	create-fish-voice <api_key> <audio_path> <user_id>
//
// On success the last line of stdout is VOICE_MODEL_ID:<id> and the exit
// status is 0. Every failure prints a single ERROR: line and exits 1.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/digitaltwins/fishvoice/pkg/cli"
	"github.com/digitaltwins/fishvoice/pkg/voiceclone"
)

// newRootCmd builds the command. The exit status of the last run is stored
// in status.
func newRootCmd(open voiceclone.Opener, stdout, stderr io.Writer, status *int) *cobra.Command {
	return &cobra.Command{
		Use:   "create-fish-voice <api_key> <audio_path> <user_id>",
		Short: "Create a Fish Audio voice model from an audio file",
		Args:  cobra.ArbitraryArgs,
		// Arguments are positional only; anything flag-like is a value.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Run: func(cmd *cobra.Command, args []string) {
			requester := voiceclone.New(open, stdout, stderr,
				voiceclone.WithLogger(cli.NewLogger(stderr, false)),
			)
			*status = requester.Run(cmd.Context(), args)
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	status := 1
	cmd := newRootCmd(voiceclone.FishAudioOpener(), os.Stdout, os.Stderr, &status)
	cmd.SetArgs(os.Args[1:])
	if err := cmd.ExecuteContext(ctx); err != nil {
		status = 1
	}

	stop()
	os.Exit(status)
}
