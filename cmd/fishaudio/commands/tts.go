package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/digitaltwins/fishvoice/pkg/cli"
	"github.com/digitaltwins/fishvoice/pkg/fishaudio"
)

var ttsCmd = &cobra.Command{
	Use:   "tts",
	Short: "Synthesize speech from text",
	Long: `Synthesize speech from text with a voice model.

The request comes from flags or from a request file (-f, "-" for stdin).
Flags override the file. The voice model defaults to the context's
default_reference_id. Without -o the audio is saved under
~/.fishvoice/fishaudio/data/; "-o -" writes the raw audio to stdout.

Example request file (tts.yaml):
  text: Hello, this is my cloned voice.
  reference_id: 7f92f8afb8ec43bf81429cc1c9199cb1
  format: mp3
  mp3_bitrate: 128
  latency: normal

Examples:
  fishaudio -c myctx tts --text "Hello" --reference-id 7f92f8af -o hello.mp3
  fishaudio -c myctx tts -f tts.yaml -o hello.mp3 --json
  echo '{"text":"Hi"}' | fishaudio tts -f - -o - | ffplay -`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		var req fishaudio.TTSRequest
		switch path := getInputFile(); path {
		case "":
		case "-":
			if err := cli.LoadRequestFrom(cmd.InOrStdin(), &req); err != nil {
				return err
			}
		default:
			if err := loadRequest(path, &req); err != nil {
				return err
			}
		}

		flags := cmd.Flags()
		if flags.Changed("text") {
			if req.Text, err = flags.GetString("text"); err != nil {
				return fmt.Errorf("failed to read 'text' flag: %w", err)
			}
		}
		if flags.Changed("reference-id") {
			if req.ReferenceID, err = flags.GetString("reference-id"); err != nil {
				return fmt.Errorf("failed to read 'reference-id' flag: %w", err)
			}
		}
		if flags.Changed("format") || req.Format == "" {
			format, err := flags.GetString("format")
			if err != nil {
				return fmt.Errorf("failed to read 'format' flag: %w", err)
			}
			req.Format = fishaudio.AudioFormat(format)
		}

		if err := requireArg("text", req.Text); err != nil {
			return err
		}
		if req.ReferenceID == "" {
			req.ReferenceID = ctx.DefaultReferenceID()
		}

		p := printer(cmd)
		if req.ReferenceID == "" {
			p.Warning("No reference id given, the service default voice is used")
		}
		p.Verbosef("Using context: %s", ctx.Name)
		p.Verbosef("Reference ID: %s", req.ReferenceID)
		p.Verbosef("Text length: %d characters", len([]rune(req.Text)))

		outputPath := getOutputFile()
		if outputPath == "" {
			paths, err := cli.NewPaths(appName)
			if err != nil {
				return fmt.Errorf("failed to get home directory: %w", err)
			}
			if outputPath, err = paths.NewAudioFile("tts", string(req.Format)); err != nil {
				return err
			}
		}

		client := createClient(cmd, ctx)
		defer client.Close()

		start := time.Now()
		audio, err := client.TTS.Synthesize(cmd.Context(), &req)
		if err != nil {
			return apiError("speech synthesis", err)
		}
		p.Verbosef("Synthesized %s in %s", formatBytes(len(audio)), cli.FormatDuration(time.Since(start)))

		if outputPath == "-" {
			return cli.Output(audio, cli.OutputOptions{Format: cli.FormatRaw, Writer: cmd.OutOrStdout()})
		}
		if err := outputBytes(audio, outputPath); err != nil {
			return fmt.Errorf("failed to write audio file: %w", err)
		}
		p.Verbosef("Audio saved to: %s", outputPath)

		result := map[string]any{
			"audio_size":   len(audio),
			"audio_format": req.Format,
			"reference_id": req.ReferenceID,
			"output_file":  outputPath,
		}
		if !isJSONOutput() {
			result["audio_size"] = formatBytes(len(audio))
		}

		return outputResult(cmd, result, "", isJSONOutput())
	},
}

func init() {
	ttsCmd.Flags().String("text", "", "Text to synthesize")
	ttsCmd.Flags().String("reference-id", "", "Voice model id (default: context default_reference_id)")
	ttsCmd.Flags().String("format", string(fishaudio.AudioFormatMP3), "Audio format: mp3, wav, pcm or opus")
}
