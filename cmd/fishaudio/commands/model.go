package commands

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/digitaltwins/fishvoice/pkg/cli"
	"github.com/digitaltwins/fishvoice/pkg/fishaudio"
	"github.com/digitaltwins/fishvoice/pkg/voiceclone"
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Voice model management",
	Long: `Voice model management.

Clone a voice from an audio sample, inspect or delete voice models.`,
}

var modelCreateCmd = &cobra.Command{
	Use:   "create <audio_file>",
	Short: "Clone a voice from an audio file",
	Long: `Clone a voice from an audio file.

The account credit is checked before the sample is uploaded. The model title
defaults to Clone_ followed by the first 8 characters of --user-id; a random
UUID is used when --user-id is not given.

Examples:
  fishaudio -c myctx model create sample.mp3 --user-id 5f0c1e2d
  fishaudio -c myctx model create sample.wav --title Narrator --visibility unlist --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		userID, err := flags.GetString("user-id")
		if err != nil {
			return fmt.Errorf("failed to read 'user-id' flag: %w", err)
		}
		if userID == "" {
			userID = uuid.NewString()
		}
		title, err := flags.GetString("title")
		if err != nil {
			return fmt.Errorf("failed to read 'title' flag: %w", err)
		}
		description, err := flags.GetString("description")
		if err != nil {
			return fmt.Errorf("failed to read 'description' flag: %w", err)
		}
		visibility, err := flags.GetString("visibility")
		if err != nil {
			return fmt.Errorf("failed to read 'visibility' flag: %w", err)
		}
		if !fishaudio.Visibility(visibility).Valid() {
			return fmt.Errorf("invalid --visibility %q: must be public, unlist or private", visibility)
		}

		p := printer(cmd)
		p.Verbosef("Using context: %s", ctx.Name)

		logger := cli.NewLogger(cmd.ErrOrStderr(), isVerbose())
		requester := voiceclone.New(
			voiceclone.FishAudioOpener(clientOptions(cmd, ctx)...),
			cmd.ErrOrStderr(),
			cmd.ErrOrStderr(),
			voiceclone.WithLogger(logger),
		)

		start := time.Now()
		model, err := requester.Create(cmd.Context(), voiceclone.Request{
			APIKey:      ctx.APIKey,
			AudioPath:   args[0],
			UserID:      userID,
			Title:       title,
			Description: description,
			Visibility:  fishaudio.Visibility(visibility),
		})
		if err != nil {
			return apiError("create model", err)
		}

		p.Verbosef("Model %s created in %s", model.ID, cli.FormatDuration(time.Since(start)))
		return outputResult(cmd, model, getOutputFile(), isJSONOutput())
	},
}

var modelGetCmd = &cobra.Command{
	Use:   "get <model_id>",
	Short: "Get a voice model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		printer(cmd).Verbosef("Using context: %s", ctx.Name)

		client := createClient(cmd, ctx)
		defer client.Close()

		model, err := client.Model.Get(cmd.Context(), args[0])
		if err != nil {
			return apiError("get model", err)
		}

		return outputResult(cmd, model, getOutputFile(), isJSONOutput())
	},
}

var modelDeleteCmd = &cobra.Command{
	Use:   "delete <model_id>",
	Short: "Delete a voice model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		printer(cmd).Verbosef("Using context: %s", ctx.Name)

		client := createClient(cmd, ctx)
		defer client.Close()

		if err := client.Model.Delete(cmd.Context(), args[0]); err != nil {
			return apiError("delete model", err)
		}

		printer(cmd).Success("Model %s deleted", args[0])
		return nil
	},
}

func init() {
	modelCreateCmd.Flags().String("user-id", "", "Identifier the model title is derived from (default: random UUID)")
	modelCreateCmd.Flags().String("title", "", "Model title (default: Clone_<first 8 chars of user id>)")
	modelCreateCmd.Flags().String("description", "", "Model description")
	modelCreateCmd.Flags().String("visibility", string(fishaudio.VisibilityPrivate), "Model visibility: public, unlist or private")

	modelCmd.AddCommand(modelCreateCmd)
	modelCmd.AddCommand(modelGetCmd)
	modelCmd.AddCommand(modelDeleteCmd)
}
