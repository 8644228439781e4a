package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/digitaltwins/fishvoice/pkg/cli"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
	Long: `Manage contexts: named API keys with optional endpoint, timeout and
default voice model, stored in ~/.fishvoice/fishaudio/config.yaml.`,
}

var configAddContextCmd = &cobra.Command{
	Use:   "add-context <name>",
	Short: "Add or replace a context",
	Long: `Add a context, replacing any context with the same name.

Example:
  fishaudio config add-context myctx --api-key YOUR_API_KEY
  fishaudio config add-context prod --api-key KEY --default-reference-id 7f92f8af --timeout 300`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := &cli.Context{}
		var referenceID string
		for name, dst := range map[string]*string{
			"api-key":              &ctx.APIKey,
			"base-url":             &ctx.BaseURL,
			"default-reference-id": &referenceID,
		} {
			v, err := cmd.Flags().GetString(name)
			if err != nil {
				return fmt.Errorf("failed to read '%s' flag: %w", name, err)
			}
			*dst = v
		}
		if err := requireArg("api-key", ctx.APIKey); err != nil {
			return err
		}

		timeout, err := cmd.Flags().GetInt("timeout")
		if err != nil {
			return fmt.Errorf("failed to read 'timeout' flag: %w", err)
		}
		ctx.Timeout = timeout
		if referenceID != "" {
			ctx.SetExtra(cli.ExtraDefaultReferenceID, referenceID)
		}

		if err := getConfig().AddContext(args[0], ctx); err != nil {
			return err
		}
		printer(cmd).Success("Context %q added successfully", args[0])
		return nil
	},
}

var configDeleteContextCmd = &cobra.Command{
	Use:   "delete-context <name>",
	Short: "Delete a context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getConfig().DeleteContext(args[0]); err != nil {
			return err
		}
		printer(cmd).Success("Context %q deleted", args[0])
		return nil
	},
}

var configUseContextCmd = &cobra.Command{
	Use:   "use-context <name>",
	Short: "Set the current context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getConfig().UseContext(args[0]); err != nil {
			return err
		}
		printer(cmd).Success("Switched to context %q", args[0])
		return nil
	},
}

var configGetContextCmd = &cobra.Command{
	Use:   "get-context",
	Short: "Display the current context",
	RunE: func(cmd *cobra.Command, args []string) error {
		current := getConfig().CurrentContext
		if current == "" {
			current = "No current context set"
		}
		fmt.Fprintln(cmd.OutOrStdout(), current)
		return nil
	},
}

var configListContextsCmd = &cobra.Command{
	Use:     "list-contexts",
	Aliases: []string{"get-contexts"},
	Short:   "List all contexts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		names := cfg.ListContexts()
		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No contexts configured")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CURRENT\tNAME\tBASE_URL\tDEFAULT_REFERENCE_ID")
		for _, name := range names {
			ctx := cfg.Contexts[name]
			marker, baseURL := "", ctx.BaseURL
			if name == cfg.CurrentContext {
				marker = "*"
			}
			if baseURL == "" {
				baseURL = "(default)"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", marker, name, baseURL, ctx.DefaultReferenceID())
		}
		return w.Flush()
	},
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "View the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		out := cmd.OutOrStdout()
		styles := cli.NewStyles(cli.DefaultTheme)
		label := func(k string, v any) {
			fmt.Fprintf(out, "%s %v\n", styles.Label.Render(k+":"), v)
		}

		label("Config file", cfg.Path())
		label("Current context", cfg.CurrentContext)
		label("Contexts", len(cfg.Contexts))

		if len(cfg.Contexts) == 0 {
			fmt.Fprintln(out, styles.Help.Render("\nAdd one with 'fishaudio config add-context <name> --api-key KEY'"))
			return nil
		}

		fmt.Fprintln(out, "\n"+styles.Title.Render("Context details:"))
		for _, name := range cfg.ListContexts() {
			ctx := cfg.Contexts[name]
			fmt.Fprintf(out, "\n  %s:\n", name)
			fmt.Fprintf(out, "    API Key: %s\n", cli.MaskAPIKey(ctx.APIKey))
			if ctx.BaseURL != "" {
				fmt.Fprintf(out, "    Base URL: %s\n", ctx.BaseURL)
			}
			if timeout := ctx.TimeoutDuration(); timeout > 0 {
				fmt.Fprintf(out, "    Timeout: %s\n", timeout)
			}
			if ref := ctx.DefaultReferenceID(); ref != "" {
				fmt.Fprintf(out, "    Default Reference ID: %s\n", ref)
			}
		}
		return nil
	},
}

func init() {
	f := configAddContextCmd.Flags()
	f.String("api-key", "", "API key (required)")
	f.String("base-url", "", "API base URL")
	f.Int("timeout", 0, "Request timeout in seconds")
	f.String("default-reference-id", "", "Default voice model for tts")

	configCmd.AddCommand(
		configAddContextCmd,
		configDeleteContextCmd,
		configUseContextCmd,
		configGetContextCmd,
		configListContextsCmd,
		configViewCmd,
	)
}
