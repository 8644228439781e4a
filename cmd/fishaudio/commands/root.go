package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/digitaltwins/fishvoice/pkg/cli"
)

const appName = "fishaudio"

// Environment fallback used when no context is selected.
const (
	envAPIKey  = "FISH_AUDIO_API_KEY"
	envBaseURL = "FISH_AUDIO_BASE_URL"
)

// globals holds the persistent flags shared by every command.
var globals struct {
	configFile string
	context    string
	output     string
	input      string
	json       bool
	verbose    bool

	config *cli.Config
}

var rootCmd = &cobra.Command{
	Use:   "fishaudio",
	Short: "Fish Audio API CLI tool",
	Long: `Fish Audio CLI - clone voices and synthesize speech with the Fish Audio API.

Commands cover the account wallet, voice models (clone from an audio sample,
get, delete) and text to speech with a cloned voice.

Credentials live in named contexts under ~/.fishvoice/fishaudio/, managed
like kubectl contexts. Without a context, FISH_AUDIO_API_KEY is read from the
environment after loading a .env file from the working directory.

Examples:
  fishaudio config add-context myctx --api-key YOUR_API_KEY
  fishaudio -c myctx model create sample.mp3 --user-id 42
  fishaudio -c myctx wallet credit --json | jq -r '.credit'
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&globals.configFile, "config", "", "config file (default is ~/.fishvoice/fishaudio/config.yaml)")
	pf.StringVarP(&globals.context, "context", "c", "", "context name to use")
	pf.StringVarP(&globals.output, "output", "o", "", "output file (default: stdout)")
	pf.StringVarP(&globals.input, "file", "f", "", "input request file (YAML or JSON)")
	pf.BoolVar(&globals.json, "json", false, "output as JSON (for piping)")
	pf.BoolVarP(&globals.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(configCmd, walletCmd, modelCmd, ttsCmd)
}

func initConfig() {
	cfg, err := cli.LoadConfigWithPath(appName, globals.configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
	globals.config = cfg
}

func getConfig() *cli.Config {
	return globals.config
}

// getContext picks the context for a command: the -c context, then the
// current context, then one built from the environment.
func getContext() (*cli.Context, error) {
	cfg := getConfig()
	if cfg == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}

	if name := globals.context; name != "" || cfg.CurrentContext != "" {
		return cfg.ResolveContext(name)
	}

	ctx, err := cli.ContextFromEnv(envAPIKey, envBaseURL)
	if err != nil {
		return nil, fmt.Errorf("no context specified (%v). Use -c flag, set a default context with 'fishaudio config use-context', or export %s", err, envAPIKey)
	}
	return ctx, nil
}

func getInputFile() string  { return globals.input }
func getOutputFile() string { return globals.output }
func isJSONOutput() bool    { return globals.json }
func isVerbose() bool       { return globals.verbose }

// printer returns a Printer on the command's streams.
func printer(cmd *cobra.Command) *cli.Printer {
	p := cli.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	p.Verbose = isVerbose()
	return p
}

// outputResult writes result as YAML or JSON to outputPath, or to the
// command's stdout when outputPath is empty.
func outputResult(cmd *cobra.Command, result any, outputPath string, asJSON bool) error {
	opts := cli.OutputOptions{Format: cli.FormatYAML, File: outputPath}
	if asJSON {
		opts.Format = cli.FormatJSON
	}
	if outputPath == "" {
		opts.Writer = cmd.OutOrStdout()
	}
	return cli.Output(result, opts)
}
