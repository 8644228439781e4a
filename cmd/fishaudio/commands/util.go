package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/digitaltwins/fishvoice/pkg/cli"
	"github.com/digitaltwins/fishvoice/pkg/fishaudio"
)

// loadRequest loads a request from a YAML or JSON file
func loadRequest(path string, v any) error {
	return cli.LoadRequest(path, v)
}

// outputBytes outputs binary data to a file
func outputBytes(data []byte, outputPath string) error {
	return cli.OutputBytes(data, outputPath)
}

// formatBytes formats bytes to human readable string
func formatBytes(bytes int) string {
	return cli.FormatBytesInt(bytes)
}

// clientOptions builds SDK options from context configuration
func clientOptions(cmd *cobra.Command, ctx *cli.Context) []fishaudio.Option {
	opts := []fishaudio.Option{
		fishaudio.WithLogger(cli.NewLogger(cmd.ErrOrStderr(), isVerbose())),
	}

	// Use custom base URL if configured
	if ctx.BaseURL != "" {
		opts = append(opts, fishaudio.WithBaseURL(ctx.BaseURL))
	}

	// Use custom timeout if configured
	if timeout := ctx.TimeoutDuration(); timeout > 0 {
		opts = append(opts, fishaudio.WithTimeout(timeout))
	}

	return opts
}

// createClient creates a Fish Audio API client from context configuration
func createClient(cmd *cobra.Command, ctx *cli.Context) *fishaudio.Client {
	return fishaudio.NewClient(ctx.APIKey, clientOptions(cmd, ctx)...)
}

// requireArg returns a flag error when value is empty
func requireArg(name, value string) error {
	if value == "" {
		return fmt.Errorf("--%s is required", name)
	}
	return nil
}

// apiError wraps err from an API call, adding a hint for common failures.
func apiError(action string, err error) error {
	e, ok := fishaudio.AsError(err)
	if !ok {
		return fmt.Errorf("%s failed: %w", action, err)
	}
	var hint string
	switch {
	case e.IsUnauthorized():
		hint = "check the API key of the context"
	case e.IsPaymentRequired():
		hint = "top up the API credit"
	case e.IsNotFound():
		hint = "no such resource"
	case e.IsInvalidRequest():
		hint = "the request was rejected"
	case e.IsServerError():
		hint = "the service failed, try again later"
	default:
		return fmt.Errorf("%s failed: %w", action, err)
	}
	return fmt.Errorf("%s failed (%s): %w", action, hint, err)
}
