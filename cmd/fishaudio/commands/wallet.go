package commands

import (
	"github.com/spf13/cobra"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Account wallet",
}

var walletCreditCmd = &cobra.Command{
	Use:   "credit",
	Short: "Show the API credit balance",
	Long: `Show the API credit balance of the account.

Examples:
  fishaudio -c myctx wallet credit
  fishaudio wallet credit --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		printer(cmd).Verbosef("Using context: %s", ctx.Name)

		client := createClient(cmd, ctx)
		defer client.Close()

		credit, err := client.Wallet.Credit(cmd.Context())
		if err != nil {
			return apiError("get credit", err)
		}

		return outputResult(cmd, credit, getOutputFile(), isJSONOutput())
	},
}

func init() {
	walletCmd.AddCommand(walletCreditCmd)
}
