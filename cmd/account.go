package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// accountCmd represents the account command
var accountCmd = &cobra.Command{
	Use:   "account <username>",
	Short: "Show account information for a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccount,
}

func runAccount(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	account, err := client.GetAccount(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Account:    %s (id %d)\n", account.URL, account.ID)
	fmt.Printf("Reputation: %.0f\n", account.Reputation)
	fmt.Printf("Created:    %s\n", account.CreatedTime().Format("2006-01-02"))
	if account.Bio != "" {
		fmt.Printf("Bio:        %s\n", account.Bio)
	}

	return nil
}
