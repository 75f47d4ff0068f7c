package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// authorizeCmd represents the authorize command
var authorizeCmd = &cobra.Command{
	Use:   "authorize",
	Short: "Authorize with Imgur via the OAuth pin flow",
	Long: `Authorize the application against your Imgur account.

Prints the authorization URL to visit, then reads the pin code shown by
Imgur from standard input and exchanges it for an access token. Store the
printed token under imgur.access_token in your config to keep using it.`,
	RunE: runAuthorize,
}

func runAuthorize(cmd *cobra.Command, args []string) error {
	fmt.Println("Visit the following URL and authorize the application:")
	fmt.Println()
	fmt.Printf("  %s\n", client.AuthorizationURL())
	fmt.Println()
	fmt.Print("Enter the pin code shown by Imgur: ")

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		return fmt.Errorf("no pin code entered")
	}
	pin := strings.TrimSpace(scanner.Text())

	ctx := context.Background()
	if err := client.Authorize(ctx, pin); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("✓ Authorized. Requests now use your account.")
	fmt.Printf("Access token: %s\n", client.AccessToken())
	return nil
}
