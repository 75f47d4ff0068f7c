package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// albumCmd represents the album command
var albumCmd = &cobra.Command{
	Use:   "album <id>",
	Short: "Show information about an album",
	Args:  cobra.ExactArgs(1),
	RunE:  runAlbum,
}

func runAlbum(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	album, err := client.GetAlbum(ctx, args[0])
	if err != nil {
		return err
	}

	title := album.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Printf("Album:   %s  %s\n", album.ID, title)
	fmt.Printf("Link:    %s\n", album.Link)
	fmt.Printf("Created: %s\n", album.CreatedTime().Format("2006-01-02"))
	fmt.Printf("Images:  %d\n", album.ImagesCount)

	for _, image := range album.Images {
		fmt.Printf("  • %s  %s\n", image.ID, image.Link)
	}

	return nil
}
