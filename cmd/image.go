package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/imgur-go/imgur"
)

var (
	uploadAlbum       string
	uploadType        string
	uploadName        string
	uploadTitle       string
	uploadDescription string

	updateTitle       string
	updateDescription string
)

// imageCmd represents the image command
var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Fetch, upload, update or delete images",
}

var imageGetCmd = &cobra.Command{
	Use:   "get <id>...",
	Short: "Show information about one or more images",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runImageGet,
}

var imageUploadCmd = &cobra.Command{
	Use:   "upload <file|url>",
	Short: "Upload an image from a local file or a URL",
	Long: `Upload an image to Imgur.

Local files are decoded, normalized to PNG and uploaded as base64 data.
Arguments starting with http:// or https:// are passed to Imgur as URL
uploads instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runImageUpload,
}

var imageUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update the title or description of an image",
	Long: `Update an image's title or description. For an anonymous image the
id must be the image's deletehash.`,
	Args: cobra.ExactArgs(1),
	RunE: runImageUpdate,
}

var imageDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an image by id or deletehash",
	Args:  cobra.ExactArgs(1),
	RunE:  runImageDelete,
}

func init() {
	imageUploadCmd.Flags().StringVar(&uploadAlbum, "album", "", "album id (or deletehash for anonymous albums) to add the image to")
	imageUploadCmd.Flags().StringVar(&uploadType, "type", "", "payload type: file, base64 or URL")
	imageUploadCmd.Flags().StringVar(&uploadName, "name", "", "file name")
	imageUploadCmd.Flags().StringVar(&uploadTitle, "title", "", "image title")
	imageUploadCmd.Flags().StringVar(&uploadDescription, "description", "", "image description")

	imageUpdateCmd.Flags().StringVar(&updateTitle, "title", "", "new image title")
	imageUpdateCmd.Flags().StringVar(&updateDescription, "description", "", "new image description")

	imageCmd.AddCommand(imageGetCmd)
	imageCmd.AddCommand(imageUploadCmd)
	imageCmd.AddCommand(imageUpdateCmd)
	imageCmd.AddCommand(imageDeleteCmd)
}

func runImageGet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	images, err := client.GetImages(ctx, args...)
	if err != nil {
		return err
	}

	for _, image := range images {
		printImage(image)
	}
	return nil
}

func runImageUpload(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	source := args[0]

	req := imgur.UploadRequest{
		Album:       uploadAlbum,
		Type:        uploadType,
		Name:        uploadName,
		Title:       uploadTitle,
		Description: uploadDescription,
	}

	var image *imgur.Image
	var err error

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req.Image = source
		if req.Type == "" {
			req.Type = "URL"
		}
		image, err = client.UploadImage(ctx, req)
	} else {
		f, openErr := os.Open(source)
		if openErr != nil {
			return fmt.Errorf("failed to open %s: %w", source, openErr)
		}
		defer f.Close()
		image, err = client.UploadImageReader(ctx, f, req)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Uploaded %s\n", image.Link)
	fmt.Printf("  id:         %s\n", image.ID)
	if image.DeleteHash != "" {
		fmt.Printf("  deletehash: %s\n", image.DeleteHash)
	}
	return nil
}

func runImageUpdate(cmd *cobra.Command, args []string) error {
	if updateTitle == "" && updateDescription == "" {
		return fmt.Errorf("nothing to update: set --title or --description")
	}

	ctx := context.Background()
	if err := client.UpdateImage(ctx, args[0], updateTitle, updateDescription); err != nil {
		return err
	}

	fmt.Printf("Updated image %s\n", args[0])
	return nil
}

func runImageDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := client.DeleteImage(ctx, args[0]); err != nil {
		return err
	}

	fmt.Printf("Deleted image %s\n", args[0])
	return nil
}

func printImage(image *imgur.Image) {
	fmt.Printf("• %s  %s\n", image.ID, image.Link)
	if image.Title != "" {
		fmt.Printf("  Title:       %s\n", image.Title)
	}
	if image.Description != "" {
		fmt.Printf("  Description: %s\n", image.Description)
	}
	fmt.Printf("  Size:        %dx%d, %d bytes\n", image.Width, image.Height, image.Size)
	fmt.Printf("  Uploaded:    %s\n", image.CreatedTime().Format("2006-01-02"))
	fmt.Printf("  Views:       %d\n", image.Views)
}
