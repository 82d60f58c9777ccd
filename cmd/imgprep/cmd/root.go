package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ibrahimfakhry/portfolio/util"
)

var imagesDir string

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "imgprep",
		Short: "Prepare the images served by the portfolio site",
		Long: `imgprep generates placeholder images, turns your own photos into gallery
images and writes a contact QR code into the site's images directory.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&imagesDir, "dir", util.LookupEnvOrString("IMAGES_DIR", util.DefaultImagesDir), "Images directory served under /static/images.")

	root.AddCommand(newPlaceholdersCmd())
	root.AddCommand(newGalleryCmd())
	root.AddCommand(newQRCmd())
	return root
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
