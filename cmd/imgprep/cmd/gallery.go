package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ibrahimfakhry/portfolio/imaging"
)

func newGalleryCmd() *cobra.Command {
	var assumeYes bool

	gallery := &cobra.Command{
		Use:   "gallery",
		Short: "Turn photo1.jpg and photo2.jpg into gallery images",
		Long: `Copies photo1.jpg to profile.jpg and teaching1.jpg, and photo2.jpg to
conference1.jpg, inside the images directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "📸 Image Setup Helper")
			fmt.Fprintln(out, strings.Repeat("=", 50))
			fmt.Fprintln(out)

			if len(imaging.FoundPhotos(imagesDir)) == 0 {
				fmt.Fprintln(out, "⚠️  Photos not found yet.")
				fmt.Fprintln(out)
				fmt.Fprintf(out, "Please save your photos to %s as:\n", imagesDir)
				fmt.Fprintf(out, "  - %s\n", imaging.Photo1)
				fmt.Fprintf(out, "  - %s\n", imaging.Photo2)
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Then run this command again.")
				return nil
			}

			fmt.Fprintln(out, "✓ Found your photos!")
			fmt.Fprintln(out)
			if !assumeYes {
				fmt.Fprintln(out, "Would you like to set up the gallery? (y/n)")
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if strings.ToLower(strings.TrimSpace(answer)) != "y" {
					return nil
				}
			}

			manifest, err := imaging.OpenManifest(imagesDir)
			if err != nil {
				return fmt.Errorf("cannot open gallery manifest: %w", err)
			}
			written, err := imaging.SetupGallery(imagesDir, manifest)
			if err != nil {
				return err
			}
			for _, file := range written {
				fmt.Fprintf(out, "✓ Set up %s\n", file)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "✨ Images are ready! Your website gallery is now set up.")
			return nil
		},
	}
	gallery.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation.")
	return gallery
}
