package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ibrahimfakhry/portfolio/imaging"
)

func newPlaceholdersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "placeholders",
		Short: "Create placeholder images for the gallery",
		Long: `Creates placeholder images for the gallery section.
You can replace these with your actual images later.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			manifest, err := imaging.OpenManifest(imagesDir)
			if err != nil {
				return fmt.Errorf("cannot open gallery manifest: %w", err)
			}

			fmt.Fprintln(out, "Creating placeholder images...")
			fmt.Fprintln(out)
			for _, p := range imaging.DefaultPlaceholders {
				path, err := imaging.WritePlaceholder(imagesDir, p)
				if err != nil {
					return err
				}
				if _, err := manifest.RecordFile(p.File, p.Text, "placeholder"); err != nil {
					return err
				}
				fmt.Fprintf(out, "✓ Created: %s\n", path)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "✨ All placeholder images created successfully!")
			fmt.Fprintf(out, "📝 You can replace these with your actual images in the %s folder\n", imagesDir)
			return nil
		},
	}
}
