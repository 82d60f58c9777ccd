package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ibrahimfakhry/portfolio/imaging"
	"github.com/ibrahimfakhry/portfolio/util"
)

func newQRCmd() *cobra.Command {
	var (
		url  string
		file string
		size int
	)

	qr := &cobra.Command{
		Use:   "qr",
		Short: "Write a QR code linking to the site",
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				return errors.New("--url is required")
			}
			path, err := imaging.WriteQRCode(imagesDir, file, url, size)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Created: %s\n", path)
			return nil
		},
	}
	qr.Flags().StringVar(&url, "url", util.LookupEnvOrString("PUBLIC_URL", ""), "URL encoded in the QR code.")
	qr.Flags().StringVar(&file, "file", "contact.png", "Output file name.")
	qr.Flags().IntVar(&size, "size", 512, "Image width and height in pixels.")
	return qr
}
