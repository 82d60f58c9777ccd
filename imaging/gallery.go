package imaging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/skip2/go-qrcode"
)

// Photos the operator drops into the images directory
const (
	Photo1 = "photo1.jpg"
	Photo2 = "photo2.jpg"
)

// galleryCopy maps a source photo to the gallery file it provides
type galleryCopy struct {
	source  string
	target  string
	caption string
}

var galleryCopies = []galleryCopy{
	{source: Photo1, target: "profile.jpg", caption: "Ibrahim Fakhry"},
	{source: Photo1, target: "teaching1.jpg", caption: "Teaching"},
	{source: Photo2, target: "conference1.jpg", caption: "Conference"},
}

// FoundPhotos reports which of the operator photos exist in dir
func FoundPhotos(dir string) []string {
	var found []string
	for _, name := range []string{Photo1, Photo2} {
		if fileExists(filepath.Join(dir, name)) {
			found = append(found, name)
		}
	}
	return found
}

// SetupGallery copies the available photos to their gallery names and
// records them in the manifest. It returns the gallery files written.
func SetupGallery(dir string, manifest *Manifest) ([]string, error) {
	var written []string
	for _, gc := range galleryCopies {
		src := filepath.Join(dir, gc.source)
		if !fileExists(src) {
			continue
		}
		if err := copyFile(src, filepath.Join(dir, gc.target)); err != nil {
			return written, err
		}
		if manifest != nil {
			if _, err := manifest.RecordFile(gc.target, gc.caption, gc.source); err != nil {
				return written, err
			}
		}
		written = append(written, gc.target)
	}
	return written, nil
}

// WriteQRCode writes a PNG QR code of url into dir
func WriteQRCode(dir, file, url string, size int) (string, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("cannot create images directory: %w", err)
	}
	path := filepath.Join(dir, file)
	if err := qrcode.WriteFile(url, qrcode.Medium, size, path); err != nil {
		return "", fmt.Errorf("cannot write qr code: %w", err)
	}
	return path, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("cannot copy %s to %s: %w", src, dst, err)
	}
	return out.Close()
}
