package imaging

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sdomino/scribble"

	"github.com/ibrahimfakhry/portfolio/model"
)

const (
	manifestSuffix    = ".manifest"
	galleryCollection = "gallery"
)

// Manifest records the gallery images and their captions
type Manifest struct {
	conn *scribble.Driver
	dir  string
}

// ManifestDir is where the manifest of imagesDir lives: a sibling directory,
// so serving imagesDir never exposes it.
func ManifestDir(imagesDir string) (string, error) {
	abs, err := filepath.Abs(imagesDir)
	if err != nil {
		return "", fmt.Errorf("cannot resolve images dir %s: %w", imagesDir, err)
	}
	return filepath.Join(filepath.Dir(abs), filepath.Base(abs)+manifestSuffix), nil
}

// OpenManifest opens (and creates) the manifest of imagesDir
func OpenManifest(imagesDir string) (*Manifest, error) {
	dir, err := ManifestDir(imagesDir)
	if err != nil {
		return nil, err
	}
	conn, err := scribble.New(dir, nil)
	if err != nil {
		return nil, err
	}
	return &Manifest{conn: conn, dir: imagesDir}, nil
}

// Record stores img under its file name, replacing an older entry
func (m *Manifest) Record(img model.GalleryImage) error {
	if img.CreatedAt.IsZero() {
		img.CreatedAt = time.Now().UTC()
	}
	return m.conn.Write(galleryCollection, img.File, img)
}

// RecordFile records an image already present in the images directory
func (m *Manifest) RecordFile(file, caption, source string) (model.GalleryImage, error) {
	width, height, err := imageSize(filepath.Join(m.dir, file))
	if err != nil {
		return model.GalleryImage{}, err
	}
	img := model.GalleryImage{
		File:    file,
		Caption: caption,
		Width:   width,
		Height:  height,
		Source:  source,
	}
	return img, m.Record(img)
}

// List returns the recorded images sorted by file name. Entries whose file
// has been removed from disk are skipped.
func (m *Manifest) List() ([]model.GalleryImage, error) {
	images := []model.GalleryImage{}

	records, err := m.conn.ReadAll(galleryCollection)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return images, nil
		}
		return images, err
	}

	for _, r := range records {
		img := model.GalleryImage{}
		if err := json.Unmarshal([]byte(r), &img); err != nil {
			return images, fmt.Errorf("cannot decode gallery json structure: %v", err)
		}
		if _, err := os.Stat(filepath.Join(m.dir, img.File)); err != nil {
			continue
		}
		images = append(images, img)
	}

	sort.Slice(images, func(i, j int) bool {
		return images[i].File < images[j].File
	})
	return images, nil
}

func imageSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("cannot read image size of %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}
