package cmd

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writePhoto(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 12))
	img.Set(1, 1, color.White)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, img, nil))
}

func TestPlaceholdersCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")

	out, err := run(t, "", "placeholders", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "All placeholder images created successfully!")

	for _, name := range []string{"profile.jpg", "project1.jpg", "project2.jpg", "project3.jpg", "project4.jpg"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestGalleryCmdWithoutPhotos(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "", "gallery", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Photos not found yet.")
}

func TestGalleryCmdDeclined(t *testing.T) {
	dir := t.TempDir()
	writePhoto(t, filepath.Join(dir, "photo1.jpg"))

	out, err := run(t, "n\n", "gallery", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "(y/n)")
	assert.NoFileExists(t, filepath.Join(dir, "profile.jpg"))
}

func TestGalleryCmdConfirmed(t *testing.T) {
	dir := t.TempDir()
	writePhoto(t, filepath.Join(dir, "photo1.jpg"))

	out, err := run(t, "y\n", "gallery", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Images are ready!")
	assert.FileExists(t, filepath.Join(dir, "profile.jpg"))
	assert.FileExists(t, filepath.Join(dir, "teaching1.jpg"))
	assert.NoFileExists(t, filepath.Join(dir, "conference1.jpg"))
}

func TestGalleryCmdAssumeYes(t *testing.T) {
	dir := t.TempDir()
	writePhoto(t, filepath.Join(dir, "photo2.jpg"))

	out, err := run(t, "", "gallery", "--dir", dir, "--yes")
	require.NoError(t, err)
	assert.NotContains(t, out, "(y/n)")
	assert.FileExists(t, filepath.Join(dir, "conference1.jpg"))
}

func TestQRCmd(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "", "qr", "--dir", dir, "--url", "")
	assert.Error(t, err)

	out, err := run(t, "", "qr", "--dir", dir, "--url", "https://example.com", "--size", "128")
	require.NoError(t, err)
	assert.Contains(t, out, "contact.png")
	assert.FileExists(t, filepath.Join(dir, "contact.png"))
}
