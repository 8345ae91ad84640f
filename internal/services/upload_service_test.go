package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/italoandres/eshop-backend/internal/utils"
	"github.com/italoandres/eshop-backend/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngDataURI(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 60, B: 60, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func newUploadTestService(t *testing.T) (UploadService, string) {
	t.Helper()
	dir := t.TempDir()
	provider, err := storage.NewLocalStorage(dir, "http://localhost:4000/uploads")
	require.NoError(t, err)
	return NewUploadService(provider, testLogger(t)), dir
}

func TestUploadImageStoresFile(t *testing.T) {
	svc, dir := newUploadTestService(t)

	url, err := svc.UploadImage(context.Background(), pngDataURI(t, 4, 4), "banners")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:4000/uploads/banners/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	entries, err := os.ReadDir(filepath.Join(dir, "banners"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestUploadImageResizesOversized(t *testing.T) {
	svc, dir := newUploadTestService(t)

	_, err := svc.UploadImage(context.Background(), pngDataURI(t, int(utils.BannerMaxWidth)*2, 10), "banners")
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(dir, "banners"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	f, err := os.Open(filepath.Join(dir, "banners", entries[0].Name()))
	require.NoError(t, err)
	defer f.Close()

	decoded, _, err := image.Decode(f)
	require.NoError(t, err)
	assert.LessOrEqual(t, decoded.Bounds().Dx(), int(utils.BannerMaxWidth))
}

func TestUploadImageRejectsGarbage(t *testing.T) {
	svc, _ := newUploadTestService(t)

	tests := []struct {
		name    string
		payload string
	}{
		{name: "plain url", payload: "https://example.com/x.png"},
		{name: "not base64", payload: "data:image/png;base64,!!!not-base64!!!"},
		{name: "base64 but not an image", payload: "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("hello"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UploadImage(context.Background(), tt.payload, "banners")
			assert.ErrorIs(t, err, utils.ErrInvalidImagePayload)
		})
	}
}
