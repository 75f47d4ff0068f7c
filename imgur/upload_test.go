package imgur

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testImagePNG renders a small gradient and returns it PNG-encoded.
func testImagePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalizeImage(t *testing.T) {
	t.Run("re-encoding is deterministic", func(t *testing.T) {
		src := testImagePNG(t, 32, 24)

		first, err := normalizeImage(bytes.NewReader(src), 0)
		require.NoError(t, err)
		second, err := normalizeImage(bytes.NewReader(src), 0)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("jpeg input is normalized to png", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 16, 16))
		var buf bytes.Buffer
		require.NoError(t, jpeg.Encode(&buf, img, nil))

		out, err := normalizeImage(bytes.NewReader(buf.Bytes()), 0)
		require.NoError(t, err)

		decoded, format, err := image.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, "png", format)
		assert.Equal(t, 16, decoded.Bounds().Dx())
	})

	t.Run("downscales above the max dimension", func(t *testing.T) {
		src := testImagePNG(t, 100, 50)

		out, err := normalizeImage(bytes.NewReader(src), 10)
		require.NoError(t, err)

		decoded, _, err := image.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.LessOrEqual(t, decoded.Bounds().Dx(), 10)
		assert.LessOrEqual(t, decoded.Bounds().Dy(), 10)
	})

	t.Run("small images are not upscaled", func(t *testing.T) {
		src := testImagePNG(t, 8, 8)

		out, err := normalizeImage(bytes.NewReader(src), 100)
		require.NoError(t, err)

		decoded, _, err := image.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 8, decoded.Bounds().Dx())
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := normalizeImage(bytes.NewReader([]byte("not an image")), 0)
		require.Error(t, err)
	})
}

func TestUploadImageReader(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	src := testImagePNG(t, 20, 20)
	want, err := normalizeImage(bytes.NewReader(src), 0)
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "base64", r.PostForm.Get("type"))
		assert.Equal(t, base64.StdEncoding.EncodeToString(want), r.PostForm.Get("image"))
		assert.Equal(t, "stream upload", r.PostForm.Get("title"))

		json.NewEncoder(w).Encode(map[string]any{
			"data":    map[string]any{"id": "reader1", "title": "stream upload"},
			"success": true,
			"status":  200,
		})
	}))
	defer server.Close()

	client, err := NewClient("id", "secret", logger, WithBaseURL(server.URL))
	require.NoError(t, err)

	image, err := client.UploadImageReader(ctx, bytes.NewReader(src), UploadRequest{Title: "stream upload"})
	require.NoError(t, err)
	assert.Equal(t, "reader1", image.ID)

	t.Run("undecodable stream fails before any request", func(t *testing.T) {
		_, err := client.UploadImageReader(ctx, bytes.NewReader([]byte("junk")), UploadRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
	})
}
