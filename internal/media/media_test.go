package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (m *memStore) Put(_ context.Context, key string, body []byte, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.objects == nil {
		m.objects = map[string][]byte{}
	}
	m.objects[key] = body
	return "https://cdn.example.com/" + key, nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeDataURL(t *testing.T) {
	raw := pngBytes(t, 2, 2)
	url := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	assert.True(t, IsDataURL(url))
	mime, data, err := DecodeDataURL(url)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, raw, data)

	assert.False(t, IsDataURL("https://cdn.example.com/logo.png"))
	_, _, err = DecodeDataURL("data:image/png;base64,@@@")
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestTranscoder_DownscalesToWebP(t *testing.T) {
	out, err := Transcoder{MaxWidth: 40}.ToWebP(bytes.NewReader(pngBytes(t, 80, 20)))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 10, cfg.Height)

	_, err = Transcoder{}.ToWebP(strings.NewReader("not an image"))
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestProcessor_Normalize(t *testing.T) {
	store := &memStore{}
	p := NewProcessor(Transcoder{MaxWidth: 100}, store)
	ctx := context.Background()

	inline := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes(t, 4, 4))
	got, err := p.NormalizeAll(ctx, "s1", []string{inline, "https://elsewhere/x.jpg"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, strings.HasPrefix(got[0], "https://cdn.example.com/salons/s1/"))
	assert.True(t, strings.HasSuffix(got[0], ".webp"))
	assert.Equal(t, "https://elsewhere/x.jpg", got[1])
	assert.Len(t, store.objects, 1)
}

func TestProcessor_WithoutStore(t *testing.T) {
	p := NewProcessor(Transcoder{}, nil)
	inline := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes(t, 4, 4))

	got, err := p.Normalize(context.Background(), "s1", inline)
	require.NoError(t, err)
	assert.Equal(t, inline, got)

	_, err = p.Upload(context.Background(), "s1", bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestProcessor_PrepareDoesNoIO(t *testing.T) {
	store := &memStore{}
	p := NewProcessor(Transcoder{}, store)

	inline := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes(t, 4, 4))
	imgs, err := p.PrepareAll([]string{inline, "https://elsewhere/x.jpg"})
	require.NoError(t, err)
	assert.Empty(t, store.objects)

	_, err = p.Prepare("data:image/png;base64,@@@")
	assert.ErrorIs(t, err, ErrInvalidImage)

	urls, err := p.StoreAll(context.Background(), "s1", imgs)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(urls[0], "https://cdn.example.com/salons/s1/"))
	assert.Equal(t, "https://elsewhere/x.jpg", urls[1])
	assert.Len(t, store.objects, 1)
}
