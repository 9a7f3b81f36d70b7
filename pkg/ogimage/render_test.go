package ogimage

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r, err := NewRenderer("")
	require.NoError(t, err)

	t.Run("produces a 1200x630 PNG", func(t *testing.T) {
		raw, err := r.Render(Params{Title: "Whitepaper", Description: "Protocol design", Type: "whitepaper"})
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(raw))
		require.NoError(t, err)
		assert.Equal(t, Width, img.Bounds().Dx())
		assert.Equal(t, Height, img.Bounds().Dy())
	})

	t.Run("empty params use site defaults", func(t *testing.T) {
		raw, err := r.Render(Params{})
		require.NoError(t, err)
		_, err = png.Decode(bytes.NewReader(raw))
		assert.NoError(t, err)
	})

	t.Run("unknown type falls back to default accent", func(t *testing.T) {
		raw, err := r.Render(Params{Title: "X", Description: "Y", Type: "bogus"})
		require.NoError(t, err)
		_, err = png.Decode(bytes.NewReader(raw))
		assert.NoError(t, err)
	})

	t.Run("long title and description still render", func(t *testing.T) {
		long := "A very long page title that certainly exceeds the forty character threshold for sizing"
		desc := ""
		for i := 0; i < 30; i++ {
			desc += "words words "
		}
		raw, err := r.Render(Params{Title: long, Description: desc, Type: "market"})
		require.NoError(t, err)
		_, err = png.Decode(bytes.NewReader(raw))
		assert.NoError(t, err)
	})

	t.Run("missing font file falls back to built-in face", func(t *testing.T) {
		fb, err := NewRenderer("/nonexistent/font.ttf")
		assert.Error(t, err)
		require.NotNil(t, fb)
		raw, err := fb.Render(Params{Title: "Fallback"})
		require.NoError(t, err)
		_, err = png.Decode(bytes.NewReader(raw))
		assert.NoError(t, err)
	})
}
