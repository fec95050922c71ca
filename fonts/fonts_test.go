package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	require.NoError(t, LoadDefaults())

	for _, name := range []FontName{HUD, Title, Small} {
		face := name.Get()
		require.NotNil(t, face, name)
		assert.Positive(t, font.MeasureString(face, "HP").Ceil(), name)
	}
	assert.Greater(t, Title.Get().Metrics().Height, HUD.Get().Metrics().Height)
}

func TestUnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}

func TestBadFontData(t *testing.T) {
	assert.Error(t, LoadFontWithSize("junk", []byte("not a font"), 10))
}
