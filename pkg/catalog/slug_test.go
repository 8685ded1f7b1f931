package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Pixel 8 Pro-bezel@2x", "pixel-8-pro-bezel-2x"},
		{"iPhone 15 Pro Max", "iphone-15-pro-max"},
		{"  MacBook  Pro  16  ", "macbook-pro-16"},
		{"--already--slugged--", "already-slugged"},
		{"UPPER_case.mixed", "upper-case-mixed"},
		{"日本語", "unknown"},
		{"@@@", "unknown"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.input), "Slugify(%q)", tt.input)
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	input := "Galaxy S24 Ultra (Titanium)/bezel@3x"
	first := Slugify(input)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Slugify(input))
	}
}

func TestHasShadow(t *testing.T) {
	names := map[string]bool{
		"device with shadow":  true,
		"device with shadows": true,
	}

	assert.True(t, hasShadow("devices/Phones/Pixel 8/Device With Shadow", names))
	assert.True(t, hasShadow("devices/Phones/Pixel 8/DEVICE WITH SHADOWS", names))
	assert.False(t, hasShadow("devices/Phones/Pixel 8/device-with-shadow", names),
		"hyphenated segment must not match: comparison is exact, not substring")
	assert.False(t, hasShadow("devices/Phones/Pixel 8", names))
}
