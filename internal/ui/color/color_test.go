package color

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{"full lowercase", "#ff0080", RGB(255, 0, 128)},
		{"full uppercase", "#FF0080", RGB(255, 0, 128)},
		{"no hash", "141414", RGB(20, 20, 20)},
		{"short form", "#fff", White},
		{"surrounding space", "  #000000 ", Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, input := range []string{"", "#", "#12345", "#gggggg", "red"} {
		_, err := ParseHex(input)
		assert.Error(t, err, input)
		assert.True(t, errors.Is(err, ErrInvalidHex), input)
	}
}

func TestHexIsLowercaseSixDigits(t *testing.T) {
	assert.Equal(t, "#ff0080", RGB(255, 0, 128).Hex())
	assert.Equal(t, "#000000", Black.Hex())
	assert.Equal(t, "#0a0b0c", RGB(10, 11, 12).Hex())
	assert.Equal(t, "#141414", RGB(20, 20, 20).String())
}

func TestLuma(t *testing.T) {
	assert.Equal(t, 90, Luma(RGB(255, 0, 128)))
	assert.Equal(t, 255, Luma(White))
	assert.Equal(t, 0, Luma(Black))
	assert.Equal(t, 20, Luma(RGB(20, 20, 20)))
	assert.Equal(t, 128, Luma(RGB(128, 128, 128)))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  ContrastClass
	}{
		{"white", White, Light},
		{"black", Black, Dark},
		{"pink", RGB(255, 0, 128), Dark},
		{"boundary gray", RGB(128, 128, 128), Light},
		{"just below boundary", RGB(127, 127, 127), Dark},
		{"pure green", RGB(0, 255, 0), Light},
		{"pure blue", RGB(0, 0, 255), Dark},
		{"near black", RGB(20, 20, 20), Dark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.color))
		})
	}
}

func TestClassifyMatchesLumaEverywhere(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				c := RGB(uint8(r), uint8(g), uint8(b))
				if Luma(c) >= 128 {
					assert.Equal(t, Black, ContrastForeground(c), c.Hex())
				} else {
					assert.Equal(t, White, ContrastForeground(c), c.Hex())
				}
			}
		}
	}
}

func TestContrastRatio(t *testing.T) {
	assert.InDelta(t, 21.0, ContrastRatio(Black, White), 0.01)
	assert.InDelta(t, 21.0, ContrastRatio(White, Black), 0.01)
	assert.InDelta(t, 1.0, ContrastRatio(RGB(20, 20, 20), RGB(20, 20, 20)), 0.001)
}
