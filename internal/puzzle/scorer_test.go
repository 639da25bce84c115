package puzzle

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelDiffers(t *testing.T) {
	tests := []struct {
		name string
		p1   Pixel
		p2   Pixel
		want bool
	}{
		{"identical", Pixel{10, 20, 30}, Pixel{10, 20, 30}, false},
		{"just below threshold", Pixel{0, 0, 0}, Pixel{10, 10, 9}, false},
		{"exactly threshold", Pixel{0, 0, 0}, Pixel{10, 10, 10}, true},
		{"above threshold", Pixel{0, 0, 0}, Pixel{255, 0, 0}, true},
		{"negative deltas count", Pixel{30, 0, 0}, Pixel{0, 0, 0}, true},
		{"mixed signs sum", Pixel{15, 0, 0}, Pixel{0, 15, 0}, true},
		{"single channel", Pixel{100}, Pixel{71}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PixelDiffers(tt.p1, tt.p2))
		})
	}
}

func TestPixelDiffers_SelfIsNeverDifferent(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		p := Pixel{uint8(r.IntN(256)), uint8(r.IntN(256)), uint8(r.IntN(256))}
		require.False(t, PixelDiffers(p, p), "pixel %v", p)
	}
}

func randomBorder(r *rand.Rand, n int) Border {
	b := make(Border, n)
	for i := range b {
		b[i] = Pixel{uint8(r.IntN(256)), uint8(r.IntN(256)), uint8(r.IntN(256))}
	}
	return b
}

func TestBorderDifference(t *testing.T) {
	a := Border{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	b := Border{{0, 0, 0}, {255, 0, 0}, {5, 5, 5}, {0, 40, 0}}

	got, err := BorderDifference(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestBorderDifference_SelfIsZero(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for n := 0; n < 50; n++ {
		a := randomBorder(r, n)
		got, err := BorderDifference(a, a)
		require.NoError(t, err)
		require.Zero(t, got)
	}
}

func TestBorderDifference_Symmetric(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 200; i++ {
		n := 1 + r.IntN(40)
		a, b := randomBorder(r, n), randomBorder(r, n)

		ab, err := BorderDifference(a, b)
		require.NoError(t, err)
		ba, err := BorderDifference(b, a)
		require.NoError(t, err)
		require.Equal(t, ab, ba)
	}
}

func TestBorderDifference_DimensionMismatch(t *testing.T) {
	_, err := BorderDifference(Border{{0}}, Border{{0}, {0}})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
