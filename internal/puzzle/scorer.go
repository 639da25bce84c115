package puzzle

import "fmt"

// PixelDifferenceThreshold is the summed per-channel distance at which two
// pixels count as different.
const PixelDifferenceThreshold = 30

// PixelDiffers reports whether the summed absolute per-channel difference of
// p1 and p2 reaches PixelDifferenceThreshold. Both pixels are expected to
// have the same channel count; extra channels on either side are ignored.
func PixelDiffers(p1, p2 Pixel) bool {
	n := min(len(p1), len(p2))
	diff := 0
	for i := 0; i < n; i++ {
		d := int(p1[i]) - int(p2[i])
		if d < 0 {
			d = -d
		}
		diff += d
	}
	return diff >= PixelDifferenceThreshold
}

// BorderDifference counts the positions at which a and b differ according to
// PixelDiffers. Lower is better; 0 means the borders are pixel-identical
// within the threshold.
//
// Returns ErrDimensionMismatch if the borders have different lengths.
func BorderDifference(a, b Border) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	count := 0
	for i := range a {
		if PixelDiffers(a[i], b[i]) {
			count++
		}
	}
	return count, nil
}
