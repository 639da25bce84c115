package imagestore

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"unicode/utf8"

	"github.com/anthonynsimon/bild/clone"

	"github.com/ironsheep/puzzle-tools-mcp/internal/puzzle"
)

// GridOverlayResult contains an image with the tile grid drawn over it.
type GridOverlayResult struct {
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	ImageBase64 string   `json:"image_base64"`
	MimeType    string   `json:"mime_type"`
	TileSize    TileSize `json:"tile_size"`
}

// GridOverlay draws the tile boundaries of layout over img and, when labels
// is non-nil, writes labels[s] in the top-left corner of slot s. Blank slots
// are usually labelled puzzle.BlankID and show as "-1".
//
// An unparsable gridColorHex falls back to red.
func GridOverlay(img image.Image, layout puzzle.Layout, size TileSize, labels []int, gridColorHex string) (*GridOverlayResult, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	gridColor, err := ParseHexColor(gridColorHex)
	if err != nil {
		gridColor = color.NRGBA{R: 255, A: 255}
	}

	result := clone.AsRGBA(img)
	bounds := result.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	// Vertical lines
	for x := size.Cols; x < width; x += size.Cols {
		for y := 0; y < height; y++ {
			result.Set(bounds.Min.X+x, bounds.Min.Y+y, gridColor)
		}
	}

	// Horizontal lines
	for y := size.Rows; y < height; y += size.Rows {
		for x := 0; x < width; x++ {
			result.Set(bounds.Min.X+x, bounds.Min.Y+y, gridColor)
		}
	}

	if labels != nil {
		fg := color.RGBA{255, 255, 255, 255}
		bg := color.RGBA{0, 0, 0, 180}
		for s := 0; s < layout.Total() && s < len(labels); s++ {
			row, col := layout.Position(s)
			drawLabel(result, bounds.Min.X+col*size.Cols+2, bounds.Min.Y+row*size.Rows+2, strconv.Itoa(labels[s]), fg, bg)
		}
	}

	encoded, err := EncodePNGBase64(FromImage(result))
	if err != nil {
		return nil, err
	}

	return &GridOverlayResult{
		Width:       width,
		Height:      height,
		ImageBase64: encoded,
		MimeType:    "image/png",
		TileSize:    size,
	}, nil
}

// digitGlyphs holds 3x5 bitmaps, one byte per row, high bit on the left.
var digitGlyphs = map[rune][5]uint8{
	'0': {0b111, 0b101, 0b101, 0b101, 0b111},
	'1': {0b010, 0b110, 0b010, 0b010, 0b111},
	'2': {0b111, 0b001, 0b111, 0b100, 0b111},
	'3': {0b111, 0b001, 0b111, 0b001, 0b111},
	'4': {0b101, 0b101, 0b111, 0b001, 0b001},
	'5': {0b111, 0b100, 0b111, 0b001, 0b111},
	'6': {0b111, 0b100, 0b111, 0b101, 0b111},
	'7': {0b111, 0b001, 0b001, 0b001, 0b001},
	'8': {0b111, 0b101, 0b111, 0b101, 0b111},
	'9': {0b111, 0b101, 0b111, 0b001, 0b111},
	'-': {0b000, 0b000, 0b111, 0b000, 0b000},
}

const (
	glyphAdvance = 4
	glyphRows    = 5
	glyphCols    = 3
)

// drawLabel writes text at (x, y) over a bg box with a one pixel margin.
// Runes without a glyph leave a gap; everything is clipped to img.
func drawLabel(img *image.RGBA, x, y int, text string, fg, bg color.RGBA) {
	n := utf8.RuneCountInString(text)
	box := image.Rect(x-1, y-1, x+n*glyphAdvance, y+glyphRows+2).Intersect(img.Bounds())
	draw.Draw(img, box, image.NewUniform(bg), image.Point{}, draw.Src)

	for i, ch := range []rune(text) {
		glyph, ok := digitGlyphs[ch]
		if !ok {
			continue
		}
		left := x + i*glyphAdvance
		for row, bits := range glyph {
			for col := 0; col < glyphCols; col++ {
				if bits&(1<<(glyphCols-1-col)) == 0 {
					continue
				}
				if p := image.Pt(left+col, y+row); p.In(img.Bounds()) {
					img.SetRGBA(p.X, p.Y, fg)
				}
			}
		}
	}
}
