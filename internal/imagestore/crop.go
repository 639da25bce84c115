package imagestore

import (
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/puzzle-tools-mcp/internal/puzzle"
)

// CropResult contains one tile cut from an image.
type CropResult struct {
	Tile        int    `json:"tile"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// CropTile returns tile id of tiles as a base64 PNG, scaled by scale.
// Scaling uses nearest-neighbor so border pixels keep their exact values.
func CropTile(tiles []*puzzle.Tile, id int, scale float64) (*CropResult, error) {
	if id < 0 || id >= len(tiles) {
		return nil, fmt.Errorf("%w: tile %d of %d", puzzle.ErrInvalidTileID, id, len(tiles))
	}
	if scale < 0 {
		return nil, fmt.Errorf("invalid scale %g", scale)
	}

	img := TileImage(tiles[id])
	if scale != 1.0 && scale > 0 {
		w := max(1, int(float64(img.Bounds().Dx())*scale))
		h := max(1, int(float64(img.Bounds().Dy())*scale))
		img = imaging.Resize(img, w, h, imaging.NearestNeighbor)
	}

	encoded, err := EncodePNGBase64(FromImage(img))
	if err != nil {
		return nil, err
	}
	return &CropResult{
		Tile:        id,
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}
