// Package imagestore moves pixels between image files and puzzle tiles.
//
// It is the I/O side of the reassembly engine: it decodes images into raw
// pixel buffers, cuts buffers into equal tiles, pastes a placement of tiles
// back into one buffer and encodes the result. It also generates scrambled
// puzzles for testing and draws tile grids for inspection.
//
// # Pixel Buffers
//
// A Buffer is row-major with Channels bytes per pixel. Images loaded from disk
// always become 3-channel RGB buffers; alpha is dropped, matching how the
// engine compares raw colour channels only.
//
// # Tile Geometry
//
// Tiles are cut on a Layout of Across x Down slots. Slot s starts at pixel
// row TileSize.Rows*(s/Across) and column TileSize.Cols*(s%Across). Tiles on
// the right and bottom edges that run past the image are padded with zeros.
//
// # Supported Formats
//
// Decoding covers PNG, JPEG, GIF, BMP, TIFF and WebP. Encoding picks the
// format from the file extension (PNG, JPEG, GIF, BMP, TIFF).
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. All other functions are stateless.
package imagestore
