// Package puzzle reassembles an image that was cut into a grid of equal,
// unrotated tiles whose arrangement is unknown.
//
// The engine works in three strictly ordered phases:
//
//  1. Pair matching: every unordered pair of tiles is scored in all four
//     cardinal orientations by counting border pixels that differ
//     (see PixelDiffers and BorderDifference). Pairs are scored in parallel.
//  2. Neighbor selection: each tile keeps at most one neighbor per direction,
//     the candidate whose strongest preference points that way with the
//     lowest score, provided the score is within 60% of the border length.
//  3. Grid assembly: starting from a corner tile (no up or left neighbor),
//     right and down links are followed to fill a row-major placement.
//     Positions no link reaches hold a blank tile.
//
// # Coordinate System
//
// Tiles are addressed by a dense zero-based ID assigned at slicing time.
// A Layout gives the grid as Across tiles per row and Down tile rows; slot s
// of a placement sits at tile-row s/Across and tile-column s%Across.
//
// # Limitations
//
// Selection is greedy and per tile. Two tiles may both claim the same third
// tile in conflicting roles and nothing reconciles them; assembly then simply
// follows whichever link it meets last. KeepMutual offers an opt-in pass that
// drops links the other tile does not return.
//
// # Thread Safety
//
// MatchAll writes each tile's Scores slot for the other tile only, so pairs
// run concurrently without locks. SelectAll, KeepMutual and Assemble mutate or
// read tiles sequentially and must not overlap with MatchAll.
package puzzle
