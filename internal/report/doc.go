// Package report summarises solved puzzles.
//
// Build turns a puzzle.Result into a Report with placement counts, link
// statistics and the number of disconnected fragments. DescribeTile exposes
// one tile's ranked scores for inspection, and ToDOT/RenderSVG draw the
// neighbor link graph with Graphviz.
//
// All functions read tiles without modifying them and are safe to call
// concurrently on the same solved tile set.
package report
