// Package report renders search results for people and for other programs.
//
// What
//
//   - Table and Markdown: one row per algorithm with success, optimality,
//     cost, expanded nodes, peak memory and elapsed time.
//   - Paths: the solution path of every run, or "not found".
//   - Overlay: a per-cell classification of a maze after a run (wall, open,
//     expanded with its first-expansion rank, path, start, goal). Heatmap
//     turns it into text and WritePNG into an image.
//   - Records, WriteJSON and WriteYAML: a serialisable view of Metrics.
//
// Rendering never mutates the maze or the metrics it is given.
package report
