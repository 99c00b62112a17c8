// Package raster samples a noise.Module over a regular 2D grid and writes
// the result as an image.
//
// What:
//
//   - Sample evaluates a module once per cell (row-major), at
//     Origin + (x, y)*Step, and stores the values in a Grid.
//   - Grid.Gray maps values in [0,1] to 8-bit luminance (clamped).
//   - WritePGM (binary P5), WritePNG and WriteBMP encode a Grid;
//     Encode dispatches on a Format.
//   - Grid.Regions labels connected cells at or above a threshold,
//     e.g. islands of a heightmap, with 4- or 8-connectivity.
//
// Why:
//
//   - The noise package only knows about points. Previews, golden images
//     and heightmaps all need the same "evaluate a rectangle" loop.
//
// Complexity:
//
//   - Sample:  O(W×H × cost(module)), Memory: O(W×H).
//   - Regions: O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - Writers: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: Width or Height < 1.
//   - ErrGridShape: a hand-built Grid whose Values do not match its size.
//   - ErrBadStep: Step ≤ 0.
//   - ErrUnknownFormat: unsupported output format.
//   - Module errors are wrapped with the failing cell: errors.Is still
//     matches the module's sentinel.
//
// Sampling is sequential; callers that want parallelism can split the
// rectangle by Origin and sample the parts themselves.
package raster
