// Package render turns committed word placements into output artifacts.
//
// Three sinks are provided:
//
//   - [RenderSVG]: scalable vector output built directly as XML text.
//   - [RenderPNG]: raster output drawn with fogleman/gg using real
//     font faces.
//   - [RenderJSON]: the data interchange format, carrying placements,
//     run parameters, and the summary report for external tooling.
//
// All sinks are pure functions of the layout: they never mutate the
// placement list and can run in any order after placement finalizes.
package render
