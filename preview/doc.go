// Package preview draws triangles, either as raster images through
// fogleman/gg or as SVG.
//
// Strokes are drawn as a border: the shape is inset by half the line width
// before stroking, so the whole stroke stays inside the image bounds.
package preview
