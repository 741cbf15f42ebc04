// Package imaging provides the image I/O and rendering around seam carving.
//
// It decodes and caches source images, samples and crops them, pre-blurs them
// for energy computation, and renders carving output: energy maps, seam
// overlays, and base64 PNG payloads for MCP responses. The carving itself lives
// in package carver; this package only deals in image.Image values and plain
// grids and paths.
//
// # Coordinate System
//
// All pixel coordinates are 0-based and relative to the image origin, even when
// img.Bounds().Min is not (0,0):
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Cached images are never modified.
// The remaining functions are stateless and return new images.
//
// # Color Representation
//
// Sampled colors are returned as:
//   - Hex: "#RRGGBB" (alpha excluded)
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// Overlay colors are accepted as "#RRGGBB" or "#RRGGBBAA".
//
// # Output Formats
//
// Inline results are always PNG. SaveImage picks the format from the file
// extension: .png, .jpg/.jpeg, .gif, .bmp, .tif/.tiff.
package imaging
