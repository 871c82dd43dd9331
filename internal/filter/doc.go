// Package filter provides the raster filters used by the layer pipeline.
//
// This package contains:
//   - Gaussian kernels (cached) and separable blur for RGBA and alpha planes
//   - Shadow masks (alpha extract, offset, blur, colourise)
//   - 4x5 colour matrix filters (brightness, contrast, saturation, hue
//     rotate, grayscale, sepia, invert, opacity)
//   - Motion blur and radial (zoom) blur
//
// All filters operate on premultiplied *image.RGBA buffers and honour the
// buffer's Rect, so sub-images work as expected. Colour matrices are
// evaluated on straight-alpha values and re-premultiplied on write.
package filter
