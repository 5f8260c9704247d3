// Package imaging converts between encoded image files and the pixel grids
// the stego codec works on.
//
// Decoding accepts PNG, JPEG, GIF, BMP, TIFF and WebP. Encoding always
// produces PNG: any lossy format would destroy the least-significant bits
// that carry the hidden frame.
//
// Grids use (B, G, R) channel order, matching OpenCV-based tools, so
// carriers written by those tools read back here and vice versa. Alpha is discarded on decode and written as opaque on
// encode.
package imaging
