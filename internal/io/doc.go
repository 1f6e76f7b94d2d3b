// Package ioutils provides file system and image helpers shared by the
// library and download layers.
//
// # Files
//
// Filename sanitization keeps names valid on every platform pluck runs on:
//
//	name := ioutils.SanitizeFileName(`photo: "final"?.jpg`)
//	// "photo_ _final__.jpg"
//
// UniquePath prevents a second download of "photo.jpg" from overwriting the
// first, and LinkOrCopyFile files an asset into an album without doubling
// disk usage where hard links are available.
//
// # Images
//
// ImageService renders JPEG thumbnails of registered image assets using
// golang.org/x/image/draw (Catmull-Rom scaling). Decoders for PNG, GIF, BMP
// and WebP are registered so any image the classifier accepts can be
// thumbnailed.
package ioutils
