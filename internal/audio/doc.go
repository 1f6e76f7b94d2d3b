// Package audio post-processes downloaded audio assets.
//
// The Tagger writes ID3v2 metadata to MP3 assets during library
// registration: a title derived from the filename (when the file carries
// none) and a comment frame holding the source URL. Tagging failures are
// never fatal; the library downgrades them to warnings since the asset
// itself is already stored.
package audio
