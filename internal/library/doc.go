// Package library models the platform media library pluck files assets
// into.
//
// # Permission
//
// A Gate answers whether pluck may write to the library at all. The three
// answers mirror platform permission models: granted, denied (re-askable)
// and blocked (fix it in system settings). Ready-made gates cover the common
// cases:
//
//	library.Static(library.PermissionGranted)   // non-interactive
//	library.Ask(promptUser)                     // interactive shells
//	library.Writable(settings.LibraryPath)      // filesystem probe
//
// # Assets and albums
//
// Register stores a downloaded file under the library root and returns an
// Asset; AddToAlbum files the asset into a named album directory such as
// "Pluck/Images". Optional post-processing (ID3 tagging of audio, JPEG
// thumbnails of images) runs during registration and reports problems as
// warnings, never as failures.
package library
