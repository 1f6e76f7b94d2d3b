// Package model defines the core data structures used throughout pluck.
//
// # References and categories
//
// A MediaReference is a raw string found during a markup scan together with
// its Provenance (the structural context it was found in) and an optional
// tag hint:
//
//	ref := model.MediaReference{
//	    RawValue:   "img/photo.jpg",
//	    Provenance: model.ProvenanceTagAttribute,
//	    TagHint:    "img",
//	}
//
// Category is the classification target (Image, Audio, Video), and
// CategorizedMediaSet is the final product of an extraction: three ordered,
// duplicate-free URL lists.
//
// # Download jobs
//
// JobState and FailureReason describe the download orchestrator's state
// machine. States are strictly sequential and end in Succeeded or Failed:
//
//	if event.State.IsTerminal() {
//	    fmt.Println("done:", event.State, event.Reason)
//	}
package model
