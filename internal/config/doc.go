// Package config manages application settings.
//
// Settings are stored as a JSON file. Load returns defaults when the file
// does not exist, so the application works out of the box:
//
//	settings, err := config.Load("/home/user/.config/pluck/settings.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(settings.LibraryPath)
//
// The settings cover the library location and album root name, download
// temp directory, HTTP behavior, and the optional asset post-processing
// steps (audio tagging, image thumbnails).
package config
