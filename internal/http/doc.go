// Package http provides the HTTP client used for page fetching and media
// transfers.
//
// The client is deliberately small: GetPage fetches a page's body together
// with its final post-redirect URL (the base for resolving relative
// references), GetFileSize probes a transfer size via HEAD, and DownloadFile
// streams a media file to disk reporting progress through a ProgressWriter.
//
// The extraction core never calls this package directly; it sees the client
// only through the extract.PageFetcher interface, keeping page retrieval an
// external collaborator.
package http
