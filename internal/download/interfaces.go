package download

import (
	"context"

	"github.com/YSSF8/pluck/internal/library"
	"github.com/YSSF8/pluck/internal/model"
)

// Transfer downloads a URL to a local path, reporting progress through the
// callback as (bytesWritten, totalExpected); total is -1 when unknown.
// internal/http's Client satisfies this interface.
type Transfer interface {
	DownloadFile(ctx context.Context, url, destPath string, onProgress func(written, total int64)) error
}

// AssetLibrary registers downloaded files and files them into albums.
// *library.Library is the production implementation; tests substitute
// failing fakes.
type AssetLibrary interface {
	Register(ctx context.Context, localPath, sourceURL string, cat model.Category) (library.Asset, error)
	AddToAlbum(ctx context.Context, asset library.Asset, album string) error
}
