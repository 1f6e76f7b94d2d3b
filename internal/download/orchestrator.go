package download

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sync/atomic"

	"github.com/google/uuid"

	ioutils "github.com/YSSF8/pluck/internal/io"
	"github.com/YSSF8/pluck/internal/library"
	"github.com/YSSF8/pluck/internal/model"
)

// ErrBusy is returned by Start while another job occupies the pipeline.
var ErrBusy = errors.New("a download is already in progress")

// EventLevel indicates the severity/type of an event message.
type EventLevel int

const (
	LevelInfo EventLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// Event is one progress or terminal update from the orchestrator.
//
// Progress events carry the job's current State and transfer Fraction
// (FractionIndeterminate when the size is unknown). The final event of a job
// has a terminal State: Succeeded events carry Filename and Album, Failed
// events carry a Reason.
type Event struct {
	URL      string
	State    model.JobState
	Fraction float64
	Reason   model.FailureReason
	Message  string
	Level    EventLevel

	// Filename and Album are set on the terminal success event.
	Filename string
	Album    string
}

// Terminal reports whether this is a job's final event.
func (e Event) Terminal() bool {
	return e.State.IsTerminal()
}

// Orchestrator drives the download-and-file-into-library workflow.
//
// One job at a time moves through
// RequestingPermission → Downloading → Finalizing → Filing and ends in
// Succeeded or Failed. The single-flight lock is an explicit field on the
// orchestrator, taken with a compare-and-set in Start and released on every
// exit path; a Start while occupied fails immediately with ErrBusy — no
// queueing, and no cancellation of the running job.
//
// Example usage:
//
//	orch := download.NewOrchestrator(client, gate, lib, tempDir, "Pluck")
//	go func() {
//	    for event := range orch.Events() {
//	        fmt.Println(event.Message)
//	        if event.Terminal() {
//	            break
//	        }
//	    }
//	}()
//	if err := orch.Start(ctx, imgURL, model.CategoryImage); err != nil {
//	    // errors.Is(err, download.ErrBusy) while another job runs
//	}
type Orchestrator struct {
	transfer  Transfer
	gate      library.Gate
	lib       AssetLibrary
	tracker   *Tracker
	tempDir   string
	albumRoot string
	events    chan Event
	busy      atomic.Bool
}

// NewOrchestrator creates an Orchestrator.
//
// tempDir receives in-flight transfers before registration; albumRoot is the
// album name prefix, so "Pluck" files images into "Pluck/Images".
func NewOrchestrator(transfer Transfer, gate library.Gate, lib AssetLibrary, tempDir, albumRoot string) *Orchestrator {
	return &Orchestrator{
		transfer:  transfer,
		gate:      gate,
		lib:       lib,
		tracker:   NewTracker(),
		tempDir:   tempDir,
		albumRoot: albumRoot,
		events:    make(chan Event, 256),
	}
}

// Events returns the stream of progress and terminal events. Consumers must
// drain it; state-change and terminal events block until delivered, while
// high-frequency fraction updates are dropped when the consumer lags.
func (o *Orchestrator) Events() <-chan Event {
	return o.events
}

// Tracker returns the progress tracker for read access by the presentation
// layer.
func (o *Orchestrator) Tracker() *Tracker {
	return o.tracker
}

// Busy reports whether a job currently occupies the pipeline.
func (o *Orchestrator) Busy() bool {
	return o.busy.Load()
}

// Start begins a download job for jobURL into the given category.
//
// It returns ErrBusy while another job is running: requests are rejected,
// never queued. The job itself runs asynchronously; its outcome arrives on
// the Events stream.
func (o *Orchestrator) Start(ctx context.Context, jobURL string, cat model.Category) error {
	if cat == model.CategoryUnclassified {
		return fmt.Errorf("cannot download unclassified media: %s", jobURL)
	}
	if !o.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	go o.run(ctx, jobURL, cat)
	return nil
}

func (o *Orchestrator) run(ctx context.Context, jobURL string, cat model.Category) {
	// finish is called before each terminal event so a caller reacting to
	// that event observes the lock already free. It must run exactly once
	// per job: a second release could free the lock out from under a job
	// the caller started in the meantime. The defer backstops unexpected
	// exits.
	released := false
	finish := func() {
		if released {
			return
		}
		released = true
		o.tracker.clear(jobURL)
		o.busy.Store(false)
	}
	defer finish()

	fail := func(reason model.FailureReason, message string) {
		finish()
		o.emit(Event{
			URL:     jobURL,
			State:   model.JobStateFailed,
			Reason:  reason,
			Level:   LevelError,
			Message: message,
		})
	}

	o.emit(Event{
		URL:     jobURL,
		State:   model.JobStateRequestingPermission,
		Level:   LevelVerbose,
		Message: "requesting library permission",
	})

	status := o.gate.Request(ctx)
	if status == library.PermissionDenied {
		// Re-askable denial: prompt once more before giving up.
		status = o.gate.Request(ctx)
	}
	switch status {
	case library.PermissionGranted:
	case library.PermissionBlocked:
		fail(model.FailurePermissionBlocked,
			"library access is blocked; enable it in system settings")
		return
	default:
		fail(model.FailurePermissionDenied, "library permission denied")
		return
	}

	if err := ioutils.EnsureDir(o.tempDir); err != nil {
		fail(model.FailureTransferError,
			fmt.Sprintf("could not prepare temp directory: %v", err))
		return
	}

	filename := fileNameForURL(jobURL)
	dest := filepath.Join(o.tempDir, filename)

	o.tracker.set(jobURL, FractionIndeterminate)
	o.emit(Event{
		URL:      jobURL,
		State:    model.JobStateDownloading,
		Fraction: FractionIndeterminate,
		Level:    LevelInfo,
		Message:  "downloading " + filename,
	})

	err := o.transfer.DownloadFile(ctx, jobURL, dest, func(written, total int64) {
		fraction := FractionIndeterminate
		if total > 0 {
			fraction = float64(written) / float64(total)
		}
		o.tracker.set(jobURL, fraction)
		o.emitProgress(Event{
			URL:      jobURL,
			State:    model.JobStateDownloading,
			Fraction: fraction,
			Level:    LevelVerbose,
		})
	})
	if err != nil {
		// No partial local file is retained on a failed transfer.
		os.Remove(dest)
		fail(model.FailureTransferError, fmt.Sprintf("transfer failed: %v", err))
		return
	}

	o.emit(Event{
		URL:     jobURL,
		State:   model.JobStateFinalizing,
		Level:   LevelVerbose,
		Message: "registering " + filename,
	})

	asset, err := o.lib.Register(ctx, dest, jobURL, cat)
	if err != nil {
		os.Remove(dest)
		fail(model.FailureLibraryError,
			fmt.Sprintf("could not register asset: %v", err))
		return
	}

	album := o.albumRoot + "/" + cat.FolderName()
	o.emit(Event{
		URL:     jobURL,
		State:   model.JobStateFiling,
		Level:   LevelVerbose,
		Message: "filing into " + album,
	})

	if err := o.lib.AddToAlbum(ctx, asset, album); err != nil {
		// The asset is already safely stored; filing trouble is a warning
		// and the job still succeeds.
		o.emit(Event{
			URL:     jobURL,
			State:   model.JobStateFiling,
			Level:   LevelWarning,
			Message: fmt.Sprintf("could not file into %s: %v", album, err),
		})
	}

	finish()
	o.emit(Event{
		URL:      jobURL,
		State:    model.JobStateSucceeded,
		Fraction: 1,
		Level:    LevelSuccess,
		Filename: asset.Filename,
		Album:    album,
		Message:  fmt.Sprintf("saved %s to %s", asset.Filename, album),
	})
}



func (o *Orchestrator) emit(e Event) {
	o.events <- e
}

// emitProgress drops fraction updates when the consumer lags; the tracker
// still holds the latest value.
func (o *Orchestrator) emitProgress(e Event) {
	select {
	case o.events <- e:
	default:
	}
}

// fileNameForURL derives a local filename from the URL's final path segment,
// falling back to a generated name when the URL has none.
func fileNameForURL(rawURL string) string {
	var segment string
	if u, err := url.Parse(rawURL); err == nil {
		segment = path.Base(u.Path)
	}
	if segment == "." || segment == "/" {
		segment = ""
	}
	segment = ioutils.SanitizeFileName(segment)
	if segment == "" {
		return "pluck-" + uuid.NewString()[:8]
	}
	return segment
}
