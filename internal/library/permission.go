package library

import (
	"context"
	"os"
	"path/filepath"

	ioutils "github.com/YSSF8/pluck/internal/io"
)

// PermissionStatus is the outcome of a media library permission request.
type PermissionStatus int

const (
	// PermissionGranted means assets may be written to the library.
	PermissionGranted PermissionStatus = iota

	// PermissionDenied means the request was declined but may be asked
	// again.
	PermissionDenied

	// PermissionBlocked means access is permanently unavailable until the
	// user intervenes outside the application (system settings, directory
	// permissions).
	PermissionBlocked
)

// String returns a human-readable status name.
func (s PermissionStatus) String() string {
	switch s {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "blocked"
	}
}

// Gate answers whether pluck may write to the media library.
//
// The download orchestrator asks the gate before every transfer; a denied
// answer is re-asked once before the job fails. Implementations supply the
// platform side of permissions: an interactive prompt, a fixed answer, or a
// filesystem writability probe.
type Gate interface {
	Request(ctx context.Context) PermissionStatus
}

// GateFunc adapts a function to the Gate interface.
type GateFunc func(ctx context.Context) PermissionStatus

// Request calls f.
func (f GateFunc) Request(ctx context.Context) PermissionStatus {
	return f(ctx)
}

// Static returns a gate that always answers with the given status, for
// non-interactive use and tests.
func Static(status PermissionStatus) Gate {
	return GateFunc(func(context.Context) PermissionStatus {
		return status
	})
}

// Ask returns a gate that prompts through ask on every request. A false
// answer is a re-askable denial, so the orchestrator will prompt once more
// before giving up.
func Ask(ask func() bool) Gate {
	return GateFunc(func(context.Context) PermissionStatus {
		if ask() {
			return PermissionGranted
		}
		return PermissionDenied
	})
}

// Writable returns a gate that probes whether the library root can be
// created and written. Failure is a blocked permission: the remediation is
// outside the application.
func Writable(root string) Gate {
	return GateFunc(func(context.Context) PermissionStatus {
		if err := ioutils.EnsureDir(root); err != nil {
			return PermissionBlocked
		}
		probe := filepath.Join(root, ".pluck-probe")
		if err := os.WriteFile(probe, nil, 0644); err != nil {
			return PermissionBlocked
		}
		os.Remove(probe)
		return PermissionGranted
	})
}
