package model

// JobState represents the state of a download job.
//
// A job moves strictly forward through
// Pending → RequestingPermission → Downloading → Finalizing → Filing and
// ends in either Succeeded or Failed. No state is skipped on the success
// path, and a terminal state is final: all job state is cleared when it is
// reached.
type JobState string

const (
	// JobStatePending means the job has been accepted but not started.
	JobStatePending JobState = "Pending"

	// JobStateRequestingPermission means the library permission prompt is
	// outstanding.
	JobStateRequestingPermission JobState = "RequestingPermission"

	// JobStateDownloading means the transfer is in progress.
	JobStateDownloading JobState = "Downloading"

	// JobStateFinalizing means the downloaded file is being registered as a
	// library asset.
	JobStateFinalizing JobState = "Finalizing"

	// JobStateFiling means the asset is being added to its album.
	JobStateFiling JobState = "Filing"

	// JobStateSucceeded means the asset is stored in the library.
	JobStateSucceeded JobState = "Succeeded"

	// JobStateFailed means the job ended without storing an asset.
	JobStateFailed JobState = "Failed"
)

// String returns the string representation of the state.
func (s JobState) String() string {
	return string(s)
}

// IsTerminal reports whether the state is Succeeded or Failed.
func (s JobState) IsTerminal() bool {
	return s == JobStateSucceeded || s == JobStateFailed
}

// FailureReason is the machine-readable reason attached to a failed job.
type FailureReason string

const (
	// FailureNone is the zero reason, present on non-failed events.
	FailureNone FailureReason = ""

	// FailurePermissionDenied means the user declined the library permission
	// prompt twice. Asking again later may succeed.
	FailurePermissionDenied FailureReason = "PermissionDenied"

	// FailurePermissionBlocked means library access is permanently denied
	// and must be re-enabled in system settings.
	FailurePermissionBlocked FailureReason = "PermissionBlocked"

	// FailureTransferError means the download itself produced no file.
	FailureTransferError FailureReason = "TransferError"

	// FailureLibraryError means the file downloaded but could not be
	// registered as a library asset.
	FailureLibraryError FailureReason = "LibraryError"
)
