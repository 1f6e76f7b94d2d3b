// Package download drives the single-flight download-and-file workflow.
//
// # Orchestrator
//
// The Orchestrator moves one job at a time through the state machine
//
//	Idle → RequestingPermission → Downloading → Finalizing → Filing
//	     → Succeeded | Failed(reason)
//
// A second Start while a job is running returns ErrBusy immediately; jobs
// are never queued and cannot be cancelled — the only early exit is the
// job's own failure path.
//
// # Basic Usage
//
//	orch := download.NewOrchestrator(client, gate, lib, tempDir, "Pluck")
//
//	go func() {
//	    for event := range orch.Events() {
//	        render(event)
//	    }
//	}()
//
//	err := orch.Start(ctx, "https://site.com/a.jpg", model.CategoryImage)
//
// # Progress
//
// Progress is a stream of Events terminating in one Succeeded or Failed
// event per job. The Tracker additionally exposes the in-flight URL's
// current fraction for polling consumers; it holds at most one entry, which
// is removed unconditionally when the job ends.
//
// # Failure semantics
//
// Permission failures distinguish a re-askable denial (the gate is asked a
// second time before the job fails with PermissionDenied) from a permanent
// block (PermissionBlocked, fixed outside the application). A failed
// transfer retains no partial file. A failed album filing is only a warning:
// the asset is already stored, so the job still succeeds. On every exit path
// the single-flight lock is released and the tracker entry cleared.
package download
