package download

import "sync"

// FractionIndeterminate is the progress fraction reported when the server
// did not announce a transfer size.
const FractionIndeterminate = -1.0

// Tracker maps the in-flight URL to its transfer fraction.
//
// The orchestrator is single-flight, so the tracker holds at most one entry
// at any instant; the entry appears when a job enters Downloading and is
// removed unconditionally when the job reaches a terminal state. Only the
// orchestrator writes; the presentation layer reads.
type Tracker struct {
	mu       sync.RWMutex
	url      string
	fraction float64
	active   bool
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Fraction returns the transfer fraction for the given URL, and whether an
// entry for it exists. The fraction is FractionIndeterminate when the total
// size is unknown.
func (t *Tracker) Fraction(url string) (float64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.active || t.url != url {
		return 0, false
	}
	return t.fraction, true
}

// Current returns the in-flight URL and its fraction, if any transfer is
// active.
func (t *Tracker) Current() (url string, fraction float64, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.active {
		return "", 0, false
	}
	return t.url, t.fraction, true
}

// set creates or updates the entry for url.
func (t *Tracker) set(url string, fraction float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.url = url
	t.fraction = fraction
	t.active = true
}

// clear removes the entry for url. Clearing a URL that is not tracked is a
// no-op, so terminal paths can clear unconditionally.
func (t *Tracker) clear(url string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active && t.url == url {
		t.url = ""
		t.fraction = 0
		t.active = false
	}
}
