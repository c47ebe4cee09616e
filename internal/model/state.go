package model

// FetchState represents the state of the UI with respect to quote lookups
type FetchState string

const (
	// FetchStateIdle means no lookup is running; the content area shows nothing,
	// a prior chart, or a prior error
	FetchStateIdle FetchState = "Idle"

	// FetchStateFetching means a lookup has been submitted and has not resolved yet
	FetchStateFetching FetchState = "Fetching"
)

// String returns the string representation of FetchState
func (fs FetchState) String() string {
	return string(fs)
}

// IsBusy returns true while a lookup is in flight
func (fs FetchState) IsBusy() bool {
	return fs == FetchStateFetching
}

// AcceptsSubmit returns true if a new search may be started from this state
func (fs FetchState) AcceptsSubmit() bool {
	return fs == FetchStateIdle || fs == ""
}
