package model

// UpdateStatus is the state reported by the update checker
type UpdateStatus string

const (
	// UpdateStatusIdle means no check has been requested
	UpdateStatusIdle UpdateStatus = ""

	// UpdateStatusChecking means a check is in flight
	UpdateStatusChecking UpdateStatus = "checking"

	// UpdateStatusAvailable means a newer release exists
	UpdateStatusAvailable UpdateStatus = "available"

	// UpdateStatusNotAvailable means the running version is current
	UpdateStatusNotAvailable UpdateStatus = "not-available"

	// UpdateStatusDownloading means the release asset is being fetched
	UpdateStatusDownloading UpdateStatus = "downloading"

	// UpdateStatusDownloaded means the release asset is ready to install
	UpdateStatusDownloaded UpdateStatus = "downloaded"

	// UpdateStatusError means the last check or download failed
	UpdateStatusError UpdateStatus = "error"
)

// String returns the string representation of UpdateStatus
func (s UpdateStatus) String() string {
	return string(s)
}

// IsActive returns true while a check or download is running
func (s UpdateStatus) IsActive() bool {
	return s == UpdateStatusChecking || s == UpdateStatusDownloading
}

// IsFinished returns true once a check or download has settled
func (s UpdateStatus) IsFinished() bool {
	return s == UpdateStatusAvailable || s == UpdateStatusNotAvailable ||
		s == UpdateStatusDownloaded || s == UpdateStatusError
}

// ParseUpdateStatus validates a status tag
func ParseUpdateStatus(tag string) (UpdateStatus, bool) {
	switch s := UpdateStatus(tag); s {
	case UpdateStatusIdle, UpdateStatusChecking, UpdateStatusAvailable, UpdateStatusNotAvailable,
		UpdateStatusDownloading, UpdateStatusDownloaded, UpdateStatusError:
		return s, true
	}
	return UpdateStatusIdle, false
}

// ReleaseInfo describes a published release and, while downloading, progress.
type ReleaseInfo struct {
	Version      string  `json:"version"`
	ReleaseNotes string  `json:"releaseNotes,omitempty"`
	ReleaseDate  string  `json:"releaseDate,omitempty"`
	Asset        string  `json:"asset,omitempty"`
	Percent      float64 `json:"percent,omitempty"`
	Error        string  `json:"error,omitempty"`
}
