package runner

import (
	"time"

	"github.com/cybertec-postgresql/tokscan/internal/discovery"
	"github.com/cybertec-postgresql/tokscan/pkg/lexer"
)

// ScanRun is the outcome of scanning one file
type ScanRun struct {
	File      *discovery.DiscoveredFile
	StartTime time.Time
	EndTime   time.Time
	Status    ScanStatus
	Error     error         // Non-nil unless Status is ScanOK
	Tokens    []lexer.Token // Empty when the scan failed
}

// ScanStatus represents the state of a scan
type ScanStatus int

const (
	ScanPending ScanStatus = iota
	ScanRunning
	ScanOK
	ScanFailed
	ScanCancelled
)

// String returns a string representation of ScanStatus
func (s ScanStatus) String() string {
	switch s {
	case ScanPending:
		return "pending"
	case ScanRunning:
		return "running"
	case ScanOK:
		return "ok"
	case ScanFailed:
		return "failed"
	case ScanCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Duration returns the scan duration
func (r *ScanRun) Duration() time.Duration {
	if r.EndTime.IsZero() {
		return time.Since(r.StartTime)
	}
	return r.EndTime.Sub(r.StartTime)
}

// ScanSummary summarizes a batch of scans
type ScanSummary struct {
	TotalFiles     int
	ScannedFiles   int
	FailedFiles    int
	CancelledFiles int
	TotalTokens    int
	TotalDuration  time.Duration
}

// AllScanned returns true if every file produced tokens
func (s *ScanSummary) AllScanned() bool {
	return s.FailedFiles == 0 && s.CancelledFiles == 0
}

// ExitCode returns 0 when every file scanned and 1 otherwise
func (s *ScanSummary) ExitCode() int {
	if s.AllScanned() {
		return 0
	}
	return 1
}
