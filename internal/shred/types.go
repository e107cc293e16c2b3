package shred

import (
	"time"
)

// Status of a shred operation
type Status string

const (
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
	StatusCancelled Status = "CANCELLED"
)

// Request describes a single shred invocation. Path must name an existing
// regular file (symlinks are resolved to their target); Passes must be >= 1.
type Request struct {
	Path   string
	Passes int
}

// Result результат операции затирания файла
type Result struct {
	Path            string
	Status          Status
	BytesProcessed  uint64
	PassesCompleted int
	Duration        time.Duration
	SpeedMBps       float64
	RenamedTo       string
	Warning         string
	Err             error
}

// Success reports whether the file contents were fully destroyed. It is
// true even when only the unlink failed (see Warning).
func (r *Result) Success() bool {
	return r.Status == StatusCompleted
}

// ProgressFunc receives an integer percentage in (0, 100]. Calls are
// synchronous on the shredding goroutine, strictly increasing within one
// operation, and end at exactly 100 on success. The callback must not call
// back into the engine.
type ProgressFunc func(percent int)
