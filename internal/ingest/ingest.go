package ingest

import (
	"time"
)

const (
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// Run summarises one import into the catalog.
type Run struct {
	StartedAt    time.Time
	FinishedAt   time.Time
	Status       string // RUNNING, COMPLETED, FAILED
	Subjects     []string
	BooksFetched int
	BooksAdded   int
	BooksSkipped int
	Error        string
}
