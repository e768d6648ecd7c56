package models

import (
	"time"

	"github.com/google/uuid"
)

// Report persistence job statuses.
const (
	JobStatusPending   = "pending"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// ReportJob tracks one fire-and-forget report persistence attempt. Jobs live
// only in the cache; the report artifact itself is the persisted entity.
type ReportJob struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
