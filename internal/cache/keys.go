package cache

import (
	"fmt"

	"github.com/google/uuid"
)

// CompletionKey is the cache key for a completed inference result.
// payloadHash must be a stable digest of the prompt inputs.
func CompletionKey(task, payloadHash string) string {
	return fmt.Sprintf("completion:%s:%s", task, payloadHash)
}

// ReportJobKey is the cache key for a background report job's status.
func ReportJobKey(jobID uuid.UUID) string {
	return fmt.Sprintf("job:%s", jobID)
}
