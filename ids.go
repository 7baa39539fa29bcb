package meet

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewSessionID builds a session identifier from the current epoch
// milliseconds and a short random suffix. The scheme is practically
// collision-free, so callers skip a uniqueness probe against the store;
// it is deliberately not idempotent.
func NewSessionID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}
