package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewOrderID builds a gateway order identifier. The millisecond timestamp
// keeps ids roughly sortable; the uuid suffix makes concurrent calls safe
// where a bare timestamp would collide.
func NewOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORDER-%d-%s", time.Now().UnixMilli(), suffix)
}
