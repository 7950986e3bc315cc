package domain

import (
	"fmt"
	"strings"

	"barberdesk/internal/core/id"
)

// GenerateCode derives a stable human-readable code from an entity's id.
// UUIDv7 ids are time-ordered, so generated codes sort by creation time.
func GenerateCode(prefix string, entityID id.ID) string {
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(entityID.String()[:8]))
}
