package rand

import (
	"github.com/google/uuid"
)

// GenerateParseID returns a UUID in string format (including hyphens), used to correlate the log lines of one parse.
func GenerateParseID() string {
	return uuid.NewString()
}
