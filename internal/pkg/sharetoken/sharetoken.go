package sharetoken

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"

	"room-reserve/internal/pkg/errs"
)

// Share tokens are opaque 16-character hex identifiers handed out when a
// reservation is created so it can be referenced externally without exposing
// its primary key. Assigned once, never rotated.

const tokenBytes = 8

var tokenShape = regexp.MustCompile(`^[0-9a-f]{16}$`)

func New() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "failed to generate share token")
	}
	return hex.EncodeToString(buf), nil
}

func IsValid(token string) bool {
	return tokenShape.MatchString(token)
}
