package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPrompt returns a stable identifier for a composed prompt string,
// used to correlate log lines without logging prompt contents.
func HashPrompt(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
