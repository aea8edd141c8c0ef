package differ

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashText returns the SHA-256 hex digest of the given text.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
