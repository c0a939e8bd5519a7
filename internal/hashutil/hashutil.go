package hashutil

import (
	"crypto/sha256"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// GenerateID creates a 7-character hex ID from a name and the current timestamp.
func GenerateID(name string) string {
	seed := name + "\x00" + fmt.Sprintf("%d", time.Now().UnixNano())
	return GenerateIDFromSeed(seed)
}

// EntryID returns the stable ID of a habit's entry for the given day. One day
// always maps to the same ID, so a store keyed by ID holds one entry per day.
func EntryID(habitSlug string, d civil.Date) string {
	return GenerateIDFromSeed(habitSlug + "\x00" + d.String())
}

// GenerateIDFromSeed creates a deterministic 7-character hex ID from a seed string.
func GenerateIDFromSeed(seed string) string {
	hash := sha256.Sum256([]byte(seed))
	return fmt.Sprintf("%x", hash[:4])[:7]
}
