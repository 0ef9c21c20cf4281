package store

import (
	"encoding/hex"
	"encoding/json"

	"golang.org/x/crypto/blake2b"

	"coursecat/internal/domain"
)

// Revision returns a short hex fingerprint of the snapshot contents.
//
// It hashes the JSON form with BLAKE2b-256 and truncates to 10 bytes
// (20 hex chars). Equal snapshots always yield equal revisions.
func Revision(s domain.Snapshot) string {
	b, err := json.Marshal(s)
	if err != nil {
		// Snapshot holds only plain values; Marshal cannot fail on it.
		panic(err)
	}
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:10])
}
