package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

const fingerprintKeyLength = 32

// Fingerprinter derives short, log-safe identifiers for secrets so that log
// lines about the same password can be correlated without recording it.
// The key is random per process, so fingerprints cannot be precomputed offline.
type Fingerprinter struct {
	key []byte
}

// NewFingerprinter draws a fresh key from source (crypto/rand when nil).
func NewFingerprinter(source io.Reader) (*Fingerprinter, error) {
	if source == nil {
		source = rand.Reader
	}

	key := make([]byte, fingerprintKeyLength)
	if _, err := io.ReadFull(source, key); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}

	return &Fingerprinter{key: key}, nil
}

// Sum returns a keyed BLAKE2b-256 digest of secret, truncated to 96 bits and
// encoded as unpadded base64url.
func (f *Fingerprinter) Sum(secret string) string {
	h, err := blake2b.New256(f.key)
	if err != nil {
		// Only reachable with a key longer than 64 bytes.
		panic(err)
	}
	h.Write([]byte(secret))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil)[:12])
}
