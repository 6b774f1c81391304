package security

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Pseudonymizer maps identifying values such as client IPs to stable keyed
// digests, so stored rows can be grouped without keeping the raw value.
type Pseudonymizer struct {
	key [32]byte
}

func NewPseudonymizer(secret string) *Pseudonymizer {
	return &Pseudonymizer{key: blake2b.Sum256([]byte("peptica/pseudonym\x00" + secret))}
}

func (pseudonymizer *Pseudonymizer) Digest(value string) (string, error) {
	hash, err := blake2b.New(16, pseudonymizer.key[:])
	if err != nil {
		return "", fmt.Errorf("init blake2b: %w", err)
	}
	if _, err := hash.Write([]byte(value)); err != nil {
		return "", fmt.Errorf("hash value: %w", err)
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
