package security

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// ReferenceAlphabet skips characters that are easy to misread.
const ReferenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString returns a cryptographically secure, unbiased string of the requested length.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}
	return string(value), nil
}

// ReferenceCode returns a code shaped like PEP-7KQ2-M9XD.
func ReferenceCode(prefix string) (string, error) {
	value, err := RandomString(8, ReferenceAlphabet)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%s", prefix, value[:4], value[4:]), nil
}
