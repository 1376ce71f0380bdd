package unravel

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// DigestAlgo names a fingerprint algorithm for decoded output.
type DigestAlgo string

const (
	DigestSHA256     DigestAlgo = "sha256"
	DigestSHA512     DigestAlgo = "sha512"
	DigestSHA3_256   DigestAlgo = "sha3-256"
	DigestBLAKE2b256 DigestAlgo = "blake2b-256"
)

// Digester fingerprints decoded bytes.
type Digester interface {
	// Digest returns the lowercase hex digest of data.
	Digest(data []byte) string
}

type sha256Digester struct{}

// SHA256Digester returns a SHA-256 digester.
func SHA256Digester() Digester {
	return &sha256Digester{}
}

func (d *sha256Digester) Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

type sha512Digester struct{}

// SHA512Digester returns a SHA-512 digester.
func SHA512Digester() Digester {
	return &sha512Digester{}
}

func (d *sha512Digester) Digest(data []byte) string {
	sum := sha512.Sum512(data)
	return hex.EncodeToString(sum[:])
}

type sha3Digester struct{}

// SHA3Digester returns a SHA3-256 digester.
func SHA3Digester() Digester {
	return &sha3Digester{}
}

func (d *sha3Digester) Digest(data []byte) string {
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

type blake2bDigester struct{}

// BLAKE2bDigester returns an unkeyed BLAKE2b-256 digester.
func BLAKE2bDigester() Digester {
	return &blake2bDigester{}
}

func (d *blake2bDigester) Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// builtinDigesters returns the digester registry.
func builtinDigesters() map[DigestAlgo]Digester {
	return map[DigestAlgo]Digester{
		DigestSHA256:     SHA256Digester(),
		DigestSHA512:     SHA512Digester(),
		DigestSHA3_256:   SHA3Digester(),
		DigestBLAKE2b256: BLAKE2bDigester(),
	}
}

var digesters = builtinDigesters()

// IsValidDigestAlgo returns true if the algorithm is a known digest algorithm.
func IsValidDigestAlgo(algo DigestAlgo) bool {
	_, ok := digesters[algo]
	return ok
}

// Digest fingerprints text with algo.
func Digest(algo DigestAlgo, text string) (string, error) {
	d, ok := digesters[algo]
	if !ok {
		return "", fmt.Errorf("unknown digest algorithm %q", algo)
	}
	return d.Digest([]byte(text)), nil
}
