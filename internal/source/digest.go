package source

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest - фиксированный 256 битный хеш содержимого файла.
type Digest [32]byte

// HashContent возвращает sha256 от сырых байтов.
func HashContent(content []byte) Digest {
	return sha256.Sum256(content)
}

// HashString hashes a string key (used for cache addressing by path).
func HashString(s string) Digest {
	return sha256.Sum256([]byte(s))
}

// Combine строит составной хеш: H( content || part1 || part2 ... ).
// Порядок частей должен быть детерминированным.
func Combine(content Digest, parts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range parts {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// IsZero reports whether the digest is the all-zero value.
func (d Digest) IsZero() bool {
	var z Digest
	return d == z
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}
