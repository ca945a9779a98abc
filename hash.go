package probemap

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// HashFunc maps a key to the integer used for slot selection. Put, Get and
// Delete validate the key kind before hashing, so a HashFunc only ever sees
// integer or string keys. Implementations must be pure: the same key must
// always produce the same hash, including across growth.
type HashFunc func(key any) uint64

const (
	djb2Seed       = 5381
	djb2Multiplier = 33
)

// key is a validated key in normalized form. Integer kinds widen to uint64
// (signed values pass through two's complement), so int32(7) and int64(7)
// address and match the same slot.
type key struct {
	num   uint64
	str   string
	isInt bool
}

func normalizeKey(k any) (key, error) {
	switch v := k.(type) {
	case int:
		return key{num: uint64(v), isInt: true}, nil
	case int8:
		return key{num: uint64(v), isInt: true}, nil
	case int16:
		return key{num: uint64(v), isInt: true}, nil
	case int32:
		return key{num: uint64(v), isInt: true}, nil
	case int64:
		return key{num: uint64(v), isInt: true}, nil
	case uint:
		return key{num: uint64(v), isInt: true}, nil
	case uint8:
		return key{num: uint64(v), isInt: true}, nil
	case uint16:
		return key{num: uint64(v), isInt: true}, nil
	case uint32:
		return key{num: uint64(v), isInt: true}, nil
	case uint64:
		return key{num: v, isInt: true}, nil
	case uintptr:
		return key{num: uint64(v), isInt: true}, nil
	case string:
		return key{str: v}, nil
	default:
		return key{}, fmt.Errorf("%w, got %T", ErrInvalidKeyKind, k)
	}
}

// DefaultHash hashes integer keys to their own value and string keys with the
// DJB2 rolling hash: an accumulator starts at 5381 and for each code point
// becomes 33*acc + codepoint. No modulus is applied while accumulating; the
// accumulator and negative integer keys wrap in uint64 two's-complement
// arithmetic.
func DefaultHash(k any) uint64 {
	nk, err := normalizeKey(k)
	if err != nil {
		return 0
	}
	if nk.isInt {
		return nk.num
	}
	acc := uint64(djb2Seed)
	for _, r := range nk.str {
		acc = djb2Multiplier*acc + uint64(r)
	}
	return acc
}

// XXHash is an alternative HashFunc built on xxHash, for keys whose natural
// values cluster badly under the identity hash. String keys hash directly;
// integer keys hash their 8-byte big-endian encoding.
func XXHash(k any) uint64 {
	nk, err := normalizeKey(k)
	if err != nil {
		return 0
	}
	if nk.isInt {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], nk.num)
		return xxhash.Sum64(buf[:])
	}
	return xxhash.Sum64String(nk.str)
}
