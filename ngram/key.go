// Package ngram implements a content-addressable dictionary of variable-length
// token sequences (n-grams) and the sliding-window scanner that counts their
// occurrences, including skip-grams, in a token stream.
//
// The package is generic over the token type: the two instantiations used in
// practice are int64 (integer vocabularies; 32-bit inputs are widened before
// they reach this package) and string (text vocabularies). A Hasher supplies
// the per-token hash for each instantiation; sequence identity is always
// order-sensitive, so the same tokens in a different order form a different
// n-gram.
package ngram

import "github.com/cespare/xxhash/v2"

// Hasher computes a stable 64-bit hash of a single token. It must be pure:
// equal tokens must always hash equally, within and across processes.
type Hasher[T comparable] func(T) uint64

// HashInt64 hashes an integer token as its own unsigned value.
func HashInt64(t int64) uint64 { return uint64(t) }

// HashString hashes a text token with xxHash64.
func HashString(t string) uint64 { return xxhash.Sum64String(t) }

// hashCombineSeed is the golden-ratio constant of the classic hash_combine
// recurrence. Changing it changes every dictionary key.
const hashCombineSeed = 0x9e3779b9

// windowHash folds the hashes of n tokens taken from buf, starting at start
// and spaced stride apart, into one order-sensitive window hash:
//
//	h = hash(t[0])
//	h ^= hash(t[i]) + 0x9e3779b9 + (h << 6) + (h >> 2)   for i = 1..n-1
//
// The window is addressed in place: no tokens are copied and nothing of buf
// is retained past the call.
func windowHash[T comparable](hash Hasher[T], buf []T, start, stride, n int) uint64 {
	h := hash(buf[start])
	for i, pos := 1, start+stride; i < n; i, pos = i+1, pos+stride {
		h ^= hash(buf[pos]) + hashCombineSeed + (h << 6) + (h >> 2)
	}
	return h
}

// windowEquals reports whether the n tokens of buf at (start, stride) equal
// grams elementwise, in order.
func windowEquals[T comparable](grams []T, buf []T, start, stride, n int) bool {
	if len(grams) != n {
		return false
	}
	for i, pos := 0, start; i < n; i, pos = i+1, pos+stride {
		if grams[i] != buf[pos] {
			return false
		}
	}
	return true
}
