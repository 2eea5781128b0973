package ngram

import (
	"github.com/pkg/errors"
)

// entry is one configured n-gram: its sequential id, its destination index in
// the output vector, and its content as a sub-slice of the configuration pool.
type entry[T comparable] struct {
	id    int
	slot  int
	grams []T
}

// Dictionary is an immutable set of configured n-grams, addressable by
// content. It is built once with Build and never mutated afterwards, so any
// number of goroutines may probe it concurrently.
type Dictionary[T comparable] struct {
	hash     Hasher[T]
	entries  []entry[T]
	buckets  map[uint64][]int32 // window hash -> indexes into entries
	numSlots int
}

// Build constructs a Dictionary from a flat pool of tokens.
//
// lengthOffsets carries one start offset per supported n-gram length: the
// tokens of the length-L n-grams occupy pool[lengthOffsets[L-1]:end), where
// end is the next offset, or len(pool) for the last length. Each segment is
// split into consecutive chunks of L tokens, one configured n-gram each, and
// ids are assigned sequentially in pool order. outputSlots maps each id to
// its destination index in the output vector.
//
// Build fails, returning no Dictionary, if a segment's bounds fall outside
// the pool, a segment's size is not a whole number of L-grams, the same
// content appears twice within a length, a slot is negative, or the total
// entry count differs from len(outputSlots).
func Build[T comparable](pool []T, lengthOffsets []int64, outputSlots []int64, hash Hasher[T]) (*Dictionary[T], error) {
	if len(lengthOffsets) == 0 {
		return nil, errors.Errorf("non-empty length offsets are required")
	}
	if len(outputSlots) == 0 {
		return nil, errors.Errorf("non-empty output slots are required")
	}
	d := &Dictionary[T]{
		hash:    hash,
		buckets: make(map[uint64][]int32),
	}

	poolSize := int64(len(pool))
	for i := range lengthOffsets {
		length := int64(i + 1)
		start := lengthOffsets[i]
		end := poolSize
		if i+1 < len(lengthOffsets) {
			end = lengthOffsets[i+1]
		}
		if start < 0 || end < start || end > poolSize {
			return nil, errors.Errorf("offsets out of bounds for %d-grams: segment [%d, %d) in a pool of %d tokens",
				length, start, end, poolSize)
		}
		items := end - start
		if items == 0 {
			continue
		}
		if items%length != 0 {
			return nil, errors.Errorf("%d tokens do not compose whole %d-grams", items, length)
		}
		chunks := items / length
		before := len(d.entries)
		for c := int64(0); c < chunks; c++ {
			at := start + c*length
			d.insert(pool[at : at+length : at+length])
		}
		if len(d.entries) != before+int(chunks) {
			return nil, errors.Errorf("duplicate %d-grams detected in the pool", length)
		}
	}

	if len(d.entries) != len(outputSlots) {
		return nil, errors.Errorf("%d n-grams in the pool do not match %d output slots",
			len(d.entries), len(outputSlots))
	}
	maxSlot := int64(-1)
	for id := range d.entries {
		slot := outputSlots[id]
		if slot < 0 {
			return nil, errors.Errorf("output slot of n-gram %d is negative (%d)", id, slot)
		}
		d.entries[id].slot = int(slot)
		if slot > maxSlot {
			maxSlot = slot
		}
	}
	d.numSlots = int(maxSlot + 1)
	return d, nil
}

// insert adds grams as the next entry unless identical content is already
// present, in which case the dictionary is left unchanged and the caller
// observes the missing growth.
func (d *Dictionary[T]) insert(grams []T) {
	n := len(grams)
	h := windowHash(d.hash, grams, 0, 1, n)
	for _, idx := range d.buckets[h] {
		if windowEquals(d.entries[idx].grams, grams, 0, 1, n) {
			return
		}
	}
	idx := int32(len(d.entries))
	d.entries = append(d.entries, entry[T]{id: int(idx), grams: grams})
	d.buckets[h] = append(d.buckets[h], idx)
}

// Len returns the number of configured n-grams.
func (d *Dictionary[T]) Len() int { return len(d.entries) }

// NumSlots returns the width of the output vector: the largest configured
// output slot plus one.
func (d *Dictionary[T]) NumSlots() int { return d.numSlots }

// LookupWindow probes the dictionary with the window of n tokens taken from
// buf at position start with the given stride. The window is hashed and
// compared by dereferencing buf in place; buf is not retained. It returns the
// matched entry's id and output slot, or ok == false on a miss.
func (d *Dictionary[T]) LookupWindow(buf []T, start, stride, n int) (id, slot int, ok bool) {
	h := windowHash(d.hash, buf, start, stride, n)
	for _, idx := range d.buckets[h] {
		e := &d.entries[idx]
		if windowEquals(e.grams, buf, start, stride, n) {
			return e.id, e.slot, true
		}
	}
	return 0, 0, false
}
