// Package vocab reads and writes n-gram vocabularies as parquet datasets.
//
// A vocabulary file holds one row per configured n-gram: its tokens, its
// destination slot in the output vector, and optionally its weight. Loading
// lays the rows out as the flat pool plus per-length offsets that
// vectorizer.Config expects, assigning ids in increasing length order and in
// file order within a length.
package vocab

import (
	"github.com/parquet-go/parquet-go"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gomlx/ngramvec/vectorizer"
)

// StringRow is the file schema of one text n-gram.
type StringRow struct {
	Grams  []string `parquet:"grams,list"`
	Slot   int64    `parquet:"slot"`
	Weight *float32 `parquet:"weight,optional"`
}

// Int64Row is the file schema of one integer n-gram.
type Int64Row struct {
	Grams  []int64  `parquet:"grams,list"`
	Slot   int64    `parquet:"slot"`
	Weight *float32 `parquet:"weight,optional"`
}

// Vocabulary is a loaded vocabulary in the flat layout consumed by
// vectorizer.Config. Exactly one of PoolStrings and PoolInt64s is set.
type Vocabulary struct {
	PoolStrings []string
	PoolInt64s  []int64
	PoolOffsets []int64
	OutputSlots []int64
	Weights     []float32 // nil when the file carries no weights
}

// Apply copies the vocabulary into the pool-related fields of cfg, leaving
// the scan parameters (mode, lengths, skips) untouched.
func (v *Vocabulary) Apply(cfg *vectorizer.Config) {
	cfg.PoolStrings = v.PoolStrings
	cfg.PoolInt64s = v.PoolInt64s
	cfg.PoolOffsets = v.PoolOffsets
	cfg.OutputSlots = v.OutputSlots
	cfg.Weights = v.Weights
}

// LoadStrings reads a text n-gram vocabulary from the parquet file at path.
func LoadStrings(path string) (*Vocabulary, error) {
	rows, err := parquet.ReadFile[StringRow](path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read vocabulary %q", path)
	}
	grams := make([][]string, len(rows))
	slots := make([]int64, len(rows))
	weights := make([]*float32, len(rows))
	for i, r := range rows {
		grams[i], slots[i], weights[i] = r.Grams, r.Slot, r.Weight
	}
	voc := &Vocabulary{}
	voc.PoolStrings, err = assemble(voc, grams, slots, weights)
	if err != nil {
		return nil, errors.WithMessagef(err, "vocabulary %q", path)
	}
	klog.V(2).Infof("ngramvec: loaded %d text n-grams from %q", len(rows), path)
	return voc, nil
}

// LoadInt64s reads an integer n-gram vocabulary from the parquet file at path.
func LoadInt64s(path string) (*Vocabulary, error) {
	rows, err := parquet.ReadFile[Int64Row](path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read vocabulary %q", path)
	}
	grams := make([][]int64, len(rows))
	slots := make([]int64, len(rows))
	weights := make([]*float32, len(rows))
	for i, r := range rows {
		grams[i], slots[i], weights[i] = r.Grams, r.Slot, r.Weight
	}
	voc := &Vocabulary{}
	voc.PoolInt64s, err = assemble(voc, grams, slots, weights)
	if err != nil {
		return nil, errors.WithMessagef(err, "vocabulary %q", path)
	}
	klog.V(2).Infof("ngramvec: loaded %d integer n-grams from %q", len(rows), path)
	return voc, nil
}

// assemble lays per-row n-grams out as a flat pool: length by length, in row
// order within each length, ids following the layout order. It fills the
// offset, slot and weight fields of voc and returns the pool.
func assemble[T comparable](voc *Vocabulary, grams [][]T, slots []int64, weights []*float32) ([]T, error) {
	if len(grams) == 0 {
		return nil, errors.Errorf("no n-gram rows")
	}
	maxLen := 0
	for i, g := range grams {
		if len(g) == 0 {
			return nil, errors.Errorf("row %d has no tokens", i)
		}
		if len(g) > maxLen {
			maxLen = len(g)
		}
	}

	weighted := weights[0] != nil
	for i, w := range weights {
		if (w != nil) != weighted {
			return nil, errors.Errorf("row %d mixes weighted and unweighted n-grams", i)
		}
	}
	var perSlot []float32
	var slotSeen []bool
	if weighted {
		perSlot = make([]float32, len(grams))
		slotSeen = make([]bool, len(grams))
	}

	var pool []T
	voc.PoolOffsets = make([]int64, maxLen)
	voc.OutputSlots = make([]int64, 0, len(grams))
	for length := 1; length <= maxLen; length++ {
		voc.PoolOffsets[length-1] = int64(len(pool))
		for i, g := range grams {
			if len(g) != length {
				continue
			}
			pool = append(pool, g...)
			voc.OutputSlots = append(voc.OutputSlots, slots[i])
			if !weighted {
				continue
			}
			// Weights are keyed by output slot, so rows sharing a slot must
			// agree on the weight.
			slot := slots[i]
			if slot < 0 || slot >= int64(len(perSlot)) {
				return nil, errors.Errorf("row %d: slot %d out of range for %d weighted n-grams", i, slot, len(perSlot))
			}
			if slotSeen[slot] && perSlot[slot] != *weights[i] {
				return nil, errors.Errorf("row %d: slot %d has conflicting weights %v and %v",
					i, slot, perSlot[slot], *weights[i])
			}
			perSlot[slot] = *weights[i]
			slotSeen[slot] = true
		}
	}
	voc.Weights = perSlot
	return pool, nil
}

// SaveStrings writes a text vocabulary to the parquet file at path, one row
// per n-gram, in id order. The result round-trips through LoadStrings.
func SaveStrings(path string, voc *Vocabulary) error {
	rows := make([]StringRow, 0, len(voc.OutputSlots))
	err := eachEntry(voc, voc.PoolStrings, func(grams []string, slot int64, weight *float32) {
		rows = append(rows, StringRow{Grams: grams, Slot: slot, Weight: weight})
	})
	if err != nil {
		return err
	}
	return errors.Wrapf(parquet.WriteFile(path, rows), "failed to write vocabulary %q", path)
}

// SaveInt64s writes an integer vocabulary to the parquet file at path, one
// row per n-gram, in id order. The result round-trips through LoadInt64s.
func SaveInt64s(path string, voc *Vocabulary) error {
	rows := make([]Int64Row, 0, len(voc.OutputSlots))
	err := eachEntry(voc, voc.PoolInt64s, func(grams []int64, slot int64, weight *float32) {
		rows = append(rows, Int64Row{Grams: grams, Slot: slot, Weight: weight})
	})
	if err != nil {
		return err
	}
	return errors.Wrapf(parquet.WriteFile(path, rows), "failed to write vocabulary %q", path)
}

// eachEntry walks the flat pool the way the dictionary builder partitions it
// and calls fn once per n-gram entry, in id order.
func eachEntry[T comparable](voc *Vocabulary, pool []T, fn func(grams []T, slot int64, weight *float32)) error {
	poolSize := int64(len(pool))
	id := 0
	for i := range voc.PoolOffsets {
		length := int64(i + 1)
		start := voc.PoolOffsets[i]
		end := poolSize
		if i+1 < len(voc.PoolOffsets) {
			end = voc.PoolOffsets[i+1]
		}
		if start < 0 || end < start || end > poolSize || (end-start)%length != 0 {
			return errors.Errorf("malformed vocabulary: bad segment [%d, %d) for %d-grams", start, end, length)
		}
		for at := start; at < end; at += length {
			if id >= len(voc.OutputSlots) {
				return errors.Errorf("malformed vocabulary: more pool n-grams than output slots (%d)", len(voc.OutputSlots))
			}
			slot := voc.OutputSlots[id]
			var weight *float32
			if voc.Weights != nil {
				if slot < 0 || slot >= int64(len(voc.Weights)) {
					return errors.Errorf("malformed vocabulary: slot %d out of range for %d weights", slot, len(voc.Weights))
				}
				weight = &voc.Weights[slot]
			}
			fn(pool[at:at+length:at+length], slot, weight)
			id++
		}
	}
	if id != len(voc.OutputSlots) {
		return errors.Errorf("malformed vocabulary: %d pool n-grams but %d output slots", id, len(voc.OutputSlots))
	}
	return nil
}
