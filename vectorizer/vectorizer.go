package vectorizer

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gomlx/ngramvec/ngram"
)

// Vectorizer extracts a fixed-length feature vector from a token sequence:
// it counts the configured n-grams and skip-grams found in the input and
// encodes the counts per the configured Mode.
//
// A Vectorizer is immutable after New, so any number of goroutines may call
// the Transform methods concurrently.
type Vectorizer struct {
	mode    Mode
	params  ngram.Params
	weights []float32

	// Exactly one of the two dictionaries is non-nil, matching the
	// configured pool domain.
	strings  *ngram.Dictionary[string]
	integers *ngram.Dictionary[int64]

	numSlots int
}

// New validates cfg, builds the n-gram dictionary from the configured pool,
// and returns a ready Vectorizer. Any invalid field or inconsistent pool
// partitioning fails construction; no partially built Vectorizer is ever
// returned.
func New(cfg Config) (*Vectorizer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	v := &Vectorizer{
		mode: cfg.Mode,
		params: ngram.Params{
			MinLength:  cfg.MinGramLength,
			MaxLength:  cfg.MaxGramLength,
			Skips:      cfg.MaxSkipCount,
			AllLengths: cfg.AllGramLengths,
		},
		weights: cfg.Weights,
	}

	var err error
	domain := "string"
	if len(cfg.PoolStrings) > 0 {
		v.strings, err = ngram.Build(cfg.PoolStrings, cfg.PoolOffsets, cfg.OutputSlots, ngram.HashString)
		if err == nil {
			v.numSlots = v.strings.NumSlots()
		}
	} else {
		domain = "int64"
		v.integers, err = ngram.Build(cfg.PoolInt64s, cfg.PoolOffsets, cfg.OutputSlots, ngram.HashInt64)
		if err == nil {
			v.numSlots = v.integers.NumSlots()
		}
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "building the %s n-gram dictionary", domain)
	}

	klog.V(1).Infof("ngramvec: built %s dictionary with %d n-grams over %d output slots, lengths [%d..%d], skips=%d, mode=%s",
		domain, len(cfg.OutputSlots), v.numSlots, cfg.MinGramLength, cfg.MaxGramLength, cfg.MaxSkipCount, cfg.Mode)
	return v, nil
}

// NumSlots returns the length of every output vector: the largest configured
// output slot plus one.
func (v *Vectorizer) NumSlots() int { return v.numSlots }

// DictionaryLen returns the number of configured n-grams.
func (v *Vectorizer) DictionaryLen() int {
	if v.strings != nil {
		return v.strings.Len()
	}
	return v.integers.Len()
}

// TransformInt64s extracts the feature vector of an integer token sequence.
// If the vocabulary is a string pool, no integer window can match and the
// encoding of an all-zero count vector is returned.
func (v *Vectorizer) TransformInt64s(input []int64) []float32 {
	if v.integers == nil {
		return encode(make([]uint32, v.numSlots), v.mode, v.weights)
	}
	return encode(v.integers.Extract(input, v.params), v.mode, v.weights)
}

// TransformInt32s widens the input and extracts its feature vector. 32-bit
// tokens share the 64-bit vocabulary.
func (v *Vectorizer) TransformInt32s(input []int32) []float32 {
	widened := make([]int64, len(input))
	for i, t := range input {
		widened[i] = int64(t)
	}
	return v.TransformInt64s(widened)
}

// TransformStrings extracts the feature vector of a text token sequence. If
// the vocabulary is an integer pool, no string window can match and the
// encoding of an all-zero count vector is returned.
func (v *Vectorizer) TransformStrings(input []string) []float32 {
	if v.strings == nil {
		return encode(make([]uint32, v.numSlots), v.mode, v.weights)
	}
	return encode(v.strings.Extract(input, v.params), v.mode, v.weights)
}

// Transform extracts the feature vector of an input of dynamic type: a slice
// of int32, int64 or string tokens, or a single such token, which is treated
// as a sequence of length one. Any other type is an invalid argument and
// produces no output.
func (v *Vectorizer) Transform(input any) ([]float32, error) {
	switch x := input.(type) {
	case []int64:
		return v.TransformInt64s(x), nil
	case []int32:
		return v.TransformInt32s(x), nil
	case []string:
		return v.TransformStrings(x), nil
	case int64:
		return v.TransformInt64s([]int64{x}), nil
	case int32:
		return v.TransformInt64s([]int64{int64(x)}), nil
	case string:
		return v.TransformStrings([]string{x}), nil
	}
	return nil, errors.Errorf("invalid type %T of the input argument", input)
}
