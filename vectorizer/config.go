package vectorizer

import "github.com/pkg/errors"

// Config is the full, externally supplied description of a fixed n-gram
// vocabulary and of how to scan inputs against it. It is validated once, by
// New, and read-only afterwards.
type Config struct {
	// Mode selects the output encoding.
	Mode Mode

	// MinGramLength and MaxGramLength bound the n-gram lengths scanned in
	// the input. MinGramLength must be positive and MaxGramLength at least
	// MinGramLength. Only MaxGramLength is scanned unless AllGramLengths is
	// set.
	MinGramLength  int
	MaxGramLength  int
	AllGramLengths bool

	// MaxSkipCount is the largest number of input positions skipped between
	// two consecutive tokens of a window (skip-grams). Must be >= 0.
	MaxSkipCount int

	// PoolOffsets holds, for each supported n-gram length 1, 2, ..., the
	// start offset of that length's tokens in the flat pool. Segments must
	// be non-overlapping and in increasing length order; a segment ends
	// where the next begins (or at the pool's end for the last length).
	PoolOffsets []int64

	// OutputSlots maps each pool n-gram, in construction order, to its
	// destination index in the output vector. The output vector has
	// max(OutputSlots)+1 elements.
	OutputSlots []int64

	// Weights optionally weight each output slot for the IDF and TFIDF
	// modes. If present, it must have exactly len(OutputSlots) entries and
	// must cover every slot.
	Weights []float32

	// Exactly one of PoolStrings and PoolInt64s supplies the flat token
	// pool the dictionary is carved from.
	PoolStrings []string
	PoolInt64s  []int64
}

// validate applies every construction-time check that does not require the
// dictionary itself. Pool partitioning errors (bad bounds, ragged segments,
// duplicates, entry-count mismatch) surface from the dictionary build.
func (cfg *Config) validate() error {
	switch cfg.Mode {
	case ModeTF, ModeIDF, ModeTFIDF:
	default:
		return errors.Errorf("a valid mode is required")
	}
	if cfg.MinGramLength <= 0 {
		return errors.Errorf("positive MinGramLength is required, got %d", cfg.MinGramLength)
	}
	if cfg.MaxGramLength < cfg.MinGramLength {
		return errors.Errorf("MaxGramLength (%d) must be at least MinGramLength (%d)",
			cfg.MaxGramLength, cfg.MinGramLength)
	}
	if cfg.MaxSkipCount < 0 {
		return errors.Errorf("non-negative MaxSkipCount is required, got %d", cfg.MaxSkipCount)
	}
	if len(cfg.PoolOffsets) == 0 {
		return errors.Errorf("non-empty PoolOffsets is required")
	}
	if len(cfg.OutputSlots) == 0 {
		return errors.Errorf("non-empty OutputSlots is required")
	}
	if cfg.Weights != nil && len(cfg.Weights) != len(cfg.OutputSlots) {
		return errors.Errorf("Weights (%d entries) and OutputSlots (%d entries) must have equal size",
			len(cfg.Weights), len(cfg.OutputSlots))
	}
	if (len(cfg.PoolStrings) == 0) == (len(cfg.PoolInt64s) == 0) {
		return errors.Errorf("exactly one of PoolStrings and PoolInt64s must be supplied, non-empty")
	}
	if cfg.Weights != nil {
		// The encoder indexes weights by output slot, so every slot must
		// have one.
		for _, slot := range cfg.OutputSlots {
			if slot >= int64(len(cfg.Weights)) {
				return errors.Errorf("output slot %d has no weight (%d supplied)", slot, len(cfg.Weights))
			}
		}
	}
	return nil
}
