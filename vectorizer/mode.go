// Package vectorizer turns token sequences into fixed-length float feature
// vectors using a preconfigured n-gram vocabulary: it validates the
// configuration, builds the n-gram dictionary once, and then encodes the
// per-call match counts as raw term frequencies (TF), presence weights (IDF),
// or frequency weights (TFIDF).
package vectorizer

import "github.com/pkg/errors"

// Mode selects how match counts are encoded into the output vector.
type Mode int

const (
	// ModeTF emits each count as-is.
	ModeTF Mode = iota + 1
	// ModeIDF emits the slot's weight (1.0 without weights) where the count
	// is positive, and 0 elsewhere.
	ModeIDF
	// ModeTFIDF emits count times weight; without weights it degrades to TF.
	ModeTFIDF
)

// ParseMode converts the external mode string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "TF":
		return ModeTF, nil
	case "IDF":
		return ModeIDF, nil
	case "TFIDF":
		return ModeTFIDF, nil
	}
	return 0, errors.Errorf("unrecognized mode %q, expected one of TF, IDF, TFIDF", s)
}

// String returns the external name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeTF:
		return "TF"
	case ModeIDF:
		return "IDF"
	case ModeTFIDF:
		return "TFIDF"
	}
	return "INVALID"
}
