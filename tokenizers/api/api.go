// Package api defines the sequencer API: converters from raw text to the
// token sequences a vectorizer consumes.
//
// It exists so implementations and users of sequencers don't need to import
// each other; vectorizers themselves never tokenize.
package api

// Sequencer converts raw text into an integer token sequence, suitable for a
// vectorizer built over an integer pool.
type Sequencer interface {
	Sequence(text string) []int64
}

// StringSequencer converts raw text into a text token sequence, suitable for
// a vectorizer built over a string pool.
type StringSequencer interface {
	SequenceStrings(text string) []string
}
