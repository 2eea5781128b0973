// Package whitespace implements an api.StringSequencer that splits text on
// Unicode whitespace, after NFKC normalization and optional case folding.
package whitespace

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/gomlx/ngramvec/tokenizers/api"
)

// Sequencer splits text into whitespace-separated string tokens. The zero
// value is ready to use and case-sensitive.
type Sequencer struct {
	// Fold applies Unicode case folding to each token, so vocabularies can
	// be matched case-insensitively.
	Fold bool
}

// Compile time assert that whitespace.Sequencer implements api.StringSequencer.
var _ api.StringSequencer = &Sequencer{}

// SequenceStrings returns the NFKC-normalized, whitespace-separated tokens
// of text, case-folded if the sequencer is configured to.
func (s *Sequencer) SequenceStrings(text string) []string {
	text = norm.NFKC.String(text)
	if s.Fold {
		text = cases.Fold().String(text)
	}
	return strings.Fields(text)
}
