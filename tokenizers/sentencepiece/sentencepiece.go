// Package sentencepiece implements an api.Sequencer based on the
// SentencePiece tokenizer.
package sentencepiece

import (
	esentencepiece "github.com/eliben/go-sentencepiece"
	"github.com/pkg/errors"

	"github.com/gomlx/ngramvec/tokenizers/api"
)

// New creates a SentencePiece sequencer from a SentencePiece model file
// (usually named "tokenizer.model").
func New(modelPath string) (*Sequencer, error) {
	proc, err := esentencepiece.NewProcessorFromPath(modelPath)
	if err != nil {
		return nil, errors.Wrapf(err, "can't create sentencepiece tokenizer from %q", modelPath)
	}
	return &Sequencer{Processor: proc}, nil
}

// Sequencer wraps a SentencePiece processor as an api.Sequencer.
type Sequencer struct {
	*esentencepiece.Processor
}

// Compile time assert that sentencepiece.Sequencer implements api.Sequencer.
var _ api.Sequencer = &Sequencer{}

// Sequence returns the text encoded into a sequence of token ids, widened to
// the int64 token domain of integer-pool vectorizers.
func (s *Sequencer) Sequence(text string) []int64 {
	tokens := s.Processor.Encode(text)
	return sliceMap(tokens, func(t esentencepiece.Token) int64 { return int64(t.ID) })
}

// sliceMap executes the given function sequentially for every element on in, and returns a mapped slice.
func sliceMap[In, Out any](in []In, fn func(e In) Out) (out []Out) {
	out = make([]Out, len(in))
	for ii, e := range in {
		out[ii] = fn(e)
	}
	return
}
