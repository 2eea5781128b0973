package sentencepiece

import (
	"os"
	"testing"
)

// TestSequence exercises the adapter against a real SentencePiece model.
// Point NGRAMVEC_SPM_MODEL at a "tokenizer.model" file to enable it.
func TestSequence(t *testing.T) {
	modelPath := os.Getenv("NGRAMVEC_SPM_MODEL")
	if modelPath == "" {
		t.Skip("NGRAMVEC_SPM_MODEL not set")
	}
	seq, err := New(modelPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	inputs := []string{
		"hello",
		"hello world",
		"The quick brown fox jumps over the lazy dog.",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			ids := seq.Sequence(input)
			if len(ids) == 0 {
				t.Errorf("Sequence(%q) returned no tokens", input)
			}
			encoded := seq.Processor.Encode(input)
			if len(encoded) != len(ids) {
				t.Fatalf("Sequence(%q) = %d tokens, Processor.Encode = %d", input, len(ids), len(encoded))
			}
			for i, tok := range encoded {
				if int64(tok.ID) != ids[i] {
					t.Errorf("Sequence(%q)[%d] = %d, want %d", input, i, ids[i], tok.ID)
				}
			}
		})
	}
}

func TestNewMissingModel(t *testing.T) {
	if _, err := New("testdata/no-such-model.model"); err == nil {
		t.Error("New with a missing model path should fail")
	}
}
