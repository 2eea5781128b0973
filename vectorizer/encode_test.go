package vectorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name        string
		mode        Mode
		frequencies []uint32
		weights     []float32
		want        []float32
	}{
		{
			name:        "TF counts as-is",
			mode:        ModeTF,
			frequencies: []uint32{0, 3, 1},
			want:        []float32{0, 3, 1},
		},
		{
			name:        "TF ignores weights",
			mode:        ModeTF,
			frequencies: []uint32{2},
			weights:     []float32{7},
			want:        []float32{2},
		},
		{
			name:        "IDF without weights emits presence",
			mode:        ModeIDF,
			frequencies: []uint32{0, 3},
			want:        []float32{0, 1.0},
		},
		{
			name:        "IDF with weights emits the weight where present",
			mode:        ModeIDF,
			frequencies: []uint32{0, 3, 1},
			weights:     []float32{0.5, 1.5, 2.5},
			want:        []float32{0, 1.5, 2.5},
		},
		{
			name:        "TFIDF multiplies count by weight",
			mode:        ModeTFIDF,
			frequencies: []uint32{0, 3, 1},
			weights:     []float32{0.5, 1.5, 2.5},
			want:        []float32{0, 4.5, 2.5},
		},
		{
			name:        "TFIDF without weights degrades to TF",
			mode:        ModeTFIDF,
			frequencies: []uint32{0, 3, 1},
			want:        []float32{0, 3, 1},
		},
		{
			name:        "empty frequency vector",
			mode:        ModeTF,
			frequencies: []uint32{},
			want:        []float32{},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, encode(test.frequencies, test.mode, test.weights))
		})
	}
}
