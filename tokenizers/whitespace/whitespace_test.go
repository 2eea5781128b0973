package whitespace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceStrings(t *testing.T) {
	var s Sequencer
	assert.Equal(t, []string{"New", "York", "City"}, s.SequenceStrings("  New\tYork \n City "))
	assert.Empty(t, s.SequenceStrings("   "))
}

func TestFold(t *testing.T) {
	s := &Sequencer{Fold: true}
	assert.Equal(t, []string{"new", "york"}, s.SequenceStrings("New YORK"))
}

func TestNFKCNormalization(t *testing.T) {
	var s Sequencer
	// The decomposed form e + U+0301 normalizes to the composed é.
	decomposed := "café"
	composed := "café"
	assert.Equal(t, []string{composed}, s.SequenceStrings(decomposed))
	// Compatibility forms collapse too: the ﬁ ligature becomes "fi".
	assert.Equal(t, []string{"fine"}, s.SequenceStrings("ﬁne"))
}
