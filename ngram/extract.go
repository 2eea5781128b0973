package ngram

// Params selects which windows of the input are enumerated during extraction.
// Validation happens upstream, at configuration time: Extract assumes
// 0 < MinLength <= MaxLength and Skips >= 0.
type Params struct {
	// MinLength and MaxLength bound the enumerated n-gram lengths. Only
	// MaxLength is enumerated unless AllLengths is set.
	MinLength int
	MaxLength int
	// Skips is the maximum number of skipped input positions between two
	// consecutive tokens of a window. Skips+1 is the largest window stride.
	Skips int
	// AllLengths selects every length in [MinLength, MaxLength] instead of
	// MaxLength alone.
	AllLengths bool
}

// Extract scans input and counts the occurrences of every configured n-gram,
// returning a fresh frequency vector of NumSlots() counts indexed by output
// slot.
//
// For every enumerated length n and for every stride in [1, Skips+1], a
// window of n tokens spaced stride apart is slid one raw position at a time
// across every start where the whole window fits; windows of different
// lengths and strides overlap freely and are counted independently. Skipping
// is meaningless for unigrams, so length 1 scans each position exactly once.
// Probe misses are normal and simply not counted.
//
// Extract is pure: it reads the dictionary and input only, so concurrent
// calls against one Dictionary are safe.
func (d *Dictionary[T]) Extract(input []T, p Params) []uint32 {
	frequencies := make([]uint32, d.numSlots)

	low := p.MaxLength
	if p.AllLengths {
		low = p.MinLength
	}
	for n := low; n <= p.MaxLength; n++ {
		if n == 1 {
			for i := range input {
				if _, slot, ok := d.LookupWindow(input, i, 1, 1); ok {
					frequencies[slot]++
				}
			}
			continue
		}
		// A skip count of s means consecutive window tokens sit s+1 raw
		// positions apart.
		for stride := 1; stride <= p.Skips+1; stride++ {
			span := stride*(n-1) + 1
			for start := 0; start+span <= len(input); start++ {
				if _, slot, ok := d.LookupWindow(input, start, stride, n); ok {
					frequencies[slot]++
				}
			}
		}
	}
	return frequencies
}
