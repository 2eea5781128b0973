package vectorizer

// encode maps a frequency vector to the final float feature vector of the
// same length. weights may be nil; when present it has one weight per output
// slot (enforced at construction).
//
//	mode   | with weights              | without weights
//	TF     | counts as-is              | counts as-is
//	IDF    | weight where count > 0    | 1.0 where count > 0
//	TFIDF  | count * weight            | counts as-is
func encode(frequencies []uint32, mode Mode, weights []float32) []float32 {
	out := make([]float32, len(frequencies))
	switch mode {
	case ModeTF:
		for i, f := range frequencies {
			out[i] = float32(f)
		}
	case ModeIDF:
		if weights != nil {
			for i, f := range frequencies {
				if f > 0 {
					out[i] = weights[i]
				}
			}
		} else {
			for i, f := range frequencies {
				if f > 0 {
					out[i] = 1.0
				}
			}
		}
	case ModeTFIDF:
		if weights != nil {
			for i, f := range frequencies {
				out[i] = float32(f) * weights[i]
			}
		} else {
			for i, f := range frequencies {
				out[i] = float32(f)
			}
		}
	}
	return out
}
