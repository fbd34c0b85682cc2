package op

// Weighted-value words pack an 11-bit weight above a 21-bit value:
// word = (weight << 21) | (value & 0x1FFFFF). Graph kernels use the weight
// field to break ties between candidate values carried through a reduction.

const (
	// WeightedValueBits is the width of the value field.
	WeightedValueBits = 21

	// WeightedValueMask selects the value field of a packed word.
	WeightedValueMask uint32 = 1<<WeightedValueBits - 1

	// WeightedWeightMax is the largest representable weight (11 bits).
	WeightedWeightMax uint32 = 1<<11 - 1
)

// PackWeighted builds a packed word from a weight and a value. The value is
// masked to its 21-bit field; a weight above WeightedWeightMax wraps.
func PackWeighted(weight, value uint32) uint32 {
	return weight<<WeightedValueBits | value&WeightedValueMask
}

// UnpackWeighted splits a packed word into its weight and value fields.
func UnpackWeighted(word uint32) (weight, value uint32) {
	return word >> WeightedValueBits, word & WeightedValueMask
}
