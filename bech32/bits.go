package bech32

// ConvertBits regroups data, whose elements are fromBits wide, into
// elements of toBits wide. Bits are taken most significant first.
//
// With pad, the remaining bits are shifted to the left and emitted as the
// last element. Without pad, the remaining bits must be fewer than fromBits
// and all zero.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, InvalidInputWidthError.AppendMessage("from=%d to=%d", fromBits, toBits)
	}

	maxv := uint32(1)<<toBits - 1

	var acc uint32
	var bits uint8
	converted := make([]byte, 0, (len(data)*int(fromBits)+int(toBits)-1)/int(toBits))

	for i, b := range data {
		if b>>fromBits != 0 {
			return nil, InvalidInputWidthError.AppendMessage(
				"value at index %d, %d does not fit in %d bits", i, b, fromBits,
			)
		}

		// acc never needs more than fromBits+toBits-1 bits.
		acc = (acc<<fromBits | uint32(b)) & (uint32(1)<<(fromBits+toBits-1) - 1)
		bits += fromBits

		for bits >= toBits {
			bits -= toBits
			converted = append(converted, byte(acc>>bits&maxv))
		}
	}

	switch {
	case pad:
		if bits > 0 {
			converted = append(converted, byte(acc<<(toBits-bits)&maxv))
		}
	case bits >= fromBits:
		return nil, InvalidPaddingError.AppendMessage("%d bits left over", bits)
	case acc<<(toBits-bits)&maxv != 0:
		return nil, InvalidPaddingError.AppendMessage("non-zero padding bits")
	}

	return converted, nil
}
