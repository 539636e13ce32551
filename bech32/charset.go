package bech32

const Charset string = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

var charsetRev [128]int8

func init() {
	for i := range charsetRev {
		charsetRev[i] = -1
	}

	for i := 0; i < len(Charset); i++ {
		charsetRev[Charset[i]] = int8(i)
	}
}

// EncodeGroups maps 5-bit groups to the characters of Charset.
func EncodeGroups(data []byte) (string, error) {
	b := make([]byte, len(data))
	for i, d := range data {
		if d >= 32 {
			return "", InvalidInputWidthError.AppendMessage("group at index %d, %d is not 5-bit", i, d)
		}

		b[i] = Charset[d]
	}

	return string(b), nil
}

// DecodeGroups maps the lowercase characters of s back to 5-bit groups.
func DecodeGroups(s string) ([]byte, error) {
	data := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 128 || charsetRev[c] < 0 {
			return nil, InvalidCharacterError.AppendMessage("%q at position %d", c, i)
		}

		data[i] = byte(charsetRev[c])
	}

	return data, nil
}
