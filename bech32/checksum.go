package bech32

// Checksum is a BCH code over GF(32) used to detect errors in the encoded
// data. The generator words are the multiples of the generator polynomial
// by 1, 2, 4, 8 and 16.
type Checksum struct {
	name      string
	generator [5]uint64
	length    int
	constant  uint64
	expand    func(string) []byte
	// alnum limits the prefix to letters and digits. The prefix expansion
	// keeps only the low 5 bits of each character.
	alnum bool
}

var (
	// KaspaChecksum is the cashaddr checksum of 8 groups, which kaspa uses.
	KaspaChecksum = Checksum{
		name: "kaspa",
		generator: [5]uint64{
			0x98f2bc8e61, 0x79b76d99e2, 0xf33e5fb3c4, 0xae2eabe2a8, 0x1e4f43e470,
		},
		length:   8,
		constant: 1,
		expand:   expandPrefixLow,
		alnum:    true,
	}
	// Bech32Checksum is the checksum of BIP-173.
	Bech32Checksum = Checksum{
		name: "bech32",
		generator: [5]uint64{
			0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3,
		},
		length:   6,
		constant: 1,
		expand:   expandPrefixHighLow,
	}
	// Bech32mChecksum is the checksum of BIP-350.
	Bech32mChecksum = Checksum{
		name:      "bech32m",
		generator: Bech32Checksum.generator,
		length:    6,
		constant:  0x2bc830a3,
		expand:    expandPrefixHighLow,
	}
)

func (c Checksum) Name() string {
	return c.name
}

// Len is the number of 5-bit groups of checksum.
func (c Checksum) Len() int {
	return c.length
}

func (c Checksum) String() string {
	return c.name
}

func (c Checksum) IsEmpty() bool {
	return c.length < 1 || c.expand == nil
}

// Create returns the checksum groups of prefix and data. data should
// contain only 5-bit values.
func (c Checksum) Create(prefix string, data []byte) []byte {
	values := make([]byte, 0, len(prefix)*2+1+len(data)+c.length)
	values = append(values, c.expand(prefix)...)
	values = append(values, data...)
	values = append(values, make([]byte, c.length)...)

	mod := c.polymod(values) ^ c.constant

	checksum := make([]byte, c.length)
	for i := range checksum {
		checksum[i] = byte(mod>>(5*uint(c.length-1-i))) & 31
	}

	return checksum
}

// Verify checks data, which ends with the checksum groups.
func (c Checksum) Verify(prefix string, data []byte) bool {
	if len(data) < c.length {
		return false
	}

	values := make([]byte, 0, len(prefix)*2+1+len(data))
	values = append(values, c.expand(prefix)...)
	values = append(values, data...)

	return c.polymod(values) == c.constant
}

func (c Checksum) polymod(values []byte) uint64 {
	shift := 5 * uint(c.length-1)
	mask := uint64(1)<<shift - 1

	chk := uint64(1)
	for _, v := range values {
		top := chk >> shift
		chk = (chk&mask)<<5 ^ uint64(v)

		for i, g := range c.generator {
			if top>>uint(i)&1 == 1 {
				chk ^= g
			}
		}
	}

	return chk
}

// expandPrefixLow takes the lower 5 bits of each character followed by a
// zero.
func expandPrefixLow(prefix string) []byte {
	b := make([]byte, len(prefix)+1)
	for i := 0; i < len(prefix); i++ {
		b[i] = prefix[i] & 31
	}

	return b
}

// expandPrefixHighLow takes the upper bits of each character, a zero, then
// the lower 5 bits of each character.
func expandPrefixHighLow(prefix string) []byte {
	b := make([]byte, len(prefix)*2+1)
	for i := 0; i < len(prefix); i++ {
		b[i] = prefix[i] >> 5
		b[len(prefix)+1+i] = prefix[i] & 31
	}

	return b
}
