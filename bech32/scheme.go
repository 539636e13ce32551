package bech32

import (
	"strings"
)

const MaxPrefixLength int = 83

var (
	KaspaScheme   = MustNewScheme("kaspa", ':', KaspaChecksum)
	Bech32Scheme  = MustNewScheme("bech32", '1', Bech32Checksum)
	Bech32mScheme = MustNewScheme("bech32m", '1', Bech32mChecksum)
)

// Scheme puts together the separator and the checksum of the textual
// format, "<prefix><separator><data><checksum>". The separator is not a part
// of checksum input.
type Scheme struct {
	name      string
	separator byte
	checksum  Checksum
}

func NewScheme(name string, separator byte, checksum Checksum) (Scheme, error) {
	switch {
	case len(name) < 1:
		return Scheme{}, InvalidSchemeError.AppendMessage("empty name")
	case checksum.IsEmpty():
		return Scheme{}, InvalidSchemeError.AppendMessage("empty checksum; name=%q", name)
	case separator < 33 || separator > 126:
		return Scheme{}, InvalidSchemeError.AppendMessage("separator not printable; separator=%q", separator)
	case strings.IndexByte(Charset, lower(separator)) >= 0:
		return Scheme{}, InvalidSchemeError.AppendMessage("separator found in charset; separator=%q", separator)
	}

	return Scheme{name: name, separator: separator, checksum: checksum}, nil
}

func MustNewScheme(name string, separator byte, checksum Checksum) Scheme {
	s, err := NewScheme(name, separator, checksum)
	if err != nil {
		panic(err)
	}

	return s
}

func (s Scheme) Name() string {
	return s.name
}

func (s Scheme) Separator() byte {
	return s.separator
}

func (s Scheme) Checksum() Checksum {
	return s.checksum
}

func (s Scheme) String() string {
	return s.name
}

func (s Scheme) IsEmpty() bool {
	return s.separator == 0 || s.checksum.IsEmpty()
}

// CheckPrefix checks prefix is printable ASCII without separator. With the
// kaspa checksum only letters and digits are allowed.
func (s Scheme) CheckPrefix(prefix string) error {
	if len(prefix) < 1 || len(prefix) > MaxPrefixLength {
		return MalformedAddressError.AppendMessage("invalid prefix length; length=%d", len(prefix))
	}

	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		if c < 33 || c > 126 {
			return MalformedAddressError.AppendMessage("prefix has invalid character; %q at position %d", c, i)
		} else if c == s.separator {
			return MalformedAddressError.AppendMessage("prefix has separator at position %d", i)
		} else if s.checksum.alnum && !isAlnum(c) {
			return MalformedAddressError.AppendMessage("prefix allows only letters and digits; %q at position %d", c, i)
		}
	}

	return nil
}

// Encode returns the lowercase string of prefix and 5-bit data with the
// checksum appended.
func (s Scheme) Encode(prefix string, data []byte) (string, error) {
	if err := s.CheckPrefix(prefix); err != nil {
		return "", err
	}

	prefix = strings.ToLower(prefix)

	encoded, err := EncodeGroups(data)
	if err != nil {
		return "", err
	}

	checksum, err := EncodeGroups(s.checksum.Create(prefix, data))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(prefix) + 1 + len(encoded) + len(checksum))
	sb.WriteString(prefix)
	sb.WriteByte(s.separator)
	sb.WriteString(encoded)
	sb.WriteString(checksum)

	return sb.String(), nil
}

// Decode splits the string into the lowercase prefix and the 5-bit data.
// The returned data does not include the checksum.
func (s Scheme) Decode(str string) (string, []byte, error) {
	if err := checkCase(str); err != nil {
		return "", nil, err
	}

	str = strings.ToLower(str)

	i := strings.LastIndexByte(str, s.separator)
	switch {
	case i < 0:
		return "", nil, MalformedAddressError.AppendMessage("separator, %q not found", s.separator)
	case i < 1:
		return "", nil, MalformedAddressError.AppendMessage("empty prefix")
	}

	prefix := str[:i]
	if err := s.CheckPrefix(prefix); err != nil {
		return "", nil, err
	}

	data, err := DecodeGroups(str[i+1:])
	if err != nil {
		return "", nil, err
	}

	if len(data) < s.checksum.Len() {
		return "", nil, MalformedAddressError.AppendMessage(
			"too short data; length=%d checksum=%d", len(data), s.checksum.Len(),
		)
	}

	if !s.checksum.Verify(prefix, data) {
		return "", nil, ChecksumMismatchError.AppendMessage("scheme=%s", s.name)
	}

	return prefix, data[:len(data)-s.checksum.Len()], nil
}

func checkCase(s string) error {
	var hasLower, hasUpper bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		}

		if hasLower && hasUpper {
			return MixedCaseError.AppendMessage("at position %d", i)
		}
	}

	return nil
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}
