package address

import (
	"strings"

	"github.com/spikeekips/kaspaddr/bech32"
	"github.com/spikeekips/kaspaddr/keypair"
)

var DefaultCodec Codec = Codec{scheme: bech32.KaspaScheme}

// Codec turns a version and key into an address string of its scheme and
// back.
type Codec struct {
	scheme bech32.Scheme
}

func NewCodec(scheme bech32.Scheme) (Codec, error) {
	if scheme.IsEmpty() {
		return Codec{}, bech32.InvalidSchemeError.AppendMessage("empty scheme")
	}

	return Codec{scheme: scheme}, nil
}

func (c Codec) Scheme() bech32.Scheme {
	return c.scheme
}

func (c Codec) Encode(prefix string, version Version, pk keypair.PublicKey) (Address, error) {
	if err := pk.IsValid(); err != nil {
		return Address{}, err
	}

	return c.EncodePayload(prefix, version, pk.Bytes())
}

func (c Codec) EncodePayload(prefix string, version Version, key []byte) (Address, error) {
	if err := version.IsValid(); err != nil {
		return Address{}, err
	}

	if err := checkKeyLength(key); err != nil {
		return Address{}, err
	}

	payload := make([]byte, 1+len(key))
	payload[0] = byte(version)
	copy(payload[1:], key)

	groups, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return Address{}, err
	}

	s, err := c.scheme.Encode(prefix, groups)
	if err != nil {
		return Address{}, err
	}

	return Address{
		prefix:  strings.ToLower(prefix),
		version: version,
		key:     payload[1:],
		s:       s,
	}, nil
}

// FromPrivateKey derives the public key of t and encodes it with the version
// assigned to t.
func (c Codec) FromPrivateKey(prefix string, p keypair.PrivateKey, t keypair.Type) (Address, error) {
	version, err := VersionForKey(t)
	if err != nil {
		return Address{}, err
	}

	pk, err := keypair.Derive(p, t)
	if err != nil {
		return Address{}, err
	}

	return c.Encode(prefix, version, pk)
}

// Decode parses and validates s. An empty expectedPrefix accepts any of the
// network prefixes.
func (c Codec) Decode(s, expectedPrefix string) (Address, error) {
	prefix, groups, err := c.scheme.Decode(s)
	if err != nil {
		return Address{}, err
	}

	switch {
	case len(expectedPrefix) < 1:
		if !IsNetworkPrefix(prefix) {
			return Address{}, bech32.MalformedAddressError.AppendMessage("unknown prefix; prefix=%q", prefix)
		}
	case prefix != strings.ToLower(expectedPrefix):
		return Address{}, bech32.MalformedAddressError.AppendMessage(
			"prefix mismatch; expected=%q prefix=%q", expectedPrefix, prefix,
		)
	}

	payload, err := bech32.ConvertBits(groups, 5, 8, false)
	if err != nil {
		return Address{}, err
	}

	if len(payload) < 1 {
		return Address{}, bech32.MalformedAddressError.AppendMessage("empty payload")
	}

	version := Version(payload[0])
	if err := version.IsValid(); err != nil {
		return Address{}, err
	}

	if err := checkKeyLength(payload[1:]); err != nil {
		return Address{}, err
	}

	log.Debug("address decoded", "prefix", prefix, "version", version)

	return Address{
		prefix:  prefix,
		version: version,
		key:     payload[1:],
		s:       strings.ToLower(s),
	}, nil
}

func checkKeyLength(key []byte) error {
	switch len(key) {
	case keypair.XOnlyPublicKeyLength, keypair.CompressedKeyLength:
		return nil
	default:
		return bech32.MalformedAddressError.AppendMessage("key length=%d", len(key))
	}
}

func Encode(prefix string, version Version, pk keypair.PublicKey) (Address, error) {
	return DefaultCodec.Encode(prefix, version, pk)
}

func Decode(s, expectedPrefix string) (Address, error) {
	return DefaultCodec.Decode(s, expectedPrefix)
}
