package address

import (
	"bytes"
	"encoding/json"

	"github.com/spikeekips/kaspaddr/keypair"
)

// Address is a decoded or freshly encoded address. It is only built by Codec,
// so the string form is always consistent with the payload.
type Address struct {
	prefix  string
	version Version
	key     []byte
	s       string
}

func (a Address) Prefix() string {
	return a.prefix
}

func (a Address) Version() Version {
	return a.version
}

func (a Address) Key() []byte {
	b := make([]byte, len(a.key))
	copy(b, a.key)

	return b
}

// Payload is the version byte followed by the key bytes.
func (a Address) Payload() []byte {
	return append([]byte{byte(a.version)}, a.key...)
}

func (a Address) PublicKey() (keypair.PublicKey, error) {
	if !a.version.IsPublicKey() {
		return keypair.PublicKey{}, UnknownVersionError.AppendMessage(
			"version=%s does not carry a public key", a.version,
		)
	}

	return keypair.NewPublicKeyFromBytes(a.key)
}

func (a Address) IsEmpty() bool {
	return len(a.s) < 1
}

func (a Address) Equal(b Address) bool {
	return a.prefix == b.prefix && a.version == b.version && bytes.Equal(a.key, b.key)
}

func (a Address) String() string {
	return a.s
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.s), nil
}

func (a *Address) UnmarshalText(b []byte) error {
	n, err := DefaultCodec.Decode(string(b), "")
	if err != nil {
		return err
	}

	*a = n

	return nil
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.s)
}

func (a *Address) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	return a.UnmarshalText([]byte(s))
}
