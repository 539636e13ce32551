package address

import (
	"fmt"

	"github.com/spikeekips/kaspaddr/keypair"
)

// Version is the first byte of the payload.
type Version byte

const (
	PubKeyVersion      Version = 0x00
	PubKeyECDSAVersion Version = 0x01
	ScriptHashVersion  Version = 0x08
)

func (v Version) IsValid() error {
	switch v {
	case PubKeyVersion, PubKeyECDSAVersion, ScriptHashVersion:
		return nil
	default:
		return UnknownVersionError.AppendMessage("version=0x%02x", byte(v))
	}
}

func (v Version) IsPublicKey() bool {
	return v == PubKeyVersion || v == PubKeyECDSAVersion
}

func (v Version) String() string {
	switch v {
	case PubKeyVersion:
		return "pubkey"
	case PubKeyECDSAVersion:
		return "pubkey-ecdsa"
	case ScriptHashVersion:
		return "scripthash"
	default:
		return fmt.Sprintf("unknown(0x%02x)", byte(v))
	}
}

func VersionForKey(t keypair.Type) (Version, error) {
	switch {
	case t.Equal(keypair.SchnorrType):
		return PubKeyVersion, nil
	case t.Equal(keypair.ECDSAType):
		return PubKeyECDSAVersion, nil
	default:
		return 0, keypair.UnknownKeyTypeError.AppendMessage("type=%q", t.String())
	}
}
