package keypair

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

const (
	HardenedKeyStart    uint32 = hdkeychain.HardenedKeyStart
	KaspaCoinType       uint32 = 111111
	SingleSignerPurpose uint32 = 44
	MultiSignerPurpose  uint32 = 45
	ReceiveChain        uint32 = 0
	ChangeChain         uint32 = 1

	extendedKeyRedactedText = "ExtendedPrivateKey(<redacted>)"
)

// HD key version bytes. They decide the leading characters of the
// serialized key.
var (
	MainnetPrivateKeyID = [4]byte{0x03, 0x8f, 0x2e, 0xf4} // kprv
	MainnetPublicKeyID  = [4]byte{0x03, 0x8f, 0x33, 0x2e} // kpub
	TestnetPrivateKeyID = [4]byte{0x03, 0x90, 0x9e, 0x07} // ktrv
	TestnetPublicKeyID  = [4]byte{0x03, 0x90, 0xa2, 0x41} // ktub
)

func init() {
	for _, ids := range [][2][4]byte{
		{MainnetPublicKeyID, MainnetPrivateKeyID},
		{TestnetPublicKeyID, TestnetPrivateKeyID},
	} {
		ids := ids
		if err := chaincfg.RegisterHDKeyID(ids[0][:], ids[1][:]); err != nil {
			panic(err)
		}
	}
}

// ExtendedPrivateKey is a BIP-32 private node. Like PrivateKey, formatting
// never shows the key; Serialize returns the encoded form.
type ExtendedPrivateKey struct {
	k *hdkeychain.ExtendedKey
}

// NewMasterKey creates the master node of seed with the kprv version.
func NewMasterKey(seed []byte) (ExtendedPrivateKey, error) {
	k, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return ExtendedPrivateKey{}, InvalidExtendedKeyError.Wrap(err)
	}

	return ExtendedPrivateKey{k: k}.WithVersion(MainnetPrivateKeyID)
}

func ParseExtendedPrivateKey(s string) (ExtendedPrivateKey, error) {
	k, err := hdkeychain.NewKeyFromString(s)
	if err != nil {
		return ExtendedPrivateKey{}, InvalidExtendedKeyError.Wrap(err)
	}

	if !k.IsPrivate() {
		return ExtendedPrivateKey{}, InvalidExtendedKeyError.AppendMessage("not private key")
	}

	return ExtendedPrivateKey{k: k}, nil
}

func (k ExtendedPrivateKey) IsEmpty() bool {
	return k.k == nil
}

func (k ExtendedPrivateKey) Depth() uint8 {
	if k.IsEmpty() {
		return 0
	}

	return k.k.Depth()
}

// WithVersion returns the same node with the other version bytes, for
// example chaincfg.MainNetParams.HDPrivateKeyID for xprv.
func (k ExtendedPrivateKey) WithVersion(id [4]byte) (ExtendedPrivateKey, error) {
	if k.IsEmpty() {
		return ExtendedPrivateKey{}, InvalidExtendedKeyError.AppendMessage("empty")
	}

	n, err := k.k.CloneWithVersion(id[:])
	if err != nil {
		return ExtendedPrivateKey{}, InvalidExtendedKeyError.Wrap(err)
	}

	return ExtendedPrivateKey{k: n}, nil
}

// Derive follows path from this node. Indices from HardenedKeyStart are
// hardened.
func (k ExtendedPrivateKey) Derive(path ...uint32) (ExtendedPrivateKey, error) {
	if k.IsEmpty() {
		return ExtendedPrivateKey{}, InvalidExtendedKeyError.AppendMessage("empty")
	}

	n := k.k
	for _, i := range path {
		c, err := n.Derive(i)
		if err != nil {
			return ExtendedPrivateKey{}, InvalidDerivationPathError.Wrap(err)
		}

		n = c
	}

	return ExtendedPrivateKey{k: n}, nil
}

func (k ExtendedPrivateKey) PrivateKey() (PrivateKey, error) {
	if k.IsEmpty() {
		return PrivateKey{}, InvalidExtendedKeyError.AppendMessage("empty")
	}

	priv, err := k.k.ECPrivKey()
	if err != nil {
		return PrivateKey{}, InvalidExtendedKeyError.Wrap(err)
	}
	defer priv.Zero()

	b := priv.Serialize()
	defer func() {
		for i := range b {
			b[i] = 0
		}
	}()

	return NewPrivateKeyFromBytes(b)
}

func (k ExtendedPrivateKey) ExtendedPublicKey() (ExtendedPublicKey, error) {
	if k.IsEmpty() {
		return ExtendedPublicKey{}, InvalidExtendedKeyError.AppendMessage("empty")
	}

	n, err := k.k.Neuter()
	if err != nil {
		return ExtendedPublicKey{}, InvalidExtendedKeyError.Wrap(err)
	}

	return ExtendedPublicKey{k: n}, nil
}

// Serialize returns the base58 form, like "kprv...". It exposes the key.
func (k ExtendedPrivateKey) Serialize() string {
	if k.IsEmpty() {
		return ""
	}

	return k.k.String()
}

func (k ExtendedPrivateKey) String() string {
	return extendedKeyRedactedText
}

func (k ExtendedPrivateKey) GoString() string {
	return extendedKeyRedactedText
}

func (k ExtendedPrivateKey) Format(s fmt.State, _ rune) {
	_, _ = s.Write([]byte(extendedKeyRedactedText))
}

func (k ExtendedPrivateKey) MarshalText() ([]byte, error) {
	return []byte(extendedKeyRedactedText), nil
}

// ExtendedPublicKey is a BIP-32 public node; it derives only non-hardened
// children.
type ExtendedPublicKey struct {
	k *hdkeychain.ExtendedKey
}

func ParseExtendedPublicKey(s string) (ExtendedPublicKey, error) {
	k, err := hdkeychain.NewKeyFromString(s)
	if err != nil {
		return ExtendedPublicKey{}, InvalidExtendedKeyError.Wrap(err)
	}

	if k.IsPrivate() {
		return ExtendedPublicKey{}, InvalidExtendedKeyError.AppendMessage("private key given")
	}

	return ExtendedPublicKey{k: k}, nil
}

func (k ExtendedPublicKey) IsEmpty() bool {
	return k.k == nil
}

func (k ExtendedPublicKey) Depth() uint8 {
	if k.IsEmpty() {
		return 0
	}

	return k.k.Depth()
}

func (k ExtendedPublicKey) Derive(path ...uint32) (ExtendedPublicKey, error) {
	if k.IsEmpty() {
		return ExtendedPublicKey{}, InvalidExtendedKeyError.AppendMessage("empty")
	}

	n := k.k
	for _, i := range path {
		if i >= HardenedKeyStart {
			return ExtendedPublicKey{}, InvalidDerivationPathError.AppendMessage(
				"hardened index from public key; index=%d", i,
			)
		}

		c, err := n.Derive(i)
		if err != nil {
			return ExtendedPublicKey{}, InvalidDerivationPathError.Wrap(err)
		}

		n = c
	}

	return ExtendedPublicKey{k: n}, nil
}

func (k ExtendedPublicKey) PublicKey(t Type) (PublicKey, error) {
	if k.IsEmpty() {
		return PublicKey{}, InvalidExtendedKeyError.AppendMessage("empty")
	}

	pub, err := k.k.ECPubKey()
	if err != nil {
		return PublicKey{}, InvalidExtendedKeyError.Wrap(err)
	}

	return publicKeyOf(pub, t)
}

func (k ExtendedPublicKey) String() string {
	if k.IsEmpty() {
		return ""
	}

	return k.k.String()
}

func (k ExtendedPublicKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// AccountPath is the hardened path of account under the master node,
// m/44'/111111'/account' or m/45'/111111'/account' for multisig.
func AccountPath(multisig bool, account uint32) ([]uint32, error) {
	if account >= HardenedKeyStart {
		return nil, InvalidDerivationPathError.AppendMessage("account index=%d", account)
	}

	purpose := SingleSignerPurpose
	if multisig {
		purpose = MultiSignerPurpose
	}

	return []uint32{
		purpose + HardenedKeyStart,
		KaspaCoinType + HardenedKeyStart,
		account + HardenedKeyStart,
	}, nil
}

func checkChain(chain uint32) error {
	switch chain {
	case ReceiveChain, ChangeChain:
		return nil
	default:
		return InvalidDerivationPathError.AppendMessage("unknown chain=%d", chain)
	}
}

func checkIndex(i uint32) error {
	if i >= HardenedKeyStart {
		return InvalidDerivationPathError.AppendMessage("hardened address index=%d", i)
	}

	return nil
}

// PrivateKeyGenerator derives the receive and change keys of an account
// from the master node. Multisig accounts have the cosigner index between
// the account and the chain.
type PrivateKeyGenerator struct {
	account ExtendedPrivateKey
	receive ExtendedPrivateKey
	change  ExtendedPrivateKey
}

func NewPrivateKeyGenerator(master ExtendedPrivateKey, account uint32) (PrivateKeyGenerator, error) {
	return newPrivateKeyGenerator(master, false, account, 0)
}

func NewMultisigPrivateKeyGenerator(master ExtendedPrivateKey, account, cosigner uint32) (PrivateKeyGenerator, error) {
	return newPrivateKeyGenerator(master, true, account, cosigner)
}

func newPrivateKeyGenerator(
	master ExtendedPrivateKey, multisig bool, account, cosigner uint32,
) (PrivateKeyGenerator, error) {
	path, err := AccountPath(multisig, account)
	if err != nil {
		return PrivateKeyGenerator{}, err
	}

	acc, err := master.Derive(path...)
	if err != nil {
		return PrivateKeyGenerator{}, err
	}

	base := acc
	if multisig {
		if err := checkIndex(cosigner); err != nil {
			return PrivateKeyGenerator{}, err
		}

		if base, err = acc.Derive(cosigner); err != nil {
			return PrivateKeyGenerator{}, err
		}
	}

	receive, err := base.Derive(ReceiveChain)
	if err != nil {
		return PrivateKeyGenerator{}, err
	}

	change, err := base.Derive(ChangeChain)
	if err != nil {
		return PrivateKeyGenerator{}, err
	}

	log.Debug("private key generator created", "multisig", multisig, "account", account)

	return PrivateKeyGenerator{account: acc, receive: receive, change: change}, nil
}

// AccountPublicKey returns the account node for PublicKeyGenerator.
func (g PrivateKeyGenerator) AccountPublicKey() (ExtendedPublicKey, error) {
	return g.account.ExtendedPublicKey()
}

func (g PrivateKeyGenerator) ReceiveKey(i uint32) (PrivateKey, error) {
	return g.Key(ReceiveChain, i)
}

func (g PrivateKeyGenerator) ChangeKey(i uint32) (PrivateKey, error) {
	return g.Key(ChangeChain, i)
}

func (g PrivateKeyGenerator) Key(chain, i uint32) (PrivateKey, error) {
	if err := checkChain(chain); err != nil {
		return PrivateKey{}, err
	} else if err := checkIndex(i); err != nil {
		return PrivateKey{}, err
	}

	n := g.receive
	if chain == ChangeChain {
		n = g.change
	}

	c, err := n.Derive(i)
	if err != nil {
		return PrivateKey{}, err
	}

	return c.PrivateKey()
}

func (g PrivateKeyGenerator) String() string {
	return "PrivateKeyGenerator(<redacted>)"
}

func (g PrivateKeyGenerator) Format(s fmt.State, _ rune) {
	_, _ = s.Write([]byte(g.String()))
}

// PublicKeyGenerator derives the receive and change public keys from the
// account node, without the private key.
type PublicKeyGenerator struct {
	receive ExtendedPublicKey
	change  ExtendedPublicKey
}

func NewPublicKeyGenerator(account ExtendedPublicKey) (PublicKeyGenerator, error) {
	return newPublicKeyGenerator(account, nil)
}

func NewMultisigPublicKeyGenerator(account ExtendedPublicKey, cosigner uint32) (PublicKeyGenerator, error) {
	return newPublicKeyGenerator(account, []uint32{cosigner})
}

func newPublicKeyGenerator(account ExtendedPublicKey, cosigner []uint32) (PublicKeyGenerator, error) {
	base, err := account.Derive(cosigner...)
	if err != nil {
		return PublicKeyGenerator{}, err
	}

	receive, err := base.Derive(ReceiveChain)
	if err != nil {
		return PublicKeyGenerator{}, err
	}

	change, err := base.Derive(ChangeChain)
	if err != nil {
		return PublicKeyGenerator{}, err
	}

	return PublicKeyGenerator{receive: receive, change: change}, nil
}

func (g PublicKeyGenerator) ReceivePublicKey(i uint32, t Type) (PublicKey, error) {
	return g.PublicKey(ReceiveChain, i, t)
}

func (g PublicKeyGenerator) ChangePublicKey(i uint32, t Type) (PublicKey, error) {
	return g.PublicKey(ChangeChain, i, t)
}

func (g PublicKeyGenerator) PublicKey(chain, i uint32, t Type) (PublicKey, error) {
	if err := checkChain(chain); err != nil {
		return PublicKey{}, err
	} else if err := checkIndex(i); err != nil {
		return PublicKey{}, err
	}

	n := g.receive
	if chain == ChangeChain {
		n = g.change
	}

	c, err := n.Derive(i)
	if err != nil {
		return PublicKey{}, err
	}

	return c.PublicKey(t)
}
