package wallet

import (
	"context"
	"io"
	"strings"
	"time"

	"golang.org/x/xerrors"

	"github.com/spikeekips/kaspaddr/address"
	"github.com/spikeekips/kaspaddr/bech32"
	"github.com/spikeekips/kaspaddr/common"
	"github.com/spikeekips/kaspaddr/keypair"
	"github.com/spikeekips/kaspaddr/network"
	"github.com/spikeekips/kaspaddr/storage"
)

// Generated is the result of a new address. PrivateKey is returned only
// here; the wallet never stores or logs it.
type Generated struct {
	PrivateKey keypair.PrivateKey
	PublicKey  keypair.PublicKey
	Address    address.Address
}

type Wallet struct {
	*common.Logger
	codec       address.Codec
	prefix      string
	keyType     keypair.Type
	random      io.Reader
	st          storage.Storage
	book        *storage.AddressBook
	client      network.BalanceClient
	concurrency int
}

func NewWallet(codec address.Codec, prefix string, keyType keypair.Type) (*Wallet, error) {
	if err := codec.Scheme().CheckPrefix(prefix); err != nil {
		return nil, err
	} else if !address.IsNetworkPrefix(prefix) {
		return nil, bech32.MalformedAddressError.AppendMessage("unknown prefix; prefix=%q", prefix)
	}

	prefix = strings.ToLower(prefix)

	if _, err := address.VersionForKey(keyType); err != nil {
		return nil, err
	}

	return &Wallet{
		Logger:  common.NewLogger(Log(), "prefix", prefix, "key_type", keyType),
		codec:   codec,
		prefix:  prefix,
		keyType: keyType,
	}, nil
}

func (w *Wallet) SetRandom(r io.Reader) *Wallet {
	w.random = r

	return w
}

func (w *Wallet) SetAddressBook(book *storage.AddressBook) *Wallet {
	w.book = book

	return w
}

func (w *Wallet) SetBalanceClient(client network.BalanceClient, concurrency int) *Wallet {
	w.client = client
	w.concurrency = concurrency

	return w
}

func (w *Wallet) Prefix() string {
	return w.prefix
}

func (w *Wallet) AddressBook() *storage.AddressBook {
	return w.book
}

// Generate creates a new private key and its address. The address is added
// to the address book when it is set.
func (w *Wallet) Generate(label string) (Generated, error) {
	p, err := keypair.NewPrivateKey(w.random)
	if err != nil {
		return Generated{}, err
	}

	return w.Import(p, label)
}

// Import derives the address of the existing private key.
func (w *Wallet) Import(p keypair.PrivateKey, label string) (Generated, error) {
	a, err := w.codec.FromPrivateKey(w.prefix, p, w.keyType)
	if err != nil {
		return Generated{}, err
	}

	pk, err := a.PublicKey()
	if err != nil {
		return Generated{}, err
	}

	if err := w.store(a, label); err != nil {
		return Generated{}, err
	}

	w.Log().Debug("address generated", "address", a, "version", a.Version())

	return Generated{PrivateKey: p, PublicKey: pk, Address: a}, nil
}

// Derive imports the key of chain and index from the HD generator, like
// keypair.ReceiveChain and 0.
func (w *Wallet) Derive(g keypair.PrivateKeyGenerator, chain, index uint32, label string) (Generated, error) {
	p, err := g.Key(chain, index)
	if err != nil {
		return Generated{}, err
	}

	return w.Import(p, label)
}

// Watch adds the address of the public key of chain and index. The private
// key is never known to the wallet.
func (w *Wallet) Watch(g keypair.PublicKeyGenerator, chain, index uint32, label string) (address.Address, error) {
	pk, err := g.PublicKey(chain, index, w.keyType)
	if err != nil {
		return address.Address{}, err
	}

	version, err := address.VersionForKey(w.keyType)
	if err != nil {
		return address.Address{}, err
	}

	a, err := w.codec.Encode(w.prefix, version, pk)
	if err != nil {
		return address.Address{}, err
	}

	if err := w.store(a, label); err != nil {
		return address.Address{}, err
	}

	w.Log().Debug("address watched", "address", a, "chain", chain, "index", index)

	return a, nil
}

func (w *Wallet) store(a address.Address, label string) error {
	if w.book == nil {
		return nil
	}

	return w.book.Add(storage.NewAddressRecord(a, w.keyType, label))
}

// Validate decodes s, which must have the wallet prefix.
func (w *Wallet) Validate(s string) (address.Address, error) {
	return w.codec.Decode(s, w.prefix)
}

// Balance validates s and requests the balance. A known address gets the
// result in the address book.
func (w *Wallet) Balance(ctx context.Context, s string) (network.Balance, error) {
	if w.client == nil {
		return network.Balance{}, NoBalanceClientError
	}

	a, err := w.Validate(s)
	if err != nil {
		return network.Balance{}, err
	}

	b, err := w.client.Balance(ctx, a)
	if err != nil {
		return network.Balance{}, err
	}

	if err := w.saveBalances([]network.Balance{b}); err != nil {
		return network.Balance{}, err
	}

	return b, nil
}

// Balances requests the balances of every address of the wallet prefix in
// the address book.
func (w *Wallet) Balances(ctx context.Context) ([]network.Balance, error) {
	if w.client == nil {
		return nil, NoBalanceClientError
	}

	if w.book == nil {
		return nil, NoAddressBookError
	}

	var addresses []address.Address
	if err := w.book.Records(w.prefix, func(r storage.AddressRecord) bool {
		addresses = append(addresses, r.Address)

		return true
	}); err != nil {
		return nil, err
	}

	bs, err := network.Balances(ctx, w.client, addresses, w.concurrency)
	if err != nil {
		return nil, err
	}

	if err := w.saveBalances(bs); err != nil {
		return nil, err
	}

	w.Log().Debug("balances checked", "addresses", len(bs), "total", network.Total(bs))

	return bs, nil
}

func (w *Wallet) saveBalances(bs []network.Balance) error {
	if w.book == nil {
		return nil
	}

	now := time.Now()
	for i := range bs {
		r, err := w.book.Get(bs[i].Address.String())
		if xerrors.Is(err, storage.RecordNotFoundError) {
			continue
		} else if err != nil {
			return err
		}

		if err := w.book.Update(r.WithBalance(bs[i].Amount, bs[i].Found, now)); err != nil {
			return err
		}
	}

	return nil
}
