package wallet

import (
	"github.com/spikeekips/kaspaddr/config"
	"github.com/spikeekips/kaspaddr/encode"
	"github.com/spikeekips/kaspaddr/storage"
	"github.com/spikeekips/kaspaddr/storage/leveldbstorage"
)

// NewWalletFromConfig builds the wallet with the address book in
// c.Storage.Path and the balance client of c.Balance. Close releases the
// address book.
func NewWalletFromConfig(c config.Config) (*Wallet, error) {
	if err := c.IsValid(); err != nil {
		return nil, err
	}

	codec, err := c.Codec()
	if err != nil {
		return nil, err
	}

	keyType, err := c.KeyType()
	if err != nil {
		return nil, err
	}

	w, err := NewWallet(codec, c.Prefix, keyType)
	if err != nil {
		return nil, err
	}

	encoderType, err := c.Encoder()
	if err != nil {
		return nil, err
	}

	encoders := encode.DefaultEncoders()
	if err := encoders.SetDefault(encoderType); err != nil {
		return nil, err
	}

	st, err := leveldbstorage.OpenOrCreateStorage(leveldbstorage.Config{Path: c.Storage.Path})
	if err != nil {
		return nil, err
	}

	w.st = st
	w.SetAddressBook(storage.NewAddressBook(st, encoders, codec))

	if len(c.Balance.URL) > 0 {
		client, err := c.Balance.Client()
		if err != nil {
			_ = st.Close()

			return nil, err
		}

		w.SetBalanceClient(client, c.Balance.Concurrency)
	}

	w.Log().Debug("wallet created from config", "storage", c.Storage.Path, "balance_url", c.Balance.URL)

	return w, nil
}

func (w *Wallet) Close() error {
	if w.st == nil {
		return nil
	}

	return w.st.Close()
}
