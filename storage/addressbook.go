package storage

import (
	"strings"

	"github.com/spikeekips/kaspaddr/address"
	"github.com/spikeekips/kaspaddr/common"
	"github.com/spikeekips/kaspaddr/encode"
)

var addressKeyPrefix = []byte("address:")

// AddressBook keeps address records in a Storage. Stored addresses are
// decoded again on read, so a corrupted record never comes out as a valid
// address.
type AddressBook struct {
	*common.Logger
	st       Storage
	encoders *encode.Encoders
	codec    address.Codec
}

func NewAddressBook(st Storage, encoders *encode.Encoders, codec address.Codec) *AddressBook {
	if encoders == nil {
		encoders = encode.DefaultEncoders()
	}

	return &AddressBook{
		Logger:   common.NewLogger(Log(), "module", "address-book", "encoder", encoders.Default()),
		st:       st,
		encoders: encoders,
		codec:    codec,
	}
}

func addressKey(s string) []byte {
	return append(append([]byte{}, addressKeyPrefix...), []byte(strings.ToLower(s))...)
}

func (ab *AddressBook) Add(r AddressRecord) error {
	if r.Address.IsEmpty() {
		return InvalidRecordError.AppendMessage("empty address")
	}

	b, err := ab.encoders.Encode(newEncodedAddressRecord(r))
	if err != nil {
		return err
	}

	if err := ab.st.Insert(addressKey(r.Address.String()), b); err != nil {
		return err
	}

	ab.Log().Debug("address added", "address", r.Address, "key_type", r.KeyType)

	return nil
}

// AddMany inserts records at once; nothing is written when one of them
// already exists or is given twice.
func (ab *AddressBook) AddMany(rs []AddressRecord) error {
	batch := ab.st.Batch()
	seen := map[string]struct{}{}

	for _, r := range rs {
		if r.Address.IsEmpty() {
			return InvalidRecordError.AppendMessage("empty address")
		}

		key := addressKey(r.Address.String())
		if _, found := seen[string(key)]; found {
			return RecordAlreadyExistsError.AppendMessage("duplicated; address=%s", r.Address)
		}
		seen[string(key)] = struct{}{}

		if found, err := ab.st.Exists(key); err != nil {
			return err
		} else if found {
			return RecordAlreadyExistsError.AppendMessage("address=%s", r.Address)
		}

		b, err := ab.encoders.Encode(newEncodedAddressRecord(r))
		if err != nil {
			return err
		}

		batch.Put(key, b)
	}

	return ab.st.WriteBatch(batch)
}

func (ab *AddressBook) Update(r AddressRecord) error {
	b, err := ab.encoders.Encode(newEncodedAddressRecord(r))
	if err != nil {
		return err
	}

	return ab.st.Update(addressKey(r.Address.String()), b)
}

func (ab *AddressBook) Get(s string) (AddressRecord, error) {
	b, err := ab.st.Get(addressKey(s))
	if err != nil {
		return AddressRecord{}, err
	}

	return ab.decode(b)
}

func (ab *AddressBook) Exists(s string) (bool, error) {
	return ab.st.Exists(addressKey(s))
}

func (ab *AddressBook) Remove(s string) error {
	return ab.st.Delete(addressKey(s))
}

// Records iterates the records whose address starts with prefix, like
// "kaspatest". Empty prefix iterates all.
func (ab *AddressBook) Records(prefix string, callback func(AddressRecord) bool) error {
	if len(prefix) > 0 {
		prefix += string(ab.codec.Scheme().Separator())
	}

	var derr error
	err := ab.st.Iterator(addressKey(prefix), false, func(_, value []byte) bool {
		r, err := ab.decode(value)
		if err != nil {
			derr = err
			return false
		}

		return callback(r)
	})
	if err != nil {
		return err
	}

	return derr
}

func (ab *AddressBook) decode(b []byte) (AddressRecord, error) {
	var e encodedAddressRecord
	if err := ab.encoders.Decode(b, &e); err != nil {
		return AddressRecord{}, err
	}

	return e.decode(ab.codec)
}
