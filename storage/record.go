package storage

import (
	"time"

	"github.com/spikeekips/kaspaddr/address"
	"github.com/spikeekips/kaspaddr/big"
	"github.com/spikeekips/kaspaddr/common"
	"github.com/spikeekips/kaspaddr/keypair"
)

// RecordVersion is the schema version of the stored address records. Records
// of another major version are not read.
var RecordVersion common.Version = common.MustParseVersion("0.1.0")

// AddressRecord is what the address book keeps for one address. It never
// holds the private key.
type AddressRecord struct {
	Address   address.Address
	KeyType   keypair.Type
	Label     string
	Balance   big.Big
	Found     bool
	CreatedAt time.Time
	CheckedAt time.Time
}

func NewAddressRecord(a address.Address, keyType keypair.Type, label string) AddressRecord {
	return AddressRecord{
		Address:   a,
		KeyType:   keyType,
		Label:     label,
		Balance:   big.ZeroBig,
		CreatedAt: time.Now().UTC(),
	}
}

// WithBalance returns a copy of the record with the lookup result.
func (r AddressRecord) WithBalance(amount big.Big, found bool, checkedAt time.Time) AddressRecord {
	r.Balance = amount
	r.Found = found
	r.CheckedAt = checkedAt.UTC()

	return r
}

// encodedAddressRecord is the stored form; every field is RLP and JSON
// friendly.
type encodedAddressRecord struct {
	Version   string  `json:"version"`
	Address   string  `json:"address"`
	KeyType   string  `json:"key_type"`
	Label     string  `json:"label"`
	Balance   big.Big `json:"balance"`
	Found     bool    `json:"found"`
	CreatedAt uint64  `json:"created_at"`
	CheckedAt uint64  `json:"checked_at"`
}

func newEncodedAddressRecord(r AddressRecord) encodedAddressRecord {
	return encodedAddressRecord{
		Version:   RecordVersion.String(),
		Address:   r.Address.String(),
		KeyType:   r.KeyType.String(),
		Label:     r.Label,
		Balance:   r.Balance,
		Found:     r.Found,
		CreatedAt: unixNano(r.CreatedAt),
		CheckedAt: unixNano(r.CheckedAt),
	}
}

func (e encodedAddressRecord) decode(codec address.Codec) (AddressRecord, error) {
	v, err := common.NewVersion(e.Version)
	if err != nil {
		return AddressRecord{}, IncompatibleRecordError.Wrap(err)
	} else if !RecordVersion.IsCompatible(v) {
		return AddressRecord{}, IncompatibleRecordError.AppendMessage(
			"record version=%s current=%s", v, RecordVersion,
		)
	}

	a, err := codec.Decode(e.Address, "")
	if err != nil {
		return AddressRecord{}, err
	}

	var keyType keypair.Type
	if len(e.KeyType) > 0 {
		if keyType, err = keypair.ParseType(e.KeyType); err != nil {
			return AddressRecord{}, err
		}
	}

	return AddressRecord{
		Address:   a,
		KeyType:   keyType,
		Label:     e.Label,
		Balance:   e.Balance,
		Found:     e.Found,
		CreatedAt: fromUnixNano(e.CreatedAt),
		CheckedAt: fromUnixNano(e.CheckedAt),
	}, nil
}

func unixNano(t time.Time) uint64 {
	if t.IsZero() {
		return 0
	}

	return uint64(t.UnixNano())
}

func fromUnixNano(n uint64) time.Time {
	if n < 1 {
		return time.Time{}
	}

	return time.Unix(0, int64(n)).UTC()
}
