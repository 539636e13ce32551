package big

import (
	"bytes"
	"encoding/json"
	"io"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/rlp"
)

// SompiPerKaspa is the number of the smallest units in one KAS.
const (
	SompiPerKaspa uint64 = 100_000_000
	KaspaDecimals int    = 8
)

var (
	ZeroBigInt *big.Int = new(big.Int).SetInt64(0)
	ZeroBig    Big      = NewBig(0)
)

// Big is a non-negative amount in sompi.
type Big struct {
	big.Int
}

func NewBig(i uint64) Big {
	var a big.Int
	a.SetUint64(i)

	return Big{Int: a}
}

func ParseBig(s string) (Big, error) {
	var a big.Int
	if _, ok := a.SetString(strings.TrimSpace(s), 10); !ok {
		return Big{}, InvalidAmountError.AppendMessage("not an integer; %q", s)
	}

	if a.Sign() < 0 {
		return Big{}, InvalidAmountError.AppendMessage("negative; %q", s)
	}

	return Big{Int: a}, nil
}

func (a Big) MarshalJSON() ([]byte, error) {
	return json.Marshal(&a.Int)
}

// UnmarshalJSON accepts a JSON integer of any size, or a string holding one.
// null is zero.
func (a *Big) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	switch {
	case len(b) < 1:
		return InvalidAmountError.AppendMessage("empty")
	case bytes.Equal(b, []byte("null")):
		*a = ZeroBig
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return InvalidAmountError.Wrap(err)
		}
		b = []byte(s)
	}

	p, err := ParseBig(string(b))
	if err != nil {
		return err
	}

	*a = p

	return nil
}

func (a Big) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, &a.Int)
}

func (a *Big) DecodeRLP(s *rlp.Stream) error {
	i, err := s.BigInt()
	if err != nil {
		return err
	}

	a.Int = *i

	return nil
}

func (a Big) String() string {
	return (&a.Int).String()
}

// Kaspa formats the amount as KAS with 8 decimals, like "1.50000000".
func (a Big) Kaspa() string {
	var q, r big.Int
	q.QuoRem(&a.Int, new(big.Int).SetUint64(SompiPerKaspa), &r)

	frac := r.String()
	if len(frac) < KaspaDecimals {
		frac = strings.Repeat("0", KaspaDecimals-len(frac)) + frac
	}

	return q.String() + "." + frac
}

func (a Big) Add(n Big) Big {
	var b big.Int
	b.Add(&a.Int, &n.Int)

	return Big{Int: b}
}

// SubOK returns false when n is greater than a.
func (a Big) SubOK(n Big) (Big, bool) {
	if a.Int.Cmp(&n.Int) < 0 {
		return Big{}, false
	}

	var b big.Int
	b.Sub(&a.Int, &n.Int)

	return Big{Int: b}, true
}

func (a Big) IsZero() bool {
	return a.Int.Cmp(ZeroBigInt) == 0
}

func (a Big) Cmp(b Big) int {
	return a.Int.Cmp(&b.Int)
}

func (a Big) Equal(b Big) bool {
	return a.Int.Cmp(&b.Int) == 0
}

func Sum(amounts ...Big) Big {
	s := ZeroBig
	for _, a := range amounts {
		s = s.Add(a)
	}

	return s
}
