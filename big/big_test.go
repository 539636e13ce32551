package big

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

type testBig struct {
	suite.Suite
}

func (t *testBig) TestAdd() {
	a := NewBig(math.MaxUint64)
	b := NewBig(math.MaxUint64)

	c := a.Add(b)
	t.Equal("36893488147419103230", c.String())
	t.Equal("18446744073709551615", a.String())

	t.Equal("36893488147419103231", Sum(a, b, NewBig(1)).String())
	t.True(Sum().IsZero())
}

func (t *testBig) TestSub() {
	a := NewBig(10)
	b := NewBig(math.MaxUint64)

	c, ok := b.SubOK(a)
	t.True(ok)
	t.Equal("18446744073709551605", c.String())

	_, ok = a.SubOK(b)
	t.False(ok)

	c, ok = a.SubOK(a)
	t.True(ok)
	t.True(c.IsZero())
}

func (t *testBig) TestParse() {
	a, err := ParseBig("123456789012345678901234567890")
	t.NoError(err)
	t.Equal("123456789012345678901234567890", a.String())

	for _, s := range []string{"", "1.5", "-1", "abc", "0x10"} {
		_, err := ParseBig(s)
		t.True(xerrors.Is(err, InvalidAmountError), s)
	}
}

func (t *testBig) TestUnmarshalJSON() {
	cases := []struct {
		s        string
		expected string
	}{
		{s: `0`, expected: "0"},
		{s: `150000000`, expected: "150000000"},
		{s: `"150000000"`, expected: "150000000"},
		{s: `123456789012345678901234567890`, expected: "123456789012345678901234567890"},
		{s: `null`, expected: "0"},
	}

	for _, c := range cases {
		var a Big
		t.NoError(json.Unmarshal([]byte(c.s), &a), c.s)
		t.Equal(c.expected, a.String(), c.s)
	}

	for _, s := range []string{`1.5`, `-3`, `"x"`, `true`, `{}`} {
		var a Big
		t.Error(json.Unmarshal([]byte(s), &a), s)
	}

	var body struct {
		Balance Big `json:"balance"`
	}
	t.NoError(json.Unmarshal([]byte(`{}`), &body))
	t.True(body.Balance.IsZero())
}

func (t *testBig) TestMarshalJSON() {
	b, err := json.Marshal(NewBig(42))
	t.NoError(err)
	t.Equal("42", string(b))
}

func (t *testBig) TestKaspa() {
	cases := []struct {
		a        Big
		expected string
	}{
		{a: ZeroBig, expected: "0.00000000"},
		{a: NewBig(1), expected: "0.00000001"},
		{a: NewBig(150000000), expected: "1.50000000"},
		{a: NewBig(SompiPerKaspa * 1000), expected: "1000.00000000"},
	}

	for _, c := range cases {
		t.Equal(c.expected, c.a.Kaspa())
	}
}

func (t *testBig) TestRLP() {
	a, err := ParseBig("123456789012345678901234567890")
	t.NoError(err)

	b, err := rlp.EncodeToBytes(a)
	t.NoError(err)

	var u Big
	t.NoError(rlp.DecodeBytes(b, &u))
	t.True(a.Equal(u))

	b, err = rlp.EncodeToBytes(ZeroBig)
	t.NoError(err)

	var z Big
	t.NoError(rlp.DecodeBytes(b, &z))
	t.True(z.IsZero())
}

func TestBig(t *testing.T) {
	suite.Run(t, new(testBig))
}
