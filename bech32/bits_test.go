package bech32

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

type testConvertBits struct {
	suite.Suite
}

func (t *testConvertBits) TestRoundtrip() {
	for _, l := range []int{0, 1, 5, 20, 32, 33, 34, 40} {
		data := bytes.Repeat([]byte{0xa5}, l)

		groups, err := ConvertBits(data, 8, 5, true)
		t.NoError(err)
		t.Equal((l*8+4)/5, len(groups))

		for _, g := range groups {
			t.True(g < 32)
		}

		back, err := ConvertBits(groups, 5, 8, false)
		t.NoError(err, "length=%d", l)
		t.Equal(data, back)
	}
}

func (t *testConvertBits) TestKnownGroups() {
	groups, err := ConvertBits([]byte{0xff}, 8, 5, true)
	t.NoError(err)
	t.Equal([]byte{31, 28}, groups)

	groups, err = ConvertBits([]byte{0x00, 0x01}, 8, 5, true)
	t.NoError(err)
	t.Equal([]byte{0, 0, 0, 16}, groups)
}

func (t *testConvertBits) TestPayloadLengths() {
	ecdsa, err := ConvertBits(make([]byte, 34), 8, 5, true)
	t.NoError(err)
	t.Equal(55, len(ecdsa))

	schnorr, err := ConvertBits(make([]byte, 33), 8, 5, true)
	t.NoError(err)
	t.Equal(53, len(schnorr))
}

func (t *testConvertBits) TestDoesNotModifyInput() {
	data := []byte{1, 2, 3}
	_, err := ConvertBits(data, 8, 5, true)
	t.NoError(err)
	t.Equal([]byte{1, 2, 3}, data)
}

func (t *testConvertBits) TestInvalidInputWidth() {
	_, err := ConvertBits([]byte{1, 32, 3}, 5, 8, false)
	t.True(xerrors.Is(err, InvalidInputWidthError))
	t.Contains(err.Error(), "index 1")

	_, err = ConvertBits([]byte{1}, 0, 8, true)
	t.True(xerrors.Is(err, InvalidInputWidthError))

	_, err = ConvertBits([]byte{1}, 8, 9, true)
	t.True(xerrors.Is(err, InvalidInputWidthError))
}

func (t *testConvertBits) TestNonZeroPadding() {
	// 0xff -> 31, 28; 28 carries 2 padding bits which are zero
	_, err := ConvertBits([]byte{31, 28}, 5, 8, false)
	t.NoError(err)

	_, err = ConvertBits([]byte{31, 29}, 5, 8, false)
	t.True(xerrors.Is(err, InvalidPaddingError))
}

func (t *testConvertBits) TestTooManyLeftBits() {
	// 3 groups are 15 bits; 7 bits are left, which is more than a group
	_, err := ConvertBits([]byte{0, 0, 0}, 5, 8, false)
	t.True(xerrors.Is(err, InvalidPaddingError))

	converted, err := ConvertBits([]byte{0, 0, 0}, 5, 8, true)
	t.NoError(err)
	t.Equal([]byte{0, 0}, converted)
}

func TestConvertBits(t *testing.T) {
	suite.Run(t, new(testConvertBits))
}
