package common

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

type testVersion struct {
	suite.Suite
}

func (t *testVersion) TestEncodeDecode() {
	v, err := NewVersion("0.1.2-proto+findme")
	t.NoError(err)

	// encode
	b, err := v.MarshalBinary()
	t.NoError(err)
	t.NotEmpty(b)

	// decode
	var nv Version
	err = nv.UnmarshalBinary(b)
	t.NoError(err)

	t.True(v.Equal(nv))
}

func (t *testVersion) TestInvalid() {
	_, err := NewVersion("not-a-version")
	t.True(xerrors.Is(err, InvalidVersionError))
}

func (t *testVersion) TestCompatible() {
	a := MustParseVersion("1.2.0")

	t.True(a.IsCompatible(MustParseVersion("1.0.9")))
	t.False(a.IsCompatible(MustParseVersion("2.0.0")))
	t.False(a.IsCompatible(MustParseVersion("0.2.0")))
}

func TestVersion(t *testing.T) {
	suite.Run(t, new(testVersion))
}
