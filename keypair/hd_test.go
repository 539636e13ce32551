package keypair

import (
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

const (
	bip32Seed        = "000102030405060708090a0b0c0d0e0f"
	bip32Master      = "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi"
	bip32MasterPub   = "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8"
	bip32Child0H     = "xprv9uHRZZhk6KAJC1avXpDAp4MDc3sQKNxDiPvvkX8Br5ngLNv1TxvUxt4cV1rGL5hj6KCesnDYUhd7oWgT11eZG7XnxHrnYeSvkzY7d2bhkJ7"
	bip32Child0HPub  = "xpub68Gmy5EdvgibQVfPdqkBBCHxA5htiqg55crXYuXoQRKfDBFA1WEjWgP6LHhwBZeNK1VTsfTFUHCdrfp1bgwQ9xv5ski8PX9rL2dZXvgGDnw"
	bip32Child0H1    = "xprv9wTYmMFdV23N2TdNG573QoEsfRrWKQgWeibmLntzniatZvR9BmLnvSxqu53Kw1UmYPxLgboyZQaXwTCg8MSY3H2EU4pWcQDnRnrVA1xe8fs"
	bip32Child0H1Pub = "xpub6ASuArnXKPbfEwhqN6e3mwBcDTgzisQN1wXN9BJcM47sSikHjJf3UFHKkNAWbWMiGj7Wf5uMash7SyYq527Hqck2AxYysAA7xmALppuCkwQ"
	bip32Child0H1Key = "3c6cb8d0f6a264c91ea8b5030fadaa8e538b020f0a387421a12de9319dc93368"

	kaspaMaster          = "kprv5y2qurMHCsXYqr9oKku3Ry75DcZgdraE3SFPPh1SKp4qKtr61qQeNypYTGztwUUiVauHWmjxaQXeUKHxj4QCuDG4ULpZHkvBoH9XX19ynXm"
	kaspaAccount         = "kpub2HhRhBugvQ8VCt1b1Y917suXibWtCAqEzZ2UYFRgzxGCDaQQ8MW2a6pB8imNqoMub5vAYWW75v8KEgnCsPN9rLnS2vSiQdt9PrThvSoeZF2"
	kaspaMultisigAccount = "kpub2KE7xaqYpuuziZqnw5mJrJJFQ8EXMicTKvNfhJbEvco9jW6n5H3bbre2QZrqV3csoJVsZrd2WZpmS12Vcz6Cy9EeJS1RRZunNEq3AR9QcYN"
)

type testHD struct {
	suite.Suite
}

func (t *testHD) master() ExtendedPrivateKey {
	seed, err := hex.DecodeString(bip32Seed)
	t.NoError(err)

	m, err := NewMasterKey(seed)
	t.NoError(err)

	return m
}

func (t *testHD) TestBIP32Vectors() {
	m, err := t.master().WithVersion(chaincfg.MainNetParams.HDPrivateKeyID)
	t.NoError(err)
	t.Equal(bip32Master, m.Serialize())
	t.Equal(uint8(0), m.Depth())

	mp, err := m.ExtendedPublicKey()
	t.NoError(err)
	t.Equal(bip32MasterPub, mp.String())

	c, err := m.Derive(HardenedKeyStart)
	t.NoError(err)
	t.Equal(bip32Child0H, c.Serialize())

	cp, err := c.ExtendedPublicKey()
	t.NoError(err)
	t.Equal(bip32Child0HPub, cp.String())

	c, err = c.Derive(1)
	t.NoError(err)
	t.Equal(bip32Child0H1, c.Serialize())
	t.Equal(uint8(2), c.Depth())

	p, err := c.PrivateKey()
	t.NoError(err)
	t.Equal(bip32Child0H1Key, hex.EncodeToString(p.Bytes()))

	// public derivation of the non-hardened child
	pc, err := cp.Derive(1)
	t.NoError(err)
	t.Equal(bip32Child0H1Pub, pc.String())

	pk, err := pc.PublicKey(ECDSAType)
	t.NoError(err)

	expected, err := Derive(p, ECDSAType)
	t.NoError(err)
	t.True(expected.Equal(pk))
}

func (t *testHD) TestParse() {
	m := t.master()
	t.Equal(kaspaMaster, m.Serialize())

	parsed, err := ParseExtendedPrivateKey(kaspaMaster)
	t.NoError(err)
	t.Equal(kaspaMaster, parsed.Serialize())

	x, err := ParseExtendedPrivateKey(bip32Master)
	t.NoError(err)

	a, err := m.PrivateKey()
	t.NoError(err)
	b, err := x.PrivateKey()
	t.NoError(err)
	t.True(a.Equal(b))

	_, err = ParseExtendedPrivateKey(bip32MasterPub)
	t.True(xerrors.Is(err, InvalidExtendedKeyError))

	_, err = ParseExtendedPublicKey(bip32Master)
	t.True(xerrors.Is(err, InvalidExtendedKeyError))

	_, err = ParseExtendedPrivateKey(kaspaMaster[:len(kaspaMaster)-1] + "n")
	t.True(xerrors.Is(err, InvalidExtendedKeyError))

	_, err = ParseExtendedPublicKey("kpub")
	t.True(xerrors.Is(err, InvalidExtendedKeyError))
}

func (t *testHD) TestReceiveChangeKeys() {
	g, err := NewPrivateKeyGenerator(t.master(), 0)
	t.NoError(err)

	cases := []struct {
		chain    uint32
		index    uint32
		expected string
		public   string
	}{
		{
			chain:    ReceiveChain,
			expected: "fa1045e90355d2779a998e3bd6a0c17da671b799775ae087637d2a05b4d64c8c",
			public:   "02842fa3dc582352fb1bfd13b599404be5737b54ec712704e7cc36b397d356b0a6",
		},
		{
			chain:    ReceiveChain,
			index:    1,
			expected: "1cee980f1b9c78823ec9c24d2c5a1ed71cd4706a4f363caeb8d3e1247b831130",
			public:   "03b2c13fa99394528354ce7c414cabf121b92ac92099fbf26aef1d771a01b6d3a1",
		},
		{
			chain:    ChangeChain,
			expected: "977a97b26592ec5e2119a220f10df76449af24f6f41a84be66625e945d653e65",
			public:   "03be4dd5d3fc5787812fab7de94d5e7fe9d0043bef31c70097446b621b6ac836ff",
		},
		{
			chain:    ChangeChain,
			index:    1,
			expected: "bd043f09078c3a2b6b5494476ab9aaeeaa03197f9c0d8c6db00f5cde9f437349",
			public:   "032fc516e4be40124b1147aa5fa8703d58b300f488623fb01c7f56cca6c969eed9",
		},
	}

	acc, err := g.AccountPublicKey()
	t.NoError(err)
	t.Equal(kaspaAccount, acc.String())

	parsed, err := ParseExtendedPublicKey(kaspaAccount)
	t.NoError(err)

	pg, err := NewPublicKeyGenerator(parsed)
	t.NoError(err)

	for i, c := range cases {
		p, err := g.Key(c.chain, c.index)
		t.NoError(err, "%d", i)
		t.Equal(c.expected, hex.EncodeToString(p.Bytes()), "%d", i)

		pk, err := pg.PublicKey(c.chain, c.index, ECDSAType)
		t.NoError(err, "%d", i)
		t.Equal(c.public, pk.String(), "%d", i)

		xonly, err := pg.PublicKey(c.chain, c.index, SchnorrType)
		t.NoError(err, "%d", i)
		t.Equal(c.public[2:], xonly.String(), "%d", i)
	}

	r, err := g.ReceiveKey(0)
	t.NoError(err)
	rp, err := pg.ReceivePublicKey(0, ECDSAType)
	t.NoError(err)
	t.Equal(cases[0].public, rp.String())
	t.Equal(cases[0].expected, hex.EncodeToString(r.Bytes()))

	ch, err := g.ChangeKey(0)
	t.NoError(err)
	cp, err := pg.ChangePublicKey(0, ECDSAType)
	t.NoError(err)
	t.Equal(cases[2].public, cp.String())
	t.Equal(cases[2].expected, hex.EncodeToString(ch.Bytes()))
}

func (t *testHD) TestMultisig() {
	g, err := NewMultisigPrivateKeyGenerator(t.master(), 0, 3)
	t.NoError(err)

	acc, err := g.AccountPublicKey()
	t.NoError(err)
	t.Equal(kaspaMultisigAccount, acc.String())

	pg, err := NewMultisigPublicKeyGenerator(acc, 3)
	t.NoError(err)

	expected := map[[2]uint32][2]string{
		{ReceiveChain, 0}: {
			"05b97b016bf5353d05d5e39e9092b969ce771f90b36c00223e9cab01998b8092",
			"0239c2428b0d96252184716118e747f2502f2598f72e52170748e3cfa4ad38eb82",
		},
		{ChangeChain, 1}: {
			"a33229f865de50c0285cc11bbfe5e2e81cd58350e7d08a8a1215e521b5d3be34",
			"03ca9aebf76e0553d110cd3339891474aab16871a481faa844cb9f3a5c092277f1",
		},
	}

	for k, v := range expected {
		p, err := g.Key(k[0], k[1])
		t.NoError(err)
		t.Equal(v[0], hex.EncodeToString(p.Bytes()))

		pk, err := pg.PublicKey(k[0], k[1], ECDSAType)
		t.NoError(err)
		t.Equal(v[1], pk.String())
	}

	single, err := NewPrivateKeyGenerator(t.master(), 0)
	t.NoError(err)

	a, err := single.ReceiveKey(0)
	t.NoError(err)
	b, err := g.ReceiveKey(0)
	t.NoError(err)
	t.False(a.Equal(b))
}

func (t *testHD) TestInvalidPath() {
	_, err := NewPrivateKeyGenerator(t.master(), HardenedKeyStart)
	t.True(xerrors.Is(err, InvalidDerivationPathError))

	_, err = NewMultisigPrivateKeyGenerator(t.master(), 0, HardenedKeyStart)
	t.True(xerrors.Is(err, InvalidDerivationPathError))

	g, err := NewPrivateKeyGenerator(t.master(), 1)
	t.NoError(err)

	_, err = g.ReceiveKey(HardenedKeyStart)
	t.True(xerrors.Is(err, InvalidDerivationPathError))

	_, err = g.Key(2, 0)
	t.True(xerrors.Is(err, InvalidDerivationPathError))

	acc, err := g.AccountPublicKey()
	t.NoError(err)

	_, err = acc.Derive(HardenedKeyStart)
	t.True(xerrors.Is(err, InvalidDerivationPathError))

	_, err = NewMultisigPublicKeyGenerator(acc, HardenedKeyStart+1)
	t.True(xerrors.Is(err, InvalidDerivationPathError))

	pg, err := NewPublicKeyGenerator(acc)
	t.NoError(err)

	_, err = pg.PublicKey(ReceiveChain, 0, Type{})
	t.True(xerrors.Is(err, UnknownKeyTypeError))

	_, err = pg.ChangePublicKey(HardenedKeyStart, ECDSAType)
	t.True(xerrors.Is(err, InvalidDerivationPathError))

	_, err = ExtendedPrivateKey{}.Derive(0)
	t.True(xerrors.Is(err, InvalidExtendedKeyError))

	_, err = NewMasterKey([]byte{0x01})
	t.True(xerrors.Is(err, InvalidExtendedKeyError))
}

func (t *testHD) TestRedacted() {
	m := t.master()

	g, err := NewPrivateKeyGenerator(m, 0)
	t.NoError(err)

	for _, s := range []string{
		fmt.Sprintf("%v", m),
		fmt.Sprintf("%+v", m),
		fmt.Sprintf("%#v", m),
		fmt.Sprintf("%s", m),
		m.String(),
		fmt.Sprintf("%v", g),
		fmt.Sprintf("%+v", g),
	} {
		t.False(strings.Contains(s, "kprv"), s)
		t.Contains(s, "redacted")
	}

	b, err := m.MarshalText()
	t.NoError(err)
	t.NotContains(string(b), "kprv")
}

func TestHD(t *testing.T) {
	suite.Run(t, new(testHD))
}
