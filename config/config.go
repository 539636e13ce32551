package config

import (
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/inconshreveable/log15"
	"gopkg.in/yaml.v2"

	"github.com/spikeekips/kaspaddr/address"
	"github.com/spikeekips/kaspaddr/bech32"
	"github.com/spikeekips/kaspaddr/common"
	"github.com/spikeekips/kaspaddr/encode"
	"github.com/spikeekips/kaspaddr/keypair"
	"github.com/spikeekips/kaspaddr/network"
)

const (
	DefaultNetwork    string = "testnet"
	DefaultBalanceURL string = "https://api-tn11.kaspa.org"
)

var checksums = map[string]bech32.Checksum{
	bech32.KaspaChecksum.Name():   bech32.KaspaChecksum,
	bech32.Bech32Checksum.Name():  bech32.Bech32Checksum,
	bech32.Bech32mChecksum.Name(): bech32.Bech32mChecksum,
}

type Config struct {
	Network string        `yaml:"network"`
	Prefix  string        `yaml:"prefix"`
	Address AddressConfig `yaml:"address"`
	Balance BalanceConfig `yaml:"balance"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

type AddressConfig struct {
	Checksum  string `yaml:"checksum"`
	Separator string `yaml:"separator"`
	KeyType   string `yaml:"key-type"`
}

type BalanceConfig struct {
	URL         string        `yaml:"url"`
	Path        string        `yaml:"path"`
	Timeout     time.Duration `yaml:"timeout"`
	Concurrency int           `yaml:"concurrency"`
}

// StorageConfig.Path is the address book directory; empty Path keeps the
// address book in memory.
type StorageConfig struct {
	Path    string `yaml:"path"`
	Encoder string `yaml:"encoder"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

func Default() Config {
	return Config{
		Network: DefaultNetwork,
		Address: AddressConfig{
			Checksum: bech32.KaspaChecksum.Name(),
			KeyType:  keypair.ECDSAType.String(),
		},
		Balance: BalanceConfig{
			URL:         DefaultBalanceURL,
			Path:        network.DefaultBalancePath,
			Timeout:     network.DefaultTimeout,
			Concurrency: network.DefaultConcurrency,
		},
		Storage: StorageConfig{
			Encoder: encode.RLPEncoderType.String(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "terminal",
		},
	}
}

// New reads yaml over the default config.
func New(b []byte) (Config, error) {
	c := Default()
	if err := yaml.UnmarshalStrict(b, &c); err != nil {
		return Config{}, InvalidConfigError.Wrap(err)
	}

	c = c.fill()

	if err := c.IsValid(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func Load(f string) (Config, error) {
	b, err := os.ReadFile(f)
	if err != nil {
		return Config{}, InvalidConfigError.Wrap(err)
	}

	log.Debug("config loaded", "file", f)

	return New(b)
}

func (c Config) fill() Config {
	if len(c.Prefix) < 1 {
		if p, err := address.PrefixForNetwork(c.Network); err == nil {
			c.Prefix = p
		}
	}

	if len(c.Address.Separator) < 1 {
		switch c.Address.Checksum {
		case bech32.KaspaChecksum.Name():
			c.Address.Separator = string(bech32.KaspaScheme.Separator())
		default:
			c.Address.Separator = string(bech32.Bech32Scheme.Separator())
		}
	}

	return c
}

func (c Config) IsValid() error {
	if len(c.Network) > 0 {
		if _, err := address.PrefixForNetwork(c.Network); err != nil {
			return InvalidConfigError.Wrap(err)
		}
	}

	scheme, err := c.Scheme()
	if err != nil {
		return err
	}

	if err := scheme.CheckPrefix(c.Prefix); err != nil {
		return InvalidConfigError.Wrap(err)
	} else if !address.IsNetworkPrefix(c.Prefix) {
		return InvalidConfigError.AppendMessage("unknown prefix; prefix=%q", c.Prefix)
	}

	if _, err := c.KeyType(); err != nil {
		return err
	}

	if err := c.Balance.IsValid(); err != nil {
		return err
	}

	if _, err := c.Encoder(); err != nil {
		return err
	}

	if _, err := c.Log.Lvl(); err != nil {
		return err
	}

	switch c.Log.Format {
	case "", "terminal", "json":
	default:
		return InvalidConfigError.AppendMessage("unknown log format; %q", c.Log.Format)
	}

	return nil
}

func (c Config) Scheme() (bech32.Scheme, error) {
	checksum, found := checksums[strings.ToLower(c.Address.Checksum)]
	if !found {
		return bech32.Scheme{}, InvalidConfigError.AppendMessage("unknown checksum; %q", c.Address.Checksum)
	}

	if len(c.Address.Separator) != 1 {
		return bech32.Scheme{}, InvalidConfigError.AppendMessage(
			"separator should be one character; %q", c.Address.Separator,
		)
	}

	scheme, err := bech32.NewScheme(checksum.Name(), c.Address.Separator[0], checksum)
	if err != nil {
		return bech32.Scheme{}, InvalidConfigError.Wrap(err)
	}

	return scheme, nil
}

func (c Config) Codec() (address.Codec, error) {
	scheme, err := c.Scheme()
	if err != nil {
		return address.Codec{}, err
	}

	return address.NewCodec(scheme)
}

func (c Config) KeyType() (keypair.Type, error) {
	t, err := keypair.ParseType(c.Address.KeyType)
	if err != nil {
		return keypair.Type{}, InvalidConfigError.Wrap(err)
	}

	return t, nil
}

func (c Config) Encoder() (encode.EncoderType, error) {
	if len(c.Storage.Encoder) < 1 {
		return encode.RLPEncoderType, nil
	}

	t, err := encode.ParseEncoderType(c.Storage.Encoder)
	if err != nil {
		return encode.EncoderType{}, InvalidConfigError.Wrap(err)
	}

	return t, nil
}

func (c Config) String() string {
	b, _ := yaml.Marshal(c)

	return string(b)
}

// IsValid allows empty URL, which disables the balance lookup.
func (bc BalanceConfig) IsValid() error {
	if len(bc.URL) > 0 {
		u, err := url.Parse(bc.URL)
		if err != nil {
			return InvalidConfigError.Wrap(err)
		} else if u.Scheme != "http" && u.Scheme != "https" {
			return InvalidConfigError.AppendMessage("balance url should be http or https; %q", bc.URL)
		}
	}

	if len(bc.Path) > 0 && !strings.Contains(bc.Path, network.AddressPlaceholder) {
		return InvalidConfigError.AppendMessage("balance path has no %s; %q", network.AddressPlaceholder, bc.Path)
	}

	if bc.Timeout < 0 {
		return InvalidConfigError.AppendMessage("negative balance timeout; %v", bc.Timeout)
	}

	if bc.Concurrency < 0 {
		return InvalidConfigError.AppendMessage("negative balance concurrency; %d", bc.Concurrency)
	}

	return nil
}

func (bc BalanceConfig) Client() (*network.HTTPBalanceClient, error) {
	return network.NewHTTPBalanceClient(bc.URL, bc.Path, bc.Timeout)
}

func (lc LogConfig) Lvl() (log15.Lvl, error) {
	if len(lc.Level) < 1 {
		return log15.LvlInfo, nil
	}

	lvl, err := log15.LvlFromString(lc.Level)
	if err != nil {
		return 0, InvalidConfigError.Wrap(err)
	}

	return lvl, nil
}

// Apply sets the handler of the given loggers.
func (lc LogConfig) Apply(loggers ...log15.Logger) error {
	lvl, err := lc.Lvl()
	if err != nil {
		return err
	}

	handler, err := common.LogHandler(common.LogFormatter(lc.Format), lc.File)
	if err != nil {
		return InvalidConfigError.Wrap(err)
	}

	for _, l := range loggers {
		common.SetLogger(l, lvl, handler)
	}

	return nil
}
