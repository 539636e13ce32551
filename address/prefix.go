package address

import "strings"

const (
	MainnetPrefix string = "kaspa"
	TestnetPrefix string = "kaspatest"
	SimnetPrefix  string = "kaspasim"
	DevnetPrefix  string = "kaspadev"
)

var networkPrefixes = map[string]string{
	"mainnet":     MainnetPrefix,
	"testnet":     TestnetPrefix,
	"simnet":      SimnetPrefix,
	"devnet":      DevnetPrefix,
	MainnetPrefix: MainnetPrefix,
	TestnetPrefix: TestnetPrefix,
	SimnetPrefix:  SimnetPrefix,
	DevnetPrefix:  DevnetPrefix,
}

// PrefixForNetwork accepts either the network name, like "testnet", or the
// prefix itself.
func PrefixForNetwork(name string) (string, error) {
	p, found := networkPrefixes[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		return "", UnknownNetworkError.AppendMessage("network=%q", name)
	}

	return p, nil
}

// IsNetworkPrefix checks p is one of the known network prefixes.
func IsNetworkPrefix(p string) bool {
	switch strings.ToLower(p) {
	case MainnetPrefix, TestnetPrefix, SimnetPrefix, DevnetPrefix:
		return true
	default:
		return false
	}
}
