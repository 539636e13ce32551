package wallet

import "github.com/spikeekips/kaspaddr/common"

const (
	_ common.ErrorCode = iota
	NoBalanceClientErrorCode
	NoAddressBookErrorCode
)

var (
	NoBalanceClientError common.Error = common.NewError("wallet", NoBalanceClientErrorCode, "balance client not set")
	NoAddressBookError   common.Error = common.NewError("wallet", NoAddressBookErrorCode, "address book not set")
)
