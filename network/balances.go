package network

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/spikeekips/kaspaddr/address"
	"github.com/spikeekips/kaspaddr/big"
)

const DefaultConcurrency int = 8

// Balances looks up every address concurrently, at most limit at once. The
// result keeps the order of addresses. The first failure cancels the
// remaining lookups and is returned.
func Balances(ctx context.Context, client BalanceClient, addresses []address.Address, limit int) ([]Balance, error) {
	if limit < 1 {
		limit = DefaultConcurrency
	}

	results := make([]Balance, len(addresses))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	for i := range addresses {
		i := i
		eg.Go(func() error {
			b, err := client.Balance(ctx, addresses[i])
			if err != nil {
				return err
			}

			results[i] = b

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func Total(balances []Balance) big.Big {
	amounts := make([]big.Big, len(balances))
	for i := range balances {
		amounts[i] = balances[i].Amount
	}

	return big.Sum(amounts...)
}
