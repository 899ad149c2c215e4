package usecase

import (
	"context"
	"time"

	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/infrastructure/logger"
	"isp_backoffice/internal/infrastructure/metrics"
	"isp_backoffice/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v4"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

const defaultBalanceRetries uint64 = 5

var errBalanceConflict = errors.New("billing balance changed concurrently")

// balanceAdjuster moves a client's billing balance with an optimistic
// read-compare-write, retrying when a concurrent writer wins.
type balanceAdjuster struct {
	repo    interfaces.IClientBillingRepository
	retries uint64
}

func newBalanceAdjuster(repo interfaces.IClientBillingRepository, retries uint64) balanceAdjuster {
	if retries == 0 {
		retries = defaultBalanceRetries
	}
	return balanceAdjuster{repo: repo, retries: retries}
}

func (a balanceAdjuster) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 10 * time.Millisecond
	b.MaxInterval = 250 * time.Millisecond
	return backoff.WithContext(backoff.WithMaxRetries(b, a.retries), ctx)
}

// adjust adds delta (negative for payments) to the balance of clientID and
// returns the billing as written.
func (a balanceAdjuster) adjust(ctx context.Context, clientID string, delta decimal.Decimal) (entities.ClientBilling, error) {
	var written entities.ClientBilling
	op := func() error {
		b, err := a.repo.GetByClientID(ctx, clientID)
		if err != nil {
			return err
		}
		if b.ID == "" {
			return backoff.Permanent(ErrClientBillingNotFound)
		}
		next := b.Balance.Add(delta)
		ok, err := a.repo.CompareAndSetBalance(ctx, b.ID, b.Balance, next)
		if err != nil {
			return err
		}
		if !ok {
			logger.L.Debugf("[billing][usecase] balance conflict client_id=%s expected=%s", clientID, b.Balance.StringFixed(2))
			return errBalanceConflict
		}
		b.Balance = next
		written = b
		return nil
	}
	if err := backoff.Retry(op, a.backOff(ctx)); err != nil {
		metrics.BalanceUpdateFailures.Inc()
		logger.L.Errorf("[billing][usecase] balance update failed client_id=%s delta=%s err=%v", clientID, delta.StringFixed(2), err)
		return entities.ClientBilling{}, errors.Wrapf(err, "adjust balance client_id=%s", clientID)
	}
	return written, nil
}
