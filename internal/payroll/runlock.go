package payroll

import (
	"context"
	"time"

	payrollerrors "github.com/Pachosan13/7granos-app-sub000/internal/payroll/errors"

	"github.com/redis/go-redis/v9"
)

const runLockKeyPrefix = "payroll:calc:"

// RunLocker mencegah dua run perhitungan untuk branch yang sama berjalan
// bersamaan, supaya saldo contractual deduction tidak terpotong dua kali.
// TTL menjaga lock hilang sendiri kalau proses mati di tengah jalan.
type RunLocker struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRunLocker(rdb *redis.Client, ttl time.Duration) *RunLocker {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &RunLocker{rdb: rdb, ttl: ttl}
}

// Acquire mengembalikan fungsi release. Tanpa redis client (mis. unit test)
// lock menjadi no-op.
func (l *RunLocker) Acquire(ctx context.Context, branchID string) (func(), error) {
	if l == nil || l.rdb == nil {
		return func() {}, nil
	}

	key := runLockKeyPrefix + branchID
	acquired, err := l.rdb.SetNX(ctx, key, "locked", l.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, payrollerrors.ErrCalculationInProgress
	}

	return func() {
		_ = l.rdb.Del(context.Background(), key).Err()
	}, nil
}
