package payroll_test

import (
	"context"
	"testing"
	"time"

	"github.com/Pachosan13/7granos-app-sub000/internal/payroll"
	payrollerrors "github.com/Pachosan13/7granos-app-sub000/internal/payroll/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRunLocker_AcquireAndRelease(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	locker := payroll.NewRunLocker(rdb, time.Minute)
	branchID := "b1"

	mock.ExpectSetNX("payroll:calc:"+branchID, "locked", time.Minute).SetVal(true)
	mock.ExpectDel("payroll:calc:" + branchID).SetVal(1)

	release, err := locker.Acquire(context.Background(), branchID)
	assert.NoError(t, err)
	release()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunLocker_HeldLockConflicts(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	locker := payroll.NewRunLocker(rdb, time.Minute)

	mock.ExpectSetNX("payroll:calc:b1", "locked", time.Minute).SetVal(false)

	_, err := locker.Acquire(context.Background(), "b1")
	assert.ErrorIs(t, err, payrollerrors.ErrCalculationInProgress)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunLocker_NilClientIsNoop(t *testing.T) {
	locker := payroll.NewRunLocker(nil, 0)

	release, err := locker.Acquire(context.Background(), "b1")
	assert.NoError(t, err)
	release()
}
