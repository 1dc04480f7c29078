package paycode_test

import (
	"context"
	"testing"

	"github.com/Pachosan13/7granos-app-sub000/internal/paycode"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePayCodeRepository struct {
	createFn     func(ctx context.Context, code *paycode.PayCode) error
	findByCodeFn func(ctx context.Context, code string) (*paycode.PayCode, error)
	catalogFn    func(ctx context.Context) (map[string]paycode.PayCode, error)
}

func (f *fakePayCodeRepository) Create(ctx context.Context, code *paycode.PayCode) error {
	if f.createFn != nil {
		return f.createFn(ctx, code)
	}
	return nil
}

func (f *fakePayCodeRepository) FindAll(ctx context.Context) ([]paycode.PayCode, error) {
	return nil, nil
}

func (f *fakePayCodeRepository) FindByCode(ctx context.Context, code string) (*paycode.PayCode, error) {
	if f.findByCodeFn != nil {
		return f.findByCodeFn(ctx, code)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayCodeRepository) Update(ctx context.Context, code *paycode.PayCode) error { return nil }
func (f *fakePayCodeRepository) Delete(ctx context.Context, code string) error           { return nil }

func (f *fakePayCodeRepository) Catalog(ctx context.Context) (map[string]paycode.PayCode, error) {
	if f.catalogFn != nil {
		return f.catalogFn(ctx)
	}
	return nil, nil
}

func TestPayCodeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("uppercases code", func(t *testing.T) {
		var created *paycode.PayCode
		repo := &fakePayCodeRepository{
			createFn: func(ctx context.Context, code *paycode.PayCode) error {
				code.ID = uuid.New()
				created = code
				return nil
			},
		}
		svc := paycode.NewService(repo)

		resp, err := svc.Create(ctx, paycode.CreatePayCodeRequest{
			Code:     "base_sal",
			Name:     "Base salary",
			Class:    paycode.ClassEarning,
			Category: paycode.CategoryRegular,
		})

		assert.NoError(t, err)
		assert.Equal(t, "BASE_SAL", resp.Code)
		assert.Equal(t, paycode.OvertimeNone, created.OvertimeKind)
	})

	t.Run("overtime category requires a kind", func(t *testing.T) {
		svc := paycode.NewService(&fakePayCodeRepository{})

		_, err := svc.Create(ctx, paycode.CreatePayCodeRequest{
			Code:     "OT_DAY",
			Name:     "Daytime overtime",
			Class:    paycode.ClassEarning,
			Category: paycode.CategoryOvertime,
		})

		assert.ErrorIs(t, err, paycode.ErrOvertimeKindRequired)
	})
}

func TestPayCodeService_Update_NotFound(t *testing.T) {
	svc := paycode.NewService(&fakePayCodeRepository{})

	_, err := svc.Update(context.Background(), "NOPE", paycode.UpdatePayCodeRequest{Name: "x"})

	assert.ErrorIs(t, err, paycode.ErrPayCodeNotFound)
}
