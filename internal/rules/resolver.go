package rules

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Pachosan13/7granos-app-sub000/internal/branch"
	"github.com/Pachosan13/7granos-app-sub000/internal/shared/apperror"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

var (
	ErrMissingTaxBrackets = apperror.New(
		apperror.CodeMissingRates,
		"no income tax brackets valid for the period",
		http.StatusUnprocessableEntity,
	)
	ErrMissingInsuranceRate = apperror.New(
		apperror.CodeMissingRates,
		"missing social insurance rate for the period",
		http.StatusUnprocessableEntity,
	)
	ErrMissingOvertimeRules = apperror.New(
		apperror.CodeMissingRates,
		"no overtime multipliers valid for the period",
		http.StatusUnprocessableEntity,
	)
)

// RuleSet adalah snapshot lengkap tarif yang berlaku untuk satu periode.
type RuleSet struct {
	Brackets     []IncomeTaxBracket
	Pension      SocialInsuranceRate
	Education    SocialInsuranceRate
	Overtime     map[string]decimal.Decimal // OvertimeKind -> multiplier
	BranchConfig branch.Config
}

//go:generate mockgen -source=resolver.go -destination=mock/resolver_mock.go -package=mock
type Resolver interface {
	Resolve(ctx context.Context, branchID string, from, to time.Time) (*RuleSet, error)
}

type resolver struct {
	repo       Repository
	branchRepo branch.Repository
	sf         *singleflight.Group
}

func NewResolver(repo Repository, branchRepo branch.Repository) Resolver {
	return &resolver{
		repo:       repo,
		branchRepo: branchRepo,
		sf:         &singleflight.Group{},
	}
}

// Resolve gagal total bila ada tabel tarif wajib yang kosong: payroll tidak
// boleh dihitung tanpa tarif resmi. Branch config bukan tarif wajib dan
// dibuat otomatis dengan default aman bila belum ada.
func (r *resolver) Resolve(ctx context.Context, branchID string, from, to time.Time) (*RuleSet, error) {
	key := fmt.Sprintf("%s:%s:%s", branchID, from.Format("2006-01-02"), to.Format("2006-01-02"))
	v, err, _ := r.sf.Do(key, func() (any, error) {
		return r.resolve(ctx, branchID, from, to)
	})
	if err != nil {
		return nil, err
	}
	return v.(*RuleSet), nil
}

func (r *resolver) resolve(ctx context.Context, branchID string, from, to time.Time) (*RuleSet, error) {
	brackets, err := r.repo.FindTaxBrackets(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if len(brackets) == 0 {
		return nil, ErrMissingTaxBrackets
	}

	pension, err := r.findRate(ctx, InsurancePension, from, to)
	if err != nil {
		return nil, err
	}
	education, err := r.findRate(ctx, InsuranceEducation, from, to)
	if err != nil {
		return nil, err
	}

	overtimeRules, err := r.repo.FindOvertimeRules(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if len(overtimeRules) == 0 {
		return nil, ErrMissingOvertimeRules
	}

	overtime := make(map[string]decimal.Decimal, len(overtimeRules))
	for _, rule := range overtimeRules {
		overtime[rule.Kind] = rule.Multiplier
	}

	cfg, err := r.branchRepo.GetConfig(ctx, branchID)
	if err != nil {
		return nil, err
	}

	return &RuleSet{
		Brackets:     brackets,
		Pension:      *pension,
		Education:    *education,
		Overtime:     overtime,
		BranchConfig: *cfg,
	}, nil
}

func (r *resolver) findRate(ctx context.Context, kind string, from, to time.Time) (*SocialInsuranceRate, error) {
	rate, err := r.repo.FindInsuranceRate(ctx, kind, from, to)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(
				fmt.Errorf("kind %s", kind),
				apperror.CodeMissingRates,
				ErrMissingInsuranceRate.Message,
				http.StatusUnprocessableEntity,
			)
		}
		return nil, err
	}
	return rate, nil
}
