package rules_test

import (
	"context"
	"testing"
	"time"

	"github.com/Pachosan13/7granos-app-sub000/internal/branch"
	"github.com/Pachosan13/7granos-app-sub000/internal/rules"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fakeRulesRepository struct {
	findTaxBracketsFn   func(ctx context.Context, from, to time.Time) ([]rules.IncomeTaxBracket, error)
	findInsuranceRateFn func(ctx context.Context, kind string, from, to time.Time) (*rules.SocialInsuranceRate, error)
	findOvertimeRulesFn func(ctx context.Context, from, to time.Time) ([]rules.OvertimeRule, error)
}

func (f *fakeRulesRepository) FindTaxBrackets(ctx context.Context, from, to time.Time) ([]rules.IncomeTaxBracket, error) {
	if f.findTaxBracketsFn != nil {
		return f.findTaxBracketsFn(ctx, from, to)
	}
	return []rules.IncomeTaxBracket{
		{Min: dec("0"), Max: dec("13000"), Rate: dec("0")},
	}, nil
}

func (f *fakeRulesRepository) FindInsuranceRate(ctx context.Context, kind string, from, to time.Time) (*rules.SocialInsuranceRate, error) {
	if f.findInsuranceRateFn != nil {
		return f.findInsuranceRateFn(ctx, kind, from, to)
	}
	return &rules.SocialInsuranceRate{Kind: kind, EmployeePct: dec("0.0725"), EmployerPct: dec("0.1225")}, nil
}

func (f *fakeRulesRepository) FindOvertimeRules(ctx context.Context, from, to time.Time) ([]rules.OvertimeRule, error) {
	if f.findOvertimeRulesFn != nil {
		return f.findOvertimeRulesFn(ctx, from, to)
	}
	return []rules.OvertimeRule{
		{Kind: "DAYTIME", Multiplier: dec("1.25")},
		{Kind: "NIGHT", Multiplier: dec("1.5")},
	}, nil
}

type fakeBranchRepository struct {
	getConfigFn func(ctx context.Context, branchID string) (*branch.Config, error)
}

func (f *fakeBranchRepository) FindByID(ctx context.Context, id string) (*branch.Branch, error) {
	return nil, nil
}

func (f *fakeBranchRepository) GetConfig(ctx context.Context, branchID string) (*branch.Config, error) {
	if f.getConfigFn != nil {
		return f.getConfigFn(ctx, branchID)
	}
	return &branch.Config{
		BranchID:                    uuid.MustParse(branchID),
		IncludeTipsInSocialSecurity: false,
		IncludeTipsInIncomeTax:      true,
	}, nil
}

func (f *fakeBranchRepository) SaveConfig(ctx context.Context, cfg *branch.Config) error {
	return nil
}

func window() (time.Time, time.Time) {
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
}

func TestResolver_AssemblesRuleSet(t *testing.T) {
	resolver := rules.NewResolver(&fakeRulesRepository{}, &fakeBranchRepository{})
	from, to := window()

	rs, err := resolver.Resolve(context.Background(), uuid.New().String(), from, to)

	assert.NoError(t, err)
	assert.Len(t, rs.Brackets, 1)
	assert.Equal(t, rules.InsurancePension, rs.Pension.Kind)
	assert.Equal(t, rules.InsuranceEducation, rs.Education.Kind)
	assert.True(t, rs.Overtime["NIGHT"].Equal(dec("1.5")))
	assert.True(t, rs.BranchConfig.IncludeTipsInIncomeTax)
}

func TestResolver_MissingBracketsIsFatal(t *testing.T) {
	repo := &fakeRulesRepository{
		findTaxBracketsFn: func(ctx context.Context, from, to time.Time) ([]rules.IncomeTaxBracket, error) {
			return nil, nil
		},
	}
	resolver := rules.NewResolver(repo, &fakeBranchRepository{})
	from, to := window()

	_, err := resolver.Resolve(context.Background(), uuid.New().String(), from, to)

	assert.ErrorIs(t, err, rules.ErrMissingTaxBrackets)
}

func TestResolver_MissingOvertimeRulesIsFatal(t *testing.T) {
	repo := &fakeRulesRepository{
		findOvertimeRulesFn: func(ctx context.Context, from, to time.Time) ([]rules.OvertimeRule, error) {
			return nil, nil
		},
	}
	resolver := rules.NewResolver(repo, &fakeBranchRepository{})
	from, to := window()

	_, err := resolver.Resolve(context.Background(), uuid.New().String(), from, to)

	assert.ErrorIs(t, err, rules.ErrMissingOvertimeRules)
}
