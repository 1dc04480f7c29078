package payroll

import (
	"testing"

	"github.com/Pachosan13/7granos-app-sub000/internal/branch"
	"github.com/Pachosan13/7granos-app-sub000/internal/rules"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testRuleSet() *rules.RuleSet {
	return &rules.RuleSet{
		Brackets: []rules.IncomeTaxBracket{
			{Min: dec("0"), Max: dec("13000"), Rate: dec("0"), FixedAmount: dec("0")},
			{Min: dec("13000"), Max: dec("50000"), Rate: dec("0.15"), FixedAmount: dec("0")},
			{Min: dec("50000"), Max: dec("999999999"), Rate: dec("0.25"), FixedAmount: dec("0")},
		},
		Pension:   rules.SocialInsuranceRate{Kind: rules.InsurancePension, EmployeePct: dec("0.0725"), EmployerPct: dec("0.1225")},
		Education: rules.SocialInsuranceRate{Kind: rules.InsuranceEducation, EmployeePct: dec("0.0125"), EmployerPct: dec("0.015")},
		Overtime: map[string]decimal.Decimal{
			"DAYTIME":         dec("1.25"),
			"NIGHT":           dec("1.5"),
			"REST_HOLIDAY":    dec("2"),
			"PROLONGED_NIGHT": dec("1.75"),
		},
		BranchConfig: branch.Config{
			IncludeTipsInSocialSecurity: false,
			IncludeTipsInIncomeTax:      true,
		},
	}
}

func TestComputeLegalDeductions_BaseSalaryOnly(t *testing.T) {
	rs := testRuleSet()
	e := &earnings{Regular: dec("500"), Detail: DetailMap{}}

	// 500 per quincena = 12000 anual, masih di bracket tarif nol.
	legal := computeLegalDeductions(e, rs, 24)

	assert.True(t, legal.Pension.Equal(dec("36.25")), "pension: %s", legal.Pension)
	assert.True(t, legal.Education.Equal(dec("6.25")), "education: %s", legal.Education)
	assert.True(t, legal.IncomeTax.IsZero(), "income tax: %s", legal.IncomeTax)
	assert.True(t, legal.Total().Equal(dec("42.50")))
}

func TestComputeIncomeTax_ProgressiveBrackets(t *testing.T) {
	rs := testRuleSet()

	// 5000 bulanan = 60000 anual: 13000 bebas, 37000 kena 15%, 10000 kena 25%.
	tax := computeIncomeTax(dec("5000"), rs.Brackets, 12)
	expected := dec("37000").Mul(dec("0.15")).Add(dec("10000").Mul(dec("0.25"))).Div(dec("12")).Round(2)
	assert.True(t, tax.Equal(expected), "got %s want %s", tax, expected)
}

func TestComputeIncomeTax_FixedAmountOncePerBracket(t *testing.T) {
	brackets := []rules.IncomeTaxBracket{
		{Min: dec("0"), Max: dec("20000"), Rate: dec("0.10"), FixedAmount: dec("100")},
	}

	// 1000 per quincena = 24000 anual, taxable dibatasi max bracket.
	tax := computeIncomeTax(dec("1000"), brackets, 24)
	expected := dec("20000").Mul(dec("0.10")).Add(dec("100")).Div(dec("24")).Round(2)
	assert.True(t, tax.Equal(expected), "got %s want %s", tax, expected)
}

func TestComputeIncomeTax_MonotonicInIncome(t *testing.T) {
	rs := testRuleSet()

	prev := decimal.Zero
	for base := 100; base <= 10000; base += 100 {
		tax := computeIncomeTax(decimal.NewFromInt(int64(base)), rs.Brackets, 24)
		assert.True(t, tax.GreaterThanOrEqual(prev),
			"tax decreased at base %d: %s < %s", base, tax, prev)
		prev = tax
	}
}

func TestComputeLegalDeductions_TipsToggles(t *testing.T) {
	e := &earnings{Regular: dec("500"), Tips: dec("200"), Detail: DetailMap{}}

	t.Run("tips excluded from social security by default", func(t *testing.T) {
		rs := testRuleSet()
		legal := computeLegalDeductions(e, rs, 24)
		assert.True(t, legal.Pension.Equal(dec("500").Mul(dec("0.0725")).Round(2)))
	})

	t.Run("tips included in social security", func(t *testing.T) {
		rs := testRuleSet()
		rs.BranchConfig.IncludeTipsInSocialSecurity = true
		legal := computeLegalDeductions(e, rs, 24)
		assert.True(t, legal.Pension.Equal(dec("700").Mul(dec("0.0725")).Round(2)))
	})

	t.Run("tips excluded from income tax", func(t *testing.T) {
		rs := testRuleSet()
		rs.BranchConfig.IncludeTipsInIncomeTax = false
		withTips := computeLegalDeductions(e, testRuleSet(), 24)
		withoutTips := computeLegalDeductions(e, rs, 24)
		assert.True(t, withoutTips.IncomeTax.LessThanOrEqual(withTips.IncomeTax))
	})
}

func TestComputeLegalDeductions_ThirteenthExcludedFromTaxBase(t *testing.T) {
	rs := testRuleSet()
	base := &earnings{Regular: dec("3000"), Detail: DetailMap{}}
	withThirteenth := &earnings{Regular: dec("3000"), Thirteenth: dec("1500"), Detail: DetailMap{}}

	a := computeLegalDeductions(base, rs, 12)
	b := computeLegalDeductions(withThirteenth, rs, 12)

	// Bonus bulan ketiga belas masuk basis seguro tapi tidak basis pajak.
	assert.True(t, b.IncomeTax.Equal(a.IncomeTax))
	assert.True(t, b.Pension.GreaterThan(a.Pension))
}
