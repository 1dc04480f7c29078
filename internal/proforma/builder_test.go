package proforma

import (
	"testing"
	"time"

	"github.com/Pachosan13/7granos-app-sub000/internal/payroll"
	"github.com/Pachosan13/7granos-app-sub000/internal/period"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testChart() map[string]AccountMapping {
	mappings := []AccountMapping{
		{Code: "BASE_SAL", Account: "6100", AccountName: "Salaries expense", Side: SideDebit},
		{Code: "OT_DAY", Account: "6110", AccountName: "Overtime expense", Side: SideDebit},
		{Code: "SSO", Account: "2310", AccountName: "Social security payable", Side: SideCredit},
		{Code: "SEDU", Account: "2311", AccountName: "Education insurance payable", Side: SideCredit},
		{Code: "ISR", Account: "2320", AccountName: "Income tax payable", Side: SideCredit},
		{Code: "DED_LOAN", Account: "1350", AccountName: "Employee loans", Side: SideCredit},
		{Code: "DED_OTHER", Account: "2390", AccountName: "Other withholdings", Side: SideCredit},
		{Code: CodeNetPayable, Account: "2300", AccountName: "Wages payable", Side: SideCredit},
		{Code: CodeEmployerPension, Account: "6200", AccountName: "Employer social security", Side: SideDebit},
		{Code: CodeEmployerPensionL, Account: "2312", AccountName: "Employer social security payable", Side: SideCredit},
		{Code: CodeEmployerEducation, Account: "6201", AccountName: "Employer education insurance", Side: SideDebit},
		{Code: CodeEmployerEducationL, Account: "2313", AccountName: "Employer education insurance payable", Side: SideCredit},
	}
	chart := make(map[string]AccountMapping, len(mappings))
	for _, m := range mappings {
		chart[m.Code] = m
	}
	return chart
}

func testPeriod() *period.Period {
	return &period.Period{
		ID:       uuid.New(),
		BranchID: uuid.New(),
		Month:    3,
		Year:     2026,
	}
}

func TestBuildProforma_Balanced(t *testing.T) {
	totals := &payroll.PeriodTotals{
		PeriodID: uuid.New(),
		Detail: payroll.DetailMap{
			"BASE_SAL": dec("1000.00"),
			"OT_DAY":   dec("80.00"),
			"SSO":      dec("78.30"),
			"SEDU":     dec("13.50"),
			"ISR":      dec("25.00"),
			"DED_LOAN": dec("30.00"),
		},
		Net:               dec("933.20"),
		EmployerPension:   dec("132.30"),
		EmployerEducation: dec("16.20"),
	}

	artifact, err := buildProforma(testPeriod(), totals, testChart(), 7, time.Now())

	assert.NoError(t, err)
	assert.Equal(t, int64(7), artifact.Sequence)
	assert.True(t, artifact.TotalDebit.Equal(artifact.TotalCredit),
		"debit %s != credit %s", artifact.TotalDebit, artifact.TotalCredit)

	// earnings debit, potongan + hutang gaji credit, employer berpasangan
	assert.True(t, artifact.TotalDebit.Equal(dec("1080.00").Add(dec("132.30")).Add(dec("16.20"))))

	for _, l := range artifact.Lines {
		assert.NotEqual(t, CodeRounding, l.Code, "balanced input needs no rounding line")
	}
}

func TestBuildProforma_RoundingLineAbsorbsResidual(t *testing.T) {
	totals := &payroll.PeriodTotals{
		PeriodID: uuid.New(),
		Detail: payroll.DetailMap{
			"BASE_SAL": dec("100.00"),
			"SSO":      dec("7.25"),
		},
		Net: dec("92.74"), // satu sen hilang oleh pembulatan
	}

	artifact, err := buildProforma(testPeriod(), totals, testChart(), 1, time.Now())

	assert.NoError(t, err)
	assert.True(t, artifact.TotalDebit.Equal(artifact.TotalCredit))

	var rounding *Line
	for i := range artifact.Lines {
		if artifact.Lines[i].Code == CodeRounding {
			rounding = &artifact.Lines[i]
		}
	}
	assert.NotNil(t, rounding)
	assert.True(t, rounding.Credit.Equal(dec("0.01")))
}

func TestBuildProforma_EmployerPairsMatch(t *testing.T) {
	totals := &payroll.PeriodTotals{
		PeriodID:        uuid.New(),
		Detail:          payroll.DetailMap{"BASE_SAL": dec("100.00")},
		Net:             dec("100.00"),
		EmployerPension: dec("12.25"),
	}

	artifact, err := buildProforma(testPeriod(), totals, testChart(), 1, time.Now())

	assert.NoError(t, err)

	var expense, liability decimal.Decimal
	for _, l := range artifact.Lines {
		switch l.Code {
		case CodeEmployerPension:
			expense = l.Debit
		case CodeEmployerPensionL:
			liability = l.Credit
		}
	}
	assert.True(t, expense.Equal(dec("12.25")))
	assert.True(t, liability.Equal(expense))
}

func TestBuildProforma_DeductionKindFallsBackToOther(t *testing.T) {
	totals := &payroll.PeriodTotals{
		PeriodID: uuid.New(),
		Detail: payroll.DetailMap{
			"BASE_SAL":    dec("100.00"),
			"DED_ADVANCE": dec("20.00"),
		},
		Net: dec("80.00"),
	}

	artifact, err := buildProforma(testPeriod(), totals, testChart(), 1, time.Now())

	assert.NoError(t, err)
	found := false
	for _, l := range artifact.Lines {
		if l.Code == "DED_ADVANCE" {
			found = true
			assert.Equal(t, "2390", l.Account)
		}
	}
	assert.True(t, found)
}

func TestBuildProforma_UnmappedCodeFails(t *testing.T) {
	totals := &payroll.PeriodTotals{
		PeriodID: uuid.New(),
		Detail:   payroll.DetailMap{"MYSTERY": dec("10.00")},
		Net:      dec("10.00"),
	}

	_, err := buildProforma(testPeriod(), totals, testChart(), 1, time.Now())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "MYSTERY")
}
