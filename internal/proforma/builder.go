package proforma

import (
	"sort"
	"time"

	"github.com/Pachosan13/7granos-app-sub000/internal/payroll"
	"github.com/Pachosan13/7granos-app-sub000/internal/period"
	proformaerrors "github.com/Pachosan13/7granos-app-sub000/internal/proforma/errors"

	"github.com/shopspring/decimal"
)

// buildProforma menyusun artifact ledger seimbang dari totals satu periode.
//
// Setiap kode pada detail ikut sisinya di chart; net pay menjadi satu baris
// hutang gaji (kode NET); kontribusi employer menghasilkan pasangan baris
// expense/liability. Selisih debit-credit akibat pembulatan diserap satu
// baris ROUNDING.
func buildProforma(
	p *period.Period,
	totals *payroll.PeriodTotals,
	chart map[string]AccountMapping,
	sequence int64,
	now time.Time,
) (*Proforma, error) {
	codes := make([]string, 0, len(totals.Detail))
	for code := range totals.Detail {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var lines []Line
	for _, code := range codes {
		line, err := lineFor(chart, code, totals.Detail[code])
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if !totals.Net.IsZero() {
		line, err := lineFor(chart, CodeNetPayable, totals.Net)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	pairs := []struct {
		expense   string
		liability string
		amount    decimal.Decimal
	}{
		{CodeEmployerPension, CodeEmployerPensionL, totals.EmployerPension},
		{CodeEmployerEducation, CodeEmployerEducationL, totals.EmployerEducation},
	}
	for _, pair := range pairs {
		if pair.amount.IsZero() {
			continue
		}
		expense, err := lineFor(chart, pair.expense, pair.amount)
		if err != nil {
			return nil, err
		}
		liability, err := lineFor(chart, pair.liability, pair.amount)
		if err != nil {
			return nil, err
		}
		lines = append(lines, expense, liability)
	}

	var totalDebit, totalCredit decimal.Decimal
	for _, l := range lines {
		totalDebit = totalDebit.Add(l.Debit)
		totalCredit = totalCredit.Add(l.Credit)
	}

	if diff := totalDebit.Sub(totalCredit); !diff.IsZero() {
		rounding := roundingLine(chart, diff)
		lines = append(lines, rounding)
		totalDebit = totalDebit.Add(rounding.Debit)
		totalCredit = totalCredit.Add(rounding.Credit)
	}

	return &Proforma{
		BranchID:    p.BranchID.String(),
		PeriodID:    p.ID.String(),
		Year:        p.Year,
		Month:       p.Month,
		Sequence:    sequence,
		Lines:       lines,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		GeneratedAt: now.UTC(),
	}, nil
}

func lineFor(chart map[string]AccountMapping, code string, amount decimal.Decimal) (Line, error) {
	mapping, ok := lookup(chart, code)
	if !ok {
		return Line{}, proformaerrors.UnmappedCode(code)
	}

	line := Line{
		Code:        code,
		Account:     mapping.Account,
		AccountName: mapping.AccountName,
	}
	if mapping.Side == SideDebit {
		line.Debit = amount
	} else {
		line.Credit = amount
	}
	return line, nil
}

// lookup jatuh ke prefix DED_ generik bila kind spesifik (DED_LOAN dst.)
// tidak punya mapping sendiri.
func lookup(chart map[string]AccountMapping, code string) (AccountMapping, bool) {
	if m, ok := chart[code]; ok {
		return m, true
	}
	if len(code) > len(payroll.DetailDeductionPrefix) && code[:len(payroll.DetailDeductionPrefix)] == payroll.DetailDeductionPrefix {
		m, ok := chart[payroll.DetailDeductionPrefix+"OTHER"]
		return m, ok
	}
	return AccountMapping{}, false
}

// roundingLine menyerap selisih: debit > credit berarti butuh credit tambahan,
// dan sebaliknya. Akun default dipakai bila chart tidak punya baris ROUNDING.
func roundingLine(chart map[string]AccountMapping, diff decimal.Decimal) Line {
	mapping, ok := chart[CodeRounding]
	if !ok {
		mapping = AccountMapping{Account: "9999", AccountName: "Rounding adjustment"}
	}

	line := Line{
		Code:        CodeRounding,
		Account:     mapping.Account,
		AccountName: mapping.AccountName,
	}
	if diff.GreaterThan(decimal.Zero) {
		line.Credit = diff
	} else {
		line.Debit = diff.Neg()
	}
	return line
}
