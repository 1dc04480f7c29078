package payroll

import (
	"github.com/Pachosan13/7granos-app-sub000/internal/rules"

	"github.com/shopspring/decimal"
)

type legalDeductions struct {
	Pension   decimal.Decimal
	Education decimal.Decimal
	IncomeTax decimal.Decimal
}

func (l legalDeductions) Total() decimal.Decimal {
	return l.Pension.Add(l.Education).Add(l.IncomeTax)
}

// computeLegalDeductions menghitung potongan wajib satu karyawan.
//
// Basis seguro social: regular + overtime + thirteenth + other, plus tips
// hanya bila branch config menyertakannya. Basis pajak: regular + overtime +
// other (tanpa thirteenth), plus tips sesuai config.
func computeLegalDeductions(e *earnings, rs *rules.RuleSet, periodsPerYear int64) legalDeductions {
	ssBase := ssBaseOf(e, rs)

	taxBase := e.Regular.Add(e.Overtime).Add(e.Other)
	if rs.BranchConfig.IncludeTipsInIncomeTax {
		taxBase = taxBase.Add(e.Tips)
	}

	return legalDeductions{
		Pension:   ssBase.Mul(rs.Pension.EmployeePct).Round(2),
		Education: ssBase.Mul(rs.Education.EmployeePct).Round(2),
		IncomeTax: computeIncomeTax(taxBase, rs.Brackets, periodsPerYear),
	}
}

// computeIncomeTax menganualisasi basis periode, menerapkan bracket progresif,
// lalu membagi kembali ke satu periode. FixedAmount bracket ditambahkan satu
// kali per bracket yang berlaku, tidak diprorata.
func computeIncomeTax(taxBase decimal.Decimal, brackets []rules.IncomeTaxBracket, periodsPerYear int64) decimal.Decimal {
	periods := decimal.NewFromInt(periodsPerYear)
	annual := taxBase.Mul(periods)

	var annualTax decimal.Decimal
	for _, b := range brackets {
		if annual.LessThanOrEqual(b.Min) {
			continue
		}
		taxable := decimal.Min(annual, b.Max).Sub(b.Min)
		annualTax = annualTax.Add(taxable.Mul(b.Rate)).Add(b.FixedAmount)
	}

	return annualTax.Div(periods).Round(2)
}

// ssBaseOf diekspos terpisah karena kontribusi employer memakai basis yang
// sama dengan potongan seguro karyawan.
func ssBaseOf(e *earnings, rs *rules.RuleSet) decimal.Decimal {
	base := e.Regular.Add(e.Overtime).Add(e.Thirteenth).Add(e.Other)
	if rs.BranchConfig.IncludeTipsInSocialSecurity {
		base = base.Add(e.Tips)
	}
	return base
}
