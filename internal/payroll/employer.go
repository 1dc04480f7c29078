package payroll

import (
	"github.com/Pachosan13/7granos-app-sub000/internal/rules"

	"github.com/shopspring/decimal"
)

type employerContributions struct {
	Pension   decimal.Decimal
	Education decimal.Decimal
}

func computeEmployerContributions(e *earnings, rs *rules.RuleSet) employerContributions {
	base := ssBaseOf(e, rs)
	return employerContributions{
		Pension:   base.Mul(rs.Pension.EmployerPct).Round(2),
		Education: base.Mul(rs.Education.EmployerPct).Round(2),
	}
}

// totalLaborCost = net akhir + kontribusi employer. Sengaja dihitung dari
// net, bukan gross, mengikuti perilaku aplikasi produksi yang ada; jangan
// diubah tanpa konfirmasi bisnis.
func totalLaborCost(finalNet decimal.Decimal, c employerContributions) decimal.Decimal {
	return finalNet.Add(c.Pension).Add(c.Education)
}
