package payroll

import (
	"github.com/Pachosan13/7granos-app-sub000/internal/entry"
	"github.com/Pachosan13/7granos-app-sub000/internal/paycode"

	"github.com/shopspring/decimal"
)

// earnings adalah breakdown bertipe hasil agregasi entry satu karyawan.
type earnings struct {
	Regular    decimal.Decimal
	Overtime   decimal.Decimal
	Tips       decimal.Decimal
	Thirteenth decimal.Decimal
	Other      decimal.Decimal
	Detail     DetailMap
}

func newEarnings() *earnings {
	return &earnings{Detail: DetailMap{}}
}

func (e *earnings) Gross() decimal.Decimal {
	return e.Regular.
		Add(e.Overtime).
		Add(e.Tips).
		Add(e.Thirteenth).
		Add(e.Other)
}

// aggregateEarnings mengklasifikasi dan menjumlah entry mentah per karyawan.
// Kode yang tidak ada di katalog, atau bukan kelas EARNING, dilewati di tahap
// ini (kode NET sintetis run sebelumnya ikut tersaring karena kelas INFO).
// Lembur dihitung amount × quantity × multiplier untuk kind terkait; kode
// lain dihitung amount apa adanya.
func aggregateEarnings(
	entries []entry.Entry,
	catalog map[string]paycode.PayCode,
	overtime map[string]decimal.Decimal,
) map[string]*earnings {
	perEmployee := make(map[string]*earnings)

	for _, en := range entries {
		code, ok := catalog[en.Code]
		if !ok || !code.IsEarning() {
			continue
		}

		employeeID := en.EmployeeID.String()
		agg, ok := perEmployee[employeeID]
		if !ok {
			agg = newEarnings()
			perEmployee[employeeID] = agg
		}

		amount := en.Amount
		if code.Category == paycode.CategoryOvertime {
			multiplier, ok := overtime[code.OvertimeKind]
			if !ok {
				multiplier = decimal.NewFromInt(1)
			}
			amount = en.Amount.Mul(en.Quantity).Mul(multiplier).Round(2)
		}

		switch code.Category {
		case paycode.CategoryRegular:
			agg.Regular = agg.Regular.Add(amount)
		case paycode.CategoryOvertime:
			agg.Overtime = agg.Overtime.Add(amount)
		case paycode.CategoryTips:
			agg.Tips = agg.Tips.Add(amount)
		case paycode.CategoryThirteenth:
			agg.Thirteenth = agg.Thirteenth.Add(amount)
		default:
			agg.Other = agg.Other.Add(amount)
		}

		agg.Detail.Add(en.Code, amount)
	}

	return perEmployee
}
