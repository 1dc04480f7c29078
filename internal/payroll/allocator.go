package payroll

import (
	"github.com/Pachosan13/7granos-app-sub000/internal/deduction"

	"github.com/shopspring/decimal"
)

// allocation adalah satu pengambilan waterfall terhadap satu deduction.
type allocation struct {
	Deduction *deduction.ContractualDeduction
	Amount    decimal.Decimal
}

// allocateContractual menjalankan waterfall: deduction dikonsumsi berurutan
// sesuai priority, masing-masing mengambil min(installment, saldo, sisa net).
// Berhenti total begitu sisa net nol; deduction yang belum tercapai tidak
// mendapat apa-apa periode ini. Saldo dimutasi langsung pada objek yang
// diberikan (engine bekerja pada salinan in-memory sampai commit).
func allocateContractual(provisionalNet decimal.Decimal, deductions []*deduction.ContractualDeduction) []allocation {
	var allocations []allocation
	remaining := provisionalNet

	for _, d := range deductions {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		if !d.Active || d.Balance.LessThanOrEqual(decimal.Zero) {
			continue
		}

		amount := decimal.Min(d.Installment, d.Balance, remaining)
		if amount.LessThanOrEqual(decimal.Zero) {
			continue
		}

		d.Balance = d.Balance.Sub(amount)
		if d.Balance.LessThanOrEqual(decimal.Zero) {
			d.Active = false
		}
		remaining = remaining.Sub(amount)

		allocations = append(allocations, allocation{Deduction: d, Amount: amount})
	}

	return allocations
}
