package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/Pachosan13/7granos-app-sub000/internal/deduction"
	"github.com/Pachosan13/7granos-app-sub000/internal/employee"
	"github.com/Pachosan13/7granos-app-sub000/internal/entry"
	"github.com/Pachosan13/7granos-app-sub000/internal/events"
	"github.com/Pachosan13/7granos-app-sub000/internal/messaging/kafka"
	"github.com/Pachosan13/7granos-app-sub000/internal/paycode"
	"github.com/Pachosan13/7granos-app-sub000/internal/period"
	payrollerrors "github.com/Pachosan13/7granos-app-sub000/internal/payroll/errors"
	"github.com/Pachosan13/7granos-app-sub000/internal/rules"
	"github.com/Pachosan13/7granos-app-sub000/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RunSummary adalah kontrak balikan satu invocation engine.
type RunSummary struct {
	Success            bool
	Message            string
	EmployeesProcessed int
	TotalGross         decimal.Decimal
	TotalNet           decimal.Decimal
}

//go:generate mockgen -source=engine.go -destination=mock/engine_mock.go -package=mock
type Service interface {
	Calculate(ctx context.Context, branchID, periodID string) (RunSummary, error)
	GetResults(ctx context.Context, branchID, periodID string) ([]ResultResponse, error)
	GetTotals(ctx context.Context, branchID, periodID string) (TotalsResponse, error)
}

type service struct {
	db            *sql.DB
	repo          Repository
	periodRepo    period.Repository
	entryRepo     entry.Repository
	paycodeRepo   paycode.Repository
	deductionRepo deduction.Repository
	employeeRepo  employee.Repository
	resolver      rules.Resolver
	outbox        kafka.OutboxRepository
	locker        *RunLocker
	logger        *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	periodRepo period.Repository,
	entryRepo entry.Repository,
	paycodeRepo paycode.Repository,
	deductionRepo deduction.Repository,
	employeeRepo employee.Repository,
	resolver rules.Resolver,
	locker *RunLocker,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, periodRepo, entryRepo, paycodeRepo, deductionRepo, employeeRepo, resolver, nil, locker, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	periodRepo period.Repository,
	entryRepo entry.Repository,
	paycodeRepo paycode.Repository,
	deductionRepo deduction.Repository,
	employeeRepo employee.Repository,
	resolver rules.Resolver,
	outbox kafka.OutboxRepository,
	locker *RunLocker,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.engine")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.engine")
	}
	return &service{
		db:            db,
		repo:          repo,
		periodRepo:    periodRepo,
		entryRepo:     entryRepo,
		paycodeRepo:   paycodeRepo,
		deductionRepo: deductionRepo,
		employeeRepo:  employeeRepo,
		resolver:      resolver,
		outbox:        outbox,
		locker:        locker,
		logger:        l,
	}
}

// employeeRun menampung hasil in-memory satu karyawan sebelum persist.
type employeeRun struct {
	result      Result
	allocations []allocation
}

// Calculate menjalankan seluruh pipeline untuk satu periode: resolve tarif,
// agregasi earnings, potongan wajib, waterfall contractual, kontribusi
// employer, lalu satu patch-set transaksi. Aman dijalankan ulang selama
// periode masih DRAFT/CALCULATED.
func (s *service) Calculate(ctx context.Context, branchID, periodID string) (RunSummary, error) {
	rid := contextutil.GetRequestID(ctx)
	log := s.logger.With(
		zap.String("request_id", rid),
		zap.String("branch_id", branchID),
		zap.String("period_id", periodID),
	)

	release, err := s.locker.Acquire(ctx, branchID)
	if err != nil {
		return RunSummary{}, err
	}
	defer release()

	p, err := s.periodRepo.FindByIDAndBranch(ctx, branchID, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RunSummary{}, payrollerrors.ErrPeriodNotFound
		}
		return RunSummary{}, err
	}
	if p.State != period.StateDraft && p.State != period.StateCalculated {
		return RunSummary{}, payrollerrors.ErrPeriodNotCalculable
	}

	// Tarif wajib hilang = gagal total sebelum ada tulisan apapun.
	ruleSet, err := s.resolver.Resolve(ctx, branchID, p.StartDate, p.EndDate)
	if err != nil {
		return RunSummary{}, err
	}

	entries, err := s.entryRepo.FindByPeriod(ctx, periodID)
	if err != nil {
		return RunSummary{}, err
	}
	if len(entries) == 0 {
		log.Warn("no payroll entries for period")
		return RunSummary{
			Success: false,
			Message: "no payroll entries found for the period",
		}, nil
	}

	catalog, err := s.paycodeRepo.Catalog(ctx)
	if err != nil {
		return RunSummary{}, err
	}

	deductions, err := s.deductionRepo.FindAllByBranch(ctx, branchID)
	if err != nil {
		return RunSummary{}, err
	}
	priorAllocations, err := s.deductionRepo.FindAllocationsByPeriod(ctx, periodID)
	if err != nil {
		return RunSummary{}, err
	}

	byEmployee := s.prepareDeductions(deductions, priorAllocations)

	perEmployee := aggregateEarnings(entries, catalog, ruleSet.Overtime)
	runs, totals := s.computeRuns(p, ruleSet, perEmployee, byEmployee)

	if err := s.persistRun(ctx, p, runs, totals, deductions, priorAllocations); err != nil {
		return RunSummary{}, err
	}

	// NET entries di luar transaksi utama: gagal satu baris hanya dicatat,
	// run tetap sukses dan karyawan lain tidak terpengaruh.
	for _, run := range runs {
		err := s.entryRepo.UpsertNet(ctx, periodID, branchID, run.result.EmployeeID.String(), run.result.Net)
		if err != nil {
			log.Error("upsert NET entry failed",
				zap.String("employee_id", run.result.EmployeeID.String()),
				zap.Error(err),
			)
		}
	}

	log.Info("payroll calculated",
		zap.Int("employees_processed", totals.EmployeesProcessed),
		zap.String("total_gross", totals.Gross.StringFixed(2)),
		zap.String("total_net", totals.Net.StringFixed(2)),
	)

	return RunSummary{
		Success:            true,
		Message:            "payroll calculated",
		EmployeesProcessed: totals.EmployeesProcessed,
		TotalGross:         totals.Gross,
		TotalNet:           totals.Net,
	}, nil
}

// prepareDeductions mengembalikan alokasi run sebelumnya ke saldo in-memory
// (sehingga hitung ulang selalu mulai dari titik yang sama), lalu
// mengelompokkan deduction per karyawan.
func (s *service) prepareDeductions(
	deductions []deduction.ContractualDeduction,
	prior []deduction.Allocation,
) map[string][]*deduction.ContractualDeduction {
	byID := make(map[string]*deduction.ContractualDeduction, len(deductions))
	for i := range deductions {
		byID[deductions[i].ID.String()] = &deductions[i]
	}

	for _, a := range prior {
		d, ok := byID[a.DeductionID.String()]
		if !ok {
			continue
		}
		d.Balance = d.Balance.Add(a.Amount)
		d.Active = d.Balance.GreaterThan(decimal.Zero)
	}

	byEmployee := make(map[string][]*deduction.ContractualDeduction)
	for i := range deductions {
		d := &deductions[i]
		if !d.Active {
			continue
		}
		employeeID := d.EmployeeID.String()
		byEmployee[employeeID] = append(byEmployee[employeeID], d)
	}
	return byEmployee
}

func (s *service) computeRuns(
	p *period.Period,
	ruleSet *rules.RuleSet,
	perEmployee map[string]*earnings,
	deductionsByEmployee map[string][]*deduction.ContractualDeduction,
) ([]employeeRun, *PeriodTotals) {
	employeeIDs := make([]string, 0, len(perEmployee))
	for id := range perEmployee {
		employeeIDs = append(employeeIDs, id)
	}
	sort.Strings(employeeIDs)

	totals := &PeriodTotals{
		PeriodID: p.ID,
		BranchID: p.BranchID,
		Detail:   DetailMap{},
	}

	runs := make([]employeeRun, 0, len(employeeIDs))
	for _, employeeID := range employeeIDs {
		e := perEmployee[employeeID]
		gross := e.Gross()

		legal := computeLegalDeductions(e, ruleSet, p.PeriodsPerYear())
		provisionalNet := gross.Sub(legal.Total())

		allocations := allocateContractual(provisionalNet, deductionsByEmployee[employeeID])
		var contractualTotal decimal.Decimal
		for _, a := range allocations {
			contractualTotal = contractualTotal.Add(a.Amount)
		}
		finalNet := provisionalNet.Sub(contractualTotal)

		contrib := computeEmployerContributions(e, ruleSet)

		detail := DetailMap{}
		for code, amount := range e.Detail {
			detail.Add(code, amount)
		}
		detail.Add(DetailSocialSecurity, legal.Pension)
		detail.Add(DetailEducationInsurance, legal.Education)
		detail.Add(DetailIncomeTax, legal.IncomeTax)
		for _, a := range allocations {
			detail.Add(DetailDeductionPrefix+a.Deduction.Kind, a.Amount)
		}

		result := Result{
			PeriodID:          p.ID,
			BranchID:          p.BranchID,
			EmployeeID:        uuid.MustParse(employeeID),
			Gross:             gross,
			LegalTotal:        legal.Total(),
			ContractualTotal:  contractualTotal,
			Net:               finalNet,
			Detail:            detail,
			EmployerPension:   contrib.Pension,
			EmployerEducation: contrib.Education,
			TotalLaborCost:    totalLaborCost(finalNet, contrib),
		}
		runs = append(runs, employeeRun{result: result, allocations: allocations})

		totals.EmployeesProcessed++
		totals.Gross = totals.Gross.Add(gross)
		totals.LegalTotal = totals.LegalTotal.Add(result.LegalTotal)
		totals.ContractualTotal = totals.ContractualTotal.Add(contractualTotal)
		totals.Net = totals.Net.Add(finalNet)
		totals.EmployerPension = totals.EmployerPension.Add(contrib.Pension)
		totals.EmployerEducation = totals.EmployerEducation.Add(contrib.Education)
		totals.TotalLaborCost = totals.TotalLaborCost.Add(result.TotalLaborCost)
		for code, amount := range detail {
			totals.Detail.Add(code, amount)
		}
	}

	return runs, totals
}

// persistRun menulis seluruh efek samping sebagai satu patch-set dalam satu
// transaksi: hasil per karyawan, saldo deduction (absolut), jurnal alokasi,
// totals periode, transisi state, dan event outbox.
func (s *service) persistRun(
	ctx context.Context,
	p *period.Period,
	runs []employeeRun,
	totals *PeriodTotals,
	deductions []deduction.ContractualDeduction,
	priorAllocations []deduction.Allocation,
) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	deductionTx := s.deductionRepo.WithTx(tx)
	periodTx := s.periodRepo.WithTx(tx)

	if err := deductionTx.DeleteAllocationsByPeriod(ctx, p.ID.String()); err != nil {
		return err
	}

	touched := make(map[string]*deduction.ContractualDeduction)
	for _, a := range priorAllocations {
		for i := range deductions {
			if deductions[i].ID == a.DeductionID {
				touched[deductions[i].ID.String()] = &deductions[i]
			}
		}
	}
	for _, run := range runs {
		for _, a := range run.allocations {
			touched[a.Deduction.ID.String()] = a.Deduction
		}
	}
	for id, d := range touched {
		if err := deductionTx.SaveBalance(ctx, id, d.Balance, d.Active); err != nil {
			return err
		}
	}

	for _, run := range runs {
		if err := qtx.UpsertResult(ctx, &run.result); err != nil {
			return err
		}
		for _, a := range run.allocations {
			err := deductionTx.InsertAllocation(ctx, &deduction.Allocation{
				PeriodID:    p.ID,
				DeductionID: a.Deduction.ID,
				EmployeeID:  run.result.EmployeeID,
				Amount:      a.Amount,
			})
			if err != nil {
				return err
			}
		}
	}

	if err := qtx.UpsertTotals(ctx, totals); err != nil {
		return err
	}

	if err := periodTx.UpdateState(ctx, p.ID.String(), period.StateCalculated); err != nil {
		return err
	}

	if s.outbox != nil {
		payload, err := json.Marshal(events.PeriodCalculatedEvent{
			EventType:          "period_calculated",
			PeriodID:           p.ID.String(),
			BranchID:           p.BranchID.String(),
			EmployeesProcessed: totals.EmployeesProcessed,
			TotalGross:         totals.Gross.StringFixed(2),
			TotalNet:           totals.Net.StringFixed(2),
			OccurredAt:         time.Now().UTC(),
		})
		if err != nil {
			return err
		}

		err = s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     contextutil.GetRequestID(ctx),
			AggregateType: "pay_period",
			AggregateID:   p.ID.String(),
			EventType:     "period_calculated",
			Topic:         events.PeriodCalculatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *service) GetResults(ctx context.Context, branchID, periodID string) ([]ResultResponse, error) {
	results, err := s.repo.FindResultsByPeriod(ctx, branchID, periodID)
	if err != nil {
		return nil, err
	}

	names, err := s.employeeRepo.Names(ctx, branchID)
	if err != nil {
		return nil, err
	}

	resp := make([]ResultResponse, len(results))
	for i, r := range results {
		resp[i] = mapResultResponse(r, names[r.EmployeeID.String()])
	}
	return resp, nil
}

func (s *service) GetTotals(ctx context.Context, branchID, periodID string) (TotalsResponse, error) {
	totals, err := s.repo.FindTotalsByPeriod(ctx, branchID, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TotalsResponse{}, payrollerrors.ErrResultsNotFound
		}
		return TotalsResponse{}, err
	}
	return mapTotalsResponse(totals), nil
}
