package app

import (
	"database/sql"
	"os"
	"time"

	"github.com/Pachosan13/7granos-app-sub000/internal/branch"
	"github.com/Pachosan13/7granos-app-sub000/internal/deduction"
	"github.com/Pachosan13/7granos-app-sub000/internal/employee"
	"github.com/Pachosan13/7granos-app-sub000/internal/entry"
	"github.com/Pachosan13/7granos-app-sub000/internal/messaging/kafka"
	"github.com/Pachosan13/7granos-app-sub000/internal/paycode"
	"github.com/Pachosan13/7granos-app-sub000/internal/payroll"
	"github.com/Pachosan13/7granos-app-sub000/internal/period"
	"github.com/Pachosan13/7granos-app-sub000/internal/proforma"
	"github.com/Pachosan13/7granos-app-sub000/internal/rules"
	"github.com/Pachosan13/7granos-app-sub000/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	branchRepo := branch.NewRepository(gormDB)
	paycodeRepo := paycode.NewRepository(gormDB)
	rulesRepo := rules.NewRepository(gormDB)
	periodRepo := period.NewRepository(gormDB)
	entryRepo := entry.NewRepository(gormDB)
	deductionRepo := deduction.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	proformaRepo := proforma.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	branchService := branch.NewService(branchRepo)
	paycodeService := paycode.NewService(paycodeRepo)
	periodService := period.NewService(periodRepo)
	deductionService := deduction.NewService(deductionRepo)
	resolver := rules.NewResolver(rulesRepo, branchRepo)
	locker := payroll.NewRunLocker(rdb, 2*time.Minute)
	payrollService := payroll.NewServiceWithOutbox(
		db,
		payrollRepo,
		periodRepo,
		entryRepo,
		paycodeRepo,
		deductionRepo,
		employeeRepo,
		resolver,
		outboxRepo,
		locker,
	)

	proformaDir := os.Getenv("PROFORMA_DIR")
	if proformaDir == "" {
		proformaDir = "proformas"
	}
	proformaService := proforma.NewService(
		proformaRepo,
		payrollRepo,
		periodRepo,
		counterRepo,
		proforma.NewWriter(proformaDir),
	)

	// --- Handlers ---
	branchHandler := branch.NewHandler(branchService)
	paycodeHandler := paycode.NewHandler(paycodeService)
	periodHandler := period.NewHandler(periodService)
	deductionHandler := deduction.NewHandler(deductionService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)
	proformaHandler := proforma.NewHandler(proformaService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		branch.RegisterRoutes(api, branchHandler)
		paycode.RegisterRoutes(api, paycodeHandler)
		period.RegisterRoutes(api, periodHandler)
		deduction.RegisterRoutes(api, deductionHandler)
		payroll.RegisterRoutes(api, payrollHandler, rdb)
		proforma.RegisterRoutes(api, proformaHandler)
	}

	return nil
}
