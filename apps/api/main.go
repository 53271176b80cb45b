package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	echoapi "github.com/acadex/backend/apps/api/echo"
	"github.com/acadex/backend/core"
	"github.com/acadex/backend/core/accounting"
	"github.com/acadex/backend/core/currency"
	"github.com/acadex/backend/core/enrollment"
	"github.com/acadex/backend/core/income"
	"github.com/acadex/backend/core/paymethod"
	"github.com/acadex/backend/core/payout"
	"github.com/acadex/backend/core/plan"
	"github.com/acadex/backend/core/professor"
	"github.com/acadex/backend/core/student"
	"github.com/acadex/backend/core/user"
	emailsvc "github.com/acadex/backend/services/email"
	logsvc "github.com/acadex/backend/services/logger"
	pdfsvc "github.com/acadex/backend/services/pdf"
	"github.com/acadex/backend/storage/database"
	sqlxrepos "github.com/acadex/backend/storage/database/sqlx"
)

func main() {
	core.InitConf()

	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up logging
	var logger core.Logger
	if core.Conf.Debug {
		logger = logsvc.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, core.Conf)
	}

	// set up DB
	db, err := database.Open(core.Conf)
	errAndDie(logger, err)
	defer db.Close()
	errAndDie(logger, database.Migrate(db))

	// set up services
	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	professorRepo := sqlxrepos.NewProfessorRepository(db)
	enrollmentRepo := sqlxrepos.NewEnrollmentRepository(db)
	planRepo := sqlxrepos.NewPlanRepository(db)
	incomeRepo := sqlxrepos.NewIncomeRepository(db)
	payoutRepo := sqlxrepos.NewPayoutRepository(db)

	accountingSvc := accounting.NewService(
		sqlxrepos.NewReportRepository(db),
		professorRepo,
		enrollmentRepo,
		planRepo,
		incomeRepo,
		payoutRepo,
		pdfsvc.NewReportRenderer(),
		mailSvc,
		logger,
	)

	// shutdown on SIGINT/SIGTERM or on an unrecoverable API error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	app := echoapi.NewServer(&echoapi.Options{
		Address: core.Conf.Address(),
		Logger:  logger,
		SignalShutdown: func() {
			shutdown <- syscall.SIGTERM
		},
		UserSvc:       user.NewService(sqlxrepos.NewUserRepository(db)),
		StudentSvc:    student.NewService(sqlxrepos.NewStudentRepository(db)),
		ProfessorSvc:  professor.NewService(professorRepo),
		PlanSvc:       plan.NewService(planRepo),
		EnrollmentSvc: enrollment.NewService(enrollmentRepo),
		PayMethodSvc:  paymethod.NewService(sqlxrepos.NewPaymentMethodRepository(db)),
		CurrencySvc:   currency.NewService(sqlxrepos.NewCurrencyRepository(db)),
		IncomeSvc:     income.NewService(incomeRepo),
		PayoutSvc:     payout.NewService(payoutRepo),
		AccountingSvc: accountingSvc,
	})

	go app.Start()
	logger.Info("API server started on " + core.Conf.Address())

	<-shutdown
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), core.Conf.Server.ShutdownTimeout)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		logger.Error("graceful shutdown failed", err)
	}
}

func errAndDie(logger core.Logger, err error) {
	if err != nil {
		logger.Fatal(err.Error())
	}
}
