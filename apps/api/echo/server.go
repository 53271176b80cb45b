package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

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
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool
		Logger         core.Logger
		// SignalShutdown is called when an unrecoverable error is caught;
		// optional.
		SignalShutdown func()

		UserSvc       *user.Service
		StudentSvc    *student.Service
		ProfessorSvc  *professor.Service
		PlanSvc       *plan.Service
		EnrollmentSvc *enrollment.Service
		PayMethodSvc  *paymethod.Service
		CurrencySvc   *currency.Service
		IncomeSvc     *income.Service
		PayoutSvc     *payout.Service
		AccountingSvc *accounting.Service
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	configureAuth()

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(core.Conf.Debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.opts.SignalShutdown)
	s.app.Debug = core.Conf.Debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(appJWTConfig)

	registerUserAPI(v1, jwt, s.opts.UserSvc)
	registerStudentAPI(v1, jwt, s.opts.StudentSvc)
	registerProfessorAPI(v1, jwt, s.opts.ProfessorSvc)
	registerPlanAPI(v1, jwt, s.opts.PlanSvc)
	registerEnrollmentAPI(v1, jwt, s.opts.EnrollmentSvc)
	registerPayMethodAPI(v1, jwt, s.opts.PayMethodSvc)
	registerCurrencyAPI(v1, jwt, s.opts.CurrencySvc)
	registerIncomeAPI(v1, jwt, s.opts.IncomeSvc)
	registerPayoutAPI(v1, jwt, s.opts.PayoutSvc)
	registerAccountingAPI(v1, jwt, s.opts.AccountingSvc)
}

func (s *server) Start() {
	if err := s.app.Start(s.opts.Address); err != nil && err != http.ErrServerClosed {
		s.app.Logger.Fatal(err)
	}
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Academia API!")
}
