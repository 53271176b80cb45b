package accounting

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"

	"github.com/acadex/backend/core"
	"github.com/acadex/backend/core/enrollment"
	"github.com/acadex/backend/core/income"
	"github.com/acadex/backend/core/payout"
	"github.com/acadex/backend/core/plan"
	"github.com/acadex/backend/core/professor"
)

var (
	ErrNotFound    = errors.New("report not found")
	ErrMonthExists = errors.New("a report for this month already exists")
)

type (
	// Repository persists saved monthly reports. SaveReport stores the
	// whole report atomically and returns ErrMonthExists when the month
	// is already taken.
	Repository interface {
		SaveReport(ctx context.Context, rpt MonthlyReport) error
		QueryReportRefs(ctx context.Context) ([]ReportRef, error)
		GetReportByMonth(ctx context.Context, month core.Month) (MonthlyReport, error)
	}

	// narrow views over the other domains' repositories
	ProfessorSource interface {
		GetProfessorByID(ctx context.Context, id string) (professor.Professor, error)
	}
	EnrollmentSource interface {
		GetEnrollmentByID(ctx context.Context, id string) (enrollment.Enrollment, error)
	}
	PlanSource interface {
		GetPlanByID(ctx context.Context, id string) (plan.Plan, error)
	}
	IncomeSource interface {
		FilterIncomes(ctx context.Context, f income.Filter) ([]income.Income, error)
	}
	PayoutSource interface {
		FilterPayouts(ctx context.Context, f payout.Filter) ([]payout.Payout, error)
	}

	// Renderer turns a saved report into a downloadable document.
	Renderer interface {
		Render(rpt MonthlyReport) ([]byte, error)
	}

	Service struct {
		repo        Repository
		professors  ProfessorSource
		enrollments EnrollmentSource
		plans       PlanSource
		incomes     IncomeSource
		payouts     PayoutSource
		renderer    Renderer
		mailSvc     core.EmailService
		logger      core.Logger
	}
)

func NewService(
	repo Repository,
	professors ProfessorSource,
	enrollments EnrollmentSource,
	plans PlanSource,
	incomes IncomeSource,
	payouts PayoutSource,
	renderer Renderer,
	mailSvc core.EmailService,
	logger core.Logger,
) *Service {
	return &Service{
		repo:        repo,
		professors:  professors,
		enrollments: enrollments,
		plans:       plans,
		incomes:     incomes,
		payouts:     payouts,
		renderer:    renderer,
		mailSvc:     mailSvc,
		logger:      logger,
	}
}

// monthDateRange formats the first and last day of the month the way
// report headers show them, eg. "January 1 2026 - January 31 2026".
func monthDateRange(m core.Month) string {
	first := m.Time()
	last := first.AddDate(0, 1, -1)
	return fmt.Sprintf("%s - %s", first.Format("January 2 2006"), last.Format("January 2 2006"))
}

// Generate builds the month's skeleton report from the recorded payouts
// and incomes, one line per enrollment paid out in the month, carrying
// forward each enrollment's balance from the previous saved report. The
// flat-payment professor's lines land in the special section.
func (svc *Service) Generate(ctx context.Context, m core.Month) (MonthlyReport, error) {
	if _, err := core.ParseMonth(string(m)); err != nil {
		return MonthlyReport{}, err
	}

	payouts, err := svc.payouts.FilterPayouts(ctx, payout.Filter{Month: m})
	if err != nil {
		return MonthlyReport{}, errors.Wrap(err, "loading payouts")
	}

	balances, err := svc.priorBalances(ctx, m)
	if err != nil {
		return MonthlyReport{}, err
	}

	dateRange := monthDateRange(m)
	var (
		reports []ProfessorReport
		special *SpecialReport
	)
	for _, po := range payouts {
		prof, err := svc.professors.GetProfessorByID(ctx, po.ProfessorID)
		if err != nil {
			return MonthlyReport{}, errors.Wrapf(err, "loading professor %s", po.ProfessorID)
		}

		if prof.Special {
			if special == nil {
				special = &SpecialReport{ProfessorID: prof.ID, ProfessorName: prof.Name}
			}
			for _, det := range po.Details {
				ln, err := svc.buildSpecialLine(ctx, m, dateRange, det, balances)
				if err != nil {
					return MonthlyReport{}, err
				}
				special.Lines = append(special.Lines, ln)
			}
			continue
		}

		rep := ProfessorReport{
			ProfessorID:     prof.ID,
			ProfessorName:   prof.Name,
			ReportDateRange: dateRange,
		}
		for _, det := range po.Details {
			ln, err := svc.buildLine(ctx, m, dateRange, det, balances)
			if err != nil {
				return MonthlyReport{}, err
			}
			rep.Lines = append(rep.Lines, ln)
		}
		reports = append(reports, rep)
	}

	rpt := Compute(reports, special, nil, decimal.Zero)
	rpt.Month = m
	return rpt, nil
}

// priorBalances maps enrollment ids to the balance they closed the
// previous month's report with.
func (svc *Service) priorBalances(ctx context.Context, m core.Month) (map[string]decimal.Decimal, error) {
	balances := make(map[string]decimal.Decimal)
	prev, err := svc.repo.GetReportByMonth(ctx, m.Prev())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return balances, nil
		}
		return nil, errors.Wrap(err, "loading previous report")
	}
	for _, rep := range prev.Reports {
		for _, ln := range rep.Lines {
			if ln.EnrollmentID.Valid {
				balances[ln.EnrollmentID.String] = ln.BalanceRemaining
			}
		}
	}
	if prev.Special != nil {
		for _, ln := range prev.Special.Lines {
			if ln.EnrollmentID.Valid {
				balances[ln.EnrollmentID.String] = ln.BalanceRemaining
			}
		}
	}
	return balances, nil
}

// lineSource resolves the enrollment-derived fields shared by normal and
// special lines.
func (svc *Service) lineSource(ctx context.Context, m core.Month, enrollmentID string) (enrollment.Enrollment, plan.Plan, decimal.Decimal, error) {
	enr, err := svc.enrollments.GetEnrollmentByID(ctx, enrollmentID)
	if err != nil {
		return enrollment.Enrollment{}, plan.Plan{}, decimal.Zero, errors.Wrapf(err, "loading enrollment %s", enrollmentID)
	}
	pln, err := svc.plans.GetPlanByID(ctx, enr.PlanID)
	if err != nil {
		return enrollment.Enrollment{}, plan.Plan{}, decimal.Zero, errors.Wrapf(err, "loading plan %s", enr.PlanID)
	}
	incomes, err := svc.incomes.FilterIncomes(ctx, income.Filter{Month: m, EnrollmentID: enrollmentID})
	if err != nil {
		return enrollment.Enrollment{}, plan.Plan{}, decimal.Zero, errors.Wrapf(err, "loading incomes for enrollment %s", enrollmentID)
	}
	amount := decimal.Zero
	for _, inc := range incomes {
		amount = amount.Add(inc.Amount)
	}
	return enr, pln, amount, nil
}

func (svc *Service) buildLine(ctx context.Context, m core.Month, dateRange string, det payout.Detail, balances map[string]decimal.Decimal) (ReportLine, error) {
	enr, pln, amount, err := svc.lineSource(ctx, m, det.EnrollmentID)
	if err != nil {
		return ReportLine{}, err
	}
	return ReportLine{
		ID:           uuid.New().String(),
		EnrollmentID: null.StringFrom(det.EnrollmentID),
		Period:       dateRange,
		Plan:         pln.Name,
		StudentName:  enr.StudentNames(),
		Amount:       amount,
		TotalHours:   pln.Hours,
		PricePerHour: pln.PricePerHour,
		PayPerHour:   det.PayPerHour,
		HoursSeen:    det.HoursTaught,
		Balance:      balances[det.EnrollmentID],
		Status:       StatusNormal,
	}, nil
}

func (svc *Service) buildSpecialLine(ctx context.Context, m core.Month, dateRange string, det payout.Detail, balances map[string]decimal.Decimal) (SpecialLine, error) {
	enr, pln, amount, err := svc.lineSource(ctx, m, det.EnrollmentID)
	if err != nil {
		return SpecialLine{}, err
	}
	return SpecialLine{
		ID:           uuid.New().String(),
		EnrollmentID: null.StringFrom(det.EnrollmentID),
		Period:       dateRange,
		Plan:         pln.Name,
		StudentName:  enr.StudentNames(),
		Amount:       amount,
		TotalHours:   pln.Hours,
		HoursSeen:    det.HoursTaught,
		OldBalance:   balances[det.EnrollmentID],
		Payment:      det.TotalPerEnrollment,
	}, nil
}

// Save recomputes every derived field from the submitted source rows and
// persists the report. Client-sent totals are never trusted.
func (svc *Service) Save(ctx context.Context, rpt MonthlyReport) (MonthlyReport, error) {
	if _, err := core.ParseMonth(string(rpt.Month)); err != nil {
		return MonthlyReport{}, err
	}

	out := Compute(rpt.Reports, rpt.Special, rpt.Excedents, rpt.Summary.RealTotal)
	out.Month = rpt.Month
	out.ID = uuid.New().String()
	out.CreatedAt = time.Now().UTC()

	if err := svc.repo.SaveReport(ctx, out); err != nil {
		if errors.Is(err, ErrMonthExists) {
			return MonthlyReport{}, err
		}
		return MonthlyReport{}, errors.Wrapf(err, "saving report for %s", rpt.Month)
	}

	svc.notifySaved(out)
	return out, nil
}

// notifySaved mails the owner a summary of the saved report. Failures
// are logged, never surfaced; the report is already stored.
func (svc *Service) notifySaved(rpt MonthlyReport) {
	if core.Conf == nil || core.Conf.OwnerEmail == "" {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Address: core.Conf.OwnerEmail}},
		Subject:      fmt.Sprintf("Payout report saved for %s", rpt.Month.Label()),
		TemplateName: "report-saved",
		TemplateData: struct {
			MonthLabel  string
			SystemTotal decimal.Decimal
			RealTotal   decimal.Decimal
			Difference  decimal.Decimal
		}{
			MonthLabel:  rpt.Month.Label(),
			SystemTotal: rpt.Summary.SystemTotal,
			RealTotal:   rpt.Summary.RealTotal,
			Difference:  rpt.Summary.Difference,
		},
	})
}

// History lists saved reports, newest first.
func (svc *Service) History(ctx context.Context) ([]ReportRef, error) {
	return svc.repo.QueryReportRefs(ctx)
}

func (svc *Service) GetByMonth(ctx context.Context, m core.Month) (MonthlyReport, error) {
	if _, err := core.ParseMonth(string(m)); err != nil {
		return MonthlyReport{}, err
	}
	return svc.repo.GetReportByMonth(ctx, m)
}

// Render produces the report's PDF document.
func (svc *Service) Render(rpt MonthlyReport) ([]byte, error) {
	return svc.renderer.Render(rpt)
}

// FileName names the download for a month's report.
func FileName(m core.Month) string {
	return fmt.Sprintf("report-%s.pdf", m)
}
