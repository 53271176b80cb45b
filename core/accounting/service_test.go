package accounting

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"

	"github.com/acadex/backend/core"
	"github.com/acadex/backend/core/enrollment"
	"github.com/acadex/backend/core/income"
	"github.com/acadex/backend/core/payout"
	"github.com/acadex/backend/core/plan"
	"github.com/acadex/backend/core/professor"
)

type fakeRepo struct {
	saved   []MonthlyReport
	byMonth map[core.Month]MonthlyReport
}

func (r *fakeRepo) SaveReport(_ context.Context, rpt MonthlyReport) error {
	if _, ok := r.byMonth[rpt.Month]; ok {
		return ErrMonthExists
	}
	if r.byMonth == nil {
		r.byMonth = make(map[core.Month]MonthlyReport)
	}
	r.byMonth[rpt.Month] = rpt
	r.saved = append(r.saved, rpt)
	return nil
}

func (r *fakeRepo) QueryReportRefs(_ context.Context) ([]ReportRef, error) {
	refs := make([]ReportRef, 0, len(r.saved))
	for _, rpt := range r.saved {
		refs = append(refs, ReportRef{ID: rpt.ID, Month: rpt.Month, CreatedAt: rpt.CreatedAt})
	}
	return refs, nil
}

func (r *fakeRepo) GetReportByMonth(_ context.Context, m core.Month) (MonthlyReport, error) {
	rpt, ok := r.byMonth[m]
	if !ok {
		return MonthlyReport{}, ErrNotFound
	}
	return rpt, nil
}

type fakeSources struct {
	professors  map[string]professor.Professor
	enrollments map[string]enrollment.Enrollment
	plans       map[string]plan.Plan
	incomes     []income.Income
	payouts     []payout.Payout
}

func (s *fakeSources) GetProfessorByID(_ context.Context, id string) (professor.Professor, error) {
	prof, ok := s.professors[id]
	if !ok {
		return professor.Professor{}, professor.ErrNotFound
	}
	return prof, nil
}

func (s *fakeSources) GetEnrollmentByID(_ context.Context, id string) (enrollment.Enrollment, error) {
	enr, ok := s.enrollments[id]
	if !ok {
		return enrollment.Enrollment{}, enrollment.ErrNotFound
	}
	return enr, nil
}

func (s *fakeSources) GetPlanByID(_ context.Context, id string) (plan.Plan, error) {
	pln, ok := s.plans[id]
	if !ok {
		return plan.Plan{}, plan.ErrNotFound
	}
	return pln, nil
}

func (s *fakeSources) FilterIncomes(_ context.Context, f income.Filter) ([]income.Income, error) {
	var out []income.Income
	for _, inc := range s.incomes {
		if f.EnrollmentID != "" && inc.EnrollmentID != f.EnrollmentID {
			continue
		}
		if f.Month != "" && (!inc.IncomeDate.Valid || !f.Month.Contains(inc.IncomeDate.Time)) {
			continue
		}
		out = append(out, inc)
	}
	return out, nil
}

func (s *fakeSources) FilterPayouts(_ context.Context, f payout.Filter) ([]payout.Payout, error) {
	var out []payout.Payout
	for _, po := range s.payouts {
		if f.Month != "" && po.Month != f.Month {
			continue
		}
		out = append(out, po)
	}
	return out, nil
}

type noopMail struct{}

func (noopMail) SendMessages(...*core.EmailMessage) {}

func newTestService(repo *fakeRepo, src *fakeSources) *Service {
	return NewService(repo, src, src, src, src, src, nil, noopMail{}, nil)
}

func nullStr(s string) null.String { return null.StringFrom(s) }

func enrWithStudents(id, planID string, names ...string) enrollment.Enrollment {
	enr := enrollment.Enrollment{ID: id, PlanID: planID}
	enr.SetStudentNames(names)
	return enr
}

func incomeOn(enrollmentID, amount, date string) income.Income {
	d, err := core.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return income.Income{EnrollmentID: enrollmentID, Amount: dec(amount), IncomeDate: d}
}

func TestServiceGenerate(t *testing.T) {
	month := core.Month("2026-01")
	src := &fakeSources{
		professors: map[string]professor.Professor{
			"p1": {ID: "p1", Name: "Ana"},
			"sp": {ID: "sp", Name: "Luis", Special: true},
		},
		enrollments: map[string]enrollment.Enrollment{
			"e1": enrWithStudents("e1", "pl1", "Maria Perez", "Jose Diaz"),
			"e2": enrWithStudents("e2", "pl1", "Carla Soto"),
		},
		plans: map[string]plan.Plan{
			"pl1": {ID: "pl1", Name: "Intensivo", Hours: dec("20"), PricePerHour: dec("20")},
		},
		incomes: []income.Income{
			incomeOn("e1", "60", "2026-01-10"),
			incomeOn("e1", "40", "2026-01-25"),
			incomeOn("e1", "999", "2025-12-28"), // previous month, ignored
			incomeOn("e2", "200", "2026-01-05"),
		},
		payouts: []payout.Payout{
			{ProfessorID: "p1", Month: month, Details: []payout.Detail{
				{EnrollmentID: "e1", HoursTaught: dec("4"), PayPerHour: dec("15")},
			}},
			{ProfessorID: "sp", Month: month, Details: []payout.Detail{
				{EnrollmentID: "e2", HoursTaught: dec("6"), PayPerHour: dec("25"), TotalPerEnrollment: dec("150")},
			}},
			{ProfessorID: "p1", Month: core.Month("2025-12")}, // other month, ignored
		},
	}
	svc := newTestService(&fakeRepo{}, src)

	rpt, err := svc.Generate(context.Background(), month)
	assert.NoError(t, err)
	assert.Equal(t, month, rpt.Month)

	if assert.Len(t, rpt.Reports, 1) {
		rep := rpt.Reports[0]
		assert.Equal(t, "Ana", rep.ProfessorName)
		assert.Equal(t, "January 1 2026 - January 31 2026", rep.ReportDateRange)
		if assert.Len(t, rep.Lines, 1) {
			ln := rep.Lines[0]
			assert.Equal(t, "e1", ln.EnrollmentID.String)
			assert.Equal(t, "Intensivo", ln.Plan)
			assert.Equal(t, "Maria Perez, Jose Diaz", ln.StudentName)
			assert.Equal(t, StatusNormal, ln.Status)
			assert.True(t, ln.Amount.Equal(dec("100")), "amount = %s", ln.Amount)
			assert.True(t, ln.TotalTeacher.Equal(dec("60")))
			assert.True(t, ln.TotalBespoke.Equal(dec("20")))
			assert.True(t, ln.BalanceRemaining.Equal(dec("20")))
		}
	}

	if assert.NotNil(t, rpt.Special) {
		assert.Equal(t, "Luis", rpt.Special.ProfessorName)
		if assert.Len(t, rpt.Special.Lines, 1) {
			ln := rpt.Special.Lines[0]
			assert.Equal(t, "Carla Soto", ln.StudentName)
			assert.True(t, ln.Amount.Equal(dec("200")))
			assert.True(t, ln.Payment.Equal(dec("150")))
			assert.True(t, ln.Total.Equal(dec("150")))
			assert.True(t, ln.BalanceRemaining.Equal(dec("50")))
		}
	}
}

func TestServiceGenerateCarriesForwardBalances(t *testing.T) {
	month := core.Month("2026-02")
	repo := &fakeRepo{byMonth: map[core.Month]MonthlyReport{
		"2026-01": {
			Month: "2026-01",
			Reports: []ProfessorReport{{
				ProfessorID: "p1",
				Lines: []ReportLine{{
					EnrollmentID:     nullStr("e1"),
					Status:           StatusNormal,
					BalanceRemaining: dec("20"),
				}},
			}},
		},
	}}
	src := &fakeSources{
		professors:  map[string]professor.Professor{"p1": {ID: "p1", Name: "Ana"}},
		enrollments: map[string]enrollment.Enrollment{"e1": enrWithStudents("e1", "pl1", "Maria Perez")},
		plans:       map[string]plan.Plan{"pl1": {ID: "pl1", Name: "Intensivo", PricePerHour: dec("20")}},
		payouts: []payout.Payout{
			{ProfessorID: "p1", Month: month, Details: []payout.Detail{
				{EnrollmentID: "e1", HoursTaught: dec("1"), PayPerHour: dec("15")},
			}},
		},
	}
	svc := newTestService(repo, src)

	rpt, err := svc.Generate(context.Background(), month)
	assert.NoError(t, err)
	ln := rpt.Reports[0].Lines[0]
	assert.True(t, ln.Balance.Equal(dec("20")))
	// no income this month: 0 + 20 - 15 - 5
	assert.True(t, ln.BalanceRemaining.Equal(dec("0")))
}

func TestServiceGenerateInvalidMonth(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &fakeSources{})
	for _, m := range []string{"", "2026", "01-2026", "2026-13"} {
		_, err := svc.Generate(context.Background(), core.Month(m))
		assert.ErrorIs(t, err, core.ErrInvalidMonth, "month %q", m)
	}
}

func TestServiceSave(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeSources{})

	in := MonthlyReport{
		Month: "2026-01",
		Reports: []ProfessorReport{{
			ProfessorID: "p1",
			Lines:       []ReportLine{normalLine("100", "20", "15", "4", "0")},
		}},
		Summary: Summary{
			RealTotal: dec("20"),
			// client-sent derived fields must be ignored
			SystemTotal: dec("9999"),
			Difference:  dec("-9999"),
		},
	}

	out, err := svc.Save(context.Background(), in)
	assert.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.False(t, out.CreatedAt.IsZero())
	assert.True(t, out.Summary.SystemTotal.Equal(dec("20")))
	assert.True(t, out.Summary.Difference.IsZero())
	assert.Len(t, repo.saved, 1)

	// month uniqueness
	_, err = svc.Save(context.Background(), in)
	assert.ErrorIs(t, err, ErrMonthExists)
	assert.Len(t, repo.saved, 1)
}

func TestServiceSaveInvalidMonth(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeSources{})

	_, err := svc.Save(context.Background(), MonthlyReport{Month: "not-a-month"})
	assert.ErrorIs(t, err, core.ErrInvalidMonth)
	assert.Empty(t, repo.saved)
}

func TestServiceHistoryAndGetByMonth(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeSources{})

	saved, err := svc.Save(context.Background(), MonthlyReport{Month: "2026-01", Summary: Summary{RealTotal: decimal.Zero}})
	assert.NoError(t, err)

	refs, err := svc.History(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, refs, 1) {
		assert.Equal(t, saved.ID, refs[0].ID)
		assert.Equal(t, core.Month("2026-01"), refs[0].Month)
	}

	got, err := svc.GetByMonth(context.Background(), "2026-01")
	assert.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)

	_, err = svc.GetByMonth(context.Background(), "2026-02")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "report-2026-01.pdf", FileName("2026-01"))
}
