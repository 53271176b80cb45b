package echoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"

	"github.com/acadex/backend/core/accounting"
	"github.com/acadex/backend/core/enrollment"
	"github.com/acadex/backend/core/income"
	"github.com/acadex/backend/core/payout"
	"github.com/acadex/backend/core/plan"
	"github.com/acadex/backend/core/professor"
	"github.com/acadex/backend/core/student"
	"github.com/acadex/backend/core/user"
)

// seedReportData records everything Generate needs for one normal
// professor teaching one enrollment in March 2026.
func seedReportData(t *testing.T, app *testApp) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	prof := professor.Professor{ID: uuid.New().String(), Name: "Ana Gomez", CINumber: "123", IsActive: true, CreatedAt: now, UpdatedAt: now}
	if _, err := app.professorRepo.CreateProfessor(ctx, prof); err != nil {
		t.Fatalf("CreateProfessor() failed: %v", err)
	}

	std := student.Student{ID: uuid.New().String(), Name: "Maria Perez", Status: student.StatusActive, CreatedAt: now, UpdatedAt: now}
	if _, err := app.studentRepo.CreateStudent(ctx, std); err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}

	pln := plan.Plan{
		ID:           uuid.New().String(),
		Name:         "Standard 20h",
		Hours:        decimal.NewFromInt(20),
		Price:        decimal.NewFromInt(400),
		PricePerHour: decimal.NewFromInt(20),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := app.planRepo.CreatePlan(ctx, pln); err != nil {
		t.Fatalf("CreatePlan() failed: %v", err)
	}

	enr := enrollment.Enrollment{
		ID:          uuid.New().String(),
		PlanID:      pln.ID,
		ProfessorID: prof.ID,
		StudentIDs:  []string{std.ID},
		Type:        enrollment.TypeSingle,
		Status:      enrollment.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := app.enrollmentRepo.CreateEnrollment(ctx, enr); err != nil {
		t.Fatalf("CreateEnrollment() failed: %v", err)
	}

	inc := income.Income{
		ID:           uuid.New().String(),
		DepositName:  "Maria Perez",
		Amount:       decimal.NewFromInt(100),
		ProfessorID:  prof.ID,
		EnrollmentID: enr.ID,
		IncomeDate:   null.TimeFrom(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := app.incomeRepo.CreateIncome(ctx, inc); err != nil {
		t.Fatalf("CreateIncome() failed: %v", err)
	}

	po := payout.Payout{
		ID:          uuid.New().String(),
		ProfessorID: prof.ID,
		Month:       "2026-03",
		Details: []payout.Detail{{
			EnrollmentID:       enr.ID,
			HoursTaught:        decimal.NewFromInt(4),
			PayPerHour:         decimal.NewFromInt(15),
			TotalPerEnrollment: decimal.NewFromInt(60),
		}},
		Subtotal:  decimal.NewFromInt(60),
		Total:     decimal.NewFromInt(60),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := app.payoutRepo.CreatePayout(ctx, po); err != nil {
		t.Fatalf("CreatePayout() failed: %v", err)
	}
}

func Test_accountingApi_generate(t *testing.T) {
	app := setup(t)
	seedReportData(t, app)
	admin := createUser(t, app.userRepo, "Admin", "admin1", "admin@test.ac", "S3cr3tPwd", []string{user.RoleAdmin}, true)
	token := getToken(t, admin)

	t.Run("Auth required", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/accounting/reports/generate?month=2026-03")
		app.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}, rec)
	})

	t.Run("Invalid month", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/accounting/reports/generate?month=03-2026", token)
		app.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("Generate", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/accounting/reports/generate?month=2026-03", token)
		app.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; wantCode %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}

		var rpt accounting.MonthlyReport
		if err := json.Unmarshal(rec.Body.Bytes(), &rpt); err != nil {
			t.Fatalf("unmarshalling report failed: %v", err)
		}
		assert.Equal(t, 1, len(rpt.Reports))
		assert.Equal(t, "Ana Gomez", rpt.Reports[0].ProfessorName)
		if assert.Equal(t, 1, len(rpt.Reports[0].Lines)) {
			line := rpt.Reports[0].Lines[0]
			assert.Equal(t, "Maria Perez", line.StudentName)
			assert.True(t, line.Amount.Equal(decimal.NewFromInt(100)), "amount = %s", line.Amount)
			assert.True(t, line.TotalTeacher.Equal(decimal.NewFromInt(60)), "totalTeacher = %s", line.TotalTeacher)
			assert.True(t, line.TotalBespoke.Equal(decimal.NewFromInt(20)), "totalBespoke = %s", line.TotalBespoke)
			assert.True(t, line.BalanceRemaining.Equal(decimal.NewFromInt(20)), "balanceRemaining = %s", line.BalanceRemaining)
		}
	})
}

func Test_accountingApi_saveAndDownload(t *testing.T) {
	app := setup(t)
	seedReportData(t, app)
	admin := createUser(t, app.userRepo, "Admin", "admin1", "admin@test.ac", "S3cr3tPwd", []string{user.RoleAdmin}, true)
	token := getToken(t, admin)

	// generate the document to be saved
	req, rec := newAuthRequest(http.MethodPost, "/v1/accounting/reports/generate?month=2026-03", token)
	app.server.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("generate failed! code = %v; body %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.Bytes()

	t.Run("Save", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/accounting/reports", token, body)
		app.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("failed! code = %v; wantCode %v; body %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
	})

	t.Run("Duplicate month conflicts", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/accounting/reports", token, body)
		app.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusConflict,
			wantData: marchallObj(t, httpErr{Error: accounting.ErrMonthExists.Error()}),
		}, rec)
	})

	t.Run("History", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/accounting/reports", token)
		app.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v", rec.Code)
		}
		var refs []accounting.ReportRef
		if err := json.Unmarshal(rec.Body.Bytes(), &refs); err != nil {
			t.Fatalf("unmarshalling refs failed: %v", err)
		}
		if assert.Equal(t, 1, len(refs)) {
			assert.Equal(t, "2026-03", string(refs[0].Month))
		}
	})

	t.Run("Retrieve", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/accounting/reports/2026-03", token)
		app.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("failed! code = %v", rec.Code)
		}
	})

	t.Run("Unknown month", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/accounting/reports/2025-01", token)
		app.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"})}, rec)
	})

	t.Run("Download PDF", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/accounting/reports/2026-03/pdf", token)
		app.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body %s", rec.Code, rec.Body.String())
		}
		assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
		assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "report-2026-03.pdf")
		assert.NotEmpty(t, rec.Body.Bytes())
	})
}
