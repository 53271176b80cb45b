package echoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/mail"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

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
	dummydb "github.com/acadex/backend/storage/database/dummy"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

func TestMain(m *testing.M) {
	conf := &core.Config{
		Env:              "TEST",
		AppName:          "Academia",
		TestMode:         true,
		SecretKey:        "secret",
		DefaultFromEmail: mail.Address{Name: "Academia", Address: "noreply@localhost"},
	}
	conf.Server.JWTExpirationDelta = 10 * time.Minute
	conf.Server.JWTRefreshExpirationDelta = 4 * time.Hour
	core.Conf = conf

	os.Exit(m.Run())
}

// testApp bundles the Server with the repositories backing it so tests
// can seed data directly.
type testApp struct {
	server Server

	userRepo       user.Repository
	studentRepo    student.Repository
	professorRepo  professor.Repository
	planRepo       plan.Repository
	enrollmentRepo enrollment.Repository
	payMethodRepo  paymethod.Repository
	currencyRepo   currency.Repository
	incomeRepo     income.Repository
	payoutRepo     payout.Repository
	reportRepo     accounting.Repository
}

func setup(t *testing.T) *testApp {
	t.Helper()

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open() failed: %v", err)
	}

	app := &testApp{
		userRepo:       dummydb.NewUserRepository(db),
		studentRepo:    dummydb.NewStudentRepository(db),
		professorRepo:  dummydb.NewProfessorRepository(db),
		planRepo:       dummydb.NewPlanRepository(db),
		enrollmentRepo: dummydb.NewEnrollmentRepository(db),
		payMethodRepo:  dummydb.NewPaymentMethodRepository(db),
		currencyRepo:   dummydb.NewCurrencyRepository(db),
		incomeRepo:     dummydb.NewIncomeRepository(db),
		payoutRepo:     dummydb.NewPayoutRepository(db),
		reportRepo:     dummydb.NewReportRepository(db),
	}

	mailSvc := emailsvc.NewConsoleServiceMock()
	logger := logsvc.NewStdLogger(nil)
	logger.Enable(false)

	accountingSvc := accounting.NewService(
		app.reportRepo,
		app.professorRepo,
		app.enrollmentRepo,
		app.planRepo,
		app.incomeRepo,
		app.payoutRepo,
		pdfsvc.NewReportRenderer(),
		mailSvc,
		logger,
	)

	app.server = NewServer(&Options{
		DisableReqLogs: true,
		Logger:         logger,
		UserSvc:        user.NewService(app.userRepo),
		StudentSvc:     student.NewService(app.studentRepo),
		ProfessorSvc:   professor.NewService(app.professorRepo),
		PlanSvc:        plan.NewService(app.planRepo),
		EnrollmentSvc:  enrollment.NewService(app.enrollmentRepo),
		PayMethodSvc:   paymethod.NewService(app.payMethodRepo),
		CurrencySvc:    currency.NewService(app.currencyRepo),
		IncomeSvc:      income.NewService(app.incomeRepo),
		PayoutSvc:      payout.NewService(app.payoutRepo),
		AccountingSvc:  accountingSvc,
	})
	return app
}

func createUser(t *testing.T, repo user.Repository, name, uname, email, pwd string, roles []string, isActive bool) user.User {
	t.Helper()

	now := time.Now().UTC()
	usr := user.User{
		ID:        uuid.New().String(),
		Name:      name,
		Username:  uname,
		Email:     email,
		IsActive:  isActive,
		Roles:     roles,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := usr.SetPassword(pwd); err != nil {
		t.Fatalf("SetPassword() failed: %v", err)
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, usr user.User) string {
	t.Helper()

	claims := GetUserClaims(usr)
	token, err := GenerateToken(claims)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()

	if tt.wantCode == 0 {
		tt.wantCode = http.StatusOK
	}
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func TestHome(t *testing.T) {
	app := setup(t)

	req, rec := newRequest(http.MethodGet, "/")
	app.server.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusOK)
	}
}
