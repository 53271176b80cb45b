package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/acadex/backend/core/plan"
	"github.com/acadex/backend/core/user"
)

func Test_planApi_lifecycle(t *testing.T) {
	app := setup(t)
	admin := createUser(t, app.userRepo, "Admin", "admin1", "admin@test.ac", "S3cr3tPwd", []string{user.RoleAdmin}, true)
	token := getToken(t, admin)

	t.Run("Auth required", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/plans")
		app.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}, rec)
	})

	t.Run("Name required", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/plans", token, marchallObj(t, plan.NewPlan{}))
		app.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusBadRequest)
		}
	})

	var pln plan.Plan
	t.Run("Create", func(t *testing.T) {
		data := marchallObj(t, plan.NewPlan{
			Name:         "Standard 20h",
			Duration:     "2 months",
			Hours:        decimal.NewFromInt(20),
			Price:        decimal.NewFromInt(400),
			PricePerHour: decimal.NewFromInt(20),
		})
		req, rec := newAuthRequest(http.MethodPost, "/v1/plans", token, data)
		app.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("failed! code = %v; body %s", rec.Code, rec.Body.String())
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &pln); err != nil {
			t.Fatalf("unmarshalling plan failed: %v", err)
		}
		assert.NotEmpty(t, pln.ID)
		assert.True(t, pln.IsActive)
	})

	t.Run("Query", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/plans", token)
		app.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantData: marchallList(t, pln)}, rec)
	})

	t.Run("Retrieve", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/plans/"+pln.ID, token)
		app.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantData: marchallObj(t, pln)}, rec)
	})

	t.Run("Retrieve unknown", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/plans/404", token)
		app.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"})}, rec)
	})

	t.Run("Update", func(t *testing.T) {
		data := marchallObj(t, plan.UpdatePlan{NewPlan: plan.NewPlan{
			Name:         "Standard 24h",
			Hours:        decimal.NewFromInt(24),
			Price:        decimal.NewFromInt(480),
			PricePerHour: decimal.NewFromInt(20),
		}})
		req, rec := newAuthRequest(http.MethodPut, "/v1/plans/"+pln.ID, token, data)
		app.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body %s", rec.Code, rec.Body.String())
		}
		var got plan.Plan
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshalling plan failed: %v", err)
		}
		assert.Equal(t, "Standard 24h", got.Name)
		assert.True(t, got.Hours.Equal(decimal.NewFromInt(24)))
	})

	t.Run("Archive", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPatch, "/v1/plans/"+pln.ID+"/archive", token)
		app.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("failed! code = %v", rec.Code)
		}

		req, rec = newAuthRequest(http.MethodGet, "/v1/plans/"+pln.ID, token)
		app.server.ServeHTTP(rec, req)
		var got plan.Plan
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshalling plan failed: %v", err)
		}
		assert.False(t, got.IsActive)
	})

	t.Run("Restore", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPatch, "/v1/plans/"+pln.ID+"/restore", token)
		app.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("failed! code = %v", rec.Code)
		}

		req, rec = newAuthRequest(http.MethodGet, "/v1/plans/"+pln.ID, token)
		app.server.ServeHTTP(rec, req)
		var got plan.Plan
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshalling plan failed: %v", err)
		}
		assert.True(t, got.IsActive)
	})
}
