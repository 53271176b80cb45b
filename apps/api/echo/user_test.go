package echoapi

import (
	"net/http"
	"testing"

	"github.com/acadex/backend/core/user"
)

func Test_userApi_login(t *testing.T) {
	app := setup(t)

	createUser(t, app.userRepo, "Admin", "admin1", "admin@test.ac", "S3cr3tPwd", []string{user.RoleAdmin}, true)
	createUser(t, app.userRepo, "Sleeper", "sleeper1", "sleeper@test.ac", "S3cr3tPwd", nil, false)

	tests := []httpTest{
		{
			name: "Valid credentials", body: marchallObj(t, LoginRequest{Username: "admin1", Password: "S3cr3tPwd"}),
			wantCode: http.StatusOK,
		},
		{
			name: "Login by email", body: marchallObj(t, LoginRequest{Username: "admin@test.ac", Password: "S3cr3tPwd"}),
			wantCode: http.StatusOK,
		},
		{
			name: "Unknown user", body: marchallObj(t, LoginRequest{Username: "nobody", Password: "S3cr3tPwd"}),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "authentication failed"}),
		},
		{
			name: "Wrong password", body: marchallObj(t, LoginRequest{Username: "admin1", Password: "nope"}),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "authentication failed"}),
		},
		{
			name: "Deactivated account", body: marchallObj(t, LoginRequest{Username: "sleeper1", Password: "S3cr3tPwd"}),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Error: "account deactivated"}),
		},
		{
			name: "Missing fields", body: marchallObj(t, LoginRequest{}),
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/users/login", tt.body)
			app.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_userApi_userQuery(t *testing.T) {
	app := setup(t)

	admin := createUser(t, app.userRepo, "Admin", "admin1", "admin@test.ac", "S3cr3tPwd", []string{user.RoleAdmin}, true)
	staff := createUser(t, app.userRepo, "Staff", "staff1", "staff@test.ac", "S3cr3tPwd", []string{user.RoleStaff}, true)

	tests := []httpTest{
		{name: "Auth required", path: "/v1/users", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "Admin required", path: "/v1/users", token: getToken(t, staff), wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		},
		{name: "Get all", path: "/v1/users", token: getToken(t, admin), wantData: marchallList(t, admin, staff)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tt.path, tt.token)
			app.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_userApi_retrieve(t *testing.T) {
	app := setup(t)

	admin := createUser(t, app.userRepo, "Admin", "admin1", "admin@test.ac", "S3cr3tPwd", []string{user.RoleAdmin}, true)
	staff := createUser(t, app.userRepo, "Staff", "staff1", "staff@test.ac", "S3cr3tPwd", []string{user.RoleStaff}, true)

	tests := []httpTest{
		{name: "Own profile", path: "/v1/users/" + staff.ID, token: getToken(t, staff), wantData: marchallObj(t, staff)},
		{name: "Admin can read others", path: "/v1/users/" + staff.ID, token: getToken(t, admin), wantData: marchallObj(t, staff)},
		{
			name: "Staff cannot read others", path: "/v1/users/" + admin.ID, token: getToken(t, staff),
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"}),
		},
		{
			name: "Unknown ID", path: "/v1/users/404", token: getToken(t, admin),
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tt.path, tt.token)
			app.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_userApi_create(t *testing.T) {
	app := setup(t)

	admin := createUser(t, app.userRepo, "Admin", "admin1", "admin@test.ac", "S3cr3tPwd", []string{user.RoleAdmin}, true)

	newUsr := func(uname, email string, roles ...string) []byte {
		return marchallObj(t, user.NewUser{
			Name:            "New User",
			Username:        uname,
			Email:           email,
			Password:        "S3cr3tPwd",
			PasswordConfirm: "S3cr3tPwd",
			Roles:           roles,
		})
	}

	tests := []httpTest{
		{name: "Auth required", body: newUsr("newbie1", "newbie@test.ac"), wantCode: http.StatusUnauthorized},
		{
			name: "Create ok", token: getToken(t, admin), body: newUsr("newbie1", "newbie@test.ac", user.RoleStaff),
			wantCode: http.StatusCreated,
		},
		{
			name: "Duplicate username", token: getToken(t, admin), body: newUsr("newbie1", "other@test.ac"),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, map[string]string{"username": user.ErrUsernameExists.Error()}),
		},
		{
			name: "Cannot escalate roles", token: getToken(t, admin), body: newUsr("newbie2", "newbie2@test.ac", user.RoleAdminOwner),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, map[string]string{"roles": errNoPermsToSetRoles}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/v1/users/register", tt.token, tt.body)
			app.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_userApi_tokenRefresh(t *testing.T) {
	app := setup(t)

	admin := createUser(t, app.userRepo, "Admin", "admin1", "admin@test.ac", "S3cr3tPwd", []string{user.RoleAdmin}, true)

	req, rec := newAuthRequest(http.MethodPost, "/v1/users/token-refresh", getToken(t, admin))
	app.server.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK}, rec)
}
