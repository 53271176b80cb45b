package main

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/acadex/backend/core/user"
	dummydb "github.com/acadex/backend/storage/database/dummy"
)

func setup(t *testing.T) *commandLine {
	t.Helper()

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open() failed: %v", err)
	}
	return &commandLine{
		usrRepo: dummydb.NewUserRepository(db),
	}
}

type cliTest struct {
	name       string
	args       []string // without program name
	password   string
	wantErr    error
	wantErrStr string
}

func runTests(t *testing.T, cli *commandLine, tests []cliTest) {
	t.Helper()

	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			readPasswordFunc = func(fd int) ([]byte, error) {
				return []byte(tt.password), nil
			}

			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				if err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
			case tt.wantErrStr != "":
				if err == nil || err.Error() != tt.wantErrStr {
					t.Errorf("cli.run() error = %v, wantErrStr %s", err, tt.wantErrStr)
				}
			case err != nil:
				t.Errorf("cli.run() unexpected error = %v", err)
			}
		})
	}
}

func Test_commandLine_noArgs(t *testing.T) {
	cli := setup(t)

	runTests(t, cli, []cliTest{
		{name: "no subcommand", args: []string{}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"lol"}, wantErr: errHelp},
	})
}

func Test_commandLine_addUser(t *testing.T) {
	cli := setup(t)

	runTests(t, cli, []cliTest{
		{name: "no flags", args: []string{"adduser"}, wantErr: errHelp},
		{name: "missing email", args: []string{"adduser", "-username", "root01"}, password: "S3cr3tPwd", wantErr: errHelp},
		{name: "empty password", args: []string{"adduser", "-username", "root01", "-email", "root@test.ac"}, wantErr: errHelp},
		{name: "create", args: []string{"adduser", "-username", "root01", "-email", "root@test.ac", "-admin"}, password: "S3cr3tPwd"},
		{name: "update existing", args: []string{"adduser", "-username", "root01", "-email", "root@test.ac"}, password: "N3wS3cr3t"},
	})

	usr, err := cli.usrRepo.GetUserByUsernameOrEmail(context.Background(), "root01")
	if err != nil {
		t.Fatalf("GetUserByUsernameOrEmail() failed: %v", err)
	}
	if !usr.IsAdmin() {
		t.Errorf("expected admin roles, got %v", usr.Roles)
	}
	if err := usr.CheckPassword("N3wS3cr3t"); err != nil {
		t.Errorf("CheckPassword() failed after update: %v", err)
	}
}

func Test_commandLine_resetPassword(t *testing.T) {
	cli := setup(t)

	runTests(t, cli, []cliTest{
		{name: "no flags", args: []string{"resetpassword"}, wantErr: errHelp},
		{
			name: "unknown user", args: []string{"resetpassword", "-username", "ghost"}, password: "S3cr3tPwd",
			wantErr: user.ErrNotFound,
		},
		{name: "create first", args: []string{"adduser", "-username", "root01", "-email", "root@test.ac"}, password: "S3cr3tPwd"},
		{name: "reset", args: []string{"resetpassword", "-username", "root01"}, password: "An0therPwd"},
	})

	usr, err := cli.usrRepo.GetUserByUsernameOrEmail(context.Background(), "root01")
	if err != nil {
		t.Fatalf("GetUserByUsernameOrEmail() failed: %v", err)
	}
	if err := usr.CheckPassword("An0therPwd"); err != nil {
		t.Errorf("CheckPassword() failed after reset: %v", err)
	}
}

func Test_commandLine_migrate(t *testing.T) {
	cli := setup(t)

	var called bool
	migrateFunc = func(db *sqlx.DB) error {
		called = true
		return nil
	}

	runTests(t, cli, []cliTest{
		{name: "migrate", args: []string{"migrate"}},
	})
	if !called {
		t.Error("expected migrateFunc to be called")
	}
}
