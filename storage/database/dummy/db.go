// Package dummydb provides in-memory repositories for tests and for
// running the API without a database.
package dummydb

import (
	"sync"

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
	DB struct {
		user       *userTable
		student    *studentTable
		professor  *professorTable
		plan       *planTable
		enrollment *enrollmentTable
		paymethod  *paymethodTable
		currency   *currencyTable
		income     *incomeTable
		payout     *payoutTable
		report     *reportTable
	}

	userTable struct {
		sync.RWMutex
		table map[string]*user.User
	}
	studentTable struct {
		sync.RWMutex
		table map[string]*student.Student
	}
	professorTable struct {
		sync.RWMutex
		table map[string]*professor.Professor
	}
	planTable struct {
		sync.RWMutex
		table map[string]*plan.Plan
	}
	enrollmentTable struct {
		sync.RWMutex
		table map[string]*enrollment.Enrollment
	}
	paymethodTable struct {
		sync.RWMutex
		table map[string]*paymethod.PaymentMethod
	}
	currencyTable struct {
		sync.RWMutex
		table map[string]*currency.Currency
	}
	incomeTable struct {
		sync.RWMutex
		table map[string]*income.Income
	}
	payoutTable struct {
		sync.RWMutex
		table map[string]*payout.Payout
	}
	reportTable struct {
		sync.RWMutex
		table map[core.Month]*accounting.MonthlyReport
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:       &userTable{table: make(map[string]*user.User)},
		student:    &studentTable{table: make(map[string]*student.Student)},
		professor:  &professorTable{table: make(map[string]*professor.Professor)},
		plan:       &planTable{table: make(map[string]*plan.Plan)},
		enrollment: &enrollmentTable{table: make(map[string]*enrollment.Enrollment)},
		paymethod:  &paymethodTable{table: make(map[string]*paymethod.PaymentMethod)},
		currency:   &currencyTable{table: make(map[string]*currency.Currency)},
		income:     &incomeTable{table: make(map[string]*income.Income)},
		payout:     &payoutTable{table: make(map[string]*payout.Payout)},
		report:     &reportTable{table: make(map[core.Month]*accounting.MonthlyReport)},
	}
	return db, nil
}
