package accounting

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"

	"github.com/acadex/backend/core"
)

// LineStatus discriminates the two kinds of report lines.
type LineStatus int

const (
	// StatusNormal lines are backed by an enrollment and split the
	// teacher/studio shares from hours and rates.
	StatusNormal LineStatus = 1
	// StatusManual lines are bonuses entered by hand; the amount goes
	// to the teacher in full.
	StatusManual LineStatus = 2
)

// ReportLine is one enrollment (or manual bonus) row of a professor's
// payout report.
type ReportLine struct {
	ID           string      `json:"id"`
	EnrollmentID null.String `json:"enrollmentId"`
	Period       string      `json:"period"`
	Plan         string      `json:"plan"`
	StudentName  string      `json:"studentName"`

	Amount       decimal.Decimal `json:"amount"`
	TotalHours   decimal.Decimal `json:"totalHours"`
	PricePerHour decimal.Decimal `json:"pricePerHour"`
	PayPerHour   decimal.Decimal `json:"pPerHour"`
	HoursSeen    decimal.Decimal `json:"hoursSeen"`
	Balance      decimal.Decimal `json:"balance"`
	Status       LineStatus      `json:"status"`

	// derived; recomputed on every pass
	TotalTeacher     decimal.Decimal `json:"totalTeacher"`
	TotalBespoke     decimal.Decimal `json:"totalBespoke"`
	BalanceRemaining decimal.Decimal `json:"balanceRemaining"`
}

// Subtotals accumulates a professor's line totals.
type Subtotals struct {
	TotalTeacher     decimal.Decimal `json:"totalTeacher"`
	TotalBespoke     decimal.Decimal `json:"totalBespoke"`
	BalanceRemaining decimal.Decimal `json:"balanceRemaining"`
}

// ProfessorReport is one professor's section of the monthly report.
type ProfessorReport struct {
	ProfessorID     string       `json:"professorId"`
	ProfessorName   string       `json:"professorName"`
	ReportDateRange string       `json:"reportDateRange"`
	Lines           []ReportLine `json:"lines"`
	Subtotals       Subtotals    `json:"subtotals"`
}

// SpecialLine is a row of the flat-payment professor's section.
type SpecialLine struct {
	ID           string      `json:"id"`
	EnrollmentID null.String `json:"enrollmentId"`
	Period       string      `json:"period"`
	Plan         string      `json:"plan"`
	StudentName  string      `json:"studentName"`

	Amount     decimal.Decimal `json:"amount"`
	TotalHours decimal.Decimal `json:"totalHours"`
	HoursSeen  decimal.Decimal `json:"hoursSeen"`
	OldBalance decimal.Decimal `json:"oldBalance"`
	Payment    decimal.Decimal `json:"payment"`

	// derived
	Total            decimal.Decimal `json:"total"`
	BalanceRemaining decimal.Decimal `json:"balanceRemaining"`
}

type SpecialSubtotals struct {
	Total            decimal.Decimal `json:"total"`
	BalanceRemaining decimal.Decimal `json:"balanceRemaining"`
}

type SpecialReport struct {
	ProfessorID   string           `json:"professorId"`
	ProfessorName string           `json:"professorName"`
	Lines         []SpecialLine    `json:"lines"`
	Subtotals     SpecialSubtotals `json:"subtotals"`
}

// Excedent is an overage row outside any professor's report, amounts
// the studio keeps.
type Excedent struct {
	ID           string      `json:"id"`
	EnrollmentID null.String `json:"enrollmentId"`
	StudentName  string      `json:"studentName"`

	Amount       decimal.Decimal `json:"amount"`
	HoursSeen    decimal.Decimal `json:"hoursSeen"`
	PricePerHour decimal.Decimal `json:"pricePerHour"`
	Notes        string          `json:"notes"`

	// derived
	Total decimal.Decimal `json:"total"`
}

type GrandTotals struct {
	TotalTeacher     decimal.Decimal `json:"totalTeacher"`
	TotalBespoke     decimal.Decimal `json:"totalBespoke"`
	BalanceRemaining decimal.Decimal `json:"balanceRemaining"`
}

// Summary reconciles what the system computed against the bank.
type Summary struct {
	SystemTotal decimal.Decimal `json:"systemTotal"`
	RealTotal   decimal.Decimal `json:"realTotal"`
	Difference  decimal.Decimal `json:"difference"`
}

// MonthlyReport is the persisted payout reconciliation for one month.
type MonthlyReport struct {
	ID             string            `json:"id"`
	Month          core.Month        `json:"month"`
	Reports        []ProfessorReport `json:"reports"`
	Special        *SpecialReport    `json:"special,omitempty"`
	Excedents      []Excedent        `json:"excedents"`
	ExcedentsTotal decimal.Decimal   `json:"excedentsTotal"`
	GrandTotals    GrandTotals       `json:"grandTotals"`
	Summary        Summary           `json:"summary"`
	CreatedAt      time.Time         `json:"createdAt"` // UTC
}

// ReportRef is the listing entry the history page consumes.
type ReportRef struct {
	ID        string     `json:"id"`
	Month     core.Month `json:"month"`
	CreatedAt time.Time  `json:"createdAt"`
}
