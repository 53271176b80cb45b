package accounting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

func normalLine(amount, pricePerHour, payPerHour, hoursSeen, balance string) ReportLine {
	return ReportLine{
		ID:           "ln",
		Status:       StatusNormal,
		Amount:       dec(amount),
		PricePerHour: dec(pricePerHour),
		PayPerHour:   dec(payPerHour),
		HoursSeen:    dec(hoursSeen),
		Balance:      dec(balance),
	}
}

func TestComputeNormalLine(t *testing.T) {
	tests := []struct {
		name                                  string
		line                                  ReportLine
		wantTeacher, wantBespoke, wantBalance string
	}{
		{
			name:        "typical split",
			line:        normalLine("100", "20", "15", "4", "0"),
			wantTeacher: "60", wantBespoke: "20", wantBalance: "20",
		},
		{
			name:        "zero hours",
			line:        normalLine("100", "20", "15", "0", "0"),
			wantTeacher: "0", wantBespoke: "0", wantBalance: "100",
		},
		{
			name:        "negative balance carried in",
			line:        normalLine("100", "20", "15", "4", "-30"),
			wantTeacher: "60", wantBespoke: "20", wantBalance: "-10",
		},
		{
			name:        "fractional hours keep exact decimals",
			line:        normalLine("50.5", "12.5", "10.25", "2.5", "1.75"),
			wantTeacher: "25.625", wantBespoke: "5.625", wantBalance: "21",
		},
		{
			name:        "pay rate above student rate",
			line:        normalLine("0", "10", "12", "3", "0"),
			wantTeacher: "36", wantBespoke: "-6", wantBalance: "-30",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ln := tt.line
			computeLine(&ln)
			assert.True(t, ln.TotalTeacher.Equal(dec(tt.wantTeacher)), "totalTeacher = %s", ln.TotalTeacher)
			assert.True(t, ln.TotalBespoke.Equal(dec(tt.wantBespoke)), "totalBespoke = %s", ln.TotalBespoke)
			assert.True(t, ln.BalanceRemaining.Equal(dec(tt.wantBalance)), "balanceRemaining = %s", ln.BalanceRemaining)
		})
	}
}

func TestComputeManualLine(t *testing.T) {
	// other fields must not leak into a manual line's totals
	ln := ReportLine{
		ID:           "bonus",
		Status:       StatusManual,
		Amount:       dec("50"),
		PricePerHour: dec("99"),
		PayPerHour:   dec("99"),
		HoursSeen:    dec("99"),
		Balance:      dec("99"),
	}
	computeLine(&ln)
	assert.True(t, ln.TotalTeacher.Equal(dec("50")))
	assert.True(t, ln.TotalBespoke.IsZero())
	assert.True(t, ln.BalanceRemaining.IsZero())
}

func TestComputeSpecialLine(t *testing.T) {
	ln := SpecialLine{Amount: dec("200"), Payment: dec("150")}
	computeSpecialLine(&ln)
	assert.True(t, ln.Total.Equal(dec("150")))
	assert.True(t, ln.BalanceRemaining.Equal(dec("50")))
}

func TestComputeSubtotals(t *testing.T) {
	reports := []ProfessorReport{
		{
			ProfessorID: "p1",
			Lines: []ReportLine{
				normalLine("100", "20", "15", "4", "0"),
				{ID: "b1", Status: StatusManual, Amount: dec("50")},
			},
		},
		{ProfessorID: "p2"}, // no lines
	}

	rpt := Compute(reports, nil, nil, decimal.Zero)

	sub := rpt.Reports[0].Subtotals
	assert.True(t, sub.TotalTeacher.Equal(dec("110")))
	assert.True(t, sub.TotalBespoke.Equal(dec("20")))
	assert.True(t, sub.BalanceRemaining.Equal(dec("20")))

	empty := rpt.Reports[1].Subtotals
	assert.True(t, empty.TotalTeacher.IsZero())
	assert.True(t, empty.TotalBespoke.IsZero())
	assert.True(t, empty.BalanceRemaining.IsZero())

	assert.True(t, rpt.GrandTotals.TotalTeacher.Equal(dec("110")))
	assert.True(t, rpt.GrandTotals.BalanceRemaining.Equal(dec("20")))
}

func TestComputeIdempotent(t *testing.T) {
	reports := []ProfessorReport{{
		ProfessorID: "p1",
		Lines: []ReportLine{
			normalLine("100", "20", "15", "4", "0"),
			normalLine("80", "18", "12", "3.5", "-5"),
			{ID: "b1", Status: StatusManual, Amount: dec("25")},
		},
	}}
	special := &SpecialReport{Lines: []SpecialLine{
		{ID: "s1", Amount: dec("200"), Payment: dec("150")},
	}}
	excedents := []Excedent{
		{ID: "e1", HoursSeen: dec("2"), PricePerHour: dec("10")},
	}

	first := Compute(reports, special, excedents, dec("480"))
	second := Compute(first.Reports, first.Special, first.Excedents, first.Summary.RealTotal)

	assert.Equal(t, first.GrandTotals, second.GrandTotals)
	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, first.ExcedentsTotal, second.ExcedentsTotal)
	for i := range first.Reports {
		assert.Equal(t, first.Reports[i].Subtotals, second.Reports[i].Subtotals)
	}
	assert.Equal(t, first.Special.Subtotals, second.Special.Subtotals)
}

func TestComputeExcedentsTotal(t *testing.T) {
	a := Excedent{ID: "a", HoursSeen: dec("2"), PricePerHour: dec("10")}
	b := Excedent{ID: "b", HoursSeen: dec("3"), PricePerHour: dec("5")}

	rpt := Compute(nil, nil, []Excedent{a, b}, decimal.Zero)
	assert.True(t, rpt.ExcedentsTotal.Equal(dec("35")))
	assert.True(t, rpt.Excedents[0].Total.Equal(dec("20")))
	assert.True(t, rpt.Excedents[1].Total.Equal(dec("15")))

	// order does not matter
	swapped := Compute(nil, nil, []Excedent{b, a}, decimal.Zero)
	assert.True(t, swapped.ExcedentsTotal.Equal(dec("35")))
}

func TestComputeReconciliation(t *testing.T) {
	// grand balance 430 + special balance 50 + excedents 20 = 500
	reports := []ProfessorReport{{
		ProfessorID: "p1",
		Lines:       []ReportLine{normalLine("510", "20", "15", "4", "0")},
	}}
	special := &SpecialReport{Lines: []SpecialLine{
		{ID: "s1", Amount: dec("200"), Payment: dec("150")},
	}}
	excedents := []Excedent{{ID: "e1", HoursSeen: dec("2"), PricePerHour: dec("10")}}

	balanced := Compute(reports, special, excedents, dec("500"))
	assert.True(t, balanced.Summary.SystemTotal.Equal(dec("500")))
	assert.True(t, balanced.Summary.Difference.IsZero())

	short := Compute(reports, special, excedents, dec("480"))
	assert.True(t, short.Summary.Difference.Equal(dec("20")))
}

func TestComputeDoesNotMutateInputs(t *testing.T) {
	lines := []ReportLine{normalLine("100", "20", "15", "4", "0")}
	reports := []ProfessorReport{{ProfessorID: "p1", Lines: lines}}

	_ = Compute(reports, nil, nil, decimal.Zero)

	assert.True(t, lines[0].TotalTeacher.IsZero(), "caller's line was mutated")
	assert.True(t, reports[0].Subtotals.TotalTeacher.IsZero())
}
