package accounting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acadex/backend/core"
)

func testDraft() *Draft {
	return NewDraft(MonthlyReport{
		Month: core.Month("2026-01"),
		Reports: []ProfessorReport{{
			ProfessorID:     "p1",
			ProfessorName:   "Ana",
			ReportDateRange: "January 1 2026 - January 31 2026",
			Lines:           []ReportLine{normalLine("100", "20", "15", "4", "0")},
		}},
	})
}

func TestDraftAddBonus(t *testing.T) {
	d := testDraft()

	id, err := d.AddBonus("p1")
	assert.NoError(t, err)
	assert.NotEmpty(t, id)

	assert.Len(t, d.Reports[0].Lines, 2)
	bonus := d.Reports[0].Lines[1]
	assert.Equal(t, StatusManual, bonus.Status)
	assert.Equal(t, "Bono Manual", bonus.StudentName)
	assert.Equal(t, "N/A", bonus.Plan)
	assert.Equal(t, "January 1 - January 31", bonus.Period)
	assert.True(t, bonus.Amount.IsZero())
	assert.False(t, bonus.EnrollmentID.Valid)

	_, err = d.AddBonus("nope")
	assert.ErrorIs(t, err, ErrProfessorNotFound)
}

func TestDraftBonusAffectsSubtotals(t *testing.T) {
	d := testDraft()
	id, err := d.AddBonus("p1")
	assert.NoError(t, err)
	assert.NoError(t, d.SetLineValue(id, LineAmount, dec("50")))

	rpt := d.Compute()
	sub := rpt.Reports[0].Subtotals
	assert.True(t, sub.TotalTeacher.Equal(dec("110")))
	assert.True(t, sub.TotalBespoke.Equal(dec("20")))
	assert.True(t, sub.BalanceRemaining.Equal(dec("20")))
}

func TestDraftRemoveBonus(t *testing.T) {
	d := testDraft()
	normalID := d.Reports[0].Lines[0].ID
	id, _ := d.AddBonus("p1")

	assert.ErrorIs(t, d.RemoveBonus(normalID), ErrLineNotManual)
	assert.ErrorIs(t, d.RemoveBonus("missing"), ErrLineNotFound)

	assert.NoError(t, d.RemoveBonus(id))
	assert.Len(t, d.Reports[0].Lines, 1)
}

func TestDraftSetLineText(t *testing.T) {
	d := testDraft()
	normalID := d.Reports[0].Lines[0].ID
	id, _ := d.AddBonus("p1")

	assert.ErrorIs(t, d.SetLineText(normalID, LineStudentName, "x"), ErrLineNotManual)

	assert.NoError(t, d.SetLineText(id, LineStudentName, "Bono extra clases"))
	assert.Equal(t, "Bono extra clases", d.Reports[0].Lines[1].StudentName)
}

func TestDraftExcedents(t *testing.T) {
	d := testDraft()

	a := d.AddExcedent()
	b := d.AddExcedent()
	assert.NotEqual(t, a, b)

	assert.NoError(t, d.SetExcedentValue(a, ExcedentHoursSeen, dec("2")))
	assert.NoError(t, d.SetExcedentValue(a, ExcedentPricePerHour, dec("10")))
	assert.NoError(t, d.SetExcedentValue(b, ExcedentHoursSeen, dec("3")))
	assert.NoError(t, d.SetExcedentValue(b, ExcedentPricePerHour, dec("5")))

	rpt := d.Compute()
	assert.True(t, rpt.ExcedentsTotal.Equal(dec("35")))

	// removal by id survives reordering
	d.Excedents[0], d.Excedents[1] = d.Excedents[1], d.Excedents[0]
	assert.NoError(t, d.RemoveExcedent(a))
	assert.Len(t, d.Excedents, 1)
	assert.Equal(t, b, d.Excedents[0].ID)

	assert.ErrorIs(t, d.RemoveExcedent("missing"), ErrExcedentNotFound)
}

func TestDraftSetExcedentEnrollment(t *testing.T) {
	d := testDraft()
	id := d.AddExcedent()

	assert.NoError(t, d.SetExcedentEnrollment(id, "enr-1", "Maria Perez, Jose Diaz"))
	exc := d.Excedents[0]
	assert.Equal(t, "enr-1", exc.EnrollmentID.String)
	assert.Equal(t, "Maria Perez, Jose Diaz", exc.StudentName)
}

func TestDraftSetRealTotal(t *testing.T) {
	d := testDraft()
	d.SetRealTotal(dec("20"))

	rpt := d.Compute()
	// single normal line leaves 20 on balance, matching the bank
	assert.True(t, rpt.Summary.SystemTotal.Equal(dec("20")))
	assert.True(t, rpt.Summary.Difference.IsZero())
}
