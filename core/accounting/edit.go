package accounting

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"

	"github.com/acadex/backend/core"
)

var (
	ErrProfessorNotFound = errors.New("professor report not found")
	ErrLineNotFound      = errors.New("report line not found")
	ErrLineNotManual     = errors.New("only manual lines can be changed this way")
	ErrExcedentNotFound  = errors.New("excedent not found")
)

// LineField tags the editable numeric fields of a report line.
type LineField int

const (
	LineAmount LineField = iota
	LineTotalHours
	LinePricePerHour
	LinePayPerHour
	LineHoursSeen
	LineBalance
)

// LineTextField tags the text fields editable on manual lines.
type LineTextField int

const (
	LinePeriod LineTextField = iota
	LinePlan
	LineStudentName
)

// SpecialField tags the editable numeric fields of a special line.
type SpecialField int

const (
	SpecialAmount SpecialField = iota
	SpecialTotalHours
	SpecialHoursSeen
	SpecialOldBalance
	SpecialPayment
)

// ExcedentField tags the editable numeric fields of an excedent row.
type ExcedentField int

const (
	ExcedentAmount ExcedentField = iota
	ExcedentHoursSeen
	ExcedentPricePerHour
)

// bonus periods drop the year tokens from the report date range
var yearRe = regexp.MustCompile(`\s\d{4}`)

// Draft is a monthly report being edited before save. Edits address rows
// by their generated ids, never by position, so reordering on the client
// cannot desync state. Derived fields are left stale until Compute.
type Draft struct {
	Month     core.Month
	Reports   []ProfessorReport
	Special   *SpecialReport
	Excedents []Excedent
	RealTotal decimal.Decimal
}

// NewDraft starts an editing session over a generated report.
func NewDraft(rpt MonthlyReport) *Draft {
	return &Draft{
		Month:     rpt.Month,
		Reports:   rpt.Reports,
		Special:   rpt.Special,
		Excedents: rpt.Excedents,
		RealTotal: rpt.Summary.RealTotal,
	}
}

// Compute rederives every total over the draft's current rows.
func (d *Draft) Compute() MonthlyReport {
	rpt := Compute(d.Reports, d.Special, d.Excedents, d.RealTotal)
	rpt.Month = d.Month
	return rpt
}

func (d *Draft) findLine(lineID string) *ReportLine {
	for i := range d.Reports {
		for j := range d.Reports[i].Lines {
			if d.Reports[i].Lines[j].ID == lineID {
				return &d.Reports[i].Lines[j]
			}
		}
	}
	return nil
}

func (d *Draft) SetLineValue(lineID string, field LineField, val decimal.Decimal) error {
	ln := d.findLine(lineID)
	if ln == nil {
		return ErrLineNotFound
	}
	switch field {
	case LineAmount:
		ln.Amount = val
	case LineTotalHours:
		ln.TotalHours = val
	case LinePricePerHour:
		ln.PricePerHour = val
	case LinePayPerHour:
		ln.PayPerHour = val
	case LineHoursSeen:
		ln.HoursSeen = val
	case LineBalance:
		ln.Balance = val
	default:
		return errors.Errorf("unknown line field %d", field)
	}
	return nil
}

// SetLineText edits a line's labels. Normal lines carry labels resolved
// from their enrollment and are not editable.
func (d *Draft) SetLineText(lineID string, field LineTextField, val string) error {
	ln := d.findLine(lineID)
	if ln == nil {
		return ErrLineNotFound
	}
	if ln.Status != StatusManual {
		return ErrLineNotManual
	}
	switch field {
	case LinePeriod:
		ln.Period = val
	case LinePlan:
		ln.Plan = val
	case LineStudentName:
		ln.StudentName = val
	default:
		return errors.Errorf("unknown line text field %d", field)
	}
	return nil
}

// AddBonus appends a manual bonus line to a professor's report and
// returns the new line's id.
func (d *Draft) AddBonus(professorID string) (string, error) {
	for i := range d.Reports {
		rep := &d.Reports[i]
		if rep.ProfessorID != professorID {
			continue
		}
		ln := ReportLine{
			ID:          uuid.New().String(),
			Period:      yearRe.ReplaceAllString(rep.ReportDateRange, ""),
			Plan:        "N/A",
			StudentName: "Bono Manual",
			Status:      StatusManual,
		}
		rep.Lines = append(rep.Lines, ln)
		return ln.ID, nil
	}
	return "", ErrProfessorNotFound
}

// RemoveBonus removes a manual line by id. Normal lines cannot be removed.
func (d *Draft) RemoveBonus(lineID string) error {
	for i := range d.Reports {
		rep := &d.Reports[i]
		for j := range rep.Lines {
			if rep.Lines[j].ID != lineID {
				continue
			}
			if rep.Lines[j].Status != StatusManual {
				return ErrLineNotManual
			}
			rep.Lines = append(rep.Lines[:j], rep.Lines[j+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

func (d *Draft) findSpecialLine(lineID string) *SpecialLine {
	if d.Special == nil {
		return nil
	}
	for i := range d.Special.Lines {
		if d.Special.Lines[i].ID == lineID {
			return &d.Special.Lines[i]
		}
	}
	return nil
}

func (d *Draft) SetSpecialValue(lineID string, field SpecialField, val decimal.Decimal) error {
	ln := d.findSpecialLine(lineID)
	if ln == nil {
		return ErrLineNotFound
	}
	switch field {
	case SpecialAmount:
		ln.Amount = val
	case SpecialTotalHours:
		ln.TotalHours = val
	case SpecialHoursSeen:
		ln.HoursSeen = val
	case SpecialOldBalance:
		ln.OldBalance = val
	case SpecialPayment:
		ln.Payment = val
	default:
		return errors.Errorf("unknown special field %d", field)
	}
	return nil
}

// AddExcedent appends a zeroed excedent row and returns its id.
func (d *Draft) AddExcedent() string {
	exc := Excedent{ID: uuid.New().String()}
	d.Excedents = append(d.Excedents, exc)
	return exc.ID
}

func (d *Draft) RemoveExcedent(id string) error {
	for i := range d.Excedents {
		if d.Excedents[i].ID == id {
			d.Excedents = append(d.Excedents[:i], d.Excedents[i+1:]...)
			return nil
		}
	}
	return ErrExcedentNotFound
}

func (d *Draft) findExcedent(id string) *Excedent {
	for i := range d.Excedents {
		if d.Excedents[i].ID == id {
			return &d.Excedents[i]
		}
	}
	return nil
}

func (d *Draft) SetExcedentValue(id string, field ExcedentField, val decimal.Decimal) error {
	exc := d.findExcedent(id)
	if exc == nil {
		return ErrExcedentNotFound
	}
	switch field {
	case ExcedentAmount:
		exc.Amount = val
	case ExcedentHoursSeen:
		exc.HoursSeen = val
	case ExcedentPricePerHour:
		exc.PricePerHour = val
	default:
		return errors.Errorf("unknown excedent field %d", field)
	}
	return nil
}

func (d *Draft) SetExcedentNotes(id, notes string) error {
	exc := d.findExcedent(id)
	if exc == nil {
		return ErrExcedentNotFound
	}
	exc.Notes = notes
	return nil
}

// SetExcedentEnrollment attaches an enrollment to an excedent row,
// stamping the students' display names at selection time.
func (d *Draft) SetExcedentEnrollment(id, enrollmentID, studentNames string) error {
	exc := d.findExcedent(id)
	if exc == nil {
		return ErrExcedentNotFound
	}
	exc.EnrollmentID = null.StringFrom(enrollmentID)
	exc.StudentName = studentNames
	return nil
}

func (d *Draft) SetRealTotal(val decimal.Decimal) {
	d.RealTotal = val
}
