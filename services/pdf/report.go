// Package pdfsvc renders saved monthly reports as PDF documents.
package pdfsvc

import (
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/acadex/backend/core/accounting"
)

type reportRenderer struct{}

var _ accounting.Renderer = (*reportRenderer)(nil)

func NewReportRenderer() *reportRenderer {
	return &reportRenderer{}
}

var (
	headerStyle = props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Center}
	cellStyle   = props.Text{Size: 7, Align: align.Center}
	footerStyle = props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Right}
	titleStyle  = props.Text{Size: 11, Style: fontstyle.Bold}
)

// money rounds for display only; the stored report keeps full precision.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func (r *reportRenderer) Render(rpt accounting.MonthlyReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(8).
		WithTopMargin(10).
		WithRightMargin(8).
		WithBottomMargin(10).
		Build()

	m := maroto.New(cfg)

	m.AddRow(10, text.NewCol(12, "Professors Payout Report - "+rpt.Month.Label(), titleStyle))
	m.AddRow(4)

	for _, rep := range rpt.Reports {
		r.addProfessorTable(m, rep)
	}
	if rpt.Special != nil {
		r.addSpecialTable(m, *rpt.Special)
	}
	if len(rpt.Excedents) > 0 {
		r.addExcedentsTable(m, rpt.Excedents, rpt.ExcedentsTotal)
	}
	r.addSummaryTable(m, rpt)

	doc, err := m.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "generating report PDF")
	}
	return doc.GetBytes(), nil
}

func (r *reportRenderer) addProfessorTable(m core.Maroto, rep accounting.ProfessorReport) {
	m.AddRow(7, text.NewCol(12, rep.ProfessorName+"  ("+rep.ReportDateRange+")",
		props.Text{Size: 9, Style: fontstyle.Bold}))

	m.AddRow(6,
		text.NewCol(2, "Student", headerStyle),
		text.NewCol(2, "Plan", headerStyle),
		text.NewCol(1, "Amount", headerStyle),
		text.NewCol(1, "Hours", headerStyle),
		text.NewCol(1, "$/Hour", headerStyle),
		text.NewCol(1, "Pay/Hour", headerStyle),
		text.NewCol(1, "Seen", headerStyle),
		text.NewCol(1, "Balance", headerStyle),
		text.NewCol(1, "Teacher", headerStyle),
		text.NewCol(1, "Total", headerStyle),
	)
	for _, ln := range rep.Lines {
		m.AddRow(5,
			text.NewCol(2, ln.StudentName, cellStyle),
			text.NewCol(2, ln.Plan, cellStyle),
			text.NewCol(1, money(ln.Amount), cellStyle),
			text.NewCol(1, money(ln.TotalHours), cellStyle),
			text.NewCol(1, money(ln.PricePerHour), cellStyle),
			text.NewCol(1, money(ln.PayPerHour), cellStyle),
			text.NewCol(1, money(ln.HoursSeen), cellStyle),
			text.NewCol(1, money(ln.BalanceRemaining), cellStyle),
			text.NewCol(1, money(ln.TotalTeacher), cellStyle),
			text.NewCol(1, money(ln.TotalBespoke), cellStyle),
		)
	}
	m.AddRow(6,
		text.NewCol(6, "Subtotal", footerStyle),
		text.NewCol(2, "Teacher: "+money(rep.Subtotals.TotalTeacher), footerStyle),
		text.NewCol(2, "Studio: "+money(rep.Subtotals.TotalBespoke), footerStyle),
		text.NewCol(2, "Balance: "+money(rep.Subtotals.BalanceRemaining), footerStyle),
	)
	m.AddRow(3)
}

func (r *reportRenderer) addSpecialTable(m core.Maroto, sp accounting.SpecialReport) {
	m.AddRow(7, text.NewCol(12, sp.ProfessorName+"  (special)",
		props.Text{Size: 9, Style: fontstyle.Bold}))

	m.AddRow(6,
		text.NewCol(3, "Student", headerStyle),
		text.NewCol(2, "Plan", headerStyle),
		text.NewCol(1, "Amount", headerStyle),
		text.NewCol(1, "Hours", headerStyle),
		text.NewCol(1, "Seen", headerStyle),
		text.NewCol(1, "Old Bal.", headerStyle),
		text.NewCol(1, "Payment", headerStyle),
		text.NewCol(1, "Total", headerStyle),
		text.NewCol(1, "Balance", headerStyle),
	)
	for _, ln := range sp.Lines {
		m.AddRow(5,
			text.NewCol(3, ln.StudentName, cellStyle),
			text.NewCol(2, ln.Plan, cellStyle),
			text.NewCol(1, money(ln.Amount), cellStyle),
			text.NewCol(1, money(ln.TotalHours), cellStyle),
			text.NewCol(1, money(ln.HoursSeen), cellStyle),
			text.NewCol(1, money(ln.OldBalance), cellStyle),
			text.NewCol(1, money(ln.Payment), cellStyle),
			text.NewCol(1, money(ln.Total), cellStyle),
			text.NewCol(1, money(ln.BalanceRemaining), cellStyle),
		)
	}
	m.AddRow(6,
		text.NewCol(8, "Subtotal", footerStyle),
		text.NewCol(2, "Total: "+money(sp.Subtotals.Total), footerStyle),
		text.NewCol(2, "Balance: "+money(sp.Subtotals.BalanceRemaining), footerStyle),
	)
	m.AddRow(3)
}

func (r *reportRenderer) addExcedentsTable(m core.Maroto, excedents []accounting.Excedent, total decimal.Decimal) {
	m.AddRow(7, text.NewCol(12, "Excedents", props.Text{Size: 9, Style: fontstyle.Bold}))
	m.AddRow(6,
		text.NewCol(3, "Student", headerStyle),
		text.NewCol(2, "Amount", headerStyle),
		text.NewCol(2, "Seen", headerStyle),
		text.NewCol(2, "$/Hour", headerStyle),
		text.NewCol(2, "Total", headerStyle),
		text.NewCol(1, "Notes", headerStyle),
	)
	for _, exc := range excedents {
		m.AddRow(5,
			text.NewCol(3, exc.StudentName, cellStyle),
			text.NewCol(2, money(exc.Amount), cellStyle),
			text.NewCol(2, money(exc.HoursSeen), cellStyle),
			text.NewCol(2, money(exc.PricePerHour), cellStyle),
			text.NewCol(2, money(exc.Total), cellStyle),
			text.NewCol(1, exc.Notes, cellStyle),
		)
	}
	m.AddRow(6, text.NewCol(12, "Excedents total: "+money(total), footerStyle))
	m.AddRow(3)
}

func (r *reportRenderer) addSummaryTable(m core.Maroto, rpt accounting.MonthlyReport) {
	m.AddRow(7, text.NewCol(12, "Summary", props.Text{Size: 9, Style: fontstyle.Bold}))
	m.AddRow(6,
		text.NewCol(3, "Grand Teacher", headerStyle),
		text.NewCol(3, "Grand Studio", headerStyle),
		text.NewCol(2, "System Total", headerStyle),
		text.NewCol(2, "Real Total", headerStyle),
		text.NewCol(2, "Difference", headerStyle),
	)
	m.AddRow(5,
		text.NewCol(3, money(rpt.GrandTotals.TotalTeacher), cellStyle),
		text.NewCol(3, money(rpt.GrandTotals.TotalBespoke), cellStyle),
		text.NewCol(2, money(rpt.Summary.SystemTotal), cellStyle),
		text.NewCol(2, money(rpt.Summary.RealTotal), cellStyle),
		text.NewCol(2, money(rpt.Summary.Difference), cellStyle),
	)
}
