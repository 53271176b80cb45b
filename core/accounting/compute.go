package accounting

import "github.com/shopspring/decimal"

// computeLine rederives a line's split from its source fields.
//
// Normal rows split the billed amount between the teacher and the studio
// from the hours actually taught; manual rows hand the amount to the
// teacher in full and never carry a balance.
func computeLine(ln *ReportLine) {
	switch ln.Status {
	case StatusNormal:
		ln.TotalTeacher = ln.HoursSeen.Mul(ln.PayPerHour)
		ln.TotalBespoke = ln.PricePerHour.Mul(ln.HoursSeen).Sub(ln.TotalTeacher)
		ln.BalanceRemaining = ln.Amount.Add(ln.Balance).Sub(ln.TotalTeacher).Sub(ln.TotalBespoke)
	case StatusManual:
		ln.TotalTeacher = ln.Amount
		ln.TotalBespoke = decimal.Zero
		ln.BalanceRemaining = decimal.Zero
	}
}

// computeSpecialLine rederives a flat-payment row: the professor is paid
// exactly the recorded payment and the rest stays on the balance.
func computeSpecialLine(ln *SpecialLine) {
	ln.Total = ln.Payment
	ln.BalanceRemaining = ln.Amount.Sub(ln.Payment)
}

func computeExcedent(exc *Excedent) {
	exc.Total = exc.HoursSeen.Mul(exc.PricePerHour)
}

// Compute assembles a MonthlyReport from source rows, rederiving every
// derived field. Inputs are copied, not mutated, and feeding a computed
// report's rows back in yields the same totals.
func Compute(reports []ProfessorReport, special *SpecialReport, excedents []Excedent, realTotal decimal.Decimal) MonthlyReport {
	var rpt MonthlyReport

	rpt.Reports = make([]ProfessorReport, len(reports))
	for i, pr := range reports {
		pr.Lines = append([]ReportLine(nil), pr.Lines...)
		pr.Subtotals = Subtotals{
			TotalTeacher:     decimal.Zero,
			TotalBespoke:     decimal.Zero,
			BalanceRemaining: decimal.Zero,
		}
		for j := range pr.Lines {
			ln := &pr.Lines[j]
			computeLine(ln)
			pr.Subtotals.TotalTeacher = pr.Subtotals.TotalTeacher.Add(ln.TotalTeacher)
			pr.Subtotals.TotalBespoke = pr.Subtotals.TotalBespoke.Add(ln.TotalBespoke)
			pr.Subtotals.BalanceRemaining = pr.Subtotals.BalanceRemaining.Add(ln.BalanceRemaining)
		}
		rpt.Reports[i] = pr

		rpt.GrandTotals.TotalTeacher = rpt.GrandTotals.TotalTeacher.Add(pr.Subtotals.TotalTeacher)
		rpt.GrandTotals.TotalBespoke = rpt.GrandTotals.TotalBespoke.Add(pr.Subtotals.TotalBespoke)
		rpt.GrandTotals.BalanceRemaining = rpt.GrandTotals.BalanceRemaining.Add(pr.Subtotals.BalanceRemaining)
	}

	specialBalance := decimal.Zero
	if special != nil {
		sp := *special
		sp.Lines = append([]SpecialLine(nil), sp.Lines...)
		sp.Subtotals = SpecialSubtotals{Total: decimal.Zero, BalanceRemaining: decimal.Zero}
		for j := range sp.Lines {
			ln := &sp.Lines[j]
			computeSpecialLine(ln)
			sp.Subtotals.Total = sp.Subtotals.Total.Add(ln.Total)
			sp.Subtotals.BalanceRemaining = sp.Subtotals.BalanceRemaining.Add(ln.BalanceRemaining)
		}
		specialBalance = sp.Subtotals.BalanceRemaining
		rpt.Special = &sp
	}

	rpt.Excedents = make([]Excedent, len(excedents))
	rpt.ExcedentsTotal = decimal.Zero
	for i, exc := range excedents {
		computeExcedent(&exc)
		rpt.Excedents[i] = exc
		rpt.ExcedentsTotal = rpt.ExcedentsTotal.Add(exc.Total)
	}

	rpt.Summary.SystemTotal = rpt.GrandTotals.BalanceRemaining.Add(specialBalance).Add(rpt.ExcedentsTotal)
	rpt.Summary.RealTotal = realTotal
	rpt.Summary.Difference = rpt.Summary.SystemTotal.Sub(realTotal)
	return rpt
}
