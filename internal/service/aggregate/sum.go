package aggregate

import (
	"github.com/shopspring/decimal"
	"piece-wage/internal/storage"
)

// SumTotal adds up the stored total wage of every record. A record with an
// unusable amount counts as zero and is reported, it never aborts the sum.
func SumTotal(records []storage.WageLog) (decimal.Decimal, []Issue) {
	total := decimal.Zero
	issues := []Issue{}

	for _, rec := range records {
		w, issue := wageOf(rec)
		if issue != nil {
			issues = append(issues, *issue)
		}
		total = total.Add(w)
	}

	return total, issues
}
