package usecase

import (
	"fmt"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// costEpsilon is the smallest amount that counts as a cost. Anything below it,
// credits included, is left out of the rows and of every total.
var costEpsilon = decimal.New(1, -5)

// BuildReport turns the ordered result groups into report rows.
//
// Each period gets its detail rows (unless onlyTotal is set) followed by a
// subtotal row. When more than one period is present a grand total row is
// appended. The account column of subtotal and total rows holds the last
// account seen while iterating, which is what the existing report shows.
func BuildReport(results []entity.ResultGroup, onlyTotal bool) entity.CostReport {
	report := entity.CostReport{
		Rows:       []entity.Row{},
		Subtotals:  make([]entity.PeriodTotal, 0, len(results)),
		GrandTotal: decimal.Zero,
	}

	var lastAccount string
	for _, result := range results {
		label := result.TimePeriod.Label()
		periodTotal := decimal.Zero

		for _, group := range result.Groups {
			lastAccount = group.AccountID
			if group.Amount.LessThan(costEpsilon) {
				continue
			}

			report.GrandTotal = report.GrandTotal.Add(group.Amount)
			periodTotal = periodTotal.Add(group.Amount)

			if !onlyTotal {
				report.Rows = append(report.Rows, entity.Row{
					Period:  label,
					Account: group.AccountID,
					Service: group.Service,
					Amount:  formatAmount(group.Amount),
				})
			}
		}

		report.Rows = append(report.Rows, entity.Row{
			Period:  fmt.Sprintf("%s %s", entity.TotalLabel, label),
			Account: lastAccount,
			Service: entity.AllServicesLabel,
			Amount:  formatAmount(periodTotal),
			Divider: true,
		})
		report.Subtotals = append(report.Subtotals, entity.PeriodTotal{Label: label, Amount: periodTotal})
	}

	if len(results) > 1 {
		report.Rows = append(report.Rows, entity.Row{
			Period:  entity.TotalLabel,
			Account: lastAccount,
			Service: entity.AllServicesPeriodLabel,
			Amount:  formatAmount(report.GrandTotal),
			Divider: true,
		})
	}

	return report
}

func formatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
