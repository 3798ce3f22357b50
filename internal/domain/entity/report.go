package entity

import "github.com/shopspring/decimal"

const (
	AllServicesLabel       = "ALL SERVICES"
	AllServicesPeriodLabel = "TOTAL ALL SERVICES PERIOD"
	TotalLabel             = "Total"
)

// ReportHeader is the column order shared by every rendering of a report.
var ReportHeader = []string{"Period", "Account", "Service", "Amount"}

// Row is one line of the cost report. Divider marks subtotal and total rows.
type Row struct {
	Period  string `json:"Period"`
	Account string `json:"Account"`
	Service string `json:"Service"`
	Amount  string `json:"Amount"`
	Divider bool   `json:"-"`
}

// Cells returns the row values in ReportHeader order.
func (r Row) Cells() []string {
	return []string{r.Period, r.Account, r.Service, r.Amount}
}

// PeriodTotal is the numeric subtotal of one period.
type PeriodTotal struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// CostReport is the aggregated output of a run.
type CostReport struct {
	Rows       []Row           `json:"rows"`
	Subtotals  []PeriodTotal   `json:"subtotals"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}
