package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodLabelLayout renders a period start as "Nov 2024".
const PeriodLabelLayout = "Jan 2006"

// TimePeriod is a billing period as reported by Cost Explorer.
type TimePeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Label returns the abbreviated month and year of the period start.
func (p TimePeriod) Label() string {
	return p.Start.Format(PeriodLabelLayout)
}

// GroupCost is the unblended cost of one service in one linked account.
type GroupCost struct {
	AccountID string          `json:"account_id"`
	Service   string          `json:"service"`
	Amount    decimal.Decimal `json:"amount"`
}

// ResultGroup holds the grouped costs of a single period, in API order.
type ResultGroup struct {
	TimePeriod TimePeriod  `json:"time_period"`
	Groups     []GroupCost `json:"groups"`
}

// CostQuery describes the window to fetch and the credentials to use.
type CostQuery struct {
	Profile string
	Start   time.Time
	End     time.Time
}
