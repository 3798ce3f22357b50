package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func period(start string, groups ...entity.GroupCost) entity.ResultGroup {
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		panic(err)
	}
	return entity.ResultGroup{
		TimePeriod: entity.TimePeriod{Start: s, End: s.AddDate(0, 1, -1)},
		Groups:     groups,
	}
}

func cost(account, service, amount string) entity.GroupCost {
	return entity.GroupCost{AccountID: account, Service: service, Amount: decimal.RequireFromString(amount)}
}

func cells(rows []entity.Row) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Cells())
	}
	return out
}

func grandTotalRows(rows []entity.Row) []entity.Row {
	var totals []entity.Row
	for _, r := range rows {
		if r.Service == entity.AllServicesPeriodLabel {
			totals = append(totals, r)
		}
	}
	return totals
}

func TestBuildReport_SinglePeriodDropsTinyAmounts(t *testing.T) {
	results := []entity.ResultGroup{
		period("2024-11-01",
			cost("111", "EC2", "12.345"),
			cost("111", "S3", "0.000001"),
		),
	}

	report := BuildReport(results, false)

	assert.Equal(t, [][]string{
		{"Nov 2024", "111", "EC2", "12.35"},
		{"Total Nov 2024", "111", "ALL SERVICES", "12.35"},
	}, cells(report.Rows))
	assert.False(t, report.Rows[0].Divider)
	assert.True(t, report.Rows[1].Divider)
	assert.Empty(t, grandTotalRows(report.Rows))
	assert.Equal(t, "12.345", report.GrandTotal.String())
}

func TestBuildReport_GrandTotalAcrossPeriods(t *testing.T) {
	results := []entity.ResultGroup{
		period("2024-10-01", cost("111", "EC2", "10.00")),
		period("2024-11-01", cost("222", "S3", "20.00")),
	}

	report := BuildReport(results, false)

	totals := grandTotalRows(report.Rows)
	require.Len(t, totals, 1)
	assert.Equal(t, entity.Row{
		Period:  "Total",
		Account: "222",
		Service: "TOTAL ALL SERVICES PERIOD",
		Amount:  "30.00",
		Divider: true,
	}, totals[0])
	assert.Equal(t, totals[0], report.Rows[len(report.Rows)-1])
}

func TestBuildReport_GrandTotalOnlyWithSeveralPeriods(t *testing.T) {
	tests := []struct {
		name    string
		periods int
		want    int
	}{
		{"none", 0, 0},
		{"one", 1, 0},
		{"two", 2, 1},
		{"twelve", 12, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			var results []entity.ResultGroup
			for i := 0; i < tt.periods; i++ {
				results = append(results, period(start.AddDate(0, i, 0).Format("2006-01-02"), cost("111", "EC2", "1.00")))
			}

			report := BuildReport(results, false)
			assert.Len(t, grandTotalRows(report.Rows), tt.want)

			subtotals := 0
			for _, r := range report.Rows {
				if r.Service == entity.AllServicesLabel {
					subtotals++
				}
			}
			assert.Equal(t, tt.periods, subtotals)
			assert.Len(t, report.Subtotals, tt.periods)
		})
	}
}

func TestBuildReport_SubtotalsMatchDetailRows(t *testing.T) {
	results := []entity.ResultGroup{
		period("2024-09-01",
			cost("111", "EC2", "100.10"),
			cost("111", "RDS", "33.33"),
			cost("222", "S3", "0.07"),
		),
		period("2024-10-01",
			cost("111", "EC2", "99.99"),
			cost("333", "Lambda", "-4.50"),
			cost("333", "CloudWatch", "1.01"),
		),
	}

	report := BuildReport(results, false)

	sums := map[string]decimal.Decimal{}
	subtotalRows := map[string]decimal.Decimal{}
	var grand decimal.Decimal
	for _, r := range report.Rows {
		amount := decimal.RequireFromString(r.Amount)
		switch {
		case r.Service == entity.AllServicesLabel:
			subtotalRows[strings.TrimPrefix(r.Period, "Total ")] = amount
		case r.Service == entity.AllServicesPeriodLabel:
			grand = amount
		default:
			sums[r.Period] = sums[r.Period].Add(amount)
		}
	}

	assert.Equal(t, "133.50", sums["Sep 2024"].StringFixed(2))
	assert.True(t, sums["Sep 2024"].Equal(subtotalRows["Sep 2024"]))
	assert.True(t, sums["Oct 2024"].Equal(subtotalRows["Oct 2024"]))
	assert.True(t, subtotalRows["Sep 2024"].Add(subtotalRows["Oct 2024"]).Equal(grand))
	assert.Equal(t, "234.50", grand.StringFixed(2))
}

func TestBuildReport_NegativeAmountsAreSkipped(t *testing.T) {
	results := []entity.ResultGroup{
		period("2024-10-01",
			cost("111", "EC2", "5.00"),
			cost("111", "Credits", "-5.00"),
		),
	}

	report := BuildReport(results, false)

	assert.Equal(t, [][]string{
		{"Oct 2024", "111", "EC2", "5.00"},
		{"Total Oct 2024", "111", "ALL SERVICES", "5.00"},
	}, cells(report.Rows))
}

func TestBuildReport_OnlyTotalKeepsTotals(t *testing.T) {
	results := []entity.ResultGroup{
		period("2024-10-01", cost("111", "EC2", "10.00"), cost("111", "S3", "2.50")),
		period("2024-11-01", cost("222", "EC2", "20.00")),
	}

	full := BuildReport(results, false)
	summary := BuildReport(results, true)

	var fullTotals []entity.Row
	for _, r := range full.Rows {
		if r.Divider {
			fullTotals = append(fullTotals, r)
		}
	}

	assert.Equal(t, fullTotals, summary.Rows)
	assert.Equal(t, [][]string{
		{"Total Oct 2024", "111", "ALL SERVICES", "12.50"},
		{"Total Nov 2024", "222", "ALL SERVICES", "20.00"},
		{"Total", "222", "TOTAL ALL SERVICES PERIOD", "32.50"},
	}, cells(summary.Rows))
	assert.True(t, full.GrandTotal.Equal(summary.GrandTotal))
}

func TestBuildReport_SubtotalUsesLastSeenAccount(t *testing.T) {
	results := []entity.ResultGroup{
		period("2024-10-01",
			cost("111", "EC2", "10.00"),
			cost("222", "S3", "0.000001"),
		),
		period("2024-11-01"),
	}

	report := BuildReport(results, true)

	// The skipped group still moves the last seen account, and an empty
	// period carries it over from the previous one.
	assert.Equal(t, [][]string{
		{"Total Oct 2024", "222", "ALL SERVICES", "10.00"},
		{"Total Nov 2024", "222", "ALL SERVICES", "0.00"},
		{"Total", "222", "TOTAL ALL SERVICES PERIOD", "10.00"},
	}, cells(report.Rows))
}

func TestBuildReport_EmptyInput(t *testing.T) {
	report := BuildReport(nil, false)
	assert.Empty(t, report.Rows)
	assert.NotNil(t, report.Rows)
	assert.True(t, report.GrandTotal.IsZero())
}
