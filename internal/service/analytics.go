package service

import (
	"errors"
	"iter"
	"slices"
	"sort"
	"time"

	"github.com/verumrexo/tip-harmony/internal/dto"
	"github.com/verumrexo/tip-harmony/internal/model"

	"github.com/shopspring/decimal"
)

// Window is a trailing number of calendar days for analytics queries.
type Window int

const DefaultWindow Window = 30

var ErrInvalidWindow = errors.New("unsupported analytics window")

var validWindows = map[int]bool{7: true, 14: true, 30: true, 90: true, 365: true}

// ParseWindow accepts one of the fixed window sizes; 0 selects the default.
func ParseWindow(days int) (Window, error) {
	if days == 0 {
		return DefaultWindow, nil
	}
	if !validWindows[days] {
		return 0, ErrInvalidWindow
	}
	return Window(days), nil
}

const currencySymbol = "€"

var bucketThresholds = []decimal.Decimal{
	decimal.NewFromInt(50),
	decimal.NewFromInt(100),
	decimal.NewFromInt(150),
	decimal.NewFromInt(200),
}

var bucketLabels = []string{
	currencySymbol + "0-50",
	currencySymbol + "50-100",
	currencySymbol + "100-150",
	currencySymbol + "150-200",
	currencySymbol + "200+",
}

// Analyze derives the four chart views from the full history. It returns
// nil when there is no history at all — "nothing to show", not an error.
// Records are never mutated, so concurrent calls on the same snapshot are safe.
func Analyze(history []model.Calculation, window Window, now time.Time) *dto.AnalyticsResponse {
	if len(history) == 0 {
		return nil
	}
	return analyzeSeq(slices.Values(history), window, now)
}

type dayKey struct {
	year  int
	month time.Month
	day   int
}

// analyzeSeq builds all four views in one pass over the records. The
// charts re-render often, so history is scanned once per call rather than
// once per view.
func analyzeSeq(records iter.Seq[model.Calculation], window Window, now time.Time) *dto.AnalyticsResponse {
	days := int(window)
	loc := now.Location()

	// Local wall-clock boundaries, end of day inclusive. The window covers
	// [today-days .. end of today]; the trend series itself is the last
	// `days` calendar days ending today.
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, loc)
	start := endOfDay.AddDate(0, 0, -days)

	type dayAgg struct {
		amount decimal.Decimal
		count  int
	}
	daily := make(map[dayKey]*dayAgg)

	type weekdayAgg struct {
		total decimal.Decimal
		count int
	}
	var week [7]weekdayAgg // indexed by time.Weekday, Sunday == 0

	type monthKey struct {
		year  int
		month time.Month
	}
	type monthAgg struct {
		amount decimal.Decimal
		count  int
	}
	months := make(map[monthKey]*monthAgg)

	var buckets [5]int

	for rec := range records {
		t := rec.CreatedAt.In(loc)
		if t.Before(start) || t.After(endOfDay) {
			continue
		}
		amount := rec.TotalAmount

		dk := dayKey{t.Year(), t.Month(), t.Day()}
		da := daily[dk]
		if da == nil {
			da = &dayAgg{}
			daily[dk] = da
		}
		da.amount = da.amount.Add(amount)
		da.count++

		wd := int(t.Weekday())
		week[wd].total = week[wd].total.Add(amount)
		week[wd].count++

		mk := monthKey{t.Year(), t.Month()}
		ma := months[mk]
		if ma == nil {
			ma = &monthAgg{}
			months[mk] = ma
		}
		ma.amount = ma.amount.Add(amount)
		ma.count++

		buckets[bucketIndex(amount)]++
	}

	// Daily trend, gap-filled: exactly `days` consecutive entries ending
	// today, zeroes where nothing was recorded.
	trend := make([]dto.TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := endOfDay.AddDate(0, 0, -i)
		point := dto.TrendPoint{
			Date:     d.Format("Jan 2"),
			FullDate: time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc),
			Amount:   decimal.Zero,
		}
		if da := daily[dayKey{d.Year(), d.Month(), d.Day()}]; da != nil {
			point.Amount = da.amount
			point.Count = da.count
		}
		trend = append(trend, point)
	}

	// Average per worked day: calendar days with zero activity stay out of
	// the denominator.
	sum := decimal.Zero
	worked := 0
	for _, p := range trend {
		if p.Amount.IsPositive() {
			sum = sum.Add(p.Amount)
			worked++
		}
	}
	average := decimal.Zero
	if worked > 0 {
		average = sum.Div(decimal.NewFromInt(int64(worked)))
	}

	// Weekly averages, Monday first and Sunday last even though Sunday is
	// weekday index 0.
	dayNames := [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	weekly := make([]dto.WeekdayPoint, 0, 7)
	for i := 1; i <= 7; i++ {
		idx := i % 7
		avg := decimal.Zero
		if week[idx].count > 0 {
			avg = week[idx].total.Div(decimal.NewFromInt(int64(week[idx].count)))
		}
		weekly = append(weekly, dto.WeekdayPoint{
			Name:   dayNames[idx],
			Amount: avg,
			Count:  week[idx].count,
		})
	}

	monthly := make([]dto.MonthPoint, 0, len(months))
	for mk, ma := range months {
		first := time.Date(mk.year, mk.month, 1, 0, 0, 0, 0, loc)
		monthly = append(monthly, dto.MonthPoint{
			Name:   first.Format("Jan 06"),
			Date:   first,
			Amount: ma.amount,
			Count:  ma.count,
		})
	}
	sort.Slice(monthly, func(i, j int) bool { return monthly[i].Date.Before(monthly[j].Date) })

	distribution := make([]dto.DistributionBucket, len(buckets))
	for i, count := range buckets {
		distribution[i] = dto.DistributionBucket{Name: bucketLabels[i], Count: count}
	}

	return &dto.AnalyticsResponse{
		TrendData:        trend,
		Average:          average,
		WeeklyData:       weekly,
		MonthlyData:      monthly,
		DistributionData: distribution,
	}
}

// bucketIndex places an amount in its histogram bucket. Intervals are
// half-open: exactly 50 lands in 50-100, exactly 200 in 200+.
func bucketIndex(amount decimal.Decimal) int {
	for i, threshold := range bucketThresholds {
		if amount.LessThan(threshold) {
			return i
		}
	}
	return len(bucketThresholds)
}
