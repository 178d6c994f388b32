package service

import (
	"iter"
	"testing"
	"time"

	"github.com/verumrexo/tip-harmony/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calcAt(amount string, at time.Time) model.Calculation {
	return model.Calculation{TotalAmount: dec(amount), CreatedAt: at}
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow(0)
	require.NoError(t, err)
	assert.Equal(t, DefaultWindow, w)

	for _, days := range []int{7, 14, 30, 90, 365} {
		w, err := ParseWindow(days)
		require.NoError(t, err)
		assert.Equal(t, Window(days), w)
	}

	_, err = ParseWindow(13)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestAnalyzeEmptyHistory(t *testing.T) {
	assert.Nil(t, Analyze(nil, DefaultWindow, time.Now()))
	assert.Nil(t, Analyze([]model.Calculation{}, DefaultWindow, time.Now()))
}

func TestAnalyzeTrendGapFilled(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	history := []model.Calculation{
		calcAt("100", now),
		calcAt("50", now.AddDate(0, 0, -3)),
	}

	resp := Analyze(history, Window(7), now)
	require.NotNil(t, resp)
	require.Len(t, resp.TrendData, 7)

	last := resp.TrendData[6]
	assert.True(t, last.Amount.Equal(dec("100")))
	assert.Equal(t, 1, last.Count)
	assert.Equal(t, "Aug 31", last.Date)

	threeBack := resp.TrendData[3]
	assert.True(t, threeBack.Amount.Equal(dec("50")))
	assert.Equal(t, 1, threeBack.Count)

	// The gaps stay in the series with zero values.
	for _, i := range []int{0, 1, 2, 4, 5} {
		assert.True(t, resp.TrendData[i].Amount.IsZero(), "day %d", i)
		assert.Zero(t, resp.TrendData[i].Count, "day %d", i)
	}

	// Consecutive calendar days ending today.
	for i := 1; i < len(resp.TrendData); i++ {
		gap := resp.TrendData[i].FullDate.Sub(resp.TrendData[i-1].FullDate)
		assert.Equal(t, 24*time.Hour, gap)
	}
}

func TestAnalyzeAverageSkipsIdleDays(t *testing.T) {
	// 100 + 50 over two worked days; the five idle days are not in the
	// denominator.
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	history := []model.Calculation{
		calcAt("100", now),
		calcAt("50", now.AddDate(0, 0, -3)),
	}

	resp := Analyze(history, Window(7), now)
	require.NotNil(t, resp)
	assert.True(t, resp.Average.Equal(dec("75")), "average: %s", resp.Average)
}

func TestAnalyzeWindowFilter(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	history := []model.Calculation{
		calcAt("100", now),
		calcAt("999", now.AddDate(0, 0, -10)), // outside a 7-day window
	}

	resp := Analyze(history, Window(7), now)
	require.NotNil(t, resp)

	sum := decimal.Zero
	for _, p := range resp.TrendData {
		sum = sum.Add(p.Amount)
	}
	assert.True(t, sum.Equal(dec("100")), "window sum: %s", sum)
	assert.Equal(t, 1, resp.DistributionData[2].Count)
	assert.Equal(t, 0, resp.DistributionData[4].Count)
}

func TestAnalyzeWeeklyMondayFirst(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	// Walk back to the most recent Monday and Sunday inside the window.
	monday := now
	for monday.Weekday() != time.Monday {
		monday = monday.AddDate(0, 0, -1)
	}
	sunday := now
	for sunday.Weekday() != time.Sunday {
		sunday = sunday.AddDate(0, 0, -1)
	}

	history := []model.Calculation{
		calcAt("60", monday),
		calcAt("120", monday),
		calcAt("30", sunday),
	}

	resp := Analyze(history, Window(30), now)
	require.NotNil(t, resp)
	require.Len(t, resp.WeeklyData, 7)

	names := make([]string, 0, 7)
	for _, p := range resp.WeeklyData {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, names)

	mon := resp.WeeklyData[0]
	assert.Equal(t, 2, mon.Count)
	assert.True(t, mon.Amount.Equal(dec("90")), "monday average: %s", mon.Amount)

	sun := resp.WeeklyData[6]
	assert.Equal(t, 1, sun.Count)
	assert.True(t, sun.Amount.Equal(dec("30")))
}

func TestAnalyzeMonthlyAscending(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	history := []model.Calculation{
		calcAt("10", now),
		calcAt("20", now.AddDate(0, 0, -40)), // July
		calcAt("30", now.AddDate(0, 0, -70)), // June
	}

	resp := Analyze(history, Window(90), now)
	require.NotNil(t, resp)
	require.Len(t, resp.MonthlyData, 3)

	for i := 1; i < len(resp.MonthlyData); i++ {
		assert.True(t, resp.MonthlyData[i-1].Date.Before(resp.MonthlyData[i].Date))
	}
	assert.Equal(t, "Jun 26", resp.MonthlyData[0].Name)
	assert.Equal(t, "Aug 26", resp.MonthlyData[2].Name)
}

func TestBucketIndexBoundaries(t *testing.T) {
	cases := map[string]int{
		"0":      0,
		"49.99":  0,
		"50":     1, // half-open: 50 belongs to 50-100
		"99.99":  1,
		"100":    2,
		"150":    3,
		"199.99": 3,
		"200":    4,
		"500":    4,
	}
	for amount, want := range cases {
		assert.Equal(t, want, bucketIndex(dec(amount)), "amount %s", amount)
	}
}

func TestAnalyzeScansHistoryOnce(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	records := []model.Calculation{
		calcAt("10", now),
		calcAt("20", now.AddDate(0, 0, -1)),
		calcAt("30", now.AddDate(0, 0, -2)),
	}

	visits := 0
	var counting iter.Seq[model.Calculation] = func(yield func(model.Calculation) bool) {
		for _, r := range records {
			visits++
			if !yield(r) {
				return
			}
		}
	}

	resp := analyzeSeq(counting, Window(7), now)
	require.NotNil(t, resp)
	assert.Equal(t, len(records), visits)
}
