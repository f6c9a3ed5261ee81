package service

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mansoorceksport/tonnage/internal/domain"
)

// The aggregation engine: pure functions over a workout snapshot and a
// reference time. Results are recomputed on every call; no caching, so
// correctness under mutation stays trivial.

const dateLayout = "2006-01-02"

// Granularity selects the bucket width for TimeBucketSeries.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// Bucket is one bar of a time-bucketed tonnage chart.
type Bucket struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ExerciseRank is one row of the top-exercises leaderboard.
type ExerciseRank struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// parseDate parses a stored YYYY-MM-DD date. Records with unparseable
// dates simply never match any year or range.
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// TotalForYear sums TotalWeight over workouts dated in the given year.
func TotalForYear(workouts []domain.Workout, year int) float64 {
	var sum float64
	for _, w := range workouts {
		if d, ok := parseDate(w.Date); ok && d.Year() == year {
			sum += w.TotalWeight
		}
	}
	return sum
}

// DistinctYears returns the unique years present, most recent first.
func DistinctYears(workouts []domain.Workout) []int {
	seen := make(map[int]bool)
	var years []int
	for _, w := range workouts {
		d, ok := parseDate(w.Date)
		if !ok {
			continue
		}
		if !seen[d.Year()] {
			seen[d.Year()] = true
			years = append(years, d.Year())
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// FilterAndSortByYear returns the workouts of one year, most recent
// first. The sort is stable: same-day workouts keep their stored order.
func FilterAndSortByYear(workouts []domain.Workout, year int) []domain.Workout {
	var filtered []domain.Workout
	for _, w := range workouts {
		if d, ok := parseDate(w.Date); ok && d.Year() == year {
			filtered = append(filtered, w)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date > filtered[j].Date
	})
	return filtered
}

// TimeBucketSeries builds the bar-chart series for the given
// granularity, oldest bucket first.
//
// Daily covers the 7 calendar days ending at now, matching workout
// dates exactly. Weekly covers 8 contiguous 7-day tiles anchored to
// now (not calendar weeks). Monthly covers the current calendar month
// and the 5 before it.
func TimeBucketSeries(workouts []domain.Workout, granularity Granularity, now time.Time) []Bucket {
	switch granularity {
	case GranularityDaily:
		return dailySeries(workouts, now)
	case GranularityMonthly:
		return monthlySeries(workouts, now)
	default:
		return weeklySeries(workouts, now)
	}
}

func dailySeries(workouts []domain.Workout, now time.Time) []Bucket {
	buckets := make([]Bucket, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dayStr := day.Format(dateLayout)

		var total float64
		for _, w := range workouts {
			if w.Date == dayStr {
				total += w.TotalWeight
			}
		}

		buckets = append(buckets, Bucket{
			Label: day.Format("Mon"),
			Value: total,
		})
	}
	return buckets
}

func weeklySeries(workouts []domain.Workout, now time.Time) []Bucket {
	buckets := make([]Bucket, 0, 8)
	for i := 7; i >= 0; i-- {
		end := now.AddDate(0, 0, -i*7)
		start := end.AddDate(0, 0, -6)
		startStr := start.Format(dateLayout)
		endStr := end.Format(dateLayout)

		var total float64
		for _, w := range workouts {
			if _, ok := parseDate(w.Date); !ok {
				continue
			}
			// inclusive [start, end]; lexical compare is safe for YYYY-MM-DD
			if w.Date >= startStr && w.Date <= endStr {
				total += w.TotalWeight
			}
		}

		buckets = append(buckets, Bucket{
			Label: "W" + strconv.Itoa(8-i),
			Value: total,
		})
	}
	return buckets
}

func monthlySeries(workouts []domain.Workout, now time.Time) []Bucket {
	buckets := make([]Bucket, 0, 6)
	for i := 5; i >= 0; i-- {
		// integer month arithmetic avoids end-of-month overflow
		y, m := now.Year(), int(now.Month())-i
		for m < 1 {
			m += 12
			y--
		}

		var total float64
		for _, w := range workouts {
			if d, ok := parseDate(w.Date); ok && d.Year() == y && int(d.Month()) == m {
				total += w.TotalWeight
			}
		}

		buckets = append(buckets, Bucket{
			Label: time.Month(m).String()[:3],
			Value: total,
		})
	}
	return buckets
}

// CurrentStreak counts consecutive calendar days with at least one
// workout, walking back from the most recent logged date. The walk only
// starts if that date is today or yesterday; otherwise the streak is 0.
func CurrentStreak(workouts []domain.Workout, today time.Time) int {
	seen := make(map[string]bool)
	var dates []string
	for _, w := range workouts {
		if _, ok := parseDate(w.Date); !ok {
			continue
		}
		if !seen[w.Date] {
			seen[w.Date] = true
			dates = append(dates, w.Date)
		}
	}
	if len(dates) == 0 {
		return 0
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	todayStr := today.Format(dateLayout)
	yesterdayStr := today.AddDate(0, 0, -1).Format(dateLayout)
	if dates[0] != todayStr && dates[0] != yesterdayStr {
		return 0
	}

	anchor, _ := parseDate(dates[0])
	streak := 0
	for i, date := range dates {
		expected := anchor.AddDate(0, 0, -i).Format(dateLayout)
		if date != expected {
			break
		}
		streak++
	}
	return streak
}

// ExerciseTotal sums the tonnage of every logged exercise whose name
// matches case-insensitively, across all workouts and years.
func ExerciseTotal(workouts []domain.Workout, name string) float64 {
	if strings.TrimSpace(name) == "" {
		return 0
	}
	nameLower := strings.ToLower(name)

	var total float64
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			if strings.ToLower(ex.Name) == nameLower {
				total += ex.Total
			}
		}
	}
	return total
}

// TopExercises groups exercises by their stored name (case-sensitive,
// already title-cased at save time), sums tonnage per group and returns
// the top n. Equal totals keep first-encountered order.
func TopExercises(workouts []domain.Workout, n int) []ExerciseRank {
	totals := make(map[string]float64)
	var order []string
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			if _, ok := totals[ex.Name]; !ok {
				order = append(order, ex.Name)
			}
			totals[ex.Name] += ex.Total
		}
	}

	ranks := make([]ExerciseRank, 0, len(order))
	for _, name := range order {
		ranks = append(ranks, ExerciseRank{Name: name, Total: totals[name]})
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Total > ranks[j].Total
	})

	if n >= 0 && len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}

// ExerciseNameSuggestions returns the distinct exercise names whose
// lower-cased form starts with the lower-cased prefix, sorted. An empty
// prefix yields nothing: suggestions only appear once the user types.
func ExerciseNameSuggestions(workouts []domain.Workout, prefix string) []string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil
	}
	prefixLower := strings.ToLower(prefix)

	seen := make(map[string]bool)
	var names []string
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			name := strings.TrimSpace(ex.Name)
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			if strings.HasPrefix(strings.ToLower(name), prefixLower) {
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
