// Package streak turns a set of activity dates into streak counts and
// per-day activity buckets. Everything here is pure: results are recomputed
// from scratch on every call and never patched incrementally.
package streak

import "github.com/heartmarshall/growth-journal-backend/internal/domain"

// LongestHorizonDays bounds the scan for the longest streak. Runs that ended
// before today-(LongestHorizonDays-1) are not seen.
const LongestHorizonDays = 365

// Result is the output of Compute.
type Result struct {
	Streak domain.StreakResult
	// Buckets are ordered oldest first and cover exactly lookbackDays days
	// ending at today.
	Buckets []domain.DayBucket
}

// Compute derives streak numbers and activity buckets.
//
// activity holds one date per activity record; repeated dates collapse into
// one active day for streak purposes but are counted individually in buckets.
func Compute(activity []domain.Date, today domain.Date, lookbackDays int) Result {
	counts := make(map[domain.Date]int, len(activity))
	for _, d := range activity {
		counts[d]++
	}

	current := currentStreak(counts, today)
	longest := longestStreak(counts, today, LongestHorizonDays)
	// A current run longer than the horizon is still a run we have seen.
	if current > longest {
		longest = current
	}

	return Result{
		Streak: domain.StreakResult{
			Current: current,
			Longest: longest,
		},
		Buckets: buckets(counts, today, lookbackDays),
	}
}

// currentStreak counts consecutive active days walking back from today.
// It is 0 when today itself has no activity.
func currentStreak(active map[domain.Date]int, today domain.Date) int {
	streak := 0
	for day := today; active[day] > 0; day = day.AddDays(-1) {
		streak++
	}
	return streak
}

// longestStreak scans horizon days back from today and returns the longest
// run of consecutive active days inside that window.
func longestStreak(active map[domain.Date]int, today domain.Date, horizon int) int {
	best, run := 0, 0
	for i := 0; i < horizon; i++ {
		if active[today.AddDays(-i)] > 0 {
			run++
			if run > best {
				best = run
			}
			continue
		}
		run = 0
	}
	return best
}

func buckets(counts map[domain.Date]int, today domain.Date, lookbackDays int) []domain.DayBucket {
	if lookbackDays <= 0 {
		return []domain.DayBucket{}
	}

	out := make([]domain.DayBucket, lookbackDays)
	start := today.AddDays(-(lookbackDays - 1))
	for i := range out {
		day := start.AddDays(i)
		out[i] = domain.DayBucket{Date: day, Count: counts[day]}
	}
	return out
}
