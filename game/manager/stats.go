package manager

import (
	"sort"
	"time"
)

// Summary aggregates the recorded games
type Summary struct {
	Games           int
	AverageScore    float64
	MedianScore     float64
	MaxScore        int
	MinScore        int
	AverageDuration time.Duration
	MaxDuration     time.Duration
}

// Summarize computes score and duration statistics over history.
// Records with an end before their start count as zero length.
func Summarize(history []GameRecord) Summary {
	if len(history) == 0 {
		return Summary{}
	}

	scores := make([]int, 0, len(history))
	var total int
	var totalDuration time.Duration
	s := Summary{
		Games:    len(history),
		MaxScore: history[0].Score,
		MinScore: history[0].Score,
	}

	for _, rec := range history {
		scores = append(scores, rec.Score)
		total += rec.Score
		if rec.Score > s.MaxScore {
			s.MaxScore = rec.Score
		}
		if rec.Score < s.MinScore {
			s.MinScore = rec.Score
		}

		d := rec.EndTime.Sub(rec.StartTime)
		if d < 0 {
			d = 0
		}
		totalDuration += d
		if d > s.MaxDuration {
			s.MaxDuration = d
		}
	}

	s.AverageScore = float64(total) / float64(len(history))
	s.AverageDuration = totalDuration / time.Duration(len(history))

	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		s.MedianScore = float64(scores[mid-1]+scores[mid]) / 2
	} else {
		s.MedianScore = float64(scores[mid])
	}
	return s
}
