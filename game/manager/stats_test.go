package manager

import (
	"testing"
	"time"
)

func record(score int, d time.Duration) GameRecord {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return GameRecord{Score: score, StartTime: start, EndTime: start.Add(d)}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := Summarize(nil); s != (Summary{}) {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]GameRecord{
		record(30, 10*time.Second),
		record(10, 20*time.Second),
		record(45, 30*time.Second),
		record(15, -time.Second),
	})

	if s.Games != 4 || s.MaxScore != 45 || s.MinScore != 10 {
		t.Errorf("counts: %+v", s)
	}
	if s.AverageScore != 25 {
		t.Errorf("average: got %v", s.AverageScore)
	}
	if s.MedianScore != 22.5 {
		t.Errorf("median: got %v", s.MedianScore)
	}
	if s.AverageDuration != 15*time.Second || s.MaxDuration != 30*time.Second {
		t.Errorf("durations: avg %v max %v", s.AverageDuration, s.MaxDuration)
	}
}

func TestSummarizeOddMedian(t *testing.T) {
	s := Summarize([]GameRecord{record(5, 0), record(50, 0), record(20, 0)})
	if s.MedianScore != 20 {
		t.Errorf("median: got %v", s.MedianScore)
	}
}
