package syncer

import (
	"fmt"
	"time"
)

// progress derives backfill throughput and ETA from heights covered so far.
type progress struct {
	total     uint64
	processed uint64
	started   time.Time
	now       func() time.Time
}

type progressSnapshot struct {
	Processed uint64
	Total     uint64
	Percent   float64
	Rate      float64
	Elapsed   time.Duration
	ETA       time.Duration
}

func newProgress(total uint64, now func() time.Time) *progress {
	return &progress{total: total, started: now(), now: now}
}

func (p *progress) Add(heights uint64) progressSnapshot {
	p.processed = min(p.processed+heights, p.total)
	return p.Snapshot()
}

func (p *progress) Snapshot() progressSnapshot {
	elapsed := p.now().Sub(p.started)
	s := progressSnapshot{Processed: p.processed, Total: p.total, Elapsed: elapsed}
	if p.total > 0 {
		s.Percent = float64(p.processed) / float64(p.total) * 100
	}
	if secs := elapsed.Seconds(); secs > 0 {
		s.Rate = float64(p.processed) / secs
	}
	if s.Rate > 0 {
		remaining := float64(p.total - p.processed)
		s.ETA = time.Duration(remaining / s.Rate * float64(time.Second))
	}
	return s
}

// formatETA renders a duration as "Nm Ss".
func formatETA(d time.Duration) string {
	secs := int64(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%dm %ds", secs/60, secs%60)
}
