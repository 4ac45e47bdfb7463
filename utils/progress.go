package utils

import (
	"fmt"
	"io"
	"sync"

	"github.com/0xT4nj1r0/crowdplex/rankmovies"
)

// ConsoleReporter renders pipeline progress on a single console line. Its
// Report method matches rankmovies.ProgressFunc and is safe for the
// concurrent, fire-and-forget dispatch the pipeline uses.
type ConsoleReporter struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

func (r *ConsoleReporter) Report(stage rankmovies.Stage, current, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	percent := 0.0
	if total > 0 {
		percent = float64(current) / float64(total) * 100
	}
	fmt.Fprintf(r.out, "\r[%s] %d/%d (%.1f%%)          ", stageLabel(stage), current, total, percent)
}

func stageLabel(stage rankmovies.Stage) string {
	switch stage {
	case rankmovies.StageLocating:
		return "🏠 locating theatres"
	case rankmovies.StageCollecting:
		return "🎬 collecting showtimes"
	case rankmovies.StageEnriching:
		return "💺 checking seats"
	default:
		return string(stage)
	}
}
