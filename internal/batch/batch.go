// Package batch parses many card fragments concurrently. A card that fails
// to parse is recorded in its result and does not stop the others.
package batch

import (
	"context"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/peterkuimelis/wixoss/internal/cache"
	"github.com/peterkuimelis/wixoss/internal/card"
	"github.com/peterkuimelis/wixoss/internal/extract"
	"github.com/peterkuimelis/wixoss/internal/log"
)

// Job is one fragment to parse.
type Job struct {
	Source string // file path or other label used in logs
	Load   func() (string, error)
}

// Result is the outcome of one job, in the position of its job.
type Result struct {
	Source string
	Card   card.Card
	Err    error
}

// OK reports whether the card parsed.
func (r Result) OK() bool { return r.Err == nil }

// Runner parses jobs with a bounded number of workers.
type Runner struct {
	// Workers caps concurrent parses; zero means GOMAXPROCS.
	Workers int
	// Kind forces a kind; KindUnknown detects it from each fragment.
	Kind   card.Kind
	Logger log.EventLogger
}

// Run parses every job. Results keep job order. The returned error is
// non-nil only when ctx ends before all jobs ran; per-card failures live
// in the results.
func (r Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.Discard{}
	}
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	logger.Log(log.NewBatchStartEvent(len(jobs), workers))

	results := make([]Result, len(jobs))
	var g errgroup.Group
	g.SetLimit(workers)

	started := 0
	for i, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		started++
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Source: job.Source, Err: err}
				return nil
			}
			results[i] = r.parse(job, logger)
			return nil
		})
	}
	_ = g.Wait()

	for i := started; i < len(jobs); i++ {
		results[i] = Result{Source: jobs[i].Source, Err: ctx.Err()}
	}

	parsed, failed := 0, 0
	for _, res := range results {
		if res.OK() {
			parsed++
		} else {
			failed++
		}
	}
	logger.Log(log.NewBatchDoneEvent(parsed, failed))
	return results, ctx.Err()
}

func (r Runner) parse(job Job, logger log.EventLogger) Result {
	res := Result{Source: job.Source}

	source, err := job.Load()
	if err != nil {
		res.Err = err
		logger.Log(log.NewFailedEvent("", job.Source, err))
		return res
	}

	rec, err := card.ParseAs(r.Kind, source)
	if err != nil {
		res.Err = err
		logger.Log(log.NewFailedEvent("", job.Source, err))
		return res
	}

	logSentinels(rec.Header, logger)
	res.Card = card.Project(rec)
	logger.Log(log.NewParsedEvent(rec.No, rec.Kind().Slug(), rec.Features.Len()))
	return res
}

func logSentinels(h extract.Header, logger log.EventLogger) {
	if h.No == extract.UnknownNo {
		logger.Log(log.NewSentinelEvent("", "card number", h.No))
	}
	if h.Rarity == extract.UnknownRarity {
		logger.Log(log.NewSentinelEvent(h.No, "rarity", h.Rarity))
	}
	if h.Artist == extract.UnknownArtist {
		logger.Log(log.NewSentinelEvent(h.No, "artist", h.Artist))
	}
}

// --- Job sources ---

// FromStrings wraps in-memory fragments.
func FromStrings(sources map[string]string, order []string) []Job {
	jobs := make([]Job, 0, len(order))
	for _, name := range order {
		body := sources[name]
		jobs = append(jobs, Job{Source: name, Load: func() (string, error) { return body, nil }})
	}
	return jobs
}

// FromFiles reads each path when its job runs.
func FromFiles(paths []string) []Job {
	jobs := make([]Job, 0, len(paths))
	for _, p := range paths {
		jobs = append(jobs, Job{Source: p, Load: func() (string, error) {
			data, err := os.ReadFile(p)
			return string(data), err
		}})
	}
	return jobs
}

// FromCache lists every card in the cache directory.
func FromCache(d *cache.Dir, logger log.EventLogger) ([]Job, error) {
	if logger == nil {
		logger = log.Discard{}
	}
	entries, err := d.List(func(p, reason string) {
		logger.Log(log.NewSkippedEvent(p, reason))
	})
	if err != nil {
		return nil, err
	}
	jobs := make([]Job, 0, len(entries))
	for _, e := range entries {
		jobs = append(jobs, Job{Source: e.Path, Load: func() (string, error) { return d.Read(e) }})
	}
	return jobs, nil
}
