// Package batch runs the solver over many CNF problems concurrently.
//
// Each file is fully independent: it gets its own deterministically derived
// RNG and touches no shared mutable state, so a batch is embarrassingly
// parallel. A file that fails to parse is skipped and logged, never
// aborting the rest of the batch. Every solve is followed by an independent
// audit of the claimed solution; a disagreement between the engine and the
// validator is flagged and logged, not crashed on.
package batch

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/dacroq/satcore/cnf"
	"github.com/dacroq/satcore/verify"
	"github.com/dacroq/satcore/walksat"
)

// seedMix spreads consecutive file indices over the seed space (golden
// ratio increment), so per-file RNG streams do not collide.
const seedMix = 0x9E3779B9

// A File is one CNF problem to solve, already read from wherever it lives.
// The runner does no I/O of its own.
type File struct {
	Name string
	Text string
}

// A FileResult pairs a solve with its independent audit.
type FileResult struct {
	File     string
	Result   walksat.SolveResult
	Report   verify.Report
	Mismatch bool // engine claim and audit verdict disagree
}

// A SkippedFile records a problem that could not be parsed.
type SkippedFile struct {
	File string
	Err  error
}

// A Result is the outcome of one batch run.
type Result struct {
	ID      uuid.UUID
	Results []FileResult
	Skipped []SkippedFile
}

// A Runner solves batches of CNF files. The zero value is not usable; get
// one from NewRunner and adjust its fields before the first Run.
type Runner struct {
	// Workers bounds the number of concurrent solves.
	Workers int
	// BaseSeed derives each file's RNG seed, keeping reruns reproducible.
	BaseSeed int64
	// Timeout is the per-file wall-clock budget, layered on top of the
	// engine's step budget through its Stop hook. 0 means no limit.
	Timeout time.Duration
	// Config is the solver configuration template. Its Rand and Stop
	// fields are replaced per file.
	Config walksat.Config
	Logger *logrus.Logger
}

// NewRunner returns a runner with the reference solver configuration,
// four workers and a discarding logger.
func NewRunner(baseSeed int64) *Runner {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &Runner{
		Workers:  4,
		BaseSeed: baseSeed,
		Config:   walksat.DefaultConfig(0),
		Logger:   logger,
	}
}

// Run solves every file in the batch and returns per-file results in input
// order, with unparseable files collected separately. Cancelling ctx stops
// in-flight searches at their next step.
func (r *Runner) Run(ctx context.Context, files []File) Result {
	batch := Result{ID: uuid.New()}
	log := r.Logger.WithField("batch", batch.ID)

	type slot struct {
		res     FileResult
		done    bool
		skipped *SkippedFile
	}
	slots := make([]slot, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Workers)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			f, err := cnf.Parse(file.Text)
			if err != nil {
				// Fatal for this file only: record, log and move on.
				err = errors.Wrapf(err, "skipping %s", file.Name)
				log.WithField("file", file.Name).WithError(err).Warn("unparseable problem")
				slots[i].skipped = &SkippedFile{File: file.Name, Err: err}
				return nil
			}
			res := walksat.SolveFormula(file.Name, f, r.fileConfig(ctx, i))
			report := verify.AuditResult(res)
			mismatch := res.SolutionFound != (report.State == verify.StateChecked && report.IsValid)
			if mismatch {
				log.WithFields(logrus.Fields{
					"file":    file.Name,
					"claimed": res.SolutionFound,
					"audit":   report.Message,
				}).Error("engine claim contradicts independent audit")
			}
			log.WithFields(logrus.Fields{
				"file":     file.Name,
				"found":    res.SolutionFound,
				"steps":    res.TotalSteps,
				"restarts": res.Restarts,
				"micros":   res.ComputationTimeMicros,
			}).Info("solved")
			slots[i].res = FileResult{File: file.Name, Result: res, Report: report, Mismatch: mismatch}
			slots[i].done = true
			return nil
		})
	}
	// Workers never return errors; Wait is only a join point.
	_ = g.Wait()

	for _, s := range slots {
		if s.skipped != nil {
			batch.Skipped = append(batch.Skipped, *s.skipped)
		} else if s.done {
			batch.Results = append(batch.Results, s.res)
		}
	}
	return batch
}

// fileConfig derives the per-file solver configuration: an RNG seeded from
// the base seed and the file's index, and a Stop hook carrying both the
// context and the wall-clock cutoff.
func (r *Runner) fileConfig(ctx context.Context, index int) walksat.Config {
	cfg := r.Config
	cfg.Rand = walksat.DefaultConfig(r.BaseSeed + int64(index)*seedMix).Rand
	var deadline time.Time
	if r.Timeout > 0 {
		deadline = time.Now().Add(r.Timeout)
	}
	cfg.Stop = func() bool {
		if ctx.Err() != nil {
			return true
		}
		return !deadline.IsZero() && time.Now().After(deadline)
	}
	return cfg
}
