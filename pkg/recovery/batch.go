package recovery

import (
	"context"
	"errors"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/taurusgroup/share-recovery/pkg/share"
	"golang.org/x/sync/errgroup"
)

// Record is one named input of Batch. A record whose Err is set failed to load,
// and is reported as is.
type Record struct {
	Name string
	Set  *share.Set
	Err  error
}

// Result is the outcome of one Record.
type Result struct {
	Name   string
	Secret *Secret
	Err    error
}

// Batch recovers every record concurrently, with at most workers records in flight.
// If workers <= 0, the number of available CPUs is used instead.
//
// Records are independent: a failing record does not affect the others.
// Results are returned in the order of records. Once ctx is done, records that
// have not started yet fail with ctx.Err().
func Batch(ctx context.Context, records []Record, workers int, log zerolog.Logger, opts ...Option) []Result {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(records))
	var errGroup errgroup.Group
	errGroup.SetLimit(workers)

	for i := range records {
		idx := i
		r := records[idx]
		results[idx].Name = r.Name
		if err := ctx.Err(); err != nil {
			results[idx].Err = err
			continue
		}
		errGroup.Go(func() error {
			results[idx].Secret, results[idx].Err = recoverRecord(ctx, r, log, opts...)
			return nil
		})
	}
	_ = errGroup.Wait()
	return results
}

func recoverRecord(ctx context.Context, r Record, log zerolog.Logger, opts ...Option) (*Secret, error) {
	l := log.With().Str("record", r.Name).Logger()
	if r.Err != nil {
		l.Error().Err(r.Err).Msg("failed to load record")
		return nil, r.Err
	}
	if r.Set == nil {
		err := errors.New("recovery: record has no share set")
		l.Error().Err(err).Msg("failed to load record")
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l = l.With().Int("n", r.Set.N).Int("k", r.Set.K).Logger()
	if r.Set.N != len(r.Set.Shares) {
		l.Warn().Int("shares", len(r.Set.Shares)).Msg("declared share count differs from the shares present")
	}

	secret, err := Recover(r.Set, opts...)
	if err != nil {
		l.Error().Err(err).Msg("reconstruction failed")
		return nil, err
	}
	l.Debug().Str("fingerprint", secret.Fingerprint).Msg("secret recovered")
	return secret, nil
}
