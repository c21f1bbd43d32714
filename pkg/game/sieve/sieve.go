// Package sieve scans a range of seeds and reports those a filter
// accepts.
package sieve

import (
	"bufio"
	"context"
	"io"
	"runtime"
	"sync/atomic"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"spireseed/pkg/game/filter"
	"spireseed/pkg/game/seed"
)

// DefaultChunkSize is the number of seeds a worker takes at a time.
const DefaultChunkSize = 1 << 12

// ErrEmptyRange is returned when End is below Start.
var ErrEmptyRange = errors.New("sieve range is empty")

// Sieve scans the raw seeds Start through End inclusive.
type Sieve struct {
	Start, End uint64
	Filter     filter.Filter

	// Workers defaults to GOMAXPROCS.
	Workers int
	// ChunkSize defaults to DefaultChunkSize.
	ChunkSize uint64
	// Log receives progress at debug level. Nil disables logging.
	Log *logrus.Entry
}

// Stats counts the seeds a run scanned and accepted.
type Stats struct {
	Scanned  uint64
	Accepted uint64
}

type chunk struct {
	index      uint64
	first, end uint64
}

type result struct {
	index    uint64
	scanned  uint64
	accepted []seed.Seed
}

func (s *Sieve) workers() int {
	if s.Workers > 0 {
		return s.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (s *Sieve) chunkSize() uint64 {
	if s.ChunkSize > 0 {
		return s.ChunkSize
	}
	return DefaultChunkSize
}

// chunks returns the number of chunks covering the range. Span is computed
// as End-Start so a range ending at MaxUint64 does not overflow.
func (s *Sieve) chunks() uint64 {
	return (s.End-s.Start)/s.chunkSize() + 1
}

func (s *Sieve) chunk(index uint64) chunk {
	size := s.chunkSize()
	first := s.Start + index*size
	end := s.End
	if s.End-first >= size {
		end = first + size - 1
	}
	return chunk{index: index, first: first, end: end}
}

// Run writes the seed string of every accepted seed to w, one per line, in
// ascending order. Cancelling ctx stops the scan; seeds already written
// stay written and the context error is returned.
func (s *Sieve) Run(ctx context.Context, w io.Writer) (Stats, error) {
	if s.End < s.Start {
		return Stats{}, errors.Wrapf(ErrEmptyRange, "%d..%d", s.Start, s.End)
	}
	if s.Filter == nil {
		return Stats{}, errors.New("sieve has no filter")
	}

	var (
		total   = s.chunks()
		work    = make(chan chunk)
		results = make(chan result)
		scanned atomic.Uint64
	)
	s.debug(logrus.Fields{
		"start": s.Start, "end": s.End, "chunks": total,
		"workers": s.workers(), "filter": s.Filter.String(),
	}, "sieve started")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(work)
		for i := uint64(0); i < total; i++ {
			select {
			case work <- s.chunk(i):
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})
	for range s.workers() {
		g.Go(func() error {
			for c := range work {
				r, err := s.scan(gctx, c)
				scanned.Add(r.scanned)
				if err != nil {
					return err
				}
				select {
				case results <- r:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		g.Wait()
		close(results)
	}()

	stats, writeErr := s.collect(results, w)
	err := g.Wait()
	stats.Scanned = scanned.Load()
	if writeErr != nil {
		err = writeErr
	}
	s.debug(logrus.Fields{"scanned": stats.Scanned, "accepted": stats.Accepted}, "sieve finished")
	return stats, err
}

// checkEvery is how many seeds a worker scans between context checks.
const checkEvery = 256

func (s *Sieve) scan(ctx context.Context, c chunk) (result, error) {
	r := result{index: c.index}
	for v := c.first; ; v++ {
		if r.scanned%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return r, err
			}
		}
		if !s.Filter.Reject(seed.Seed(v)) {
			r.accepted = append(r.accepted, seed.Seed(v))
		}
		r.scanned++
		if v == c.end {
			return r, nil
		}
	}
}

// collect writes results in chunk order, holding early arrivals in a tree
// keyed by chunk index. It drains results even after a write error so
// workers never block.
func (s *Sieve) collect(results <-chan result, w io.Writer) (Stats, error) {
	var (
		stats   Stats
		pending = redblacktree.NewWith(utils.UInt64Comparator)
		next    uint64
		out     = bufio.NewWriter(w)
		err     error
	)
	for r := range results {
		pending.Put(r.index, r)
		for {
			v, found := pending.Get(next)
			if !found {
				break
			}
			pending.Remove(next)
			next++
			done := v.(result)
			stats.Accepted += uint64(len(done.accepted))
			for _, accepted := range done.accepted {
				if err == nil {
					_, err = out.WriteString(accepted.String() + "\n")
				}
			}
			if err == nil && len(done.accepted) > 0 {
				err = out.Flush()
			}
		}
		if pending.Size() > 0 {
			s.debug(logrus.Fields{"pending": pending.Size(), "next": next}, "chunks out of order")
		}
	}
	if err == nil {
		err = out.Flush()
	}
	return stats, errors.Wrap(err, "write seeds")
}

func (s *Sieve) debug(fields logrus.Fields, msg string) {
	if s.Log != nil {
		s.Log.WithFields(fields).Debug(msg)
	}
}
