package bench

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/FilaCo/ads/collection"
	"github.com/FilaCo/ads/pkg/logging"
)

// Result aggregates the outcome of one harness run.
type Result struct {
	Ops     int
	Reads   int
	Hits    int
	Inserts int
	Erases  int
	Elapsed time.Duration
}

// Throughput returns achieved operations per second.
func (r *Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Ops) / r.Elapsed.Seconds()
}

// Runner executes a Workload against a collection.Map.
type Runner struct {
	cfg    Workload
	target collection.Map[uint64, uint64]
	logger logging.Logger
}

// NewRunner creates a runner for cfg. A nil target selects the structure
// named by the config; a nil logger falls back to the global one.
func NewRunner(cfg Workload, target collection.Map[uint64, uint64], logger logging.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload: %w", err)
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	if target == nil {
		target = newTarget(cfg.Structure)
	}
	return &Runner{cfg: cfg, target: target, logger: logger}, nil
}

func newTarget(structure string) collection.Map[uint64, uint64] {
	if structure == StructureSyncMap {
		return collection.NewSyncMap[uint64, uint64](nil)
	}
	return collection.NewOrderedMap[uint64, uint64]()
}

// Run executes the workload until every operation completed or ctx is
// cancelled. Each worker draws keys from its own seeded source, so runs
// with equal configs replay the same operation stream.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if r.cfg.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(r.cfg.Rate), r.cfg.Workers)
	}

	r.logger.Info("starting workload",
		"structure", r.cfg.Structure,
		"ops", r.cfg.Ops,
		"workers", r.cfg.Workers,
		"read_ratio", r.cfg.ReadRatio,
		"rate", r.cfg.Rate,
	)

	var mu sync.Mutex
	total := &Result{}
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < r.cfg.Workers; w++ {
		ops := r.cfg.Ops / r.cfg.Workers
		if w < r.cfg.Ops%r.cfg.Workers {
			ops++
		}
		rng := rand.New(rand.NewSource(r.cfg.Seed + int64(w)))

		g.Go(func() error {
			var local Result
			for i := 0; i < ops; i++ {
				if err := limiter.Wait(ctx); err != nil {
					return fmt.Errorf("workload aborted after %d ops: %w", local.Ops, err)
				}

				key := uint64(rng.Intn(r.cfg.KeySpace))
				switch {
				case rng.Float64() < r.cfg.ReadRatio:
					local.Reads++
					if _, ok := r.target.Get(key); ok {
						local.Hits++
					}
				case rng.Intn(3) == 0:
					local.Erases++
					r.target.Erase(key)
				default:
					local.Inserts++
					r.target.Insert(key, uint64(i))
				}
				local.Ops++
			}

			mu.Lock()
			total.Ops += local.Ops
			total.Reads += local.Reads
			total.Hits += local.Hits
			total.Inserts += local.Inserts
			total.Erases += local.Erases
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	total.Elapsed = time.Since(start)

	r.logger.Info("workload finished",
		"ops", total.Ops,
		"reads", total.Reads,
		"hits", total.Hits,
		"inserts", total.Inserts,
		"erases", total.Erases,
		"elapsed", total.Elapsed.String(),
		"throughput_ops_s", int(total.Throughput()),
		"final_len", r.target.Len(),
	)
	return total, nil
}
