package optimizer

import (
	"fmt"
	"sync"

	"github.com/greerreNFL/nfelounits/pkg/logger"
	"github.com/sirupsen/logrus"
)

// RestartConfig controls a pool of independent randomized restarts. Each
// restart owns its own optimizer (and therefore its own config clone), so
// the workers share no mutable state.
type RestartConfig struct {
	Restarts int
	Workers  int
	BaseSeed int64
}

// restartOutcome pairs a restart index with its result for deterministic
// best-of selection.
type restartOutcome struct {
	index  int
	result *Result
	err    error
}

// RunRestarts executes n independent restarts across a worker pool and
// returns the best result by loss, ties broken by restart index. The build
// function must return a fully isolated optimizer for each restart.
func RunRestarts(rc RestartConfig, build func(restart int, seed int64) (*Optimizer, error)) (*Result, error) {
	if rc.Restarts <= 0 {
		return nil, fmt.Errorf("restarts must be positive")
	}
	workers := rc.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > rc.Restarts {
		workers = rc.Restarts
	}

	log := logger.WithComponent("restart_pool")
	jobs := make(chan int)
	outcomes := make(chan restartOutcome, rc.Restarts)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				opt, err := build(i, rc.BaseSeed+int64(i))
				if err != nil {
					outcomes <- restartOutcome{index: i, err: err}
					continue
				}
				res, err := opt.Optimize()
				outcomes <- restartOutcome{index: i, result: res, err: err}
			}
		}()
	}

	go func() {
		for i := 0; i < rc.Restarts; i++ {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
		close(outcomes)
	}()

	var best *Result
	bestIndex := -1
	var firstErr error
	completed := 0
	for out := range outcomes {
		if out.err != nil {
			if firstErr == nil {
				firstErr = out.err
			}
			log.WithError(out.err).WithField("restart", out.index).Warn("restart failed")
			continue
		}
		completed++
		log.WithFields(logrus.Fields{
			"restart": out.index,
			"loss":    out.result.Loss,
		}).Info("restart complete")
		if best == nil ||
			out.result.Loss < best.Loss ||
			(out.result.Loss == best.Loss && out.index < bestIndex) {
			best = out.result
			bestIndex = out.index
		}
	}

	if best == nil {
		return nil, fmt.Errorf("all %d restarts failed: %w", rc.Restarts, firstErr)
	}
	log.WithFields(logrus.Fields{
		"completed": completed,
		"best_loss": best.Loss,
	}).Info("restart pool complete")
	return best, nil
}
