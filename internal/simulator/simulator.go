package simulator

import (
	"log"
	"math/rand"
	"sync"

	"github.com/chrisdamba/marketsim/internal/models"
	"github.com/schollz/progressbar/v3"
)

// Simulator runs PathCount independent paths of the marketplace simulation
// and collects their metric series into one matrix.
type Simulator struct {
	Config *models.Config

	// Snapshot of the first path's initial layout, kept for the export
	// layer so a single path can be visualized downstream.
	FirstPath *models.PathSnapshot
}

func NewSimulator(config *models.Config) *Simulator {
	return &Simulator{Config: config}
}

// pathRng derives the independent random stream for one path. Seeding by
// path index keeps every path reproducible no matter which worker runs it.
func (s *Simulator) pathRng(path int) *rand.Rand {
	return rand.New(rand.NewSource(s.Config.Seed + int64(path)))
}

// Run executes all paths and returns the [tick][path] result matrix. With
// Workers <= 1 the paths run strictly sequentially; otherwise they are spread
// over a bounded worker pool. Either way each path owns its seeded rng and
// writes a disjoint column, so the output is identical.
func (s *Simulator) Run() *models.RunResult {
	cfg := s.Config
	result := models.NewRunResult(cfg.MaxTimeSteps+1, cfg.PathCount)
	bar := progressbar.Default(int64(cfg.PathCount), "simulating paths")

	log.Printf("Running %d paths of %d ticks, %d shoppers, %d stalls",
		cfg.PathCount, cfg.MaxTimeSteps, cfg.ShopperCount, len(cfg.StallPositions))

	if cfg.Workers <= 1 {
		for path := 0; path < cfg.PathCount; path++ {
			series, snapshot := runPath(cfg, path, s.pathRng(path))
			result.SetSeries(series)
			if path == 0 {
				s.FirstPath = snapshot
			}
			_ = bar.Add(1)
		}
		return result
	}

	paths := make(chan int)
	snapshots := make([]*models.PathSnapshot, cfg.PathCount)
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				series, snapshot := runPath(cfg, path, s.pathRng(path))
				result.SetSeries(series)
				snapshots[path] = snapshot
				_ = bar.Add(1)
			}
		}()
	}
	for path := 0; path < cfg.PathCount; path++ {
		paths <- path
	}
	close(paths)
	wg.Wait()
	s.FirstPath = snapshots[0]
	return result
}
