package simulator

import (
	"math/rand"

	"github.com/chrisdamba/marketsim/internal/factories"
	"github.com/chrisdamba/marketsim/internal/models"
)

// newPathState builds the fresh per-path world: stalls first, then shoppers,
// so the rng stream is always consumed in the same order.
func newPathState(config *models.Config, rng *rand.Rand) *models.PathState {
	stallFactory := &factories.StallFactory{}
	shopperFactory := &factories.ShopperFactory{}
	state := &models.PathState{
		Stalls:   stallFactory.CreateStalls(config, rng),
		Shoppers: shopperFactory.CreateShoppers(config, rng),
		Series:   make([]float64, 0, config.MaxTimeSteps+1),
	}
	state.Series = append(state.Series, state.MeanItemsRemaining())
	return state
}

// runPath advances one path through its full time budget and returns its
// metric series of length MaxTimeSteps+1 plus the tick-0 layout snapshot.
// The loop never exits early: even when every list is empty the remaining
// ticks still record the metric, so all paths produce series of equal length.
func runPath(config *models.Config, path int, rng *rand.Rand) (models.PathSeries, *models.PathSnapshot) {
	state := newPathState(config, rng)
	snapshot := state.Snapshot()
	for step := 0; step < config.MaxTimeSteps; step++ {
		for _, sh := range state.Shoppers {
			stepShopper(sh, state.Stalls, config.WalkingSpeed, config.ArrivalRadius)
		}
		state.Tick++
		state.Series = append(state.Series, state.MeanItemsRemaining())
	}
	return models.PathSeries{Path: path, Series: state.Series}, snapshot
}
