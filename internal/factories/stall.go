package factories

import (
	"math/rand"

	"github.com/chrisdamba/marketsim/internal/models"
	"github.com/lucsky/cuid"
)

type StallFactory struct{}

// CreateStalls builds one stall per configured position, each stocking
// ItemsPerStall distinct items drawn uniformly without replacement from the
// catalog. All randomness comes from the path's rng.
func (sf *StallFactory) CreateStalls(config *models.Config, rng *rand.Rand) []*models.Stall {
	stalls := make([]*models.Stall, len(config.StallPositions))
	for i, x := range config.StallPositions {
		stalls[i] = &models.Stall{
			ID:        cuid.New(),
			Index:     i,
			Position:  models.Location{X: x, Y: 0},
			Inventory: sampleItems(config.ItemCatalog, config.ItemsPerStall, rng),
		}
	}
	return stalls
}

// sampleItems draws n distinct items from the catalog without replacement.
func sampleItems(catalog []string, n int, rng *rand.Rand) []string {
	items := make([]string, n)
	for i, j := range rng.Perm(len(catalog))[:n] {
		items[i] = catalog[j]
	}
	return items
}
