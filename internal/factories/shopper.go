package factories

import (
	"math/rand"

	"github.com/chrisdamba/marketsim/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

type ShopperFactory struct{}

// CreateShoppers builds the full shopper population for one path, in index
// order so the rng stream is consumed deterministically. The faker instance
// is seeded from the path rng and stays local to the call, so concurrent
// paths never share it.
func (sf *ShopperFactory) CreateShoppers(config *models.Config, rng *rand.Rand) []*models.Shopper {
	fake := faker.NewWithSeed(rand.NewSource(rng.Int63()))
	shoppers := make([]*models.Shopper, config.ShopperCount)
	for i := range shoppers {
		shoppers[i] = sf.newShopper(config, rng, &fake)
	}
	return shoppers
}

// CreateShopper builds a single shopper, mainly for callers outside the path
// loop that want one agent at a time.
func (sf *ShopperFactory) CreateShopper(config *models.Config, rng *rand.Rand) *models.Shopper {
	fake := faker.NewWithSeed(rand.NewSource(rng.Int63()))
	return sf.newShopper(config, rng, &fake)
}

// newShopper places a shopper uniformly at random inside the configured
// rectangle with a shopping list of 1..MaxListSize distinct items. The ID and
// name come from cuid/faker and are cosmetic; only the rng draws feed the
// simulation, so a path stays reproducible for a given seed.
func (sf *ShopperFactory) newShopper(config *models.Config, rng *rand.Rand, fake *faker.Faker) *models.Shopper {
	listSize := rng.Intn(config.MaxListSize) + 1
	return &models.Shopper{
		ID:   cuid.New(),
		Name: fake.Person().Name(),
		Position: models.Location{
			X: (rng.Float64()*2 - 1) * config.SpaceHalfWidthX,
			Y: (rng.Float64()*2 - 1) * config.SpaceHalfWidthY,
		},
		ShoppingList: sampleItems(config.ItemCatalog, listSize, rng),
		Visited:      make(map[int]bool),
		Status:       models.ShopperStatusBrowsing,
	}
}
