package simulator

import (
	"testing"

	"github.com/chrisdamba/marketsim/internal/models"
)

func newStall(index int, x float64, inventory ...string) *models.Stall {
	return &models.Stall{
		Index:     index,
		Position:  models.Location{X: x, Y: 0},
		Inventory: inventory,
	}
}

func newShopper(x, y float64, list ...string) *models.Shopper {
	return &models.Shopper{
		Position:     models.Location{X: x, Y: y},
		ShoppingList: list,
		Visited:      make(map[int]bool),
		Status:       models.ShopperStatusBrowsing,
	}
}

// Scenario: a shopper standing on the only stall buys on the first tick and
// stays finished forever after.
func TestImmediatePurchaseAtCoLocatedStall(t *testing.T) {
	stalls := []*models.Stall{newStall(0, 0, "apples")}
	sh := newShopper(0, 0, "apples")

	state := &models.PathState{Stalls: stalls, Shoppers: []*models.Shopper{sh}}
	if got := state.MeanItemsRemaining(); got != 1 {
		t.Fatalf("tick-0 metric %v, expected 1", got)
	}

	stepShopper(sh, stalls, 0.5, 0.25)
	if got := state.MeanItemsRemaining(); got != 0 {
		t.Fatalf("tick-1 metric %v, expected 0", got)
	}
	if sh.Target != nil {
		t.Fatalf("target not cleared after purchase")
	}
	if !sh.Visited[0] {
		t.Fatalf("stall 0 not recorded as visited")
	}
	if sh.Status != models.ShopperStatusDone {
		t.Fatalf("shopper with empty list not done")
	}

	// further ticks must be no-ops
	before := sh.Position
	for i := 0; i < 5; i++ {
		stepShopper(sh, stalls, 0.5, 0.25)
	}
	if sh.Position != before {
		t.Fatalf("done shopper moved from %v to %v", before, sh.Position)
	}
	if got := state.MeanItemsRemaining(); got != 0 {
		t.Fatalf("metric changed after completion: %v", got)
	}
}

// Scenario: the wanted item is stocked nowhere; the shopper visits the only
// stall, keeps its item and terminally gives up.
func TestUnsatisfiableListStabilizes(t *testing.T) {
	stalls := []*models.Stall{newStall(0, 10, "bananas")}
	sh := newShopper(0, 0, "apples")

	for tick := 0; tick < 60; tick++ {
		stepShopper(sh, stalls, 0.5, 0.25)
	}
	if len(sh.ShoppingList) != 1 || sh.ShoppingList[0] != "apples" {
		t.Fatalf("list should still hold apples, got %v", sh.ShoppingList)
	}
	if !sh.Visited[0] {
		t.Fatalf("the only stall was never visited")
	}
	if sh.Status != models.ShopperStatusDone {
		t.Fatalf("shopper with all stalls exhausted should be done, got %q", sh.Status)
	}
}

// Scenario: distance 10 along x at speed 0.5 with radius 0.25 takes exactly
// 20 move ticks before the purchase tick.
func TestExactMoveTickCount(t *testing.T) {
	stalls := []*models.Stall{newStall(0, 10, "apples")}
	sh := newShopper(0, 0, "apples")

	moves := 0
	for tick := 0; tick < 60 && !sh.Visited[0]; tick++ {
		before := sh.Position
		stepShopper(sh, stalls, 0.5, 0.25)
		if sh.Position != before {
			moves++
		}
	}
	if !sh.Visited[0] {
		t.Fatalf("shopper never arrived")
	}
	if moves != 20 {
		t.Fatalf("expected exactly 20 move ticks, got %d", moves)
	}
	if len(sh.ShoppingList) != 0 {
		t.Fatalf("purchase did not clear the list: %v", sh.ShoppingList)
	}
}

func TestEquidistantStallsTieBreakByLowestIndex(t *testing.T) {
	stalls := []*models.Stall{
		newStall(0, -5, "bread"),
		newStall(1, 5, "bread"),
	}
	sh := newShopper(0, 0, "bread")
	stepShopper(sh, stalls, 0.5, 0.25)
	if sh.Target == nil || sh.Target.Index != 0 {
		t.Fatalf("expected stall 0 to win the tie, got %+v", sh.Target)
	}
}

func TestPurchaseDoesNotMoveShopper(t *testing.T) {
	stalls := []*models.Stall{newStall(0, 0.1, "milk")}
	sh := newShopper(0, 0, "milk", "spices")
	stepShopper(sh, stalls, 0.5, 0.25)
	if sh.Position.X != 0 || sh.Position.Y != 0 {
		t.Fatalf("shopper moved on a purchase tick: %v", sh.Position)
	}
	if len(sh.ShoppingList) != 1 || sh.ShoppingList[0] != "spices" {
		t.Fatalf("expected spices to remain, got %v", sh.ShoppingList)
	}
	if sh.Status != models.ShopperStatusBrowsing {
		t.Fatalf("shopper with items left should keep browsing")
	}
}

func TestMoveDoesNotPurchase(t *testing.T) {
	stalls := []*models.Stall{newStall(0, 10, "milk")}
	sh := newShopper(0, 0, "milk")
	stepShopper(sh, stalls, 0.5, 0.25)
	if len(sh.ShoppingList) != 1 {
		t.Fatalf("shopper purchased on a move tick")
	}
	if sh.Position.X != 0.5 || sh.Position.Y != 0 {
		t.Fatalf("expected move to (0.5, 0), got %v", sh.Position)
	}
}

func TestVisitedStallsGrowMonotonically(t *testing.T) {
	stalls := []*models.Stall{
		newStall(0, -2, "bread"),
		newStall(1, 2, "eggs"),
		newStall(2, 6, "fish"),
	}
	sh := newShopper(0, 1, "honey") // stocked nowhere, forces a full tour
	visited := make(map[int]bool)
	for tick := 0; tick < 80; tick++ {
		stepShopper(sh, stalls, 0.5, 0.25)
		for idx := range visited {
			if !sh.Visited[idx] {
				t.Fatalf("stall %d disappeared from the visited set", idx)
			}
		}
		for idx := range sh.Visited {
			visited[idx] = true
		}
	}
	if len(sh.Visited) != len(stalls) {
		t.Fatalf("expected all %d stalls visited, got %v", len(stalls), sh.Visited)
	}
}

func TestMoveHeadsTowardStall(t *testing.T) {
	stalls := []*models.Stall{newStall(0, 3, "rice")}
	sh := newShopper(0, 4, "rice") // distance 5, heading (3/5, -4/5)
	stepShopper(sh, stalls, 1, 0.25)
	if dx := sh.Position.X - 0.6; dx > 1e-12 || dx < -1e-12 {
		t.Fatalf("expected x=0.6, got %v", sh.Position.X)
	}
	if dy := sh.Position.Y - 3.2; dy > 1e-12 || dy < -1e-12 {
		t.Fatalf("expected y=3.2, got %v", sh.Position.Y)
	}
}
