package models

import "math"

type Location struct {
	X float64 `json:"x" parquet:"name=x,type=DOUBLE"`
	Y float64 `json:"y" parquet:"name=y,type=DOUBLE"`
}

// DistanceTo returns the Euclidean distance between two locations.
func (l Location) DistanceTo(other Location) float64 {
	return math.Hypot(other.X-l.X, other.Y-l.Y)
}

// Stall is a stationary trader on the y=0 axis. Its inventory is drawn once
// per path and never changes afterwards (unlimited stock, no pricing).
type Stall struct {
	ID        string   `json:"id"`
	Index     int      `json:"index"`
	Position  Location `json:"position"`
	Inventory []string `json:"inventory"`
}

// Stocks reports whether the stall carries the given item.
func (st *Stall) Stocks(item string) bool {
	for _, have := range st.Inventory {
		if have == item {
			return true
		}
	}
	return false
}

// Shopper is a mobile agent working through a shopping list. ID and Name are
// display metadata only; nothing in the simulation reads them.
type Shopper struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Position     Location `json:"position"`
	ShoppingList []string `json:"shopping_list"`
	Target       *Stall       `json:"-"`
	Visited      map[int]bool `json:"-"`
	Status       string       `json:"status"`
}

// Active reports whether the shopper still takes part in the simulation.
func (sh *Shopper) Active() bool {
	return sh.Status != ShopperStatusDone && len(sh.ShoppingList) > 0
}

// RemoveStocked drops every list item the stall carries and returns how many
// were removed. Items the stall does not stock stay on the list.
func (sh *Shopper) RemoveStocked(st *Stall) int {
	kept := sh.ShoppingList[:0]
	removed := 0
	for _, item := range sh.ShoppingList {
		if st.Stocks(item) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	sh.ShoppingList = kept
	return removed
}

// PathState is the full mutable snapshot for one path: all stalls, all
// shoppers, the tick counter and the metric series recorded so far.
type PathState struct {
	Stalls   []*Stall
	Shoppers []*Shopper
	Tick     int
	Series   []float64
}

// MeanItemsRemaining is the items-remaining metric: the mean shopping list
// size across all shoppers, done ones included.
func (ps *PathState) MeanItemsRemaining() float64 {
	total := 0
	for _, sh := range ps.Shoppers {
		total += len(sh.ShoppingList)
	}
	return float64(total) / float64(len(ps.Shoppers))
}

// PathSnapshot captures the initial layout of one path for the export layer:
// stall placement plus shopper starting positions and lists.
type PathSnapshot struct {
	Stalls   []Stall   `json:"stalls"`
	Shoppers []Shopper `json:"shoppers"`
}

// Snapshot deep-copies the current stalls and shoppers.
func (ps *PathState) Snapshot() *PathSnapshot {
	snap := &PathSnapshot{
		Stalls:   make([]Stall, len(ps.Stalls)),
		Shoppers: make([]Shopper, len(ps.Shoppers)),
	}
	for i, st := range ps.Stalls {
		copied := *st
		copied.Inventory = append([]string(nil), st.Inventory...)
		snap.Stalls[i] = copied
	}
	for i, sh := range ps.Shoppers {
		copied := *sh
		copied.ShoppingList = append([]string(nil), sh.ShoppingList...)
		copied.Target = nil
		copied.Visited = nil
		snap.Shoppers[i] = copied
	}
	return snap
}
