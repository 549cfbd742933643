package models

import (
	"math"
	"testing"
)

func TestDistanceTo(t *testing.T) {
	cases := []struct {
		name string
		a, b Location
		want float64
	}{
		{"same point", Location{0, 0}, Location{0, 0}, 0},
		{"along x", Location{0, 0}, Location{10, 0}, 10},
		{"along y", Location{2, -3}, Location{2, 4}, 7},
		{"diagonal", Location{0, 0}, Location{3, 4}, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.DistanceTo(tc.b); math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("distance %v, expected %v", got, tc.want)
			}
			if got := tc.b.DistanceTo(tc.a); math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("distance is not symmetric: %v vs %v", got, tc.want)
			}
		})
	}
}

func TestRemoveStockedKeepsUnstockedItems(t *testing.T) {
	st := &Stall{Index: 0, Inventory: []string{"apples", "milk"}}
	sh := &Shopper{
		ShoppingList: []string{"apples", "bread", "milk", "spices"},
		Status:       ShopperStatusBrowsing,
	}
	removed := sh.RemoveStocked(st)
	if removed != 2 {
		t.Fatalf("expected 2 items removed, got %d", removed)
	}
	want := []string{"bread", "spices"}
	if len(sh.ShoppingList) != len(want) {
		t.Fatalf("expected list %v, got %v", want, sh.ShoppingList)
	}
	for i, item := range want {
		if sh.ShoppingList[i] != item {
			t.Fatalf("expected list %v, got %v", want, sh.ShoppingList)
		}
	}
}

func TestMeanItemsRemaining(t *testing.T) {
	ps := &PathState{Shoppers: []*Shopper{
		{ShoppingList: []string{"apples", "bread"}},
		{ShoppingList: []string{"milk"}},
		{ShoppingList: nil},
	}}
	if got := ps.MeanItemsRemaining(); math.Abs(got-1.0) > 1e-12 {
		t.Fatalf("expected mean 1.0, got %v", got)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	ps := &PathState{
		Stalls: []*Stall{{Index: 0, Inventory: []string{"apples"}}},
		Shoppers: []*Shopper{{
			Name:         "Ada",
			ShoppingList: []string{"apples", "milk"},
			Visited:      map[int]bool{},
			Status:       ShopperStatusBrowsing,
		}},
	}
	snap := ps.Snapshot()
	ps.Shoppers[0].ShoppingList = ps.Shoppers[0].ShoppingList[:1]
	ps.Stalls[0].Inventory[0] = "bread"
	if len(snap.Shoppers[0].ShoppingList) != 2 {
		t.Fatalf("snapshot list mutated with the live state")
	}
	if snap.Stalls[0].Inventory[0] != "apples" {
		t.Fatalf("snapshot inventory mutated with the live state")
	}
}
