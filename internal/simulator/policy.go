package simulator

import (
	"math"

	"github.com/chrisdamba/marketsim/internal/models"
)

// stepShopper applies one tick of the decision policy to a single shopper.
// A tick is exactly one transition: target selection may combine with a
// purchase or a move in the same tick, but a shopper never both purchases
// and moves.
func stepShopper(sh *models.Shopper, stalls []*models.Stall, speed, arrivalRadius float64) {
	if !sh.Active() {
		return
	}
	if sh.Target == nil && !selectTarget(sh, stalls) {
		// every stall has been visited with items still outstanding:
		// the shopper gives up for the rest of the path
		sh.Status = models.ShopperStatusDone
		return
	}
	if sh.Position.DistanceTo(sh.Target.Position) <= arrivalRadius {
		purchase(sh)
		return
	}
	moveToward(sh, speed)
}

// selectTarget picks the nearest stall the shopper has not visited yet.
// Ties go to the lowest stall index: the scan runs in stall order and only a
// strictly smaller distance replaces the current pick. Returns false when no
// unvisited stall remains.
func selectTarget(sh *models.Shopper, stalls []*models.Stall) bool {
	var nearest *models.Stall
	best := math.Inf(1)
	for _, st := range stalls {
		if sh.Visited[st.Index] {
			continue
		}
		if d := sh.Position.DistanceTo(st.Position); d < best {
			best = d
			nearest = st
		}
	}
	if nearest == nil {
		return false
	}
	sh.Target = nearest
	return true
}

// purchase intersects the shopping list with the target stall's inventory,
// marks the stall visited and clears the target so the next tick reselects.
// Unmatched items stay on the list; the shopper does not move this tick.
func purchase(sh *models.Shopper) {
	st := sh.Target
	sh.RemoveStocked(st)
	sh.Visited[st.Index] = true
	sh.Target = nil
	if len(sh.ShoppingList) == 0 {
		sh.Status = models.ShopperStatusDone
	}
}

// moveToward advances the shopper one walking-speed step along the heading to
// the target stall. Stalls sit on y=0, so the heading is
// atan2(-y, stallX-x).
func moveToward(sh *models.Shopper, speed float64) {
	angle := math.Atan2(-sh.Position.Y, sh.Target.Position.X-sh.Position.X)
	sh.Position.X += speed * math.Cos(angle)
	sh.Position.Y += speed * math.Sin(angle)
}
