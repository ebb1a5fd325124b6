// Package selector picks which of a unit's exercises a due item works
// through. Selection is pure: the same due item always yields the same
// ordered subset, so progress counters stay meaningful across sessions.
package selector

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/verba-app/verba/internal/schedule"
)

// Caps bound how many exercises each due kind works through.
const (
	DetourCap  = 4
	RevisitCap = 2
	CheckCap   = 1
)

// Cap returns the exercise cap for a due kind.
func Cap(kind schedule.Kind) int {
	switch kind {
	case schedule.KindDetour:
		return DetourCap
	case schedule.KindRevisit:
		return RevisitCap
	case schedule.KindCheck:
		return CheckCap
	}
	return 0
}

// Inventory is an immutable lookup of the real exercise indices available
// per unit, built once at startup from the content store and passed by
// reference wherever selection happens.
type Inventory struct {
	byUnit map[string][]int
}

// NewInventory builds an Inventory from a unit -> sorted exercise indices
// mapping. The input slices are copied.
func NewInventory(byUnit map[string][]int) *Inventory {
	m := make(map[string][]int, len(byUnit))
	for unit, indices := range byUnit {
		cp := make([]int, len(indices))
		copy(cp, indices)
		m[unit] = cp
	}
	return &Inventory{byUnit: m}
}

// UnitIndices returns a copy of the real exercise indices for a unit.
func (inv *Inventory) UnitIndices(unitKey string) []int {
	src := inv.byUnit[unitKey]
	out := make([]int, len(src))
	copy(out, src)
	return out
}

// Select returns the ordered exercise indices the due item works through.
// Detour and revisit shuffle the unit's pool with a seed derived from
// (dueID, unitKey, kind) and truncate to the kind's cap; check takes the
// unit's first eligible exercise as-is. An empty result means the unit has
// no materializable content.
func Select(inv *Inventory, dueID int, unitKey string, kind schedule.Kind) []int {
	pool := inv.UnitIndices(unitKey)
	if len(pool) == 0 {
		return nil
	}

	if kind == schedule.KindCheck {
		return pool[:1]
	}

	cap := Cap(kind)
	if cap <= 0 {
		return nil
	}

	rng := rand.New(rand.NewPCG(seed(dueID, unitKey, kind), 0))
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > cap {
		pool = pool[:cap]
	}
	return pool
}

// RealIndex maps a due item's 1-based position within its selection to the
// unit's real exercise index. ok is false when the position is outside the
// selection or the unit has no content.
func RealIndex(inv *Inventory, dueID int, unitKey string, kind schedule.Kind, position int) (int, bool) {
	selected := Select(inv, dueID, unitKey, kind)
	if position < 1 || position > len(selected) {
		return 0, false
	}
	return selected[position-1], true
}

// seed derives a stable shuffle seed from the due item identity: the first
// 8 bytes of SHA-256("dueID:unitKey:kind"), big-endian.
func seed(dueID int, unitKey string, kind schedule.Kind) uint64 {
	sum := sha256.Sum256(fmt.Appendf(nil, "%d:%s:%s", dueID, unitKey, kind))
	return binary.BigEndian.Uint64(sum[:8])
}
