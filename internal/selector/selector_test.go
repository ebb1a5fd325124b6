package selector

import (
	"reflect"
	"testing"

	"github.com/verba-app/verba/internal/schedule"
)

func testInventory() *Inventory {
	return NewInventory(map[string][]int{
		"unit_1": {1, 2, 3, 4, 5, 6},
		"unit_2": {1, 2},
		"empty":  {},
	})
}

func TestSelect_Deterministic(t *testing.T) {
	inv := testInventory()
	a := Select(inv, 42, "unit_1", schedule.KindDetour)
	b := Select(inv, 42, "unit_1", schedule.KindDetour)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same due item selected %v then %v", a, b)
	}
	if len(a) != DetourCap {
		t.Errorf("detour selected %d exercises, want %d", len(a), DetourCap)
	}
}

func TestSelect_DifferentDueItemsDiverge(t *testing.T) {
	inv := testInventory()
	// With a 6-exercise pool, 32 distinct due ids producing identical
	// orderings would mean the seed is ignored.
	base := Select(inv, 1, "unit_1", schedule.KindDetour)
	same := 0
	for id := 2; id <= 33; id++ {
		if reflect.DeepEqual(Select(inv, id, "unit_1", schedule.KindDetour), base) {
			same++
		}
	}
	if same > 8 {
		t.Errorf("%d of 32 due ids produced identical selections", same)
	}
}

func TestSelect_KindAffectsSeed(t *testing.T) {
	inv := testInventory()
	detour := Select(inv, 42, "unit_1", schedule.KindDetour)
	revisit := Select(inv, 42, "unit_1", schedule.KindRevisit)
	if len(revisit) != RevisitCap {
		t.Errorf("revisit selected %d, want %d", len(revisit), RevisitCap)
	}
	// Not a strict requirement, but the prefixes should generally differ;
	// what must hold is determinism per kind.
	if !reflect.DeepEqual(revisit, Select(inv, 42, "unit_1", schedule.KindRevisit)) {
		t.Error("revisit selection not deterministic")
	}
	_ = detour
}

func TestSelect_CheckTakesFirstEligible(t *testing.T) {
	inv := testInventory()
	got := Select(inv, 99, "unit_1", schedule.KindCheck)
	if !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("check selection = %v, want [1] (no shuffle)", got)
	}
}

func TestSelect_SmallPoolTruncates(t *testing.T) {
	inv := testInventory()
	got := Select(inv, 7, "unit_2", schedule.KindDetour)
	if len(got) != 2 {
		t.Errorf("selected %d from a 2-exercise pool, want 2", len(got))
	}
}

func TestSelect_EmptyUnit(t *testing.T) {
	inv := testInventory()
	if got := Select(inv, 7, "empty", schedule.KindDetour); got != nil {
		t.Errorf("selection = %v, want nil", got)
	}
	if got := Select(inv, 7, "unknown", schedule.KindDetour); got != nil {
		t.Errorf("selection = %v, want nil", got)
	}
}

func TestRealIndex(t *testing.T) {
	inv := testInventory()
	selected := Select(inv, 42, "unit_1", schedule.KindDetour)

	idx, ok := RealIndex(inv, 42, "unit_1", schedule.KindDetour, 1)
	if !ok || idx != selected[0] {
		t.Errorf("position 1 = %d ok=%v, want %d", idx, ok, selected[0])
	}
	if _, ok := RealIndex(inv, 42, "unit_1", schedule.KindDetour, 5); ok {
		t.Error("position past the cap must not resolve")
	}
	if _, ok := RealIndex(inv, 42, "unit_1", schedule.KindDetour, 0); ok {
		t.Error("position 0 must not resolve")
	}
}

func TestInventoryCopiesInput(t *testing.T) {
	src := map[string][]int{"u": {1, 2, 3}}
	inv := NewInventory(src)
	src["u"][0] = 99
	if got := inv.UnitIndices("u"); got[0] != 1 {
		t.Errorf("inventory shares caller memory: %v", got)
	}
}
