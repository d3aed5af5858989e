package book

import "testing"

func TestRBTreeInsertFindDelete(t *testing.T) {
	tree := NewRBTree()
	pl1 := tree.UpsertLevel(100)
	if pl1 == nil {
		t.Fatal("UpsertLevel failed")
	}
	if pl2 := tree.FindLevel(100); pl2 != pl1 {
		t.Error("FindLevel did not return same PriceLevel")
	}

	tree.UpsertLevel(200)
	if tree.MinLevel().Price != 100 {
		t.Error("expected min=100")
	}
	if tree.MaxLevel().Price != 200 {
		t.Error("expected max=200")
	}

	if !tree.DeleteLevel(100) {
		t.Error("DeleteLevel failed")
	}
	if tree.FindLevel(100) != nil {
		t.Error("expected level 100 to be gone")
	}
}

func TestDeleteNonExistentLevel(t *testing.T) {
	tree := NewRBTree()
	if tree.DeleteLevel(123) {
		t.Error("expected false when deleting non-existent level")
	}
}

func TestEmptyTreeMinMax(t *testing.T) {
	tree := NewRBTree()
	if tree.MinLevel() != nil || tree.MaxLevel() != nil {
		t.Error("expected nil for min/max on empty tree")
	}
}

func TestUpsertDuplicateLevel(t *testing.T) {
	tree := NewRBTree()
	pl1 := tree.UpsertLevel(150)
	pl2 := tree.UpsertLevel(150)
	if pl1 != pl2 {
		t.Error("Upsert should return the same node for duplicate level")
	}
	if tree.Size() != 1 {
		t.Errorf("expected size 1, got %d", tree.Size())
	}
}

func TestOrderedTraversal(t *testing.T) {
	tree := NewRBTree()
	for _, p := range []int64{105, 99, 101, 110, 97, 103} {
		tree.UpsertLevel(p)
	}

	var asc []int64
	tree.ForEachAscending(func(lvl *PriceLevel) bool {
		asc = append(asc, lvl.Price)
		return true
	})
	want := []int64{97, 99, 101, 103, 105, 110}
	if len(asc) != len(want) {
		t.Fatalf("expected %d levels, got %d", len(want), len(asc))
	}
	for i := range want {
		if asc[i] != want[i] {
			t.Fatalf("ascending order wrong: %v", asc)
		}
	}

	var desc []int64
	tree.ForEachDescending(func(lvl *PriceLevel) bool {
		desc = append(desc, lvl.Price)
		return true
	})
	for i := range want {
		if desc[i] != want[len(want)-1-i] {
			t.Fatalf("descending order wrong: %v", desc)
		}
	}
}

func TestDeleteRebalances(t *testing.T) {
	tree := NewRBTree()
	for p := int64(1); p <= 64; p++ {
		tree.UpsertLevel(p)
	}
	for p := int64(1); p <= 64; p += 2 {
		if !tree.DeleteLevel(p) {
			t.Fatalf("delete %d failed", p)
		}
	}
	if tree.Size() != 32 {
		t.Fatalf("expected 32 levels, got %d", tree.Size())
	}
	if tree.MinLevel().Price != 2 || tree.MaxLevel().Price != 64 {
		t.Errorf("min/max wrong after deletes: %d/%d",
			tree.MinLevel().Price, tree.MaxLevel().Price)
	}
}
