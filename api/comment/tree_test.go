package comment

import (
	"testing"
)

func flatItem(id, parentID uint) Item {
	return Item{ID: id, ParentID: parentID}
}

func TestBuildTreeNesting(t *testing.T) {
	items := []Item{
		flatItem(1, 0),
		flatItem(2, 1),
		flatItem(3, 1),
		flatItem(4, 3),
		flatItem(5, 0),
	}

	roots := BuildTree(items)

	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	if roots[0].ID != 1 || roots[1].ID != 5 {
		t.Fatalf("unexpected root order: %d, %d", roots[0].ID, roots[1].ID)
	}
	if len(roots[0].Replies) != 2 {
		t.Fatalf("expected 2 replies under comment 1, got %d", len(roots[0].Replies))
	}
	if roots[0].Replies[0].ID != 2 || roots[0].Replies[1].ID != 3 {
		t.Fatalf("replies out of encounter order: %d, %d", roots[0].Replies[0].ID, roots[0].Replies[1].ID)
	}
	if len(roots[0].Replies[1].Replies) != 1 || roots[0].Replies[1].Replies[0].ID != 4 {
		t.Fatalf("comment 4 not nested under comment 3")
	}

	if got := Count(roots); got != len(items) {
		t.Fatalf("tree count = %d, want %d", got, len(items))
	}
}

func TestBuildTreeDropsOrphans(t *testing.T) {
	items := []Item{
		flatItem(1, 0),
		flatItem(2, 99), // parent not in the list
	}

	roots := BuildTree(items)

	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	if got := Count(roots); got != 1 {
		t.Fatalf("orphan should be dropped, count = %d", got)
	}
}

func TestBuildTreeEmpty(t *testing.T) {
	roots := BuildTree(nil)
	if len(roots) != 0 {
		t.Fatalf("expected no roots, got %d", len(roots))
	}
}

func TestBuildTreeEmptyRepliesNotNil(t *testing.T) {
	roots := BuildTree([]Item{flatItem(1, 0)})
	if roots[0].Replies == nil {
		t.Fatal("replies should be an empty slice, not nil")
	}
}
