package outline

import (
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

func TestFromBookmarks_PagesBecomeZeroBased(t *testing.T) {
	bms := []pdfcpu.Bookmark{
		{Title: "Intro", PageFrom: 1},
		{Title: "Body", PageFrom: 4},
	}

	nodes := FromBookmarks(bms, 10, nil)

	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}
	if nodes[0].PageIndex != 0 {
		t.Errorf("expected page index 0, got %d", nodes[0].PageIndex)
	}
	if nodes[1].PageIndex != 3 {
		t.Errorf("expected page index 3, got %d", nodes[1].PageIndex)
	}
}

func TestFromBookmarks_NestingPreserved(t *testing.T) {
	bms := []pdfcpu.Bookmark{
		{
			Title:    "Chapter 1",
			PageFrom: 1,
			Kids: []pdfcpu.Bookmark{
				{Title: "Section 1.1", PageFrom: 3},
				{Title: "Section 1.2", PageFrom: 6},
			},
		},
	}

	nodes := FromBookmarks(bms, 10, nil)

	if len(nodes) != 1 {
		t.Fatalf("expected 1 root node, got %d", len(nodes))
	}
	kids := nodes[0].Children
	if len(kids) != 2 {
		t.Fatalf("expected 2 children, got %d", len(kids))
	}
	if kids[0].Title != "Section 1.1" || kids[0].PageIndex != 2 {
		t.Errorf("unexpected first child: %q page %d", kids[0].Title, kids[0].PageIndex)
	}
	if kids[1].Title != "Section 1.2" || kids[1].PageIndex != 5 {
		t.Errorf("unexpected second child: %q page %d", kids[1].Title, kids[1].PageIndex)
	}
}

func TestFromBookmarks_UnresolvedEntryDropped(t *testing.T) {
	// PageFrom 0 means the destination never resolved to a page.
	bms := []pdfcpu.Bookmark{
		{Title: "Good", PageFrom: 2},
		{Title: "Dangling", PageFrom: 0},
		{Title: "Beyond", PageFrom: 11},
	}

	nodes := FromBookmarks(bms, 10, nil)

	if len(nodes) != 1 {
		t.Fatalf("expected only the resolvable node, got %d", len(nodes))
	}
	if nodes[0].Title != "Good" {
		t.Errorf("expected %q to survive, got %q", "Good", nodes[0].Title)
	}
}

func TestFromBookmarks_ChildrenOfDroppedEntryPromoted(t *testing.T) {
	bms := []pdfcpu.Bookmark{
		{
			Title:    "Broken Parent",
			PageFrom: 0,
			Kids: []pdfcpu.Bookmark{
				{Title: "Valid Child", PageFrom: 5},
			},
		},
	}

	nodes := FromBookmarks(bms, 10, nil)

	if len(nodes) != 1 {
		t.Fatalf("expected the child to be promoted, got %d nodes", len(nodes))
	}
	if nodes[0].Title != "Valid Child" || nodes[0].PageIndex != 4 {
		t.Errorf("unexpected promoted node: %q page %d", nodes[0].Title, nodes[0].PageIndex)
	}
}

func TestFromBookmarks_Empty(t *testing.T) {
	if nodes := FromBookmarks(nil, 10, nil); len(nodes) != 0 {
		t.Errorf("expected no nodes, got %d", len(nodes))
	}
}
