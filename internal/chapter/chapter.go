package chapter

import (
	"sort"

	"pdfsplit/internal/outline"
)

// Descriptor is one resolved, splittable chapter.
type Descriptor struct {
	PathTitles []string // titles from the outline root down to this entry
	StartPage  int      // inclusive, 0-based
	EndPage    int      // exclusive, 0-based
	OrderIndex int      // 0-based rank among surviving chapters
}

// candidate is an outline entry visited during the collection pass.
type candidate struct {
	path  []string
	start int
}

// Extract flattens the outline tree up to the requested depth and assigns
// each surviving entry a page range. level 0 means unlimited depth, level 1
// top-level entries only, level N entries down to depth N.
//
// The end of a chapter is the start of the next one in page order, or the
// document end for the last chapter. Duplicate bookmarks pointing at the
// same page keep only the first entry; ranges that would be empty are
// dropped, so every Descriptor maps to at least one page.
func Extract(roots []*outline.Node, totalPages, level int) []Descriptor {
	if totalPages <= 0 {
		return nil
	}

	var cands []candidate
	collect(roots, nil, 1, level, &cands)

	// Outline order and page order coincide for well-formed documents; a
	// stable sort keeps traversal order between entries on the same page.
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].start < cands[j].start })

	var kept []candidate
	for _, c := range cands {
		if c.start < 0 || c.start >= totalPages {
			continue
		}
		if len(kept) > 0 && kept[len(kept)-1].start == c.start {
			continue
		}
		kept = append(kept, c)
	}

	var out []Descriptor
	for i, c := range kept {
		end := totalPages
		if i+1 < len(kept) {
			end = kept[i+1].start
		}
		// kept is strictly increasing in start and the last entry ends at
		// totalPages, so this cannot fire; retained as a guard.
		if end <= c.start {
			continue
		}
		out = append(out, Descriptor{
			PathTitles: c.path,
			StartPage:  c.start,
			EndPage:    end,
			OrderIndex: len(out),
		})
	}
	return out
}

// collect visits nodes in pre-order, carrying the root-to-node title path.
// It descends into children only while the depth limit allows.
func collect(nodes []*outline.Node, parentPath []string, depth, level int, cands *[]candidate) {
	for _, n := range nodes {
		path := append(append([]string(nil), parentPath...), n.Title)
		*cands = append(*cands, candidate{path: path, start: n.PageIndex})
		if level == 0 || depth < level {
			collect(n.Children, path, depth+1, level, cands)
		}
	}
}
