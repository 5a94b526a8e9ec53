package outline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Node is one outline (bookmark) entry with its destination resolved to an
// absolute page index.
type Node struct {
	Title     string
	PageIndex int     // 0-based page this entry points to
	Children  []*Node // nested entries, in document order
}

// Load reads the document outline as a tree of Nodes.
// Returns (nil, nil) when the document has no outline: pdfcpu reports that
// either as an empty bookmark tree or, from its api-level helpers, as
// api.ErrNoOutlines.
func Load(ctx *model.Context, log *slog.Logger) ([]*Node, error) {
	bms, err := pdfcpu.Bookmarks(ctx)
	if err != nil {
		if errors.Is(err, api.ErrNoOutlines) {
			return nil, nil
		}
		return nil, fmt.Errorf("read outline: %w", err)
	}
	return FromBookmarks(bms, ctx.PageCount, log), nil
}

// FromBookmarks converts a pdfcpu bookmark tree into Nodes, turning 1-based
// page numbers into 0-based indices. Entries whose destination did not
// resolve to a page inside the document are dropped with a warning; their
// children are promoted in their place so one bad entry does not hide a
// valid subtree.
func FromBookmarks(bms []pdfcpu.Bookmark, pageCount int, log *slog.Logger) []*Node {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var nodes []*Node
	for _, bm := range bms {
		children := FromBookmarks(bm.Kids, pageCount, log)
		if bm.PageFrom < 1 || bm.PageFrom > pageCount {
			log.Warn("skipping bookmark with unresolved page", "title", bm.Title, "page", bm.PageFrom)
			nodes = append(nodes, children...)
			continue
		}
		nodes = append(nodes, &Node{
			Title:     bm.Title,
			PageIndex: bm.PageFrom - 1,
			Children:  children,
		})
	}
	return nodes
}
