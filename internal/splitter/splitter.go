package splitter

import (
	"errors"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"pdfsplit/internal/chapter"
)

// ErrInvalidRange reports a descriptor whose page range does not fit the
// document. The extractor never emits one, but a bad descriptor must skip a
// single chapter, not corrupt the run.
var ErrInvalidRange = errors.New("invalid page range")

// WriteChapter copies pages [d.StartPage, d.EndPage) of inPath into a new
// document at outPath. The output directory must already exist.
func WriteChapter(inPath, outPath string, d chapter.Descriptor, totalPages int, conf *model.Configuration) error {
	if d.StartPage < 0 || d.EndPage <= d.StartPage || d.EndPage > totalPages {
		return fmt.Errorf("%w: %d-%d (document has %d pages)",
			ErrInvalidRange, d.StartPage+1, d.EndPage, totalPages)
	}

	// pdfcpu page selections are 1-based and inclusive.
	selection := fmt.Sprintf("%d-%d", d.StartPage+1, d.EndPage)
	if err := api.TrimFile(inPath, outPath, []string{selection}, conf); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
