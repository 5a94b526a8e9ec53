package split

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"pdfsplit/internal/chapter"
	"pdfsplit/internal/namer"
	"pdfsplit/internal/outline"
	"pdfsplit/internal/splitter"
)

// Options controls a split run.
type Options struct {
	// OutputDir is the destination directory. Empty means a sibling folder
	// named after the input file's stem.
	OutputDir string

	// AddSequence prefixes filenames with a zero-padded chapter number so
	// lexicographic order matches chapter order.
	AddSequence bool

	// Level is the bookmark depth to split at: 0 for unlimited depth,
	// 1 for top-level entries only, N for entries down to depth N.
	Level int
}

func DefaultOptions() Options {
	return Options{
		AddSequence: true,
		Level:       1,
	}
}

func (o Options) Validate() error {
	if o.Level < 0 {
		return fmt.Errorf("level must be >= 0, got %d", o.Level)
	}
	return nil
}

// Result summarizes one run.
type Result struct {
	Written   []string // output paths actually written, in chapter order
	Succeeded int
	Skipped   int
	Failed    int
	Errors    []string // per-chapter messages, in occurrence order
}

// Run splits inputPath along its outline and writes one PDF per chapter.
//
// The returned error is non-nil only for fatal conditions: an input that
// cannot be opened, invalid options, or an output directory that cannot be
// created. A document with no usable outline yields an empty Result and a
// nil error. Per-chapter problems are recorded in the Result and the run
// continues. Run keeps no state between calls.
func Run(inputPath string, opts Options, log *slog.Logger) (*Result, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	ctx, err := api.ReadContextFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", inputPath, err)
	}
	totalPages := ctx.PageCount
	log.Info("input opened", "path", inputPath, "pages", totalPages)

	res := &Result{}

	roots, err := outline.Load(ctx, log)
	if err != nil {
		return nil, err
	}

	chapters := chapter.Extract(roots, totalPages, opts.Level)
	if len(chapters) == 0 {
		log.Info("no chapters found", "path", inputPath)
		return res, nil
	}

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = defaultOutputDir(inputPath)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", outDir, err)
	}
	log.Info("writing chapters", "dir", outDir, "chapters", len(chapters))

	conf := model.NewDefaultConfiguration()
	names := namer.New(opts.AddSequence, opts.Level)
	for _, d := range chapters {
		outPath := filepath.Join(outDir, names.BaseName(d, len(chapters))+".pdf")

		if err := splitter.WriteChapter(inputPath, outPath, d, totalPages, conf); err != nil {
			res.Errors = append(res.Errors, err.Error())
			if errors.Is(err, splitter.ErrInvalidRange) {
				res.Skipped++
				log.Warn("chapter skipped", "path", outPath, "error", err)
			} else {
				res.Failed++
				log.Warn("chapter failed", "path", outPath, "error", err)
			}
			continue
		}

		res.Succeeded++
		res.Written = append(res.Written, outPath)
		log.Info("chapter written",
			"path", outPath,
			"pages", fmt.Sprintf("%d-%d", d.StartPage+1, d.EndPage))
	}

	log.Info("split finished",
		"succeeded", res.Succeeded, "skipped", res.Skipped, "failed", res.Failed)
	return res, nil
}

// defaultOutputDir is a sibling folder named after the input file's stem.
func defaultOutputDir(inputPath string) string {
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(filepath.Dir(inputPath), stem)
}
