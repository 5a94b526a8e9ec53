package namer

import (
	"fmt"
	"strconv"
	"strings"

	"pdfsplit/internal/chapter"
)

// pathSeparator joins title components when hierarchical names are in effect.
const pathSeparator = " - "

// Builder produces filesystem-safe base filenames for chapter descriptors.
// It remembers every name it hands out, so duplicate titles get a numeric
// suffix instead of silently overwriting each other. One Builder per run.
type Builder struct {
	addSequence bool
	level       int
	used        map[string]bool
}

func New(addSequence bool, level int) *Builder {
	return &Builder{
		addSequence: addSequence,
		level:       level,
		used:        make(map[string]bool),
	}
}

// BaseName returns the base filename (without extension) for d.
// totalChapters controls the width of the sequence prefix.
func (b *Builder) BaseName(d chapter.Descriptor, totalChapters int) string {
	var title string
	if b.level == 1 {
		// Only top-level chapters were requested; the leaf title is the
		// whole hierarchy.
		if len(d.PathTitles) > 0 {
			title = d.PathTitles[len(d.PathTitles)-1]
		}
	} else {
		title = strings.Join(d.PathTitles, pathSeparator)
	}

	name := Sanitize(title)
	if name == "" {
		name = fmt.Sprintf("chapter_%d", d.OrderIndex+1)
	}

	if b.addSequence {
		width := len(strconv.Itoa(totalChapters))
		if width < 2 {
			width = 2
		}
		name = fmt.Sprintf("%0*d_%s", width, d.OrderIndex+1, name)
	}

	if b.used[name] {
		for n := 2; ; n++ {
			alt := fmt.Sprintf("%s_%d", name, n)
			if !b.used[alt] {
				name = alt
				break
			}
		}
	}
	b.used[name] = true
	return name
}

// Sanitize replaces characters that are illegal in common filesystems with
// underscores and trims surrounding whitespace. Sanitizing an already clean
// name returns it unchanged.
func Sanitize(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r < 0x20 || r == 0x7f:
			sb.WriteByte('_')
		case strings.ContainsRune(`/\:*?"<>|`, r):
			sb.WriteByte('_')
		default:
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}
