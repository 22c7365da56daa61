package layout

import (
	"strings"

	"github.com/versescope/versescope/pkg/catalog"
	"github.com/versescope/versescope/pkg/fragments"
	"github.com/versescope/versescope/pkg/reference"
)

// FailedPlaceholder replaces the content of a fragment whose word sequence could not be decoded.
const FailedPlaceholder = "failed to load"

// Direction is the script direction of a column.
type Direction string

const (
	LeftToRight Direction = "ltr"
	RightToLeft Direction = "rtl"
)

// DirectionOf reports the fixed script direction of a translation.
func DirectionOf(t catalog.Translation) Direction {
	if t.RightToLeft {
		return RightToLeft
	}
	return LeftToRight
}

// Entry is one labeled verse inside a column.
type Entry struct {
	Label      string `json:"label"`
	Content    string `json:"content"`
	ParallelID int    `json:"parallelId"`
	RID        int    `json:"rid"`
	Failed     bool   `json:"failed,omitempty"`
}

// Column holds the entries of one translation.
type Column struct {
	Translation  catalog.Translation `json:"translation"`
	Direction    Direction           `json:"direction"`
	WidthPercent int                 `json:"widthPercent"`
	Entries      []Entry             `json:"entries"`
}

// ColumnWidth is the percentage width given to each of n columns, leaving a gutter.
// n must be positive.
func ColumnWidth(n int) int {
	return 100/n - 1
}

// BuildColumns lays fragments out into one column per selected translation, in
// selection order. Fragments keep the order the API returned them in; fragments
// of unselected modules are dropped.
func BuildColumns(sel catalog.Selection, frags []fragments.TextFragment) []Column {
	if len(sel) == 0 {
		return []Column{}
	}

	width := ColumnWidth(len(sel))
	columns := make([]Column, 0, len(sel))
	for _, t := range sel {
		col := Column{
			Translation:  t,
			Direction:    DirectionOf(t),
			WidthPercent: width,
			Entries:      []Entry{},
		}
		for _, f := range frags {
			if f.ModuleID != t.ModuleID {
				continue
			}
			content, ok := RenderSegment(f.Segment, col.Direction)
			col.Entries = append(col.Entries, Entry{
				Label:      reference.DecodeVerseKey(f.RID),
				Content:    content,
				ParallelID: f.ParallelID,
				RID:        f.RID,
				Failed:     !ok,
			})
		}
		columns = append(columns, col)
	}
	return columns
}

// RenderSegment flattens a segment to display text. Word sequences put each
// trailer before its word for right-to-left text and after it otherwise.
// It returns the placeholder and false for a segment whose word array failed to decode.
func RenderSegment(seg fragments.Segment, dir Direction) (string, bool) {
	if seg.StructuredErr != nil {
		return FailedPlaceholder, false
	}
	if seg.Kind != fragments.WordSequence {
		return seg.Text, true
	}

	var b strings.Builder
	for _, w := range seg.Words {
		if dir == RightToLeft {
			b.WriteString(w.Trailer)
			b.WriteString(w.Text)
		} else {
			b.WriteString(w.Text)
			b.WriteString(w.Trailer)
		}
	}
	return b.String(), true
}
