package layout

import (
	"errors"
	"reflect"
	"testing"

	"github.com/versescope/versescope/pkg/catalog"
	"github.com/versescope/versescope/pkg/fragments"
)

var (
	ust  = catalog.Translation{Name: "Unlocked Simplified Text", ModuleID: 10, ShortName: "UST"}
	net  = catalog.Translation{Name: "New English Translation", ModuleID: 4, ShortName: "NET"}
	bhsa = catalog.Translation{Name: "Hebrew Bible", ModuleID: 7, ShortName: "BHSA", RightToLeft: true}
)

func frag(parallelID, moduleID, rid int, seg fragments.Segment) fragments.TextFragment {
	return fragments.TextFragment{ParallelID: parallelID, ModuleID: moduleID, RID: rid, Segment: seg}
}

func TestBuildColumnsGroupsByModuleInOrder(t *testing.T) {
	frags := []fragments.TextFragment{
		frag(1, ust.ModuleID, 1001, fragments.Plain("a1")),
		frag(1, net.ModuleID, 1001, fragments.Plain("b1")),
		frag(2, ust.ModuleID, 1002, fragments.Plain("a2")),
	}

	cols := BuildColumns(catalog.Selection{ust, net}, frags)
	if len(cols) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(cols))
	}

	want := []Column{
		{
			Translation:  ust,
			Direction:    LeftToRight,
			WidthPercent: 49,
			Entries: []Entry{
				{Label: "1:1 ", Content: "a1", ParallelID: 1, RID: 1001},
				{Label: "1:2 ", Content: "a2", ParallelID: 2, RID: 1002},
			},
		},
		{
			Translation:  net,
			Direction:    LeftToRight,
			WidthPercent: 49,
			Entries: []Entry{
				{Label: "1:1 ", Content: "b1", ParallelID: 1, RID: 1001},
			},
		},
	}
	if !reflect.DeepEqual(cols, want) {
		t.Fatalf("expected:\n%#v\nactual:\n%#v", want, cols)
	}
}

func TestBuildColumnsDoesNotResort(t *testing.T) {
	frags := []fragments.TextFragment{
		frag(3, net.ModuleID, 1003, fragments.Plain("third")),
		frag(1, net.ModuleID, 1001, fragments.Plain("first")),
	}
	cols := BuildColumns(catalog.Selection{net}, frags)
	if cols[0].Entries[0].Content != "third" || cols[0].Entries[1].Content != "first" {
		t.Fatalf("arrival order not preserved: %+v", cols[0].Entries)
	}
}

func TestBuildColumnsEmptySelection(t *testing.T) {
	cols := BuildColumns(nil, []fragments.TextFragment{frag(1, 4, 1001, fragments.Plain("x"))})
	if cols == nil || len(cols) != 0 {
		t.Fatalf("expected empty non-nil column list, got %#v", cols)
	}
}

func TestBuildColumnsSelectedButMissing(t *testing.T) {
	cols := BuildColumns(catalog.Selection{ust, net, bhsa}, []fragments.TextFragment{
		frag(1, net.ModuleID, 1001, fragments.Plain("only net")),
		frag(1, 99, 1001, fragments.Plain("unknown module")),
	})
	if len(cols) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(cols))
	}
	if len(cols[0].Entries) != 0 || len(cols[1].Entries) != 1 || len(cols[2].Entries) != 0 {
		t.Fatalf("unexpected entry counts: %+v", cols)
	}
	for _, c := range cols {
		if c.WidthPercent != 32 {
			t.Fatalf("expected width 32, got %d", c.WidthPercent)
		}
	}
	if cols[2].Direction != RightToLeft {
		t.Fatalf("expected rtl column for %s", cols[2].Translation.ShortName)
	}
}

func TestColumnWidth(t *testing.T) {
	for n, want := range map[int]int{1: 99, 2: 49, 3: 32, 4: 24, 6: 15, 7: 13} {
		if got := ColumnWidth(n); got != want {
			t.Fatalf("ColumnWidth(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestRenderSegment(t *testing.T) {
	words := fragments.Words(
		fragments.Morpheme{WordID: 1, Text: "A", Trailer: "-"},
		fragments.Morpheme{WordID: 2, Text: "B", Trailer: "."},
	)
	tests := []struct {
		name string
		seg  fragments.Segment
		dir  Direction
		want string
		ok   bool
	}{
		{"plain ltr", fragments.Plain("In the beginning"), LeftToRight, "In the beginning", true},
		{"plain rtl is verbatim", fragments.Plain("בְּרֵאשִׁית"), RightToLeft, "בְּרֵאשִׁית", true},
		{"words ltr", words, LeftToRight, "A-B.", true},
		{"words rtl", words, RightToLeft, "-A.B", true},
		{"empty words", fragments.Words(), RightToLeft, "", true},
		{"failed", fragments.Segment{Kind: fragments.PlainText, Text: "[{}]", StructuredErr: errors.New("bad wid")}, RightToLeft, FailedPlaceholder, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := RenderSegment(tc.seg, tc.dir)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("got (%q, %v), want (%q, %v)", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestBuildColumnsPlaceholderDoesNotAffectSiblings(t *testing.T) {
	broken := fragments.Segment{Kind: fragments.PlainText, Text: "[1]", StructuredErr: errors.New("word 0 is not an object")}
	cols := BuildColumns(catalog.Selection{bhsa}, []fragments.TextFragment{
		frag(1, bhsa.ModuleID, 1001, broken),
		frag(2, bhsa.ModuleID, 1002, fragments.Words(fragments.Morpheme{WordID: 1, Text: "וְ", Trailer: ""})),
	})
	entries := cols[0].Entries
	if !entries[0].Failed || entries[0].Content != FailedPlaceholder || entries[0].Label != "1:1 " {
		t.Fatalf("expected placeholder entry, got %+v", entries[0])
	}
	if entries[1].Failed || entries[1].Content != "וְ" {
		t.Fatalf("sibling entry affected: %+v", entries[1])
	}
}
