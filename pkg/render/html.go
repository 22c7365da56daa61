package render

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/versescope/versescope/pkg/layout"
)

const pageStyle = `body{font-family:serif;margin:1em}
.columns{display:flex;gap:1%}
.column h2{font-size:1em}
.verse .label{color:#888;font-size:.8em}
.verse.failed{color:#a00;font-style:italic}
.status{color:#555}
.error{color:#a00}`

// Page is everything a full HTML page shows.
type Page struct {
	Title   string
	Status  string
	Error   string
	Columns []layout.Column
}

// HTMLPage writes a complete HTML document for p.
func HTMLPage(w io.Writer, p Page) error {
	body := element(atom.Body, nil)
	body.AppendChild(element(atom.H1, nil, text(p.Title)))
	if p.Status != "" {
		body.AppendChild(element(atom.P, attrs("class", "status"), text(p.Status)))
	}
	if p.Error != "" {
		body.AppendChild(element(atom.P, attrs("class", "error"), text(p.Error)))
	}
	if p.Columns != nil {
		body.AppendChild(columnsNode(p.Columns))
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(element(atom.Html, nil,
		element(atom.Head, nil,
			element(atom.Meta, attrs("charset", "utf-8")),
			element(atom.Title, nil, text(p.Title)),
			element(atom.Style, nil, text(pageStyle)),
		),
		body,
	))
	return html.Render(w, doc)
}

// HTMLColumns writes only the column block, for embedding in another page.
func HTMLColumns(w io.Writer, cols []layout.Column) error {
	return html.Render(w, columnsNode(cols))
}

func columnsNode(cols []layout.Column) *html.Node {
	container := element(atom.Div, attrs("class", "columns"))
	for _, col := range cols {
		div := element(atom.Div, attrs(
			"class", "column",
			"dir", string(col.Direction),
			"style", fmt.Sprintf("width: %d%%", col.WidthPercent),
			"data-module", fmt.Sprint(col.Translation.ModuleID),
		))
		div.AppendChild(element(atom.H2, nil, text(col.Translation.Name)))
		for _, e := range col.Entries {
			class := "verse"
			if e.Failed {
				class += " failed"
			}
			div.AppendChild(element(atom.P, attrs("class", class, "data-parallel-id", fmt.Sprint(e.ParallelID)),
				element(atom.Span, attrs("class", "label"), text(e.Label)),
				text(e.Content),
			))
		}
		container.AppendChild(div)
	}
	return container
}

func element(a atom.Atom, attr []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attr}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// attrs builds attributes from key/value pairs.
func attrs(kv ...string) []html.Attribute {
	out := make([]html.Attribute, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return out
}
