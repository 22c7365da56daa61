package session

import (
	"github.com/versescope/versescope/pkg/catalog"
	"github.com/versescope/versescope/pkg/fragments"
	"github.com/versescope/versescope/pkg/layout"
	"github.com/versescope/versescope/pkg/reference"
)

type Kind int

const (
	Idle Kind = iota
	Fetching
	Ready
)

func (k Kind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Fetching:
		return "fetching"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// State is one snapshot of the session. Err is only meaningful in Idle and
// Fragments only in Ready.
type State struct {
	Kind      Kind
	Selection catalog.Selection
	Reference reference.Reference
	Err       error
	Fragments []fragments.TextFragment
}

// Columns lays out the fragments of a Ready state; other states have none.
func (s State) Columns() []layout.Column {
	if s.Kind != Ready {
		return nil
	}
	return layout.BuildColumns(s.Selection, s.Fragments)
}

// View is what a UI needs to paint a state.
type View struct {
	State     string          `json:"state"`
	Selection []string        `json:"selection"`
	Reference string          `json:"reference"`
	Error     string          `json:"error,omitempty"`
	Columns   []layout.Column `json:"columns,omitempty"`
}

func (s State) View() View {
	v := View{
		State:     s.Kind.String(),
		Selection: s.Selection.ShortNames(),
		Reference: s.Reference.String(),
	}
	switch s.Kind {
	case Idle:
		if s.Err != nil {
			v.Error = s.Err.Error()
		}
	case Ready:
		v.Columns = s.Columns()
	}
	return v
}
