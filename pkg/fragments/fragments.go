package fragments

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
)

// SegmentKind tags which variant a Segment holds.
type SegmentKind int

const (
	// PlainText is ordinary prose.
	PlainText SegmentKind = iota
	// WordSequence is a list of word objects, as sent for morphologically tagged modules.
	WordSequence
)

func (k SegmentKind) String() string {
	switch k {
	case PlainText:
		return "plain"
	case WordSequence:
		return "words"
	default:
		return "unknown"
	}
}

// Morpheme is one word of a word sequence.
type Morpheme struct {
	WordID  int    `json:"wid"`
	Text    string `json:"text"`
	Trailer string `json:"trailer"`
}

// Segment is the decoded content of a fragment. Only the fields of its Kind are set.
type Segment struct {
	Kind  SegmentKind
	Text  string
	Words []Morpheme

	// StructuredErr is set on a PlainText segment whose string held a JSON array
	// that did not decode as word objects. Renderers show a placeholder for it.
	StructuredErr error
}

// Plain builds a PlainText segment.
func Plain(text string) Segment {
	return Segment{Kind: PlainText, Text: text}
}

// Words builds a WordSequence segment.
func Words(words ...Morpheme) Segment {
	return Segment{Kind: WordSequence, Words: words}
}

// MarshalJSON writes the variant back in its wire shape: a string or an array of word objects.
func (s Segment) MarshalJSON() ([]byte, error) {
	if s.Kind == WordSequence {
		words := s.Words
		if words == nil {
			words = []Morpheme{}
		}
		return json.Marshal(words)
	}
	return json.Marshal(s.Text)
}

// TextFragment is one verse-text unit of one module.
type TextFragment struct {
	ParallelID int     `json:"parallelId"`
	ModuleID   int     `json:"moduleId"`
	RID        int     `json:"rid"`
	Segment    Segment `json:"text"`
}

// errNotStructured means the text value is not shaped like a word array at all,
// as opposed to an array that failed to decode.
var errNotStructured = errors.New("not a word array")

// DecodeResponse decodes a whole API body. The root must be an object with a
// matchingText array; the first bad element fails the whole decode.
func DecodeResponse(body string) ([]TextFragment, error) {
	if !gjson.Valid(body) {
		return nil, schemaError("matchingText", -1)
	}
	root := gjson.Parse(body)
	if !root.IsObject() {
		return nil, schemaError("matchingText", -1)
	}
	matching := root.Get("matchingText")
	if !matching.IsArray() {
		return nil, schemaError("matchingText", -1)
	}

	elems := matching.Array()
	out := make([]TextFragment, 0, len(elems))
	for i, el := range elems {
		f, err := decodeFragment(el, i)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// DecodeFragment decodes a single fragment object.
func DecodeFragment(raw string) (TextFragment, error) {
	if !gjson.Valid(raw) {
		return TextFragment{}, schemaError("parallelId", -1)
	}
	return decodeFragment(gjson.Parse(raw), -1)
}

func decodeFragment(r gjson.Result, index int) (TextFragment, error) {
	if !r.IsObject() {
		return TextFragment{}, schemaError("parallelId", index)
	}

	var f TextFragment
	var err error
	if f.ParallelID, err = intField(r, "parallelId", index); err != nil {
		return TextFragment{}, err
	}
	if f.ModuleID, err = intField(r, "moduleId", index); err != nil {
		return TextFragment{}, err
	}
	if f.RID, err = intField(r, "rid", index); err != nil {
		return TextFragment{}, err
	}

	text := r.Get("text")
	if !text.Exists() {
		return TextFragment{}, schemaError("text", index)
	}
	if f.Segment, err = decodeSegment(text); err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Index = index
		}
		return TextFragment{}, err
	}
	return f, nil
}

// decodeSegment tries a word array first and falls back to a plain string.
func decodeSegment(v gjson.Result) (Segment, error) {
	words, structuredErr := decodeWords(v)
	if structuredErr == nil {
		return Words(words...), nil
	}
	if errors.Is(structuredErr, errNotStructured) {
		structuredErr = nil
	}

	if v.Type == gjson.String {
		s := Plain(v.Str)
		s.StructuredErr = structuredErr
		return s, nil
	}
	return Segment{}, &DecodeError{Kind: UnrecognizedTextShape, Index: -1, Err: structuredErr}
}

// decodeWords accepts either an array of word objects or a string holding one.
func decodeWords(v gjson.Result) ([]Morpheme, error) {
	arr := v
	if v.Type == gjson.String {
		if !gjson.Valid(v.Str) {
			return nil, errNotStructured
		}
		arr = gjson.Parse(v.Str)
	}
	if !arr.IsArray() {
		return nil, errNotStructured
	}

	elems := arr.Array()
	words := make([]Morpheme, 0, len(elems))
	for i, el := range elems {
		if !el.IsObject() {
			return nil, fmt.Errorf("word %d is not an object", i)
		}
		wid := el.Get("wid")
		if wid.Type != gjson.Number {
			return nil, fmt.Errorf("word %d: wid missing or not a number", i)
		}
		id, err := strconv.Atoi(wid.Raw)
		if err != nil {
			return nil, fmt.Errorf("word %d: wid %s is not an integer", i, wid.Raw)
		}
		text, trailer := el.Get("text"), el.Get("trailer")
		if text.Type != gjson.String {
			return nil, fmt.Errorf("word %d: text missing or not a string", i)
		}
		if trailer.Type != gjson.String {
			return nil, fmt.Errorf("word %d: trailer missing or not a string", i)
		}
		words = append(words, Morpheme{WordID: id, Text: text.Str, Trailer: trailer.Str})
	}
	return words, nil
}

func intField(r gjson.Result, name string, index int) (int, error) {
	v := r.Get(name)
	if v.Type != gjson.Number {
		return 0, schemaError(name, index)
	}
	n, err := strconv.Atoi(v.Raw)
	if err != nil {
		return 0, schemaError(name, index)
	}
	return n, nil
}
