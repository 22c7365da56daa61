package reference

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// QueryStyle selects how a reference is written in the text API query.
type QueryStyle string

const (
	// StyleConcat writes "Genesis1".
	StyleConcat QueryStyle = "concat"
	// StylePlus writes "Genesis+1".
	StylePlus QueryStyle = "plus"
)

const (
	DefaultBook    = "Genesis"
	DefaultChapter = 1
)

// Reference is the current query scope: one chapter of one book.
type Reference struct {
	Book    string
	Chapter int
}

// New validates book membership and chapter, returning the book with its canonical spelling.
func New(book string, chapter int) (Reference, error) {
	canonical, ok := LookupBook(book)
	if !ok {
		return Reference{}, fmt.Errorf("unknown book %q", book)
	}
	if chapter < 1 {
		return Reference{}, fmt.Errorf("invalid chapter %d for %s", chapter, canonical)
	}
	return Reference{Book: canonical, Chapter: chapter}, nil
}

func Default() Reference {
	return Reference{Book: DefaultBook, Chapter: DefaultChapter}
}

func (r Reference) String() string {
	return r.Book + " " + strconv.Itoa(r.Chapter)
}

// QueryString formats the reference for the API "reference" parameter.
// The book part is query-escaped; the plus separator is left literal.
func (r Reference) QueryString(style QueryStyle) string {
	book := url.QueryEscape(r.Book)
	chapter := strconv.Itoa(r.Chapter)
	if style == StyleConcat {
		return book + chapter
	}
	return book + "+" + chapter
}

// ParseQueryStyle maps a config value to a QueryStyle.
func ParseQueryStyle(s string) (QueryStyle, error) {
	switch QueryStyle(strings.ToLower(strings.TrimSpace(s))) {
	case StyleConcat:
		return StyleConcat, nil
	case StylePlus, "":
		return StylePlus, nil
	default:
		return "", fmt.Errorf("invalid reference style %q (want plus or concat)", s)
	}
}

// DecodeVerseKey renders a packed rid as "<chapter>:<verse> ".
// The last three decimal digits are the verse, the rest the chapter. Leading
// zeros are stripped from each group; an all-zero group becomes empty, so 1000
// renders as "1: ".
func DecodeVerseKey(rid int) string {
	digits := strconv.Itoa(rid)
	split := len(digits) - 3
	if split < 0 {
		split = 0
	}
	chapter := strings.TrimLeft(digits[:split], "0")
	verse := strings.TrimLeft(digits[split:], "0")
	return chapter + ":" + verse + " "
}
