package reference

import "strings"

// Books is the static list of book names accepted by the text API, in canonical order.
var Books = []string{
	// Old Testament
	"Genesis", "Exodus", "Leviticus", "Numbers", "Deuteronomy",
	"Joshua", "Judges", "Ruth", "1 Samuel", "2 Samuel",
	"1 Kings", "2 Kings", "1 Chronicles", "2 Chronicles", "Ezra",
	"Nehemiah", "Esther", "Job", "Psalms", "Proverbs",
	"Ecclesiastes", "Song of Songs", "Isaiah", "Jeremiah", "Lamentations",
	"Ezekiel", "Daniel", "Hosea", "Joel", "Amos",
	"Obadiah", "Jonah", "Micah", "Nahum", "Habakkuk",
	"Zephaniah", "Haggai", "Zechariah", "Malachi",
	// New Testament
	"Matthew", "Mark", "Luke", "John", "Acts",
	"Romans", "1 Corinthians", "2 Corinthians", "Galatians", "Ephesians",
	"Philippians", "Colossians", "1 Thessalonians", "2 Thessalonians", "1 Timothy",
	"2 Timothy", "Titus", "Philemon", "Hebrews", "James",
	"1 Peter", "2 Peter", "1 John", "2 John", "3 John",
	"Jude", "Revelation",
}

// bookIndex maps lowercased names to their canonical spelling.
var bookIndex map[string]string

func init() {
	bookIndex = make(map[string]string, len(Books))
	for _, b := range Books {
		bookIndex[strings.ToLower(b)] = b
	}
}

// LookupBook returns the canonical spelling of name, ignoring case and surrounding space.
func LookupBook(name string) (string, bool) {
	b, ok := bookIndex[strings.ToLower(strings.TrimSpace(name))]
	return b, ok
}
