package dictionary

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode"
)

//go:embed words.txt
var embeddedWords string

//go:embed short.txt
var embeddedShort string

// Read parses a word list: one word per line, trimmed and lower-cased.
// Blank lines, '#' comments and entries containing non-letters are skipped.
func Read(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") || !isWord(w) {
			continue
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: cannot read word list: %w", err)
	}
	return out, nil
}

// Open reads a word list from a file.
func Open(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: cannot open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// isWord reports whether s consists only of letters.
func isWord(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Words returns the embedded general word list.
func Words() Sorted {
	words, _ := Read(strings.NewReader(embeddedWords))
	return NewSorted(words)
}

// Supplement returns the embedded list of short common words that general
// dictionaries tend to omit.
func Supplement() Set {
	words, _ := Read(strings.NewReader(embeddedShort))
	return NewSet(words...)
}

// Default returns the embedded word list combined with the short-word supplement.
func Default() Dictionary {
	return Union{Words(), Supplement()}
}

// Load builds the configured oracle. An empty path selects the embedded list.
// When supplement is true the short-word list is added on top.
func Load(path string, supplement bool) (Dictionary, error) {
	var base Sorted
	if path == "" {
		base = Words()
	} else {
		words, err := Open(path)
		if err != nil {
			return nil, err
		}
		base = NewSorted(words)
	}

	if base.Len() == 0 {
		return nil, ErrEmpty
	}
	if !supplement {
		return base, nil
	}
	return Union{base, Supplement()}, nil
}

// Lazy is a file-backed dictionary that reads its list on first use.
// Lookups report a load failure through Check instead of failing at startup.
type Lazy struct {
	path string
	once sync.Once
	set  Set
	err  error
}

// NewLazy creates a lazily loaded dictionary for the word list at path.
func NewLazy(path string) *Lazy {
	return &Lazy{path: path}
}

func (l *Lazy) load() {
	words, err := Open(l.path)
	if err != nil {
		l.err = err
		return
	}
	if len(words) == 0 {
		l.err = ErrEmpty
		return
	}
	l.set = NewSet(words...)
}

// Check loads the list if needed and reports membership.
func (l *Lazy) Check(word string) (bool, error) {
	l.once.Do(l.load)
	if l.err != nil {
		return false, l.err
	}
	return l.set.Contains(word), nil
}

// Contains reports membership, treating a load failure as "not a word".
// Callers that need to tell the two apart use Lookup.
func (l *Lazy) Contains(word string) bool {
	ok, _ := l.Check(word)
	return ok
}

var (
	_ Dictionary = (*Lazy)(nil)
	_ Checker    = (*Lazy)(nil)
)
