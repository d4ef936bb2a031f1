package loanbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultBookName is the name used when a directory holds no book yet.
const DefaultBookName = "loanbook"

// FindBook locates and loads the book named 'query' under 'path'. A book
// name is its file name without the .json extension.
//
// With an empty query, a directory holding exactly one book loads it, and an
// empty directory yields a fresh default book. Anything ambiguous is an
// error.
func FindBook(path, query string) (*Book, error) {
	names, err := findBookNames(path)
	if err != nil {
		return nil, err
	}

	if query == "" {
		switch len(names) {
		case 0:
			b := NewBook()
			b.name = DefaultBookName
			return b, nil
		case 1:
			query = names[0]
		default:
			return nil, fmt.Errorf("multiple books found in %q, pick one of %v", path, names)
		}
	}

	f, err := os.Open(bookFile(path, query))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("could not find book %q in %q", query, path)
		}
		return nil, fmt.Errorf("could not open book %q: %w", query, err)
	}
	defer f.Close()

	b, err := DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode book %q: %w", query, err)
	}
	b.name = query
	return b, nil
}

// SaveBook writes the book to its file under 'path', stamping 'on' as the
// last refresh date.
func SaveBook(path string, b *Book, on Date) error {
	if b.Name() == "" {
		return fmt.Errorf("cannot save a book with an empty name")
	}
	file := bookFile(path, b.Name())
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return fmt.Errorf("could not create directory for book %q: %w", file, err)
	}

	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("could not create book file %q: %w", file, err)
	}
	defer f.Close()

	if err := EncodeBook(f, b, on); err != nil {
		return fmt.Errorf("could not write book file %q: %w", file, err)
	}
	return nil
}

// ImportBook saves a freshly decoded book under 'name'. Decoded books carry
// no name of their own, the caller picks one.
func ImportBook(path, name string, b *Book, on Date) error {
	if name == "" {
		name = DefaultBookName
	}
	b.name = name
	return SaveBook(path, b, on)
}

func bookFile(path, name string) string {
	return filepath.Join(path, name+".json")
}

// findBookNames lists the book names available under 'path'.
func findBookNames(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not read book directory %q: %w", path, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	return names, nil
}
