package source

import (
	"fmt"
)

// File is a source reading a document through a DataFetcher and a Parser.
// The document is parsed on every Properties call, so refreshing the fetcher
// is enough to pick up changes.
type File struct {
	name    string
	ordinal int
	path    string
	fetcher DataFetcher
	parser  Parser
}

// FileOption configures a File source.
type FileOption func(*File)

// WithFileOrdinal overrides FileOrdinal.
func WithFileOrdinal(ordinal int) FileOption {
	return func(f *File) {
		f.ordinal = ordinal
	}
}

// WithSection limits the source to a section of the document, e.g. "services:api".
func WithSection(path string) FileOption {
	return func(f *File) {
		f.path = path
	}
}

// NewFile creates a File source.
func NewFile(name string, fetcher DataFetcher, parser Parser, opts ...FileOption) *File {
	f := &File{
		name:    name,
		ordinal: FileOrdinal,
		path:    "",
		fetcher: fetcher,
		parser:  parser,
	}

	for _, apply := range opts {
		apply(f)
	}

	return f
}

// Name implements property.Source.
func (f *File) Name() string {
	return f.name
}

// Ordinal implements property.Source.
func (f *File) Ordinal() int {
	return f.ordinal
}

// Properties implements property.Source. An empty document has no properties.
func (f *File) Properties() (map[string]string, error) {
	data, err := f.fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	if len(data) == 0 {
		return map[string]string{}, nil
	}

	props, err := f.parser.Parse(data, f.path)
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	return props, nil
}
