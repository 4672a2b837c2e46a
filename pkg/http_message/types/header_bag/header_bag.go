package header_bag

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Entry is a named header with one or more values.
type Entry struct {
	Name   string
	Values []string
}

// HeaderBag is an insertion-ordered collection of headers. Lookup is
// case-insensitive while the casing used when a header is first added is
// preserved for output.
type HeaderBag struct {
	keys    []string
	entries map[string]*Entry
}

func New() *HeaderBag {
	return &HeaderBag{entries: make(map[string]*Entry)}
}

// Add appends a value to the named header, creating the header if it is not
// present. The casing of the name of an existing header is kept.
func (headerBag *HeaderBag) Add(name string, value string) {
	if headerBag.entries == nil {
		headerBag.entries = make(map[string]*Entry)
	}

	key := strings.ToLower(name)

	entry, ok := headerBag.entries[key]
	if !ok {
		entry = &Entry{Name: name}
		headerBag.entries[key] = entry
		headerBag.keys = append(headerBag.keys, key)
	}

	entry.Values = append(entry.Values, value)
}

// Set replaces the values of the named header with a single value. The casing
// of the provided name takes effect, and the position of an existing header is
// kept.
func (headerBag *HeaderBag) Set(name string, value string) {
	if headerBag.entries == nil {
		headerBag.entries = make(map[string]*Entry)
	}

	key := strings.ToLower(name)

	entry, ok := headerBag.entries[key]
	if !ok {
		entry = &Entry{}
		headerBag.entries[key] = entry
		headerBag.keys = append(headerBag.keys, key)
	}

	entry.Name = name
	entry.Values = []string{value}
}

// Get returns the first value of the named header, or an empty string when the
// header is not present.
func (headerBag *HeaderBag) Get(name string) string {
	entry, ok := headerBag.entries[strings.ToLower(name)]
	if !ok || len(entry.Values) == 0 {
		return ""
	}

	return entry.Values[0]
}

// GetValues returns a copy of the values of the named header.
func (headerBag *HeaderBag) GetValues(name string) []string {
	entry, ok := headerBag.entries[strings.ToLower(name)]
	if !ok {
		return nil
	}

	return slices.Clone(entry.Values)
}

func (headerBag *HeaderBag) Has(name string) bool {
	_, ok := headerBag.entries[strings.ToLower(name)]
	return ok
}

func (headerBag *HeaderBag) Remove(name string) {
	key := strings.ToLower(name)

	if _, ok := headerBag.entries[key]; !ok {
		return
	}

	delete(headerBag.entries, key)
	headerBag.keys = slices.DeleteFunc(
		headerBag.keys,
		func(presentKey string) bool {
			return presentKey == key
		},
	)
}

func (headerBag *HeaderBag) Count() int {
	return len(headerBag.entries)
}

// GetAll returns a snapshot of the headers in insertion order.
func (headerBag *HeaderBag) GetAll() []*Entry {
	entries := make([]*Entry, 0, len(headerBag.keys))
	for _, key := range headerBag.keys {
		entry := headerBag.entries[key]
		entries = append(entries, &Entry{Name: entry.Name, Values: slices.Clone(entry.Values)})
	}

	return entries
}

// Entries iterates over the headers in insertion order, yielding the preserved
// name and the values of each header.
func (headerBag *HeaderBag) Entries() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, key := range headerBag.keys {
			entry := headerBag.entries[key]
			if !yield(entry.Name, entry.Values) {
				return
			}
		}
	}
}

func (headerBag *HeaderBag) Clone() *HeaderBag {
	clonedHeaderBag := New()
	clonedHeaderBag.keys = slices.Clone(headerBag.keys)

	for key, entry := range headerBag.entries {
		clonedHeaderBag.entries[key] = &Entry{Name: entry.Name, Values: slices.Clone(entry.Values)}
	}

	return clonedHeaderBag
}

// String renders the headers as wire-format lines, one "Name: value" line per
// value, each terminated by CRLF.
func (headerBag *HeaderBag) String() string {
	var builder strings.Builder

	for name, values := range headerBag.Entries() {
		for _, value := range values {
			builder.WriteString(fmt.Sprintf("%s: %s\r\n", name, value))
		}
	}

	return builder.String()
}
