package desktop

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// Blank lists the characters treated as insignificant around keys, values
// and keyword tokens.
const Blank = " \b\f\v\r\t"

// maxLineSize bounds a single line; description files are small.
const maxLineSize = 1 << 20

// Entry is a single key/value pair inside a group.
type Entry struct {
	Key   string
	Value string
}

// Group is a named set of uniquely keyed entries.
type Group struct {
	Name  string
	index map[string]*Entry
}

// Document is an ordered set of uniquely named groups.
type Document struct {
	groups []*Group
	index  map[string]*Group
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{index: make(map[string]*Group)}
}

// FindGroup returns the group with the given name.
func (d *Document) FindGroup(name string) (*Group, bool) {
	if d == nil {
		return nil, false
	}

	g, ok := d.index[name]

	return g, ok
}

// Groups returns the groups in document order.
func (d *Document) Groups() []*Group {
	return d.groups
}

// AddGroup returns the group with the given name, creating it at the end of
// the document if it does not exist yet.
func (d *Document) AddGroup(name string) *Group {
	if g, ok := d.index[name]; ok {
		return g
	}

	g := &Group{Name: name, index: make(map[string]*Entry)}
	d.groups = append(d.groups, g)
	d.index[name] = g

	return g
}

// FindEntry returns the entry with the given key.
func (g *Group) FindEntry(key string) (*Entry, bool) {
	if g == nil {
		return nil, false
	}

	e, ok := g.index[key]

	return e, ok
}

// Value returns the raw value stored under key and whether the key exists.
func (g *Group) Value(key string) (string, bool) {
	e, ok := g.FindEntry(key)
	if !ok {
		return "", false
	}

	return e.Value, true
}

// Set stores value under key.
func (g *Group) Set(key, value string) *Entry {
	if e, ok := g.index[key]; ok {
		e.Value = value
		return e
	}

	e := &Entry{Key: key, Value: value}
	g.index[key] = e

	return e
}

// Load reads and parses the file at path. The file is closed before Load
// returns, whatever the outcome.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open description file %s", path)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse description file %s", path)
	}

	return doc, nil
}

// Parse reads a sectioned document from r.
func Parse(r io.Reader) (*Document, error) {
	doc := NewDocument()

	var current *Group

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	for scanner.Scan() {
		line := strings.Trim(scanner.Text(), Blank)
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}

		if line[0] == '[' {
			end := strings.IndexByte(line, ']')
			if end < 0 {
				// Malformed header: stop collecting into the previous group.
				current = nil
				continue
			}

			current = doc.AddGroup(line[1:end])

			continue
		}

		if current == nil {
			continue
		}

		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			continue
		}

		key := strings.TrimRight(line[:eq], Blank)
		if key == "" {
			continue
		}

		current.Set(key, strings.TrimLeft(line[eq+1:], Blank))
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read document")
	}

	return doc, nil
}
