package folio

import (
	"fmt"
	"strings"
)

// Library is an ordered collection of blocks produced by a parser.
type Library struct {
	Blocks []Block
}

// NewLibrary returns a library holding blocks.
func NewLibrary(blocks ...Block) *Library {
	return &Library{Blocks: blocks}
}

// Add appends blocks to the library.
func (l *Library) Add(blocks ...Block) {
	l.Blocks = append(l.Blocks, blocks...)
}

// Entries returns the entry blocks in order.
func (l *Library) Entries() []*Entry {
	var entries []*Entry
	for _, b := range l.Blocks {
		if e, ok := b.(*Entry); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// Strings returns the @string blocks in order.
func (l *Library) Strings() []*String {
	var strs []*String
	for _, b := range l.Blocks {
		if s, ok := b.(*String); ok {
			strs = append(strs, s)
		}
	}
	return strs
}

// FailedBlocks returns the blocks that failed transformation.
func (l *Library) FailedBlocks() []*FailedBlock {
	var failed []*FailedBlock
	for _, b := range l.Blocks {
		if f, ok := b.(*FailedBlock); ok {
			failed = append(failed, f)
		}
	}
	return failed
}

// Block is one element of a library. The set of variants is closed.
type Block interface {
	// Line is the line the block starts on in its source, or 0.
	Line() int

	cloneBlock() Block
}

// Entry is a bibliography record such as @article{key, ...}.
type Entry struct {
	EntryType string
	Key       string
	Fields    []Field
	StartLine int
}

// Field is one key = value pair of an entry.
type Field struct {
	Key       string
	Value     Value
	StartLine int
}

// Get returns the field whose key matches, ignoring case.
func (e *Entry) Get(key string) (*Field, bool) {
	for i := range e.Fields {
		if strings.EqualFold(e.Fields[i].Key, key) {
			return &e.Fields[i], true
		}
	}
	return nil, false
}

// Set replaces the value of the field named key, or appends a new field.
func (e *Entry) Set(key string, v Value) {
	if f, ok := e.Get(key); ok {
		f.Value = v
		return
	}
	e.Fields = append(e.Fields, Field{Key: key, Value: v})
}

// String is an @string{key = value} macro definition.
type String struct {
	Key       string
	Value     Value
	StartLine int
}

// Preamble is an @preamble{...} block.
type Preamble struct {
	Value     string
	StartLine int
}

// ExplicitComment is an @comment{...} block.
type ExplicitComment struct {
	Comment   string
	StartLine int
}

// ImplicitComment is text between blocks.
type ImplicitComment struct {
	Comment   string
	StartLine int
}

// FailedBlock stands in for a block whose transformation failed.
type FailedBlock struct {
	Block      Block  // the block given to the failing middleware; partly rewritten under InPlace
	Middleware string // metadata key of the failing middleware
	Err        error
}

func (e *Entry) Line() int           { return e.StartLine }
func (s *String) Line() int          { return s.StartLine }
func (p *Preamble) Line() int        { return p.StartLine }
func (c *ExplicitComment) Line() int { return c.StartLine }
func (c *ImplicitComment) Line() int { return c.StartLine }

// Line returns the line of the wrapped block.
func (f *FailedBlock) Line() int {
	if f.Block == nil {
		return 0
	}
	return f.Block.Line()
}

// Value is the value of a field or @string. The variants are Text,
// *NameParts and Opaque; Opaque carries any other payload.
type Value interface {
	isValue()
}

// Text is a plain string value.
type Text string

// NameParts is a personal name split into its BibTeX components. Each
// component may hold several words.
type NameParts struct {
	First []string
	Last  []string
	Von   []string
	Jr    []string
}

// Opaque wraps a value of a kind this package does not transform.
type Opaque struct {
	Payload any
}

func (Text) isValue()       {}
func (*NameParts) isValue() {}
func (Opaque) isValue()     {}

// TypeName describes the payload's dynamic type.
func (o Opaque) TypeName() string {
	return fmt.Sprintf("%T", o.Payload)
}

// valueTypeName names a value's variant for diagnostics.
func valueTypeName(v Value) string {
	switch v := v.(type) {
	case Text:
		return "text"
	case *NameParts:
		return "names"
	case Opaque:
		return v.TypeName()
	default:
		return fmt.Sprintf("%T", v)
	}
}

// blockKey returns the key of entries and strings, or "".
func blockKey(b Block) string {
	switch b := b.(type) {
	case *Entry:
		return b.Key
	case *String:
		return b.Key
	case *FailedBlock:
		return blockKey(b.Block)
	default:
		return ""
	}
}
