package folio

// Cloner allows types to provide deep copy logic.
//
// The Clone method must return a deep copy where modifications to the clone
// do not affect the original value. Every block type implements Cloner for
// its own pointer type; Copy ownership relies on it.
type Cloner[T any] interface {
	Clone() T
}

var (
	_ Cloner[*Entry]     = (*Entry)(nil)
	_ Cloner[*String]    = (*String)(nil)
	_ Cloner[*NameParts] = (*NameParts)(nil)
	_ Cloner[*Library]   = (*Library)(nil)
)

// Clone returns a deep copy of the library and all of its blocks.
func (l *Library) Clone() *Library {
	blocks := make([]Block, len(l.Blocks))
	for i, b := range l.Blocks {
		blocks[i] = b.cloneBlock()
	}
	return &Library{Blocks: blocks}
}

// Clone returns a deep copy of the entry. Opaque payloads are shared.
func (e *Entry) Clone() *Entry {
	var fields []Field
	if e.Fields != nil {
		fields = make([]Field, len(e.Fields))
		for i, f := range e.Fields {
			fields[i] = Field{Key: f.Key, Value: cloneValue(f.Value), StartLine: f.StartLine}
		}
	}
	return &Entry{
		EntryType: e.EntryType,
		Key:       e.Key,
		Fields:    fields,
		StartLine: e.StartLine,
	}
}

// Clone returns a deep copy of the string definition.
func (s *String) Clone() *String {
	return &String{Key: s.Key, Value: cloneValue(s.Value), StartLine: s.StartLine}
}

// Clone returns a deep copy of the name.
func (n *NameParts) Clone() *NameParts {
	return &NameParts{
		First: cloneStrings(n.First),
		Last:  cloneStrings(n.Last),
		Von:   cloneStrings(n.Von),
		Jr:    cloneStrings(n.Jr),
	}
}

func (e *Entry) cloneBlock() Block  { return e.Clone() }
func (s *String) cloneBlock() Block { return s.Clone() }

func (p *Preamble) cloneBlock() Block {
	c := *p
	return &c
}

func (c *ExplicitComment) cloneBlock() Block {
	cp := *c
	return &cp
}

func (c *ImplicitComment) cloneBlock() Block {
	cp := *c
	return &cp
}

func (f *FailedBlock) cloneBlock() Block {
	cp := *f
	if f.Block != nil {
		cp.Block = f.Block.cloneBlock()
	}
	return &cp
}

func cloneValue(v Value) Value {
	if n, ok := v.(*NameParts); ok && n != nil {
		return n.Clone()
	}
	return v
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
