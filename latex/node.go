package latex

// Node is one element of parsed markup.
type Node interface {
	node()
}

// Chars is a run of ordinary text.
type Chars struct {
	Text string
}

// Group is a brace-delimited group.
type Group struct {
	Nodes []Node
}

// Command is a control sequence such as \textbf or \'. Arguments are not
// attached at parse time; the renderer consumes the nodes that follow
// according to the macro's specification.
type Command struct {
	Name string
}

// Math is a math-mode span.
type Math struct {
	Open, Close string // delimiters, e.g. "$" and "$"
	Raw         string // source between the delimiters
	Nodes       []Node
}

// Comment is a %-comment, without the leading % and trailing newline.
type Comment struct {
	Text string
}

// Specials is a character sequence with a special rendering: ~, --, ---,
// `` and ''.
type Specials struct {
	Chars string
}

func (Chars) node()    {}
func (Group) node()    {}
func (Command) node()  {}
func (Math) node()     {}
func (Comment) node()  {}
func (Specials) node() {}
