package folio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLibrary_Clone(t *testing.T) {
	names := &NameParts{First: []string{"Ann"}, Last: []string{"Lee"}}
	lib := NewLibrary(
		&Entry{Key: "k", Fields: []Field{{Key: "author", Value: names}, {Key: "title", Value: Text("t")}}},
		&String{Key: "s", Value: Text("v")},
		&Preamble{Value: "p"},
		&ExplicitComment{Comment: "c"},
		&ImplicitComment{Comment: "i"},
		&FailedBlock{Middleware: "m", Err: errors.New("x"), Block: &String{Key: "f", Value: Text("y")}},
	)

	c := lib.Clone()
	assert.Equal(t, lib, c)
	for i := range lib.Blocks {
		assert.NotSame(t, lib.Blocks[i], c.Blocks[i])
	}

	c.Entries()[0].Fields[0].Value.(*NameParts).First[0] = "Bob"
	c.Entries()[0].Set("title", Text("changed"))
	c.FailedBlocks()[0].Block.(*String).Value = Text("z")

	assert.Equal(t, "Ann", names.First[0])
	title, _ := lib.Entries()[0].Get("title")
	assert.Equal(t, Text("t"), title.Value)
	assert.Equal(t, Text("y"), lib.FailedBlocks()[0].Block.(*String).Value)
}

func TestNameParts_ClonePreservesNil(t *testing.T) {
	n := (&NameParts{Last: []string{"x"}, Jr: []string{}}).Clone()
	assert.Nil(t, n.First)
	assert.Nil(t, n.Von)
	assert.NotNil(t, n.Jr)
	assert.Empty(t, n.Jr)
}

func TestEntry_GetSet(t *testing.T) {
	e := &Entry{Key: "k"}
	e.Set("Title", Text("a"))
	e.Set("title", Text("b"))

	assert.Len(t, e.Fields, 1)
	f, ok := e.Get("TITLE")
	assert.True(t, ok)
	assert.Equal(t, Text("b"), f.Value)

	_, ok = e.Get("year")
	assert.False(t, ok)
}

func TestValueTypeName(t *testing.T) {
	assert.Equal(t, "text", valueTypeName(Text("x")))
	assert.Equal(t, "names", valueTypeName(&NameParts{}))
	assert.Equal(t, "map[string]int", valueTypeName(Opaque{Payload: map[string]int{}}))
	assert.Equal(t, "<nil>", valueTypeName(nil))
}

func TestBlockLine(t *testing.T) {
	assert.Equal(t, 4, (&Entry{StartLine: 4}).Line())
	assert.Equal(t, 7, (&FailedBlock{Block: &Preamble{StartLine: 7}}).Line())
	assert.Equal(t, 0, (&FailedBlock{}).Line())
	assert.Equal(t, "k", blockKey(&FailedBlock{Block: &Entry{Key: "k"}}))
	assert.Equal(t, "", blockKey(&Preamble{}))
}
