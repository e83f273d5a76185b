package folio

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// Codec marshals snapshot records for one content type. Implementations
// live in the json, xml, yaml, msgpack and bson submodules.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Block kinds as written in snapshots.
const (
	kindEntry           = "entry"
	kindString          = "string"
	kindPreamble        = "preamble"
	kindComment         = "comment"
	kindImplicitComment = "implicit_comment"
	kindFailed          = "failed"
)

// Value kinds as written in snapshots.
const (
	valueText   = "text"
	valueNames  = "names"
	valueOpaque = "opaque"
)

type snapshot struct {
	XMLName xml.Name      `json:"-" yaml:"-" msgpack:"-" bson:"-" xml:"library"`
	Blocks  []blockRecord `json:"blocks" yaml:"blocks" msgpack:"blocks" bson:"blocks" xml:"block"`
}

type blockRecord struct {
	Kind       string        `json:"kind" yaml:"kind" msgpack:"kind" bson:"kind" xml:"kind,attr"`
	Type       string        `json:"type,omitempty" yaml:"type,omitempty" msgpack:"type,omitempty" bson:"type,omitempty" xml:"type,attr,omitempty"`
	Key        string        `json:"key,omitempty" yaml:"key,omitempty" msgpack:"key,omitempty" bson:"key,omitempty" xml:"key,attr,omitempty"`
	Line       int           `json:"line,omitempty" yaml:"line,omitempty" msgpack:"line,omitempty" bson:"line,omitempty" xml:"line,attr,omitempty"`
	Fields     []fieldRecord `json:"fields,omitempty" yaml:"fields,omitempty" msgpack:"fields,omitempty" bson:"fields,omitempty" xml:"field"`
	Value      *valueRecord  `json:"value,omitempty" yaml:"value,omitempty" msgpack:"value,omitempty" bson:"value,omitempty" xml:"value"`
	Text       string        `json:"text,omitempty" yaml:"text,omitempty" msgpack:"text,omitempty" bson:"text,omitempty" xml:"text,omitempty"`
	Middleware string        `json:"middleware,omitempty" yaml:"middleware,omitempty" msgpack:"middleware,omitempty" bson:"middleware,omitempty" xml:"middleware,attr,omitempty"`
	Error      string        `json:"error,omitempty" yaml:"error,omitempty" msgpack:"error,omitempty" bson:"error,omitempty" xml:"error,omitempty"`
	Failed     *blockRecord  `json:"failed,omitempty" yaml:"failed,omitempty" msgpack:"failed,omitempty" bson:"failed,omitempty" xml:"failed"`
}

type fieldRecord struct {
	Key   string      `json:"key" yaml:"key" msgpack:"key" bson:"key" xml:"key,attr"`
	Line  int         `json:"line,omitempty" yaml:"line,omitempty" msgpack:"line,omitempty" bson:"line,omitempty" xml:"line,attr,omitempty"`
	Value valueRecord `json:"value" yaml:"value" msgpack:"value" bson:"value" xml:"value"`
}

type valueRecord struct {
	Kind  string   `json:"kind" yaml:"kind" msgpack:"kind" bson:"kind" xml:"kind,attr"`
	Type  string   `json:"type,omitempty" yaml:"type,omitempty" msgpack:"type,omitempty" bson:"type,omitempty" xml:"type,attr,omitempty"`
	Text  string   `json:"text,omitempty" yaml:"text,omitempty" msgpack:"text,omitempty" bson:"text,omitempty" xml:"text,omitempty"`
	First []string `json:"first,omitempty" yaml:"first,omitempty" msgpack:"first,omitempty" bson:"first,omitempty" xml:"first"`
	Last  []string `json:"last,omitempty" yaml:"last,omitempty" msgpack:"last,omitempty" bson:"last,omitempty" xml:"last"`
	Von   []string `json:"von,omitempty" yaml:"von,omitempty" msgpack:"von,omitempty" bson:"von,omitempty" xml:"von"`
	Jr    []string `json:"jr,omitempty" yaml:"jr,omitempty" msgpack:"jr,omitempty" bson:"jr,omitempty" xml:"jr"`
}

// Marshal encodes lib with c.
//
// Opaque values are written as their type name and fmt.Sprint form and
// come back as Opaque string payloads. Empty name lists come back nil.
func Marshal(c Codec, lib *Library) ([]byte, error) {
	snap := snapshot{Blocks: make([]blockRecord, 0, len(lib.Blocks))}
	for _, b := range lib.Blocks {
		rec, err := recordBlock(b)
		if err != nil {
			return nil, newCodecError(ErrMarshal, err)
		}
		snap.Blocks = append(snap.Blocks, rec)
	}

	data, err := c.Marshal(&snap)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}

// Unmarshal decodes a library written by Marshal.
func Unmarshal(c Codec, data []byte) (*Library, error) {
	var snap snapshot
	if err := c.Unmarshal(data, &snap); err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}

	lib := &Library{Blocks: make([]Block, 0, len(snap.Blocks))}
	for i := range snap.Blocks {
		b, err := restoreBlock(&snap.Blocks[i])
		if err != nil {
			return nil, newCodecError(ErrUnmarshal, err)
		}
		lib.Blocks = append(lib.Blocks, b)
	}
	return lib, nil
}

func recordBlock(b Block) (blockRecord, error) {
	switch b := b.(type) {
	case *Entry:
		rec := blockRecord{Kind: kindEntry, Type: b.EntryType, Key: b.Key, Line: b.StartLine}
		for _, f := range b.Fields {
			rec.Fields = append(rec.Fields, fieldRecord{Key: f.Key, Line: f.StartLine, Value: recordValue(f.Value)})
		}
		return rec, nil
	case *String:
		v := recordValue(b.Value)
		return blockRecord{Kind: kindString, Key: b.Key, Line: b.StartLine, Value: &v}, nil
	case *Preamble:
		return blockRecord{Kind: kindPreamble, Line: b.StartLine, Text: b.Value}, nil
	case *ExplicitComment:
		return blockRecord{Kind: kindComment, Line: b.StartLine, Text: b.Comment}, nil
	case *ImplicitComment:
		return blockRecord{Kind: kindImplicitComment, Line: b.StartLine, Text: b.Comment}, nil
	case *FailedBlock:
		rec := blockRecord{Kind: kindFailed, Middleware: b.Middleware}
		if b.Err != nil {
			rec.Error = b.Err.Error()
		}
		if b.Block != nil {
			inner, err := recordBlock(b.Block)
			if err != nil {
				return blockRecord{}, err
			}
			rec.Failed = &inner
		}
		return rec, nil
	default:
		return blockRecord{}, fmt.Errorf("unsupported block %T", b)
	}
}

func recordValue(v Value) valueRecord {
	switch v := v.(type) {
	case Text:
		return valueRecord{Kind: valueText, Text: string(v)}
	case *NameParts:
		if v == nil {
			return valueRecord{Kind: valueNames}
		}
		return valueRecord{Kind: valueNames, First: v.First, Last: v.Last, Von: v.Von, Jr: v.Jr}
	case Opaque:
		return valueRecord{Kind: valueOpaque, Type: v.TypeName(), Text: fmt.Sprint(v.Payload)}
	default:
		return valueRecord{Kind: valueOpaque, Type: fmt.Sprintf("%T", v)}
	}
}

func restoreBlock(rec *blockRecord) (Block, error) {
	switch rec.Kind {
	case kindEntry:
		e := &Entry{EntryType: rec.Type, Key: rec.Key, StartLine: rec.Line}
		for _, f := range rec.Fields {
			v, err := restoreValue(f.Value)
			if err != nil {
				return nil, fmt.Errorf("entry %s field %s: %w", rec.Key, f.Key, err)
			}
			e.Fields = append(e.Fields, Field{Key: f.Key, Value: v, StartLine: f.Line})
		}
		return e, nil
	case kindString:
		if rec.Value == nil {
			return nil, fmt.Errorf("string %s: missing value", rec.Key)
		}
		v, err := restoreValue(*rec.Value)
		if err != nil {
			return nil, fmt.Errorf("string %s: %w", rec.Key, err)
		}
		return &String{Key: rec.Key, Value: v, StartLine: rec.Line}, nil
	case kindPreamble:
		return &Preamble{Value: rec.Text, StartLine: rec.Line}, nil
	case kindComment:
		return &ExplicitComment{Comment: rec.Text, StartLine: rec.Line}, nil
	case kindImplicitComment:
		return &ImplicitComment{Comment: rec.Text, StartLine: rec.Line}, nil
	case kindFailed:
		f := &FailedBlock{Middleware: rec.Middleware}
		if rec.Error != "" {
			f.Err = errors.New(rec.Error)
		}
		if rec.Failed != nil {
			inner, err := restoreBlock(rec.Failed)
			if err != nil {
				return nil, err
			}
			f.Block = inner
		}
		return f, nil
	default:
		return nil, fmt.Errorf("unknown block kind %q", rec.Kind)
	}
}

func restoreValue(rec valueRecord) (Value, error) {
	switch rec.Kind {
	case valueText:
		return Text(rec.Text), nil
	case valueNames:
		return &NameParts{
			First: nilIfEmpty(rec.First),
			Last:  nilIfEmpty(rec.Last),
			Von:   nilIfEmpty(rec.Von),
			Jr:    nilIfEmpty(rec.Jr),
		}, nil
	case valueOpaque:
		return Opaque{Payload: rec.Text}, nil
	default:
		return nil, fmt.Errorf("unknown value kind %q", rec.Kind)
	}
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
