package folio

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register bib tag with sentinel for metadata extraction
	sentinel.Tag("bib")
}

var (
	namePartsType    = reflect.TypeOf(NameParts{})
	namePartsPtrType = reflect.TypeOf(&NameParts{})
)

// bindField maps one struct field to an entry field key.
type bindField struct {
	index     []int
	name      string
	key       string
	omitEmpty bool
	typ       reflect.Type
}

// buildBindFields scans T for fields tagged `bib:"key"` or
// `bib:"key,omitempty"`. Untagged fields and `bib:"-"` are ignored.
func buildBindFields[T any]() ([]bindField, error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrBind, rt)
	}

	spec := sentinel.Scan[T]()
	fields := make([]bindField, 0, len(spec.Fields))
	for _, field := range spec.Fields {
		tag, ok := field.Tags["bib"]
		if !ok || tag == "" || tag == "-" {
			continue
		}

		key, opts, _ := strings.Cut(tag, ",")
		fields = append(fields, bindField{
			index:     field.Index,
			name:      field.Name,
			key:       key,
			omitEmpty: opts == "omitempty",
			typ:       field.ReflectType,
		})
	}
	return fields, nil
}

// EntryFrom builds an entry from a struct whose fields carry bib tags.
// String fields become Text, NameParts and *NameParts fields become names,
// and any other type is carried as an Opaque value.
func EntryFrom[T any](entryType, key string, v T) (*Entry, error) {
	fields, err := buildBindFields[T]()
	if err != nil {
		return nil, err
	}

	e := &Entry{EntryType: entryType, Key: key}
	rv := reflect.ValueOf(v)
	for _, f := range fields {
		fv := rv.FieldByIndex(f.index)
		if f.omitEmpty && fv.IsZero() {
			continue
		}

		switch {
		case f.typ.Kind() == reflect.String:
			e.Set(f.key, Text(fv.String()))
		case f.typ == namePartsType:
			n := fv.Interface().(NameParts)
			e.Set(f.key, n.Clone())
		case f.typ == namePartsPtrType:
			if fv.IsNil() {
				continue
			}
			e.Set(f.key, fv.Interface().(*NameParts).Clone())
		default:
			e.Set(f.key, Opaque{Payload: fv.Interface()})
		}
	}
	return e, nil
}

// Bind fills a new T from the fields of e. Missing fields leave the zero
// value. A value whose variant does not fit the struct field is an error
// matching ErrBind.
func Bind[T any](e *Entry) (T, error) {
	var out T
	fields, err := buildBindFields[T]()
	if err != nil {
		return out, err
	}

	rv := reflect.ValueOf(&out).Elem()
	for _, f := range fields {
		src, ok := e.Get(f.key)
		if !ok || src.Value == nil {
			continue
		}
		if err := bindValue(rv.FieldByIndex(f.index), f.typ, src.Value); err != nil {
			return out, fmt.Errorf("%w: %s.%s: %v", ErrBind, e.Key, f.name, err)
		}
	}
	return out, nil
}

func bindValue(dst reflect.Value, typ reflect.Type, v Value) error {
	switch v := v.(type) {
	case Text:
		if typ.Kind() != reflect.String {
			return fmt.Errorf("cannot bind text to %s", typ)
		}
		dst.SetString(string(v))

	case *NameParts:
		if v == nil {
			return nil
		}
		switch typ {
		case namePartsType:
			dst.Set(reflect.ValueOf(*v.Clone()))
		case namePartsPtrType:
			dst.Set(reflect.ValueOf(v.Clone()))
		default:
			return fmt.Errorf("cannot bind names to %s", typ)
		}

	case Opaque:
		pv := reflect.ValueOf(v.Payload)
		if !pv.IsValid() {
			return nil
		}
		if !pv.Type().AssignableTo(typ) {
			return fmt.Errorf("cannot bind %s to %s", pv.Type(), typ)
		}
		dst.Set(pv)

	default:
		return fmt.Errorf("cannot bind %T", v)
	}
	return nil
}
