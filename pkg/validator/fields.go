package validator

import (
	"reflect"
	"strings"
)

// Field describes one field of the record being validated.
type Field struct {
	Name        string
	DisplayName string
	// Type is the declared type of the field.
	Type reflect.Type
	// Get returns the current value. A nil Get means the field cannot be read.
	Get func() any
}

// Label returns the display name, or the raw name when none is set.
func (f Field) Label() string {
	if f.DisplayName != "" {
		return f.DisplayName
	}
	return f.Name
}

// FieldAccessor resolves sibling fields of the record being validated by name.
// It is supplied by whatever drives validation of a record.
type FieldAccessor interface {
	Field(name string) (Field, bool)
}

// Fields is a FieldAccessor backed by a map keyed by field name.
type Fields map[string]Field

func (fs Fields) Field(name string) (Field, bool) {
	f, ok := fs[name]
	if ok && f.Name == "" {
		f.Name = name
	}
	return f, ok
}

// BoolField describes a readable bool field with a fixed value.
func BoolField(name, displayName string, value bool) Field {
	return Field{
		Name:        name,
		DisplayName: displayName,
		Type:        reflect.TypeOf(false),
		Get:         func() any { return value },
	}
}

// StructFields exposes the fields of a struct (or pointer to struct) as a
// FieldAccessor. Fields are matched by their Go name. Exported fields are
// readable; unexported fields are found but have no getter. A `display`
// struct tag sets the display name.
//
// Values are read when Get is called, so a pointer argument reflects later
// changes to the struct.
func StructFields(record any) FieldAccessor {
	return structFields{v: reflect.ValueOf(record)}
}

type structFields struct {
	v reflect.Value
}

func (s structFields) Field(name string) (Field, bool) {
	v := s.v
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return Field{}, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return Field{}, false
	}

	sf, ok := v.Type().FieldByName(name)
	if !ok {
		return Field{}, false
	}

	f := Field{
		Name:        sf.Name,
		DisplayName: strings.TrimSpace(sf.Tag.Get("display")),
		Type:        sf.Type,
	}
	if sf.IsExported() {
		index := sf.Index
		f.Get = func() any {
			fv, err := v.FieldByIndexErr(index)
			if err != nil {
				return nil
			}
			return fv.Interface()
		}
	}
	return f, true
}
