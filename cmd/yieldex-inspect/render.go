package main

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/yieldex-labs/yieldex-go/pkg/solana/yieldex"
)

type entry struct {
	Key   string
	Value interface{}
}

// object is a mapping that keeps its keys in insertion order in both output
// formats.
type object []entry

func (o object) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range o {
		var value yaml.Node
		if err := value.Encode(e.Value); err != nil {
			return nil, errors.Wrap(err, e.Key)
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key}, &value)
	}
	return node, nil
}

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range o {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, errors.Wrap(err, e.Key)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type fielder interface {
	Fields() []yieldex.Field
}

var (
	publicKeyType = reflect.TypeOf(ed25519.PublicKey(nil))
	fieldsType    = reflect.TypeOf([]yieldex.Field(nil))
	byteType      = reflect.TypeOf(byte(0))
	stringerType  = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	fielderType   = reflect.TypeOf((*fielder)(nil)).Elem()
)

// render converts decoded values into plain data: keys in base58, byte
// arrays in hex, enums and wide integers through String, structs and
// zero-copy views as ordered objects.
func render(v interface{}) interface{} {
	return renderValue(reflect.ValueOf(v))
}

func renderValue(v reflect.Value) interface{} {
	if !v.IsValid() {
		return nil
	}

	t := v.Type()
	switch {
	case t == publicKeyType:
		if v.IsNil() {
			return nil
		}
		return base58.Encode(v.Bytes())
	case t == fieldsType:
		return renderFields(v.Interface().([]yieldex.Field))
	}

	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return nil
		}
		return renderValue(v.Elem())
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return renderVariant(v.Elem())
	}

	switch {
	case t.Implements(fielderType):
		return renderFields(v.Interface().(fielder).Fields())
	case t.Implements(stringerType):
		return v.Interface().(fmt.Stringer).String()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if t.Elem() == byteType {
			b := make([]byte, v.Len())
			reflect.Copy(reflect.ValueOf(b), v)
			return hex.EncodeToString(b)
		}
		out := make([]interface{}, v.Len())
		for i := range out {
			out[i] = renderValue(v.Index(i))
		}
		return out
	case reflect.Struct:
		return renderStruct(v)
	default:
		return v.Interface()
	}
}

// renderVariant names the concrete type behind an interface valued field.
func renderVariant(v reflect.Value) interface{} {
	concrete := v
	if concrete.Kind() == reflect.Ptr && !concrete.IsNil() {
		concrete = concrete.Elem()
	}
	if concrete.Kind() != reflect.Struct {
		return renderValue(v)
	}

	out := object{{Key: "variant", Value: concrete.Type().Name()}}
	return append(out, renderStruct(concrete)...)
}

func renderStruct(v reflect.Value) object {
	t := v.Type()

	out := make(object, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		out = append(out, entry{Key: snakeCase(field.Name), Value: renderValue(v.Field(i))})
	}
	return out
}

func renderFields(fields []yieldex.Field) object {
	out := make(object, len(fields))
	for i, f := range fields {
		out[i] = entry{Key: f.Name, Value: render(f.Value)}
	}
	return out
}

// snakeCase converts a Go field name, keeping initialisms together:
// SubAccountID becomes sub_account_id.
func snakeCase(name string) string {
	runes := []rune(name)

	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func write(w io.Writer, format string, v interface{}) error {
	switch format {
	case outputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	default:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	}
}
