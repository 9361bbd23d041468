package firestore

import (
	"path"
	"sort"

	fsv1 "google.golang.org/api/firestore/v1"

	"gtodo/internal/service"
)

// toValue converts a document field to its Firestore representation.
// Zero values are force-sent so that "" and false survive encoding.
func toValue(v any) *fsv1.Value {
	switch x := v.(type) {
	case nil:
		return &fsv1.Value{NullValue: "NULL_VALUE"}
	case string:
		return &fsv1.Value{StringValue: x, ForceSendFields: []string{"StringValue"}}
	case bool:
		return &fsv1.Value{BooleanValue: x, ForceSendFields: []string{"BooleanValue"}}
	case int:
		return &fsv1.Value{IntegerValue: int64(x), ForceSendFields: []string{"IntegerValue"}}
	case int64:
		return &fsv1.Value{IntegerValue: x, ForceSendFields: []string{"IntegerValue"}}
	case float64:
		return &fsv1.Value{DoubleValue: x, ForceSendFields: []string{"DoubleValue"}}
	case service.Fields:
		return &fsv1.Value{MapValue: &fsv1.MapValue{Fields: toFields(x)}}
	case map[string]any:
		return &fsv1.Value{MapValue: &fsv1.MapValue{Fields: toFields(x)}}
	case []any:
		values := make([]*fsv1.Value, 0, len(x))
		for _, e := range x {
			values = append(values, toValue(e))
		}
		return &fsv1.Value{ArrayValue: &fsv1.ArrayValue{Values: values}}
	}
	return &fsv1.Value{NullValue: "NULL_VALUE"}
}

func toFields(fields map[string]any) map[string]fsv1.Value {
	out := make(map[string]fsv1.Value, len(fields))
	for k, v := range fields {
		out[k] = *toValue(v)
	}
	return out
}

// fromValue converts a Firestore value back to a plain Go value.
// The decoded API type cannot tell an empty string or false apart from an
// unset value, so those decode as nil; Fields.String and Fields.Bool read
// nil as the zero value.
func fromValue(v *fsv1.Value) any {
	switch {
	case v == nil:
		return nil
	case v.MapValue != nil:
		return map[string]any(fromFields(v.MapValue.Fields))
	case v.ArrayValue != nil:
		out := make([]any, 0, len(v.ArrayValue.Values))
		for _, e := range v.ArrayValue.Values {
			out = append(out, fromValue(e))
		}
		return out
	case v.NullValue != "":
		return nil
	case v.StringValue != "":
		return v.StringValue
	case v.BooleanValue:
		return true
	case v.IntegerValue != 0:
		return v.IntegerValue
	case v.DoubleValue != 0:
		return v.DoubleValue
	case v.TimestampValue != "":
		return v.TimestampValue
	case v.ReferenceValue != "":
		return v.ReferenceValue
	}
	return nil
}

func fromFields(fields map[string]fsv1.Value) service.Fields {
	out := make(service.Fields, len(fields))
	for k, v := range fields {
		v := v
		out[k] = fromValue(&v)
	}
	return out
}

func fromDocument(doc *fsv1.Document) service.Document {
	return service.Document{
		ID:     path.Base(doc.Name),
		Fields: fromFields(doc.Fields),
	}
}

// fieldPaths flattens nested maps into dotted update-mask paths so an update
// merges into nested objects instead of replacing them.
func fieldPaths(prefix string, fields map[string]any) []string {
	var paths []string
	for k, v := range fields {
		p := k
		if prefix != "" {
			p = prefix + "." + k
		}
		switch m := v.(type) {
		case service.Fields:
			paths = append(paths, fieldPaths(p, m)...)
		case map[string]any:
			paths = append(paths, fieldPaths(p, m)...)
		default:
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}
