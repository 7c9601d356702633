package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// bindErrorMessages maps a JSON decoding failure onto the validation message
// list carried by 400 responses. Type mismatches name the offending field;
// anything else is reported as a malformed body.
func bindErrorMessages(err error) []string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		label := strings.ToUpper(typeErr.Field[:1]) + typeErr.Field[1:]
		return []string{fmt.Sprintf("%s must be a %s", label, jsonTypeName(typeErr.Type))}
	}
	return []string{"Invalid request body"}
}

// jsonTypeName names the expected JSON type for a Go target type.
func jsonTypeName(t reflect.Type) string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "valid " + t.Kind().String()
	}
}
