package utils

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Deref unwraps pointers and interfaces until it reaches a value. A nil pointer yields nil.
func Deref(val any) any {
	v := reflect.ValueOf(val)
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}

// ToInt converts driver values to int.
// It handles integer types, floats, strings and byte slices. Anything else is 0.
func ToInt(val any) int {
	switch v := Deref(val).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case uint8:
		return int(v)
	case float64:
		return int(v)
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(v))
		return i
	case []byte:
		i, _ := strconv.Atoi(strings.TrimSpace(string(v)))
		return i
	default:
		return 0
	}
}

// ToString converts driver values to string. A nil value is empty.
func ToString(val any) string {
	switch v := Deref(val).(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts driver values to bool.
// Numbers are true when non-zero; strings accept "1", "true" and "yes".
func ToBool(val any) bool {
	switch v := Deref(val).(type) {
	case bool:
		return v
	case string, []byte:
		switch strings.ToLower(strings.TrimSpace(ToString(v))) {
		case "1", "true", "yes", "y":
			return true
		}
		return false
	case nil:
		return false
	default:
		return ToInt(v) != 0
	}
}
