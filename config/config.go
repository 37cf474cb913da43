package config

import "reflect"

// From src/pkg/encoding/json.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}

// merge copies every non-empty field of src over dst.
func merge(dst, src reflect.Value) {
	if !src.IsValid() {
		return
	}

	if src.Kind() == reflect.Struct {
		for i, n := 0, dst.NumField(); i < n; i++ {
			merge(dst.Field(i), src.Field(i))
		}
		return
	}

	if dst.CanSet() && !isEmptyValue(src) {
		dst.Set(src)
	}
}
