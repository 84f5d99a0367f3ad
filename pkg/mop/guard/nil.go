package guard

import "reflect"

// IsNil reports whether v is an untyped nil or a nil value of a nilable kind.
// It catches typed nils (a nil *T stored in an interface) that v == nil
// misses.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
