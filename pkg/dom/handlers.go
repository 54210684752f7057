package dom

import "reflect"

// SameHandler reports whether two handlers are the same listener for
// attach/detach purposes. Identity is what counts, not behavior: the
// reconciler treats a different handler value as a different listener.
//
// Function handlers (EventFunc and other func-typed handlers) are compared
// by code pointer, since Go functions are not comparable with ==. Two
// closures created from the same function literal therefore compare equal;
// callers that need distinct listeners per element should use distinct
// named functions or method values.
func SameHandler(a, b EventHandler) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if va.Kind() == reflect.Func || vb.Kind() == reflect.Func {
		return va.Kind() == vb.Kind() && va.Pointer() == vb.Pointer()
	}
	if va.Type() != vb.Type() {
		return false
	}
	if !va.Type().Comparable() {
		return false
	}
	return a == b
}
