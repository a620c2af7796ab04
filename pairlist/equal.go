package pairlist

import "reflect"

// Equaler is implemented by values that define their own equality.
// [Equal] defers to it for non-nil values.
type Equaler[T any] interface {
	Equal(other T) bool
}

// Equal is the default element equality used by [List.Contains] and
// [List.Remove].
//
// Two nil values (nil interface, pointer, slice, map, channel or func) are
// equal; a nil and a non-nil value are not. Otherwise an [Equaler]
// implementation decides, then == for dynamically comparable values, then
// [reflect.DeepEqual] for everything else (slices, maps, structs holding
// them). Equal never panics.
//
// Lists built without explicit equality funcs only fall back to Equal for
// pointers, interfaces, non-comparable types and [Equaler] implementations;
// plain comparable types such as int, string or structs of them are compared
// with == directly.
func Equal[T any](x, y T) bool {
	ax, ay := any(x), any(y)
	xNil, yNil := isNil(ax), isNil(ay)
	if xNil || yNil {
		return xNil && yNil
	}
	if e, ok := ax.(Equaler[T]); ok {
		return e.Equal(y)
	}
	if reflect.ValueOf(ax).Comparable() {
		return ax == ay
	}
	return reflect.DeepEqual(ax, ay)
}

// Comparable compares with ==.
func Comparable[T comparable](x, y T) bool {
	return x == y
}

// equalFor picks the equality used when [Options] leaves one unset: plain ==
// for types where that is exactly what [Equal] would do, [Equal] otherwise.
func equalFor[T any]() func(T, T) bool {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Pointer || !strictlyComparable(t) ||
		t.Implements(reflect.TypeFor[Equaler[T]]()) {
		return Equal[T]
	}
	return func(x, y T) bool { return any(x) == any(y) }
}

// strictlyComparable reports whether == on t can never panic, which rules out
// interfaces anywhere inside t.
func strictlyComparable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return false
	case reflect.Array:
		return strictlyComparable(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !strictlyComparable(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return t.Comparable()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
