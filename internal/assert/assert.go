package assert

import (
	"fmt"
	"reflect"
)

func NonNil(value any, what string) {
	if value == nil || isNilValue(value) {
		panic(fmt.Sprintf("expected non nil %s", what))
	}
}

func NonNegative(value int, what string) {
	if value < 0 {
		panic(fmt.Sprintf("expected non negative %s, got %d", what, value))
	}
}

func Positive(value int, what string) {
	if value < 1 {
		panic(fmt.Sprintf("expected positive %s, got %d", what, value))
	}
}

func InRange(value, min, max int, what string) {
	if value < min || value > max {
		panic(fmt.Sprintf("expected %s in [%d, %d], got %d", what, min, max, value))
	}
}

func isNilValue(value any) bool {
	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
