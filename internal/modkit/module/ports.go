package module

import (
	"fmt"
	"reflect"
)

// PortsOf pulls T out of a module's Ports bundle without touching the registry.
// The bundle itself may implement T, or one of its exported struct fields may
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	if m == nil {
		return zero, false
	}
	p := m.Ports()
	if p == nil {
		return zero, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}
	rv := reflect.Indirect(reflect.ValueOf(p))
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := range rv.NumField() {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}

// MustPortsOf panics when m carries no T
func MustPortsOf[T any](m Module) T {
	if v, ok := PortsOf[T](m); ok {
		return v
	}
	var zero T
	name := "<nil>"
	if m != nil {
		name = m.Name()
	}
	panic(fmt.Sprintf("module: %s exposes no %T port", name, zero))
}
