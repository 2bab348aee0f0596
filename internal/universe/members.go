package universe

import "reflect"

// MemberCount summarizes the member surface referenced for one type.
type MemberCount struct {
	Methods     int  // method table entries, value and pointer receiver
	Fields      int  // struct fields across every visibility
	Constructed bool // whether zero-argument construction succeeded
}

// TouchMembers references the name of every method and field of t. The
// method set of the pointer type is swept as well, since pointer-receiver
// methods only appear there. Nothing is invoked and no field is read or
// written; referencing the member table entry is the anchor.
//
// Types with no members still count as touched: the enumeration itself
// is the compiler-visible use.
func TouchMembers(t reflect.Type) MemberCount {
	var count MemberCount
	count.Methods += touchMethods(t)
	if t.Kind() != reflect.Pointer {
		count.Methods += touchMethods(reflect.PointerTo(t))
	}
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			keep(t.Field(i).Name)
			count.Fields++
		}
	}
	return count
}

func touchMethods(t reflect.Type) int {
	n := t.NumMethod()
	for i := 0; i < n; i++ {
		keep(t.Method(i).Name)
	}
	return n
}

// Construct is a best-effort zero-argument construction of t. The
// instance is built and immediately discarded; only the attempt matters,
// because it forces the type's construction path to survive the link.
// Interface types have no concrete zero-argument construction path and
// are skipped. Any panic from an exotic descriptor is absorbed.
func Construct(t reflect.Type) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	if t == nil || t.Kind() == reflect.Invalid || t.Kind() == reflect.Interface {
		return false
	}
	v := reflect.New(t).Elem()
	_ = v.Interface()
	return true
}
