package instantiate

import (
	"slices"

	"github.com/google/uuid"
)

// Spec records one materialized pair of specializations. ListLen and
// QueueLen reflect the single best-effort insertion into each container.
type Spec struct {
	Element  string // element type name as declared in the table
	ListLen  int
	QueueLen int
}

// tableRow binds an element type name to the thunk that instantiates the
// container shapes for it. The thunk is what makes the specialization
// exist: the compiler emits the monomorphized List and Queue code the
// moment the generic function is mentioned with a concrete argument.
type tableRow struct {
	name  string
	build func() Spec
}

// row constructs a table entry for element type T.
func row[T any](name string) tableRow {
	return tableRow{name: name, build: func() Spec { return materialize[T](name) }}
}

// table is the fixed, ordered element-type list. It deliberately spans
// distinct integer widths and signedness, floating point, text, a binary
// blob, an opaque struct, and the empty interface, so a later analysis
// pass can match found specializations against a known, diverse set.
var table = []tableRow{
	row[int8]("int8"),
	row[int16]("int16"),
	row[int32]("int32"),
	row[int64]("int64"),
	row[uint8]("uint8"),
	row[uint16]("uint16"),
	row[uint32]("uint32"),
	row[uint64]("uint64"),
	row[float64]("float64"),
	row[string]("string"),
	row[[]byte]("[]byte"),
	row[uuid.UUID]("uuid.UUID"),
	row[any]("any"),
}

// materialize builds exactly one List[T] and one Queue[T] and inserts a
// zero value into each. The insertion is best-effort: a panic from an
// exotic element type is absorbed and shows up as a zero length.
func materialize[T any](name string) Spec {
	spec := Spec{Element: name}

	l := NewList[T]()
	if insert(func() {
		var zero T
		l.Append(zero)
	}) {
		spec.ListLen = l.Len()
	}

	q := NewQueue[T]()
	if insert(func() {
		var zero T
		q.Enqueue(zero)
	}) {
		spec.QueueLen = q.Len()
	}
	return spec
}

// insert runs one best-effort insertion, reporting rather than
// propagating failure.
func insert(fn func()) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	fn()
	return true
}

// Elements returns the element type names in table order.
func Elements() []string {
	out := make([]string, len(table))
	for i, r := range table {
		out[i] = r.name
	}
	return out
}

// Materialize instantiates every container shape in the table, in table
// order, and returns one Spec per element type. The result is identical
// across runs; the table is compiled in and never mutated.
//
// The generic sequence facade (the slices package) is referenced once per
// pass, after the loop: its reachability does not depend on which element
// type anchored it.
func Materialize() []Spec {
	specs := make([]Spec, 0, len(table))
	for _, r := range table {
		specs = append(specs, r.build())
	}
	touchFacade(specs)
	return specs
}

// touchFacade exercises the generic sequence-operations surface once.
func touchFacade(specs []Spec) {
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Element
	}
	slices.Sort(names)
	Facade = len(slices.Compact(names)) + slices.Index(names, "string")
}

// Facade pins the slices facade calls above; exported so the linker must
// keep the writes.
var Facade int
