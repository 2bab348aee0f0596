package universe

import (
	"reflect"
	"unsafe"
)

// Sink accumulates a digest of every metadata read the walker performs.
// It is exported and package-level so the linker has to treat each read
// as observable; nothing ever consumes the value.
var Sink uint64

// keepHook, when set, observes every sink read. Tests install it to
// pin the exactly-once identity-read contract.
var keepHook func(string)

// keep folds a string read into the sink.
func keep(s string) {
	if keepHook != nil {
		keepHook(s)
	}
	Sink = Sink*31 + uint64(len(s))
	if len(s) > 0 {
		Sink += uint64(s[0])
	}
}

// ModuleScan describes the successfully loaded subset of one module's
// type table. Failed counts entries that could not be resolved or whose
// metadata reads panicked; they are skipped, never fatal.
type ModuleScan struct {
	Module      int // index of the module's typelink section
	Types       int // types recovered and touched
	Failed      int // entries skipped after a resolution or touch failure
	Methods     int // method table entries referenced across the module
	Fields      int // struct field entries referenced across the module
	Constructed int // zero-argument constructions that succeeded
}

// Report aggregates one full walk over every loaded module.
type Report struct {
	Modules     []ModuleScan
	Types       int
	Failed      int
	Methods     int
	Fields      int
	Constructed int
}

// Walk enumerates every type compiled into the binary, reads each type's
// two identity strings, references its member tables, and attempts
// zero-argument construction. Typelink entries are predominantly pointer
// descriptors, so the walker also descends from each *T entry to T; the
// value type carries the fields and the construction path, and would
// otherwise never be seen. The Catalog is rebuilt as a side effect so
// callers can query what the pass touched.
//
// Walk never returns an error and never panics: per-type failures are
// counted in the report and skipped. No type is touched twice within a
// pass, no matter how many entries lead to it.
func Walk() Report {
	ResetCatalog()

	sections, offsets := typelinks()
	st := &walkState{seen: make(map[reflect.Type]struct{})}
	rep := Report{Modules: make([]ModuleScan, 0, len(sections))}
	for i, base := range sections {
		scan := scanModule(st, i, base, offsets[i])
		rep.Modules = append(rep.Modules, scan)
		rep.Types += scan.Types
		rep.Failed += scan.Failed
		rep.Methods += scan.Methods
		rep.Fields += scan.Fields
		rep.Constructed += scan.Constructed
	}
	return rep
}

// walkState carries the types already touched this pass, so a type
// reachable both by its own entry and through a pointer entry is still
// touched exactly once.
type walkState struct {
	seen map[reflect.Type]struct{}
}

// scanModule touches every resolvable type in one module's table.
func scanModule(st *walkState, index int, base unsafe.Pointer, offs []int32) ModuleScan {
	scan := ModuleScan{Module: index}
	for _, off := range offs {
		t, ok := resolveEntry(base, off)
		if !ok {
			scan.Failed++
			continue
		}
		// The entry itself, then every value type a chain of pointer
		// descriptors wraps.
		for {
			st.touchOnce(t, &scan)
			if t.Kind() != reflect.Pointer {
				break
			}
			t = t.Elem()
		}
	}
	return scan
}

// touchOnce touches t unless this pass already has.
func (st *walkState) touchOnce(t reflect.Type, scan *ModuleScan) {
	if _, dup := st.seen[t]; dup {
		return
	}
	st.seen[t] = struct{}{}

	count, ok := touchType(t)
	if !ok {
		scan.Failed++
		return
	}
	scan.Types++
	scan.Methods += count.Methods
	scan.Fields += count.Fields
	if count.Constructed {
		scan.Constructed++
	}
}

// resolveEntry converts one typelink entry to a reflect.Type under a
// panic guard. Unresolvable entries are an expected steady-state outcome
// in stripped or partially loaded modules.
func resolveEntry(base unsafe.Pointer, off int32) (t reflect.Type, ok bool) {
	defer func() {
		if recover() != nil {
			t, ok = nil, false
		}
	}()
	return typeAt(base, off), true
}

// touchType reads both identity strings of t exactly once, references its
// member tables, attempts construction, and records the type in the
// catalog. Reported not-ok only when the reads themselves panic.
func touchType(t reflect.Type) (count MemberCount, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	simple := t.String()
	qualified := QualifiedName(t)
	keep(simple)
	keep(qualified)

	count = TouchMembers(t)
	count.Constructed = Construct(t)

	recordType(t, simple, qualified, count)
	return count, true
}

// QualifiedName returns a globally unique identity for t: the import
// path joined with the type name for named types, and the structural
// string for unnamed ones.
func QualifiedName(t reflect.Type) string {
	if pkg := t.PkgPath(); pkg != "" {
		return pkg + "." + t.Name()
	}
	return t.String()
}
