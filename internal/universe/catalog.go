package universe

import (
	"reflect"
	"sort"
	"sync"
)

// TypeRecord is the catalog's view of one touched type.
type TypeRecord struct {
	Simple      string       // structural identity, e.g. "map[string]int"
	Qualified   string       // globally unique identity, e.g. "net/http.Server"
	Package     string       // import path, empty for unnamed and builtin types
	Kind        reflect.Kind //
	Methods     int          // method table entries referenced
	Fields      int          // struct fields referenced
	Constructed bool         // zero-argument construction succeeded
}

// Catalog indexes everything the most recent walk touched. It exists so
// tests and the CLI can ask "what survived?" without re-walking; the
// walker rebuilds it from scratch on every pass, and nothing in it
// outlives the process.
type Catalog struct {
	mu sync.RWMutex

	records     []TypeRecord
	byQualified map[string]int   // qualified name -> index into records
	byPackage   map[string][]int // import path -> indexes into records
	kindCounts  map[reflect.Kind]int
}

// Global catalog instance, rebuilt by Walk.
var catalog = newCatalog()

func newCatalog() *Catalog {
	return &Catalog{
		byQualified: make(map[string]int),
		byPackage:   make(map[string][]int),
		kindCounts:  make(map[reflect.Kind]int),
	}
}

// recordType adds one touched type to the global catalog.
func recordType(t reflect.Type, simple, qualified string, count MemberCount) {
	rec := TypeRecord{
		Simple:      simple,
		Qualified:   qualified,
		Package:     t.PkgPath(),
		Kind:        t.Kind(),
		Methods:     count.Methods,
		Fields:      count.Fields,
		Constructed: count.Constructed,
	}

	catalog.mu.Lock()
	defer catalog.mu.Unlock()
	idx := len(catalog.records)
	catalog.records = append(catalog.records, rec)
	catalog.byQualified[qualified] = idx
	if rec.Package != "" {
		catalog.byPackage[rec.Package] = append(catalog.byPackage[rec.Package], idx)
	}
	catalog.kindCounts[rec.Kind]++
}

// ResetCatalog clears the global catalog. Called at the start of every
// walk and by tests.
func ResetCatalog() {
	catalog.mu.Lock()
	defer catalog.mu.Unlock()
	catalog.records = nil
	catalog.byQualified = make(map[string]int)
	catalog.byPackage = make(map[string][]int)
	catalog.kindCounts = make(map[reflect.Kind]int)
}

// LookupType finds a touched type by its qualified name.
// Returns a copy to prevent external mutation.
func LookupType(qualified string) (TypeRecord, bool) {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()
	idx, ok := catalog.byQualified[qualified]
	if !ok {
		return TypeRecord{}, false
	}
	return catalog.records[idx], true
}

// TypesInPackage returns copies of every touched type declared in the
// given import path.
func TypesInPackage(pkg string) []TypeRecord {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()
	idxs := catalog.byPackage[pkg]
	out := make([]TypeRecord, len(idxs))
	for i, idx := range idxs {
		out[i] = catalog.records[idx]
	}
	return out
}

// Packages returns the sorted import paths of every package that
// contributed at least one named type to the last walk.
func Packages() []string {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()
	out := make([]string, 0, len(catalog.byPackage))
	for pkg := range catalog.byPackage {
		out = append(out, pkg)
	}
	sort.Strings(out)
	return out
}

// KindCounts returns a copy of the per-kind tally for the last walk.
func KindCounts() map[reflect.Kind]int {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()
	out := make(map[reflect.Kind]int, len(catalog.kindCounts))
	for k, v := range catalog.kindCounts {
		out[k] = v
	}
	return out
}

// CatalogSize returns the number of types recorded by the last walk.
func CatalogSize() int {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()
	return len(catalog.records)
}
