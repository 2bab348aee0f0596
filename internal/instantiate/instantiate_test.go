package instantiate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialize_OnePairPerElement(t *testing.T) {
	specs := Materialize()
	require.Len(t, specs, len(Elements()))

	for i, spec := range specs {
		assert.Equal(t, Elements()[i], spec.Element, "table order must be preserved")
		assert.Equal(t, 1, spec.ListLen, "%s: exactly one list insertion", spec.Element)
		assert.Equal(t, 1, spec.QueueLen, "%s: exactly one queue insertion", spec.Element)
	}
}

func TestMaterialize_Deterministic(t *testing.T) {
	assert.Equal(t, Materialize(), Materialize())
}

func TestElements_Diverse(t *testing.T) {
	elements := Elements()

	seen := make(map[string]bool)
	for _, name := range elements {
		assert.False(t, seen[name], "duplicate element %q", name)
		seen[name] = true
	}

	// The table must span the shapes the analysis side matches against.
	for _, want := range []string{"int8", "uint64", "string", "[]byte", "uuid.UUID", "any"} {
		assert.True(t, seen[want], "element %q missing from table", want)
	}
}

func TestInsert_AbsorbsPanic(t *testing.T) {
	assert.False(t, insert(func() { panic("bad default") }))
	assert.True(t, insert(func() {}))
}

func TestMaterialize_TouchesFacade(t *testing.T) {
	Facade = 0
	Materialize()
	assert.NotZero(t, Facade, "sequence facade was not referenced")
}
