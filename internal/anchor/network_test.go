package anchor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetwork_Exercise(t *testing.T) {
	res := Network{}.Exercise(context.Background())

	assert.Equal(t, "network", res.Name)
	assert.Equal(t, 7, res.Calls)
	// Resolution may fail in a sandbox; anything else should not. Either
	// way every failure is absorbed, never raised.
	assert.LessOrEqual(t, res.Absorbed, res.Calls)
}

func TestNetwork_RepeatableWithoutLeaks(t *testing.T) {
	// The listener, pipe, and client are all scoped; a second pass must
	// behave exactly like the first.
	ctx := context.Background()
	first := Network{}.Exercise(ctx)
	second := Network{}.Exercise(ctx)

	assert.Equal(t, first.Calls, second.Calls)
}
