package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GetOrCreate_ReturnsSameSessionForSameID(t *testing.T) {
	m := NewManager(nil)

	first := m.GetOrCreate("sess-1")
	second := m.GetOrCreate("sess-1")

	assert.Same(t, first, second)
	assert.Equal(t, 1, m.Count())
}

func Test_GetOrCreate_IsolatesSessions(t *testing.T) {
	m := NewManager(nil)

	a := m.GetOrCreate("sess-a")
	b := m.GetOrCreate("sess-b")

	require.NotSame(t, a, b)
	assert.NotSame(t, a.Cart, b.Cart)
	assert.NotSame(t, a.View, b.View)
	assert.Equal(t, 2, m.Count())
}

func Test_GetOrCreate_ConcurrentAccess(t *testing.T) {
	m := NewManager(nil)

	const goroutines = 32
	results := make([]*Session, goroutines)
	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = m.GetOrCreate("shared")
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, m.Count())
	for _, s := range results {
		assert.Same(t, results[0], s)
	}
}
