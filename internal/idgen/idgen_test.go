package idgen

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	testCases := []struct {
		name   string
		prefix string
	}{
		{name: "job prefix", prefix: "job-"},
		{name: "single char", prefix: "x"},
		{name: "prefix with spaces", prefix: "batch 1 "},
		{name: "empty prefix", prefix: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			generator := NewGenerator(tc.prefix)
			id := generator.Generate()
			assert.NotEmpty(t, strings.TrimSpace(id))
			assert.True(t, strings.HasPrefix(id, tc.prefix))
			assert.Greater(t, len(id), len(tc.prefix))
			assert.Equal(t, tc.prefix, generator.Prefix())
		})
	}
}

func TestGenerator_Unique(t *testing.T) {
	generator := NewGenerator("job-")
	const count = 1000
	seen := make(map[string]struct{}, count)
	var mux sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := generator.Generate()
			mux.Lock()
			seen[id] = struct{}{}
			mux.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, count)
}

func TestGenerator_StubbedSuffix(t *testing.T) {
	prev := NewFunc
	t.Cleanup(func() { NewFunc = prev })

	NewFunc = func() string { return "fixed" }
	require.Equal(t, "job-fixed", NewGenerator("job-").Generate())

	NewFunc = func() string { return "" }
	id := NewGenerator("job-").Generate()
	assert.True(t, strings.HasPrefix(id, "job-"))
	assert.Greater(t, len(id), len("job-"))
}
