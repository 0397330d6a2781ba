package debuginfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdbeval/internal/scopes"
)

func TestCache_ReuseSpan(t *testing.T) {
	c := NewCache()
	key := CacheKey{ID: testID, Dialect: DialectCSharp}

	info := emptyInfo()
	info.ReuseSpan = scopes.ILSpan{Start: 10, End: 50}
	c.Put(key, info)

	got, ok := c.Lookup(key, 30)
	require.True(t, ok)
	assert.Same(t, info, got)

	// Outside the reuse span the entry does not answer.
	_, ok = c.Lookup(key, 60)
	assert.False(t, ok)
	_, ok = c.Lookup(key, 9)
	assert.False(t, ok)
}

func TestCache_KeyIncludesVersionAndDialect(t *testing.T) {
	c := NewCache()
	info := emptyInfo()
	c.Put(CacheKey{ID: testID, Dialect: DialectCSharp}, info)

	_, ok := c.Lookup(CacheKey{ID: testID, Dialect: DialectVisualBasic}, 0)
	assert.False(t, ok, "dialect must be part of the key")

	bumped := MethodID{Token: testID.Token, Version: testID.Version + 1}
	_, ok = c.Lookup(CacheKey{ID: bumped, Dialect: DialectCSharp}, 0)
	assert.False(t, ok, "a new method version is a new key")

	_, ok = c.Lookup(CacheKey{ID: testID, Dialect: DialectCSharp}, 0)
	assert.True(t, ok)
	assert.Equal(t, 1, c.Len())
}
