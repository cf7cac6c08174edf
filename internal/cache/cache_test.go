package cache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrFetchCachesValue(t *testing.T) {
	c := New()
	calls := 0
	fetch := func() ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	first, err := GetOrFetch(c, KeyTasks, fetch)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, first)
	assert.Equal(t, 1, calls)

	// Second read is served from the cache
	second, err := GetOrFetch(c, KeyTasks, fetch)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestInvalidateForcesRefetch(t *testing.T) {
	c := New()
	calls := 0
	fetch := func() (int, error) {
		calls++
		return calls, nil
	}

	v, err := GetOrFetch(c, KeyGoals, fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	c.Invalidate(KeyGoals)
	assert.False(t, c.IsFresh(KeyGoals))

	v, err = GetOrFetch(c, KeyGoals, fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.True(t, c.IsFresh(KeyGoals))
}

func TestInvalidateIsIdempotent(t *testing.T) {
	c := New()

	// Invalidating a key that was never stored is harmless
	c.Invalidate(KeyNotes)
	c.Invalidate(KeyNotes)
	assert.False(t, c.IsFresh(KeyNotes))
}

func TestInvalidateAll(t *testing.T) {
	c := New()
	for _, key := range []Key{KeyTasks, KeyEvents, KeyContacts} {
		k := key
		_, err := GetOrFetch(c, k, func() (string, error) { return string(k), nil })
		require.NoError(t, err)
		assert.True(t, c.IsFresh(k))
	}

	c.InvalidateAll()
	for _, key := range []Key{KeyTasks, KeyEvents, KeyContacts} {
		assert.False(t, c.IsFresh(key))
	}
}

func TestFetchErrorLeavesCacheUntouched(t *testing.T) {
	c := New()

	_, err := GetOrFetch(c, KeySettings, func() (string, error) {
		return "", errors.New("store unavailable")
	})
	assert.Error(t, err)
	assert.False(t, c.IsFresh(KeySettings))

	// A later successful fetch populates normally
	v, err := GetOrFetch(c, KeySettings, func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestKeysAreIndependent(t *testing.T) {
	c := New()
	_, err := GetOrFetch(c, KeyTasks, func() (string, error) { return "tasks", nil })
	require.NoError(t, err)
	_, err = GetOrFetch(c, KeyGoals, func() (string, error) { return "goals", nil })
	require.NoError(t, err)

	c.Invalidate(KeyTasks)
	assert.False(t, c.IsFresh(KeyTasks))
	assert.True(t, c.IsFresh(KeyGoals))
}
