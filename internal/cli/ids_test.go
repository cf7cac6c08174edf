package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveID(t *testing.T) {
	ids := []string{
		"1a2b3c4d-0000-0000-0000-000000000001",
		"1a2b9999-0000-0000-0000-000000000002",
		"ffffffff-0000-0000-0000-000000000003",
	}

	// Unique prefix expands to the full id
	id, err := resolveID(ids, "1a2b3c4d")
	require.NoError(t, err)
	assert.Equal(t, ids[0], id)

	// Exact match always wins
	id, err = resolveID(ids, ids[2])
	require.NoError(t, err)
	assert.Equal(t, ids[2], id)

	// Ambiguous prefix is an error
	_, err = resolveID(ids, "1a2b")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")

	// No match passes the input through
	id, err = resolveID(ids, "deadbeef")
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", id)
}
