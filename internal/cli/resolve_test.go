package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveChildID_ByNameCaseInsensitive(t *testing.T) {
	app := testApp(t)
	child := seedChildProfile(t, app, "Mira")

	id, err := resolveChildID(context.Background(), app, "mira")
	require.NoError(t, err)
	assert.Equal(t, child.ID, id)
}

func TestResolveChildID_ByIDPrefix(t *testing.T) {
	app := testApp(t)
	child := seedChildProfile(t, app, "Mira")

	id, err := resolveChildID(context.Background(), app, child.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, child.ID, id)
}

func TestResolveChildID_NotFound(t *testing.T) {
	app := testApp(t)
	seedChildProfile(t, app, "Mira")

	_, err := resolveChildID(context.Background(), app, "nobody")
	assert.Error(t, err)
}

func TestResolveChildID_EmptyInput(t *testing.T) {
	app := testApp(t)

	_, err := resolveChildID(context.Background(), app, "")
	assert.Error(t, err)
}

func TestParseInterests(t *testing.T) {
	assert.Equal(t, []string{"space", "drawing"}, parseInterests("space, drawing"))
	assert.Empty(t, parseInterests("  ,  "))
	assert.Empty(t, parseInterests(""))
}
