package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpenAndHealth(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, db.Health())
}

func TestSaveAndGetGroup(t *testing.T) {
	db := openTestDB(t)

	saved, err := db.SaveGroup("desk", []string{"SN-B", "SN-A"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "desk", saved.Name)

	got, err := db.GetGroup("desk")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, []string{"SN-B", "SN-A"}, got.Serials, "member order is preserved")
}

func TestSaveGroup_ReplaceKeepsID(t *testing.T) {
	db := openTestDB(t)

	first, err := db.SaveGroup("desk", []string{"SN-A"})
	require.NoError(t, err)

	second, err := db.SaveGroup("desk", []string{"SN-B", "SN-C"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "replacing members keeps the group id")

	got, err := db.GetGroup("desk")
	require.NoError(t, err)
	assert.Equal(t, []string{"SN-B", "SN-C"}, got.Serials)
}

func TestGetGroup_NotFound(t *testing.T) {
	db := openTestDB(t)
	_, err := db.GetGroup("nope")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestListGroups(t *testing.T) {
	db := openTestDB(t)

	groups, err := db.ListGroups()
	require.NoError(t, err)
	assert.Empty(t, groups)

	_, err = db.SaveGroup("office", []string{"SN-B"})
	require.NoError(t, err)
	_, err = db.SaveGroup("desk", []string{"SN-A"})
	require.NoError(t, err)

	groups, err = db.ListGroups()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "desk", groups[0].Name, "sorted by name")
	assert.Equal(t, "office", groups[1].Name)
	assert.Equal(t, []string{"SN-A"}, groups[0].Serials)
}

func TestDeleteGroup(t *testing.T) {
	db := openTestDB(t)

	_, err := db.SaveGroup("desk", []string{"SN-A"})
	require.NoError(t, err)

	require.NoError(t, db.DeleteGroup("desk"))
	_, err = db.GetGroup("desk")
	assert.ErrorIs(t, err, ErrGroupNotFound)

	assert.ErrorIs(t, db.DeleteGroup("desk"), ErrGroupNotFound)
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	db, err := Open(path)
	require.NoError(t, err)
	_, err = db.SaveGroup("desk", []string{"SN-A"})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	got, err := db.GetGroup("desk")
	require.NoError(t, err)
	assert.Equal(t, []string{"SN-A"}, got.Serials)
}
