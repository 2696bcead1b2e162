package catalogfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/infrastructure/catalogfile"
)

func writeFeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestListRecords_BareArray(t *testing.T) {
	path := writeFeed(t, `[
		{"id": "p1", "name": "Coopers Pale Ale", "category_level_1": "beer"},
		{"id": "p2", "name": "Penfolds Bin 28", "category_level_1": "wine"}
	]`)

	records, err := catalogfile.New(path).ListRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "p1", records[0].ID)
	assert.Equal(t, "Penfolds Bin 28", records[1].Name)
}

func TestListRecords_ProductsObject(t *testing.T) {
	path := writeFeed(t, `{"products": [{"id": "p1", "category_level_1": "spirits"}]}`)

	records, err := catalogfile.New(path).ListRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "spirits", records[0].CategoryLevel1)
}

func TestListRecords_EmptyProductsObject(t *testing.T) {
	path := writeFeed(t, `{"products": []}`)

	records, err := catalogfile.New(path).ListRecords(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListRecords_InvalidJSON(t *testing.T) {
	path := writeFeed(t, `{"products": [}`)

	_, err := catalogfile.New(path).ListRecords(context.Background())
	assert.Error(t, err)
}

func TestListRecords_ObjectWithoutProductsKey(t *testing.T) {
	path := writeFeed(t, `{"items": []}`)

	_, err := catalogfile.New(path).ListRecords(context.Background())
	assert.Error(t, err)
}

func TestListRecords_MissingFile(t *testing.T) {
	_, err := catalogfile.New(filepath.Join(t.TempDir(), "nope.json")).ListRecords(context.Background())
	assert.Error(t, err)
}

func TestListRecords_CancelledContext(t *testing.T) {
	path := writeFeed(t, `[]`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := catalogfile.New(path).ListRecords(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
