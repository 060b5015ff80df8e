package bom_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribibble/dpnd/internal/adapters/bom"
	"github.com/scribibble/dpnd/internal/core/domain"
)

func TestStore_Load_MissingFileIsEmptyBom(t *testing.T) {
	store := bom.NewStore()

	b, err := store.Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestStore_RoundTrip(t *testing.T) {
	store := bom.NewStore()
	dir := t.TempDir()

	b := domain.NewBom()
	b.SetSelf()
	b.Set("libA", domain.Requirement{URL: "https://example.com/libA.git", Ref: "tags/v1.2", Dir: "v1", Depth: 1})
	b.Set("libB", domain.Requirement{URL: "https://example.com/libB.git", Ref: "0a1b2c3d", Dir: "v2", Depth: 0})

	require.NoError(t, store.Save(dir, b))

	loaded, err := store.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, b, loaded)

	libA := loaded["libA"]
	assert.Equal(t, "https://example.com/libA.git", libA.URL)
	assert.Equal(t, "tags/v1.2", libA.Ref)
	assert.Equal(t, "v1", libA.Dir)
	assert.Equal(t, 1, libA.Depth)
}

func TestStore_Load_Malformed(t *testing.T) {
	store := bom.NewStore()
	dir := t.TempDir()

	path := filepath.Join(dir, domain.BomFileName)
	require.NoError(t, os.WriteFile(path, []byte("not json"), domain.FilePerm))

	_, err := store.Load(dir)
	require.ErrorIs(t, err, domain.ErrMalformedBom)
}

func TestStore_Load_NotAMapping(t *testing.T) {
	store := bom.NewStore()
	dir := t.TempDir()

	path := filepath.Join(dir, domain.BomFileName)
	require.NoError(t, os.WriteFile(path, []byte(`["a","b"]`), domain.FilePerm))

	_, err := store.Load(dir)
	require.ErrorIs(t, err, domain.ErrMalformedBom)
}

func TestStore_Load_MissingRequiredField(t *testing.T) {
	store := bom.NewStore()
	dir := t.TempDir()

	// Entry without a ref must fail at load time, before any fetch happens.
	content := `{"libA": {"url": "https://example.com/libA.git", "dir": "v1", "depth": 0}}`
	path := filepath.Join(dir, domain.BomFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))

	_, err := store.Load(dir)
	require.ErrorIs(t, err, domain.ErrMalformedBom)
}

func TestStore_Save_FileFormat(t *testing.T) {
	store := bom.NewStore()
	dir := t.TempDir()

	b := domain.NewBom()
	b.SetSelf()
	b.Set("libA", domain.Requirement{URL: "https://example.com/libA.git", Ref: "tags/v1.2", Dir: "v1", Depth: 1})

	require.NoError(t, store.Save(dir, b))

	data, err := os.ReadFile(filepath.Join(dir, domain.BomFileName))
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "bom_file", data)
}
