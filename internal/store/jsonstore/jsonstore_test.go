package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/cards/internal/board"
	"github.com/idilsaglam/cards/internal/model"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, s.Active)
	assert.Empty(t, s.Removed)
}

func TestSaveLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", DefaultFileName)
	active := model.NewCard("Conta Corrente", "wallet")
	removed := model.ForPool(model.NewCard("Emprestimos", ""), model.PoolRemoved)
	want := board.Snapshot{Active: []model.Card{active}, Removed: []model.Card{removed}}

	require.NoError(t, Save(p, want))
	assert.True(t, Exists(p))

	got, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	entries, err := os.ReadDir(filepath.Dir(p))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestSaveEmptyWritesArrays(t *testing.T) {
	p := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, Save(p, board.Snapshot{}))

	raw, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"active": [], "removed": []}`, string(raw))
}

func TestLoadCorrupt(t *testing.T) {
	p := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o644))

	_, err := Load(p)
	assert.ErrorContains(t, err, "json unmarshal")
}
