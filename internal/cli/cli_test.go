package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/cards/internal/model"
	"github.com/idilsaglam/cards/internal/store/jsonstore"
	"github.com/idilsaglam/cards/internal/ui"
)

type env struct {
	dir         string
	out, errOut *bytes.Buffer
}

func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{dir: t.TempDir(), out: &bytes.Buffer{}, errOut: &bytes.Buffer{}}
	ui.SetOutput(e.out, e.errOut)
	t.Cleanup(func() { ui.SetOutput(nil, nil) })
	return e
}

func (e *env) run(args ...string) int {
	e.out.Reset()
	e.errOut.Reset()
	base := []string{"--config", filepath.Join(e.dir, "cards.yaml"), "--no-color", "--log-level", "error"}
	return Run(append(base, args...))
}

func (e *env) titles(t *testing.T) (active, removed []string) {
	t.Helper()
	s, err := jsonstore.Load(filepath.Join(e.dir, "cards.json"))
	require.NoError(t, err)
	pick := func(cs []model.Card) []string {
		var out []string
		for _, c := range cs {
			out = append(out, c.Title)
		}
		return out
	}
	return pick(s.Active), pick(s.Removed)
}

func TestInitSeedsBoard(t *testing.T) {
	e := newEnv(t)
	require.Equal(t, 0, e.run("init"))

	active, removed := e.titles(t)
	assert.Equal(t, []string{"Conta Corrente", "Cartão de credito Visa", "Emprestimos", "Investimentos"}, active)
	assert.Empty(t, removed)
	assert.FileExists(t, filepath.Join(e.dir, "cards.yaml"))

	assert.Equal(t, 2, e.run("init"))
	assert.Contains(t, e.errOut.String(), "already exists")
	assert.Equal(t, 0, e.run("init", "--force"))
}

func TestMoveCommands(t *testing.T) {
	e := newEnv(t)
	require.Equal(t, 0, e.run("add", "A"))
	require.Equal(t, 0, e.run("add", "B"))
	require.Equal(t, 0, e.run("add", "C"))

	require.Equal(t, 0, e.run("mv", "1", "3"))
	active, _ := e.titles(t)
	assert.Equal(t, []string{"B", "C", "A"}, active)
	assert.Contains(t, e.out.String(), "moved 1 to 3")

	require.Equal(t, 0, e.run("up", "3"))
	active, _ = e.titles(t)
	assert.Equal(t, []string{"B", "A", "C"}, active)

	require.Equal(t, 0, e.run("down", "3"))
	assert.Contains(t, e.out.String(), "has no next position")
	active, _ = e.titles(t)
	assert.Equal(t, []string{"B", "A", "C"}, active)

	assert.Equal(t, 2, e.run("mv", "9", "1"))
	assert.Contains(t, e.errOut.String(), "index out of range: have 3")
	assert.Contains(t, e.errOut.String(), "Hint:")
}

func TestRemoveAndRestoreCommands(t *testing.T) {
	e := newEnv(t)
	require.Equal(t, 0, e.run("add", "X"))
	require.Equal(t, 0, e.run("add", "Y"))

	require.Equal(t, 0, e.run("rm", "1"))
	active, removed := e.titles(t)
	assert.Equal(t, []string{"Y"}, active)
	assert.Equal(t, []string{"X"}, removed)

	// drag is on by default, so the last card is locked
	assert.Equal(t, 2, e.run("rm", "1"))
	assert.Contains(t, e.errOut.String(), "not enough cards")

	require.Equal(t, 0, e.run("restore", "1"))
	active, removed = e.titles(t)
	assert.Equal(t, []string{"Y", "X"}, active)
	assert.Empty(t, removed)
}

func TestListShowsBothPools(t *testing.T) {
	e := newEnv(t)
	require.Equal(t, 0, e.run("add", "--badge", "wallet", "Conta", "Corrente"))
	require.Equal(t, 0, e.run("add", "Emprestimos"))
	require.Equal(t, 0, e.run("add", "Investimentos"))
	require.Equal(t, 0, e.run("rm", "2"))

	require.Equal(t, 0, e.run("ls", "--all"))
	out := e.out.String()
	assert.Contains(t, out, "[wallet] Conta Corrente")
	assert.Contains(t, out, "(next, delete)")
	assert.Contains(t, out, "Removed")
	assert.Contains(t, out, "Emprestimos")
	assert.Contains(t, out, "(restore)")
}

func TestUsageErrors(t *testing.T) {
	e := newEnv(t)
	assert.Equal(t, 2, e.run("add"))
	assert.Equal(t, 2, e.run("rm"))
	assert.Equal(t, 2, e.run("rm", "one"))
	assert.Contains(t, e.errOut.String(), "not a number: one")
	assert.Equal(t, 2, e.run("frobnicate"))
	assert.Equal(t, 2, e.run("ls", "--nope"))
	assert.Equal(t, 2, e.run("--theme", "sparkly", "ls"))
}
