package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fightrl/comboinject/actionspace"
)

func TestLoadBuiltin(t *testing.T) {
	cat, err := Load("sfiii")
	require.NoError(t, err)
	assert.Equal(t, "sfiii", cat.Game())
	assert.Len(t, cat.Characters(), 19)

	moves, err := cat.Moves("Ken")
	require.NoError(t, err)
	assert.Len(t, moves, 5)
}

func TestLoadUnknownGame(t *testing.T) {
	_, err := Load("sfii")
	assert.ErrorIs(t, err, ErrUnknownGame)
}

func TestMovesUnknownCharacter(t *testing.T) {
	cat, err := Load("sfiii")
	require.NoError(t, err)
	_, err = cat.Moves("Dan")
	assert.ErrorIs(t, err, ErrUnknownCharacter)
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name  string
		moves []Move
	}{
		{"no moves", nil},
		{"bad prob", []Move{{Name: "m", Prob: 1.5, Recipe: "comb_qc_p"}}},
		{"zero prob", []Move{{Name: "m", Prob: 0, Recipe: "comb_qc_p"}}},
		{"bad recipe", []Move{{Name: "m", Prob: 0.5, Recipe: "comb_zz_p"}}},
		{"no recipe", []Move{{Name: "m", Prob: 0.5}}},
		{"short super art", []Move{{Name: SuperArtMove, Prob: 0.5, SuperArts: []string{"comb_qc_p"}}}},
		{"bad super art", []Move{{Name: SuperArtMove, Prob: 0.5, SuperArts: []string{"comb_qc_p", "comb_qc_p", "zz"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("g", map[string][]Move{"X": tt.moves})
			assert.Error(t, err)
		})
	}
}

func TestSampleSpecial(t *testing.T) {
	cat, err := Load("sfiii")
	require.NoError(t, err)
	rng := testRand(11)

	for _, character := range cat.Characters() {
		for superArt := 1; superArt <= NumSuperArts; superArt++ {
			for i := 0; i < 10; i++ {
				steps, err := cat.SampleSpecial(character, superArt, rng)
				require.NoErrorf(t, err, "%s super art %d", character, superArt)
				for _, s := range steps {
					_, err := actionspace.Decode(int(s.Dir)*actionspace.NumAttacks + int(s.Attack))
					assert.NoError(t, err, "expanded step encodes in range")
				}
			}
		}
	}
}

func TestSampleSpecialBadArgs(t *testing.T) {
	cat, err := Load("sfiii")
	require.NoError(t, err)
	rng := testRand(1)

	_, err = cat.SampleSpecial("Dan", 1, rng)
	assert.ErrorIs(t, err, ErrUnknownCharacter)

	for _, superArt := range []int{0, 4, -1} {
		_, err = cat.SampleSpecial("Ken", superArt, rng)
		assert.Error(t, err, "super art %d", superArt)
	}
}

func TestSampleSpecialWeights(t *testing.T) {
	// A single full-weight move must always be the one sampled.
	cat, err := New("g", map[string][]Move{
		"X": {{Name: "only", Prob: 1, Recipe: "raw_d+lp_r+hp"}},
	})
	require.NoError(t, err)

	rng := testRand(3)
	for i := 0; i < 50; i++ {
		steps, err := cat.SampleSpecial("X", 1, rng)
		require.NoError(t, err)
		require.Equal(t, []actionspace.MoveStep{
			{Dir: actionspace.DirDown, Attack: actionspace.AttackLP},
			{Dir: actionspace.DirRight, Attack: actionspace.AttackHP},
		}, steps)
	}
}

const testCatalogYAML = `game: custom
characters:
  Brawler:
    - name: palm
      prob: 0.6
      recipe: comb_qc_p
    - name: charge_kick
      prob: 0.3
      recipe: hold_d_16_64_k
    - name: super_art
      prob: 0.1
      super_arts: [comb_2qc_mp, comb_2qc_mk, comb_2qc_mk]
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalogYAML), 0644))

	cat, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", cat.Game())
	assert.Equal(t, []string{"Brawler"}, cat.Characters())

	moves, err := cat.Moves("Brawler")
	require.NoError(t, err)
	require.Len(t, moves, 3)

	steps, err := cat.SampleSpecial("Brawler", 2, testRand(9))
	require.NoError(t, err)
	assert.NotEmpty(t, steps)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("characters: [not, a, map]"), 0644))
	_, err = LoadFile(bad)
	assert.Error(t, err)

	badRecipe := filepath.Join(t.TempDir(), "badrecipe.yaml")
	require.NoError(t, os.WriteFile(badRecipe, []byte(
		"game: g\ncharacters:\n  X:\n    - name: m\n      prob: 0.5\n      recipe: comb_zz_p\n"), 0644))
	_, err = LoadFile(badRecipe)
	assert.Error(t, err)
}
