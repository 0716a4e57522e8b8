package catalog

import (
	"errors"
	"fmt"
	"sort"

	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/fightrl/comboinject/actionspace"
)

var (
	ErrUnknownCharacter = errors.New("unknown character")
	ErrUnknownGame      = errors.New("unknown game")
)

// SuperArtMove is the reserved move name whose recipe depends on the
// super art the agent picked at character select.
const SuperArtMove = "super_art"

// NumSuperArts is the number of selectable super arts per character.
const NumSuperArts = 3

// Move is one special move of a character: a selection weight plus the
// recipe producing its input sequence. The reserved SuperArtMove entry
// carries one recipe per super art instead of a single recipe.
type Move struct {
	Name      string
	Prob      float64
	Recipe    string
	SuperArts []string

	parts      []recipePart
	superParts [][]recipePart
}

// Catalog holds the move tables for one game. Catalogs are built once
// and never mutated; all agents share them read-only.
type Catalog struct {
	game       string
	characters map[string][]Move
}

// New builds a catalog from raw move tables, parsing and validating
// every recipe up front so sampling never fails on malformed data.
func New(game string, characters map[string][]Move) (*Catalog, error) {
	c := &Catalog{
		game:       game,
		characters: make(map[string][]Move, len(characters)),
	}
	for name, moves := range characters {
		if len(moves) == 0 {
			return nil, fmt.Errorf("character %q has no moves", name)
		}
		parsed := make([]Move, len(moves))
		for i, m := range moves {
			if m.Prob <= 0 || m.Prob > 1 {
				return nil, fmt.Errorf("character %q move %q: prob %f outside (0, 1]", name, m.Name, m.Prob)
			}
			var err error
			if m.Name == SuperArtMove {
				if len(m.SuperArts) != NumSuperArts {
					return nil, fmt.Errorf("character %q: super art needs %d recipes, got %d", name, NumSuperArts, len(m.SuperArts))
				}
				m.superParts = make([][]recipePart, NumSuperArts)
				for j, recipe := range m.SuperArts {
					if m.superParts[j], err = parseRecipe(recipe); err != nil {
						return nil, fmt.Errorf("character %q super art %d: %w", name, j+1, err)
					}
				}
			} else {
				if m.parts, err = parseRecipe(m.Recipe); err != nil {
					return nil, fmt.Errorf("character %q move %q: %w", name, m.Name, err)
				}
			}
			parsed[i] = m
		}
		c.characters[name] = parsed
	}
	return c, nil
}

// Load builds the built-in catalog for a game.
func Load(game string) (*Catalog, error) {
	tables, ok := builtin[game]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, game)
	}
	return New(game, tables)
}

func (c *Catalog) Game() string {
	return c.game
}

// Characters lists the characters with a catalog entry, sorted.
func (c *Catalog) Characters() []string {
	names := make([]string, 0, len(c.characters))
	for name := range c.characters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Moves returns a character's move table.
func (c *Catalog) Moves(character string) ([]Move, error) {
	moves, ok := c.characters[character]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharacter, character)
	}
	return moves, nil
}

// SampleSpecial picks one of the character's moves by weight and
// expands its recipe into a concrete step sequence. The expansion is
// randomized (facing, attack strength, hold duration), so two samples
// of the same move can differ.
func (c *Catalog) SampleSpecial(character string, superArt int, rng *erand.Rand) ([]actionspace.MoveStep, error) {
	moves, err := c.Moves(character)
	if err != nil {
		return nil, err
	}
	if superArt < 1 || superArt > NumSuperArts {
		return nil, fmt.Errorf("super art %d outside [1, %d]", superArt, NumSuperArts)
	}

	weights := make([]float64, len(moves))
	for i, m := range moves {
		weights[i] = m.Prob
	}
	i, ok := sampleuv.NewWeighted(weights, rng).Take()
	if !ok {
		return nil, fmt.Errorf("character %q: no move to sample", character)
	}

	move := moves[i]
	parts := move.parts
	if move.Name == SuperArtMove {
		parts = move.superParts[superArt-1]
	}
	return expand(parts, rng), nil
}
