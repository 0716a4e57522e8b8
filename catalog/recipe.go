package catalog

import (
	"fmt"
	"strconv"
	"strings"

	erand "golang.org/x/exp/rand"

	"github.com/fightrl/comboinject/actionspace"
)

// Recipes are compact strings describing how to build a move's input
// sequence, e.g. "comb_qc_p", "hold_d_16_64_k" or
// "comb_dp_k/rep_p_0_2_t". A recipe is a "/"-separated list of parts:
//
//	comb_<pattern>_<attack>          motion ending in an attack press
//	hold_<dir>_<min>_<max>_<release> charge a direction, then release
//	rep_<attack>_<min>_<max>_<tap>   mash an attack, optionally tapping
//	raw_<step>_<step>_...            literal steps like "d+lp" or "+"
//
// Motion patterns (qc, hc, dp, fc and their doubled forms) pick a left
// or right facing at expansion time, and the "p"/"k" attack wildcards
// pick a random strength, so expanding the same recipe twice can yield
// different step sequences.

type partKind int

const (
	partComb partKind = iota
	partHold
	partRep
	partRaw
)

type recipePart struct {
	kind partKind

	pattern string // comb
	attack  string // comb, rep
	dir     string // hold
	minN    int    // hold, rep
	maxN    int    // hold, rep
	release string // hold
	tap     bool   // rep

	raw []actionspace.MoveStep // raw
}

var motionPatterns = map[string][][]string{
	"qc": {{"d", "dr", "r"}, {"d", "dl", "l"}},
	"hc": {{"l", "dl", "d", "dr", "r"}, {"r", "dr", "d", "dl", "l"}},
	"dp": {{"r", "d", "dr"}, {"l", "d", "dl"}},
	"fc": {
		{"r", "dr", "d", "dl", "l", "ul", "u", "ur"},
		{"l", "dl", "d", "dr", "r", "ur", "u", "ul"},
	},
}

var punches = []string{"lp", "mp", "hp"}
var kicks = []string{"lk", "mk", "hk"}

func parseRecipe(recipe string) ([]recipePart, error) {
	if recipe == "" {
		return nil, fmt.Errorf("empty recipe")
	}
	parts := make([]recipePart, 0)
	for _, s := range strings.Split(recipe, "/") {
		fields := strings.Split(s, "_")
		switch fields[0] {
		case "comb":
			if len(fields) != 3 {
				return nil, fmt.Errorf("malformed comb part %q", s)
			}
			p := recipePart{kind: partComb, pattern: fields[1], attack: fields[2]}
			if err := checkPattern(p.pattern); err != nil {
				return nil, fmt.Errorf("part %q: %w", s, err)
			}
			if err := checkAttack(p.attack); err != nil {
				return nil, fmt.Errorf("part %q: %w", s, err)
			}
			parts = append(parts, p)
		case "hold":
			if len(fields) != 5 {
				return nil, fmt.Errorf("malformed hold part %q", s)
			}
			p := recipePart{kind: partHold, dir: fields[1], release: fields[4]}
			if p.dir != "d" && p.dir != "lr" {
				return nil, fmt.Errorf("part %q: unknown hold direction %q", s, p.dir)
			}
			if err := checkAttack(p.release); err != nil {
				return nil, fmt.Errorf("part %q: %w", s, err)
			}
			var err error
			if p.minN, p.maxN, err = parseRange(fields[2], fields[3]); err != nil {
				return nil, fmt.Errorf("part %q: %w", s, err)
			}
			parts = append(parts, p)
		case "rep":
			if len(fields) != 5 {
				return nil, fmt.Errorf("malformed rep part %q", s)
			}
			p := recipePart{kind: partRep, attack: fields[1], tap: fields[4] != ""}
			if err := checkAttack(p.attack); err != nil {
				return nil, fmt.Errorf("part %q: %w", s, err)
			}
			var err error
			if p.minN, p.maxN, err = parseRange(fields[2], fields[3]); err != nil {
				return nil, fmt.Errorf("part %q: %w", s, err)
			}
			parts = append(parts, p)
		case "raw":
			p := recipePart{kind: partRaw}
			for _, step := range fields[1:] {
				ms, err := parseRawStep(step)
				if err != nil {
					return nil, fmt.Errorf("part %q: %w", s, err)
				}
				p.raw = append(p.raw, ms)
			}
			parts = append(parts, p)
		default:
			return nil, fmt.Errorf("unknown recipe part %q", s)
		}
	}
	return parts, nil
}

func checkPattern(pattern string) error {
	base := strings.TrimPrefix(pattern, "2")
	if _, ok := motionPatterns[base]; ok {
		return nil
	}
	if base == "lr" {
		return nil
	}
	if _, ok := actionspace.ParseDirection(base); ok {
		return nil
	}
	return fmt.Errorf("unknown motion pattern %q", pattern)
}

func checkAttack(attack string) error {
	if attack == "p" || attack == "k" {
		return nil
	}
	if _, ok := actionspace.ParseAttack(attack); !ok {
		return fmt.Errorf("unknown attack %q", attack)
	}
	return nil
}

func parseRange(minS, maxS string) (int, int, error) {
	minN, err := strconv.Atoi(minS)
	if err != nil {
		return 0, 0, fmt.Errorf("bad range bound %q", minS)
	}
	maxN, err := strconv.Atoi(maxS)
	if err != nil {
		return 0, 0, fmt.Errorf("bad range bound %q", maxS)
	}
	if minN < 0 || maxN < minN {
		return 0, 0, fmt.Errorf("bad range [%d, %d]", minN, maxN)
	}
	return minN, maxN, nil
}

func parseRawStep(step string) (actionspace.MoveStep, error) {
	dirS, attackS, ok := strings.Cut(step, "+")
	if !ok {
		return actionspace.MoveStep{}, fmt.Errorf("raw step %q has no '+'", step)
	}
	dir, ok := actionspace.ParseDirection(dirS)
	if !ok {
		return actionspace.MoveStep{}, fmt.Errorf("unknown direction %q", dirS)
	}
	attack, ok := actionspace.ParseAttack(attackS)
	if !ok {
		return actionspace.MoveStep{}, fmt.Errorf("unknown attack %q", attackS)
	}
	return actionspace.MoveStep{Dir: dir, Attack: attack}, nil
}

// expand turns parsed recipe parts into a concrete step sequence,
// resolving facings, attack strengths and hold durations.
func expand(parts []recipePart, rng *erand.Rand) []actionspace.MoveStep {
	steps := make([]actionspace.MoveStep, 0)
	for _, p := range parts {
		switch p.kind {
		case partComb:
			steps = append(steps, expandComb(p, rng)...)
		case partHold:
			steps = append(steps, expandHold(p, rng)...)
		case partRep:
			steps = append(steps, expandRep(p, rng)...)
		case partRaw:
			steps = append(steps, p.raw...)
		}
	}
	return steps
}

func expandComb(p recipePart, rng *erand.Rand) []actionspace.MoveStep {
	double := strings.HasPrefix(p.pattern, "2")
	base := strings.TrimPrefix(p.pattern, "2")

	var names []string
	if variants, ok := motionPatterns[base]; ok {
		names = variants[rng.Intn(len(variants))]
	} else if base == "lr" {
		names = []string{pick(rng, "l", "r")}
	} else {
		names = []string{base}
	}
	if double {
		names = append(append([]string{}, names...), names...)
	}

	attack, _ := actionspace.ParseAttack(resolveAttack(p.attack, rng))
	steps := make([]actionspace.MoveStep, len(names))
	for i, n := range names {
		dir, _ := actionspace.ParseDirection(n)
		steps[i] = actionspace.MoveStep{Dir: dir}
	}
	steps[len(steps)-1].Attack = attack
	return steps
}

func expandHold(p recipePart, rng *erand.Rand) []actionspace.MoveStep {
	var heldName, releaseName string
	switch p.dir {
	case "d":
		heldName = pick(rng, "d", "dl", "dr")
		releaseName = "u"
	case "lr":
		heldName = pick(rng, "l", "dl", "dr", "r")
		if strings.HasSuffix(heldName, "r") {
			releaseName = "l"
		} else {
			releaseName = "r"
		}
	}
	held, _ := actionspace.ParseDirection(heldName)
	frames := p.minN + rng.Intn(p.maxN-p.minN+1)

	steps := []actionspace.MoveStep{{Dir: held, Hold: true, HoldFrames: frames}}
	if p.release != "" {
		release, _ := actionspace.ParseAttack(resolveAttack(p.release, rng))
		releaseDir, _ := actionspace.ParseDirection(releaseName)
		steps = append(steps, actionspace.MoveStep{Dir: releaseDir, Attack: release})
	}
	return steps
}

func expandRep(p recipePart, rng *erand.Rand) []actionspace.MoveStep {
	attack, _ := actionspace.ParseAttack(resolveAttack(p.attack, rng))
	n := p.minN + rng.Intn(p.maxN-p.minN+1)
	steps := make([]actionspace.MoveStep, 0, 2*n)
	for i := 0; i < n; i++ {
		steps = append(steps, actionspace.MoveStep{Attack: attack})
		if p.tap {
			steps = append(steps, actionspace.MoveStep{})
		}
	}
	return steps
}

func resolveAttack(attack string, rng *erand.Rand) string {
	switch attack {
	case "p":
		return punches[rng.Intn(len(punches))]
	case "k":
		return kicks[rng.Intn(len(kicks))]
	default:
		return attack
	}
}

func pick(rng *erand.Rand, choices ...string) string {
	return choices[rng.Intn(len(choices))]
}
