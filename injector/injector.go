package injector

import (
	"fmt"
	"time"

	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/fightrl/comboinject/actionspace"
	"github.com/fightrl/comboinject/catalog"
)

// Mode selects which half of an EncodedAction the environment treats
// as authoritative. Both halves are always populated.
type Mode int

const (
	ModeMultiDiscrete Mode = iota
	ModeDiscrete
)

func (m Mode) String() string {
	if m == ModeDiscrete {
		return "discrete"
	}
	return "multi_discrete"
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "discrete":
		return ModeDiscrete, nil
	case "multi_discrete":
		return ModeMultiDiscrete, nil
	}
	return 0, fmt.Errorf("unknown action space mode %q", s)
}

// Category is the outcome of one weighted category draw.
type Category int

const (
	CategoryNone Category = iota
	CategoryJump
	CategoryBasic
	CategoryCombo
	CategoryCancel
	CategoryMovement
)

var categoryNames = [...]string{"none", "jump", "basic", "combo", "cancel", "movement"}

func (c Category) String() string {
	return categoryNames[c]
}

// EncodedAction carries both environment representations of one
// action. Mode only decides which one the caller dispatches.
type EncodedAction struct {
	Discrete      int
	MultiDiscrete [2]int
}

// Authoritative flattens the action under the given mode.
func (a EncodedAction) Authoritative(m Mode) []int {
	if m == ModeDiscrete {
		return []int{a.Discrete}
	}
	return []int{a.MultiDiscrete[0], a.MultiDiscrete[1]}
}

type Config struct {
	// Game selects the built-in move catalog.
	Game string
	Mode Mode
	// FrameSkip is the number of simulated frames covered by one
	// environment step. Hold steps use it to convert charge frames
	// into sampling calls.
	FrameSkip int
	// DecayHorizon is the number of sampling steps over which
	// injection probabilities decay to zero. 0 disables decay.
	DecayHorizon int
	// Seed for the injector's random source. 0 seeds from the clock.
	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		Game:      "sfiii",
		Mode:      ModeMultiDiscrete,
		FrameSkip: 4,
	}
}

// SampleParams are the per-call category probabilities. Jump, Basic,
// Combo and Movement compete in one weighted draw whose residual mass
// is the do-nothing category; their sum must not exceed 1. Cancel is
// the conditional probability that a drawn special is cut off early,
// so it is bounded by [0, 1] but excluded from the sum.
type SampleParams struct {
	Jump     float64
	Basic    float64
	Combo    float64
	Cancel   float64
	Movement float64
}

func DefaultSampleParams() SampleParams {
	return SampleParams{
		Jump:     0.04,
		Basic:    0.21,
		Combo:    0.35,
		Cancel:   0.20,
		Movement: 0.30,
	}
}

const sumTolerance = 1e-9

func (p SampleParams) validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"jump", p.Jump},
		{"basic", p.Basic},
		{"combo", p.Combo},
		{"cancel", p.Cancel},
		{"movement", p.Movement},
	}
	for _, f := range fields {
		if f.v < 0 || f.v > 1 {
			return fmt.Errorf("%w: %s=%v outside [0, 1]", ErrInvalidProbability, f.name, f.v)
		}
	}
	if sum := p.Jump + p.Basic + p.Combo + p.Movement; sum > 1+sumTolerance {
		return fmt.Errorf("%w: categories sum to %v", ErrInvalidProbability, sum)
	}
	return nil
}

type agentSlot struct {
	id        string
	character string
	superArt  int
	queue     *MoveQueue
	category  Category
}

// Injector samples per-agent injected actions once per environment
// step. One Injector owns its agent slots, random source and decay
// clock; parallel environment instances each construct their own.
type Injector struct {
	cfg     Config
	catalog *catalog.Catalog
	decay   *DecayScheduler
	rng     *erand.Rand
	slots   []*agentSlot
}

// New builds an injector over the built-in catalog for cfg.Game.
func New(cfg Config) (*Injector, error) {
	cat, err := catalog.Load(cfg.Game)
	if err != nil {
		return nil, err
	}
	return NewWithCatalog(cfg, cat)
}

// NewWithCatalog builds an injector over a caller-supplied catalog,
// typically one read with catalog.LoadFile.
func NewWithCatalog(cfg Config, cat *catalog.Catalog) (*Injector, error) {
	if cfg.FrameSkip <= 0 {
		return nil, fmt.Errorf("frame skip must be positive, got %d", cfg.FrameSkip)
	}
	if cfg.DecayHorizon < 0 {
		return nil, fmt.Errorf("decay horizon must be non-negative, got %d", cfg.DecayHorizon)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Injector{
		cfg:     cfg,
		catalog: cat,
		decay:   NewDecayScheduler(cfg.DecayHorizon),
		rng:     erand.New(erand.NewSource(seed)),
	}, nil
}

func (in *Injector) Config() Config {
	return in.cfg
}

// DecayStep returns the current position of the decay clock.
func (in *Injector) DecayStep() int {
	return in.decay.Step()
}

// Reset replaces all agent slots with a fresh roster: position i of
// the two sequences becomes agent_i. The decay clock is untouched;
// call ResetDecay to rewind it explicitly. Reset validates the whole
// roster before mutating anything.
func (in *Injector) Reset(characters []string, superArts []int) error {
	if len(characters) != len(superArts) {
		return fmt.Errorf("%w: %d characters but %d super arts",
			ErrInvalidRoster, len(characters), len(superArts))
	}
	for i, c := range characters {
		if _, err := in.catalog.Moves(c); err != nil {
			return err
		}
		if superArts[i] < 1 || superArts[i] > catalog.NumSuperArts {
			return fmt.Errorf("%w: super art %d for %q outside [1, %d]",
				ErrInvalidRoster, superArts[i], c, catalog.NumSuperArts)
		}
	}

	in.slots = make([]*agentSlot, len(characters))
	for i, c := range characters {
		in.slots[i] = &agentSlot{
			id:        fmt.Sprintf("agent_%d", i),
			character: c,
			superArt:  superArts[i],
			queue:     NewMoveQueue(in.cfg.FrameSkip),
		}
	}
	return nil
}

// ResetDecay rewinds the decay clock to the start of the schedule.
func (in *Injector) ResetDecay() {
	in.decay.Reset()
}

// Sample picks one action per agent. Agents mid-combo consume their
// next queued step without a category draw; for the rest, the category
// probabilities are scaled by the decay multiplier and one category is
// drawn by weighted choice, the residual mass meaning "do nothing".
// A drawn combo emits its first step on this same call. The decay
// clock advances exactly once per call, after all agents.
func (in *Injector) Sample(p SampleParams) (map[string]EncodedAction, error) {
	if len(in.slots) == 0 {
		return nil, ErrNotInitialized
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	mult := in.decay.Multiplier()
	out := make(map[string]EncodedAction, len(in.slots))
	for _, slot := range in.slots {
		var direct actionspace.MoveStep
		haveDirect := false

		if !slot.queue.Active() {
			slot.category = in.drawCategory(p, mult)
			switch slot.category {
			case CategoryJump:
				direct, haveDirect = in.jumpStep(), true
			case CategoryBasic:
				direct, haveDirect = in.basicStep(), true
			case CategoryMovement:
				direct, haveDirect = in.movementStep(), true
			case CategoryCombo:
				seq, err := in.catalog.SampleSpecial(slot.character, slot.superArt, in.rng)
				if err != nil {
					return nil, fmt.Errorf("agent %s: %w", slot.id, err)
				}
				if len(seq) == 0 {
					// Expansion can come up empty for zero-repeat
					// recipes: fall through to a basic.
					direct, haveDirect = in.basicStep(), true
					slot.category = CategoryBasic
					break
				}
				if in.rng.Float64() < p.Cancel {
					seq = seq[:1+in.rng.Intn(len(seq))]
					slot.category = CategoryCancel
				}
				if err := slot.queue.Load(seq); err != nil {
					return nil, fmt.Errorf("agent %s: %w", slot.id, err)
				}
			}
		}

		var idx int
		var pair [2]int
		switch {
		case slot.queue.Active():
			step, err := slot.queue.Peek()
			if err != nil {
				return nil, fmt.Errorf("agent %s: %w", slot.id, err)
			}
			idx, pair = actionspace.Encode(step)
			slot.queue.Advance()
		case haveDirect:
			idx, pair = actionspace.Encode(direct)
		default:
			idx, pair = actionspace.Neutral()
		}
		out[slot.id] = EncodedAction{Discrete: idx, MultiDiscrete: pair}
	}

	in.decay.Advance()
	return out, nil
}

// LastCategories reports, per agent, the category behind the most
// recent Sample call: the fresh draw for idle agents, the loaded
// combo's category for agents that were mid-sequence.
func (in *Injector) LastCategories() map[string]Category {
	out := make(map[string]Category, len(in.slots))
	for _, slot := range in.slots {
		out[slot.id] = slot.category
	}
	return out
}

var drawOrder = [...]Category{
	CategoryJump, CategoryBasic, CategoryCombo, CategoryMovement, CategoryNone,
}

func (in *Injector) drawCategory(p SampleParams, mult float64) Category {
	weights := []float64{
		p.Jump * mult,
		p.Basic * mult,
		p.Combo * mult,
		p.Movement * mult,
		0,
	}
	none := 1 - (weights[0] + weights[1] + weights[2] + weights[3])
	if none < 0 {
		none = 0
	}
	weights[4] = none

	i, ok := sampleuv.NewWeighted(weights, in.rng).Take()
	if !ok {
		return CategoryNone
	}
	return drawOrder[i]
}

var jumpDirs = []actionspace.Direction{
	actionspace.DirUpLeft, actionspace.DirUp, actionspace.DirUpRight,
}

var walkDirs = []actionspace.Direction{
	actionspace.DirLeft, actionspace.DirDownLeft, actionspace.DirDown,
	actionspace.DirDownRight, actionspace.DirRight,
}

func (in *Injector) jumpStep() actionspace.MoveStep {
	return actionspace.MoveStep{Dir: jumpDirs[in.rng.Intn(len(jumpDirs))]}
}

func (in *Injector) movementStep() actionspace.MoveStep {
	return actionspace.MoveStep{Dir: walkDirs[in.rng.Intn(len(walkDirs))]}
}

func (in *Injector) basicStep() actionspace.MoveStep {
	step, _ := actionspace.Decode(in.rng.Intn(actionspace.Size()))
	return step
}
