package rollout

import (
	"fmt"
	"path"

	"github.com/fightrl/comboinject/injector"
	"github.com/fightrl/comboinject/util"
)

type Flags struct {
	InjectorFlags
	RosterFlags
	ProbFlags
	RunFlags
	SavePath     string
	RecordTraces bool
	Debug        bool
}

type InjectorFlags struct {
	Game         string
	Mode         string
	FrameSkip    int
	DecayHorizon int
	Seed         uint64
	CatalogPath  string
}

type RosterFlags struct {
	Characters []string
	SuperArts  []int
}

type ProbFlags struct {
	ProbJump     float64
	ProbBasic    float64
	ProbCombo    float64
	ProbCancel   float64
	ProbMovement float64
}

type RunFlags struct {
	NumRuns     int
	Episodes    int
	Horizon     int
	Window      int
	Parallelism int
}

func DefaultFlags() *Flags {
	params := injector.DefaultSampleParams()
	return &Flags{
		InjectorFlags: InjectorFlags{
			Game:         "sfiii",
			Mode:         injector.ModeMultiDiscrete.String(),
			FrameSkip:    4,
			DecayHorizon: 0,
		},
		RosterFlags: RosterFlags{
			Characters: []string{"Ken", "Ryu"},
			SuperArts:  []int{1, 1},
		},
		ProbFlags: ProbFlags{
			ProbJump:     params.Jump,
			ProbBasic:    params.Basic,
			ProbCombo:    params.Combo,
			ProbCancel:   params.Cancel,
			ProbMovement: params.Movement,
		},
		RunFlags: RunFlags{
			NumRuns:     1,
			Episodes:    100,
			Horizon:     500,
			Window:      100,
			Parallelism: 4,
		},
		SavePath:     "results",
		RecordTraces: false,
		Debug:        false,
	}
}

func (f *Flags) Record() {
	util.SaveJson(path.Join(f.SavePath, "config.json"), f)
}

// Config converts the parsed flags into a rollout configuration.
func (f *Flags) Config() (Config, error) {
	mode, err := injector.ParseMode(f.Mode)
	if err != nil {
		return Config{}, err
	}
	if len(f.Characters) != len(f.SuperArts) {
		return Config{}, fmt.Errorf("%d characters but %d super arts", len(f.Characters), len(f.SuperArts))
	}
	return Config{
		Injector: injector.Config{
			Game:         f.Game,
			Mode:         mode,
			FrameSkip:    f.FrameSkip,
			DecayHorizon: f.DecayHorizon,
			Seed:         f.Seed,
		},
		CatalogPath: f.CatalogPath,
		Characters:  f.Characters,
		SuperArts:   f.SuperArts,
		Params: injector.SampleParams{
			Jump:     f.ProbJump,
			Basic:    f.ProbBasic,
			Combo:    f.ProbCombo,
			Cancel:   f.ProbCancel,
			Movement: f.ProbMovement,
		},
		Episodes:     f.Episodes,
		Horizon:      f.Horizon,
		Window:       f.Window,
		SavePath:     f.SavePath,
		RecordTraces: f.RecordTraces,
	}, nil
}
