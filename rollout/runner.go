package rollout

import (
	"context"
	"fmt"
	"io"
	"path"
	"sync"

	"github.com/google/uuid"
	"github.com/gosuri/uilive"
	"github.com/rs/zerolog"

	"github.com/fightrl/comboinject/catalog"
	"github.com/fightrl/comboinject/injector"
	"github.com/fightrl/comboinject/util"
)

// Config describes one offline rollout: an injector configuration, a
// roster, the sampling probabilities and a step budget. Rollouts run
// the sampler without a game attached, to measure what it would inject.
type Config struct {
	Injector    injector.Config
	CatalogPath string

	Characters []string
	SuperArts  []int
	Params     injector.SampleParams

	Episodes int
	Horizon  int
	Window   int

	SavePath     string
	RecordTraces bool
}

type Result struct {
	RunID    string
	Episodes int
	Steps    int
	Dataset  *InjectionDataset

	Error error
}

func (r *Result) IsError() bool {
	return r.Error != nil
}

type Runner struct {
	cfg Config
	log zerolog.Logger
}

func NewRunner(cfg Config, log zerolog.Logger) *Runner {
	return &Runner{cfg: cfg, log: log}
}

func (r *Runner) newInjector() (*injector.Injector, error) {
	if r.cfg.CatalogPath == "" {
		return injector.New(r.cfg.Injector)
	}
	cat, err := catalog.LoadFile(r.cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	return injector.NewWithCatalog(r.cfg.Injector, cat)
}

// Run executes the rollout on a fresh injector, reporting progress on
// w (one rewritten line per episode).
func (r *Runner) Run(ctx context.Context, w io.Writer) *Result {
	result := &Result{RunID: uuid.NewString()}
	log := r.log.With().Str("run", result.RunID).Logger()

	inj, err := r.newInjector()
	if err != nil {
		result.Error = err
		return result
	}
	analyzer := NewInjectionAnalyzer(r.cfg.Window)

	log.Info().
		Str("game", r.cfg.Injector.Game).
		Strs("characters", r.cfg.Characters).
		Int("episodes", r.cfg.Episodes).
		Int("horizon", r.cfg.Horizon).
		Msg("starting rollout")

	for episode := 0; episode < r.cfg.Episodes; episode++ {
		select {
		case <-ctx.Done():
			result.Error = ctx.Err()
			return result
		default:
		}

		if err := inj.Reset(r.cfg.Characters, r.cfg.SuperArts); err != nil {
			result.Error = err
			return result
		}

		trace := NewTrace()
		for step := 0; step < r.cfg.Horizon; step++ {
			actions, err := inj.Sample(r.cfg.Params)
			if err != nil {
				result.Error = fmt.Errorf("episode %d step %d: %w", episode, step, err)
				return result
			}
			trace.AddStep(&Step{
				Index:      step,
				Categories: inj.LastCategories(),
				Actions:    actions,
			})
		}
		analyzer.Analyze(trace)
		result.Episodes++
		result.Steps += trace.Len()

		fmt.Fprintf(w, "Run %s: episode %d/%d, steps %d, decay step %d\n",
			result.RunID, episode+1, r.cfg.Episodes, result.Steps, inj.DecayStep())

		if r.cfg.RecordTraces && r.cfg.SavePath != "" {
			tracePath := path.Join(r.cfg.SavePath, result.RunID, fmt.Sprintf("episode_%d.jsonl", episode))
			if err := util.SaveJsonLines(tracePath, trace.Records(result.RunID, episode)); err != nil {
				log.Warn().Err(err).Int("episode", episode).Msg("failed to record trace")
			}
		}
	}

	result.Dataset = analyzer.DataSet()
	if r.cfg.SavePath != "" {
		dataPath := path.Join(r.cfg.SavePath, result.RunID, "injection_rates.json")
		if err := util.SaveJson(dataPath, result.Dataset); err != nil {
			log.Warn().Err(err).Msg("failed to save dataset")
		}
	}

	log.Info().
		Int("episodes", result.Episodes).
		Int("steps", result.Steps).
		Float64("mean_injection_rate", result.Dataset.MeanRate).
		Msg("rollout finished")
	return result
}

// RunParallel executes n independent rollouts over a worker pool. Each
// worker builds its own injector: nothing is shared between rollouts,
// including the decay clocks.
func RunParallel(ctx context.Context, cfg Config, log zerolog.Logger, runs, parallelism int) []*Result {
	type work struct {
		runner *Runner
		writer io.Writer
	}

	writer := uilive.New()
	writer.Start()
	defer writer.Stop()

	workCh := make(chan work, parallelism)
	resultsCh := make(chan *Result, runs)

	wg := new(sync.WaitGroup)
	for i := 0; i < parallelism; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case w, more := <-workCh:
					if !more {
						return
					}
					resultsCh <- w.runner.Run(ctx, w.writer)
					wg.Done()
				}
			}
		}()
	}

	for i := 0; i < runs; i++ {
		wg.Add(1)
		select {
		case <-ctx.Done():
			wg.Done()
		case workCh <- work{
			runner: NewRunner(cfg, log),
			writer: writer.Newline(),
		}:
		}
	}

	wg.Wait()
	close(workCh)
	close(resultsCh)

	results := make([]*Result, 0, runs)
	for result := range resultsCh {
		results = append(results, result)
	}
	return results
}
