package rollout

import (
	"gonum.org/v1/gonum/stat"

	"github.com/fightrl/comboinject/injector"
)

// InjectionDataset summarizes how often the injector actually injected
// something across a run. WindowRates is the empirical injection rate
// per window of consecutive steps, in step order; with a decay horizon
// configured it should trend to zero.
type InjectionDataset struct {
	Episodes      int
	TotalSteps    int
	CategorySteps map[string]int

	WindowSize  int
	WindowRates []float64
	MeanRate    float64
}

// InjectionAnalyzer folds episode traces into an InjectionDataset.
type InjectionAnalyzer struct {
	window int

	episodes      int
	categorySteps map[string]int
	stepRates     []float64
}

func NewInjectionAnalyzer(window int) *InjectionAnalyzer {
	a := &InjectionAnalyzer{window: window}
	a.Reset()
	return a
}

func (a *InjectionAnalyzer) Reset() {
	a.episodes = 0
	a.categorySteps = make(map[string]int)
	a.stepRates = make([]float64, 0)
}

// Analyze consumes one episode trace. The per-step injection rate is
// the fraction of agents whose action came from a sampled category
// rather than the residual do-nothing mass.
func (a *InjectionAnalyzer) Analyze(trace *Trace) {
	for i := 0; i < trace.Len(); i++ {
		step := trace.Step(i)
		injected := 0
		for _, c := range step.Categories {
			a.categorySteps[c.String()]++
			if c != injector.CategoryNone {
				injected++
			}
		}
		if len(step.Categories) > 0 {
			a.stepRates = append(a.stepRates, float64(injected)/float64(len(step.Categories)))
		}
	}
	a.episodes++
}

func (a *InjectionAnalyzer) DataSet() *InjectionDataset {
	d := &InjectionDataset{
		Episodes:      a.episodes,
		TotalSteps:    len(a.stepRates),
		CategorySteps: make(map[string]int, len(a.categorySteps)),
		WindowSize:    a.window,
		WindowRates:   make([]float64, 0),
	}
	for c, n := range a.categorySteps {
		d.CategorySteps[c] = n
	}
	for start := 0; start < len(a.stepRates); start += a.window {
		end := start + a.window
		if end > len(a.stepRates) {
			end = len(a.stepRates)
		}
		d.WindowRates = append(d.WindowRates, stat.Mean(a.stepRates[start:end], nil))
	}
	if len(a.stepRates) > 0 {
		d.MeanRate = stat.Mean(a.stepRates, nil)
	}
	return d
}
