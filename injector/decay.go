package injector

// DecayScheduler linearly scales injection probabilities down to zero
// over a horizon of sampling steps. The counter is owned by one
// Injector, advances once per Sample call regardless of the number of
// agents, and deliberately survives episode resets: weaning an agent
// off scripted assistance is a property of the whole training run, not
// of a single episode.
type DecayScheduler struct {
	step    int
	horizon int
}

// NewDecayScheduler creates a scheduler. A horizon of 0 disables
// decay, pinning the multiplier at 1 forever.
func NewDecayScheduler(horizon int) *DecayScheduler {
	return &DecayScheduler{horizon: horizon}
}

// Multiplier returns the current probability scale in [0, 1]:
// 1 - step/horizon while decaying, 0 once the horizon is passed, and a
// constant 1 when decay is disabled.
func (d *DecayScheduler) Multiplier() float64 {
	if d.horizon <= 0 {
		return 1
	}
	if d.step >= d.horizon {
		return 0
	}
	return 1 - float64(d.step)/float64(d.horizon)
}

// Advance moves the shared clock forward by one sampling step.
func (d *DecayScheduler) Advance() {
	d.step++
}

// Step returns the number of sampling steps seen so far.
func (d *DecayScheduler) Step() int {
	return d.step
}

// Reset rewinds the clock to zero. Only called on explicit request,
// never as part of an episode reset.
func (d *DecayScheduler) Reset() {
	d.step = 0
}
