package sim

import (
	"math/rand"

	"github.com/vovakirdan/cyberguard/internal/config"
)

// Autopilot plays the game without a human. It is used for headless batch
// runs and for exercising the whole engine in tests.
type Autopilot struct {
	rng *rand.Rand
	// Accuracy is the probability of picking the correct defense for a wave.
	Accuracy float64
	// Deploy enables agent deployment when energy allows.
	Deploy bool
}

// NewAutopilot creates an autopilot with its own random source.
func NewAutopilot(seed int64, accuracy float64) *Autopilot {
	return &Autopilot{
		rng:      rand.New(rand.NewSource(seed)),
		Accuracy: accuracy,
		Deploy:   true,
	}
}

// Drive issues this frame's actions. Call it before World.Step.
func (p *Autopilot) Drive(w *World) {
	s := w.State()
	if s.GameOver() {
		return
	}
	if w.Paused() {
		w.SetPaused(false)
	}

	threats := s.Threats()
	if len(threats) == 0 {
		return
	}
	target := threats[0]

	if s.Selected() == "" {
		d := s.Matcher().RequiredDefense(target.Category)
		if p.rng.Float64() >= p.Accuracy {
			d = config.AllDefenses[p.rng.Intn(len(config.AllDefenses))]
		}
		w.SelectDefense(d)
	}

	c := w.Commander()
	cx, _ := c.Center()
	tx, _ := target.Center()
	switch {
	case tx < cx-c.Speed/2:
		w.MoveCommander(-1, 0)
	case tx > cx+c.Speed/2:
		w.MoveCommander(1, 0)
	}

	cfg := w.Config()
	if p.Deploy && len(s.Agents()) < cfg.Economy.MaxAgents && s.Energy() >= cfg.Economy.DeployCost+100 {
		w.DeployAgent(s.Selected(), tx, cfg.Field.Height/2)
	}

	w.Fire()
}
