package sim

import (
	"math/rand"

	"github.com/vovakirdan/cyberguard/internal/config"
)

// SpawnPhase is the spawner's state.
type SpawnPhase int

const (
	// SpawnIdle means no threats are alive and the interval timer is running.
	SpawnIdle SpawnPhase = iota
	// SpawnSpawning is the transient phase while a wave is being placed.
	SpawnSpawning
	// SpawnActive means at least one threat is alive; spawning is suppressed.
	SpawnActive
)

func (p SpawnPhase) String() string {
	switch p {
	case SpawnIdle:
		return "idle"
	case SpawnSpawning:
		return "spawning"
	case SpawnActive:
		return "active"
	default:
		return "unknown"
	}
}

// Spawner places single-category waves of threats.
// A wave is attempted every Interval frames and only when no threat is alive.
// The category is a function of the frame count, so every run meets the
// categories in the same order.
type Spawner struct {
	state      *State
	pools      *Pools
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	phase      SpawnPhase
}

// NewSpawner creates a spawner drawing positions and names from rng.
func NewSpawner(s *State, p *Pools, rng *rand.Rand) *Spawner {
	return &Spawner{
		state:      s,
		pools:      p,
		rng:        rng,
		difficulty: config.NewDifficultyManager(s.Config().Difficulty),
	}
}

// Phase returns the current spawner phase.
func (sp *Spawner) Phase() SpawnPhase { return sp.phase }

// Reset returns the spawner to Idle with a fresh random source.
func (sp *Spawner) Reset(rng *rand.Rand) {
	sp.rng = rng
	sp.phase = SpawnIdle
}

// CategoryAt returns the category a wave spawned on frame would have.
func (sp *Spawner) CategoryAt(frame int) config.Category {
	order := sp.state.Rotation()
	if len(order) == 0 {
		return ""
	}
	period := sp.state.cfg.Spawner.CategoryPeriod
	if period <= 0 {
		period = 1
	}
	return order[(frame/period)%len(order)]
}

// Update runs one spawner tick and returns the number of threats spawned.
func (sp *Spawner) Update() int {
	s := sp.state
	if len(s.threats) > 0 {
		sp.phase = SpawnActive
		return 0
	}
	sp.phase = SpawnIdle

	interval := s.cfg.Spawner.Interval
	if interval <= 0 || s.frame%interval != 0 {
		return 0
	}

	c := sp.CategoryAt(s.frame)
	tc, ok := s.cfg.Threats[c]
	if !ok {
		return 0
	}

	sp.phase = SpawnSpawning
	wave := s.startWave(c)
	s.RecordThreatEncounter(c)

	n := s.cfg.Spawner.WaveSize
	for i := 0; i < n; i++ {
		t := sp.pools.Threats.Acquire(newThreat)
		t.Reinitialize(sp.spec(c, tc, wave))
		s.AddThreat(t)

		s.log.Info("threat spawned", "threat", t.Name, "category", c, "wave", wave)
		s.events.Push(Event{
			Kind:     EventThreatSpawned,
			Frame:    s.frame,
			Category: c,
			Name:     t.Name,
			Value:    wave,
		})
	}

	sp.phase = SpawnActive
	return n
}

func (sp *Spawner) spec(c config.Category, tc config.ThreatConfig, wave int) ThreatSpec {
	s := sp.state
	field := s.cfg.Field
	margin := s.cfg.Spawner.EdgeMargin

	// Center x in [margin, width-margin]
	cx := margin
	if span := field.Width - 2*margin; span > 0 {
		cx += sp.rng.Float64() * span
	}

	name := tc.Label
	if len(tc.Names) > 0 {
		name = tc.Names[sp.rng.Intn(len(tc.Names))]
	}

	return ThreatSpec{
		Category:   c,
		Name:       name,
		Label:      tc.Label,
		Tip:        tc.Tip,
		Health:     sp.difficulty.Health(tc.Health, s.score, s.frame),
		Damage:     tc.Damage,
		Speed:      sp.difficulty.Speed(tc.Speed, s.score, s.frame),
		Required:   s.matcher.RequiredDefense(c),
		Difficulty: tc.Difficulty,
		Wave:       wave,
		X:          cx - tc.Width/2,
		Y:          s.cfg.Spawner.SpawnY - tc.Height/2,
		W:          tc.Width,
		H:          tc.Height,
	}
}
