package sim

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vovakirdan/cyberguard/internal/config"
	"github.com/vovakirdan/cyberguard/internal/core"
)

// Option configures a State or World.
type Option func(*options)

type options struct {
	logger     *log.Logger
	clock      func() time.Time
	levelGated bool
}

// WithLogger sets the diagnostics logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock sets the time source used to stamp knowledge records.
func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

// WithLevelGating limits the spawner to the current level's categories.
// Without it every run cycles the full spawner order; levels still advance.
func WithLevelGating() Option {
	return func(o *options) { o.levelGated = true }
}

func buildOptions(opts []Option) options {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.clock == nil {
		o.clock = time.Now
	}
	return o
}

// State is the run-scoped game state. One State belongs to one World and is
// passed explicitly to every subsystem that reads or mutates it.
type State struct {
	cfg        config.Config
	matcher    *MatchEngine
	events     *EventQueue
	log        *log.Logger
	clock      func() time.Time
	levelGated bool

	runID string
	frame int

	score      int
	multiplier int
	combo      int
	maxCombo   int
	kills      int

	security  int
	energy    float64
	maxEnergy float64

	knowledgePoints int
	records         []KnowledgeRecord
	nextRecordID    int
	wrong           int
	correct         int

	currentCategory config.Category
	selected        config.Defense
	wave            int
	level           int // Index into cfg.Levels

	honors      map[string]bool
	unlocked    map[config.Category]bool
	encountered map[config.Category]bool

	gameOver bool
	reason   string

	threats []*Threat
	bullets []*Bullet
	agents  []*Agent
}

// NewState creates a state for cfg and resets it for a first run.
func NewState(cfg config.Config, opts ...Option) *State {
	o := buildOptions(opts)
	s := &State{
		cfg:        cfg,
		matcher:    NewMatchEngine(cfg),
		events:     &EventQueue{},
		log:        o.logger,
		clock:      o.clock,
		levelGated: o.levelGated,
	}
	s.reset()
	return s
}

// reset restores run-start defaults and starts a new run id.
// Entity lists are emptied without touching the pools, so only World.Reset,
// which releases every entity first, may call it on a used state.
func (s *State) reset() {
	s.runID = uuid.NewString()
	s.frame = 0

	s.score = 0
	s.multiplier = s.cfg.Scoring.Multiplier
	if s.multiplier <= 0 {
		s.multiplier = 1
	}
	s.combo = 0
	s.maxCombo = 0
	s.kills = 0

	s.security = s.cfg.Security.Start
	s.maxEnergy = s.cfg.Economy.MaxEnergy
	s.energy = core.ClampF(s.cfg.Economy.StartEnergy, 0, s.maxEnergy)

	s.knowledgePoints = 0
	s.records = nil
	s.nextRecordID = 0
	s.wrong = 0
	s.correct = 0

	s.currentCategory = ""
	s.selected = ""
	s.wave = 0
	s.level = 0

	s.honors = make(map[string]bool)
	s.unlocked = make(map[config.Category]bool)
	s.encountered = make(map[config.Category]bool)

	s.gameOver = false
	s.reason = ""

	s.threats = nil
	s.bullets = nil
	s.agents = nil

	s.events.Drain()
}

// AddThreat registers t at the end of the active list.
func (s *State) AddThreat(t *Threat) {
	s.threats = append(s.threats, t)
}

// RemoveThreat unregisters t. Removing an absent threat does nothing and
// returns false. Removing the last threat ends the wave.
func (s *State) RemoveThreat(t *Threat) bool {
	var ok bool
	s.threats, ok = removeRef(s.threats, t)
	if !ok {
		return false
	}
	if len(s.threats) == 0 {
		s.endWave()
	}
	return true
}

// AddBullet registers b at the end of the active list.
func (s *State) AddBullet(b *Bullet) {
	s.bullets = append(s.bullets, b)
}

// RemoveBullet unregisters b. Removing an absent bullet does nothing.
func (s *State) RemoveBullet(b *Bullet) bool {
	var ok bool
	s.bullets, ok = removeRef(s.bullets, b)
	return ok
}

// AddAgent registers a at the end of the active list.
func (s *State) AddAgent(a *Agent) {
	s.agents = append(s.agents, a)
}

// RemoveAgent unregisters a. Removing an absent agent does nothing.
func (s *State) RemoveAgent(a *Agent) bool {
	var ok bool
	s.agents, ok = removeRef(s.agents, a)
	return ok
}

// removeRef deletes x from list by identity, keeping order.
func removeRef[T comparable](list []T, x T) ([]T, bool) {
	for i, v := range list {
		if v == x {
			copy(list[i:], list[i+1:])
			var zero T
			list[len(list)-1] = zero
			return list[:len(list)-1], true
		}
	}
	return list, false
}

func (s *State) endWave() {
	if s.currentCategory == "" {
		return
	}
	s.events.Push(Event{Kind: EventWaveCleared, Frame: s.frame, Category: s.currentCategory, Value: s.wave})
	s.currentCategory = ""
	s.selected = ""
}

// startWave marks category c as the active wave.
func (s *State) startWave(c config.Category) int {
	s.wave++
	s.currentCategory = c
	return s.wave
}

// UpdateSecurityLevel adds delta and clamps the result to [0, max].
// Reaching 0 ends the run.
func (s *State) UpdateSecurityLevel(delta int) int {
	s.security = core.Clamp(s.security+delta, 0, s.cfg.Security.Max)
	if s.security == 0 {
		s.endRun("security breached")
	}
	return s.security
}

// UpdateEnergy adds delta and clamps the result to [0, maxEnergy].
func (s *State) UpdateEnergy(delta float64) float64 {
	s.energy = core.ClampF(s.energy+delta, 0, s.maxEnergy)
	return s.energy
}

// spendEnergy deducts cost if affordable.
func (s *State) spendEnergy(cost float64) bool {
	if s.energy < cost {
		return false
	}
	s.UpdateEnergy(-cost)
	return true
}

// endRun latches game over. Only a reset clears it.
func (s *State) endRun(reason string) {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.reason = reason
	s.log.Info("game over", "run", s.runID, "reason", reason, "score", s.score, "frame", s.frame)
	s.events.Push(Event{Kind: EventGameOver, Frame: s.frame, Text: reason, Value: s.score})
}

// ApplyKill grants the reward of a resolved kill.
func (s *State) ApplyKill(o Outcome) {
	if o.Correct {
		s.AddScore(ScoreCorrectDefense, o.Reward.Score)
	} else {
		s.AddScore(ScoreThreatDestroy, o.Reward.Score)
	}
	s.UpdateSecurityLevel(o.Reward.Security)
	s.AddKnowledgePoints(o.Reward.Knowledge)
	s.kills++

	if every := s.cfg.Scoring.ComboEvery; every > 0 && s.combo > 0 && s.combo%every == 0 {
		bonus := s.AddScore(ScoreComboBonus, 0)
		s.events.Push(Event{Kind: EventComboBonus, Frame: s.frame, Value: bonus, Text: "Combo bonus"})
	}
}

// creditAgentKill counts a matching agent kill as a correct answer. Agent
// strikes write no hit record, so this is the only place they are counted.
func (s *State) creditAgentKill(o Outcome) {
	if o.Correct {
		s.correct++
	}
}

// breakCombo resets the kill streak after a leak or a commander hit.
func (s *State) breakCombo() {
	s.combo = 0
}

// RunID returns the unique id of the current run.
func (s *State) RunID() string { return s.runID }

// Frame returns the number of gameplay frames simulated this run.
func (s *State) Frame() int { return s.frame }

// Score returns the current score.
func (s *State) Score() int { return s.score }

// Combo returns the current kill streak.
func (s *State) Combo() int { return s.combo }

// MaxCombo returns the longest kill streak this run.
func (s *State) MaxCombo() int { return s.maxCombo }

// SecurityLevel returns the current security level.
func (s *State) SecurityLevel() int { return s.security }

// Energy returns the shared energy pool.
func (s *State) Energy() float64 { return s.energy }

// MaxEnergy returns the energy cap.
func (s *State) MaxEnergy() float64 { return s.maxEnergy }

// KnowledgePoints returns the knowledge points earned this run.
func (s *State) KnowledgePoints() int { return s.knowledgePoints }

// Records returns the knowledge log. Callers must not modify it.
func (s *State) Records() []KnowledgeRecord { return s.records }

// WrongAnswers returns the number of wrong defenses used this run.
func (s *State) WrongAnswers() int { return s.wrong }

// CorrectAnswers returns the number of correct defenses used this run.
func (s *State) CorrectAnswers() int { return s.correct }

// CurrentCategory returns the category of the active wave, or "" between waves.
func (s *State) CurrentCategory() config.Category { return s.currentCategory }

// Selected returns the commander's selected defense, or "" if none.
func (s *State) Selected() config.Defense { return s.selected }

// GameOver reports whether the run has ended.
func (s *State) GameOver() bool { return s.gameOver }

// Reason returns why the run ended.
func (s *State) Reason() string { return s.reason }

// HasHonor reports whether the honor with the given id has been earned.
func (s *State) HasHonor(id string) bool { return s.honors[id] }

// Threats returns the active threats in registration order. Callers must not modify it.
func (s *State) Threats() []*Threat { return s.threats }

// Bullets returns the active bullets in registration order. Callers must not modify it.
func (s *State) Bullets() []*Bullet { return s.bullets }

// Agents returns the deployed agents in registration order. Callers must not modify it.
func (s *State) Agents() []*Agent { return s.agents }

// Matcher returns the defense match engine.
func (s *State) Matcher() *MatchEngine { return s.matcher }

// Config returns the configuration this state was built from.
func (s *State) Config() config.Config { return s.cfg }
