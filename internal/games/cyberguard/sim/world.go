package sim

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/cyberguard/internal/config"
	"github.com/vovakirdan/cyberguard/internal/core"
)

// Special ability ids.
const (
	SpecialFirewallBoost   = "firewall_boost"
	SpecialEncryptionField = "encryption_field"
	SpecialThreatScan      = "threat_scan"
	SpecialEducationBurst  = "education_burst"
)

// World is the frame driver. It owns the state, the pools and the
// subsystems, and is the only writer of the simulation.
type World struct {
	cfg  config.Config
	seed int64
	log  *log.Logger

	state     *State
	pools     *Pools
	spawner   *Spawner
	resolver  *CollisionResolver
	commander Commander

	paused bool
	scroll int // Cosmetic background offset, advances even while paused

	bulletBuf []*Bullet
	agentBuf  []*Agent
}

// NewWorld creates a world for cfg, ready to step.
// cfg must have passed config.Validate.
func NewWorld(cfg config.Config, seed int64, opts ...Option) *World {
	o := buildOptions(opts)
	s := NewState(cfg, opts...)
	p := NewPools()
	w := &World{
		cfg:      cfg,
		seed:     seed,
		log:      o.logger,
		state:    s,
		pools:    p,
		spawner:  NewSpawner(s, p, rand.New(rand.NewSource(seed))),
		resolver: NewCollisionResolver(s, p),
	}
	w.placeCommander()
	return w
}

// Reset discards the run and starts a new one with seed.
// Every live entity goes back to its pool before the state is cleared.
func (w *World) Reset(seed int64) {
	s := w.state
	for len(s.bullets) > 0 {
		w.pools.DestroyBullet(s, s.bullets[len(s.bullets)-1])
	}
	for len(s.threats) > 0 {
		w.pools.DestroyThreat(s, s.threats[len(s.threats)-1])
	}
	for len(s.agents) > 0 {
		w.pools.DestroyAgent(s, s.agents[len(s.agents)-1])
	}
	s.reset()

	w.seed = seed
	w.spawner.Reset(rand.New(rand.NewSource(seed)))
	w.paused = false
	w.scroll = 0
	w.placeCommander()
	w.log.Debug("run reset", "run", s.runID, "seed", seed)
}

func (w *World) placeCommander() {
	cc := w.cfg.Commander
	w.commander = Commander{Speed: cc.Speed}
	w.commander.place(
		(w.cfg.Field.Width-cc.Width)/2,
		w.cfg.Field.Height-cc.BottomMargin,
		cc.Width, cc.Height,
	)
}

// Step advances the simulation by one frame.
// Positions move first, then spawns, agent strikes and collisions resolve,
// then the per-frame progress checks run. Paused or finished runs only
// advance cosmetic state.
func (w *World) Step() {
	w.scroll++

	s := w.state
	if w.paused || s.gameOver {
		return
	}
	s.frame++

	w.commander.Tick()
	s.UpdateEnergy(w.cfg.Economy.EnergyRegen)

	// Movement
	w.bulletBuf = append(w.bulletBuf[:0], s.bullets...)
	for _, b := range w.bulletBuf {
		b.Advance()
		if b.Y+b.H < 0 {
			w.pools.DestroyBullet(s, b)
		}
	}
	for _, t := range s.threats {
		t.Advance()
	}
	for _, a := range s.agents {
		a.Tick()
	}

	// Engagements
	w.spawner.Update()
	w.agentStrikes()
	w.resolver.Resolve(&w.commander)

	if s.EvaluateFrame() {
		w.paused = true
	}
}

// agentStrikes lets every ready agent hit the nearest threat within range.
func (w *World) agentStrikes() {
	s := w.state
	w.agentBuf = append(w.agentBuf[:0], s.agents...)
	for _, a := range w.agentBuf {
		if !a.Active || !a.Ready() {
			continue
		}
		target := w.nearestThreat(a)
		if target == nil {
			continue
		}
		if target.TakeDamage(a.Strike()) {
			s.creditAgentKill(w.resolver.KillThreat(target, a.Type))
		}
	}
}

func (w *World) nearestThreat(a *Agent) *Threat {
	var best *Threat
	var bestDist float64
	for _, t := range w.state.threats {
		if !t.Active || !a.InRange(t) {
			continue
		}
		if d := a.distanceSq(t); best == nil || d < bestDist {
			best, bestDist = t, d
		}
	}
	return best
}

func (w *World) reject(action, reason string) bool {
	s := w.state
	w.log.Debug("action rejected", "action", action, "reason", reason, "frame", s.frame)
	s.events.Push(Event{Kind: EventActionRejected, Frame: s.frame, Name: action, Text: reason})
	return false
}

func (w *World) inPlay(action string) bool {
	switch {
	case w.state.gameOver:
		return w.reject(action, "game over")
	case w.paused:
		return w.reject(action, "paused")
	}
	return true
}

// SelectDefense sets the commander's defense type.
func (w *World) SelectDefense(d config.Defense) bool {
	if !w.inPlay("select") {
		return false
	}
	if !d.Valid() {
		return w.reject("select", "unknown defense")
	}
	w.state.selected = d
	return true
}

// Fire launches a bullet of the selected defense type from the commander.
// It is rejected without a selection, during the shot cooldown, with no
// threat on the field, or when energy is short.
func (w *World) Fire() bool {
	if !w.inPlay("fire") {
		return false
	}
	s := w.state
	switch {
	case s.selected == "":
		return w.reject("fire", "no defense selected")
	case w.commander.ShotCooldown > 0:
		return w.reject("fire", "cooling down")
	case len(s.threats) == 0:
		return w.reject("fire", "no threats")
	case !s.spendEnergy(w.cfg.Economy.ShotCost):
		return w.reject("fire", "not enough energy")
	}

	bc := w.cfg.Bullets[s.selected]
	cx, _ := w.commander.Center()
	b := w.pools.Bullets.Acquire(newBullet)
	b.Reinitialize(BulletSpec{
		Defense: s.selected,
		Damage:  bc.Damage,
		Speed:   bc.Speed,
		X:       cx - bc.Width/2,
		Y:       w.commander.Y - bc.Height,
		W:       bc.Width,
		H:       bc.Height,
	})
	s.AddBullet(b)
	w.commander.ShotCooldown = w.cfg.Commander.ShotCooldown
	return true
}

// DeployAgent places an agent of type d centered at (x, y).
func (w *World) DeployAgent(d config.Defense, x, y float64) bool {
	if !w.inPlay("deploy") {
		return false
	}
	s := w.state
	ac, ok := w.cfg.Agents[d]
	switch {
	case !ok:
		return w.reject("deploy", "unknown defense")
	case len(s.agents) >= w.cfg.Economy.MaxAgents:
		return w.reject("deploy", "agent limit reached")
	case !s.spendEnergy(w.cfg.Economy.DeployCost):
		return w.reject("deploy", "not enough energy")
	}

	f := w.cfg.Field
	a := w.pools.Agents.Acquire(newAgent)
	a.Reinitialize(AgentSpec{
		Type:        d,
		Label:       ac.Label,
		Power:       ac.Power,
		Range:       ac.Range,
		Cooldown:    ac.Cooldown,
		Energy:      ac.Energy,
		EnergyRegen: ac.EnergyRegen,
		StrikeCost:  ac.StrikeCost,
		Special:     ac.Special,
		X:           core.ClampF(x-ac.Width/2, 0, f.Width-ac.Width),
		Y:           core.ClampF(y-ac.Height/2, 0, f.Height-ac.Height),
		W:           ac.Width,
		H:           ac.Height,
	})
	s.AddAgent(a)
	s.AddScore(ScoreAgentDeploy, 0)

	w.log.Info("agent deployed", "type", d, "agents", len(s.agents))
	s.events.Push(Event{Kind: EventAgentDeployed, Frame: s.frame, Defense: d, Name: ac.Label})
	return true
}

// UseSpecial triggers the special ability of the first deployed agent of the
// selected type.
func (w *World) UseSpecial() bool {
	if !w.inPlay("special") {
		return false
	}
	s := w.state
	if s.selected == "" {
		return w.reject("special", "no defense selected")
	}
	var agent *Agent
	for _, a := range s.agents {
		if a.Type == s.selected {
			agent = a
			break
		}
	}
	if agent == nil {
		return w.reject("special", "no agent of selected type")
	}
	if !isSpecial(agent.Special) {
		return w.reject("special", "unknown ability")
	}
	if !s.spendEnergy(w.cfg.Economy.SpecialCost) {
		return w.reject("special", "not enough energy")
	}

	switch agent.Special {
	case SpecialFirewallBoost:
		agent.Power *= 2
		agent.Range *= 1.5
	case SpecialEncryptionField:
		s.UpdateSecurityLevel(3)
	case SpecialThreatScan:
		for _, t := range s.threats {
			t.Marked = true
		}
	case SpecialEducationBurst:
		for _, a := range s.agents {
			a.Power += 5
		}
		s.AddKnowledgePoints(5)
	}

	w.log.Info("special used", "ability", agent.Special)
	s.events.Push(Event{Kind: EventSpecialUsed, Frame: s.frame, Defense: agent.Type, Name: agent.Special})
	return true
}

func isSpecial(id string) bool {
	switch id {
	case SpecialFirewallBoost, SpecialEncryptionField, SpecialThreatScan, SpecialEducationBurst:
		return true
	}
	return false
}

// MoveCommander moves the commander by (dx, dy) steps of its speed.
func (w *World) MoveCommander(dx, dy float64) bool {
	if !w.inPlay("move") {
		return false
	}
	w.commander.Move(dx, dy, w.cfg.Field.Width, w.cfg.Field.Height)
	return true
}

// SetPaused sets the pause flag. A finished run cannot be paused or resumed.
func (w *World) SetPaused(paused bool) bool {
	if w.state.gameOver {
		return false
	}
	w.paused = paused
	return true
}

// TogglePause flips the pause flag.
func (w *World) TogglePause() bool {
	return w.SetPaused(!w.paused)
}

// Paused reports whether gameplay is paused.
func (w *World) Paused() bool { return w.paused }

// Drain returns and clears the events produced since the last call.
func (w *World) Drain() []Event { return w.state.events.Drain() }

// State returns the run state. Callers must treat it as read-only.
func (w *World) State() *State { return w.state }

// Commander returns a copy of the commander.
func (w *World) Commander() Commander { return w.commander }

// Pools exposes the entity pools for inspection.
func (w *World) Pools() *Pools { return w.pools }

// Spawner returns the threat spawner.
func (w *World) Spawner() *Spawner { return w.spawner }

// Resolver returns the collision resolver.
func (w *World) Resolver() *CollisionResolver { return w.resolver }

// Config returns the configuration the world runs with.
func (w *World) Config() config.Config { return w.cfg }

// Seed returns the seed of the current run.
func (w *World) Seed() int64 { return w.seed }

// Scroll returns the cosmetic background offset.
func (w *World) Scroll() int { return w.scroll }
