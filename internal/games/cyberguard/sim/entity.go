// Package sim is the Cyber Guardians simulation engine.
//
// It is pure game logic: a World owns one State, the entity pools, the
// spawner and the collision resolver, and advances them one fixed frame at a
// time. Nothing in this package touches the terminal, the clock (except
// through an injected function) or the filesystem.
package sim

import (
	"github.com/vovakirdan/cyberguard/internal/config"
	"github.com/vovakirdan/cyberguard/internal/core"
)

// Entity is the positional base shared by every simulated object.
type Entity struct {
	X, Y    float64 // Top-left corner in field units
	W, H    float64
	Active  bool // Participates in movement and collision
	Visible bool // Drawn by the renderer
}

// Box returns the collision rectangle.
func (e *Entity) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// Center returns the center point.
func (e *Entity) Center() (float64, float64) {
	return e.Box().Center()
}

// Deactivate takes the entity out of play.
func (e *Entity) Deactivate() {
	e.Active = false
	e.Visible = false
}

func (e *Entity) place(x, y, w, h float64) {
	e.X, e.Y, e.W, e.H = x, y, w, h
	e.Active = true
	e.Visible = true
}

// ThreatSpec carries everything needed to (re)initialize a Threat.
type ThreatSpec struct {
	Category   config.Category
	Name       string
	Label      string
	Tip        string
	Health     int
	Damage     int
	Speed      float64
	Required   config.Defense
	Difficulty int
	Wave       int
	X, Y, W, H float64
}

// Threat is an attack descending toward the commander.
type Threat struct {
	Entity
	Category        config.Category
	Name            string // Display name, e.g. "Ransomware"
	Label           string // Category label, e.g. "Malware"
	Tip             string
	Health          int
	MaxHealth       int
	Damage          int
	Speed           float64
	RequiredDefense config.Defense
	Difficulty      int
	Wave            int
	Marked          bool // Revealed by a threat scan
}

func newThreat() *Threat { return &Threat{} }

// Reinitialize overwrites every field from spec. Pooled threats keep nothing
// from their previous life.
func (t *Threat) Reinitialize(s ThreatSpec) {
	t.place(s.X, s.Y, s.W, s.H)
	t.Category = s.Category
	t.Name = s.Name
	t.Label = s.Label
	t.Tip = s.Tip
	t.Health = s.Health
	t.MaxHealth = s.Health
	t.Damage = s.Damage
	t.Speed = s.Speed
	t.RequiredDefense = s.Required
	t.Difficulty = s.Difficulty
	t.Wave = s.Wave
	t.Marked = false
}

// TakeDamage subtracts n from health and reports whether the threat died.
func (t *Threat) TakeDamage(n int) bool {
	t.Health -= n
	return t.Health <= 0
}

// Advance moves the threat one frame down the field.
func (t *Threat) Advance() {
	t.Y += t.Speed
}

// BulletSpec carries everything needed to (re)initialize a Bullet.
type BulletSpec struct {
	Defense    config.Defense
	Damage     int
	Speed      float64
	X, Y, W, H float64
}

// Bullet is a single-use projectile tagged with the defense selected when fired.
type Bullet struct {
	Entity
	Defense config.Defense
	Damage  int
	Speed   float64
}

func newBullet() *Bullet { return &Bullet{} }

// Reinitialize overwrites every field from spec.
func (b *Bullet) Reinitialize(s BulletSpec) {
	b.place(s.X, s.Y, s.W, s.H)
	b.Defense = s.Defense
	b.Damage = s.Damage
	b.Speed = s.Speed
}

// Advance moves the bullet one frame up the field.
func (b *Bullet) Advance() {
	b.Y -= b.Speed
}

// AgentSpec carries everything needed to (re)initialize an Agent.
type AgentSpec struct {
	Type        config.Defense
	Label       string
	Power       int
	Range       float64
	Cooldown    int
	Energy      float64
	EnergyRegen float64
	StrikeCost  float64
	Special     string
	X, Y, W, H  float64
}

// Agent is a deployed defensive unit that strikes threats within range.
type Agent struct {
	Entity
	Type        config.Defense
	Label       string
	Power       int
	Range       float64
	Cooldown    int // Frames until the next strike
	MaxCooldown int
	Energy      float64
	MaxEnergy   float64
	EnergyRegen float64
	StrikeCost  float64
	Special     string
}

func newAgent() *Agent { return &Agent{} }

// Reinitialize overwrites every field from spec.
func (a *Agent) Reinitialize(s AgentSpec) {
	a.place(s.X, s.Y, s.W, s.H)
	a.Type = s.Type
	a.Label = s.Label
	a.Power = s.Power
	a.Range = s.Range
	a.Cooldown = 0
	a.MaxCooldown = s.Cooldown
	a.Energy = s.Energy
	a.MaxEnergy = s.Energy
	a.EnergyRegen = s.EnergyRegen
	a.StrikeCost = s.StrikeCost
	a.Special = s.Special
}

// Tick counts down the cooldown and regenerates energy.
func (a *Agent) Tick() {
	if a.Cooldown > 0 {
		a.Cooldown--
	}
	a.Energy = core.ClampF(a.Energy+a.EnergyRegen, 0, a.MaxEnergy)
}

// Ready reports whether the agent can strike this frame.
func (a *Agent) Ready() bool {
	return a.Cooldown == 0 && a.Energy >= a.StrikeCost
}

// InRange reports whether t's center is within the agent's range.
func (a *Agent) InRange(t *Threat) bool {
	return a.distanceSq(t) <= a.Range*a.Range
}

func (a *Agent) distanceSq(t *Threat) float64 {
	ax, ay := a.Center()
	tx, ty := t.Center()
	dx, dy := tx-ax, ty-ay
	return dx*dx + dy*dy
}

// Strike pays the strike cost and restarts the cooldown.
func (a *Agent) Strike() int {
	a.Energy -= a.StrikeCost
	a.Cooldown = a.MaxCooldown
	return a.Power
}

// Commander is the player's defender at the bottom of the field. It is not pooled.
type Commander struct {
	Entity
	Speed        float64
	ShotCooldown int
}

// Move shifts the commander and keeps it inside a w×h field.
func (c *Commander) Move(dx, dy, w, h float64) {
	c.X = core.ClampF(c.X+dx*c.Speed, 0, w-c.W)
	c.Y = core.ClampF(c.Y+dy*c.Speed, 0, h-c.H)
}

// Tick counts down the shot cooldown.
func (c *Commander) Tick() {
	if c.ShotCooldown > 0 {
		c.ShotCooldown--
	}
}
