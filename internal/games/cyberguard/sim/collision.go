package sim

import (
	"github.com/vovakirdan/cyberguard/internal/config"
	"github.com/vovakirdan/cyberguard/internal/core"
)

// CollisionResolver detects overlaps and applies their consequences.
// Inactive entities are skipped and never tested.
type CollisionResolver struct {
	state *State
	pools *Pools

	tolerance        float64
	fieldH           float64
	commanderPenalty int
	leakPenalty      int

	// Reused snapshots of the entity lists, which shrink while resolving.
	bulletBuf []*Bullet
	threatBuf []*Threat
}

// NewCollisionResolver creates a resolver bound to s and p.
func NewCollisionResolver(s *State, p *Pools) *CollisionResolver {
	cfg := s.Config()
	return &CollisionResolver{
		state:            s,
		pools:            p,
		tolerance:        cfg.Collision.Tolerance,
		fieldH:           cfg.Field.Height,
		commanderPenalty: cfg.Security.CommanderPenalty,
		leakPenalty:      cfg.Security.LeakPenalty,
	}
}

// Collides is the tolerant overlap test used for every engagement.
func (r *CollisionResolver) Collides(a, b core.Box) bool {
	return core.Overlaps(a, b, r.tolerance)
}

// Resolve runs every engagement check for the current frame.
func (r *CollisionResolver) Resolve(c *Commander) {
	r.ResolveBullets()
	if c != nil {
		r.ResolveCommander(c)
	}
	r.ResolveLeaks()
}

// ResolveBullets tests each active bullet against the active threats in
// registration order. The first threat hit takes the damage and consumes
// the bullet.
func (r *CollisionResolver) ResolveBullets() {
	s := r.state
	r.bulletBuf = append(r.bulletBuf[:0], s.bullets...)

	for _, b := range r.bulletBuf {
		if !b.Active {
			continue
		}
		for _, t := range s.threats {
			if !t.Active || !r.Collides(b.Box(), t.Box()) {
				continue
			}
			r.hit(b, t)
			break
		}
	}
}

func (r *CollisionResolver) hit(b *Bullet, t *Threat) {
	s := r.state
	killed := t.TakeDamage(b.Damage)
	s.recordOutcome(t.Category, b.Defense, t.Name)
	r.pools.DestroyBullet(s, b)

	if killed {
		r.KillThreat(t, b.Defense)
	}
}

// KillThreat resolves the reward for destroying t with defense d and removes it.
// It writes no knowledge record and does not touch the answer counters: bullet
// kills were already judged on hit, agent kills are credited by the caller.
func (r *CollisionResolver) KillThreat(t *Threat, d config.Defense) Outcome {
	s := r.state
	o := s.matcher.ResolveKill(t.Category, d)
	s.ApplyKill(o)

	s.log.Info("threat destroyed", "threat", t.Name, "defense", d, "correct", o.Correct)
	s.events.Push(Event{
		Kind:     EventThreatDestroyed,
		Frame:    s.frame,
		Category: t.Category,
		Defense:  d,
		Correct:  o.Correct,
		Name:     t.Name,
		Value:    o.Reward.Score,
	})

	r.pools.DestroyThreat(s, t)
	return o
}

// ResolveCommander destroys every threat touching the commander and applies
// the commander penalty for each.
func (r *CollisionResolver) ResolveCommander(c *Commander) {
	s := r.state
	r.threatBuf = append(r.threatBuf[:0], s.threats...)

	for _, t := range r.threatBuf {
		if !t.Active || !r.Collides(c.Box(), t.Box()) {
			continue
		}
		s.breakCombo()
		s.UpdateSecurityLevel(-r.commanderPenalty)
		s.log.Debug("commander hit", "threat", t.Name, "security", s.security)
		s.events.Push(Event{
			Kind:     EventCommanderHit,
			Frame:    s.frame,
			Category: t.Category,
			Name:     t.Name,
			Value:    r.commanderPenalty,
		})
		r.pools.DestroyThreat(s, t)
	}
}

// ResolveLeaks destroys every threat whose top edge has passed the bottom
// of the field and applies the leak penalty for each.
func (r *CollisionResolver) ResolveLeaks() {
	s := r.state
	r.threatBuf = append(r.threatBuf[:0], s.threats...)

	for _, t := range r.threatBuf {
		if !t.Active || t.Y < r.fieldH {
			continue
		}
		s.breakCombo()
		s.UpdateSecurityLevel(-r.leakPenalty)
		s.log.Debug("threat leaked", "threat", t.Name, "security", s.security)
		s.events.Push(Event{
			Kind:     EventThreatLeaked,
			Frame:    s.frame,
			Category: t.Category,
			Name:     t.Name,
			Value:    r.leakPenalty,
		})
		r.pools.DestroyThreat(s, t)
	}
}
