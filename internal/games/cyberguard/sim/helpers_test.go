package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/cyberguard/internal/config"
)

var fixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func newTestWorld(t *testing.T, opts ...Option) *World {
	t.Helper()
	cfg := config.DefaultConfig()
	require.NoError(t, config.Validate(cfg))
	return NewWorld(cfg, 1, append([]Option{WithClock(fixedClock)}, opts...)...)
}

func newTestState(t *testing.T, opts ...Option) *State {
	t.Helper()
	return NewState(config.DefaultConfig(), append([]Option{WithClock(fixedClock)}, opts...)...)
}

// placeThreat registers a threat of category c with its top-left corner at (x, y).
func placeThreat(w *World, c config.Category, x, y float64) *Threat {
	s := w.State()
	tc := w.Config().Threats[c]
	t := w.Pools().Threats.Acquire(newThreat)
	t.Reinitialize(ThreatSpec{
		Category: c,
		Name:     tc.Label,
		Label:    tc.Label,
		Health:   tc.Health,
		Damage:   tc.Damage,
		Speed:    tc.Speed,
		Required: s.Matcher().RequiredDefense(c),
		X:        x,
		Y:        y,
		W:        tc.Width,
		H:        tc.Height,
	})
	if s.CurrentCategory() == "" {
		s.startWave(c)
	}
	s.AddThreat(t)
	return t
}

// placeBullet registers a bullet of defense d with the given damage at (x, y).
func placeBullet(w *World, d config.Defense, damage int, x, y float64) *Bullet {
	bc := w.Config().Bullets[d]
	b := w.Pools().Bullets.Acquire(newBullet)
	b.Reinitialize(BulletSpec{
		Defense: d,
		Damage:  damage,
		Speed:   bc.Speed,
		X:       x,
		Y:       y,
		W:       bc.Width,
		H:       bc.Height,
	})
	w.State().AddBullet(b)
	return b
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
