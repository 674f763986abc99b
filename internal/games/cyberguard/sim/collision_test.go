package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/cyberguard/internal/config"
	"github.com/vovakirdan/cyberguard/internal/core"
)

func TestCollision_Tolerance(t *testing.T) {
	w := newTestWorld(t)
	r := w.Resolver()
	a := core.NewBox(0, 0, 40, 40)

	tests := []struct {
		gap      float64
		expected bool
	}{
		{0, true},
		{1, true},
		{1.99, true},
		{3, true},
		{4.01, false},
		{10, false},
	}

	for _, tc := range tests {
		b := core.NewBox(40+tc.gap, 0, 20, 20)
		assert.Equal(t, tc.expected, r.Collides(a, b), "gap %v", tc.gap)
	}
}

// A correct defense kills a 12-health phishing threat in one 15-damage hit
// and pays the high reward.
func TestCollision_CorrectDefenseKill(t *testing.T) {
	w := newTestWorld(t)
	s := w.State()
	s.UpdateSecurityLevel(-50)

	th := placeThreat(w, config.Phishing, 100, 100)
	require.Equal(t, 12, th.Health)
	placeBullet(w, config.Education, 15, 110, 120)

	w.Resolver().ResolveBullets()

	assert.Empty(t, s.Threats())
	assert.Empty(t, s.Bullets())
	assert.False(t, th.Active)
	assert.Equal(t, 20, s.Score())
	assert.Equal(t, 15, s.KnowledgePoints())
	assert.Equal(t, 55, s.SecurityLevel())
	assert.Equal(t, 1, s.CorrectAnswers())
	assert.Zero(t, s.WrongAnswers())

	require.Len(t, s.Records(), 1)
	assert.Equal(t, RecordCorrect, s.Records()[0].Kind)

	assert.Equal(t, 1, w.Pools().Threats.Free())
	assert.Equal(t, 1, w.Pools().Bullets.Free())
}

func TestCollision_CorrectDefenseSecurityCapped(t *testing.T) {
	w := newTestWorld(t)
	s := w.State()

	placeThreat(w, config.Phishing, 100, 100)
	placeBullet(w, config.Education, 15, 110, 120)
	w.Resolver().ResolveBullets()

	assert.Equal(t, 100, s.SecurityLevel())
	assert.Equal(t, 1, s.CorrectAnswers())
}

// A wrong defense still kills but pays the baseline reward and logs a wrong record.
func TestCollision_WrongDefenseKill(t *testing.T) {
	w := newTestWorld(t)
	s := w.State()
	s.UpdateSecurityLevel(-50)

	placeThreat(w, config.Phishing, 100, 100)
	placeBullet(w, config.Firewall, 15, 110, 120)

	w.Resolver().ResolveBullets()

	assert.Empty(t, s.Threats())
	assert.Equal(t, 10, s.Score())
	assert.Equal(t, 5, s.KnowledgePoints())
	assert.Equal(t, 52, s.SecurityLevel())
	assert.Equal(t, 1, s.WrongAnswers())
	assert.Zero(t, s.CorrectAnswers())

	require.Len(t, s.Records(), 1)
	rec := s.Records()[0]
	assert.Equal(t, RecordWrong, rec.Kind)
	assert.Equal(t, config.Firewall, rec.Defense)
	assert.Equal(t, config.Education, rec.CorrectDefense)
}

func TestCollision_NonLethalHitStillRecorded(t *testing.T) {
	w := newTestWorld(t)
	s := w.State()

	th := placeThreat(w, config.DDoS, 100, 100)
	placeBullet(w, config.Firewall, 25, 110, 120)

	w.Resolver().ResolveBullets()

	assert.Equal(t, 13, th.Health)
	assert.Len(t, s.Threats(), 1)
	assert.Empty(t, s.Bullets())
	assert.Equal(t, 1, s.CorrectAnswers())
	assert.Zero(t, s.Score(), "no reward until the kill")
}

func TestCollision_FirstThreatInRegistrationOrder(t *testing.T) {
	w := newTestWorld(t)

	first := placeThreat(w, config.Malware, 100, 100)
	second := placeThreat(w, config.Malware, 105, 105)
	placeBullet(w, config.Detection, 5, 115, 115)

	w.Resolver().ResolveBullets()

	assert.Equal(t, first.MaxHealth-5, first.Health)
	assert.Equal(t, second.MaxHealth, second.Health, "a bullet affects at most one threat")
}

func TestCollision_InactiveSkipped(t *testing.T) {
	w := newTestWorld(t)
	s := w.State()

	th := placeThreat(w, config.Malware, 100, 100)
	th.Active = false
	b := placeBullet(w, config.Detection, 50, 110, 110)

	w.Resolver().ResolveBullets()

	assert.Equal(t, th.MaxHealth, th.Health)
	assert.Equal(t, []*Bullet{b}, s.Bullets())
	assert.Empty(t, s.Records())
}

func TestCollision_CommanderHit(t *testing.T) {
	w := newTestWorld(t)
	s := w.State()
	s.AddScore(ScoreThreatDestroy, 0)
	c := w.Commander()

	placeThreat(w, config.DataLeak, c.X, c.Y-10)
	placeThreat(w, config.DataLeak, 0, 0)

	w.Resolver().ResolveCommander(&c)

	assert.Len(t, s.Threats(), 1)
	assert.Equal(t, 90, s.SecurityLevel())
	assert.Zero(t, s.Combo())
	assert.Equal(t, 1, countEvents(w.Drain(), EventCommanderHit))
}

func TestCollision_Leak(t *testing.T) {
	w := newTestWorld(t)
	s := w.State()
	h := w.Config().Field.Height

	placeThreat(w, config.Phishing, 10, h-1)
	placeThreat(w, config.Phishing, 60, h)

	w.Resolver().ResolveLeaks()

	require.Len(t, s.Threats(), 1)
	assert.Equal(t, h-1, s.Threats()[0].Y)
	assert.Equal(t, 98, s.SecurityLevel())
	assert.Equal(t, 1, countEvents(w.Drain(), EventThreatLeaked))
}

func TestCollision_LeaksCanEndRun(t *testing.T) {
	w := newTestWorld(t)
	s := w.State()
	s.UpdateSecurityLevel(-98)

	placeThreat(w, config.Phishing, 10, 700)
	w.Resolver().ResolveLeaks()

	assert.Zero(t, s.SecurityLevel())
	assert.True(t, s.GameOver())
}
