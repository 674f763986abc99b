package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/cyberguard/internal/config"
)

func lastRejection(events []Event) string {
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Kind == EventActionRejected {
			return events[i].Text
		}
	}
	return ""
}

func TestWorld_Fire(t *testing.T) {
	w := newTestWorld(t)
	s := w.State()

	t.Run("no selection", func(t *testing.T) {
		assert.False(t, w.Fire())
		assert.Equal(t, "no defense selected", lastRejection(w.Drain()))
	})

	t.Run("no threats", func(t *testing.T) {
		require.True(t, w.SelectDefense(config.Firewall))
		assert.False(t, w.Fire())
		assert.Equal(t, "no threats", lastRejection(w.Drain()))
	})

	t.Run("fires", func(t *testing.T) {
		placeThreat(w, config.DDoS, 10, 10)
		require.True(t, w.Fire())

		require.Len(t, s.Bullets(), 1)
		b := s.Bullets()[0]
		assert.Equal(t, config.Firewall, b.Defense)
		assert.Equal(t, 25, b.Damage)
		assert.Equal(t, 170.0, b.X)
		assert.Equal(t, 505.0, b.Y)
		assert.Equal(t, 297.0, s.Energy())
		assert.Equal(t, 10, w.Commander().ShotCooldown)
	})

	t.Run("cooldown", func(t *testing.T) {
		assert.False(t, w.Fire())
		assert.Equal(t, "cooling down", lastRejection(w.Drain()))
	})

	t.Run("energy", func(t *testing.T) {
		w.commander.ShotCooldown = 0
		s.UpdateEnergy(-300)
		assert.False(t, w.Fire())
		assert.Equal(t, "not enough energy", lastRejection(w.Drain()))
		assert.Len(t, s.Bullets(), 1)
		assert.Zero(t, s.Energy())
	})

	t.Run("unknown defense", func(t *testing.T) {
		assert.False(t, w.SelectDefense("antivirus"))
		assert.Equal(t, config.Firewall, s.Selected())
	})
}

func TestWorld_DeployAgent(t *testing.T) {
	w := newTestWorld(t)
	s := w.State()

	for i := 0; i < 4; i++ {
		require.True(t, w.DeployAgent(config.Firewall, 100, 300), "deploy %d", i)
	}
	assert.False(t, w.DeployAgent(config.Firewall, 100, 300))
	assert.Equal(t, "agent limit reached", lastRejection(w.Drain()))

	assert.Len(t, s.Agents(), 4)
	assert.Equal(t, 80, s.Score())
	assert.Equal(t, 100.0, s.Energy())
}

func TestWorld_DeployAgentLimits(t *testing.T) {
	w := newTestWorld(t)
	s := w.State()

	require.True(t, w.DeployAgent(config.Detection, -100, 10000))
	a := s.Agents()[0]
	assert.Equal(t, 0.0, a.X)
	assert.Equal(t, 610.0, a.Y)
	assert.Equal(t, 150.0, a.Range)

	s.UpdateEnergy(-300)
	s.UpdateEnergy(40)
	assert.False(t, w.DeployAgent(config.Detection, 100, 100))
	assert.Equal(t, "not enough energy", lastRejection(w.Drain()))
	assert.Len(t, s.Agents(), 1)
}

func TestWorld_Specials(t *testing.T) {
	t.Run("threat scan", func(t *testing.T) {
		w := newTestWorld(t)
		s := w.State()
		a := placeThreat(w, config.Malware, 10, 10)
		b := placeThreat(w, config.Malware, 100, 10)

		assert.False(t, w.UseSpecial(), "no selection")
		require.True(t, w.SelectDefense(config.Detection))
		assert.False(t, w.UseSpecial(), "no agent")

		require.True(t, w.DeployAgent(config.Detection, 100, 300))
		require.True(t, w.UseSpecial())

		assert.True(t, a.Marked)
		assert.True(t, b.Marked)
		assert.Equal(t, 220.0, s.Energy())
	})

	t.Run("firewall boost", func(t *testing.T) {
		w := newTestWorld(t)
		require.True(t, w.SelectDefense(config.Firewall))
		require.True(t, w.DeployAgent(config.Firewall, 100, 300))
		require.True(t, w.UseSpecial())

		a := w.State().Agents()[0]
		assert.Equal(t, 30, a.Power)
		assert.Equal(t, 180.0, a.Range)
	})

	t.Run("education burst", func(t *testing.T) {
		w := newTestWorld(t)
		s := w.State()
		require.True(t, w.DeployAgent(config.Firewall, 100, 300))
		require.True(t, w.DeployAgent(config.Education, 200, 300))
		require.True(t, w.SelectDefense(config.Education))
		require.True(t, w.UseSpecial())

		assert.Equal(t, 20, s.Agents()[0].Power)
		assert.Equal(t, 13, s.Agents()[1].Power)
		assert.Equal(t, 5, s.KnowledgePoints())
	})

	t.Run("encryption field", func(t *testing.T) {
		w := newTestWorld(t)
		s := w.State()
		s.UpdateSecurityLevel(-10)
		require.True(t, w.SelectDefense(config.Encryption))
		require.True(t, w.DeployAgent(config.Encryption, 100, 300))
		require.True(t, w.UseSpecial())

		assert.Equal(t, 93, s.SecurityLevel())
	})
}

func TestWorld_AgentKillUsesAgentType(t *testing.T) {
	w := newTestWorld(t)
	s := w.State()

	placeThreat(w, config.DDoS, 20, 100)
	require.True(t, w.DeployAgent(config.Firewall, 40, 120))

	for i := 0; i < 200 && len(s.Threats()) > 0; i++ {
		w.Step()
	}
	require.Empty(t, s.Threats())

	assert.Equal(t, 51, s.Frame())
	assert.Equal(t, 40, s.Score(), "deploy plus high reward")
	assert.Equal(t, 15, s.KnowledgePoints())
	assert.Equal(t, 1, s.CorrectAnswers(), "a matching agent kill counts as correct")
	assert.Zero(t, s.WrongAnswers())
	assert.Empty(t, s.Records(), "agent strikes write no record")
}

func TestWorld_BulletLeavesField(t *testing.T) {
	w := newTestWorld(t)
	s := w.State()
	b := placeBullet(w, config.Firewall, 25, 100, -30)

	w.Step()

	assert.Empty(t, s.Bullets())
	assert.False(t, b.Active)
	assert.Equal(t, 1, w.Pools().Bullets.Free())
}

func TestWorld_Pause(t *testing.T) {
	w := newTestWorld(t)
	s := w.State()

	require.True(t, w.TogglePause())
	w.Step()
	w.Step()

	assert.Zero(t, s.Frame())
	assert.Equal(t, 2, w.Scroll(), "cosmetic state keeps moving")
	assert.False(t, w.SelectDefense(config.Firewall))
	assert.Equal(t, "paused", lastRejection(w.Drain()))

	require.True(t, w.TogglePause())
	w.Step()
	assert.Equal(t, 1, s.Frame())
}

func TestWorld_GameOverFreezes(t *testing.T) {
	w := newTestWorld(t)
	s := w.State()
	s.UpdateSecurityLevel(-100)

	w.Step()

	assert.Zero(t, s.Frame())
	assert.False(t, w.SetPaused(true))
	assert.False(t, w.Fire())
	assert.Equal(t, "game over", lastRejection(w.Drain()))
}

func TestWorld_HonorPausesRun(t *testing.T) {
	w := newTestWorld(t)
	s := w.State()
	s.AddScore(ScoreHonor, 100)

	w.Step()

	assert.True(t, w.Paused())
	var honor *Event
	for _, e := range w.Drain() {
		if e.Kind == EventHonorAwarded {
			e := e
			honor = &e
		}
	}
	require.NotNil(t, honor)
	assert.Equal(t, "guardian", honor.Name)
	assert.True(t, honor.Pause)
}

func TestWorld_ResetReleasesEverything(t *testing.T) {
	w := newTestWorld(t)
	pilot := NewAutopilot(5, 0.9)
	for i := 0; i < 400; i++ {
		pilot.Drive(w)
		w.Step()
	}
	runID := w.State().RunID()

	w.Reset(9)

	s := w.State()
	p := w.Pools()
	assert.Zero(t, p.Threats.InUse())
	assert.Zero(t, p.Bullets.InUse())
	assert.Zero(t, p.Agents.InUse())
	assert.Empty(t, s.Threats())
	assert.Empty(t, s.Bullets())
	assert.Empty(t, s.Agents())
	assert.Zero(t, s.Frame())
	assert.Equal(t, 100, s.SecurityLevel())
	assert.False(t, w.Paused())
	assert.Equal(t, int64(9), w.Seed())
	assert.NotEqual(t, runID, s.RunID())
	assert.Empty(t, w.Drain())
}

func TestWorld_ResetReturnsPlacedEntities(t *testing.T) {
	w := newTestWorld(t)
	placeThreat(w, config.Malware, 100, 100)
	placeBullet(w, config.Detection, 18, 100, 400)
	require.True(t, w.DeployAgent(config.Detection, 200, 300))

	w.Reset(2)

	p := w.Pools()
	assert.Zero(t, p.Threats.InUse())
	assert.Equal(t, 1, p.Threats.Free())
	assert.Zero(t, p.Bullets.InUse())
	assert.Equal(t, 1, p.Bullets.Free())
	assert.Zero(t, p.Agents.InUse())
	assert.Equal(t, 1, p.Agents.Free())
}

func TestWorld_Invariants(t *testing.T) {
	w := newTestWorld(t)
	pilot := NewAutopilot(11, 0.8)
	s := w.State()
	p := w.Pools()

	for i := 0; i < 3000; i++ {
		pilot.Drive(w)
		w.Step()
		w.Drain()

		require.GreaterOrEqual(t, s.SecurityLevel(), 0)
		require.LessOrEqual(t, s.SecurityLevel(), 100)
		require.GreaterOrEqual(t, s.Energy(), 0.0)
		require.LessOrEqual(t, s.Energy(), s.MaxEnergy())
		require.GreaterOrEqual(t, s.Score(), 0)

		require.Equal(t, len(s.Threats()), p.Threats.InUse())
		require.Equal(t, len(s.Bullets()), p.Bullets.InUse())
		require.Equal(t, len(s.Agents()), p.Agents.InUse())

		for _, th := range s.Threats() {
			require.True(t, th.Active)
			require.Equal(t, s.CurrentCategory(), th.Category, "one category per wave")
		}
	}
}

func TestWorld_AutopilotScores(t *testing.T) {
	w := newTestWorld(t)
	pilot := NewAutopilot(3, 1.0)

	for i := 0; i < 3000; i++ {
		pilot.Drive(w)
		w.Step()
	}

	s := w.State()
	assert.Positive(t, s.Score())
	assert.Positive(t, s.CorrectAnswers())
}

func TestWorld_Deterministic(t *testing.T) {
	run := func(seed int64) []uint64 {
		cfg := config.DefaultConfig()
		w := NewWorld(cfg, seed)
		pilot := NewAutopilot(7, 0.7)

		var hashes []uint64
		for i := 0; i < 2000; i++ {
			pilot.Drive(w)
			w.Step()
			if i%100 == 0 {
				hashes = append(hashes, w.Snapshot().Hash())
			}
		}
		return hashes
	}

	a := run(42)
	b := run(42)
	require.Equal(t, a, b)

	c := run(43)
	assert.NotEqual(t, a, c)
}

func TestWorld_SnapshotIsCopy(t *testing.T) {
	w := newTestWorld(t)
	placeThreat(w, config.Phishing, 10, 10)
	w.State().RecordDefenseOutcome(config.Phishing, config.Education)

	snap := w.Snapshot()
	snap.KnowledgeRecords[0].Text = "changed"
	snap.Threats[0].Health = 0

	assert.NotEqual(t, "changed", w.State().Records()[0].Text)
	assert.Equal(t, 12, w.State().Threats()[0].Health)
	assert.Equal(t, 1, snap.Level)
	assert.Equal(t, config.Phishing, snap.CurrentThreatCategory)
}

func TestWorld_MismatchedAgentKillNotCounted(t *testing.T) {
	w := newTestWorld(t)
	s := w.State()

	placeThreat(w, config.Phishing, 20, 100)
	require.True(t, w.DeployAgent(config.Firewall, 40, 120))

	for i := 0; i < 300 && len(s.Threats()) > 0; i++ {
		w.Step()
	}
	require.Empty(t, s.Threats())

	assert.Zero(t, s.CorrectAnswers())
	assert.Zero(t, s.WrongAnswers())
	assert.Equal(t, 5, s.KnowledgePoints(), "baseline reward")
}
