package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_Identity(t *testing.T) {
	p := NewPool[*Threat]()

	x := p.Acquire(newThreat)
	require.True(t, p.Release(x))

	y := p.Acquire(newThreat)
	require.Same(t, x, y, "release then acquire must hand back the same instance")
	assert.Equal(t, 1, p.Created())
}

func TestPool_LIFO(t *testing.T) {
	p := NewPool[*Bullet]()

	a := p.Acquire(newBullet)
	b := p.Acquire(newBullet)
	p.Release(a)
	p.Release(b)

	assert.Same(t, b, p.Acquire(newBullet))
	assert.Same(t, a, p.Acquire(newBullet))
	assert.Equal(t, 2, p.Created())
}

func TestPool_ReleaseDeactivates(t *testing.T) {
	p := NewPool[*Agent]()
	a := p.Acquire(newAgent)
	a.Reinitialize(AgentSpec{Type: "firewall", W: 10, H: 10})
	require.True(t, a.Active)

	p.Release(a)

	assert.False(t, a.Active)
	assert.False(t, a.Visible)
}

func TestPool_Misuse(t *testing.T) {
	p := NewPool[*Threat]()

	t.Run("foreign instance", func(t *testing.T) {
		foreign := &Threat{}
		foreign.Active = true
		assert.False(t, p.Release(foreign))
		assert.True(t, foreign.Active, "foreign instance must be left untouched")
		assert.Equal(t, 0, p.Free())
	})

	t.Run("double release", func(t *testing.T) {
		x := p.Acquire(newThreat)
		require.True(t, p.Release(x))
		assert.False(t, p.Release(x))
		assert.Equal(t, 1, p.Free())
	})

	t.Run("nil", func(t *testing.T) {
		assert.False(t, p.Release(nil))
	})
}

func TestPool_NeverInBothLists(t *testing.T) {
	p := NewPool[*Threat]()
	live := make([]*Threat, 0, 8)
	for i := 0; i < 8; i++ {
		live = append(live, p.Acquire(newThreat))
	}
	for i, x := range live {
		if i%2 == 0 {
			p.Release(x)
		}
	}
	require.Equal(t, 4, p.InUse())
	require.Equal(t, 4, p.Free())

	for i := 0; i < 6; i++ {
		p.Acquire(newThreat)
	}
	assert.Equal(t, 10, p.InUse())
	assert.Equal(t, 0, p.Free())
	assert.Equal(t, 10, p.Created())
}

func TestThreat_ReinitializeOverwritesEverything(t *testing.T) {
	th := newThreat()
	th.Reinitialize(ThreatSpec{Category: "ddos", Name: "SYN Flood", Health: 38, Speed: 1, W: 40, H: 40})
	th.TakeDamage(30)
	th.Marked = true
	th.Deactivate()

	th.Reinitialize(ThreatSpec{Category: "phishing", Name: "Fake Bank Site", Health: 12, Speed: 0.9, W: 40, H: 40})

	assert.Equal(t, 12, th.Health)
	assert.Equal(t, 12, th.MaxHealth)
	assert.False(t, th.Marked)
	assert.True(t, th.Active)
	assert.True(t, th.Visible)
	assert.Equal(t, "Fake Bank Site", th.Name)
}
