package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vovakirdan/cyberguard/internal/config"
)

func TestMatchEngine_DDoSOnlyFirewall(t *testing.T) {
	m := NewMatchEngine(config.DefaultConfig())

	for _, d := range config.AllDefenses {
		o := m.ResolveKill(config.DDoS, d)
		if d == config.Firewall {
			assert.True(t, o.Correct, "firewall must be the high branch")
			assert.Equal(t, config.Reward{Score: 20, Knowledge: 15, Security: 5}, o.Reward)
		} else {
			assert.False(t, o.Correct, "%s must be the baseline branch", d)
			assert.Equal(t, config.Reward{Score: 10, Knowledge: 5, Security: 2}, o.Reward)
		}
	}
}

func TestMatchEngine_CanonicalMapping(t *testing.T) {
	m := NewMatchEngine(config.DefaultConfig())

	tests := []struct {
		category config.Category
		defense  config.Defense
	}{
		{config.Phishing, config.Education},
		{config.Malware, config.Detection},
		{config.DDoS, config.Firewall},
		{config.DataLeak, config.Encryption},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.defense, m.RequiredDefense(tc.category))
		assert.True(t, m.IsMatch(tc.category, tc.defense))

		c, ok := m.CategoryFor(tc.defense)
		assert.True(t, ok)
		assert.Equal(t, tc.category, c)
	}

	assert.False(t, m.IsMatch("spam", config.Firewall))
	assert.Equal(t, config.Defense(""), m.RequiredDefense("spam"))
}

func TestMatchEngine_ReadsConfigTable(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Matchups = map[config.Category]config.Defense{
		config.Phishing: config.Firewall,
		config.Malware:  config.Detection,
		config.DDoS:     config.Education,
		config.DataLeak: config.Encryption,
	}
	m := NewMatchEngine(cfg)

	assert.True(t, m.IsMatch(config.Phishing, config.Firewall))
	assert.False(t, m.IsMatch(config.Phishing, config.Education))

	// The engine keeps its own copy.
	cfg.Matchups[config.Phishing] = config.Detection
	assert.Equal(t, config.Firewall, m.RequiredDefense(config.Phishing))
}
