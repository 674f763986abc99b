package sim

import "github.com/vovakirdan/cyberguard/internal/config"

// Outcome is the judgement of a defense used against a threat.
type Outcome struct {
	Category config.Category
	Defense  config.Defense
	Correct  bool
	Reward   config.Reward
}

// MatchEngine owns the category to defense mapping and the kill rewards.
// Every component that needs to know the correct defense asks it.
type MatchEngine struct {
	matchups map[config.Category]config.Defense
	high     config.Reward
	baseline config.Reward
}

// NewMatchEngine builds the engine from a validated config.
func NewMatchEngine(cfg config.Config) *MatchEngine {
	m := make(map[config.Category]config.Defense, len(cfg.Matchups))
	for c, d := range cfg.Matchups {
		m[c] = d
	}
	return &MatchEngine{
		matchups: m,
		high:     cfg.Rewards.High,
		baseline: cfg.Rewards.Baseline,
	}
}

// RequiredDefense returns the defense that counters c, or "" if c is unknown.
func (m *MatchEngine) RequiredDefense(c config.Category) config.Defense {
	return m.matchups[c]
}

// CategoryFor returns the category that d counters.
func (m *MatchEngine) CategoryFor(d config.Defense) (config.Category, bool) {
	for c, want := range m.matchups {
		if want == d {
			return c, true
		}
	}
	return "", false
}

// IsMatch reports whether d is the correct defense against c.
func (m *MatchEngine) IsMatch(c config.Category, d config.Defense) bool {
	want, ok := m.matchups[c]
	return ok && want == d
}

// ResolveKill judges the killing defense. A matching defense earns the high
// reward, anything else the baseline reward. There is no penalty branch.
func (m *MatchEngine) ResolveKill(c config.Category, d config.Defense) Outcome {
	o := Outcome{Category: c, Defense: d, Correct: m.IsMatch(c, d)}
	if o.Correct {
		o.Reward = m.high
	} else {
		o.Reward = m.baseline
	}
	return o
}
