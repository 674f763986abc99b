package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMatchups is returned when the matchup table is not a
	// one-to-one mapping from every category to a distinct defense.
	ErrInvalidMatchups = errors.New("matchups must map each category to a distinct defense")

	// ErrUnknownCategory is returned when a table references a category
	// outside phishing, malware, ddos and data_leak.
	ErrUnknownCategory = errors.New("unknown threat category")

	// ErrUnknownDefense is returned when a table references an unknown defense type.
	ErrUnknownDefense = errors.New("unknown defense type")
)

// Validate checks that cfg is internally consistent.
func Validate(cfg Config) error {
	if err := validateMatchups(cfg.Matchups); err != nil {
		return err
	}

	if cfg.Field.Width <= 0 || cfg.Field.Height <= 0 {
		return fmt.Errorf("field size must be positive, got %vx%v", cfg.Field.Width, cfg.Field.Height)
	}
	if cfg.Economy.MaxEnergy <= 0 {
		return fmt.Errorf("economy.max_energy must be positive, got %v", cfg.Economy.MaxEnergy)
	}
	if cfg.Security.Max <= 0 || cfg.Security.Start > cfg.Security.Max {
		return fmt.Errorf("security.start %d must be within (0, %d]", cfg.Security.Start, cfg.Security.Max)
	}
	if cfg.Spawner.Interval <= 0 || cfg.Spawner.CategoryPeriod <= 0 || cfg.Spawner.WaveSize <= 0 {
		return errors.New("spawner interval, category_period and wave_size must be positive")
	}
	if len(cfg.Spawner.Order) == 0 {
		return errors.New("spawner.order must not be empty")
	}
	for _, c := range cfg.Spawner.Order {
		if !c.Valid() {
			return fmt.Errorf("spawner.order: %w %q", ErrUnknownCategory, c)
		}
	}

	for _, c := range AllCategories {
		t, ok := cfg.Threats[c]
		if !ok {
			return fmt.Errorf("threats: missing %q", c)
		}
		if t.Health <= 0 || t.Width <= 0 || t.Height <= 0 {
			return fmt.Errorf("threats.%s: health and size must be positive", c)
		}
	}
	for c := range cfg.Threats {
		if !c.Valid() {
			return fmt.Errorf("threats: %w %q", ErrUnknownCategory, c)
		}
	}
	for c := range cfg.Knowledge {
		if !c.Valid() {
			return fmt.Errorf("knowledge: %w %q", ErrUnknownCategory, c)
		}
	}

	for _, d := range AllDefenses {
		if _, ok := cfg.Agents[d]; !ok {
			return fmt.Errorf("agents: missing %q", d)
		}
		b, ok := cfg.Bullets[d]
		if !ok {
			return fmt.Errorf("bullets: missing %q", d)
		}
		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("bullets.%s: size must be positive", d)
		}
	}
	for d := range cfg.Agents {
		if !d.Valid() {
			return fmt.Errorf("agents: %w %q", ErrUnknownDefense, d)
		}
	}

	for i, h := range cfg.Honors {
		if h.Metric != MetricScore && h.Metric != MetricCorrect {
			return fmt.Errorf("honors[%d]: unknown metric %q", i, h.Metric)
		}
	}

	prev := -1
	for i, l := range cfg.Levels {
		if l.KnowledgeRequired < prev {
			return fmt.Errorf("levels[%d]: knowledge_required must not decrease", i)
		}
		prev = l.KnowledgeRequired
		if len(l.Categories) == 0 {
			return fmt.Errorf("levels[%d]: no categories", i)
		}
		for _, c := range l.Categories {
			if !c.Valid() {
				return fmt.Errorf("levels[%d]: %w %q", i, ErrUnknownCategory, c)
			}
		}
	}

	return nil
}

func validateMatchups(m map[Category]Defense) error {
	if len(m) != len(AllCategories) {
		return fmt.Errorf("%w: got %d entries", ErrInvalidMatchups, len(m))
	}
	seen := make(map[Defense]Category, len(m))
	for c, d := range m {
		if !c.Valid() {
			return fmt.Errorf("%w: %w %q", ErrInvalidMatchups, ErrUnknownCategory, c)
		}
		if !d.Valid() {
			return fmt.Errorf("%w: %w %q", ErrInvalidMatchups, ErrUnknownDefense, d)
		}
		if other, dup := seen[d]; dup {
			return fmt.Errorf("%w: %q used by both %q and %q", ErrInvalidMatchups, d, other, c)
		}
		seen[d] = c
	}
	return nil
}
