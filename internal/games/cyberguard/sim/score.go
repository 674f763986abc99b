package sim

import (
	"strconv"

	"github.com/vovakirdan/cyberguard/internal/config"
)

// ScoreAction names a scoring rule.
type ScoreAction string

const (
	ScoreThreatDestroy    ScoreAction = "threat_destroy"
	ScoreCorrectDefense   ScoreAction = "correct_defense"
	ScoreAgentDeploy      ScoreAction = "agent_deploy"
	ScoreSecurityMaintain ScoreAction = "security_maintain"
	ScoreComboBonus       ScoreAction = "combo_bonus"
	ScoreHonor            ScoreAction = "honor"
)

// AddScore applies the score rule for action and returns the points added.
//
//	threat_destroy     fixed table value, extends the combo
//	correct_defense    base, extends the combo
//	agent_deploy       fixed table value
//	security_maintain  security / divisor
//	combo_bonus        combo * factor
//	anything else      base
//
// The result is multiplied by the run's score multiplier.
func (s *State) AddScore(action ScoreAction, base int) int {
	sc := s.cfg.Scoring

	var delta int
	switch action {
	case ScoreThreatDestroy:
		delta = sc.ThreatDestroy
		s.extendCombo()
	case ScoreCorrectDefense:
		delta = base
		s.extendCombo()
	case ScoreAgentDeploy:
		delta = sc.AgentDeploy
	case ScoreSecurityMaintain:
		if sc.SecurityDivisor > 0 {
			delta = s.security / sc.SecurityDivisor
		}
	case ScoreComboBonus:
		delta = s.combo * sc.ComboFactor
	default:
		delta = base
	}

	delta *= s.multiplier
	s.score += delta
	if s.score < 0 {
		delta -= s.score
		s.score = 0
	}
	return delta
}

func (s *State) extendCombo() {
	s.combo++
	if s.combo > s.maxCombo {
		s.maxCombo = s.combo
	}
}

// EvaluateFrame runs the once-per-frame progress checks: the periodic
// security_maintain award, honors and level advancement. It reports whether
// an honor awarded this frame asks for the run to pause.
func (s *State) EvaluateFrame() bool {
	if every := s.cfg.Scoring.MaintainEvery; every > 0 && s.frame > 0 && s.frame%every == 0 {
		s.AddScore(ScoreSecurityMaintain, 0)
	}
	pause := s.evaluateHonors()
	s.evaluateLevel()
	return pause
}

// evaluateHonors awards each honor at most once per run, in config order.
func (s *State) evaluateHonors() bool {
	pause := false
	for _, h := range s.cfg.Honors {
		if s.honors[h.ID] {
			continue
		}
		var metric int
		switch h.Metric {
		case config.MetricScore:
			metric = s.score
		case config.MetricCorrect:
			metric = s.correct
		}
		if metric < h.Threshold {
			continue
		}

		s.honors[h.ID] = true
		if h.Bonus > 0 {
			s.AddScore(ScoreHonor, h.Bonus)
		}
		s.log.Info("honor awarded", "honor", h.ID, "score", s.score)
		s.events.Push(Event{
			Kind:  EventHonorAwarded,
			Frame: s.frame,
			Name:  h.ID,
			Text:  h.Title,
			Value: h.Bonus,
			Pause: h.Pause,
		})
		pause = pause || h.Pause
	}
	return pause
}

func (s *State) evaluateLevel() {
	levels := s.cfg.Levels
	for s.level+1 < len(levels) && s.knowledgePoints >= levels[s.level+1].KnowledgeRequired {
		s.level++
		s.log.Info("level up", "level", s.level+1, "name", levels[s.level].Name)
		s.events.Push(Event{
			Kind:  EventLevelUp,
			Frame: s.frame,
			Name:  levels[s.level].Name,
			Text:  "Level " + strconv.Itoa(s.level+1) + ": " + levels[s.level].Name,
			Value: s.level + 1,
		})
	}
}

// Level returns the 1-based level number, or 0 without configured levels.
func (s *State) Level() int {
	if len(s.cfg.Levels) == 0 {
		return 0
	}
	return s.level + 1
}

// LevelName returns the current level's name, or "" without levels.
func (s *State) LevelName() string {
	if s.Level() == 0 {
		return ""
	}
	return s.cfg.Levels[s.level].Name
}

// Rotation returns the categories the spawner cycles through right now.
// It is the fixed spawner order unless the run is level gated.
func (s *State) Rotation() []config.Category {
	if !s.levelGated || s.Level() == 0 {
		return s.cfg.Spawner.Order
	}
	return s.cfg.Levels[s.level].Categories
}
