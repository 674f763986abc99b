package sim

import (
	"time"

	"github.com/vovakirdan/cyberguard/internal/config"
)

// RecordKind classifies a knowledge record.
type RecordKind string

const (
	RecordCorrect RecordKind = "correct"
	RecordWrong   RecordKind = "wrong"
	RecordInfo    RecordKind = "info"
)

// KnowledgeRecord is one entry of the append-only learning log.
type KnowledgeRecord struct {
	ID             int
	Frame          int
	Timestamp      time.Time
	Kind           RecordKind
	Category       config.Category
	ThreatName     string
	Defense        config.Defense // Defense the player used, empty for info records
	CorrectDefense config.Defense
	Text           string
}

// RecordDefenseOutcome judges chosen against category c, appends a correct or
// wrong record and bumps the matching counter. It reports whether the choice
// was correct. Reaching the wrong-answer limit ends the run.
func (s *State) RecordDefenseOutcome(c config.Category, chosen config.Defense) bool {
	return s.recordOutcome(c, chosen, s.cfg.Threats[c].Label)
}

func (s *State) recordOutcome(c config.Category, chosen config.Defense, threatName string) bool {
	want := s.matcher.RequiredDefense(c)
	correct := s.matcher.IsMatch(c, chosen)

	rec := KnowledgeRecord{
		Category:       c,
		ThreatName:     threatName,
		Defense:        chosen,
		CorrectDefense: want,
	}
	if correct {
		rec.Kind = RecordCorrect
		rec.Text = chosen.Title() + " stops " + threatName + "."
		s.correct++
	} else {
		rec.Kind = RecordWrong
		rec.Text = chosen.Title() + " is weak against " + threatName + ". Use " + want.Title() + "."
		s.wrong++
	}
	s.appendRecord(rec)

	s.events.Push(Event{
		Kind:     EventDefenseJudged,
		Frame:    s.frame,
		Category: c,
		Defense:  chosen,
		Correct:  correct,
		Name:     threatName,
		Text:     rec.Text,
	})

	if limit := s.cfg.Security.MaxWrongAnswers; limit > 0 && s.wrong >= limit {
		s.endRun("too many wrong defenses")
	}
	return correct
}

// RecordThreatEncounter appends an info record the first time category c
// appears in a run. Later encounters do nothing.
func (s *State) RecordThreatEncounter(c config.Category) bool {
	if s.encountered[c] {
		return false
	}
	s.encountered[c] = true
	t := s.cfg.Threats[c]
	s.appendRecord(KnowledgeRecord{
		Kind:           RecordInfo,
		Category:       c,
		ThreatName:     t.Label,
		CorrectDefense: s.matcher.RequiredDefense(c),
		Text:           t.Tip,
	})
	return true
}

// AddKnowledgePoints adds n points and unlocks every journal entry whose
// threshold is now met.
func (s *State) AddKnowledgePoints(n int) {
	if n <= 0 {
		return
	}
	s.knowledgePoints += n
	for _, c := range config.AllCategories {
		k, ok := s.cfg.Knowledge[c]
		if !ok || s.unlocked[c] || s.knowledgePoints < k.PointsRequired {
			continue
		}
		s.unlocked[c] = true
		s.log.Info("knowledge unlocked", "title", k.Title, "points", s.knowledgePoints)
		s.events.Push(Event{
			Kind:     EventKnowledgeUnlocked,
			Frame:    s.frame,
			Category: c,
			Name:     k.Title,
			Text:     "New knowledge: " + k.Title,
		})
	}
}

// Unlocked reports whether the journal entry for c is unlocked.
func (s *State) Unlocked(c config.Category) bool { return s.unlocked[c] }

func (s *State) appendRecord(rec KnowledgeRecord) {
	s.nextRecordID++
	rec.ID = s.nextRecordID
	rec.Frame = s.frame
	rec.Timestamp = s.clock()
	s.records = append(s.records, rec)
}
