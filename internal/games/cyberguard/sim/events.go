package sim

import "github.com/vovakirdan/cyberguard/internal/config"

// EventKind identifies a notification produced during a frame.
type EventKind int

const (
	EventThreatSpawned EventKind = iota + 1
	EventThreatDestroyed
	EventThreatLeaked
	EventCommanderHit
	EventDefenseJudged
	EventWaveCleared
	EventComboBonus
	EventKnowledgeUnlocked
	EventHonorAwarded
	EventLevelUp
	EventAgentDeployed
	EventSpecialUsed
	EventActionRejected
	EventGameOver
)

var eventNames = map[EventKind]string{
	EventThreatSpawned:     "threat_spawned",
	EventThreatDestroyed:   "threat_destroyed",
	EventThreatLeaked:      "threat_leaked",
	EventCommanderHit:      "commander_hit",
	EventDefenseJudged:     "defense_judged",
	EventWaveCleared:       "wave_cleared",
	EventComboBonus:        "combo_bonus",
	EventKnowledgeUnlocked: "knowledge_unlocked",
	EventHonorAwarded:      "honor_awarded",
	EventLevelUp:           "level_up",
	EventAgentDeployed:     "agent_deployed",
	EventSpecialUsed:       "special_used",
	EventActionRejected:    "action_rejected",
	EventGameOver:          "game_over",
}

func (k EventKind) String() string {
	if s, ok := eventNames[k]; ok {
		return s
	}
	return "unknown"
}

// Event is a single notification. Fields not relevant to the kind are zero.
type Event struct {
	Kind     EventKind
	Frame    int
	Category config.Category
	Defense  config.Defense
	Correct  bool
	Name     string // Threat name, honor id, knowledge title, level name
	Text     string // Player-facing message
	Value    int    // Score, penalty or level number
	Pause    bool   // The run pauses until the player confirms
}

// EventQueue collects events during a frame until the frame driver drains them.
type EventQueue struct {
	items []Event
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.items = append(q.items, e)
}

// Drain returns all queued events in order and empties the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int { return len(q.items) }
