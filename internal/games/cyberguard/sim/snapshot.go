package sim

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/vovakirdan/cyberguard/internal/config"
	"github.com/vovakirdan/cyberguard/internal/core"
)

// ThreatView is the render-facing copy of a threat.
type ThreatView struct {
	Box       core.Box
	Category  config.Category
	Name      string
	Label     string
	Health    int
	MaxHealth int
	Required  config.Defense
	Marked    bool
}

// BulletView is the render-facing copy of a bullet.
type BulletView struct {
	Box     core.Box
	Defense config.Defense
}

// AgentView is the render-facing copy of an agent.
type AgentView struct {
	Box         core.Box
	Type        config.Defense
	Label       string
	Power       int
	Range       float64
	Cooldown    int
	MaxCooldown int
	Energy      float64
	MaxEnergy   float64
}

// Snapshot is a read-only copy of everything a renderer or test needs.
type Snapshot struct {
	RunID                 string
	Frame                 int
	Score                 int
	Combo                 int
	MaxCombo              int
	SecurityLevel         int
	Energy                float64
	MaxEnergy             float64
	KnowledgePoints       int
	KnowledgeRecords      []KnowledgeRecord
	WrongAnswerCount      int
	CorrectAnswerCount    int
	CurrentThreatCategory config.Category
	Selected              config.Defense
	Level                 int
	LevelName             string
	Honors                []string
	Unlocked              []config.Category
	GameOver              bool
	Reason                string
	Paused                bool
	Phase                 SpawnPhase

	Commander    core.Box
	ShotCooldown int
	Threats      []ThreatView
	Bullets      []BulletView
	Agents       []AgentView
}

// Snapshot copies the current world state.
func (w *World) Snapshot() Snapshot {
	s := w.state
	snap := Snapshot{
		RunID:                 s.runID,
		Frame:                 s.frame,
		Score:                 s.score,
		Combo:                 s.combo,
		MaxCombo:              s.maxCombo,
		SecurityLevel:         s.security,
		Energy:                s.energy,
		MaxEnergy:             s.maxEnergy,
		KnowledgePoints:       s.knowledgePoints,
		KnowledgeRecords:      append([]KnowledgeRecord(nil), s.records...),
		WrongAnswerCount:      s.wrong,
		CorrectAnswerCount:    s.correct,
		CurrentThreatCategory: s.currentCategory,
		Selected:              s.selected,
		Level:                 s.Level(),
		LevelName:             s.LevelName(),
		GameOver:              s.gameOver,
		Reason:                s.reason,
		Paused:                w.paused,
		Phase:                 w.spawner.Phase(),
		Commander:             w.commander.Box(),
		ShotCooldown:          w.commander.ShotCooldown,
	}

	for _, h := range w.cfg.Honors {
		if s.honors[h.ID] {
			snap.Honors = append(snap.Honors, h.ID)
		}
	}
	for _, c := range config.AllCategories {
		if s.unlocked[c] {
			snap.Unlocked = append(snap.Unlocked, c)
		}
	}

	snap.Threats = make([]ThreatView, 0, len(s.threats))
	for _, t := range s.threats {
		snap.Threats = append(snap.Threats, ThreatView{
			Box:       t.Box(),
			Category:  t.Category,
			Name:      t.Name,
			Label:     t.Label,
			Health:    t.Health,
			MaxHealth: t.MaxHealth,
			Required:  t.RequiredDefense,
			Marked:    t.Marked,
		})
	}
	snap.Bullets = make([]BulletView, 0, len(s.bullets))
	for _, b := range s.bullets {
		snap.Bullets = append(snap.Bullets, BulletView{Box: b.Box(), Defense: b.Defense})
	}
	snap.Agents = make([]AgentView, 0, len(s.agents))
	for _, a := range s.agents {
		snap.Agents = append(snap.Agents, AgentView{
			Box:         a.Box(),
			Type:        a.Type,
			Label:       a.Label,
			Power:       a.Power,
			Range:       a.Range,
			Cooldown:    a.Cooldown,
			MaxCooldown: a.MaxCooldown,
			Energy:      a.Energy,
			MaxEnergy:   a.MaxEnergy,
		})
	}
	return snap
}

// Hash fingerprints the gameplay-relevant part of the snapshot.
// The run id and record timestamps are excluded so two runs with the same
// seed and inputs hash equal.
func (snap Snapshot) Hash() uint64 {
	h := hasher{d: xxhash.New()}

	h.putInt(snap.Frame)
	h.putInt(snap.Score)
	h.putInt(snap.Combo)
	h.putInt(snap.MaxCombo)
	h.putInt(snap.SecurityLevel)
	h.putFloat(snap.Energy)
	h.putInt(snap.KnowledgePoints)
	h.putInt(snap.WrongAnswerCount)
	h.putInt(snap.CorrectAnswerCount)
	h.putStr(string(snap.CurrentThreatCategory))
	h.putStr(string(snap.Selected))
	h.putInt(snap.Level)
	h.putBool(snap.GameOver)
	h.putBox(snap.Commander)

	for _, r := range snap.KnowledgeRecords {
		h.putInt(r.ID)
		h.putInt(r.Frame)
		h.putStr(string(r.Kind))
		h.putStr(r.ThreatName)
		h.putStr(string(r.Defense))
	}
	for _, id := range snap.Honors {
		h.putStr(id)
	}
	for _, t := range snap.Threats {
		h.putBox(t.Box)
		h.putStr(t.Name)
		h.putInt(t.Health)
		h.putBool(t.Marked)
	}
	for _, b := range snap.Bullets {
		h.putBox(b.Box)
		h.putStr(string(b.Defense))
	}
	for _, a := range snap.Agents {
		h.putBox(a.Box)
		h.putStr(string(a.Type))
		h.putInt(a.Power)
		h.putInt(a.Cooldown)
		h.putFloat(a.Energy)
	}
	return h.d.Sum64()
}

type hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func (h *hasher) putInt(v int) {
	binary.LittleEndian.PutUint64(h.buf[:], uint64(v))
	_, _ = h.d.Write(h.buf[:])
}

func (h *hasher) putFloat(v float64) {
	binary.LittleEndian.PutUint64(h.buf[:], math.Float64bits(v))
	_, _ = h.d.Write(h.buf[:])
}

func (h *hasher) putBool(v bool) {
	if v {
		h.putInt(1)
	} else {
		h.putInt(0)
	}
}

func (h *hasher) putStr(s string) {
	h.putInt(len(s))
	_, _ = h.d.WriteString(s)
}

func (h *hasher) putBox(b core.Box) {
	h.putFloat(b.X)
	h.putFloat(b.Y)
	h.putFloat(b.W)
	h.putFloat(b.H)
}
