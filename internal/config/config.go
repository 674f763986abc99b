// Package config provides YAML-based game configuration loading and
// difficulty management for Cyber Guardians.
package config

// Category identifies a kind of threat.
type Category string

const (
	Phishing Category = "phishing"
	Malware  Category = "malware"
	DDoS     Category = "ddos"
	DataLeak Category = "data_leak"
)

// AllCategories lists every threat category in canonical order.
var AllCategories = []Category{Phishing, Malware, DDoS, DataLeak}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Defense identifies a defensive agent type.
type Defense string

const (
	Firewall   Defense = "firewall"
	Encryption Defense = "encryption"
	Detection  Defense = "detection"
	Education  Defense = "education"
)

// AllDefenses lists every defense type in selection-key order (1..4).
var AllDefenses = []Defense{Firewall, Encryption, Detection, Education}

var defenseTitles = map[Defense]string{
	Firewall:   "Firewall",
	Encryption: "Encryption",
	Detection:  "Detection",
	Education:  "Education",
}

// Title returns the display name of the defense type.
func (d Defense) Title() string {
	if t, ok := defenseTitles[d]; ok {
		return t
	}
	return string(d)
}

// Valid reports whether d is one of the known defense types.
func (d Defense) Valid() bool {
	for _, known := range AllDefenses {
		if d == known {
			return true
		}
	}
	return false
}

// Config contains all configuration for a Cyber Guardians run.
// It is loaded once at startup and treated as immutable afterwards.
type Config struct {
	Field      FieldConfig                  `yaml:"field"`
	Commander  CommanderConfig              `yaml:"commander"`
	Economy    EconomyConfig                `yaml:"economy"`
	Security   SecurityConfig               `yaml:"security"`
	Collision  CollisionConfig              `yaml:"collision"`
	Spawner    SpawnerConfig                `yaml:"spawner"`
	Scoring    ScoringConfig                `yaml:"scoring"`
	Rewards    RewardsConfig                `yaml:"rewards"`
	Matchups   map[Category]Defense         `yaml:"matchups"`
	Threats    map[Category]ThreatConfig    `yaml:"threats"`
	Agents     map[Defense]AgentConfig      `yaml:"agents"`
	Bullets    map[Defense]BulletConfig     `yaml:"bullets"`
	Knowledge  map[Category]KnowledgeConfig `yaml:"knowledge"`
	Honors     []HonorConfig                `yaml:"honors"`
	Levels     []LevelConfig                `yaml:"levels"`
	Difficulty DifficultyConfig             `yaml:"difficulty"`
}

// FieldConfig is the logical play field. Rendering scales it to the terminal.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CommanderConfig defines the player-controlled commander.
type CommanderConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Units per move action
	BottomMargin float64 `yaml:"bottom_margin"` // Distance from the field bottom at start
	ShotCooldown int     `yaml:"shot_cooldown"` // Frames between shots
}

// EconomyConfig defines the shared energy pool and action costs.
type EconomyConfig struct {
	MaxEnergy   float64 `yaml:"max_energy"`
	StartEnergy float64 `yaml:"start_energy"`
	EnergyRegen float64 `yaml:"energy_regen"` // Per frame
	ShotCost    float64 `yaml:"shot_cost"`
	DeployCost  float64 `yaml:"deploy_cost"`
	SpecialCost float64 `yaml:"special_cost"`
	MaxAgents   int     `yaml:"max_agents"`
}

// SecurityConfig defines the security level and terminal conditions.
type SecurityConfig struct {
	Start            int `yaml:"start"`
	Max              int `yaml:"max"`
	CommanderPenalty int `yaml:"commander_penalty"`
	LeakPenalty      int `yaml:"leak_penalty"`
	MaxWrongAnswers  int `yaml:"max_wrong_answers"`
}

// CollisionConfig tunes hit detection.
type CollisionConfig struct {
	Tolerance float64 `yaml:"tolerance"` // Expansion applied to both boxes
}

// SpawnerConfig defines wave timing and category rotation.
type SpawnerConfig struct {
	Interval       int        `yaml:"interval"`        // Frames between spawn attempts
	CategoryPeriod int        `yaml:"category_period"` // Frames per category in the rotation
	WaveSize       int        `yaml:"wave_size"`       // Threats per wave
	SpawnY         float64    `yaml:"spawn_y"`         // Vertical center of new threats
	EdgeMargin     float64    `yaml:"edge_margin"`     // Horizontal spawn margin
	Order          []Category `yaml:"order"`
}

// ScoringConfig defines the score table.
type ScoringConfig struct {
	Multiplier      int `yaml:"multiplier"`
	ThreatDestroy   int `yaml:"threat_destroy"`
	AgentDeploy     int `yaml:"agent_deploy"`
	SecurityDivisor int `yaml:"security_divisor"` // security_maintain = security / divisor
	ComboFactor     int `yaml:"combo_factor"`     // combo_bonus = combo * factor
	ComboEvery      int `yaml:"combo_every"`      // Kills per combo bonus
	MaintainEvery   int `yaml:"maintain_every"`   // Frames per security_maintain award
}

// Reward is applied when a threat is destroyed.
type Reward struct {
	Score     int `yaml:"score"`
	Knowledge int `yaml:"knowledge"`
	Security  int `yaml:"security"`
}

// RewardsConfig holds the matched and unmatched kill rewards.
type RewardsConfig struct {
	High     Reward `yaml:"high"`
	Baseline Reward `yaml:"baseline"`
}

// ThreatConfig is the content table entry for one threat category.
type ThreatConfig struct {
	Label      string   `yaml:"label"`
	Health     int      `yaml:"health"`
	Damage     int      `yaml:"damage"`
	Speed      float64  `yaml:"speed"`
	Difficulty int      `yaml:"difficulty"`
	Width      float64  `yaml:"width"`
	Height     float64  `yaml:"height"`
	Tip        string   `yaml:"tip"`
	Color      string   `yaml:"color"`
	Names      []string `yaml:"names"`
}

// AgentConfig is the content table entry for one defense type.
type AgentConfig struct {
	Label       string  `yaml:"label"`
	Power       int     `yaml:"power"`
	Range       float64 `yaml:"range"`
	Cooldown    int     `yaml:"cooldown"`
	Energy      float64 `yaml:"energy"`
	EnergyRegen float64 `yaml:"energy_regen"`
	StrikeCost  float64 `yaml:"strike_cost"`
	Special     string  `yaml:"special"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Color       string  `yaml:"color"`
}

// BulletConfig defines the projectile fired for one defense type.
type BulletConfig struct {
	Damage int     `yaml:"damage"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// KnowledgeConfig is a journal entry unlocked by knowledge points.
type KnowledgeConfig struct {
	Title          string   `yaml:"title"`
	PointsRequired int      `yaml:"points_required"`
	Lines          []string `yaml:"lines"`
}

// Honor metrics.
const (
	MetricScore   = "score"
	MetricCorrect = "correct"
)

// HonorConfig is a one-shot achievement.
type HonorConfig struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	Metric    string `yaml:"metric"` // "score" or "correct"
	Threshold int    `yaml:"threshold"`
	Bonus     int    `yaml:"bonus"` // Score awarded when earned
	Pause     bool   `yaml:"pause"` // Pause the run with a banner
}

// LevelConfig is one step of the level progression.
type LevelConfig struct {
	Name              string     `yaml:"name"`
	KnowledgeRequired int        `yaml:"knowledge_required"`
	Categories        []Category `yaml:"categories"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to threat speed at max difficulty
	HealthBonus     int     `yaml:"health_bonus"`     // Health added to threats at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Presets lists the selectable difficulty presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
