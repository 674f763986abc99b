package config

import (
	_ "embed"
)

//go:embed defaults/cyberguard.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/cyberguard.yaml and is used when the embedded
// document cannot be decoded.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{Width: 360, Height: 640},
		Commander: CommanderConfig{
			Width:        40,
			Height:       40,
			Speed:        8,
			BottomMargin: 100,
			ShotCooldown: 10,
		},
		Economy: EconomyConfig{
			MaxEnergy:   300,
			StartEnergy: 300,
			EnergyRegen: 1.0,
			ShotCost:    3,
			DeployCost:  50,
			SpecialCost: 30,
			MaxAgents:   4,
		},
		Security: SecurityConfig{
			Start:            100,
			Max:              100,
			CommanderPenalty: 10,
			LeakPenalty:      2,
			MaxWrongAnswers:  10,
		},
		Collision: CollisionConfig{Tolerance: 2},
		Spawner: SpawnerConfig{
			Interval:       15,
			CategoryPeriod: 180,
			WaveSize:       1,
			SpawnY:         -50,
			EdgeMargin:     30,
			Order:          []Category{Phishing, Malware, DDoS, DataLeak},
		},
		Scoring: ScoringConfig{
			Multiplier:      1,
			ThreatDestroy:   10,
			AgentDeploy:     20,
			SecurityDivisor: 10,
			ComboFactor:     5,
			ComboEvery:      5,
			MaintainEvery:   600,
		},
		Rewards: RewardsConfig{
			High:     Reward{Score: 20, Knowledge: 15, Security: 5},
			Baseline: Reward{Score: 10, Knowledge: 5, Security: 2},
		},
		Matchups: map[Category]Defense{
			Phishing: Education,
			Malware:  Detection,
			DDoS:     Firewall,
			DataLeak: Encryption,
		},
		Threats: map[Category]ThreatConfig{
			Phishing: {
				Label: "Phishing", Health: 12, Damage: 5, Speed: 0.9, Difficulty: 1,
				Width: 40, Height: 40, Color: "red",
				Tip:   "Check the sender address and never open links from unknown sources.",
				Names: []string{"Phishing Email", "Fake Bank Site", "Spoofed Login Page", "Malicious Link", "Social Engineering"},
			},
			Malware: {
				Label: "Malware", Health: 25, Damage: 8, Speed: 0.75, Difficulty: 2,
				Width: 40, Height: 40, Color: "magenta",
				Tip:   "Only install software from trusted sources and keep it updated.",
				Names: []string{"Ransomware", "Trojan Horse", "Worm", "Spyware", "Keylogger"},
			},
			DDoS: {
				Label: "DDoS", Health: 38, Damage: 10, Speed: 1.05, Difficulty: 3,
				Width: 40, Height: 40, Color: "orange",
				Tip:   "Filter traffic at the edge and spread load across a CDN.",
				Names: []string{"SYN Flood", "UDP Flood", "HTTP Flood", "Botnet Swarm", "Amplification Attack"},
			},
			DataLeak: {
				Label: "Data Leak", Health: 30, Damage: 15, Speed: 0.6, Difficulty: 2,
				Width: 40, Height: 40, Color: "yellow",
				Tip:   "Encrypt sensitive data at rest and in transit.",
				Names: []string{"Database Dump", "Exposed Backup", "Insider Exfiltration", "Misconfigured Bucket", "Credential Leak"},
			},
		},
		Agents: map[Defense]AgentConfig{
			Firewall: {
				Label: "Firewall Guardian", Power: 15, Range: 120, Cooldown: 25,
				Energy: 100, EnergyRegen: 0.5, StrikeCost: 10, Special: "firewall_boost",
				Width: 30, Height: 30, Color: "bright_red",
			},
			Encryption: {
				Label: "Encryption Keeper", Power: 12, Range: 100, Cooldown: 30,
				Energy: 100, EnergyRegen: 0.5, StrikeCost: 10, Special: "encryption_field",
				Width: 30, Height: 30, Color: "bright_cyan",
			},
			Detection: {
				Label: "Threat Hunter", Power: 10, Range: 150, Cooldown: 35,
				Energy: 100, EnergyRegen: 0.5, StrikeCost: 10, Special: "threat_scan",
				Width: 30, Height: 30, Color: "bright_blue",
			},
			Education: {
				Label: "Awareness Coach", Power: 8, Range: 80, Cooldown: 40,
				Energy: 100, EnergyRegen: 0.5, StrikeCost: 10, Special: "education_burst",
				Width: 30, Height: 30, Color: "bright_green",
			},
		},
		Bullets: map[Defense]BulletConfig{
			Firewall:   {Damage: 25, Width: 20, Height: 35, Speed: 12},
			Encryption: {Damage: 20, Width: 18, Height: 32, Speed: 12},
			Detection:  {Damage: 18, Width: 16, Height: 30, Speed: 12},
			Education:  {Damage: 15, Width: 14, Height: 28, Speed: 12},
		},
		Knowledge: map[Category]KnowledgeConfig{
			Phishing: {
				Title:          "Spotting Phishing",
				PointsRequired: 50,
				Lines: []string{
					"Verify the sender before trusting a message.",
					"Hover over links to inspect the real destination.",
					"Legitimate services never ask for passwords by email.",
				},
			},
			Malware: {
				Title:          "Malware Defense",
				PointsRequired: 100,
				Lines: []string{
					"Keep systems and antivirus signatures up to date.",
					"Do not run attachments from unknown senders.",
					"Back up important files regularly.",
				},
			},
			DDoS: {
				Title:          "Surviving DDoS",
				PointsRequired: 200,
				Lines: []string{
					"Rate limit and filter traffic at the network edge.",
					"Use a CDN and load balancing to absorb floods.",
					"Have an incident response plan ready.",
				},
			},
			DataLeak: {
				Title:          "Preventing Data Leaks",
				PointsRequired: 300,
				Lines: []string{
					"Encrypt sensitive data at rest and in transit.",
					"Grant the least privilege each role needs.",
					"Audit who accesses confidential records.",
				},
			},
		},
		Honors: []HonorConfig{
			{ID: "guardian", Title: "Network Guardian", Metric: MetricScore, Threshold: 100, Pause: true},
			{ID: "master", Title: "Security Master", Metric: MetricScore, Threshold: 200, Pause: true},
			{ID: "agent_guard", Title: "Agent Guard", Metric: MetricCorrect, Threshold: 15, Bonus: 100},
		},
		Levels: []LevelConfig{
			{Name: "Basic Training", KnowledgeRequired: 0, Categories: []Category{Phishing}},
			{Name: "Malware Watch", KnowledgeRequired: 50, Categories: []Category{Phishing, Malware}},
			{Name: "Flood Control", KnowledgeRequired: 100, Categories: []Category{DDoS, Malware}},
			{Name: "Data Vault", KnowledgeRequired: 200, Categories: []Category{DataLeak, Phishing, Malware}},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				HealthBonus:     10,
			},
		},
	}
}
