// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// MirrorConfig contains all configuration for the mirror puzzle.
type MirrorConfig struct {
	Tracer     MirrorTracer     `yaml:"tracer"`
	Mirrors    MirrorPieces     `yaml:"mirrors"`
	Target     MirrorTarget     `yaml:"target"`
	Random     MirrorRandom     `yaml:"random"`
	Scoring    MirrorScoring    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MirrorTracer bounds the ray trace run every tick.
type MirrorTracer struct {
	MaxBounces int     `yaml:"max_bounces"`
	RayLength  float64 `yaml:"ray_length"` // 0 = level diagonal, never below 1000
}

// MirrorPieces defines the mirrors the player can place.
type MirrorPieces struct {
	Length       float64 `yaml:"length"`
	Budget       int     `yaml:"budget"`
	RotateStep   float64 `yaml:"rotate_step"`   // Degrees per key press or wheel notch
	GrabRadius   float64 `yaml:"grab_radius"`   // World units around the mirror centre
	HandleRadius float64 `yaml:"handle_radius"` // World units around the rotation handle
}

// MirrorTarget defines the target appearance and animation.
type MirrorTarget struct {
	Radius     float64 `yaml:"radius"`
	Frames     int     `yaml:"frames"`
	FrameTicks int     `yaml:"frame_ticks"`
}

// MirrorRandom defines the random level generator.
type MirrorRandom struct {
	MinObstacles int     `yaml:"min_obstacles"`
	MaxObstacles int     `yaml:"max_obstacles"`
	ObstacleSize float64 `yaml:"obstacle_size"`
	Clearance    float64 `yaml:"clearance"` // Minimum distance from source and target
	GridCols     int     `yaml:"grid_cols"`
	GridRows     int     `yaml:"grid_rows"`
	MaxAngle     float64 `yaml:"max_angle"` // Source angle drawn from [-max, max] degrees
}

// MirrorScoring defines how a solved level is scored.
type MirrorScoring struct {
	LevelPoints   int `yaml:"level_points"`
	MirrorPenalty int `yaml:"mirror_penalty"`
	BouncePenalty int `yaml:"bounce_penalty"`
	MinPoints     int `yaml:"min_points"`
}

// CatchConfig contains all configuration for the catch game.
type CatchConfig struct {
	Plate      CatchPlate       `yaml:"plate"`
	Items      CatchItems       `yaml:"items"`
	Gameplay   CatchGameplay    `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CatchPlate defines the player's plate.
type CatchPlate struct {
	Width       int     `yaml:"width"`
	Speed       float64 `yaml:"speed"` // Cells per tick
	BottomInset int     `yaml:"bottom_inset"`
}

// CatchItems defines falling items.
type CatchItems struct {
	SpawnInterval  int     `yaml:"spawn_interval"` // Ticks between spawns
	HomeworkChance float64 `yaml:"homework_chance"`
	BaseSpeed      float64 `yaml:"base_speed"`   // Rows per tick
	SpeedJitter    float64 `yaml:"speed_jitter"` // Random extra speed
}

// CatchGameplay defines round rules.
type CatchGameplay struct {
	DurationTicks int `yaml:"duration_ticks"`
	FreezeTicks   int `yaml:"freeze_ticks"`
	PacketPoints  int `yaml:"packet_points"`
}

// GalleryConfig contains all configuration for the shooting gallery.
type GalleryConfig struct {
	Cannon     GalleryCannon    `yaml:"cannon"`
	Targets    GalleryTargets   `yaml:"targets"`
	Gameplay   GalleryGameplay  `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GalleryCannon defines the turret.
type GalleryCannon struct {
	RotateStep  float64 `yaml:"rotate_step"` // Degrees per tick while held
	MaxAngle    float64 `yaml:"max_angle"`   // Degrees either side of vertical
	BulletSpeed float64 `yaml:"bullet_speed"`
	Length      float64 `yaml:"length"`
}

// GalleryTargets defines the flying targets.
type GalleryTargets struct {
	PerLevel   int     `yaml:"per_level"`
	Speed      float64 `yaml:"speed"`       // Max random speed component
	LevelBoost float64 `yaml:"level_boost"` // Extra speed per level
	Gravity    float64 `yaml:"gravity"`     // Fall acceleration after a hit
	FadeTicks  int     `yaml:"fade_ticks"`  // Ticks a hit target keeps falling
}

// GalleryGameplay defines level rules.
type GalleryGameplay struct {
	Levels    int   `yaml:"levels"`
	Shells    []int `yaml:"shells"` // Shells granted at the start of each level
	HitPoints int   `yaml:"hit_points"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
// Curve maps normalized progress (0..1) to a difficulty offset (0..1);
// an empty curve is linear.
type ProgressionConfig struct {
	Type  string       `yaml:"type"`   // "score", "time", "level" or "none"
	MaxAt int          `yaml:"max_at"` // Score/ticks/level at which max difficulty is reached
	Curve []CurvePoint `yaml:"curve"`
}

// CurvePoint is one knot of a piecewise-linear difficulty curve.
type CurvePoint struct {
	Progress float64 `yaml:"progress"`
	Level    float64 `yaml:"level"`
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	SpawnReduction   int     `yaml:"spawn_reduction"`   // Spawn interval reduction at max difficulty
	ObstacleIncrease int     `yaml:"obstacle_increase"` // Extra random obstacles at max difficulty
	BudgetReduction  int     `yaml:"budget_reduction"`  // Mirrors removed from the budget at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies a difficulty config based on a preset.
func ApplyPreset(cfg *DifficultyConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Enabled = false
		return
	}
	cfg.Enabled = true
	cfg.InitialLevel = InitialLevelForPreset(preset)
}
