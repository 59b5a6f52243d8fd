package config

import (
	_ "embed"
)

//go:embed defaults/mirror.yaml
var defaultMirrorYAML []byte

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

//go:embed defaults/gallery.yaml
var defaultGalleryYAML []byte

// DefaultMirrorConfig returns the default mirror puzzle configuration.
func DefaultMirrorConfig() MirrorConfig {
	return MirrorConfig{
		Tracer: MirrorTracer{
			MaxBounces: 10,
			RayLength:  0,
		},
		Mirrors: MirrorPieces{
			Length:       50,
			Budget:       3,
			RotateStep:   5,
			GrabRadius:   25,
			HandleRadius: 15,
		},
		Target: MirrorTarget{
			Radius:     20,
			Frames:     12,
			FrameTicks: 12,
		},
		Random: MirrorRandom{
			MinObstacles: 15,
			MaxObstacles: 30,
			ObstacleSize: 120,
			Clearance:    150,
			GridCols:     4,
			GridRows:     3,
			MaxAngle:     45,
		},
		Scoring: MirrorScoring{
			LevelPoints:   1000,
			MirrorPenalty: 100,
			BouncePenalty: 10,
			MinPoints:     100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				ObstacleIncrease: 6,
				BudgetReduction:  1,
			},
		},
	}
}

// DefaultCatchConfig returns the default catch game configuration.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Plate: CatchPlate{
			Width:       15,
			Speed:       0.8,
			BottomInset: 2,
		},
		Items: CatchItems{
			SpawnInterval:  24,
			HomeworkChance: 0.1,
			BaseSpeed:      0.125,
			SpeedJitter:    0.075,
		},
		Gameplay: CatchGameplay{
			DurationTicks: 3600, // 60 seconds at 60fps
			FreezeTicks:   300,
			PacketPoints:  100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 3600,
				Curve: []CurvePoint{
					{Progress: 0, Level: 0},
					{Progress: 0.5, Level: 0.2},
					{Progress: 1, Level: 1},
				},
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				SpawnReduction:  12,
			},
		},
	}
}

// DefaultGalleryConfig returns the default shooting gallery configuration.
func DefaultGalleryConfig() GalleryConfig {
	return GalleryConfig{
		Cannon: GalleryCannon{
			RotateStep:  0.5,
			MaxAngle:    40,
			BulletSpeed: 0.5,
			Length:      3,
		},
		Targets: GalleryTargets{
			PerLevel:   10,
			Speed:      0.3,
			LevelBoost: 0.01,
			Gravity:    0.02,
			FadeTicks:  100,
		},
		Gameplay: GalleryGameplay{
			Levels:    5,
			Shells:    []int{25, 20, 18, 15, 10},
			HitPoints: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "mirror":
		return defaultMirrorYAML
	case "catch":
		return defaultCatchYAML
	case "gallery":
		return defaultGalleryYAML
	default:
		return nil
	}
}
