package mirror

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/light-arcade/internal/optics"
)

//go:embed levels/*.yaml
var levelFS embed.FS

// ErrLevelNotFound is returned when a level ID is not in the campaign.
var ErrLevelNotFound = errors.New("mirror: level not found")

// Level is a puzzle layout in world units.
type Level struct {
	ID        string
	Name      string
	Width     float64
	Height    float64
	Source    optics.Ray
	Target    optics.Target
	Obstacles []optics.Obstacle
	Budget    int             // Mirrors the player may place; 0 = config default
	Solution  []optics.Mirror // Known solution, may be empty
}

// yamlLevel is the on-disk level format.
type yamlLevel struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Size struct {
		W float64 `yaml:"w"`
		H float64 `yaml:"h"`
	} `yaml:"size"`
	Source struct {
		X     float64 `yaml:"x"`
		Y     float64 `yaml:"y"`
		Angle float64 `yaml:"angle"` // Degrees
	} `yaml:"source"`
	Target struct {
		X      float64 `yaml:"x"`
		Y      float64 `yaml:"y"`
		Radius float64 `yaml:"radius"`
	} `yaml:"target"`
	Budget    int            `yaml:"budget"`
	Obstacles []yamlObstacle `yaml:"obstacles"`
	Solution  []yamlMirror   `yaml:"solution,omitempty"`
}

type yamlObstacle struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type yamlMirror struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Angle  float64 `yaml:"angle"`
	Length float64 `yaml:"length,omitempty"`
}

// ParseLevel decodes a YAML level. Solution mirrors without a length get
// defaultLength. The result is not validated.
func ParseLevel(data []byte, defaultLength float64) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("mirror: parse level: %w", err)
	}

	lvl := Level{
		ID:     yl.ID,
		Name:   yl.Name,
		Width:  yl.Size.W,
		Height: yl.Size.H,
		Source: optics.Ray{
			Origin: optics.Pt(yl.Source.X, yl.Source.Y),
			Angle:  yl.Source.Angle * math.Pi / 180,
		},
		Target: optics.Target{
			Position: optics.Pt(yl.Target.X, yl.Target.Y),
			Radius:   yl.Target.Radius,
		},
		Budget: yl.Budget,
	}

	for _, o := range yl.Obstacles {
		lvl.Obstacles = append(lvl.Obstacles, optics.Obstacle{X: o.X, Y: o.Y, W: o.W, H: o.H})
	}
	for _, m := range yl.Solution {
		length := m.Length
		if length == 0 {
			length = defaultLength
		}
		lvl.Solution = append(lvl.Solution, optics.Mirror{
			Position: optics.Pt(m.X, m.Y),
			Angle:    m.Angle,
			Length:   length,
		})
	}

	return lvl, nil
}

// Validate reports every structural problem with the level at once.
func (l Level) Validate() error {
	var errs []error

	if l.ID == "" {
		errs = append(errs, errors.New("missing id"))
	}
	if l.Width <= 0 || l.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %gx%g must be positive", l.Width, l.Height))
	}
	if !l.inside(l.Source.Origin) {
		errs = append(errs, fmt.Errorf("source (%g,%g) outside the level", l.Source.Origin.X, l.Source.Origin.Y))
	}
	if !l.inside(l.Target.Position) {
		errs = append(errs, fmt.Errorf("target (%g,%g) outside the level", l.Target.Position.X, l.Target.Position.Y))
	}
	if l.Target.Radius <= 0 {
		errs = append(errs, fmt.Errorf("target radius %g must be positive", l.Target.Radius))
	}
	if l.Budget < 0 {
		errs = append(errs, fmt.Errorf("budget %d is negative", l.Budget))
	}

	for i, o := range l.Obstacles {
		if o.W <= 0 || o.H <= 0 {
			errs = append(errs, fmt.Errorf("obstacle %d: size %gx%g must be positive", i, o.W, o.H))
			continue
		}
		if o.Contains(l.Source.Origin) {
			errs = append(errs, fmt.Errorf("obstacle %d covers the source", i))
		}
	}

	for i, m := range l.Solution {
		if m.Length <= 0 {
			errs = append(errs, fmt.Errorf("solution mirror %d: length %g must be positive", i, m.Length))
		}
	}
	if l.Budget > 0 && len(l.Solution) > l.Budget {
		errs = append(errs, fmt.Errorf("solution uses %d mirrors, budget is %d", len(l.Solution), l.Budget))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("mirror: level %q: %w", l.ID, errors.Join(errs...))
}

func (l Level) inside(p optics.Point) bool {
	return p.X >= 0 && p.X <= l.Width && p.Y >= 0 && p.Y <= l.Height
}

// Scene builds the tracer input for the given mirrors.
// Obstacles and mirrors are copied so the caller can keep mutating its own.
func (l Level) Scene(mirrors []optics.Mirror, targetActive bool) optics.Scene {
	target := l.Target
	target.Active = targetActive
	return optics.Scene{
		Source:    l.Source,
		Mirrors:   append([]optics.Mirror(nil), mirrors...),
		Obstacles: append([]optics.Obstacle(nil), l.Obstacles...),
		Target:    target,
	}
}

// TraceOptions returns the tracer settings for this level. A non-positive
// ray length becomes the level diagonal, never shorter than
// optics.DefaultRayLength.
func (l Level) TraceOptions(maxBounces int, rayLength float64) optics.Options {
	if rayLength <= 0 {
		rayLength = max(math.Hypot(l.Width, l.Height), optics.DefaultRayLength)
	}
	return optics.Options{MaxBounces: maxBounces, RayLength: rayLength}
}

// Campaign loads, validates and sorts the embedded levels by ID.
func Campaign(defaultLength float64) ([]Level, error) {
	entries, err := fs.ReadDir(levelFS, "levels")
	if err != nil {
		return nil, fmt.Errorf("mirror: read levels: %w", err)
	}

	var levels []Level
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		data, err := levelFS.ReadFile(path.Join("levels", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("mirror: read %s: %w", e.Name(), err)
		}
		lvl, err := ParseLevel(data, defaultLength)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		if err := lvl.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		levels = append(levels, lvl)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LevelByID returns the campaign level with the given ID.
func LevelByID(id string, defaultLength float64) (Level, error) {
	levels, err := Campaign(defaultLength)
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
}

// LoadLevelFile reads and validates a level from disk.
func LoadLevelFile(file string, defaultLength float64) (Level, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Level{}, fmt.Errorf("mirror: read %s: %w", file, err)
	}
	lvl, err := ParseLevel(data, defaultLength)
	if err != nil {
		return Level{}, fmt.Errorf("%s: %w", file, err)
	}
	if err := lvl.Validate(); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

// LevelNames returns the campaign level names in order.
func LevelNames() []string {
	levels, err := Campaign(DefaultMirrorLength)
	if err != nil {
		return nil
	}
	names := make([]string, len(levels))
	for i, lvl := range levels {
		names[i] = lvl.Name
	}
	return names
}
