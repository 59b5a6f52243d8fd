package main

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/light-arcade/internal/config"
	"github.com/vovakirdan/light-arcade/internal/games/mirror"
	"github.com/vovakirdan/light-arcade/internal/optics"
	"github.com/vovakirdan/light-arcade/internal/render"
)

var (
	flagPNG        string
	flagMaxBounces int
	flagMirrors    []string
	flagSolution   bool
	flagScale      float64
)

// Size of generated layouts traced from the command line
const (
	randomWidth  = 800
	randomHeight = 440
)

var traceCmd = &cobra.Command{
	Use:   "trace <level|file.yaml|random>",
	Short: "Trace a level's beam without the TUI",
	Long: `Trace the light beam through a level and print the path.

The level is a campaign ID (01, 02, ...), a path to a level YAML file,
or "random" for a generated layout (use --seed to reproduce it).
Mirrors are given as x,y,angle[,length] in world units and degrees.

Examples:
  arcade trace 01 --solution
  arcade trace 01 --mirror 400,220,-45
  arcade trace ./my-level.yaml --mirror 200,50,-45 --mirror 200,350,45
  arcade trace random --seed 7 --png random.png`,
	Args: cobra.ExactArgs(1),
	RunE: runTrace,
}

func init() {
	traceCmd.Flags().StringVar(&flagPNG, "png", "", "Save an image of the traced scene to this file")
	traceCmd.Flags().IntVar(&flagMaxBounces, "max-bounces", 0, "Bounce limit (0 = config value)")
	traceCmd.Flags().StringArrayVar(&flagMirrors, "mirror", nil, "Mirror as x,y,angle[,length]; repeatable")
	traceCmd.Flags().BoolVar(&flagSolution, "solution", false, "Add the level's stored solution mirrors")
	traceCmd.Flags().Float64Var(&flagScale, "scale", 1, "Image pixels per world unit")
	traceCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom mirror config YAML")
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadMirror(flagConfig)
	if err != nil {
		log.Warn("using default mirror config", "error", err)
		cfg = config.DefaultMirrorConfig()
	}
	length := cfg.Mirrors.Length

	lvl, err := resolveLevel(args[0], cfg)
	if err != nil {
		return err
	}

	var mirrors []optics.Mirror
	if flagSolution {
		mirrors = append(mirrors, lvl.Solution...)
	}
	for _, s := range flagMirrors {
		m, err := parseMirror(s, length)
		if err != nil {
			return err
		}
		mirrors = append(mirrors, m)
	}

	opts := lvl.TraceOptions(cfg.Tracer.MaxBounces, cfg.Tracer.RayLength)
	if flagMaxBounces > 0 {
		opts.MaxBounces = flagMaxBounces
	}

	scene := lvl.Scene(mirrors, true)
	res := optics.Trace(scene, opts)
	log.Debug("traced", "level", lvl.ID, "mirrors", len(mirrors), "outcome", res.Outcome)

	printTrace(cmd.OutOrStdout(), lvl, mirrors, res)

	if flagPNG != "" {
		view := render.View{Width: lvl.Width, Height: lvl.Height, Scale: flagScale}
		if err := render.SavePNG(flagPNG, view.Scene(scene, res)); err != nil {
			return fmt.Errorf("save image: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nImage saved to %s\n", flagPNG)
	}
	return nil
}

// resolveLevel loads a campaign level, a level file or a random layout.
func resolveLevel(arg string, cfg config.MirrorConfig) (mirror.Level, error) {
	length := cfg.Mirrors.Length

	switch {
	case arg == "random":
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed)) //#nosec G404 -- level layout
		count := mirror.RandomObstacleCount(rng, cfg.Random, randomWidth, randomHeight)
		lvl := mirror.RandomLevel(rng, randomWidth, randomHeight, cfg.Random, count, cfg.Target.Radius)
		lvl.Name = fmt.Sprintf("Random (seed %d)", seed)
		return lvl, nil

	case strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml"):
		return mirror.LoadLevelFile(arg, length)

	default:
		return mirror.LevelByID(arg, length)
	}
}

// parseMirror reads "x,y,angle[,length]".
func parseMirror(s string, defaultLength float64) (optics.Mirror, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return optics.Mirror{}, fmt.Errorf("mirror %q: want x,y,angle[,length]", s)
	}

	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return optics.Mirror{}, fmt.Errorf("mirror %q: %w", s, err)
		}
		vals[i] = v
	}

	m := optics.Mirror{Position: optics.Pt(vals[0], vals[1]), Angle: vals[2], Length: defaultLength}
	if len(vals) == 4 {
		if vals[3] <= 0 {
			return optics.Mirror{}, fmt.Errorf("mirror %q: length must be positive", s)
		}
		m.Length = vals[3]
	}
	return m, nil
}

func printTrace(w io.Writer, lvl mirror.Level, mirrors []optics.Mirror, res optics.Result) {
	fmt.Fprintf(w, "Level %s: %s (%gx%g)\n", lvl.ID, lvl.Name, lvl.Width, lvl.Height)
	fmt.Fprintf(w, "Mirrors: %d\n", len(mirrors))
	for i, m := range mirrors {
		fmt.Fprintf(w, "  %d. (%.1f, %.1f) %.1f°\n", i+1, m.Position.X, m.Position.Y, m.Angle)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Outcome: %s\n", res.Outcome)
	fmt.Fprintf(w, "Bounces: %d\n", res.Bounces)
	fmt.Fprintln(w, "Path:")
	for _, p := range res.Path {
		fmt.Fprintf(w, "  (%.2f, %.2f)\n", p.X, p.Y)
	}
}
