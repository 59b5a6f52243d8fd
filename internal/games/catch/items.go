package catch

import (
	"math/rand"

	"github.com/vovakirdan/light-arcade/internal/config"
	"github.com/vovakirdan/light-arcade/internal/core"
)

// ItemWidth is the width of a falling item in cells.
const ItemWidth = 2

// ItemKind tells a prize from a penalty.
type ItemKind int

const (
	KindPacket   ItemKind = iota // Red packet, worth points
	KindHomework                 // Freezes the plate
)

// Item is a falling object.
type Item struct {
	X, Y  float64 // Top-left corner in cells
	Speed float64 // Rows per tick
	Kind  ItemKind
}

// Rect returns the item's collision rectangle.
func (it Item) Rect() core.Rect {
	return core.NewRect(int(it.X), int(it.Y), ItemWidth, 1)
}

// ItemManager handles spawning, falling and removal of items.
type ItemManager struct {
	items      []Item
	rng        *rand.Rand
	screenW    int
	screenH    int
	top        int // First playfield row
	sinceSpawn int
	cfg        *config.CatchConfig
	difficulty *config.DifficultyManager
}

// NewItemManager creates a new item manager with the given RNG seed.
func NewItemManager(seed int64, screenW, screenH, top int, cfg *config.CatchConfig, diff *config.DifficultyManager) *ItemManager {
	im := &ItemManager{
		items:      make([]Item, 0, 32),
		screenW:    screenW,
		screenH:    screenH,
		top:        top,
		cfg:        cfg,
		difficulty: diff,
	}
	im.Reset(seed)
	return im
}

// Reset clears all items and resets the RNG.
func (im *ItemManager) Reset(seed int64) {
	im.items = im.items[:0]
	im.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness
	im.sinceSpawn = 0
}

// Update spawns and moves items. Items below the screen are dropped.
func (im *ItemManager) Update(level float64) {
	im.sinceSpawn++
	if im.sinceSpawn >= im.difficulty.SpawnInterval(im.cfg.Items.SpawnInterval, level) {
		im.spawn(level)
		im.sinceSpawn = 0
	}

	kept := im.items[:0]
	for _, it := range im.items {
		it.Y += it.Speed
		if int(it.Y) < im.screenH {
			kept = append(kept, it)
		}
	}
	im.items = kept
}

// spawn drops a new item at a random column above the playfield.
func (im *ItemManager) spawn(level float64) {
	kind := KindPacket
	if im.rng.Float64() < im.cfg.Items.HomeworkChance {
		kind = KindHomework
	}

	base := im.cfg.Items.BaseSpeed + im.rng.Float64()*im.cfg.Items.SpeedJitter
	im.items = append(im.items, Item{
		X:     im.rng.Float64() * float64(max(1, im.screenW-ItemWidth)),
		Y:     float64(im.top),
		Speed: im.difficulty.Speed(base, level),
		Kind:  kind,
	})
}

// Collect removes and returns every item touching rect.
func (im *ItemManager) Collect(rect core.Rect) []Item {
	var caught []Item
	kept := im.items[:0]
	for _, it := range im.items {
		if it.Rect().Intersects(rect) {
			caught = append(caught, it)
			continue
		}
		kept = append(kept, it)
	}
	im.items = kept
	return caught
}

// Items returns the current list of items.
func (im *ItemManager) Items() []Item {
	return im.items
}
