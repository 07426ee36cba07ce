package jump

import (
	"math/rand"

	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
)

// Platform is a rising ledge the player bounces off.
type Platform struct {
	Rect core.Rect
}

// PlatformManager handles spawning, rising and removal of platforms.
type PlatformManager struct {
	platforms []Platform
	rng       *rand.Rand
	area      core.Rect
	cfg       config.JumpPlatforms
	timer     int // Ticks since the last spawn
	running   bool
}

// NewPlatformManager creates a platform manager with the given RNG seed.
func NewPlatformManager(seed int64, area core.Rect, cfg config.JumpPlatforms) *PlatformManager {
	pm := &PlatformManager{
		platforms: make([]Platform, 0, 8),
		area:      area,
		cfg:       cfg,
	}
	pm.Reset(seed)
	return pm
}

// Reset clears all platforms, reseeds the RNG and restarts spawning.
func (pm *PlatformManager) Reset(seed int64) {
	pm.platforms = pm.platforms[:0]
	pm.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness
	pm.timer = 0
	pm.running = true
}

// Stop clears all platforms and halts spawning until Start.
func (pm *PlatformManager) Stop() {
	pm.platforms = pm.platforms[:0]
	pm.running = false
}

// Start resumes spawning with a fresh timer.
func (pm *PlatformManager) Start() {
	pm.timer = 0
	pm.running = true
}

// Platforms returns the current platforms, bottom-most spawned last.
func (pm *PlatformManager) Platforms() []Platform {
	return pm.platforms
}

// Add places a platform directly.
func (pm *PlatformManager) Add(r core.Rect) {
	pm.platforms = append(pm.platforms, Platform{Rect: r})
}

// Remove deletes the platform at index i.
func (pm *PlatformManager) Remove(i int) {
	pm.platforms = append(pm.platforms[:i], pm.platforms[i+1:]...)
}

// Hit returns the index of the first platform intersecting r, or -1.
func (pm *PlatformManager) Hit(r core.Rect) int {
	for i, p := range pm.platforms {
		if p.Rect.Intersects(r) {
			return i
		}
	}
	return -1
}

// Update spawns a platform when due, raises every platform one pixel and
// drops those that left through the top.
func (pm *PlatformManager) Update() {
	if pm.running {
		pm.timer++
		if pm.timer >= pm.cfg.SpawnInterval {
			pm.timer = 0
			pm.spawn()
		}
	}

	kept := pm.platforms[:0]
	for _, p := range pm.platforms {
		p.Rect.Y--
		if p.Rect.Y < pm.area.Y-pm.cfg.Height {
			continue
		}
		kept = append(kept, p)
	}
	pm.platforms = kept
}

// spawn adds a platform of random width and position below the area.
func (pm *PlatformManager) spawn() {
	minW := max(pm.cfg.MinWidth, 1)
	maxW := core.Clamp(pm.cfg.MaxWidth, minW, pm.area.W)
	minW = min(minW, maxW)

	w := minW + pm.rng.Intn(maxW-minW+1)
	x := pm.area.X + pm.rng.Intn(pm.area.W-w+1)
	y := pm.area.Bottom() + pm.rng.Intn(max(pm.cfg.SpawnJitter, 0)+1)
	pm.Add(core.NewRect(x, y, w, pm.cfg.Height))
}
