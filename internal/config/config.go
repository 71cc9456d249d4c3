package config

import "sync"

// FrameSettings holds frame pacing configuration
type FrameSettings struct {
	mu       sync.RWMutex
	fpsLimit int // 0 means unlimited
	vsync    bool
}

var globalFrameSettings = &FrameSettings{
	fpsLimit: 0,
	vsync:    true,
}

// GetFPSLimit returns the current frame cap, 0 when uncapped
func GetFPSLimit() int {
	globalFrameSettings.mu.RLock()
	defer globalFrameSettings.mu.RUnlock()
	return globalFrameSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalFrameSettings.mu.Lock()
	defer globalFrameSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalFrameSettings.fpsLimit = limit
}

// GetVSync reports whether buffer swaps wait for the display refresh
func GetVSync() bool {
	globalFrameSettings.mu.RLock()
	defer globalFrameSettings.mu.RUnlock()
	return globalFrameSettings.vsync
}

// SetVSync toggles vertical sync
func SetVSync(enabled bool) {
	globalFrameSettings.mu.Lock()
	defer globalFrameSettings.mu.Unlock()
	globalFrameSettings.vsync = enabled
}

// Apply copies the frame pacing part of s into the global settings
func Apply(s Settings) {
	SetFPSLimit(s.FPSLimit)
	SetVSync(s.VSync)
}
