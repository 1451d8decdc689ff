// Package preview is an interactive bubbletea program that arranges a scene
// into the terminal and re-arranges it on every resize. Elements can be
// focused with the keyboard or by clicking, and the scene is re-read from
// disk periodically so edits show up live.
package preview

import (
	"time"

	"gitlab.com/tinyland/lab/arrange/pkg/scene"
)

// ReloadEvent is sent by the reload ticker.
type ReloadEvent struct {
	Time time.Time
}

// SceneLoadedEvent carries the result of re-reading the scene.
type SceneLoadedEvent struct {
	Scene scene.Scene
	Err   error
}
