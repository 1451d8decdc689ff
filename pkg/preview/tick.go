package preview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/arrange/pkg/scene"
)

// TickCmd returns a Cmd that sends a ReloadEvent after d.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return ReloadEvent{Time: t}
	})
}

// LoadCmd returns a Cmd that loads ref in a goroutine and delivers the
// result as a SceneLoadedEvent.
func LoadCmd(ref string) tea.Cmd {
	return func() tea.Msg {
		s, err := scene.Load(ref)
		return SceneLoadedEvent{Scene: s, Err: err}
	}
}
