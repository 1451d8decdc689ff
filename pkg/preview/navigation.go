package preview

import "gitlab.com/tinyland/lab/arrange/pkg/scene"

// CycleFocusForward moves focus to the next item in paint order, wrapping
// around after the last.
func (m *Model) CycleFocusForward() {
	if len(m.items) == 0 {
		return
	}
	m.focused = m.items[(m.focusedIndex()+1)%len(m.items)].Element.ID
}

// CycleFocusBackward moves focus to the previous item in paint order,
// wrapping around before the first.
func (m *Model) CycleFocusBackward() {
	if len(m.items) == 0 {
		return
	}
	idx := m.focusedIndex()
	if idx < 0 {
		idx = 0
	}
	m.focused = m.items[(idx-1+len(m.items))%len(m.items)].Element.ID
}

// FocusAt focuses the topmost item under the cell (x, y). Clicking empty
// space clears focus.
func (m *Model) FocusAt(x, y int) {
	if it, ok := scene.HitTest(m.items, x, y); ok {
		m.focused = it.Element.ID
		return
	}
	m.focused = ""
}

// focusedIndex returns the position of the focused item, or -1.
func (m *Model) focusedIndex() int {
	for i, it := range m.items {
		if it.Element.ID == m.focused {
			return i
		}
	}
	return -1
}
