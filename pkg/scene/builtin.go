package scene

// holyGrailScene is the classic page: header and footer across the top and
// bottom, navigation and aside columns, and a main area between them.
func holyGrailScene() Scene {
	return Scene{
		Name:        "holy-grail",
		Description: "Header, footer, two sidebars and a main area using docks",
		Root: Node{
			ID:     "page",
			Layout: "vertical",
			Children: []Node{
				{ID: "header", Style: StyleSpec{Dock: "top", Height: "3"}},
				{ID: "footer", Style: StyleSpec{Dock: "bottom", Height: "1"}},
				{ID: "nav", Style: StyleSpec{Dock: "left", Width: "20%"}},
				{ID: "aside", Style: StyleSpec{Dock: "right", Width: "16"}},
				{ID: "main", Style: StyleSpec{Margin: "0 1"}},
			},
		},
	}
}

// splitPanesScene cuts a sidebar and a status line off the screen, then
// stacks an editor above a terminal in what remains.
func splitPanesScene() Scene {
	return Scene{
		Name:        "split-panes",
		Description: "Editor-style panes built from cumulative splits",
		Root: Node{
			ID:     "window",
			Layout: "vertical",
			Children: []Node{
				{ID: "sidebar", Style: StyleSpec{Split: "left", Width: "30%"}},
				{ID: "status", Style: StyleSpec{Split: "bottom", Height: "1"}},
				{ID: "tabs", Style: StyleSpec{Split: "top", Height: "1"}},
				{ID: "editor", Style: StyleSpec{Height: "2fr"}},
				{ID: "terminal", Style: StyleSpec{Height: "1fr", MinHeight: "4"}},
			},
		},
	}
}

// layersScene puts a centered dialog and a toast on an overlay layer above
// the base content.
func layersScene() Scene {
	return Scene{
		Name:        "layers",
		Description: "Dialog and toast on an overlay layer",
		Root: Node{
			ID:     "screen",
			Layout: "vertical",
			Style:  StyleSpec{AlignHorizontal: "center", AlignVertical: "middle"},
			Children: []Node{
				{ID: "body", Style: StyleSpec{Width: "100%", Height: "100%"}},
				{ID: "dialog", Style: StyleSpec{Layer: "overlay", Width: "40", Height: "9", MaxWidth: "90%"}},
				{ID: "toast", Style: StyleSpec{Layer: "overlay", Dock: "right", Width: "30", Height: "3", AlignVertical: "bottom"}},
			},
		},
	}
}

// centeredScene centers a card holding a nested horizontal container.
func centeredScene() Scene {
	return Scene{
		Name:        "centered",
		Description: "Centered card with nested columns",
		Root: Node{
			ID:     "screen",
			Layout: "vertical",
			Style:  StyleSpec{AlignHorizontal: "center", AlignVertical: "middle"},
			Children: []Node{
				{
					ID:     "card",
					Layout: "horizontal",
					Style:  StyleSpec{Width: "50%", Height: "50%", Gutter: 1},
					Children: []Node{
						{ID: "title", Style: StyleSpec{Dock: "top", Height: "1"}, Content: &Content{Width: 12, Height: 1}},
						{ID: "left", Style: StyleSpec{Width: "1fr"}},
						{ID: "right", Style: StyleSpec{Width: "2fr"}},
					},
				},
			},
		},
	}
}

// dashboardScene lays tiles out on a grid under a header.
func dashboardScene() Scene {
	return Scene{
		Name:        "dashboard",
		Description: "Grid of tiles under a docked header",
		Root: Node{
			ID:     "dashboard",
			Layout: "grid",
			Style:  StyleSpec{Columns: 3, Gutter: 1},
			Children: []Node{
				{ID: "header", Style: StyleSpec{Dock: "top", Height: "1"}},
				{ID: "cpu"},
				{ID: "memory"},
				{ID: "disk"},
				{ID: "network"},
				{ID: "load", Style: StyleSpec{Height: "50%"}},
				{ID: "alerts", Style: StyleSpec{Visibility: "hidden"}},
			},
		},
	}
}
