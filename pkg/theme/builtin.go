package theme

var builtins = []Theme{
	{
		Name:     DefaultName,
		Depth:    []string{"4", "2", "6", "3"},
		Split:    "3",
		Dock:     "5",
		Selected: "1",
		Status:   "8",
	},
	{
		Name:     "nord",
		Depth:    []string{"#88c0d0", "#81a1c1", "#5e81ac", "#8fbcbb"},
		Split:    "#ebcb8b",
		Dock:     "#b48ead",
		Selected: "#bf616a",
		Status:   "#4c566a",
	},
	{
		Name:     "gruvbox",
		Depth:    []string{"#83a598", "#b8bb26", "#8ec07c", "#d3869b"},
		Split:    "#fabd2f",
		Dock:     "#fe8019",
		Selected: "#fb4934",
		Status:   "#928374",
	},
	{
		Name:     "mono",
		Depth:    []string{"7"},
		Split:    "7",
		Dock:     "15",
		Selected: "15",
		Status:   "8",
	},
}
