package arrange

// Layer is a named z-stacking bucket and its widgets in input order.
type Layer struct {
	Name    string
	Widgets []Widget
}

// GroupByLayer drops hidden children and groups the rest by layer name.
// Layers are returned in the order their name was first seen; widgets keep
// their input order within a layer.
func GroupByLayer(children []Widget) []Layer {
	var layers []Layer
	index := make(map[string]int, 2)
	for _, child := range children {
		styles := child.Styles()
		if !styles.IsVisible() {
			continue
		}
		i, ok := index[styles.Layer]
		if !ok {
			i = len(layers)
			index[styles.Layer] = i
			layers = append(layers, Layer{Name: styles.Layer})
		}
		layers[i].Widgets = append(layers[i].Widgets, child)
	}
	return layers
}

// partition splits items by pred, keeping input order on both sides.
// Items failing pred come first.
func partition[T any](items []T, pred func(T) bool) (rejected, accepted []T) {
	for _, item := range items {
		if pred(item) {
			accepted = append(accepted, item)
		} else {
			rejected = append(rejected, item)
		}
	}
	return rejected, accepted
}

func isSplit(w Widget) bool  { return w.Styles().IsSplit() }
func isDocked(w Widget) bool { return w.Styles().IsDocked() }
