package scene

// Walk visits n and its descendants depth-first in document order.
// If visit returns false the node's children are skipped.
func Walk(n *Node, visit func(*Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, visit)
	}
}

// FirstText returns the first TEXT descendant (including n itself) with
// non-empty content, searching depth-first in document order. Widget
// rendering uses it to pick button labels and input placeholders.
func FirstText(n *Node) *Node {
	var found *Node
	Walk(n, func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.IsText() && c.Characters != "" {
			found = c
			return false
		}
		return true
	})
	return found
}

// Count returns the total number of nodes in the document.
func (d *Document) Count() int {
	total := 0
	for _, root := range d.Nodes {
		Walk(root, func(*Node) bool {
			total++
			return true
		})
	}
	return total
}

// FontFamilies returns the normalized font families of all visible text
// nodes in the document, deduplicated, in document order.
func (d *Document) FontFamilies() []string {
	seen := make(map[string]struct{})
	var families []string

	for _, root := range d.Nodes {
		Walk(root, func(n *Node) bool {
			if !n.IsVisible() {
				return false
			}
			if n.IsText() && n.Style != nil {
				family := FontFamilyName(n.Style.FontFamily)
				if family != "" {
					if _, ok := seen[family]; !ok {
						seen[family] = struct{}{}
						families = append(families, family)
					}
				}
			}
			return true
		})
	}

	return families
}
