package canvas

// Node is one element of a fetched document tree. The server returns a
// superset of these fields depending on node type; unknown fields are
// ignored on decode.
type Node struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Visible  *bool   `json:"visible,omitempty"`
	Children []*Node `json:"children,omitempty"`

	// Absolute placement, present on layout nodes.
	AbsoluteBoundingBox *Rect `json:"absoluteBoundingBox,omitempty"`
}

// Rect is an axis-aligned bounding box in canvas coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// File is the response envelope for a document fetch.
type File struct {
	Name         string `json:"name"`
	Version      string `json:"version"`
	LastModified string `json:"lastModified"`
	Document     *Node  `json:"document"`
}

// Pages returns the top-level page nodes of the document, or nil when
// the document is empty.
func (f *File) Pages() []*Node {
	if f.Document == nil {
		return nil
	}
	return f.Document.Children
}

// Walk visits n and every descendant in depth-first order. Traversal
// stops early when fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node) bool {
		total++
		return true
	})
	return total
}
