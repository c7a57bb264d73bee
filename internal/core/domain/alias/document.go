package alias

// Node is one element of a definition document: either a key/value entry or
// a named section holding child nodes in file order.
type Node struct {
	Key      string
	Value    string
	Section  bool
	Children []Node
	Line     int
}

// Find returns the first direct child named key.
func (n Node) Find(key string) (Node, bool) {
	for _, c := range n.Children {
		if c.Key == key {
			return c, true
		}
	}
	return Node{}, false
}

// Document is a parsed definition file. Root is always a section.
type Document struct {
	Source string
	Root   Node
}
