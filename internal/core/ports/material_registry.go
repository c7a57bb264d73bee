package ports

// MaterialRegistry is the platform's table of valid object ids.
type MaterialRegistry interface {
	// Exists reports whether id names a known object.
	Exists(id int) bool
	// MaxBlockID is the largest id that denotes a placeable block.
	MaxBlockID() int
	// DefaultName returns the registry's own name for id, or "" if unknown.
	DefaultName(id int) string
	// IDs lists every known id in ascending order.
	IDs() []int
}
