package cache

// RenderKeyOpts holds the options that affect rendered output.
type RenderKeyOpts struct {
	Format  string   `json:"format"`
	Roster  []string `json:"roster,omitempty"` // "name#rrggbb" per player
	Scale   float64  `json:"scale,omitempty"`
	Padding int      `json:"padding,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// RenderKey is the key for a rendered document with the given hash.
	RenderKey(docHash string, opts RenderKeyOpts) string
	// TreeKey is the key for a Graphviz rendering of a document.
	TreeKey(docHash, format string) string
}

// DefaultKeyer hashes every key component.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// RenderKey implements Keyer.
func (DefaultKeyer) RenderKey(docHash string, opts RenderKeyOpts) string {
	return hashKey("render", docHash, opts)
}

// TreeKey implements Keyer.
func (DefaultKeyer) TreeKey(docHash, format string) string {
	return hashKey("tree", docHash, format)
}

// ScopedKeyer wraps a Keyer with a prefix, for example to keep renders for
// different viewers or tenants in separate namespaces:
//
//	viewer := NewScopedKeyer(NewDefaultKeyer(), "viewer:ann:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// RenderKey implements Keyer.
func (k *ScopedKeyer) RenderKey(docHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(docHash, opts)
}

// TreeKey implements Keyer.
func (k *ScopedKeyer) TreeKey(docHash, format string) string {
	return k.prefix + k.inner.TreeKey(docHash, format)
}
