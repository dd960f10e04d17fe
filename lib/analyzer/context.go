package analyzer

// Binding records one 'let' seen during the walk.
type Binding struct {
	Name string
	Line int
	Used bool
}

// Context accumulates bindings in declaration order, mirroring the symbol
// table the evaluator would build, so the walk resolves names exactly the
// way evaluation will.
type Context struct {
	order   []*Binding
	current map[string]*Binding
}

func NewContext() *Context {
	return &Context{current: make(map[string]*Binding)}
}

// Bind registers a new binding and returns the one it shadows, if any.
func (c *Context) Bind(name string, line int) (previous *Binding, rebound bool) {
	previous, rebound = c.current[name]
	b := &Binding{Name: name, Line: line}
	c.order = append(c.order, b)
	c.current[name] = b
	return previous, rebound
}

// Lookup resolves name against the bindings made so far and marks the hit
// as used.
func (c *Context) Lookup(name string) (*Binding, bool) {
	b, ok := c.current[name]
	if ok {
		b.Used = true
	}
	return b, ok
}

// Bindings returns every binding in declaration order, rebindings included.
func (c *Context) Bindings() []*Binding {
	return c.order
}
