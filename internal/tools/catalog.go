package tools

import (
	"slices"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

// Catalog is an immutable, name-indexed set of tools.
type Catalog struct {
	tools  []Tool
	byName map[string]int
	groups []string
}

// New builds a catalog from per-group lists. Names must be unique and
// carry Prefix, and every tool needs an input schema.
func New(groups ...[]Tool) (*Catalog, error) {
	c := &Catalog{byName: map[string]int{}}
	for _, group := range groups {
		for _, t := range group {
			if !strings.HasPrefix(t.Name, Prefix) || len(t.Name) == len(Prefix) {
				return nil, errors.Newf("tool %q: name must start with %q", t.Name, Prefix)
			}
			if _, dup := c.byName[t.Name]; dup {
				return nil, errors.Newf("tool %q: duplicate name", t.Name)
			}
			if t.Input == nil {
				return nil, errors.Newf("tool %q: missing input schema", t.Name)
			}
			if t.Group != "" && !slices.Contains(c.groups, t.Group) {
				c.groups = append(c.groups, t.Group)
			}
			c.byName[t.Name] = len(c.tools)
			c.tools = append(c.tools, t)
		}
	}
	return c, nil
}

// Default returns the built-in BULC catalog. It panics if the static
// table is inconsistent, which is a programming error.
var Default = sync.OnceValue(func() *Catalog {
	c, err := New(
		contextTools(),
		roomTools(),
		wallTools(),
		furnitureTools(),
		fdsDataTools(),
		meshTools(),
		simulationTools(),
		fdsRunTools(),
		resultTools(),
		evacTools(),
	)
	if err != nil {
		panic(err)
	}
	return c
})

// All returns every tool in catalog order.
func (c *Catalog) All() []Tool {
	return slices.Clone(c.tools)
}

// Len reports the number of tools.
func (c *Catalog) Len() int {
	return len(c.tools)
}

// Lookup finds a tool by its exact name.
func (c *Catalog) Lookup(name string) (Tool, bool) {
	idx, ok := c.byName[name]
	if !ok {
		return Tool{}, false
	}
	return c.tools[idx], true
}

// Groups lists group names in the order they were first seen.
func (c *Catalog) Groups() []string {
	return slices.Clone(c.groups)
}

// Group returns the tools of one group in catalog order.
func (c *Catalog) Group(name string) []Tool {
	var out []Tool
	for _, t := range c.tools {
		if t.Group == name {
			out = append(out, t)
		}
	}
	return out
}

// Names returns every tool name in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.tools))
	for _, t := range c.tools {
		out = append(out, t.Name)
	}
	return out
}
