package graph

// CycleGuard tracks the Names currently on the requirement path being
// descended by one evaluate() call. It is created fresh for every
// top-level field visit and discarded when that visit returns.
type CycleGuard struct {
	path  []Name
	index map[Name]int // name -> position in path, for O(1) revisit checks
}

// NewCycleGuard returns an empty guard.
func NewCycleGuard() *CycleGuard {
	return &CycleGuard{index: make(map[Name]int)}
}

// Enter pushes n onto the path. The caller must have already confirmed via
// Contains that n is not already present.
func (g *CycleGuard) Enter(n Name) {
	g.index[n] = len(g.path)
	g.path = append(g.path, n)
}

// Leave pops n from the path. n must be the most recently entered name.
func (g *CycleGuard) Leave(n Name) {
	if len(g.path) == 0 {
		return
	}
	g.path = g.path[:len(g.path)-1]
	delete(g.index, n)
}

// Contains reports whether n is already on the active path.
func (g *CycleGuard) Contains(n Name) bool {
	_, ok := g.index[n]
	return ok
}

// CycleFrom returns the path from the first occurrence of n to the current
// node, with n appended once more to close the loop — e.g. for a guard
// holding [prop, prop1] and n == "prop", returns [prop, prop1, prop].
func (g *CycleGuard) CycleFrom(n Name) []Name {
	start, ok := g.index[n]
	if !ok {
		return append(append([]Name{}, g.path...), n)
	}
	cycle := make([]Name, 0, len(g.path)-start+1)
	cycle = append(cycle, g.path[start:]...)
	cycle = append(cycle, n)
	return cycle
}
