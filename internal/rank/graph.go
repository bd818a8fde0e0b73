package rank

import "strconv"

// Graph holds the dependency structure for one ranking pass. Edges
// point from a task to its dependencies. Dependency ids do not have
// to resolve to a task in the batch: declaring a dependency on an
// unknown id still increments that id's dependents count.
type Graph struct {
	// IDs carries the internal id assigned to each task, in input
	// order: the task's own id when non-empty, otherwise the decimal
	// string of its zero-based position. Ids live here, not on the
	// caller's records, and are discarded with the Graph.
	IDs []string

	// Adjacency maps internal id → dependency ids.
	Adjacency map[string][]string

	// Dependents maps an id → how many tasks declare it as a
	// dependency (how many tasks it unblocks).
	Dependents map[string]int
}

// BuildGraph assigns internal ids and builds the adjacency and
// dependents-count maps for a task batch.
func BuildGraph(tasks []Task) *Graph {
	g := &Graph{
		IDs:        make([]string, len(tasks)),
		Adjacency:  make(map[string][]string, len(tasks)),
		Dependents: make(map[string]int, len(tasks)),
	}

	for i, t := range tasks {
		id := t.ID
		if id == "" {
			id = strconv.Itoa(i)
		}
		g.IDs[i] = id
		g.Adjacency[id] = nil
	}

	for i, t := range tasks {
		id := g.IDs[i]
		if len(t.Dependencies) == 0 {
			continue
		}
		deps := make([]string, len(t.Dependencies))
		copy(deps, t.Dependencies)
		g.Adjacency[id] = deps
		for _, dep := range deps {
			g.Dependents[dep]++
		}
	}

	return g
}

// Cycles returns the set of ids flagged as cycle participants. The
// detection is a deliberate approximation: a DFS marks the two
// endpoints of every back edge it finds, not the full cycle path, so
// intermediate nodes on a longer cycle stay unflagged. A self-loop
// counts as a back edge and flags its single node. The flag is
// advisory only and never affects scores. Runs in O(V+E); the
// on-stack check prevents re-entering a confirmed cycle.
//
// Traversal roots follow g.IDs in input order, so which endpoints get
// flagged on a longer cycle is the same on every call with the same
// batch.
func (g *Graph) Cycles() map[string]bool {
	visited := make(map[string]bool, len(g.Adjacency))
	onStack := make(map[string]bool)
	inCycle := make(map[string]bool)

	var dfs func(node string)
	dfs = func(node string) {
		if visited[node] {
			return
		}
		visited[node] = true
		onStack[node] = true
		for _, neighbor := range g.Adjacency[node] {
			if !visited[neighbor] {
				dfs(neighbor)
			} else if onStack[neighbor] {
				inCycle[node] = true
				inCycle[neighbor] = true
			}
		}
		delete(onStack, node)
	}

	for _, node := range g.IDs {
		if !visited[node] {
			dfs(node)
		}
	}

	return inCycle
}
