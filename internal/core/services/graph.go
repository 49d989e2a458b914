package services

import (
	"sort"

	"github.com/archlint/archlint/internal/core/domain"
)

// Graph utilities shared by the policy engine and the reporter: Tarjan
// strongly-connected-component decomposition followed by minimal-cycle
// extraction within each nontrivial component.
//
// Everything here works on index-based adjacency lists over the node
// arena, never on pointer graphs, so the structure is trivially
// shareable with parallel callers.

// tarjanState holds per-node state during Tarjan's DFS.
type tarjanState struct {
	index   int
	lowlink int
	onStack bool
	visited bool
}

// FindCycles returns every minimal cycle in the file-level import
// graph, one canonical sequence per cycle, sorted for deterministic
// reporting. Every file participating in at least one cycle appears in
// at least one returned cycle; no acyclic file appears in any.
//
// SCC detection is O(V+E); cycle extraction does one BFS per member of
// each nontrivial component.
func FindCycles(g *domain.Graph) [][]string {
	adj := g.Adjacency()
	comp := stronglyConnected(adj)

	members := make(map[int][]int)
	for node, c := range comp {
		members[c] = append(members[c], node)
	}

	seen := make(map[string]bool)
	var cycles [][]string

	for _, nodes := range members {
		if len(nodes) < 2 {
			// Self-edges are impossible by construction, so a
			// singleton component is acyclic.
			continue
		}
		inComp := make(map[int]bool, len(nodes))
		for _, n := range nodes {
			inComp[n] = true
		}
		sort.Ints(nodes)

		for _, start := range nodes {
			cycle := shortestCycleThrough(start, adj, inComp)
			if cycle == nil {
				continue
			}
			paths := make([]string, len(cycle))
			for i, n := range cycle {
				paths[i] = g.Nodes[n].Path
			}
			canon := domain.CanonicalCycle(paths)
			key := domain.CycleKey(canon)
			if seen[key] {
				continue
			}
			seen[key] = true
			cycles = append(cycles, canon)
		}
	}

	sort.Slice(cycles, func(i, j int) bool {
		return domain.CycleKey(cycles[i]) < domain.CycleKey(cycles[j])
	})
	return cycles
}

// stronglyConnected runs Tarjan's algorithm over the adjacency list and
// returns each node's component id.
func stronglyConnected(adj [][]int) []int {
	n := len(adj)
	state := make([]tarjanState, n)
	comp := make([]int, n)
	for i := range comp {
		comp[i] = -1
	}

	var stack []int
	indexCounter := 0
	compCounter := 0

	var strongconnect func(u int)
	strongconnect = func(u int) {
		state[u] = tarjanState{
			index:   indexCounter,
			lowlink: indexCounter,
			onStack: true,
			visited: true,
		}
		indexCounter++
		stack = append(stack, u)

		for _, v := range adj[u] {
			if !state[v].visited {
				strongconnect(v)
				if state[v].lowlink < state[u].lowlink {
					state[u].lowlink = state[v].lowlink
				}
			} else if state[v].onStack {
				if state[v].index < state[u].lowlink {
					state[u].lowlink = state[v].index
				}
			}
		}

		// u is a root node: pop the stack to form one component.
		if state[u].lowlink == state[u].index {
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				state[w].onStack = false
				comp[w] = compCounter
				if w == u {
					break
				}
			}
			compCounter++
		}
	}

	for u := 0; u < n; u++ {
		if !state[u].visited {
			strongconnect(u)
		}
	}
	return comp
}

// shortestCycleThrough finds the shortest cycle through start using BFS
// restricted to one strongly connected component. Within a nontrivial
// SCC such a cycle always exists.
func shortestCycleThrough(start int, adj [][]int, inComp map[int]bool) []int {
	parent := make(map[int]int)
	visited := map[int]bool{start: true}
	queue := []int{start}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, v := range adj[u] {
			if !inComp[v] {
				continue
			}
			if v == start {
				// Closed the loop: reconstruct start -> ... -> u.
				cycle := []int{start}
				var path []int
				for cur := u; cur != start; cur = parent[cur] {
					path = append(path, cur)
				}
				for i := len(path) - 1; i >= 0; i-- {
					cycle = append(cycle, path[i])
				}
				return cycle
			}
			if visited[v] {
				continue
			}
			visited[v] = true
			parent[v] = u
			queue = append(queue, v)
		}
	}
	return nil
}
