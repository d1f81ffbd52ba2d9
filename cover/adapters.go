package cover

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/vcsolve/bfs"
	"github.com/katalvlaran/vcsolve/core"
	"github.com/katalvlaran/vcsolve/flow"
)

// This file bridges the reduce/bound/branch machinery to the collaborator
// packages: a string-keyed core.Graph view of the live undecided subgraph,
// bfs.BFS for the double-sweep farthest-pair heuristic behind BranchSTCut,
// and flow.Dinic (over a split-vertex network) for the vertex connectivity
// cuts behind BranchGlobalMincut and BranchSTCut.

func vid(v int) string { return fmt.Sprintf("v%d", v) }

// liveGraph builds an undirected core.Graph over every undecided vertex of
// s, one vertex per id, one unweighted edge per surviving adjacency pair.
// It is rebuilt on demand rather than kept in sync with every set/restore
// call: branching strategies that need it only run a handful of times per
// recursion node, not once per reduction step.
func (s *State) liveGraph() *core.Graph {
	g := core.NewGraph()
	for v := 0; v < s.n; v++ {
		if s.x[v] < 0 {
			_ = g.AddVertex(vid(v))
		}
	}
	for v := 0; v < s.n; v++ {
		if s.x[v] < 0 {
			for _, u := range s.adj[v] {
				if s.x[u] < 0 && u > v {
					_, _ = g.AddEdge(vid(v), vid(u), 0)
				}
			}
		}
	}
	return g
}

// farthestPair runs bfs.BFS twice (a double sweep: from an arbitrary
// undecided vertex, then from the vertex it reaches last) to produce a
// pair of vertices that are a good proxy for the subgraph's diameter
// endpoints — the pair BranchSTCut wants to separate.
func (s *State) farthestPair() (src, dst int, ok bool) {
	start := -1
	for v := 0; v < s.n; v++ {
		if s.x[v] < 0 {
			start = v
			break
		}
	}
	if start < 0 {
		return 0, 0, false
	}
	g := s.liveGraph()
	far := func(from string) (string, bool) {
		res, err := bfs.BFS(g, from)
		if err != nil {
			return "", false
		}
		best, bestDepth := from, -1
		for _, id := range res.Order {
			if d := res.Depth[id]; d > bestDepth {
				best, bestDepth = id, d
			}
		}
		return best, bestDepth > 0
	}
	mid, ok1 := far(vid(start))
	if !ok1 {
		return 0, 0, false
	}
	end, ok2 := far(mid)
	if !ok2 {
		return 0, 0, false
	}
	var a, b int
	fmt.Sscanf(mid, "v%d", &a)
	fmt.Sscanf(end, "v%d", &b)
	if a == b {
		return 0, 0, false
	}
	return a, b, true
}

// vertexCutBetween finds a minimum vertex cut separating src from dst in
// the live undecided subgraph, via the classic in/out node-splitting
// reduction to edge connectivity: every undecided vertex w becomes
// "w_in"->"w_out" with capacity 1 (capacity n+1 for src/dst themselves, so
// the cut never picks the endpoints), and every surviving edge (u,w)
// becomes arcs u_out->w_in and w_out->u_in of capacity n+1, so no edge
// arc is ever part of a minimum cut. A minimum s-t
// edge cut in that network is exactly a minimum vertex cut in the
// original graph, found here by marking, on the residual graph Dinic
// returns, every w whose in_w->out_w arc is saturated and whose in_w is
// reachable from src_out while out_w is not.
func (s *State) vertexCutBetween(src, dst int) ([]int, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	cap := int64(s.n + 1)
	for v := 0; v < s.n; v++ {
		if s.x[v] < 0 {
			in, out := "in:"+vid(v), "out:"+vid(v)
			_ = g.AddVertex(in)
			_ = g.AddVertex(out)
			c := int64(1)
			if v == src || v == dst {
				c = cap
			}
			if _, err := g.AddEdge(in, out, c); err != nil {
				return nil, err
			}
		}
	}
	for v := 0; v < s.n; v++ {
		if s.x[v] < 0 {
			for _, u := range s.adj[v] {
				if s.x[u] < 0 {
					if _, err := g.AddEdge("out:"+vid(v), "in:"+vid(u), cap); err != nil {
						return nil, err
					}
				}
			}
		}
	}
	opts := flow.DefaultOptions()
	_, residual, err := flow.Dinic(g, "out:"+vid(src), "in:"+vid(dst), opts)
	if err != nil {
		return nil, err
	}
	reachable := map[string]bool{"out:" + vid(src): true}
	queue := []string{"out:" + vid(src)}
	for len(queue) > 0 {
		cur := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		neighbors, _ := residual.Neighbors(cur)
		for _, e := range neighbors {
			if e.Weight > 0 && !reachable[e.To] {
				reachable[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}
	var cut []int
	for v := 0; v < s.n; v++ {
		if s.x[v] < 0 && v != src && v != dst {
			in, out := "in:"+vid(v), "out:"+vid(v)
			if reachable[in] && !reachable[out] {
				cut = append(cut, v)
			}
		}
	}
	sort.Ints(cut)
	return cut, nil
}

// globalMinCutVertex picks the two highest-undecided-degree vertices as a
// stand-in source/sink pair and returns one vertex from their minimum
// vertex cut, falling back to ok=false when the subgraph is too small or
// a cut could not be computed (the caller then falls back to its default
// branch-vertex selector).
func (s *State) globalMinCutVertex() (int, bool) {
	best1, best2 := -1, -1
	d1, d2 := -1, -1
	for v := 0; v < s.n; v++ {
		if s.x[v] < 0 {
			d := s.deg(v)
			if d > d1 {
				best2, d2 = best1, d1
				best1, d1 = v, d
			} else if d > d2 {
				best2, d2 = v, d
			}
		}
	}
	if best1 < 0 || best2 < 0 {
		return 0, false
	}
	cut, err := s.vertexCutBetween(best1, best2)
	if err != nil || len(cut) == 0 {
		return 0, false
	}
	return cut[0], true
}

// stCutVertex drives BranchSTCut: pick a diameter-proxy pair via
// farthestPair, then return a vertex from their minimum vertex cut.
func (s *State) stCutVertex() (int, bool) {
	src, dst, ok := s.farthestPair()
	if !ok {
		return 0, false
	}
	cut, err := s.vertexCutBetween(src, dst)
	if err != nil || len(cut) == 0 {
		return 0, false
	}
	return cut[0], true
}

// articulationPoint returns an articulation point of the live undecided
// subgraph if one exists, via Tarjan's low-link DFS run iteratively (the
// only traversal package in this module is the callback-driven bfs, which
// does not compute articulation points, so this walks s.adj directly
// rather than going through core.Graph).
func (s *State) articulationPoint() (int, bool) {
	disc := s.modTmp
	low := s.que
	for v := 0; v < s.n; v++ {
		disc[v] = -1
	}
	timer := 0
	type frame struct {
		v, parent, childIdx int
		children            int
	}
	for root := 0; root < s.n; root++ {
		if s.x[root] >= 0 || disc[root] >= 0 {
			continue
		}
		stack := []frame{{v: root, parent: -1}}
		disc[root] = timer
		low[root] = timer
		timer++
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.childIdx < len(s.adj[top.v]) {
				u := s.adj[top.v][top.childIdx]
				top.childIdx++
				if s.x[u] >= 0 {
					continue
				}
				if disc[u] < 0 {
					top.children++
					disc[u] = timer
					low[u] = timer
					timer++
					stack = append(stack, frame{v: u, parent: top.v})
				} else if u != top.parent {
					if disc[u] < low[top.v] {
						low[top.v] = disc[u]
					}
				}
			} else {
				node := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if len(stack) > 0 {
					parentFrame := &stack[len(stack)-1]
					if low[node.v] < low[parentFrame.v] {
						low[parentFrame.v] = low[node.v]
					}
					if node.parent != -1 {
						isRoot := parentFrame.v == root && parentFrame.parent == -1
						if (!isRoot && low[node.v] >= disc[parentFrame.v]) ||
							(isRoot && parentFrame.children > 1) {
							return parentFrame.v, true
						}
					}
				}
			}
		}
	}
	return 0, false
}
