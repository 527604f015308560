package lineage

import (
	"github.com/goto/lineage/lib/set"
)

type adjacency map[string]*set.Ordered[DirectedPair]

func (adj adjacency) add(guid string, pair DirectedPair) {
	pairs, ok := adj[guid]
	if !ok {
		pairs = set.NewOrdered[DirectedPair]()
		adj[guid] = pairs
	}
	pairs.Add(pair)
}

// Graph holds the upstream and downstream adjacency of a relation list.
// It is immutable once built; use NewGraph to construct one.
type Graph struct {
	downstream adjacency
	upstream   adjacency
}

// NewGraph indexes relations in both directions. Every relation must carry a
// process id; the first one that does not aborts the build and no graph is
// returned. Duplicate relations collapse to a single edge.
func NewGraph(relations []Relation) (*Graph, error) {
	g := &Graph{
		downstream: make(adjacency),
		upstream:   make(adjacency),
	}
	for i, rel := range relations {
		if !rel.IsFullLink() {
			return nil, NoGraphWithoutProcessError{Index: i, Relation: rel}
		}
		g.downstream.add(rel.FromEntityID, DirectedPair{ProcessGUID: rel.ProcessID, TargetGUID: rel.ToEntityID})
		g.upstream.add(rel.ToEntityID, DirectedPair{ProcessGUID: rel.ProcessID, TargetGUID: rel.FromEntityID})
	}
	return g, nil
}

func (g *Graph) DownstreamAssetGUIDs(guid string) []string {
	return targets(g.downstream[guid])
}

func (g *Graph) UpstreamAssetGUIDs(guid string) []string {
	return targets(g.upstream[guid])
}

func (g *Graph) DownstreamProcessGUIDs(guid string) []string {
	return processes(g.downstream[guid])
}

func (g *Graph) UpstreamProcessGUIDs(guid string) []string {
	return processes(g.upstream[guid])
}

// AllDownstreamAssetGUIDsDFS returns guid and every asset reachable from it
// downstream. Order of the result is not guaranteed.
func (g *Graph) AllDownstreamAssetGUIDsDFS(guid string) []string {
	return g.dfs(guid, g.downstream)
}

// AllUpstreamAssetGUIDsDFS returns guid and every asset reachable from it
// upstream. Order of the result is not guaranteed.
func (g *Graph) AllUpstreamAssetGUIDsDFS(guid string) []string {
	return g.dfs(guid, g.upstream)
}

// AssetGUIDs returns one-hop neighbours in dir. DirectionBoth yields upstream
// neighbours followed by downstream ones, without duplicates.
func (g *Graph) AssetGUIDs(guid string, dir Direction) []string {
	switch dir {
	case DirectionUpstream:
		return g.UpstreamAssetGUIDs(guid)
	case DirectionDownstream:
		return g.DownstreamAssetGUIDs(guid)
	case DirectionBoth:
		return union(g.UpstreamAssetGUIDs(guid), g.DownstreamAssetGUIDs(guid))
	default:
		return []string{}
	}
}

// AllAssetGUIDsDFS is the transitive counterpart of AssetGUIDs.
func (g *Graph) AllAssetGUIDsDFS(guid string, dir Direction) []string {
	switch dir {
	case DirectionUpstream:
		return g.AllUpstreamAssetGUIDsDFS(guid)
	case DirectionDownstream:
		return g.AllDownstreamAssetGUIDsDFS(guid)
	case DirectionBoth:
		return union(g.AllUpstreamAssetGUIDsDFS(guid), g.AllDownstreamAssetGUIDsDFS(guid))
	default:
		return []string{}
	}
}

// dfs walks adj with an explicit stack so chain length is not bounded by the
// goroutine stack. The visited set makes it terminate on cyclic lineage.
func (g *Graph) dfs(start string, adj adjacency) []string {
	visited := set.NewOrdered[string]()
	stack := []string{start}
	for len(stack) > 0 {
		n := len(stack) - 1
		node := stack[n]
		stack = stack[:n]

		if !visited.Add(node) {
			continue
		}
		adj[node].Each(func(p DirectedPair) {
			if !visited.Contains(p.TargetGUID) {
				stack = append(stack, p.TargetGUID)
			}
		})
	}
	return visited.Values()
}

func targets(pairs *set.Ordered[DirectedPair]) []string {
	out := set.NewOrdered[string]()
	pairs.Each(func(p DirectedPair) { out.Add(p.TargetGUID) })
	return out.Values()
}

func processes(pairs *set.Ordered[DirectedPair]) []string {
	out := set.NewOrdered[string]()
	pairs.Each(func(p DirectedPair) { out.Add(p.ProcessGUID) })
	return out.Values()
}

func union(lists ...[]string) []string {
	out := set.NewOrdered[string]()
	for _, l := range lists {
		for _, s := range l {
			out.Add(s)
		}
	}
	return out.Values()
}
