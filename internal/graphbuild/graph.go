// Package graphbuild builds the page-transition flow graph (spec §4.E) as
// a gonum directed multigraph, and exports it as DOT text or a topological
// ordering / elementary cycle for the analyzer's dead-end report. Using
// gonum.org/v1/gonum/graph's multi/topo packages is a direct, idiomatic fit
// for "topological sort aborts on cycle; report one elementary cycle" —
// there is no graph library among the teacher's own dependencies, so this
// is a new, named ecosystem addition (see DESIGN.md).
package graphbuild

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/cfrie/qrt/internal/expr"
	"github.com/cfrie/qrt/internal/model"
)

// Options configures which optional renderings Build/ToDOT apply (spec
// §4.E).
type Options struct {
	ShowCond        bool
	ShowVar         bool
	RemoveCondFalse bool
	ShowJumper      bool
	ColorNodes      bool
	Rewrite         bool
	KeepSelfLoops   bool
	Filename        string
}

// Edge is one rendered edge: either a combined transition (Label holds the
// source-order "[i] cond" parts when conditions are shown) or a single
// jumper.
type Edge struct {
	From, To string
	Label    string
	IsJumper bool
}

// Graph is the built flow graph: an ordered node list, the edges selected
// for rendering under opts, and the underlying gonum multigraph used for
// topological sort / cycle enumeration (always built without self-loops,
// per spec §4.E "self-loops are removed before topological sort and cycle
// enumeration").
type Graph struct {
	NodeOrder []string
	RenderEdges []Edge

	g      *multi.DirectedGraph
	idOf   map[string]int64
	uidOf  map[int64]string
}

// Build constructs a Graph from pages under opts.
func Build(pages []*model.Page, opts Options) *Graph {
	g := &Graph{
		g:     multi.NewDirectedGraph(),
		idOf:  make(map[string]int64),
		uidOf: make(map[int64]string),
	}

	var nextID int64
	nodeID := func(uid string) int64 {
		if id, ok := g.idOf[uid]; ok {
			return id
		}
		id := nextID
		nextID++
		g.idOf[uid] = id
		g.uidOf[id] = uid
		g.NodeOrder = append(g.NodeOrder, uid)
		g.g.AddNode(simpleNode(id))
		return id
	}

	for _, p := range pages {
		nodeID(p.UID)
	}

	var lineID int64
	for _, p := range pages {
		for _, t := range p.Transitions {
			if p.UID == t.TargetUID {
				continue
			}
			fID, tID := nodeID(p.UID), nodeID(t.TargetUID)
			g.g.SetLine(multi.Line{F: simpleNode(fID), T: simpleNode(tID), UID: lineID})
			lineID++
		}
		if opts.ShowJumper {
			for _, j := range p.Jumpers {
				if p.UID == j.Target {
					continue
				}
				fID, tID := nodeID(p.UID), nodeID(j.Target)
				g.g.SetLine(multi.Line{F: simpleNode(fID), T: simpleNode(tID), UID: lineID})
				lineID++
			}
		}
	}

	g.RenderEdges = buildRenderEdges(pages, opts)
	return g
}

// simpleNode is a graph.Node over a bare int64 id.
type simpleNode int64

func (n simpleNode) ID() int64 { return int64(n) }

// buildRenderEdges applies show_cond/remove_cond_false combination rules
// (spec §4.E) independently of the gonum graph, which only needs raw
// connectivity for sort/cycle purposes. Self-loops are drawn only when
// opts.KeepSelfLoops is set.
func buildRenderEdges(pages []*model.Page, opts Options) []Edge {
	var out []Edge
	for _, p := range pages {
		order := make([]string, 0)
		byTarget := make(map[string][]string)
		for _, t := range p.Transitions {
			if opts.RemoveCondFalse && strings.TrimSpace(t.Condition) == "false" {
				continue
			}
			if t.TargetUID == p.UID && !opts.KeepSelfLoops {
				continue
			}
			if _, ok := byTarget[t.TargetUID]; !ok {
				order = append(order, t.TargetUID)
			}
			byTarget[t.TargetUID] = append(byTarget[t.TargetUID], t.Condition)
		}
		for _, target := range order {
			conds := byTarget[target]
			if opts.ShowCond {
				out = append(out, Edge{From: p.UID, To: target, Label: combineLabels(conds, opts.Rewrite)})
			} else {
				out = append(out, Edge{From: p.UID, To: target})
			}
		}
		if opts.ShowJumper {
			for _, j := range p.Jumpers {
				if j.Target == p.UID && !opts.KeepSelfLoops {
					continue
				}
				out = append(out, Edge{From: p.UID, To: j.Target, Label: j.Value, IsJumper: true})
			}
		}
	}
	return out
}

// ToGonum exposes the underlying self-loop-free multigraph for callers
// that want to run further gonum graph algorithms rather than render.
func (g *Graph) ToGonum() *multi.DirectedGraph {
	return g.g
}

// TopoSort returns a topological ordering of the self-loop-free graph,
// computed by gonum's topo.Sort rather than Kahn's algorithm; ties between
// unrelated pages are not broken by uid. If the graph is not a DAG it
// returns false and one elementary cycle, each page listed once (spec §4.E).
func (g *Graph) TopoSort() (order []string, ok bool, cycle []string) {
	sorted, err := topo.Sort(g.g)
	if err == nil {
		for _, n := range sorted {
			order = append(order, g.uidOf[n.ID()])
		}
		return order, true, nil
	}
	cycles := topo.DirectedCyclesIn(g.g)
	if len(cycles) == 0 {
		return nil, false, nil
	}
	best := cycles[0]
	if len(best) > 1 && best[0].ID() == best[len(best)-1].ID() {
		best = best[:len(best)-1]
	}
	for _, n := range best {
		cycle = append(cycle, g.uidOf[n.ID()])
	}
	return nil, false, cycle
}

// combineLabels folds same-(source,target) transition conditions into one
// edge label, in source order, as "[i] cond_i | [j] cond_j | ..." (spec
// §4.E), optionally rewriting each condition through expr.Rewrite first.
func combineLabels(conds []string, rewrite bool) string {
	parts := make([]string, 0, len(conds))
	for i, c := range conds {
		c = strings.Join(strings.Fields(c), " ")
		if rewrite && c != "" {
			c = expr.Rewrite(c)
		}
		if c == "" {
			parts = append(parts, labelIndex(i))
		} else {
			parts = append(parts, labelIndex(i)+" "+c)
		}
	}
	return strings.Join(parts, " | ")
}

func labelIndex(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}
