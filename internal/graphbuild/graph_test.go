package graphbuild

import (
	"strings"
	"testing"

	"github.com/cfrie/qrt/internal/model"
)

func page(uid string, transitions ...model.Transition) *model.Page {
	return &model.Page{UID: uid, Transitions: transitions}
}

// TestCombineLabelsEdgeConditions exercises the seed scenario where two
// transitions from the same page to the same target are folded into one
// labeled edge, in source order.
func TestCombineLabelsEdgeConditions(t *testing.T) {
	pages := []*model.Page{
		page("A", model.Transition{TargetUID: "B", Condition: "x == T"}, model.Transition{TargetUID: "B", Condition: "false"}),
		page("B"),
	}
	g := Build(pages, Options{ShowCond: true})
	if len(g.RenderEdges) != 1 {
		t.Fatalf("RenderEdges = %v, want 1 combined edge", g.RenderEdges)
	}
	e := g.RenderEdges[0]
	if e.From != "A" || e.To != "B" {
		t.Errorf("edge = %+v, want A->B", e)
	}
	if !strings.Contains(e.Label, "[0] x == T") || !strings.Contains(e.Label, "[1] false") {
		t.Errorf("Label = %q, want both indexed conditions", e.Label)
	}
}

// TestRemoveCondFalseDropsFalseOnlyEdge mirrors remove_cond_false: when
// show_cond is off and remove_cond_false is set, a transition whose
// condition is exactly "false" contributes no render edge.
func TestRemoveCondFalseDropsFalseOnlyEdge(t *testing.T) {
	pages := []*model.Page{
		page("A", model.Transition{TargetUID: "B", Condition: "false"}),
		page("B"),
	}
	g := Build(pages, Options{RemoveCondFalse: true})
	if len(g.RenderEdges) != 0 {
		t.Errorf("RenderEdges = %v, want none", g.RenderEdges)
	}
}

func TestSelfLoopExcludedByDefault(t *testing.T) {
	pages := []*model.Page{
		page("A", model.Transition{TargetUID: "A"}, model.Transition{TargetUID: "B"}),
		page("B"),
	}
	g := Build(pages, Options{})
	order, ok, _ := g.TopoSort()
	if !ok {
		t.Fatalf("expected DAG after self-loop removal, got non-DAG")
	}
	if len(order) != 2 {
		t.Errorf("order = %v, want 2 nodes", order)
	}
}

func TestTopoSortDetectsCycle(t *testing.T) {
	pages := []*model.Page{
		page("A", model.Transition{TargetUID: "B"}),
		page("B", model.Transition{TargetUID: "A"}),
	}
	g := Build(pages, Options{})
	_, ok, cycle := g.TopoSort()
	if ok {
		t.Fatalf("expected cycle, got DAG")
	}
	if len(cycle) == 0 {
		t.Errorf("expected a non-empty cycle")
	}
}

func TestTopoSortLinearOrder(t *testing.T) {
	pages := []*model.Page{
		page("A", model.Transition{TargetUID: "B"}),
		page("B", model.Transition{TargetUID: "C"}),
		page("C"),
	}
	g := Build(pages, Options{})
	order, ok, _ := g.TopoSort()
	if !ok {
		t.Fatalf("expected DAG")
	}
	idx := map[string]int{}
	for i, uid := range order {
		idx[uid] = i
	}
	if !(idx["A"] < idx["B"] && idx["B"] < idx["C"]) {
		t.Errorf("order = %v, want A before B before C", order)
	}
}

// TestSelfLoopRemovalLeavesLargerCyclesDetected checks that self-loop
// exclusion is independent of cycle detection on longer cycles: a page
// with both a self-loop and a participation in a 3-node cycle must still
// report the larger cycle as non-DAG, since only the self-loop edges are
// dropped.
func TestSelfLoopRemovalLeavesLargerCyclesDetected(t *testing.T) {
	pages := []*model.Page{
		page("A", model.Transition{TargetUID: "A"}, model.Transition{TargetUID: "B"}),
		page("B", model.Transition{TargetUID: "C"}),
		page("C", model.Transition{TargetUID: "A"}),
	}
	g := Build(pages, Options{})
	_, ok, cycle := g.TopoSort()
	if ok {
		t.Fatalf("expected the A->B->C->A cycle to be detected despite A's self-loop being dropped")
	}
	if len(cycle) != 3 {
		t.Errorf("cycle = %v, want 3 distinct nodes", cycle)
	}
}

// TestTopoSortOrderRespectsEveryEdge is a property check over TopoSort: for
// every transition edge in the source graph, the order returned must place
// the source strictly before the target.
func TestTopoSortOrderRespectsEveryEdge(t *testing.T) {
	pages := []*model.Page{
		page("A", model.Transition{TargetUID: "C"}),
		page("B", model.Transition{TargetUID: "C"}, model.Transition{TargetUID: "D"}),
		page("C", model.Transition{TargetUID: "D"}),
		page("D"),
	}
	g := Build(pages, Options{})
	order, ok, _ := g.TopoSort()
	if !ok {
		t.Fatalf("expected DAG")
	}
	idx := make(map[string]int, len(order))
	for i, uid := range order {
		idx[uid] = i
	}
	for _, p := range pages {
		for _, tr := range p.Transitions {
			if idx[p.UID] >= idx[tr.TargetUID] {
				t.Errorf("edge %s->%s violates topological order %v", p.UID, tr.TargetUID, order)
			}
		}
	}
}

func TestNodeColorsDropsAmbiguousPrefix(t *testing.T) {
	colors := NodeColors([]string{"ab1", "abc2", "zz1"})
	if _, ok := colors["ab1"]; ok {
		t.Errorf("ab1 should be uncolored: its prefix %q is a prefix of abc2's %q", "ab", "abc")
	}
	if _, ok := colors["abc2"]; !ok {
		t.Errorf("abc2 should be colored")
	}
	if _, ok := colors["zz1"]; !ok {
		t.Errorf("zz1 should be colored")
	}
}

func TestToDOTIncludesNodeShapeAndLabel(t *testing.T) {
	pages := []*model.Page{page("A", model.Transition{TargetUID: "B"}), page("B")}
	g := Build(pages, Options{})
	dot := ToDOT(pages, g, Options{Filename: "q.xml"})
	if !strings.Contains(dot, "node [shape=box]") {
		t.Errorf("missing node shape attr: %s", dot)
	}
	if !strings.Contains(dot, `graph [label="q.xml"]`) {
		t.Errorf("missing graph label attr: %s", dot)
	}
	if !strings.Contains(dot, `"A" -> "B"`) {
		t.Errorf("missing edge: %s", dot)
	}
}
