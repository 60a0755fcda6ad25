package graphbuild

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cfrie/qrt/internal/config"
	"github.com/cfrie/qrt/internal/model"
)

// ToDOT renders g as DOT text: node_attr.shape=box, optional
// graph_attr.label=opts.Filename, optional per-node fill color, and edge
// labels as built by buildRenderEdges (spec §4.E).
func ToDOT(pages []*model.Page, g *Graph, opts Options) string {
	var b strings.Builder
	b.WriteString("digraph questionnaire {\n")
	if opts.Filename != "" {
		fmt.Fprintf(&b, "  graph [label=%q];\n", opts.Filename)
	}
	b.WriteString("  node [shape=box];\n")

	labelOf := make(map[string]string, len(pages))
	for _, p := range pages {
		if opts.ShowVar {
			labelOf[p.UID] = NodeLabel(p)
		} else {
			labelOf[p.UID] = p.UID
		}
	}

	var colors map[string]string
	if opts.ColorNodes {
		colors = NodeColors(g.NodeOrder)
	}

	for _, uid := range g.NodeOrder {
		label := labelOf[uid]
		if label == "" {
			label = uid
		}
		if c, ok := colors[uid]; ok {
			fmt.Fprintf(&b, "  %q [label=%q, style=filled, fillcolor=%q];\n", uid, label, c)
		} else {
			fmt.Fprintf(&b, "  %q [label=%q];\n", uid, label)
		}
	}

	edges := make([]Edge, len(g.RenderEdges))
	copy(edges, g.RenderEdges)
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	for _, e := range edges {
		switch {
		case e.IsJumper && e.Label != "":
			fmt.Fprintf(&b, "  %q -> %q [label=%q, color=%q];\n", e.From, e.To, e.Label, config.JumperEdgeColor)
		case e.IsJumper:
			fmt.Fprintf(&b, "  %q -> %q [color=%q];\n", e.From, e.To, config.JumperEdgeColor)
		case e.Label != "":
			fmt.Fprintf(&b, "  %q -> %q [label=%q];\n", e.From, e.To, e.Label)
		default:
			fmt.Fprintf(&b, "  %q -> %q;\n", e.From, e.To)
		}
	}

	b.WriteString("}\n")
	return b.String()
}
