package report

import (
	"fmt"
	"strings"
)

// RenderText writes sections as plain, human-readable text: a "== Title =="
// line, an optional description line, then the body rendered per Kind. Used
// by the CLI's analyze command for its text output; it emits no color.
func RenderText(sections []Section) string {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "== %s ==\n", s.Title)
		if s.Description != "" {
			fmt.Fprintf(&b, "%s\n", s.Description)
		}
		switch s.Kind {
		case KindScalar:
			fmt.Fprintf(&b, "%s\n", s.Scalar)
		case KindList:
			if len(s.List) == 0 {
				b.WriteString("(none)\n")
				continue
			}
			for _, item := range s.List {
				fmt.Fprintf(&b, "- %s\n", item)
			}
		case KindTable:
			renderTable(&b, s.TableHeader, s.TableRows)
		case KindCode:
			b.WriteString(s.Code)
			if !strings.HasSuffix(s.Code, "\n") {
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func renderTable(b *strings.Builder, header []string, rows [][]string) {
	if len(rows) == 0 {
		b.WriteString("(empty)\n")
		return
	}
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	writeRow := func(cells []string) {
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			fmt.Fprintf(b, "%-*s  ", w, cell)
		}
		b.WriteString("\n")
	}
	writeRow(header)
	for _, row := range rows {
		writeRow(row)
	}
}
