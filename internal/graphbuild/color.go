package graphbuild

import (
	"sort"
	"strings"

	"github.com/cfrie/qrt/internal/config"
)

// alphaPrefix returns uid's longest leading run of ASCII letters.
func alphaPrefix(uid string) string {
	i := 0
	for i < len(uid) && isAlpha(uid[i]) {
		i++
	}
	return uid[:i]
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// NodeColors assigns each uid a palette color by its longest-contiguous-
// alpha prefix, dropping any prefix that is itself a prefix of another
// observed prefix (ambiguous grouping is left uncolored) (spec §4.E).
// Surviving prefixes are paired with the palette in sorted order; prefixes
// beyond the palette's length are left uncolored.
func NodeColors(uids []string) map[string]string {
	prefixOf := make(map[string]string, len(uids))
	observed := make(map[string]bool)
	for _, uid := range uids {
		p := alphaPrefix(uid)
		prefixOf[uid] = p
		if p != "" {
			observed[p] = true
		}
	}

	ambiguous := make(map[string]bool)
	for p := range observed {
		for q := range observed {
			if p != q && strings.HasPrefix(q, p) {
				ambiguous[p] = true
			}
		}
	}

	var kept []string
	for p := range observed {
		if !ambiguous[p] {
			kept = append(kept, p)
		}
	}
	sort.Strings(kept)

	colorOf := make(map[string]string, len(kept))
	for i, p := range kept {
		if i >= len(config.NodeColorPalette) {
			break
		}
		colorOf[p] = config.NodeColorPalette[i]
	}

	out := make(map[string]string, len(uids))
	for _, uid := range uids {
		if c, ok := colorOf[prefixOf[uid]]; ok {
			out[uid] = c
		}
	}
	return out
}
