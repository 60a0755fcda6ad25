// Package config holds fixed, document-independent constants: the XML
// namespaces recognized by the reader, the preload-variable naming
// convention, and the node color palette used by the graph layer.
package config

// QuestionnaireNamespaceURI is the fixed namespace (Q-NS) under which every
// recognized questionnaire element is matched. The documents in this corpus
// declare it as the default namespace (no prefix), so the reader matches
// elements by local tag name rather than by qualified name.
const QuestionnaireNamespaceURI = "http://www.his.de/zofar/xml/questionnaire"

// DisplayNamespaceURI (D-NS) qualifies the optional display-text tag. Unlike
// Q-NS it is expected to carry an explicit prefix, so elements under it are
// matched by namespace URI rather than by bare local name.
const DisplayNamespaceURI = "http://www.dzhw.eu/zofar/xml/display"

// PreloadVariablePrefix is prepended to a preloadItem's "variable" attribute
// to form the declared Variable name. Preserved verbatim from the source
// tool for backward compatibility with downstream consumers (see
// DESIGN.md, Open Question 3).
const PreloadVariablePrefix = "PRELOAD"

// Default condition/onExit/direction values used when the corresponding
// attribute is absent from the source document.
const (
	DefaultCondition = "true"
	DefaultOnExit    = "true"
	DefaultDirection = "forward"
)

// NodeColorPalette is the fixed, ordered set of color names zipped against
// surviving page-uid prefixes when node coloring is requested (spec §4.E).
var NodeColorPalette = []string{
	"brown4", "burlywood4", "cadetblue4", "chartreuse4", "chocolate4",
	"coral4", "cornsilk3", "cyan2", "darkgoldenrod", "darkgray",
	"darkolivegreen", "darkorange", "darkorchid", "darkred",
	"darkseagreen3", "darkslategray2", "darkviolet", "deeppink4",
	"deepskyblue4", "dodgerblue2", "firebrick2", "fuchsia", "gold2",
	"goldenrod",
}

// JumperEdgeColor is the edge color used to visually distinguish jumper
// edges from ordinary transitions when jumpers are rendered.
const JumperEdgeColor = "violet"
