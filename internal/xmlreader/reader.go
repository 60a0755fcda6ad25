// Package xmlreader parses a questionnaire XML document into the model
// package's typed representation (spec §4.B), built over
// github.com/beevik/etree's DOM tree for the ancestor-climbing and
// repeated-traversal passes the reader needs.
package xmlreader

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/cfrie/qrt/internal/config"
	"github.com/cfrie/qrt/internal/model"
)

// ParseError wraps the etree parser's message for a document that is not
// well-formed. Read parses once; no second, stricter parse is attempted.
type ParseError struct {
	Path    string
	Message string
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// Read parses data into a *model.Questionnaire. path is used only for
// diagnostic context; it is never opened by this function.
func Read(data []byte, path string) (*model.Questionnaire, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error()}
	}
	root := doc.Root()
	if root == nil {
		return nil, &ParseError{Path: path, Message: "document has no root element"}
	}

	q := &model.Questionnaire{Declared: map[string]model.Variable{}}

	for _, v := range declaredVariables(root) {
		q.Declared[v.Name] = v
	}

	for _, pageElem := range root.FindElements("./page") {
		page, warnings, fatal := readPage(pageElem)
		if fatal != nil {
			return nil, fatal.WithFile(path)
		}
		q.Pages = append(q.Pages, page)
		for _, w := range warnings {
			q.AddWarning(w.WithFile(path))
		}
	}

	return q, nil
}

// declaredVariables builds the declared-variable set from preloadItem
// entries (prefixed per config.PreloadVariablePrefix) and the
// variables/variable list, in that order (spec §4.B: "Declared variables
// are built from (preload items prefixed with the convention) plus the
// variables/variable list").
func declaredVariables(root *etree.Element) []model.Variable {
	var out []model.Variable
	for _, pi := range root.FindElements(".//preloadItem") {
		name := pi.SelectAttrValue("variable", "")
		if name == "" {
			continue
		}
		out = append(out, model.Variable{
			Name: config.PreloadVariablePrefix + name,
			Type: model.VarTypeString,
		})
	}
	for _, v := range root.FindElements(".//variables/variable") {
		name := v.SelectAttrValue("name", "")
		if name == "" {
			continue
		}
		out = append(out, model.Variable{
			Name: name,
			Type: v.SelectAttrValue("type", model.VarTypeString),
		})
	}
	return out
}
