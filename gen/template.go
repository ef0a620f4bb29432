// Package gen assembles generated parser modules: it emits grammar
// text, drives the external grammar compiler, and rewrites the embedded
// facade template around the compiler's output.
package gen

import (
	_ "embed"
	"text/template"
)

// Placeholder symbols reserved by the facade template. They are
// guaranteed not to collide with anything else in the template, which
// is what makes exact-text renaming safe.
const (
	lexerPlaceholder  = "TplLexer"
	parserPlaceholder = "TplParser"
	entryFunc         = "parseRoot"
	antlrRuntime      = "github.com/antlr4-go/antlr/v4"
)

//go:embed templates/facade.go.tmpl
var facadeTemplate string

//go:embed templates/visitor.go.tmpl
var visitorSource string

var visitorTemplate = template.Must(template.New("visitor").Parse(visitorSource))
