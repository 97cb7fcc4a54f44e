package lint

// LinterName is the FromLinter value of every issue.
const LinterName = "selectorlint"

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "selectorlint"
	Text        string   `json:"Text"`        // "class value \"1col\" is not a valid CSS identifier"
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of the document with the issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/selectors/nav.selectors.yaml"
	Line     int    `json:"Line"`     // 12
	Column   int    `json:"Column"`   // 9 (1-based)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Issue messages
const (
	IssueEmptyValue            = "%s value is empty"
	IssueInvalidIdent          = "%s value %q is not a valid CSS identifier"
	IssueRedundantPrefix       = "%s value %q should not include the %q prefix"
	IssuePseudoClassSyntax     = "pseudo-class %q should be an identifier or a function call"
	IssueAttributeSyntax       = "attribute %q should start with an attribute name"
	IssueNonStandardCombinator = "combinator %q is not a standard CSS combinator"
)
