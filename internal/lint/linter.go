// Package lint checks selector documents and reports issues in
// golangci-lint format.
package lint

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/yacobolo/cssselect/internal/document"
)

// Config holds linting configuration
type Config struct {
	MaxIssues        int  // 0 = unlimited (default)
	MaxSameIssues    int  // 0 = unlimited (default)
	PrintIssuedLines bool // Show source lines with issues (default: true)
	PrintLinterName  bool // Show (selectorlint) suffix (default: true)
	UseColors        bool // Force color output (default: auto-detect)
	ShowStats        bool // Print document statistics after the summary
}

// Result contains linting results
type Result struct {
	Issues           []Issue
	FilesScanned     int
	SelectorsChecked int
	ErrorCount       int
	WarningCount     int
	TruncatedCount   int // Issues removed due to limits
	Stats            Stats
}

// Linter checks selector documents.
type Linter struct {
	log      *zap.Logger
	config   Config
	compiler *document.Compiler
}

// New creates a linter.
func New(log *zap.Logger, config Config) *Linter {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("lint")
	return &Linter{
		log:      log,
		config:   config,
		compiler: document.NewCompiler(log),
	}
}

// LintFiles lints every file. Unreadable or undecodable files are reported as
// error issues rather than aborting the run.
func (l *Linter) LintFiles(paths []string) *Result {
	result := &Result{}

	for _, path := range paths {
		result.FilesScanned++
		l.log.Debug("Linting file", zap.String("path", path))

		// #nosec G304 - path comes from the user's own patterns
		data, err := os.ReadFile(path)
		if err != nil {
			result.Issues = append(result.Issues, errorIssue(path, document.Pos{}, err))
			continue
		}
		lines := strings.Split(string(data), "\n")

		format, err := document.FormatOf(path)
		if err != nil {
			result.Issues = append(result.Issues, errorIssue(path, document.Pos{}, err))
			continue
		}
		doc, err := document.Decode(data, format)
		if err != nil {
			pos := document.Pos{}
			var located *document.Error
			if errors.As(err, &located) {
				pos = located.Pos
				err = located.Err
			}
			result.Issues = append(result.Issues, withSource(errorIssue(path, pos, err), lines))
			continue
		}
		doc.Path = path

		result.SelectorsChecked += len(doc.Selectors)
		for i := range doc.Selectors {
			result.Stats.count(&doc.Selectors[i])
		}
		for _, issue := range l.LintDocument(doc) {
			result.Issues = append(result.Issues, withSource(issue, lines))
		}
	}

	l.finish(result)
	return result
}

// LintDocument returns the issues of one decoded document.
//
// Located issues are reported once per position and text, so a violation
// reached through several refs appears once. Issues without a position (JSON
// input) are kept per top-level definition and name their selector.
func (l *Linter) LintDocument(doc *document.Document) []Issue {
	type dedupKey struct {
		def  int
		pos  IssuePos
		text string
	}

	var issues []Issue
	seen := make(map[dedupKey]bool)

	add := func(def int, name string, issue Issue) {
		key := dedupKey{def: -1, pos: issue.Pos, text: issue.Text}
		if issue.Pos.Line == 0 {
			key.def = def
			if name != "" {
				issue.Text = fmt.Sprintf("selector %q: %s", name, issue.Text)
			}
		}
		if seen[key] {
			return
		}
		seen[key] = true
		issues = append(issues, issue)
	}

	for i := range doc.Selectors {
		def := &doc.Selectors[i]
		l.checkDefinition(doc.Path, def, func(issue Issue) {
			add(i, def.Name, issue)
		})
	}

	results, _ := l.compiler.Compile(doc)
	for i, res := range results {
		if res.Err == nil {
			continue
		}
		pos := res.Pos
		err := res.Err
		var located *document.Error
		if errors.As(err, &located) {
			pos = located.Pos
			err = located.Err
		}
		add(i, res.Name, errorIssue(doc.Path, pos, err))
	}
	return issues
}

// checkDefinition runs value checks on a definition and its inline operands.
// Refs are checked where they are defined.
func (l *Linter) checkDefinition(path string, def *document.Definition, emit func(Issue)) {
	for _, f := range def.Fragments {
		for _, text := range checkFragment(f.Kind, f.Value) {
			emit(warningIssue(path, f.Pos, text))
		}
	}

	if cb := def.Combine; cb != nil {
		if cb.Combinator != "" {
			for _, text := range checkCombinator(cb.Combinator) {
				emit(warningIssue(path, def.Pos, text))
			}
		}
		if cb.Left != nil {
			l.checkDefinition(path, cb.Left, emit)
		}
		if cb.Right != nil {
			l.checkDefinition(path, cb.Right, emit)
		}
	}
}

// finish counts severities and applies the configured limits.
func (l *Linter) finish(result *Result) {
	if l.config.MaxIssues > 0 || l.config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, l.config)
	}

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}
}

func errorIssue(path string, pos document.Pos, err error) Issue {
	return Issue{
		FromLinter: LinterName,
		Text:       err.Error(),
		Severity:   SeverityError,
		Pos:        IssuePos{Filename: path, Line: pos.Line, Column: pos.Column},
	}
}

func warningIssue(path string, pos document.Pos, text string) Issue {
	return Issue{
		FromLinter: LinterName,
		Text:       text,
		Severity:   SeverityWarning,
		Pos:        IssuePos{Filename: path, Line: pos.Line, Column: pos.Column},
	}
}

// withSource attaches the issue's source line when its position is known.
func withSource(issue Issue, lines []string) Issue {
	if issue.Pos.Line > 0 && issue.Pos.Line <= len(lines) {
		issue.SourceLines = []string{strings.TrimRight(lines[issue.Pos.Line-1], "\r")}
	}
	return issue
}

// limitIssues applies max-issues and max-same-issues
func limitIssues(issues []Issue, config Config) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssues > 0 && len(issues) > config.MaxIssues {
		issues = issues[:config.MaxIssues]
	}

	// Deduplication by message text
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
