package lint

import (
	"fmt"
	"io"
	"time"

	"github.com/yacobolo/cssselect/jsonx"
)

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows issues in golangci-lint format followed by a summary
	OutputIssues OutputFormat = "issues"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format; unknown values fall back
// to issues.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	default:
		return OutputIssues
	}
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *Result, format OutputFormat, config Config) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, result)
	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		if config.ShowStats {
			reporter.PrintStatistics(*result)
		}
		return nil
	}
}

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues      int `json:"total_issues"`
	Errors           int `json:"errors"`
	Warnings         int `json:"warnings"`
	Truncated        int `json:"truncated"`
	FilesScanned     int `json:"files_scanned"`
	SelectorsChecked int `json:"selectors_checked"`
}

// JSONStats contains document composition counts
type JSONStats struct {
	Fragments    map[string]int `json:"fragments"` // keyed by fragment kind
	Combinations int            `json:"combinations"`
	References   int            `json:"references"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *Result) error {
	if err := jsonx.Write(w, buildJSONOutput(result, time.Now())); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// buildJSONOutput converts Result to JSONOutput
func buildJSONOutput(result *Result, now time.Time) JSONOutput {
	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.UTC().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:      len(result.Issues),
			Errors:           result.ErrorCount,
			Warnings:         result.WarningCount,
			Truncated:        result.TruncatedCount,
			FilesScanned:     result.FilesScanned,
			SelectorsChecked: result.SelectorsChecked,
		},
		Stats:  buildJSONStats(result.Stats),
		Issues: issues,
	}
}

func buildJSONStats(stats Stats) JSONStats {
	fragments := make(map[string]int, len(stats.Fragments))
	for kind, n := range stats.Fragments {
		fragments[kind.String()] = n
	}
	return JSONStats{
		Fragments:    fragments,
		Combinations: stats.Combinations,
		References:   stats.References,
	}
}
