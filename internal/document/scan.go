package document

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

// ScanStats tracks file discovery statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files kept after filtering
	FilesSkipped    int // Files skipped by .gitignore
}

// Scanner expands glob patterns into selector document paths.
type Scanner struct {
	log    *zap.Logger
	ignore *ignore.GitIgnore
}

// NewScanner creates a scanner. ignoreFile is a .gitignore path; a missing
// file disables ignore filtering.
func NewScanner(log *zap.Logger, ignoreFile string) *Scanner {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Scanner{log: log.Named("scanner")}

	if ignoreFile != "" {
		gi, err := ignore.CompileIgnoreFile(ignoreFile)
		if err != nil {
			// Gracefully degrade - no .gitignore is fine
			s.log.Debug("No ignore file", zap.String("path", ignoreFile), zap.Error(err))
		} else {
			s.ignore = gi
		}
	}
	return s
}

// shouldSkip reports whether a file is excluded by .gitignore.
// Only relative paths are checked: absolute paths lie outside the project.
func (s *Scanner) shouldSkip(path string) bool {
	if s.ignore == nil || filepath.IsAbs(path) {
		return false
	}
	return s.ignore.MatchesPath(path)
}

// Scan expands patterns (doublestar syntax, e.g. "styles/**/*.yaml") into a
// deduplicated list of files in pattern order.
func (s *Scanner) Scan(patterns []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if s.shouldSkip(match) {
				stats.FilesSkipped++
				s.log.Debug("Skipping ignored file", zap.String("path", match))
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	s.log.Debug("Scan complete",
		zap.Int("discovered", stats.FilesDiscovered),
		zap.Int("scanned", stats.FilesScanned),
		zap.Int("skipped", stats.FilesSkipped))

	return files, stats, nil
}
