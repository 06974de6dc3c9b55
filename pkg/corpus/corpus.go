// Package corpus runs the parser across the potassco/pddl-instances
// benchmark collection.
//
// The collection gathers the domains of the International Planning
// Competitions, one directory per year. Most declare requirements beyond
// the supported subset; the point of a corpus run is the tally, not a
// pass/fail bit: how many domains parse, how many are rejected by the
// requirement gate and for which flags, and which fail outright.
package corpus

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/rs/zerolog"

	"github.com/plankit/pddl/pkg/parser"
	"github.com/plankit/pddl/pkg/types"
)

// DefaultRepoURL is the upstream benchmark collection.
const DefaultRepoURL = "https://github.com/potassco/pddl-instances"

// Clone fetches the corpus repository into dir. Progress output is
// written to progress when non-nil.
func Clone(ctx context.Context, url, dir string, progress io.Writer) error {
	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:      url,
		Depth:    1,
		Progress: progress,
	})
	return err
}

// DomainFiles enumerates domain files under a corpus checkout. The layout
// is <year>/domains/<name>/ with either a single domain.pddl or a
// domains/ subdirectory holding several domain-*.pddl variants.
func DomainFiles(root string) ([]string, error) {
	years, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, year := range years {
		if !year.IsDir() || strings.HasPrefix(year.Name(), ".") {
			continue
		}
		domainsDir := filepath.Join(root, year.Name(), "domains")
		entries, err := os.ReadDir(domainsDir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			files = append(files, domainFilesIn(filepath.Join(domainsDir, e.Name()))...)
		}
	}
	return files, nil
}

func domainFilesIn(dir string) []string {
	single := filepath.Join(dir, "domain.pddl")
	if _, err := os.Stat(single); err == nil {
		return []string{single}
	}
	entries, err := os.ReadDir(filepath.Join(dir, "domains"))
	if err != nil {
		return nil
	}
	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "domain") || !strings.HasSuffix(name, ".pddl") {
			continue
		}
		files = append(files, filepath.Join(dir, "domains", name))
	}
	return files
}

// Failure records one domain file the parser could not handle, excluding
// requirement-gate rejections.
type Failure struct {
	Path string
	Err  error
}

// Report tallies one corpus run.
type Report struct {
	Total       int
	Parsed      int
	Unsupported map[types.Requirement]int
	Failures    []Failure
}

// Rejected returns the number of domains refused by the requirement gate.
func (r *Report) Rejected() int {
	n := 0
	for _, count := range r.Unsupported {
		n += count
	}
	return n
}

// Run parses every given domain file and tallies the outcomes. It stops
// early only when ctx is cancelled.
func Run(ctx context.Context, log zerolog.Logger, files []string) (*Report, error) {
	report := &Report{Unsupported: make(map[types.Requirement]int)}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Total++

		src, err := os.ReadFile(path)
		if err != nil {
			report.Failures = append(report.Failures, Failure{Path: path, Err: err})
			continue
		}
		log.Debug().Str("file", path).Msg("parsing")

		if _, err := parser.ParseDomain(string(src)); err != nil {
			var perr *types.Error
			if errors.As(err, &perr) && perr.Code == types.ErrUnsupportedRequirement {
				report.Unsupported[perr.Requirement]++
				continue
			}
			log.Warn().Err(err).Str("file", path).Msg("parse failed")
			report.Failures = append(report.Failures, Failure{Path: path, Err: err})
			continue
		}
		report.Parsed++
	}
	return report, nil
}
