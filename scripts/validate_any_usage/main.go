// Command validate_any_usage scans the repository for explicit `any` types
// that are not covered by the reviewed allowlist in internal/ci.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"pantrycore/internal/validation"
)

const (
	defaultAllowlistPath = "internal/ci/any_allowlist.json"
	defaultRoots         = "pkg/catalog,pkg/domain,internal/core,internal/logging,internal/httpapi,internal/blob,internal/export,internal/infra"
)

type validateFn func(allowlistPath, baseDir string, roots []string) ([]validation.Error, error)

var (
	exitFunc     = os.Exit
	getwd        = os.Getwd
	validateFunc = validation.ValidateAnyUsageFromFile
)

func main() {
	exitFunc(run(os.Args, os.Stderr, validateFunc))
}

func run(args []string, stderr io.Writer, validate validateFn) int {
	if len(args) == 0 {
		return 1
	}
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(stderr)
	allowlist := flags.String("allowlist", defaultAllowlistPath, "allowlist file with reviewed any usages")
	rootsFlag := flags.String("roots", defaultRoots, "comma-separated directories to scan")
	if err := flags.Parse(args[1:]); err != nil {
		return 1
	}

	roots := splitRoots(*rootsFlag)
	if len(roots) == 0 {
		_, _ = fmt.Fprintln(stderr, "no scan roots configured")
		return 1
	}
	baseDir, err := getwd()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "determine working directory: %v\n", err)
		return 1
	}

	findings, err := validate(*allowlist, baseDir, roots)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "any usage check failed: %v\n", err)
		return 1
	}
	if len(findings) == 0 {
		return 0
	}
	for _, finding := range findings {
		_, _ = fmt.Fprintf(stderr, "%s:%d: %s\n", finding.File, finding.Line, finding.Message)
		if finding.Code != "" {
			_, _ = fmt.Fprintf(stderr, "\t%s\n", finding.Code)
		}
	}
	_, _ = fmt.Fprintf(stderr, "%d any usages outside the allowlist\n", len(findings))
	return 1
}

func splitRoots(value string) []string {
	var roots []string
	for _, root := range strings.Split(value, ",") {
		if root = strings.TrimSpace(root); root != "" {
			roots = append(roots, root)
		}
	}
	return roots
}
