// Package validation enforces source-level conventions that keep the typed
// document model honest, starting with allowlisted use of the `any` type.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Error reports a single validation finding at a file position. Code carries
// the offending source line, trimmed.
type Error struct {
	File    string
	Line    int
	Message string
	Code    string
}

// AnyAllowlist is the reviewed register of permitted `any` usages.
type AnyAllowlist struct {
	Version      int                 `json:"version"`
	ExcludeGlobs []string            `json:"exclude_globs"`
	Entries      []AnyAllowlistEntry `json:"entries"`
}

// AnyAllowlistEntry scopes one permission: a file, optionally narrowed to the
// declarations named in Symbols. An entry without Symbols covers the whole
// file.
type AnyAllowlistEntry struct {
	Path      string   `json:"path"`
	Symbols   []string `json:"symbols,omitempty"`
	Category  string   `json:"category"`
	Public    bool     `json:"public"`
	Rationale string   `json:"rationale"`
	Owner     string   `json:"owner"`
	Refs      []string `json:"refs,omitempty"`
}

var anyCategories = map[string]struct{}{
	"json-boundary":      {},
	"third-party-shim":   {},
	"reflection":         {},
	"generic-constraint": {},
	"internal-helper":    {},
	"test-only":          {},
	"legacy-exception":   {},
}

// LoadAnyAllowlist reads, validates, and normalizes the allowlist at
// listPath.
func LoadAnyAllowlist(listPath string) (AnyAllowlist, error) {
	// #nosec G304 -- the path is supplied by repo tooling
	raw, err := os.ReadFile(listPath)
	if err != nil {
		return AnyAllowlist{}, fmt.Errorf("load any allowlist: %w", err)
	}
	var allowlist AnyAllowlist
	if err := json.Unmarshal(raw, &allowlist); err != nil {
		return AnyAllowlist{}, fmt.Errorf("decode any allowlist: %w", err)
	}
	return allowlist.normalized()
}

// ValidateAnyUsageFromFile loads the allowlist and scans the given roots.
func ValidateAnyUsageFromFile(listPath, baseDir string, roots []string) ([]Error, error) {
	allowlist, err := LoadAnyAllowlist(listPath)
	if err != nil {
		return nil, err
	}
	return ValidateAnyUsage(allowlist, baseDir, roots)
}

// ValidateAnyUsage reports every explicit `any` under the roots that the
// allowlist does not cover. Roots are resolved relative to baseDir; findings
// use slash-separated paths relative to baseDir.
func ValidateAnyUsage(allowlist AnyAllowlist, baseDir string, roots []string) ([]Error, error) {
	if len(roots) == 0 {
		return nil, errors.New("any usage scan: no roots given")
	}
	normalized, err := allowlist.normalized()
	if err != nil {
		return nil, err
	}
	baseAbs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("absolute base dir: %w", err)
	}
	index := permissionIndex(normalized.Entries)

	var findings []Error
	for _, root := range roots {
		root = strings.TrimSpace(root)
		if root == "" {
			continue
		}
		abs := root
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(baseAbs, root)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("scan root %s: %w", root, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("scan root %s: not a directory", root)
		}
		walkErr := filepath.WalkDir(abs, func(p string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() || !strings.HasSuffix(p, ".go") {
				return nil
			}
			rel, err := filepath.Rel(baseAbs, p)
			if err != nil {
				return err
			}
			rel = normalizePath(rel)
			if excluded(rel, normalized.ExcludeGlobs) {
				return nil
			}
			perm := index[rel]
			if perm != nil && perm.wholeFile {
				return nil
			}
			fileFindings, err := scanFile(p, rel, perm)
			if err != nil {
				return err
			}
			findings = append(findings, fileFindings...)
			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}
	return findings, nil
}

// normalized returns a validated copy with paths, symbols, and free-text
// fields trimmed.
func (l AnyAllowlist) normalized() (AnyAllowlist, error) {
	if l.Version < 1 {
		return AnyAllowlist{}, errors.New("any allowlist: version must be at least 1")
	}
	out := l
	out.ExcludeGlobs = make([]string, 0, len(l.ExcludeGlobs))
	for _, glob := range l.ExcludeGlobs {
		if glob = strings.TrimSpace(glob); glob != "" {
			out.ExcludeGlobs = append(out.ExcludeGlobs, glob)
		}
	}
	out.Entries = make([]AnyAllowlistEntry, len(l.Entries))
	for i, entry := range l.Entries {
		entry.Path = normalizePath(entry.Path)
		if entry.Path == "" || entry.Path == "." {
			return AnyAllowlist{}, fmt.Errorf("any allowlist: entry %d has no path", i)
		}
		entry.Category = strings.TrimSpace(entry.Category)
		if entry.Category == "" {
			return AnyAllowlist{}, fmt.Errorf("any allowlist: entry %d (%s) has no category", i, entry.Path)
		}
		if _, known := anyCategories[entry.Category]; !known {
			return AnyAllowlist{}, fmt.Errorf("any allowlist: entry %d (%s) has unknown category %q", i, entry.Path, entry.Category)
		}
		entry.Owner = strings.TrimSpace(entry.Owner)
		if entry.Owner == "" {
			return AnyAllowlist{}, fmt.Errorf("any allowlist: entry %d (%s) has no owner", i, entry.Path)
		}
		entry.Rationale = strings.TrimSpace(entry.Rationale)
		if entry.Rationale == "" {
			return AnyAllowlist{}, fmt.Errorf("any allowlist: entry %d (%s) has no rationale", i, entry.Path)
		}
		if entry.Public && entry.Category != "json-boundary" && entry.Category != "legacy-exception" {
			return AnyAllowlist{}, fmt.Errorf("any allowlist: entry %d (%s) is public but categorized %q; public exceptions must be json-boundary or legacy-exception", i, entry.Path, entry.Category)
		}
		entry.Symbols = trimmedSymbols(entry.Symbols)
		out.Entries[i] = entry
	}
	return out, nil
}

func trimmedSymbols(symbols []string) []string {
	var out []string
	for _, symbol := range symbols {
		if symbol = strings.TrimSpace(symbol); symbol != "" {
			out = append(out, symbol)
		}
	}
	return out
}

// permission is the merged allowance for one file: either the whole file or
// a set of declaration symbols.
type permission struct {
	wholeFile bool
	symbols   map[string]struct{}
}

func (p *permission) covers(symbol string) bool {
	if p == nil {
		return false
	}
	if p.wholeFile {
		return true
	}
	_, ok := p.symbols[symbol]
	return ok
}

func permissionIndex(entries []AnyAllowlistEntry) map[string]*permission {
	index := make(map[string]*permission, len(entries))
	for _, entry := range entries {
		perm := index[entry.Path]
		if perm == nil {
			perm = &permission{symbols: make(map[string]struct{})}
			index[entry.Path] = perm
		}
		if len(entry.Symbols) == 0 {
			perm.wholeFile = true
			continue
		}
		for _, symbol := range entry.Symbols {
			perm.symbols[symbol] = struct{}{}
		}
	}
	return index
}

func scanFile(absPath, relPath string, perm *permission) ([]Error, error) {
	// #nosec G304 -- paths come from walking validated roots
	src, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, absPath, src, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	var findings []Error
	var lines []string
	for _, scope := range declScopes(file) {
		if perm.covers(scope.symbol) {
			continue
		}
		for _, pos := range scopeAnyPositions(scope.node) {
			if lines == nil {
				lines = strings.Split(string(src), "\n")
			}
			position := fset.Position(pos)
			code := ""
			if position.Line > 0 && position.Line <= len(lines) {
				code = strings.TrimSpace(lines[position.Line-1])
			}
			findings = append(findings, Error{
				File:    relPath,
				Line:    position.Line,
				Message: "any outside the allowlist; use a concrete type or add a reviewed entry",
				Code:    code,
			})
		}
	}
	return findings, nil
}

// declScope pairs a top-level declaration with the symbol findings inside it
// are attributed to: the type name, the first var/const name, the function
// name, or the method's receiver type.
type declScope struct {
	symbol string
	node   ast.Node
}

func declScopes(file *ast.File) []declScope {
	var scopes []declScope
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			scopes = append(scopes, declScope{symbol: funcSymbol(d), node: d})
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					scopes = append(scopes, declScope{symbol: s.Name.Name, node: s})
				case *ast.ValueSpec:
					symbol := ""
					if len(s.Names) > 0 {
						symbol = s.Names[0].Name
					}
					scopes = append(scopes, declScope{symbol: symbol, node: s})
				}
			}
		}
	}
	return scopes
}

func funcSymbol(fn *ast.FuncDecl) string {
	if fn.Recv != nil && len(fn.Recv.List) > 0 {
		if name := receiverType(fn.Recv.List[0].Type); name != "" {
			return name
		}
	}
	return fn.Name.Name
}

func receiverType(expr ast.Expr) string {
	for {
		switch node := expr.(type) {
		case *ast.Ident:
			return node.Name
		case *ast.StarExpr:
			expr = node.X
		case *ast.IndexExpr:
			expr = node.X
		case *ast.IndexListExpr:
			expr = node.X
		default:
			return ""
		}
	}
}

type span struct {
	from, to token.Pos
}

func within(spans []span, pos token.Pos) bool {
	for _, s := range spans {
		if pos >= s.from && pos < s.to {
			return true
		}
	}
	return false
}

// scopeAnyPositions returns the positions of every `any` used as a type
// inside scope, in source order. Type-parameter constraints are part of the
// generic syntax and are skipped; their spans are always recorded before the
// walk descends into them.
func scopeAnyPositions(scope ast.Node) []token.Pos {
	var constraints []span
	var hits []token.Pos
	ast.Inspect(scope, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.FuncType:
			constraints = constraintSpans(constraints, node.TypeParams)
		case *ast.TypeSpec:
			constraints = constraintSpans(constraints, node.TypeParams)
		}
		for _, expr := range typeExprChildren(n) {
			ident, ok := expr.(*ast.Ident)
			if !ok || ident.Name != "any" || within(constraints, ident.Pos()) {
				continue
			}
			hits = append(hits, ident.Pos())
		}
		return true
	})
	return hits
}

func constraintSpans(spans []span, params *ast.FieldList) []span {
	if params == nil {
		return spans
	}
	for _, field := range params.List {
		if field.Type != nil {
			spans = append(spans, span{from: field.Type.Pos(), to: field.Type.End()})
		}
	}
	return spans
}

// typeExprChildren lists the children of n that sit in type position. An
// `any` identifier is a usage exactly when its parent reports it here, so
// each usage is seen once even in nested types.
func typeExprChildren(n ast.Node) []ast.Expr {
	switch node := n.(type) {
	case *ast.ArrayType:
		return []ast.Expr{node.Elt}
	case *ast.MapType:
		return []ast.Expr{node.Key, node.Value}
	case *ast.ChanType:
		return []ast.Expr{node.Value}
	case *ast.StarExpr:
		return []ast.Expr{node.X}
	case *ast.Ellipsis:
		return []ast.Expr{node.Elt}
	case *ast.Field:
		return []ast.Expr{node.Type}
	case *ast.ValueSpec:
		return []ast.Expr{node.Type}
	case *ast.TypeSpec:
		return []ast.Expr{node.Type}
	case *ast.TypeAssertExpr:
		return []ast.Expr{node.Type}
	case *ast.IndexExpr:
		return []ast.Expr{node.Index}
	case *ast.IndexListExpr:
		return append([]ast.Expr(nil), node.Indices...)
	case *ast.CallExpr:
		return []ast.Expr{node.Fun}
	}
	return nil
}

func excluded(relPath string, globs []string) bool {
	for _, glob := range globs {
		if matchGlob(glob, relPath) {
			return true
		}
	}
	return false
}

// matchGlob interprets pattern segment-wise: * and ? never cross a slash,
// ** spans zero or more whole segments.
func matchGlob(pattern, value string) bool {
	return matchSegments(
		strings.Split(normalizePath(pattern), "/"),
		strings.Split(normalizePath(value), "/"),
	)
}

func matchSegments(pattern, value []string) bool {
	if len(pattern) == 0 {
		return len(value) == 0
	}
	if pattern[0] == "**" {
		for skip := 0; skip <= len(value); skip++ {
			if matchSegments(pattern[1:], value[skip:]) {
				return true
			}
		}
		return false
	}
	if len(value) == 0 {
		return false
	}
	if ok, err := path.Match(pattern[0], value[0]); err != nil || !ok {
		return false
	}
	return matchSegments(pattern[1:], value[1:])
}

func normalizePath(p string) string {
	cleaned := filepath.ToSlash(filepath.Clean(strings.TrimSpace(p)))
	return strings.TrimPrefix(cleaned, "./")
}
