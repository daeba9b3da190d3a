package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func fixtureEntry(path string, symbols ...string) AnyAllowlistEntry {
	return AnyAllowlistEntry{
		Path:      path,
		Symbols:   symbols,
		Category:  "internal-helper",
		Rationale: "fixture",
		Owner:     "core maintainers",
	}
}

func fixtureAllowlist(entries ...AnyAllowlistEntry) AnyAllowlist {
	return AnyAllowlist{
		Version:      1,
		ExcludeGlobs: []string{"**/*_test.go"},
		Entries:      entries,
	}
}

func TestLoadAnyAllowlist(t *testing.T) {
	dir := t.TempDir()
	listPath := filepath.Join(dir, "allow.json")
	writeFixture(t, listPath, `{
  "version": 1,
  "exclude_globs": ["**/*_test.go"],
  "entries": [
    {
      "path": " internal/store/codec.go ",
      "symbols": [" DocumentCodec ", ""],
      "category": "json-boundary",
      "public": true,
      "rationale": " snapshot payloads vary per document ",
      "owner": " core maintainers "
    }
  ]
}`)

	allowlist, err := LoadAnyAllowlist(listPath)
	if err != nil {
		t.Fatalf("load allowlist: %v", err)
	}
	got := allowlist.Entries[0]
	if got.Path != "internal/store/codec.go" {
		t.Fatalf("path not normalized: %q", got.Path)
	}
	if len(got.Symbols) != 1 || got.Symbols[0] != "DocumentCodec" {
		t.Fatalf("symbols not trimmed: %v", got.Symbols)
	}
	if got.Owner != "core maintainers" || got.Rationale != "snapshot payloads vary per document" {
		t.Fatalf("fields not trimmed: %+v", got)
	}

	if _, err := LoadAnyAllowlist(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected error for a missing allowlist")
	}
	writeFixture(t, filepath.Join(dir, "broken.json"), "{")
	if _, err := LoadAnyAllowlist(filepath.Join(dir, "broken.json")); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}

func TestAllowlistValidation(t *testing.T) {
	valid := func() AnyAllowlist {
		return AnyAllowlist{Version: 1, Entries: []AnyAllowlistEntry{{
			Path:      "internal/store/codec.go",
			Category:  "json-boundary",
			Public:    true,
			Rationale: "snapshots",
			Owner:     "core maintainers",
		}}}
	}
	cases := []struct {
		name    string
		mutate  func(*AnyAllowlist)
		wantErr string
	}{
		{"accepts a valid list", func(*AnyAllowlist) {}, ""},
		{"rejects version zero", func(l *AnyAllowlist) { l.Version = 0 }, "version"},
		{"rejects a blank path", func(l *AnyAllowlist) { l.Entries[0].Path = "  " }, "no path"},
		{"rejects a blank category", func(l *AnyAllowlist) { l.Entries[0].Category = "" }, "no category"},
		{"rejects an unknown category", func(l *AnyAllowlist) { l.Entries[0].Category = "whatever" }, "unknown category"},
		{"rejects a blank owner", func(l *AnyAllowlist) { l.Entries[0].Owner = " " }, "no owner"},
		{"rejects a blank rationale", func(l *AnyAllowlist) { l.Entries[0].Rationale = "" }, "no rationale"},
		{"rejects a public helper", func(l *AnyAllowlist) { l.Entries[0].Category = "internal-helper" }, "public"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			list := valid()
			tc.mutate(&list)
			_, err := list.normalized()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected %q error, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestScanFlagsUnlistedAny(t *testing.T) {
	base := t.TempDir()
	writeFixture(t, filepath.Join(base, "internal", "store", "codec.go"), `package store

type DocumentPayload map[string]any
`)

	findings, err := ValidateAnyUsage(fixtureAllowlist(), base, []string{"internal/store"})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected one finding, got %v", findings)
	}
	got := findings[0]
	if got.File != "internal/store/codec.go" || got.Line != 3 {
		t.Fatalf("wrong location: %+v", got)
	}
	if got.Code != "type DocumentPayload map[string]any" {
		t.Fatalf("wrong code line: %q", got.Code)
	}
	if got.Message == "" {
		t.Fatalf("finding carries no message")
	}
}

func TestScanHonorsSymbolEntries(t *testing.T) {
	base := t.TempDir()
	writeFixture(t, filepath.Join(base, "internal", "store", "codec.go"), `package store

type DocumentPayload map[string]any

var scratch any
`)

	allowlist := fixtureAllowlist(fixtureEntry("internal/store/codec.go", "DocumentPayload"))
	findings, err := ValidateAnyUsage(allowlist, base, []string{"internal/store"})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected only the var finding, got %v", findings)
	}
	if findings[0].Line != 5 || findings[0].Code != "var scratch any" {
		t.Fatalf("unexpected finding: %+v", findings[0])
	}
}

func TestScanWholeFileEntry(t *testing.T) {
	base := t.TempDir()
	writeFixture(t, filepath.Join(base, "internal", "store", "codec.go"), `package store

func decode(raw []byte) (any, error) { return nil, nil }
`)

	allowlist := fixtureAllowlist(fixtureEntry("internal/store/codec.go"))
	findings, err := ValidateAnyUsage(allowlist, base, []string{"internal/store"})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("whole-file entry did not cover the file: %v", findings)
	}
}

func TestScanSkipsExcludedGlobs(t *testing.T) {
	base := t.TempDir()
	writeFixture(t, filepath.Join(base, "internal", "store", "codec_test.go"), `package store

var scratch any
`)

	findings, err := ValidateAnyUsage(fixtureAllowlist(), base, []string{"internal/store"})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("excluded file was scanned: %v", findings)
	}
}

func TestScanIgnoresTypeParamConstraints(t *testing.T) {
	base := t.TempDir()
	writeFixture(t, filepath.Join(base, "internal", "store", "generic.go"), `package store

func keys[K comparable, V any](m map[K]V) []K { return nil }
`)

	findings, err := ValidateAnyUsage(fixtureAllowlist(), base, []string{"internal/store"})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("constraint any was flagged: %v", findings)
	}
}

func TestScanAttributesReceiverMethods(t *testing.T) {
	base := t.TempDir()
	writeFixture(t, filepath.Join(base, "internal", "store", "journal.go"), `package store

type Journal struct{}

func (j *Journal) Append(fields map[string]any) {}
`)

	allowlist := fixtureAllowlist(fixtureEntry("internal/store/journal.go", "Journal"))
	findings, err := ValidateAnyUsage(allowlist, base, []string{"internal/store"})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("method usage not attributed to receiver type: %v", findings)
	}
}

func TestScanCoversTypeExpressions(t *testing.T) {
	base := t.TempDir()
	writeFixture(t, filepath.Join(base, "internal", "store", "types.go"), `package store

type bag struct {
	row   []any
	index map[string]any
	feed  chan any
	ref   *any
}

func sink(values ...any) {
	if len(values) == 0 {
		return
	}
	_ = values[0].(any)
	_ = any(0)
}
`)

	findings, err := ValidateAnyUsage(fixtureAllowlist(), base, []string{"internal/store"})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(findings) != 7 {
		t.Fatalf("expected 7 findings (slice, map, chan, pointer, variadic, assert, conversion), got %d: %v", len(findings), findings)
	}
	for _, finding := range findings {
		if finding.File != "internal/store/types.go" {
			t.Fatalf("finding outside fixture: %+v", finding)
		}
	}
}

func TestScanErrors(t *testing.T) {
	base := t.TempDir()
	writeFixture(t, filepath.Join(base, "plain.txt"), "not go\n")
	writeFixture(t, filepath.Join(base, "internal", "store", "broken.go"), "package store\nfunc\n")

	if _, err := ValidateAnyUsage(fixtureAllowlist(), base, nil); err == nil || !strings.Contains(err.Error(), "no roots") {
		t.Fatalf("expected no-roots error, got %v", err)
	}
	if _, err := ValidateAnyUsage(fixtureAllowlist(), base, []string{"missing"}); err == nil || !strings.Contains(err.Error(), "scan root") {
		t.Fatalf("expected missing-root error, got %v", err)
	}
	if _, err := ValidateAnyUsage(fixtureAllowlist(), base, []string{"plain.txt"}); err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Fatalf("expected non-directory error, got %v", err)
	}
	if _, err := ValidateAnyUsage(fixtureAllowlist(), base, []string{"internal/store"}); err == nil {
		t.Fatalf("expected parse error for the broken fixture")
	}
	if _, err := ValidateAnyUsage(AnyAllowlist{}, base, []string{"internal"}); err == nil || !strings.Contains(err.Error(), "version") {
		t.Fatalf("expected allowlist version error, got %v", err)
	}
}

func TestScanSkipsRootsWithoutGoFiles(t *testing.T) {
	base := t.TempDir()
	writeFixture(t, filepath.Join(base, "docs", "notes.txt"), "nothing to lint\n")

	findings, err := ValidateAnyUsage(fixtureAllowlist(), base, []string{"docs"})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("unexpected findings: %v", findings)
	}
}

func TestMatchGlob(t *testing.T) {
	cases := []struct {
		pattern string
		value   string
		want    bool
	}{
		{"**/*_test.go", "internal/store/codec_test.go", true},
		{"**/*_test.go", "codec_test.go", true},
		{"internal/*/codec.go", "internal/store/codec.go", true},
		{"internal/*/codec.go", "internal/store/deep/codec.go", false},
		{"internal/**", "internal/store/deep/codec.go", true},
		{"*.go", "internal/codec.go", false},
		{"internal/sto?e/codec.go", "internal/store/codec.go", true},
	}
	for _, tc := range cases {
		if got := matchGlob(tc.pattern, tc.value); got != tc.want {
			t.Errorf("matchGlob(%q, %q) = %v, want %v", tc.pattern, tc.value, got, tc.want)
		}
	}
}

func TestValidateAnyUsageFromFile(t *testing.T) {
	base := t.TempDir()
	writeFixture(t, filepath.Join(base, "internal", "store", "codec.go"), `package store

type DocumentPayload map[string]any
`)
	listPath := filepath.Join(base, "allow.json")
	writeFixture(t, listPath, `{
  "version": 1,
  "exclude_globs": ["**/*_test.go"],
  "entries": [
    {
      "path": "internal/store/codec.go",
      "symbols": ["DocumentPayload"],
      "category": "json-boundary",
      "public": true,
      "rationale": "snapshot payloads vary per document",
      "owner": "core maintainers"
    }
  ]
}`)

	findings, err := ValidateAnyUsageFromFile(listPath, base, []string{"internal/store"})
	if err != nil {
		t.Fatalf("validate from file: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("unexpected findings: %v", findings)
	}

	if _, err := ValidateAnyUsageFromFile(filepath.Join(base, "missing.json"), base, []string{"internal/store"}); err == nil {
		t.Fatalf("expected load error to propagate")
	}
}
