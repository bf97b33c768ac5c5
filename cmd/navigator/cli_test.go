package main

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("KEYWORDS_FILE", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSearchCommand(t *testing.T) {
	out, err := run(t, "search", "--category", "healthcare", "--compliance", "90")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.HasPrefix(out, "2 datasets") {
		t.Errorf("unexpected header:\n%s", out)
	}
	for _, id := range []string{"ds-004", "ds-012"} {
		if !strings.Contains(out, id) {
			t.Errorf("output missing %s:\n%s", id, out)
		}
	}
	if strings.Contains(out, "ds-019") {
		t.Errorf("ds-019 is below the compliance floor:\n%s", out)
	}
}

func TestShowCommand(t *testing.T) {
	out, err := run(t, "show", "ds-004")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "Sample data") || !strings.Contains(out, "Related datasets:") {
		t.Errorf("show output incomplete:\n%s", out)
	}

	if _, err := run(t, "show", "ds-999"); err == nil {
		t.Errorf("show of unknown id should fail")
	}
}

func TestCompareCommandArgs(t *testing.T) {
	out, err := run(t, "compare", "ds-001", "ds-002")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if !strings.Contains(out, "Compliance Score") || !strings.Contains(out, " *") {
		t.Errorf("comparison should list metrics and mark winners:\n%s", out)
	}

	if _, err := run(t, "compare", "ds-001"); err == nil {
		t.Errorf("compare with one id should fail")
	}
	if _, err := run(t, "compare", "ds-001", "ds-002", "ds-003", "ds-004"); err == nil {
		t.Errorf("compare with four ids should fail")
	}
}

func TestSummaryAndUseCase(t *testing.T) {
	out, err := run(t, "summary")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !strings.HasPrefix(out, "Datasets: 20") {
		t.Errorf("summary header:\n%s", out)
	}

	out, err = run(t, "use-case", "lead-generation")
	if err != nil {
		t.Fatalf("use-case: %v", err)
	}
	for _, id := range []string{"ds-002", "ds-003", "ds-011"} {
		if !strings.Contains(out, id) {
			t.Errorf("use case output missing %s", id)
		}
	}
}
