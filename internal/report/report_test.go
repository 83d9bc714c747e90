package report

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestWrite_TranscriptContents(t *testing.T) {
	dir := t.TempDir()

	path, err := Write(dir, "qwen --all-files --yolo -p test", "analysis output", "some warning")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("report written outside requested dir: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	content := string(data)
	for _, want := range []string{
		"Command: qwen --all-files --yolo -p test",
		"analysis output",
		"STDERR:",
		"some warning",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestWrite_NoStderrSection(t *testing.T) {
	path, err := Write(t.TempDir(), "cmd", "output only", "")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "STDERR") {
		t.Error("empty stderr should not produce a STDERR section")
	}
}

func TestExtractSummary_PrefersHeadings(t *testing.T) {
	var b strings.Builder
	b.WriteString("intro line one\nintro line two\nintro three\nintro four\nintro five\n")
	for i := 0; i < 40; i++ {
		b.WriteString(fmt.Sprintf("detail line %d\n", i))
	}
	b.WriteString("# Findings\n## Key Issues\nSummary of results\n")

	got := ExtractSummary(b.String())
	lines := strings.Split(got, "\n")
	if len(lines) > 30 {
		t.Errorf("summary exceeds 30 lines: %d", len(lines))
	}
	if !strings.Contains(got, "intro line one") {
		t.Error("first lines should always be kept")
	}
}

func TestExtractSummary_CapsAtThirtyLines(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 45; i++ {
		b.WriteString(fmt.Sprintf("# heading %d\n", i))
	}

	got := ExtractSummary(b.String())
	if n := len(strings.Split(got, "\n")); n != 30 {
		t.Errorf("expected exactly 30 lines, got %d", n)
	}
}

func TestExtractSummary_ShortOutputSurvives(t *testing.T) {
	out := "only line one\nonly line two"
	got := ExtractSummary(out)
	if !strings.Contains(got, "only line one") || !strings.Contains(got, "only line two") {
		t.Errorf("short output should survive intact, got %q", got)
	}
}
