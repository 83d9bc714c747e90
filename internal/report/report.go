// Package report persists analysis transcripts and shapes compact summaries
// out of raw tool output.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// summaryScanLines is how far into the output the extraction looks.
	summaryScanLines = 50
	// summaryMaxLines caps the extracted summary.
	summaryMaxLines = 30
	// summaryMinLines: below this the summary is padded with raw output.
	summaryMinLines = 10
	// summaryHeadLines are always kept.
	summaryHeadLines = 5
)

// Write saves a full transcript (command line, timestamp, stdout, stderr) to
// a timestamped file in dir and returns its path. An empty dir means the OS
// temp directory.
func Write(dir, command, stdout, stderr string) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}

	path := filepath.Join(dir, fmt.Sprintf("code-analysis-%d.txt", time.Now().Unix()))

	var b strings.Builder
	b.WriteString("Command: " + command + "\n")
	b.WriteString("Timestamp: " + time.Now().Format(time.RFC1123) + "\n")
	b.WriteString(strings.Repeat("=", 80) + "\n\n")
	b.WriteString(stdout)
	if stderr != "" {
		b.WriteString("\n\n" + strings.Repeat("=", 80) + "\n")
		b.WriteString("STDERR:\n")
		b.WriteString(stderr)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("saving report: %w", err)
	}
	return path, nil
}

// ExtractSummary condenses raw tool output into at most 30 lines. Headings
// and lines carrying summary keywords are preferred; the first few lines are
// always kept so short outputs survive intact.
func ExtractSummary(output string) string {
	lines := strings.Split(output, "\n")

	scan := lines
	if len(scan) > summaryScanLines {
		scan = scan[:summaryScanLines]
	}

	var kept []string
	for i, line := range scan {
		if i < summaryHeadLines || interesting(line) {
			kept = append(kept, line)
			if len(kept) >= summaryMaxLines {
				break
			}
		}
	}

	// Too little signal: pad with the head of the raw output.
	if len(kept) < summaryMinLines {
		pad := lines
		if len(pad) > 20 {
			pad = pad[:20]
		}
		kept = append(kept, pad...)
		if len(kept) > summaryMaxLines {
			kept = kept[:summaryMaxLines]
		}
	}

	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// interesting reports whether a line carries summary-worthy content.
func interesting(line string) bool {
	if strings.HasPrefix(line, "#") {
		return true
	}
	for _, kw := range []string{"Summary", "Key", "Important"} {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}
