package invoker

import "strings"

// Output markers some tools emit. When present they override the synthesized
// summary and transcript-based report path.
const (
	summaryMarker = "Summary:"
	reportMarker  = "Report:"
)

// parseOutput scans captured stdout for the summary and report-path markers.
// Either return value may be empty when its marker is absent.
func parseOutput(stdout string) (summary, reportPath string) {
	lines := strings.Split(stdout, "\n")

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if summary == "" && strings.HasPrefix(trimmed, summaryMarker) {
			summary = strings.TrimSpace(strings.TrimPrefix(trimmed, summaryMarker))
			if summary == "" {
				// Marker on its own line: the summary is the following
				// block, up to a blank line or the report marker.
				summary = blockAfter(lines[i+1:])
			}
			continue
		}

		if reportPath == "" && strings.HasPrefix(trimmed, reportMarker) {
			reportPath = strings.TrimSpace(strings.TrimPrefix(trimmed, reportMarker))
		}
	}
	return summary, reportPath
}

func blockAfter(lines []string) string {
	var block []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, reportMarker) {
			break
		}
		block = append(block, trimmed)
	}
	return strings.Join(block, "\n")
}
