package strip

import (
	"fmt"
	"strings"
)

// Result reports the outcome of one removal pass over a file's content.
type Result struct {
	Content string
	Found   int
	Removed int
}

// Preserved returns how many found comments were left intact.
func (r Result) Preserved() int {
	return r.Found - r.Removed
}

// Remove scans content with each pattern strictly in order, consulting the
// confirmer for every match. Accepted matches are deleted from the working
// copy; rejected matches are skipped and remain byte-identical. Match
// offsets are re-derived from the live buffer after every decision, so
// earlier deletions cannot leave stale offsets behind.
func Remove(content string, patterns []Pattern, confirmer Confirmer, opts Options) Result {
	result := Result{Content: content}
	out := opts.out()

	if opts.Verbose {
		fmt.Fprintf(out, "Original content preview:\n%s\n", preview(content, 5))
	}

	for _, pattern := range patterns {
		offset := 0
		for offset <= len(result.Content) {
			loc := pattern.re.FindStringIndex(result.Content[offset:])
			if loc == nil {
				break
			}
			start, end := offset+loc[0], offset+loc[1]
			comment := result.Content[start:end]
			result.Found++
			if opts.Verbose {
				fmt.Fprintf(out, "Found comment at position %d: %s\n", start, comment)
			}

			if confirmer.Confirm(comment) {
				result.Content = result.Content[:start] + result.Content[end:]
				result.Removed++
				// The deletion shifted text left; resume at the match start
				// so an immediately following comment is still found.
				offset = start
			} else {
				offset = skipPast(result.Content, end, pattern)
				if offset < 0 {
					break
				}
			}
		}
	}

	if opts.Verbose {
		if result.Found == 0 {
			fmt.Fprintln(out, "No comments were found in the file")
			fmt.Fprintf(out, "Content preview after processing:\n%s\n", preview(result.Content, 5))
		} else {
			fmt.Fprintf(out, "Found %d comments, removed %d comments\n", result.Found, result.Removed)
		}
	}

	return result
}

// skipPast returns the next search position after a rejected match ending at
// end. A line-anchored pattern may only restart at a line boundary, and the
// search always resumes on a slice of the buffer, so the position is moved
// past the next newline; otherwise the slice start would masquerade as a
// line start. Returns -1 when no further position exists.
func skipPast(content string, end int, pattern Pattern) int {
	if !pattern.lineAnchored {
		return end
	}
	nl := strings.IndexByte(content[end:], '\n')
	if nl < 0 {
		return -1
	}
	return end + nl + 1
}

func preview(content string, n int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
