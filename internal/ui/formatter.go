package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/ryo246912/gh-pr-review/internal/models"
)

func PadRight(str string, width int) string {
	w := runewidth.StringWidth(str)
	if w < width {
		return str + strings.Repeat(" ", width-w)
	}
	return str
}

// RenderInfo formats the PR snapshot as a human-readable summary with a
// padded changed-file table.
func RenderInfo(info models.PRInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "#%d %s\n", info.Number, info.Title)
	fmt.Fprintf(&b, "State:  %s\n", info.State)
	fmt.Fprintf(&b, "Author: %s\n", info.Author)
	fmt.Fprintf(&b, "Branch: %s <- %s (%s)\n", info.BaseRefName, info.HeadRefName, shortSHA(info.HeadRefOid))
	fmt.Fprintf(&b, "URL:    %s\n", info.URL)
	fmt.Fprintf(&b, "Diff:   +%d -%d across %d files\n", info.Additions, info.Deletions, len(info.Files))

	if body := strings.TrimSpace(info.Body); body != "" {
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n")
	}

	if len(info.Files) > 0 {
		b.WriteString("\nFiles:\n")
		for _, f := range info.Files {
			fmt.Fprintf(&b, "  %s +%-5d -%d\n", PadRight(f.Path, 50), f.Additions, f.Deletions)
		}
	}

	if len(info.Reviews) > 0 {
		b.WriteString("\nReviews:\n")
		for _, r := range info.Reviews {
			fmt.Fprintf(&b, "  %s %s %s\n", PadRight(r.Author, 20), PadRight(r.State, 18), r.SubmittedAt)
		}
	}

	if len(info.Threads) > 0 {
		b.WriteString("\nReview threads:\n")
		for _, thread := range info.Threads {
			status := "open"
			if thread.Resolved {
				status = "resolved"
			}
			location := thread.Path
			if thread.Line > 0 {
				location = fmt.Sprintf("%s:%d", thread.Path, thread.Line)
			}
			fmt.Fprintf(&b, "  %s [%s] %s: %s\n", PadRight(location, 40), status, thread.Author, thread.Excerpt)
		}
	}

	return b.String()
}

func shortSHA(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}
	return sha
}
