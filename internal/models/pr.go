package models

// ChangedFile is one entry of a pull request's changed-file list
type ChangedFile struct {
	Path      string `json:"path"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
}

// ReviewEntry represents an already-submitted review on the PR
type ReviewEntry struct {
	Author      string `json:"author"`
	State       string `json:"state"`
	SubmittedAt string `json:"submittedAt"`
	Body        string `json:"body,omitempty"`
}

// ReviewThread represents an existing inline discussion thread
type ReviewThread struct {
	Path     string `json:"path"`
	Line     int    `json:"line,omitempty"`
	Resolved bool   `json:"resolved"`
	Author   string `json:"author"`
	Excerpt  string `json:"excerpt"`
}

// PRInfo is the read-only snapshot produced by the info command.
// Field names follow the GitHub CLI's camelCase JSON convention.
type PRInfo struct {
	Number      int            `json:"number"`
	Title       string         `json:"title"`
	Body        string         `json:"body"`
	State       string         `json:"state"`
	Author      string         `json:"author"`
	HeadRefName string         `json:"headRefName"`
	HeadRefOid  string         `json:"headRefOid"`
	BaseRefName string         `json:"baseRefName"`
	URL         string         `json:"url"`
	Additions   int            `json:"additions"`
	Deletions   int            `json:"deletions"`
	Files       []ChangedFile  `json:"files"`
	Reviews     []ReviewEntry  `json:"reviews"`
	Threads     []ReviewThread `json:"reviewThreads"`
}
