package models

// ReviewComment is one entry of the comments file.
// Line numbers are 1-based and refer to the new side of the diff.
type ReviewComment struct {
	Path      string `json:"path"`
	Line      int    `json:"line"`
	Body      string `json:"body"`
	StartLine int    `json:"start_line,omitempty"`
	Category  string `json:"category,omitempty"`
}

// RequestComment is an inline comment in the GitHub review API payload
type RequestComment struct {
	Path      string `json:"path"`
	Line      int    `json:"line"`
	Body      string `json:"body"`
	Side      string `json:"side"`
	StartLine int    `json:"start_line,omitempty"`
	StartSide string `json:"start_side,omitempty"`
}

// ReviewRequest is the payload posted to repos/{owner}/{repo}/pulls/{n}/reviews
type ReviewRequest struct {
	CommitID string           `json:"commit_id"`
	Event    string           `json:"event"`
	Body     string           `json:"body,omitempty"`
	Comments []RequestComment `json:"comments"`
}

// ReviewResponse is the subset of the created review we report back
type ReviewResponse struct {
	ID      int64  `json:"id"`
	State   string `json:"state"`
	HTMLURL string `json:"html_url"`
}
