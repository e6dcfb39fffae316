package models

import "time"

// Milestone is the REST representation of a repository milestone, reduced to
// the fields this tool reads. A milestone's number is immutable and unique
// within its repository, which is what makes it usable as a key passed
// between workflow steps.
type Milestone struct {
	Number       int        `json:"number"`
	Title        string     `json:"title"`
	State        string     `json:"state"`
	OpenIssues   int        `json:"open_issues"`
	ClosedIssues int        `json:"closed_issues"`
	DueOn        *time.Time `json:"due_on"`
}
