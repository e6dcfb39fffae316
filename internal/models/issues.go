package models

// Issue carries the milestone association of an issue. Milestone is nil when
// the issue is not assigned to one.
type Issue struct {
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	State     string     `json:"state"`
	Milestone *Milestone `json:"milestone"`
}
