package models

// Project is the REST representation of a classic project board.
type Project struct {
	ID     int    `json:"id"`
	Number int    `json:"number"`
	Name   string `json:"name"`
	Body   string `json:"body"`
	State  string `json:"state"`
}
