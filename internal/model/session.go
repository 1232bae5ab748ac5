package model

import "time"

// Session is one interactive calculator session. Sessions live only in
// memory; nothing is persisted across process restarts.
type Session struct {
	ID        string     `json:"id"`
	Inputs    InputState `json:"inputs"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
