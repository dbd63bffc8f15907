package domain

import "time"

// PollOption is a single answer with its running tally. Votes only ever move
// up by one; there is no decrement path.
type PollOption struct {
	Text  string `json:"text" bson:"text"`
	Votes int    `json:"votes" bson:"votes"`
}

// Poll is the voting aggregate. CreatorHandle is denormalized at creation time
// so listings do not need a join against the users collection.
type Poll struct {
	ID            string       `json:"id"`
	Question      string       `json:"question"`
	Options       []PollOption `json:"options"`
	CreatorID     string       `json:"creator_id"`
	CreatorHandle string       `json:"creator_handle"`
	CreatedAt     time.Time    `json:"created_at"`
}
