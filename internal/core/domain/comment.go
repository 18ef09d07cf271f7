package domain

import "time"

// Comment belongs to exactly one board. BoardID is fixed at creation; every
// mutation must re-check it against the board named by the request.
type Comment struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	BoardID       string    `json:"board_id" bson:"board_id"`
	OwnerUsername string    `json:"owner_username" bson:"owner_username"`
	Content       string    `json:"content" bson:"content"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
