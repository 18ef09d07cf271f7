package domain

import "time"

// Board is a top-level post that comments attach to.
type Board struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Title         string    `json:"title" bson:"title"`
	Content       string    `json:"content" bson:"content"`
	OwnerUsername string    `json:"owner_username" bson:"owner_username"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
