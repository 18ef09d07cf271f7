package domain

import "time"

// AuditAction names the mutation recorded by an audit entry.
type AuditAction string

const (
	AuditBoardCreated   AuditAction = "board_created"
	AuditBoardUpdated   AuditAction = "board_updated"
	AuditBoardDeleted   AuditAction = "board_deleted"
	AuditCommentCreated AuditAction = "comment_created"
	AuditCommentUpdated AuditAction = "comment_updated"
	AuditCommentDeleted AuditAction = "comment_deleted"
)

// AuditEvent is one entry in the mutation audit trail. Written asynchronously;
// never read on the request path.
type AuditEvent struct {
	Action    AuditAction `json:"action" bson:"action"`
	Actor     string      `json:"actor" bson:"actor"`
	BoardID   string      `json:"board_id" bson:"board_id"`
	CommentID string      `json:"comment_id,omitempty" bson:"comment_id,omitempty"`
	At        time.Time   `json:"at" bson:"at"`
}
