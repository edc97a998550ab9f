package domain

import "time"

// Comment is attached to an annotation. The first comment on an annotation
// carries IsQuestion; every later one is an answer.
type Comment struct {
	ID           int64
	AnnotationID int64
	InstanceID   int64
	UserID       int64
	Content      string
	IsQuestion   bool
	IsDeleted    bool
	TimeCreated  time.Time
	TimeModified time.Time
}

// ArchivedComment is a copy of a comment row taken right before cascade
// deletion, kept to preserve moderation history for reported comments.
type ArchivedComment struct {
	ID           int64
	CommentID    int64
	AnnotationID int64
	UserID       int64
	Content      string
	IsQuestion   bool
	TimeCreated  time.Time
	ArchivedAt   time.Time
}

// Vote is a single user's vote on a comment.
type Vote struct {
	ID        int64
	CommentID int64
	UserID    int64
}

// Subscription marks a user as subscribed to the question of an annotation.
type Subscription struct {
	ID           int64
	AnnotationID int64
	UserID       int64
}

// Report flags a comment for moderation.
type Report struct {
	ID          int64
	CommentID   int64
	InstanceID  int64
	CourseID    int64
	UserID      int64
	Message     string
	TimeCreated time.Time
}
