package ports

import (
	"context"
	"time"
)

// FreelancerApplication records a student's application to become a
// freelancer: the uploaded resume (stored on disk, referenced by path),
// a portfolio URL and a free-text skill summary.
type FreelancerApplication struct {
	ID         string    `bson:"id"`
	StudentID  int64     `bson:"student_id"`
	ResumePath string    `bson:"resume_path"`
	ResumeName string    `bson:"resume_name"`
	Portfolio  string    `bson:"portfolio"`
	Skills     string    `bson:"skills"`
	AppliedAt  time.Time `bson:"applied_at"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *FreelancerApplication) error
}
