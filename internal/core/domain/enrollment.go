package domain

import "time"

// Enrollment records that a freelancer took on a project. This is an explicit
// fact rather than an inference from project status, so two freelancers'
// dashboards never bleed into each other.
type Enrollment struct {
	ProjectID  int64     `json:"project_id" bson:"project_id"`
	StudentID  int64     `json:"student_id" bson:"student_id"`
	EnrolledAt time.Time `json:"enrolled_at" bson:"enrolled_at"`
}
