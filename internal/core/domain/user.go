package domain

const (
	RoleStudent    = "student"
	RoleClient     = "client"
	RoleFreelancer = "freelancer"
)

// User models an authenticated actor in the marketplace. IDs are assigned
// per role family: students and freelancers share one sequence, clients
// another. The only mutable field is Role, which moves student → freelancer
// when a freelancer application is accepted.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsStudentFamily reports whether the user belongs to the student side of
// the marketplace (plain student or promoted freelancer).
func (u *User) IsStudentFamily() bool {
	return u.Role == RoleStudent || u.Role == RoleFreelancer
}
