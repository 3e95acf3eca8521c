// Package gate decides whether the current identity may enter a page and,
// when it may not, where to send it instead. It mirrors the server's RBAC
// for UX only. It is a convenience, never a security boundary.
package gate

import "github.com/skillhive/marketplace/internal/core/domain"

// Capability names the access requirement a page declares.
type Capability int

const (
	// RequireClient gates client-only pages such as the client dashboard.
	RequireClient Capability = iota
	// RequireStudentFamily gates pages open to students and freelancers.
	RequireStudentFamily
	// RequireFreelancer gates enrollment pages: a plain student is steered
	// to the freelancer application first.
	RequireFreelancer
)

// Page paths used as redirect targets.
const (
	PathStudentLogin     = "/student-login"
	PathClientLogin      = "/client-login"
	PathStudentDashboard = "/student-dashboard"
	PathClientDashboard  = "/client-dashboard"
	PathApplyFreelancer  = "/apply-freelancer"
)

// Decision is the outcome of a gate check: either allowed, or a redirect.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func redirect(path string) Decision {
	return Decision{RedirectTo: path}
}

// Resolve is pure: given the current identity (nil when unauthenticated)
// and a required capability it yields allow or a redirect target. An absent
// identity goes to the login page appropriate to the capability's role.
func Resolve(user *domain.User, capability Capability) Decision {
	switch capability {
	case RequireClient:
		if user == nil {
			return redirect(PathClientLogin)
		}
		if user.Role != domain.RoleClient {
			return redirect(PathStudentDashboard)
		}
		return allow()

	case RequireStudentFamily:
		if user == nil {
			return redirect(PathStudentLogin)
		}
		if !user.IsStudentFamily() {
			return redirect(PathClientDashboard)
		}
		return allow()

	case RequireFreelancer:
		if user == nil {
			return redirect(PathStudentLogin)
		}
		if user.Role == domain.RoleClient {
			return redirect(PathClientDashboard)
		}
		if user.Role == domain.RoleStudent {
			return redirect(PathApplyFreelancer)
		}
		return allow()
	}

	// Unknown capability: fail closed.
	return redirect(PathStudentLogin)
}
