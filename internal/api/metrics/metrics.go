// Package metrics defines and registers all custom Prometheus metrics for the
// SkillHive marketplace API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "skillhive"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Labels:
//   - role: the login family attempted ("student" or "client")
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role family and result.",
	},
	[]string{"role", "result"},
)

// RegistrationsTotal counts completed registrations.
// Label:
//   - role: "student" or "client"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of completed account registrations, by role.",
	},
	[]string{"role"},
)

// ── Project metrics ───────────────────────────────────────────────────────────

// ProjectsCreatedTotal counts newly posted projects.
// Label:
//   - category: the client-supplied project category (e.g. "Web")
var ProjectsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects posted, by category.",
	},
	[]string{"category"},
)

// ProjectUpdatesTotal counts project updates applied by clients.
// Label:
//   - status: the resulting status, or "unchanged" when only the deadline moved
var ProjectUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "project_updates_total",
		Help:      "Total number of project updates applied, by resulting status.",
	},
	[]string{"status"},
)

// EnrollmentsTotal counts successful project enrollments.
var EnrollmentsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrollments_total",
		Help:      "Total number of successful project enrollments.",
	},
)

// ── Freelancer metrics ────────────────────────────────────────────────────────

// FreelancerApplicationsTotal counts accepted freelancer applications.
var FreelancerApplicationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "freelancer_applications_total",
		Help:      "Total number of accepted freelancer applications.",
	},
)
