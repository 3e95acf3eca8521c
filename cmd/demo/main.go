// Command demo runs a scripted walkthrough of the client-side stores.
// Without flags it operates against the in-memory boundary seeded with the
// demo marketplace; pass -server to exercise a running API instead. The
// identity survives runs through the state file, so a second invocation
// starts already logged in.
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillhive/marketplace/internal/client"
	"github.com/skillhive/marketplace/internal/client/remote"
	"github.com/skillhive/marketplace/internal/client/vault"
	"github.com/skillhive/marketplace/internal/core/domain"
	"github.com/skillhive/marketplace/internal/core/ports"
	"github.com/skillhive/marketplace/internal/gate"
	"github.com/skillhive/marketplace/internal/notify"
	"github.com/skillhive/marketplace/pkg/logger"
)

func main() {
	server := flag.String("server", "", "base URL of a running marketplace API; empty runs against the in-memory demo data")
	state := flag.String("state", filepath.Join(os.TempDir(), "skillhive", "identity.json"), "path of the persisted identity slot")
	flag.Parse()

	log := logger.Init(logger.Options{Level: "debug", Pretty: true})

	var boundary ports.RemoteBoundary
	if *server != "" {
		b, err := remote.NewHTTPBoundary(*server, nil)
		if err != nil {
			log.Fatal().Err(err).Msg("boundary setup failed")
		}
		boundary = b
	} else {
		boundary = remote.NewDemoBoundary()
	}

	notifier := notify.NewLogNotifier(log)
	sessions := client.NewSessionStore(boundary, vault.NewFileVault(*state), notifier, log)
	projects := client.NewProjectStore(boundary, notifier, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if restored := sessions.CurrentUser(); restored != nil {
		log.Info().Str("name", restored.Name).Str("role", restored.Role).Msg("restored persisted identity")
		sessions.Logout(ctx)
	}

	// A client posts a project and reviews their dashboard.
	if !sessions.Login(ctx, "client@example.com", "password", domain.RoleClient) {
		log.Fatal().Msg("client login failed")
	}
	clientUser := sessions.CurrentUser()
	showGate(log, clientUser, gate.RequireClient, "client dashboard")

	projects.Create(ctx, ports.ProjectDraft{
		Title:        "Landing Page Refresh",
		Description:  "Rework the marketing landing page with the new brand kit.",
		SkillsJoined: "HTML, CSS, Figma",
		Budget:       "300",
		Deadline:     "2026-10-15",
		Category:     "Web Development",
	})
	projects.Refresh(ctx)
	log.Info().Int("own_projects", len(projects.ByClient(clientUser.ID))).Msg("client dashboard loaded")
	sessions.Logout(ctx)

	// A freelancer enrolls in an open project.
	if !sessions.Login(ctx, "freelancer@example.com", "password", domain.RoleStudent) {
		log.Fatal().Msg("freelancer login failed")
	}
	freelancer := sessions.CurrentUser()
	showGate(log, freelancer, gate.RequireFreelancer, "enrollment")

	projects.Refresh(ctx)
	open := projects.Open()
	if len(open) == 0 {
		log.Fatal().Msg("no open projects to enroll in")
	}
	projects.Enroll(ctx, open[0].ID, freelancer.ID)
	log.Info().
		Int64("project_id", open[0].ID).
		Int("enrolled", len(projects.Enrolled(freelancer.ID))).
		Msg("enrollment recorded")

	sessions.Logout(ctx)
}

func showGate(log zerolog.Logger, user *domain.User, capability gate.Capability, page string) {
	decision := gate.Resolve(user, capability)
	if decision.Allowed {
		log.Info().Str("page", page).Msg("gate: allowed")
		return
	}
	log.Info().Str("page", page).Str("redirect", decision.RedirectTo).Msg("gate: redirected")
}
