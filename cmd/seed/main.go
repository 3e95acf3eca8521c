// Command seed populates MongoDB with the demo marketplace: two
// student-family accounts, two clients and five projects, all with the
// password "password". Safe to re-run; an already-seeded database is left
// untouched.
package main

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/skillhive/marketplace/internal/core/domain"
	"github.com/skillhive/marketplace/internal/core/ports"
	"github.com/skillhive/marketplace/internal/infrastructure/config"
	mongodb "github.com/skillhive/marketplace/internal/infrastructure/db/mongo"
	"github.com/skillhive/marketplace/pkg/logger"
)

const demoPassword = "password"

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connect failed")
	}
	defer client.Disconnect(context.Background())

	users := mongodb.NewUserRepository(db)
	projects := mongodb.NewProjectRepository(db)
	enrollments := mongodb.NewEnrollmentRepository(db)

	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := projects.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("project indexes failed")
	}
	if err := enrollments.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("enrollment indexes failed")
	}

	if _, err := users.FindByEmail(ctx, "student@example.com", domain.RoleStudent); err == nil {
		log.Info().Msg("database already seeded, nothing to do")
		return
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		log.Fatal().Err(err).Msg("seed check failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash password failed")
	}

	accounts := []ports.StoredUser{
		{User: domain.User{Name: "John Doe", Email: "student@example.com", Role: domain.RoleStudent}, PasswordHash: string(hash)},
		{User: domain.User{Name: "Jane Smith", Email: "freelancer@example.com", Role: domain.RoleFreelancer}, PasswordHash: string(hash)},
		{User: domain.User{Name: "Acme Corp", Email: "client@example.com", Role: domain.RoleClient}, PasswordHash: string(hash)},
		{User: domain.User{Name: "Globex Media", Email: "client2@example.com", Role: domain.RoleClient}, PasswordHash: string(hash)},
	}
	for i := range accounts {
		created, err := users.Create(ctx, &accounts[i])
		if err != nil {
			log.Fatal().Err(err).Str("email", accounts[i].User.Email).Msg("seed user failed")
		}
		log.Info().Int64("id", created.ID).Str("email", created.Email).Str("role", created.Role).Msg("seeded user")
	}

	demoProjects := []domain.Project{
		{
			ClientID:       1,
			Title:          "E-commerce Website Development",
			Description:    "Responsive e-commerce website with product listings, cart and payment integration.",
			SkillsRequired: domain.SkillList{"React", "Node.js", "MongoDB", "Express"},
			Budget:         "500", Deadline: "2025-06-30", Category: "Web Development",
			Status: domain.StatusOpen,
		},
		{
			ClientID:       1,
			Title:          "Mobile App UI Design",
			Description:    "Modern UI/UX for a fitness tracking mobile app.",
			SkillsRequired: domain.SkillList{"UI/UX", "Figma", "Adobe XD", "Mobile Design"},
			Budget:         "350", Deadline: "2025-06-15", Category: "UI/UX Design",
			Status: domain.StatusInProgress,
		},
		{
			ClientID:       1,
			Title:          "Machine Learning Model for Text Classification",
			Description:    "Classify customer feedback into positive, negative and neutral categories.",
			SkillsRequired: domain.SkillList{"Python", "Machine Learning", "NLP", "TensorFlow"},
			Budget:         "800", Deadline: "2025-07-20", Category: "Machine Learning",
			Status: domain.StatusOpen,
		},
		{
			ClientID:       2,
			Title:          "Video Editing for Marketing Campaign",
			Description:    "Edit raw footage into a two-minute promotional video.",
			SkillsRequired: domain.SkillList{"Video Editing", "Adobe Premiere", "After Effects"},
			Budget:         "250", Deadline: "2025-05-25", Category: "Multimedia",
			Status: domain.StatusCompleted,
		},
		{
			ClientID:       2,
			Title:          "Social Media Content Creation",
			Description:    "Graphics, captions and hashtag research for social platforms.",
			SkillsRequired: domain.SkillList{"Content Writing", "Graphic Design", "Social Media Marketing"},
			Budget:         "180", Deadline: "2025-06-01", Category: "Marketing",
			Status: domain.StatusOpen,
		},
	}
	for i := range demoProjects {
		created, err := projects.Insert(ctx, &demoProjects[i])
		if err != nil {
			log.Fatal().Err(err).Str("title", demoProjects[i].Title).Msg("seed project failed")
		}
		log.Info().Int64("id", created.ID).Str("title", created.Title).Msg("seeded project")
	}

	// Jane took on the in-progress design project.
	if err := enrollments.Create(ctx, &domain.Enrollment{
		ProjectID:  2,
		StudentID:  2,
		EnrolledAt: time.Now().UTC(),
	}); err != nil {
		log.Fatal().Err(err).Msg("seed enrollment failed")
	}
	log.Info().Msg("seeded enrollment")

	log.Info().Msg("seed complete")
}
