package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skillhive/marketplace/internal/core/domain"
	"github.com/skillhive/marketplace/internal/core/ports"
)

const collectionUsers = "users"

type UserRepository struct {
	col *mongo.Collection
	db  *mongo.Database
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers), db: db}
}

type mongoUser struct {
	ID           int64  `bson:"id"`
	Name         string `bson:"name"`
	Email        string `bson:"email"`
	Role         string `bson:"role"`
	PasswordHash string `bson:"password_hash"`
	CreatedAt    int64  `bson:"created_at"`
}

func (mu *mongoUser) toDomain() *domain.User {
	return &domain.User{ID: mu.ID, Name: mu.Name, Email: mu.Email, Role: mu.Role}
}

// sequenceFor maps a role to its ID sequence: students and freelancers
// share one space, clients another.
func sequenceFor(role string) string {
	if role == domain.RoleClient {
		return SeqClients
	}
	return SeqStudents
}

// roleFamily expands a queried role set so that looking up "student"
// accounts also matches promoted freelancers.
func roleFamily(roles []string) []string {
	out := make([]string, 0, len(roles)+1)
	seen := make(map[string]struct{}, len(roles)+1)
	add := func(r string) {
		if _, ok := seen[r]; !ok {
			seen[r] = struct{}{}
			out = append(out, r)
		}
	}
	for _, r := range roles {
		add(r)
		if r == domain.RoleStudent {
			add(domain.RoleFreelancer)
		}
	}
	return out
}

// Create inserts a new account, assigning the next ID of its role family's
// sequence. Duplicate emails within the family are rejected.
func (r *UserRepository) Create(ctx context.Context, u *ports.StoredUser) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	existing := r.col.FindOne(ctx, bson.M{
		"email": u.User.Email,
		"role":  bson.M{"$in": roleFamily([]string{u.User.Role})},
	})
	if existing.Err() == nil {
		return nil, domain.ErrUserExists
	}
	if !errors.Is(existing.Err(), mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("check existing user: %w", existing.Err())
	}

	id, err := nextID(ctx, r.db, sequenceFor(u.User.Role))
	if err != nil {
		return nil, err
	}

	doc := mongoUser{
		ID:           id,
		Name:         u.User.Name,
		Email:        u.User.Email,
		Role:         u.User.Role,
		PasswordHash: u.PasswordHash,
		CreatedAt:    time.Now().UTC().Unix(),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := doc.toDomain()
	return created, nil
}

// FindByEmail retrieves an account by email within the given role family.
func (r *UserRepository) FindByEmail(ctx context.Context, email string, roles ...string) (*ports.StoredUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"email": email}
	if len(roles) > 0 {
		filter["role"] = bson.M{"$in": roleFamily(roles)}
	}

	var mu mongoUser
	if err := r.col.FindOne(ctx, filter).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &ports.StoredUser{User: *mu.toDomain(), PasswordHash: mu.PasswordHash}, nil
}

// FindByID retrieves an account by ID within the given role family.
func (r *UserRepository) FindByID(ctx context.Context, id int64, roles ...string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"id": id}
	if len(roles) > 0 {
		filter["role"] = bson.M{"$in": roleFamily(roles)}
	}

	var mu mongoUser
	if err := r.col.FindOne(ctx, filter).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

// UpdateRole changes an account's role. Used by the freelancer promotion;
// the ID keeps its original sequence.
func (r *UserRepository) UpdateRole(ctx context.Context, id int64, role string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"id": id, "role": bson.M{"$in": roleFamily([]string{domain.RoleStudent})}},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the user collection relies on.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "role", Value: 1}}},
		{Keys: bson.D{{Key: "id", Value: 1}, {Key: "role", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
