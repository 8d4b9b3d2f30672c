package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueEmail returns a normalized email that no other test uses.
func UniqueEmail(prefix string) domain.Identity {
	return domain.Identity(prefix + "-" + uniqueSuffix() + "@example.com")
}

// SeedUser creates a user with a placeholder password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        UniqueEmail("testuser"),
		Name:         "Test User",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplaceh",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email.String(), user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedFolder creates a folder owned by owner.
func SeedFolder(t *testing.T, pool *pgxpool.Pool, owner domain.Identity) domain.Folder {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	f := domain.Folder{
		ID:        uuid.New(),
		Name:      "Folder " + uniqueSuffix(),
		OwnerID:   owner,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO folders (id, name, owner_email, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		f.ID, f.Name, f.OwnerID.String(), f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFolder: %v", err)
	}

	return f
}

// SeedMembership stores a membership row with a raw role string, so tests can also
// seed values the application would never write.
func SeedMembership(t *testing.T, pool *pgxpool.Pool, folderID uuid.UUID, email domain.Identity, role string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO folder_memberships (folder_id, user_email, role) VALUES ($1, $2, $3)`,
		folderID, email.String(), role,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMembership: %v", err)
	}
}

// SeedEvaluation stores an evaluation with the given data and creation time.
func SeedEvaluation(t *testing.T, pool *pgxpool.Pool, folderID uuid.UUID, data string, createdAt time.Time) domain.Evaluation {
	t.Helper()

	e := domain.Evaluation{
		ID:        uuid.New(),
		FolderID:  folderID,
		Subject:   "Seeded",
		Data:      data,
		CreatedBy: "seed@example.com",
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
		UpdatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO evaluations (id, folder_id, subject, data, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.FolderID, e.Subject, e.Data, e.CreatedBy.String(), e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvaluation: %v", err)
	}

	return e
}

// SeedSubscription writes a subscription row for email.
func SeedSubscription(t *testing.T, pool *pgxpool.Pool, email domain.Identity, status domain.SubscriptionStatus) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO subscriptions (email, status) VALUES ($1, $2)
		 ON CONFLICT (email) DO UPDATE SET status = EXCLUDED.status`,
		email.String(), status.String(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubscription: %v", err)
	}
}
