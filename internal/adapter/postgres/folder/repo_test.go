package folder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestRepo_GetByID(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	now := time.Now().UTC()

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT id, name, owner_email, created_at, updated_at FROM folders WHERE id = \$1`).
					WithArgs(id).
					WillReturnRows(pgxmock.NewRows(columns).AddRow(id, "Team A", "coach@example.com", now, now))
			},
		},
		{
			name: "not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .* FROM folders`).
					WithArgs(id).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := newMock(t)
			tt.setup(mock)

			got, err := New(mock).GetByID(context.Background(), id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, got.ID)
				assert.Equal(t, "Team A", got.Name)
				assert.Equal(t, domain.Identity("coach@example.com"), got.OwnerID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepo_Create(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	now := time.Now().UTC()
	f := &domain.Folder{ID: uuid.New(), Name: "Athlete 1", OwnerID: "coach@example.com", CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery(`INSERT INTO folders \(id,name,owner_email,created_at,updated_at\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING`).
		WithArgs(f.ID, f.Name, "coach@example.com", now, now).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(f.ID, f.Name, "coach@example.com", now, now))

	got, err := New(mock).Create(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, f.ID, got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Create_Duplicate(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	f := &domain.Folder{ID: uuid.New(), Name: "x", OwnerID: "coach@example.com"}

	mock.ExpectQuery(`INSERT INTO folders`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := New(mock).Create(context.Background(), f)
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestRepo_Delete_NotFound(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM folders WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := New(mock).Delete(context.Background(), id)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_ListForIdentity_MapsRoles(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	now := time.Now().UTC()
	owned, shared, odd := uuid.New(), uuid.New(), uuid.New()
	email := domain.Identity("athlete@example.com")

	mock.ExpectQuery(`SELECT f.id, .* FROM folders f LEFT JOIN folder_memberships m`).
		WithArgs("athlete@example.com", "athlete@example.com", "athlete@example.com", "athlete@example.com").
		WillReturnRows(pgxmock.NewRows(append(append([]string{}, columns...), "role")).
			AddRow(owned, "Mine", "athlete@example.com", now, now, "owner").
			AddRow(shared, "Coach", "coach@example.com", now, now, "student").
			AddRow(odd, "Legacy", "coach@example.com", now, now, "assistant"))

	got, err := New(mock).ListForIdentity(context.Background(), email)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, domain.RoleOwner, got[0].Role)
	assert.Equal(t, domain.RoleStudent, got[1].Role)
	assert.Equal(t, domain.RoleViewer, got[2].Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_CountForIdentity(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectQuery(`SELECT count\(DISTINCT f.id\) FROM folders f`).
		WithArgs("coach@example.com", "coach@example.com", "coach@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	n, err := New(mock).CountForIdentity(context.Background(), "coach@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRepo_CountForIdentity_ContextCanceled(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectQuery(`SELECT count`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(context.Canceled)

	_, err := New(mock).CountForIdentity(context.Background(), "coach@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
