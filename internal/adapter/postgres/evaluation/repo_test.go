package evaluation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

func TestRepo_ListByFolder(t *testing.T) {
	t.Parallel()

	folderID := uuid.New()
	now := time.Now().UTC()

	tests := []struct {
		name    string
		limit   int
		pattern string
	}{
		{"with limit", 5, `SELECT .* FROM evaluations WHERE folder_id = \$1 ORDER BY created_at DESC, id DESC LIMIT 5`},
		{"no limit", 0, `SELECT .* FROM evaluations WHERE folder_id = \$1 ORDER BY created_at DESC, id DESC$`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := newMock(t)
			mock.ExpectQuery(tt.pattern).
				WithArgs(folderID).
				WillReturnRows(pgxmock.NewRows(columns).
					AddRow(uuid.New(), folderID, "sprint", `{"score":8}`, "coach@example.com", now, now))

			got, err := New(mock).ListByFolder(context.Background(), folderID, tt.limit)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, `{"score":8}`, got[0].Data)
			assert.Equal(t, domain.Identity("coach@example.com"), got[0].CreatedBy)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepo_CountByFolder(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	folderID := uuid.New()
	mock.ExpectQuery(`SELECT count\(\*\) FROM evaluations WHERE folder_id = \$1`).
		WithArgs(folderID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(10)))

	n, err := New(mock).CountByFolder(context.Background(), folderID)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
}

func TestRepo_Update_OnlySetsGivenFields(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	folderID, id := uuid.New(), uuid.New()
	now := time.Now().UTC()
	data := `{"a":1}`

	// squirrel sorts Eq keys: folder_id before id.
	mock.ExpectQuery(`UPDATE evaluations SET updated_at = now\(\), data = \$1 WHERE folder_id = \$2 AND id = \$3 RETURNING`).
		WithArgs(data, folderID, id).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(id, folderID, "s", data, "coach@example.com", now, now))

	got, err := New(mock).Update(context.Background(), folderID, id, domain.EvaluationUpdateParams{Data: &data})
	require.NoError(t, err)
	assert.Equal(t, data, got.Data)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_GetByID_OtherFolder(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectQuery(`SELECT .* FROM evaluations`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	_, err := New(mock).GetByID(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_Delete(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	folderID, id := uuid.New(), uuid.New()
	mock.ExpectExec(`DELETE FROM evaluations WHERE folder_id = \$1 AND id = \$2`).
		WithArgs(folderID, id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, New(mock).Delete(context.Background(), folderID, id))
	require.NoError(t, mock.ExpectationsWereMet())
}
