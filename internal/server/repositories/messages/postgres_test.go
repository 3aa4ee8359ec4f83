package messages

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

var msgCols = []string{"id", "sender_id", "s_username", "receiver_id", "r_username", "encrypted_content", "sent_at", "is_read", "is_edited"}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+messages\s*\(sender_id,\s*receiver_id,\s*encrypted_content\).*RETURNING\s+id,\s*sent_at`).
		WithArgs(int64(1), int64(2), "env").
		WillReturnRows(sqlmock.NewRows([]string{"id", "sent_at"}).AddRow(int64(10), now))

	got, err := repo.Create(context.Background(), 1, 2, "env")
	require.NoError(t, err)
	assert.Equal(t, &models.Message{ID: 10, SenderID: 1, ReceiverID: 2, EncryptedContent: "env", SentAt: now}, got)
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()
	q := `(?s)FROM\s+messages\s+m.*JOIN\s+users\s+s.*JOIN\s+users\s+r.*WHERE\s+m\.id\s*=\s*\$1`

	mock.ExpectQuery(q).WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(msgCols).AddRow(int64(10), int64(1), "alice", int64(2), "bob", "env", now, true, false))
	got, err := repo.GetByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.SenderUsername)
	assert.Equal(t, "bob", got.ReceiverUsername)
	assert.True(t, got.IsRead)

	mock.ExpectQuery(q).WithArgs(int64(11)).WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByID(context.Background(), 11)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestListReceivedAndSent(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`(?s)WHERE\s+m\.receiver_id\s*=\s*\$1\s+ORDER\s+BY\s+m\.sent_at\s+DESC`).WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(msgCols).
			AddRow(int64(11), int64(1), "alice", int64(2), "bob", "e2", now, false, false).
			AddRow(int64(10), int64(1), "alice", int64(2), "bob", "e1", now.Add(-time.Minute), true, true))
	got, err := repo.ListReceived(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(11), got[0].ID)
	assert.True(t, got[1].IsEdited)

	mock.ExpectQuery(`(?s)WHERE\s+m\.sender_id\s*=\s*\$1\s+ORDER\s+BY\s+m\.sent_at\s+DESC`).WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(msgCols))
	sent, err := repo.ListSent(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, sent)
	assert.Empty(t, sent)

	mock.ExpectQuery(`receiver_id`).WillReturnError(errors.New("boom"))
	_, err = repo.ListReceived(context.Background(), 2)
	assert.Error(t, err)
}

func TestMutations(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		args     []any
		affected int64
		call     func(r *PostgresRepository) (bool, error)
		want     bool
	}{
		{
			name:     "update by sender",
			query:    `(?s)UPDATE\s+messages\s+SET\s+encrypted_content\s*=\s*\$3,\s*is_edited\s*=\s*TRUE\s+WHERE\s+id\s*=\s*\$1\s+AND\s+sender_id\s*=\s*\$2`,
			args:     []any{int64(10), int64(1), "new"},
			affected: 1,
			call:     func(r *PostgresRepository) (bool, error) { return r.UpdateContent(context.Background(), 10, 1, "new") },
			want:     true,
		},
		{
			name:     "delete by someone else",
			query:    `(?s)DELETE\s+FROM\s+messages\s+WHERE\s+id\s*=\s*\$1\s+AND\s+sender_id\s*=\s*\$2`,
			args:     []any{int64(10), int64(9)},
			affected: 0,
			call:     func(r *PostgresRepository) (bool, error) { return r.Delete(context.Background(), 10, 9) },
			want:     false,
		},
		{
			name:     "mark read changes state",
			query:    `(?s)UPDATE\s+messages\s+SET\s+is_read\s*=\s*TRUE\s+WHERE\s+id\s*=\s*\$1\s+AND\s+receiver_id\s*=\s*\$2\s+AND\s+NOT\s+is_read`,
			args:     []any{int64(10), int64(2)},
			affected: 1,
			call:     func(r *PostgresRepository) (bool, error) { return r.MarkRead(context.Background(), 10, 2) },
			want:     true,
		},
		{
			name:     "mark read already read",
			query:    `(?s)UPDATE\s+messages\s+SET\s+is_read`,
			args:     []any{int64(10), int64(2)},
			affected: 0,
			call:     func(r *PostgresRepository) (bool, error) { return r.MarkRead(context.Background(), 10, 2) },
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			args := make([]driver.Value, 0, len(tt.args))
			for _, a := range tt.args {
				args = append(args, a)
			}
			mock.ExpectExec(tt.query).WithArgs(args...).WillReturnResult(sqlmock.NewResult(0, tt.affected))

			got, err := tt.call(repo)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMutation_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(`DELETE`).WillReturnError(errors.New("boom"))

	_, err := repo.Delete(context.Background(), 1, 1)
	assert.Error(t, err)
}

func TestUnreadCounts(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`(?s)SELECT\s+sender_id,\s*COUNT\(\*\).*WHERE\s+receiver_id\s*=\s*\$1\s+AND\s+NOT\s+is_read\s+GROUP\s+BY\s+sender_id`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"sender_id", "count"}).AddRow(int64(1), 3).AddRow(int64(5), 1))

	got, err := repo.UnreadCounts(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{1: 3, 5: 1}, got)
}
