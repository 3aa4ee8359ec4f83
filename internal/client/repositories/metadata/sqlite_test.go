package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k1", []byte{0x01, 0x02}))

	v, err := r.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, v)
}

func TestGet_Missing(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSet_Upsert(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("old")))
	require.NoError(t, r.Set(ctx, "k", []byte("new")))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), v)
}

func TestDeleteAndClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, r.Set(ctx, k, []byte(k)))
	}

	require.NoError(t, r.Delete(ctx, "a", "b", "missing"))
	_, err := r.Get(ctx, "a")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = r.Get(ctx, "c")
	require.NoError(t, err)

	require.NoError(t, r.Clear(ctx))
	_, err = r.Get(ctx, "c")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInsideTransaction(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := NewSQLiteRepository(tx)
		if err := r.Set(ctx, "x", []byte("1")); err != nil {
			return err
		}
		return r.Set(ctx, "y", []byte("2"))
	})
	require.NoError(t, err)

	v, err := NewSQLiteRepository(db).Get(ctx, "y")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), v)
}

func TestErrorsAreWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO metadata").WillReturnError(sql.ErrConnDone)
	err = NewSQLiteRepository(db).Set(context.Background(), "k", []byte("v"))
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Contains(t, err.Error(), "metadata[k]")
	require.NoError(t, mock.ExpectationsWereMet())
}
