package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eduverse/internal/dbmysql"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return gormDB, mock, cleanup
}

func TestParticipantRepository_Find(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM `participants` WHERE conversation_id = \\? AND user_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "user_id", "role"}).
			AddRow(1, "conv-1", 42, "moderator"))

	repo := NewParticipantRepository(db)
	p, err := repo.Find(context.Background(), "conv-1", 42)

	require.NoError(t, err)
	assert.Equal(t, uint64(42), p.UserID)
	assert.True(t, p.Role.CanModerate())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipantRepository_Find_NotFound(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM `participants`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewParticipantRepository(db)
	_, err := repo.Find(context.Background(), "conv-1", 42)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipantRepository_Remove(t *testing.T) {
	t.Run("deletes the row", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `participants`").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewParticipantRepository(db)
		assert.NoError(t, repo.Remove(context.Background(), "conv-1", 42))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row maps to record not found", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `participants`").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		repo := NewParticipantRepository(db)
		err := repo.Remove(context.Background(), "conv-1", 42)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestParticipantRepository_LeaveGroup(t *testing.T) {
	t.Run("members remain", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM `conversations` (.+) FOR UPDATE").
			WillReturnRows(sqlmock.NewRows([]string{"id", "type", "is_active"}).
				AddRow("conv-1", "group", true))
		mock.ExpectExec("DELETE FROM `participants`").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `participants`").
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(2))
		mock.ExpectCommit()

		repo := NewParticipantRepository(db)
		remaining, deactivated, err := repo.LeaveGroup(context.Background(), "conv-1", 42)

		require.NoError(t, err)
		assert.Equal(t, int64(2), remaining)
		assert.False(t, deactivated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("last leaver deactivates the conversation", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM `conversations` (.+) FOR UPDATE").
			WillReturnRows(sqlmock.NewRows([]string{"id", "type", "is_active"}).
				AddRow("conv-1", "group", true))
		mock.ExpectExec("DELETE FROM `participants`").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `participants`").
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
		mock.ExpectExec("UPDATE `conversations` SET").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewParticipantRepository(db)
		remaining, deactivated, err := repo.LeaveGroup(context.Background(), "conv-1", 42)

		require.NoError(t, err)
		assert.Equal(t, int64(0), remaining)
		assert.True(t, deactivated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-member rolls back", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM `conversations` (.+) FOR UPDATE").
			WillReturnRows(sqlmock.NewRows([]string{"id", "type", "is_active"}).
				AddRow("conv-1", "group", true))
		mock.ExpectExec("DELETE FROM `participants`").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		repo := NewParticipantRepository(db)
		_, _, err := repo.LeaveGroup(context.Background(), "conv-1", 42)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestParticipantRepository_Hide(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `participants` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewParticipantRepository(db)
	err := repo.Hide(context.Background(), "conv-1", 42, time.Now().UTC())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipantRepository_Unhide(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `participants` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewParticipantRepository(db)
	assert.NoError(t, repo.Unhide(context.Background(), "conv-1", 42))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipantRepository_CreateIfAbsent(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `participants`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	repo := NewParticipantRepository(db)
	p := &dbmysql.Participant{ConversationID: "conv-1", UserID: 42}
	assert.NoError(t, repo.CreateIfAbsent(context.Background(), p))
	assert.NoError(t, mock.ExpectationsWereMet())
}
