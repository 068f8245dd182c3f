package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"eduverse/internal/common"
	"eduverse/internal/dbmysql"
)

func TestConversationRepository_CreateWithParticipants(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `conversations`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `participants`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `participants`").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	repo := NewConversationRepository(db)
	conv := &dbmysql.Conversation{
		ID:        "conv-1",
		Type:      common.ConversationGroup,
		IsActive:  true,
		CreatedBy: 1,
	}
	participants := []*dbmysql.Participant{
		{UserID: 1, Role: common.RoleModerator},
		{UserID: 2, Role: common.RoleMember},
	}

	err := repo.CreateWithParticipants(context.Background(), conv, participants)
	require.NoError(t, err)

	// Every participant is stamped with the conversation id inside the tx.
	for _, p := range participants {
		assert.Equal(t, "conv-1", p.ConversationID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_CreateWithParticipants_RollsBack(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `conversations`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `participants`").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	repo := NewConversationRepository(db)
	err := repo.CreateWithParticipants(context.Background(), &dbmysql.Conversation{ID: "conv-1"},
		[]*dbmysql.Participant{{UserID: 1}})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_ByID(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM `conversations` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "is_active", "created_by"}).
			AddRow("conv-1", "direct", true, 1))

	repo := NewConversationRepository(db)
	conv, err := repo.ByID(context.Background(), "conv-1")

	require.NoError(t, err)
	assert.Equal(t, common.ConversationDirect, conv.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_DirectBetween(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()

		mock.ExpectQuery("SELECT conversations\\.\\* FROM `conversations` JOIN participants").
			WillReturnRows(sqlmock.NewRows([]string{"id", "type"}).AddRow("conv-1", "direct"))

		repo := NewConversationRepository(db)
		conv, err := repo.DirectBetween(context.Background(), 1, 2)

		require.NoError(t, err)
		assert.Equal(t, "conv-1", conv.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()

		mock.ExpectQuery("SELECT conversations\\.\\* FROM `conversations` JOIN participants").
			WillReturnRows(sqlmock.NewRows([]string{"id", "type"}))

		repo := NewConversationRepository(db)
		_, err := repo.DirectBetween(context.Background(), 1, 2)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestConversationRepository_ListForUser(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT conversations\\.\\* FROM `conversations` JOIN participants").
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "is_active"}).
			AddRow("conv-2", "group", true).
			AddRow("conv-1", "direct", true))

	repo := NewConversationRepository(db)
	conversations, err := repo.ListForUser(context.Background(), 1, 50, 0)

	require.NoError(t, err)
	assert.Len(t, conversations, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
