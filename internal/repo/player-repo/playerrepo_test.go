package playerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/grandbay/casino-core/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var playerRowColumns = []string{
	"id", "login", "password_hash", "kyc_verified", "is_active",
	"self_excluded", "exclusion_period", "exclusion_start", "exclusion_end", "created_at",
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now().UTC()

	t.Run("Player found", func(t *testing.T) {
		rows := pgxmock.NewRows(playerRowColumns).
			AddRow(1, "alice", "hash", true, true, false, nil, nil, nil, now)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, login, password_hash, kyc_verified, is_active, self_excluded, exclusion_period, exclusion_start, exclusion_end, created_at FROM players WHERE id = $1`)).
			WithArgs(1).
			WillReturnRows(rows)

		player, err := repo.FindByID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "alice", player.Login)
		assert.True(t, player.KYCVerified)
		assert.False(t, player.SelfExcluded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown player returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM players WHERE id = $1`)).
			WithArgs(99).
			WillReturnRows(pgxmock.NewRows(playerRowColumns))

		player, err := repo.FindByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, player)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM players WHERE id = $1`)).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		_, err := repo.FindByID(context.Background(), 1)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now().UTC()

	t.Run("Player found", func(t *testing.T) {
		rows := pgxmock.NewRows(playerRowColumns).
			AddRow(1, "alice", "hash", false, true, false, nil, nil, nil, now)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM players WHERE login = $1`)).
			WithArgs("alice").
			WillReturnRows(rows)

		player, err := repo.FindByLogin(context.Background(), "alice")
		assert.NoError(t, err)
		assert.Equal(t, 1, player.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown login returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM players WHERE login = $1`)).
			WithArgs("bob").
			WillReturnRows(pgxmock.NewRows(playerRowColumns))

		player, err := repo.FindByLogin(context.Background(), "bob")
		assert.NoError(t, err)
		assert.Nil(t, player)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Player created", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id"}).AddRow(1)
		mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO players (login, password_hash)
			VALUES ($1, $2)
			RETURNING id
		`)).
			WithArgs("alice", "hash").
			WillReturnRows(rows)

		player, err := repo.Create(context.Background(), &domain.Player{Login: "alice", PasswordHash: "hash"})
		assert.NoError(t, err)
		assert.Equal(t, 1, player.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO players`)).
			WithArgs("alice", "hash").
			WillReturnError(errors.New("database error"))

		_, err := repo.Create(context.Background(), &domain.Player{Login: "alice", PasswordHash: "hash"})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_UpdateExclusion(t *testing.T) {
	repo, mock := NewMock(t)

	period := domain.ExclusionSixMonths
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 6, 0)
	player := &domain.Player{
		ID:              1,
		IsActive:        true,
		SelfExcluded:    true,
		ExclusionPeriod: &period,
		ExclusionStart:  &start,
		ExclusionEnd:    &end,
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`
			UPDATE players
			SET self_excluded = $1, exclusion_period = $2, exclusion_start = $3, exclusion_end = $4, is_active = $5
			WHERE id = $6
		`)).
			WithArgs(true, &period, &start, &end, true, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateExclusion(context.Background(), player)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE players`)).
			WithArgs(true, &period, &start, &end, true, 1).
			WillReturnError(errors.New("database error"))

		err := repo.UpdateExclusion(context.Background(), player)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_SetKYCVerified(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET kyc_verified = $1`)).
			WithArgs(true, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.SetKYCVerified(context.Background(), 1, true)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET kyc_verified = $1`)).
			WithArgs(false, 1).
			WillReturnError(errors.New("database error"))

		err := repo.SetKYCVerified(context.Background(), 1, false)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindExpiredExclusions(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Expired exclusions returned", func(t *testing.T) {
		period := domain.ExclusionSixMonths
		start := now.AddDate(0, -6, -1)
		end := now.Add(-time.Hour)
		rows := pgxmock.NewRows(playerRowColumns).
			AddRow(1, "alice", "hash", true, true, true, &period, &start, &end, start)
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE self_excluded AND exclusion_end IS NOT NULL AND exclusion_end <= $1`)).
			WithArgs(now, 1000).
			WillReturnRows(rows)

		players, err := repo.FindExpiredExclusions(context.Background(), now, 1000)
		assert.NoError(t, err)
		assert.Len(t, players, 1)
		assert.Equal(t, 1, players[0].ID)
		assert.True(t, players[0].SelfExcluded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE self_excluded AND exclusion_end IS NOT NULL AND exclusion_end <= $1`)).
			WithArgs(now, 1000).
			WillReturnError(errors.New("database error"))

		_, err := repo.FindExpiredExclusions(context.Background(), now, 1000)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
