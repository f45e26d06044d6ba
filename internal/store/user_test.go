package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"excelviz/internal/database"
	"excelviz/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func userScan(u *model.User) func(dest ...any) error {
	return func(dest ...any) error {
		switch len(dest) {
		case 6:
			*dest[0].(*int) = u.ID
			*dest[1].(*string) = u.Name
			*dest[2].(*string) = u.Email
			*dest[3].(*string) = u.PasswordHash
			*dest[4].(*bool) = u.IsAdmin
			*dest[5].(*time.Time) = u.CreatedAt
		case 2:
			*dest[0].(*int) = u.ID
			*dest[1].(*time.Time) = u.CreatedAt
		default:
			panic("userScan: unexpected dest count")
		}
		return nil
	}
}

func TestUserStore(t *testing.T) {
	now := time.Now().UTC()
	sample := &model.User{
		ID:           7,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash123",
		IsAdmin:      true,
		CreatedAt:    now,
	}

	t.Run("CreateUser success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanFn: userScan(sample)}
			},
		}
		u, err := CreateUser(context.Background(), db, &model.User{Name: "Alice"})
		require.NoError(t, err)
		require.Equal(t, 7, u.ID)
		require.Equal(t, now, u.CreatedAt)
	})

	t.Run("CreateUser error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanFn: func(...any) error { return errors.New("dup") }}
			},
		}
		_, err := CreateUser(context.Background(), db, &model.User{})
		require.Error(t, err)
	})

	t.Run("GetUserByID success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanFn: userScan(sample)}
			},
		}
		u, err := GetUserByID(context.Background(), db, 7)
		require.NoError(t, err)
		require.Equal(t, sample.Email, u.Email)
		require.True(t, u.IsAdmin)
	})

	t.Run("GetUserByEmail not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanFn: func(...any) error { return pgx.ErrNoRows }}
			},
		}
		u, err := GetUserByEmail(context.Background(), db, "nobody@example.com")
		require.Error(t, err)
		require.ErrorIs(t, err, pgx.ErrNoRows)
		require.Nil(t, u)
	})
}
