package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/domain"
	"github.com/procurehq/reqflow/internal/model"
	"github.com/stretchr/testify/assert"
)

func signupFixtures() (*model.User, *model.Organization, *model.OrganizationMember) {
	user := &model.User{
		Email:        "ada@example.com",
		FirstName:    "Ada",
		PasswordHash: "hash",
		Status:       model.UserStatusPending,
	}
	org := &model.Organization{
		Name:    "Personal",
		OrgType: model.OrgTypePersonal,
	}
	member := &model.OrganizationMember{
		Role: model.RoleSuperAdmin,
	}
	return user, org, member
}

func TestUserRepository_CreateWithMembership(t *testing.T) {
	t.Run("CommitsAllThreeRows", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewUserRepository(gdb)
		user, org, member := signupFixtures()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
		mock.ExpectQuery(`INSERT INTO "organizations"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
		mock.ExpectQuery(`INSERT INTO "organization_members"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
		mock.ExpectCommit()

		err := repo.CreateWithMembership(context.Background(), user, org, member)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, org.CreatedByID)
		assert.Equal(t, user.ID, member.UserID)
		assert.Equal(t, org.ID, member.OrganizationID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollsBackWhenOrganizationInsertFails", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewUserRepository(gdb)
		user, org, member := signupFixtures()

		// The user insert must not survive a failed organization insert,
		// otherwise signup leaves an orphaned user row behind.
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
		mock.ExpectQuery(`INSERT INTO "organizations"`).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.CreateWithMembership(context.Background(), user, org, member)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewUserRepository(gdb)
		user, org, member := signupFixtures()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectRollback()

		err := repo.CreateWithMembership(context.Background(), user, org, member)
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
