package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/teamspace-dev/teamspace-api/internal/utils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (ProjectRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewProjectRepository(db), mock
}

// Non-guest listings filter on the privacy flag combined with a membership
// EXISTS subquery, never on a grant list.
func TestGormProjectRepository_ListVisible_MemberQuery(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT count\(.+\) FROM "projects" WHERE .*is_private.* EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .+ FROM "projects" WHERE .*is_private.* EXISTS .* ORDER BY projects\.name`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_private"}).
			AddRow(1, "Launch", false))

	projects, total, err := repo.ListVisible(42, false, utils.PaginationParams{Page: 1, Limit: 20})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, projects, 1)
	require.Equal(t, "Launch", projects[0].Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

// Guest listings never consult the privacy flag: only membership and the
// guest grant list decide.
func TestGormProjectRepository_ListVisible_GuestQuery(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT count\(.+\) FROM "projects" WHERE .*EXISTS .+ OR projects\.id IN`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .+ FROM "projects" WHERE .*EXISTS .+ OR projects\.id IN .* ORDER BY projects\.name`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_private"}).
			AddRow(7, "Granted", true))

	projects, total, err := repo.ListVisible(42, true, utils.PaginationParams{Page: 1, Limit: 20})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, projects, 1)
	require.EqualValues(t, 7, projects[0].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormProjectRepository_TaskProgress(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT SUM\(CASE WHEN is_completed THEN 1 ELSE 0 END\) AS completed, COUNT\(\*\) AS total FROM "tasks"`).
		WillReturnRows(sqlmock.NewRows([]string{"completed", "total"}).AddRow(3, 4))

	completed, total, err := repo.TaskProgress(1)
	require.NoError(t, err)
	require.EqualValues(t, 3, completed)
	require.EqualValues(t, 4, total)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormProjectRepository_Exists(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT count\(.+\) FROM "projects" WHERE id = `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := repo.Exists(9999)
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, mock.ExpectationsWereMet())
}
