package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lakhoreJanvi/feedback-system/internal/domain"
)

// setupUserTestDB creates an in-memory SQLite database for testing
func setupUserTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&domain.User{})
	require.NoError(t, err)

	return db
}

func newTestUser(role domain.UserRole, email string, managerID *uuid.UUID) *domain.User {
	return &domain.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hashed",
		Role:         role,
		ManagerID:    managerID,
	}
}

func TestEmailExists(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(newTestUser(domain.RoleManager, "m1@example.com", nil)))

	exists, err := repo.EmailExists("m1@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.EmailExists("other@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestListTeam_ReturnsDirectReportsOnly(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewUserRepository(db)

	m1 := newTestUser(domain.RoleManager, "m1@example.com", nil)
	m2 := newTestUser(domain.RoleManager, "m2@example.com", nil)
	require.NoError(t, repo.Create(m1))
	require.NoError(t, repo.Create(m2))

	e1 := newTestUser(domain.RoleEmployee, "e1@example.com", &m1.ID)
	e2 := newTestUser(domain.RoleEmployee, "e2@example.com", &m1.ID)
	e3 := newTestUser(domain.RoleEmployee, "e3@example.com", &m2.ID)
	unassigned := newTestUser(domain.RoleEmployee, "e4@example.com", nil)
	require.NoError(t, repo.Create(e1))
	require.NoError(t, repo.Create(e2))
	require.NoError(t, repo.Create(e3))
	require.NoError(t, repo.Create(unassigned))

	team, err := repo.ListTeam(m1.ID)
	require.NoError(t, err)
	require.Len(t, team, 2)
	for _, member := range team {
		require.NotNil(t, member.ManagerID)
		assert.Equal(t, m1.ID, *member.ManagerID)
	}
}

// The team is a derived query over the current manager_id, so reassignment
// moves the employee between teams immediately.
func TestListTeam_ReflectsReassignment(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewUserRepository(db)

	m1 := newTestUser(domain.RoleManager, "m1@example.com", nil)
	m3 := newTestUser(domain.RoleManager, "m3@example.com", nil)
	require.NoError(t, repo.Create(m1))
	require.NoError(t, repo.Create(m3))

	e := newTestUser(domain.RoleEmployee, "e@example.com", &m1.ID)
	require.NoError(t, repo.Create(e))

	team, err := repo.ListTeam(m1.ID)
	require.NoError(t, err)
	assert.Len(t, team, 1)

	e.ManagerID = &m3.ID
	require.NoError(t, repo.Update(e))

	team, err = repo.ListTeam(m1.ID)
	require.NoError(t, err)
	assert.Empty(t, team)

	team, err = repo.ListTeam(m3.ID)
	require.NoError(t, err)
	assert.Len(t, team, 1)
}

func TestListByRole(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewUserRepository(db)

	m := newTestUser(domain.RoleManager, "m@example.com", nil)
	require.NoError(t, repo.Create(m))
	require.NoError(t, repo.Create(newTestUser(domain.RoleEmployee, "e1@example.com", &m.ID)))
	require.NoError(t, repo.Create(newTestUser(domain.RoleEmployee, "e2@example.com", &m.ID)))

	managers, err := repo.ListByRole(domain.RoleManager)
	require.NoError(t, err)
	assert.Len(t, managers, 1)

	employees, err := repo.ListByRole(domain.RoleEmployee)
	require.NoError(t, err)
	assert.Len(t, employees, 2)
}
