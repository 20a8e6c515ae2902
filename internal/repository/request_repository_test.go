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

// setupRequestTestDB creates an in-memory SQLite database for testing
func setupRequestTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&domain.User{}, &domain.FeedbackRequest{})
	require.NoError(t, err)

	return db
}

func TestCreateRequest_StartsPending(t *testing.T) {
	db := setupRequestTestDB(t)
	repo := NewRequestRepository(db)
	users := NewUserRepository(db)

	m := newTestUser(domain.RoleManager, "m@example.com", nil)
	require.NoError(t, users.Create(m))
	e := newTestUser(domain.RoleEmployee, "e@example.com", &m.ID)
	require.NoError(t, users.Create(e))

	req := &domain.FeedbackRequest{
		EmployeeID: e.ID,
		ManagerID:  m.ID,
		Status:     domain.RequestStatusPending,
	}
	require.NoError(t, repo.Create(req))

	listed, err := repo.ListByEmployee(e.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, domain.RequestStatusPending, listed[0].Status)
	require.NotNil(t, listed[0].Manager)
	require.NotNil(t, listed[0].Employee)
	assert.Equal(t, m.ID, listed[0].Manager.ID)
}

// A request may name any manager; the repository does not tie it to the
// employee's actual reporting line.
func TestCreateRequest_UnrelatedManagerAccepted(t *testing.T) {
	db := setupRequestTestDB(t)
	repo := NewRequestRepository(db)
	users := NewUserRepository(db)

	actual := newTestUser(domain.RoleManager, "actual@example.com", nil)
	unrelated := newTestUser(domain.RoleManager, "unrelated@example.com", nil)
	require.NoError(t, users.Create(actual))
	require.NoError(t, users.Create(unrelated))

	e := newTestUser(domain.RoleEmployee, "e@example.com", &actual.ID)
	require.NoError(t, users.Create(e))

	req := &domain.FeedbackRequest{
		EmployeeID: e.ID,
		ManagerID:  unrelated.ID,
		Status:     domain.RequestStatusPending,
	}
	require.NoError(t, repo.Create(req))

	listed, err := repo.ListByManager(unrelated.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestListRequests_PartitionedByRoleSide(t *testing.T) {
	db := setupRequestTestDB(t)
	repo := NewRequestRepository(db)
	users := NewUserRepository(db)

	m1 := newTestUser(domain.RoleManager, "m1@example.com", nil)
	m2 := newTestUser(domain.RoleManager, "m2@example.com", nil)
	require.NoError(t, users.Create(m1))
	require.NoError(t, users.Create(m2))

	e1 := newTestUser(domain.RoleEmployee, "e1@example.com", &m1.ID)
	e2 := newTestUser(domain.RoleEmployee, "e2@example.com", &m2.ID)
	require.NoError(t, users.Create(e1))
	require.NoError(t, users.Create(e2))

	mk := func(employeeID, managerID uuid.UUID) {
		require.NoError(t, repo.Create(&domain.FeedbackRequest{
			EmployeeID: employeeID,
			ManagerID:  managerID,
			Status:     domain.RequestStatusPending,
		}))
	}
	mk(e1.ID, m1.ID)
	mk(e1.ID, m2.ID)
	mk(e2.ID, m2.ID)

	forM1, err := repo.ListByManager(m1.ID)
	require.NoError(t, err)
	assert.Len(t, forM1, 1)

	forM2, err := repo.ListByManager(m2.ID)
	require.NoError(t, err)
	assert.Len(t, forM2, 2)

	byE1, err := repo.ListByEmployee(e1.ID)
	require.NoError(t, err)
	assert.Len(t, byE1, 2)

	byE2, err := repo.ListByEmployee(e2.ID)
	require.NoError(t, err)
	assert.Len(t, byE2, 1)
}
