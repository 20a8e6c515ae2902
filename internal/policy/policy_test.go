package policy

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/lakhoreJanvi/feedback-system/internal/domain"
)

func manager() *domain.User {
	u := &domain.User{Role: domain.RoleManager}
	u.ID = uuid.New()
	return u
}

func employeeOf(m *domain.User) *domain.User {
	u := &domain.User{Role: domain.RoleEmployee}
	u.ID = uuid.New()
	if m != nil {
		id := m.ID
		u.ManagerID = &id
	}
	return u
}

func TestRequireManager(t *testing.T) {
	assert.NoError(t, RequireManager(manager()))

	err := RequireManager(employeeOf(nil))
	assert.ErrorIs(t, err, ErrForbidden)

	assert.ErrorIs(t, RequireManager(nil), ErrForbidden)
}

func TestRequireEmployee(t *testing.T) {
	assert.NoError(t, RequireEmployee(employeeOf(nil)))

	err := RequireEmployee(manager())
	assert.ErrorIs(t, err, ErrForbidden)

	assert.ErrorIs(t, RequireEmployee(nil), ErrForbidden)
}

// RequireManagerOf succeeds iff the employee's manager_id equals the manager's
// id at call time.
func TestRequireManagerOf(t *testing.T) {
	m := manager()
	other := manager()
	e := employeeOf(m)

	assert.NoError(t, RequireManagerOf(m, e))
	assert.ErrorIs(t, RequireManagerOf(other, e), ErrForbidden)

	unassigned := employeeOf(nil)
	assert.ErrorIs(t, RequireManagerOf(m, unassigned), ErrForbidden)
}

// Rights are evaluated live against the current manager_id: reassigning the
// employee flips the answer immediately, with nothing cached.
func TestRequireManagerOf_ReassignmentRevokesRights(t *testing.T) {
	m1 := manager()
	m3 := manager()
	e := employeeOf(m1)

	assert.NoError(t, RequireManagerOf(m1, e))

	id := m3.ID
	e.ManagerID = &id

	assert.ErrorIs(t, RequireManagerOf(m1, e), ErrForbidden)
	assert.NoError(t, RequireManagerOf(m3, e))
}

func TestRequireSubject(t *testing.T) {
	m := manager()
	e := employeeOf(m)
	other := employeeOf(m)

	fb := &domain.Feedback{ManagerID: m.ID, EmployeeID: e.ID}

	assert.NoError(t, RequireSubject(e, fb))
	assert.ErrorIs(t, RequireSubject(other, fb), ErrForbidden)
	assert.ErrorIs(t, RequireSubject(nil, fb), ErrForbidden)
	assert.ErrorIs(t, RequireSubject(e, nil), ErrForbidden)
}

// Author rights stick to the record's manager_id, so they survive the employee
// being reassigned to a different manager.
func TestRequireAuthor(t *testing.T) {
	m1 := manager()
	m3 := manager()
	e := employeeOf(m1)

	fb := &domain.Feedback{ManagerID: m1.ID, EmployeeID: e.ID}

	assert.NoError(t, RequireAuthor(m1, fb))
	assert.ErrorIs(t, RequireAuthor(m3, fb), ErrForbidden)

	// Reassignment changes nothing for the author check.
	id := m3.ID
	e.ManagerID = &id
	assert.NoError(t, RequireAuthor(m1, fb))
}

func TestPolicyErrorsWrapForbidden(t *testing.T) {
	for _, err := range []error{
		RequireManager(nil),
		RequireEmployee(nil),
		RequireManagerOf(nil, nil),
		RequireSubject(nil, nil),
		RequireAuthor(nil, nil),
	} {
		assert.True(t, errors.Is(err, ErrForbidden))
	}
}
