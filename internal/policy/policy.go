// Package policy holds the access-control rules for the feedback domain.
// Every rule is a stateless predicate over already-loaded records, consulted by
// handlers before any mutation. Relationship checks are always evaluated
// against the current state of the users table, never against a snapshot taken
// when a record was created.
package policy

import (
	"errors"
	"fmt"

	"github.com/lakhoreJanvi/feedback-system/internal/domain"
)

// ErrForbidden is the sentinel for every failed policy check. Handlers map it
// to a 403 response.
var ErrForbidden = errors.New("forbidden")

func RequireManager(user *domain.User) error {
	if user == nil || user.Role != domain.RoleManager {
		return fmt.Errorf("%w: manager role required", ErrForbidden)
	}
	return nil
}

func RequireEmployee(user *domain.User) error {
	if user == nil || user.Role != domain.RoleEmployee {
		return fmt.Errorf("%w: employee role required", ErrForbidden)
	}
	return nil
}

// RequireManagerOf passes only while the employee currently reports to the
// manager. Reassigning an employee immediately revokes the previous manager's
// rights under this rule.
func RequireManagerOf(manager, employee *domain.User) error {
	if manager == nil || employee == nil {
		return fmt.Errorf("%w: not your team member", ErrForbidden)
	}
	if employee.ManagerID == nil || *employee.ManagerID != manager.ID {
		return fmt.Errorf("%w: not your team member", ErrForbidden)
	}
	return nil
}

// RequireSubject passes only for the employee the feedback is about. Governs
// acknowledge and comment.
func RequireSubject(employee *domain.User, feedback *domain.Feedback) error {
	if employee == nil || feedback == nil || feedback.EmployeeID != employee.ID {
		return fmt.Errorf("%w: not the subject of this feedback", ErrForbidden)
	}
	return nil
}

// RequireAuthor passes only for the manager who wrote the feedback. Governs
// edit, and keeps working after the employee is reassigned to someone else.
func RequireAuthor(manager *domain.User, feedback *domain.Feedback) error {
	if manager == nil || feedback == nil || feedback.ManagerID != manager.ID {
		return fmt.Errorf("%w: not the author of this feedback", ErrForbidden)
	}
	return nil
}
