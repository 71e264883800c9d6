// Package usecase contains the application-specific business rules.
package usecase

import "tilemart/internal/domain/entity"

// SessionUsecase holds the current authenticated identity for the lifetime of
// the process and answers every capability question for the gated components.
// It performs no network calls; it only stores what callers hand it.
type SessionUsecase interface {
	// Login replaces the current session unconditionally (last write wins).
	Login(identity *entity.Identity)

	// Logout clears the session.
	Logout()

	// Current returns the active identity, or nil and false when anonymous.
	Current() (*entity.Identity, bool)

	// CurrentRole returns the active role, or entity.RoleNone.
	CurrentRole() entity.Role

	// Authorize is the single capability check consulted by every gated
	// operation. It reflects the session state at call time, so a session
	// cleared mid-flight immediately revokes seller operations.
	Authorize(capability entity.Capability) entity.Decision
}
