// Package impl contains the application-specific business rules implementations.
package impl

import (
	"log/slog"
	"sync"

	"tilemart/internal/domain/entity"
	"tilemart/internal/usecase"
)

// sessionService implements the SessionUsecase interface. It is the single
// process-wide holder of the authenticated identity; every gated component
// consults it at call time rather than caching the role.
type sessionService struct {
	mu       sync.RWMutex
	identity *entity.Identity

	logger *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(logger *slog.Logger) usecase.SessionUsecase {
	return &sessionService{
		logger: logger,
	}
}

// Login replaces the current session unconditionally.
func (srv *sessionService) Login(identity *entity.Identity) {
	srv.mu.Lock()
	srv.identity = identity
	srv.mu.Unlock()

	if identity != nil {
		srv.logger.Info("session established",
			"userID", identity.UserID,
			"role", identity.Role.String(),
		)
	}
}

// Logout clears the session.
func (srv *sessionService) Logout() {
	srv.mu.Lock()
	srv.identity = nil
	srv.mu.Unlock()

	srv.logger.Info("session cleared")
}

// Current returns the active identity, or nil and false when anonymous.
func (srv *sessionService) Current() (*entity.Identity, bool) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.identity == nil {
		return nil, false
	}

	return srv.identity, true
}

// CurrentRole returns the active role, or entity.RoleNone.
func (srv *sessionService) CurrentRole() entity.Role {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.identity == nil {
		return entity.RoleNone
	}

	return srv.identity.Role
}

// Authorize is the single capability check for every gated operation.
func (srv *sessionService) Authorize(capability entity.Capability) entity.Decision {
	srv.mu.RLock()
	identity := srv.identity
	srv.mu.RUnlock()

	switch capability {
	case entity.CapUseCart:
		// The cart belongs to buying visitors; sellers are sent to login
		// with their customer account instead.
		if identity == nil {
			return entity.Forbid("login required")
		}
		if identity.Role == entity.RoleSeller {
			return entity.Forbid("sellers cannot use the cart")
		}

		return entity.Allow()

	case entity.CapCheckout:
		if identity == nil {
			return entity.Forbid("login required")
		}

		return entity.Allow()

	case entity.CapManageShop:
		if identity == nil {
			return entity.Forbid("login required")
		}
		if identity.Role != entity.RoleSeller {
			return entity.Forbid("seller role required")
		}

		return entity.Allow()

	default:
		return entity.Forbid("unknown capability")
	}
}
