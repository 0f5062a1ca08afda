package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/innerlog/innerlog-api/internal/logger"
	"github.com/innerlog/innerlog-api/internal/models"
	"github.com/innerlog/innerlog-api/internal/repository"
)

var (
	// ErrNoAuthenticatedUser is returned when resolution is attempted
	// without an authenticated user. Callers must not fetch anything.
	ErrNoAuthenticatedUser = errors.New("no authenticated user")

	// ErrClientsCannotView is returned when a client-role user tries to
	// select a viewing client.
	ErrClientsCannotView = errors.New("clients cannot view other users' data")

	// ErrNoClientGrant is returned when a viewer requests a client they
	// hold no grant for.
	ErrNoClientGrant = errors.New("no grant for requested client")
)

type sessionService struct {
	selections repository.ViewSelectionRepository
	users      repository.UserRepository
}

// NewSessionService creates the session-selection service.
func NewSessionService(selections repository.ViewSelectionRepository, users repository.UserRepository) SessionService {
	return &sessionService{selections: selections, users: users}
}

// Resolve applies one deterministic precedence everywhere: request-scoped
// selection, then persisted selection, then the user's own id. Client-role
// users always resolve to themselves, and any stale persisted selection
// they carry is cleared on sight. Every candidate client id must pass the
// server-side grant check; an ungranted request-scoped id is an error, an
// ungranted persisted id is cleared and resolution falls through.
func (s *sessionService) Resolve(ctx context.Context, user *models.User, requestedClientID string) (*models.ActiveUser, error) {
	if user == nil || user.ID == "" {
		return nil, ErrNoAuthenticatedUser
	}

	log := logger.Ctx(ctx)

	if !user.Role.CanViewClients() {
		// A client can never view another user's data. A persisted
		// selection here is stale state from a role change; clear it.
		sel, err := s.selections.Get(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check stale selection: %w", err)
		}
		if sel != nil {
			log.Warn("clearing stale viewing-client selection for client-role user",
				logger.String("user_id", user.ID),
				logger.String("stale_client_id", sel.ClientID),
			)
			if err := s.selections.Clear(ctx, user.ID); err != nil {
				return nil, fmt.Errorf("failed to clear stale selection: %w", err)
			}
		}
		return ownActiveUser(user.ID), nil
	}

	// Request-scoped selection wins over the persisted one.
	if requestedClientID != "" && requestedClientID != user.ID {
		granted, err := s.users.HasClientGrant(ctx, user.ID, requestedClientID)
		if err != nil {
			return nil, fmt.Errorf("failed to validate client grant: %w", err)
		}
		if !granted {
			return nil, ErrNoClientGrant
		}
		return viewingActiveUser(requestedClientID), nil
	}

	sel, err := s.selections.Get(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load persisted selection: %w", err)
	}
	if sel != nil && sel.ClientID != user.ID {
		granted, err := s.users.HasClientGrant(ctx, user.ID, sel.ClientID)
		if err != nil {
			return nil, fmt.Errorf("failed to validate persisted grant: %w", err)
		}
		if granted {
			return viewingActiveUser(sel.ClientID), nil
		}
		// Grant was revoked since the selection was saved.
		log.Warn("clearing persisted selection with revoked grant",
			logger.String("user_id", user.ID),
			logger.String("client_id", sel.ClientID),
		)
		if err := s.selections.Clear(ctx, user.ID); err != nil {
			return nil, fmt.Errorf("failed to clear revoked selection: %w", err)
		}
	}

	return ownActiveUser(user.ID), nil
}

func (s *sessionService) SetViewingClient(ctx context.Context, user *models.User, clientID string) error {
	if user == nil || user.ID == "" {
		return ErrNoAuthenticatedUser
	}
	if !user.Role.CanViewClients() {
		return ErrClientsCannotView
	}
	if clientID == "" || clientID == user.ID {
		return fmt.Errorf("invalid client id")
	}

	granted, err := s.users.HasClientGrant(ctx, user.ID, clientID)
	if err != nil {
		return fmt.Errorf("failed to validate client grant: %w", err)
	}
	if !granted {
		return ErrNoClientGrant
	}

	return s.selections.Set(ctx, user.ID, clientID)
}

func (s *sessionService) ClearViewingClient(ctx context.Context, user *models.User) error {
	if user == nil || user.ID == "" {
		return ErrNoAuthenticatedUser
	}
	return s.selections.Clear(ctx, user.ID)
}

func (s *sessionService) GetViewingClient(ctx context.Context, user *models.User) (*models.ViewSelection, error) {
	if user == nil || user.ID == "" {
		return nil, ErrNoAuthenticatedUser
	}
	return s.selections.Get(ctx, user.ID)
}

func ownActiveUser(userID string) *models.ActiveUser {
	return &models.ActiveUser{
		UserID:          userID,
		IsViewingClient: false,
		PathPrefix:      "/api/users/" + userID,
	}
}

func viewingActiveUser(clientID string) *models.ActiveUser {
	return &models.ActiveUser{
		UserID:          clientID,
		IsViewingClient: true,
		PathPrefix:      "/api/users/" + clientID,
	}
}
