package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/innerlog/innerlog-api/internal/models"
	"github.com/innerlog/innerlog-api/pkg/recordstore"
)

type userRepository struct {
	client *recordstore.Client
}

// NewUserRepository creates a new user repository
func NewUserRepository(client *recordstore.Client) UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	params := map[string]string{
		"id":     fmt.Sprintf("eq.%s", userID),
		"select": "id,email,role",
	}

	body, err := r.client.Query(ctx, "users", params)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var users []models.User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	if len(users) == 0 {
		return nil, fmt.Errorf("user not found")
	}

	return &users[0], nil
}

// HasClientGrant checks the therapist_clients assignment table. A viewer may
// only see a client that is explicitly assigned to them; there is no
// wildcard grant, not even for admins.
func (r *userRepository) HasClientGrant(ctx context.Context, viewerID, clientID string) (bool, error) {
	params := map[string]string{
		"therapistId": fmt.Sprintf("eq.%s", viewerID),
		"clientId":    fmt.Sprintf("eq.%s", clientID),
		"select":      "clientId",
		"limit":       "1",
	}

	body, err := r.client.Query(ctx, "therapist_clients", params)
	if err != nil {
		return false, fmt.Errorf("failed to check client grant: %w", err)
	}

	var rows []struct {
		ClientID string `json:"clientId"`
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		return false, fmt.Errorf("failed to unmarshal client grant: %w", err)
	}

	return len(rows) > 0, nil
}
