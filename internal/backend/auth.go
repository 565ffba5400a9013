package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gpessoni/pokedex/internal/domain"
)

// userDTO is the backend's wire shape for a user identity.
type userDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func (u userDTO) toDomain() domain.User {
	created, _ := time.Parse(time.RFC3339, u.CreatedAt)
	return domain.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: created,
	}
}

// authResponse is the payload of both login and register.
type authResponse struct {
	Message string  `json:"message"`
	User    userDTO `json:"user"`
	Token   string  `json:"token"`
}

// Login exchanges email/password for a credential. A 401 here means bad
// credentials, not an expired session, so it is folded into ErrValidation.
func (c *Client) Login(ctx context.Context, email, password string) (domain.Credential, error) {
	payload := map[string]string{"email": email, "password": password}
	return c.authenticate(ctx, "/auth/login", payload)
}

// Register creates an account and returns its first credential.
func (c *Client) Register(ctx context.Context, email, name, password string) (domain.Credential, error) {
	payload := map[string]string{"email": email, "name": name, "password": password}
	return c.authenticate(ctx, "/auth/register", payload)
}

func (c *Client) authenticate(ctx context.Context, path string, payload any) (domain.Credential, error) {
	body, err := c.doRequest(ctx, http.MethodPost, path, payload)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return domain.Credential{}, fmt.Errorf("%w: invalid email or password", domain.ErrValidation)
		}
		return domain.Credential{}, err
	}

	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Credential{}, fmt.Errorf("failed to parse auth response: %w", err)
	}
	if resp.Token == "" {
		return domain.Credential{}, fmt.Errorf("auth response carried no token")
	}

	return domain.Credential{Token: resp.Token, User: resp.User.toDomain()}, nil
}
