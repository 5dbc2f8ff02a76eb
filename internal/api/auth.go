package api

import (
	"context"
	"fmt"
)

// Me is the authenticated user's identity.
type Me struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

// Login exchanges credentials for a JWT. It works on an unauthenticated
// client; the returned token goes into PREPCLI_API_TOKEN.
func Login(ctx context.Context, baseURL, email, password string, opts ...Option) (string, error) {
	c := New(Config{BaseURL: baseURL}, opts...)

	body := map[string]string{
		"email":    email,
		"password": password,
	}
	var res struct {
		Token string `json:"token"`
	}
	if err := c.post(ctx, "/api/login_check", body, &res); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if res.Token == "" {
		return "", fmt.Errorf("login: server returned no token")
	}
	return res.Token, nil
}

// WhoAmI fetches the authenticated user's profile.
func (c *Client) WhoAmI(ctx context.Context) (Me, error) {
	var me Me
	if err := c.get(ctx, "/api/me", &me); err != nil {
		return Me{}, err
	}
	return me, nil
}
