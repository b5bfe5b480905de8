package auth

import "context"

// AuthService resolves credentials and tokens into authenticated principals.
type AuthService interface {
	// Login verifies credentials and issues access + refresh tokens.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)

	// Me returns the profile of the authenticated principal.
	Me(ctx context.Context) (MeResponse, error)
}
