package services

import (
	"context"
	"errors"
	"testing"

	"bells-pay/internal/adapters/persistence/memory"
	"bells-pay/internal/adapters/persistence/repositories"
	"bells-pay/internal/config"
	"bells-pay/internal/core/domain"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "test_secret",
			RefreshSecret:    "test_refresh_secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
		Auth: config.AuthConfig{
			EmailDomain:   "@bellsuniversity.edu.ng",
			LoginDelay:    0,
			RegisterDelay: 0,
		},
	}
}

func newTestAuthService(t *testing.T) (*AuthService, *repositories.Registry) {
	t.Helper()
	repos := memory.NewRegistry()
	svc := NewAuthService(repos.Users, repos.RefreshTokens, testAuthConfig(), NopSleeper)
	return svc, repos
}

func validRegisterInput() *RegisterInput {
	return &RegisterInput{
		FullName:     "Ada Balogun",
		Email:        "ada.balogun@bellsuniversity.edu.ng",
		MatricNumber: "BU/22/10234",
		Password:     "supersecret1",
		Department:   "Mechatronics",
		Level:        "200 Level",
	}
}

func TestRegister(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	result, err := svc.Register(ctx, validRegisterInput())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if result.User.Balance != 0 {
		t.Errorf("new accounts must start with a zero balance, got %d", result.User.Balance)
	}
	if result.User.Email != "ada.balogun@bellsuniversity.edu.ng" {
		t.Errorf("unexpected email %q", result.User.Email)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}

	claims, err := svc.ValidateAccessToken(result.AccessToken)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != result.User.ID {
		t.Errorf("claims carry user %d, want %d", claims.UserID, result.User.ID)
	}
	if claims.MatricNumber != "BU/22/10234" {
		t.Errorf("claims carry matric %q", claims.MatricNumber)
	}
}

func TestRegisterRejectsForeignEmailDomain(t *testing.T) {
	svc, _ := newTestAuthService(t)

	input := validRegisterInput()
	input.Email = "ada.balogun@gmail.com"

	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrInvalidEmailDomain) {
		t.Fatalf("expected ErrInvalidEmailDomain, got %v", err)
	}
}

func TestRegisterRejectsMalformedMatric(t *testing.T) {
	tests := []struct {
		name   string
		matric string
	}{
		{"too few digits", "BU/22/1234"},
		{"missing prefix", "22/10234"},
		{"lowercase prefix", "bu/22/10234"},
		{"letters in number", "BU/22/1O234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestAuthService(t)
			input := validRegisterInput()
			input.MatricNumber = tt.matric

			if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrInvalidMatricNumber) {
				t.Fatalf("expected ErrInvalidMatricNumber, got %v", err)
			}
		})
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegisterInput()); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	// Same email, case-insensitive
	dup := validRegisterInput()
	dup.Email = "Ada.Balogun@bellsuniversity.edu.ng"
	dup.MatricNumber = "BU/22/10235"
	if _, err := svc.Register(ctx, dup); !errors.Is(err, domain.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}

	// Same matric, different email
	dup2 := validRegisterInput()
	dup2.Email = "other@bellsuniversity.edu.ng"
	if _, err := svc.Register(ctx, dup2); !errors.Is(err, domain.ErrDuplicateEntry) {
		t.Fatalf("expected ErrDuplicateEntry, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegisterInput()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"valid credentials", "ada.balogun@bellsuniversity.edu.ng", "supersecret1", nil},
		{"uppercased email", "ADA.BALOGUN@bellsuniversity.edu.ng", "supersecret1", nil},
		{"unknown email", "nobody@bellsuniversity.edu.ng", "supersecret1", domain.ErrAccountNotFound},
		{"wrong password", "ada.balogun@bellsuniversity.edu.ng", "wrongpassword", domain.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Login(ctx, &LoginInput{Email: tt.email, Password: tt.password})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login: %v", err)
			}
			if result.AccessToken == "" {
				t.Error("expected an access token")
			}
		})
	}
}

func TestRefreshTokenRotation(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, validRegisterInput())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	refreshed, err := svc.RefreshToken(ctx, registered.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	if refreshed.RefreshToken == registered.RefreshToken {
		t.Error("rotation must issue a new refresh token")
	}

	// The old token was revoked by rotation
	if _, err := svc.RefreshToken(ctx, registered.RefreshToken); !errors.Is(err, ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked for rotated token, got %v", err)
	}

	// The new one still works
	if _, err := svc.RefreshToken(ctx, refreshed.RefreshToken); err != nil {
		t.Fatalf("refreshed token should be usable: %v", err)
	}
}

func TestRefreshTokenRejectsGarbage(t *testing.T) {
	svc, _ := newTestAuthService(t)

	if _, err := svc.RefreshToken(context.Background(), "not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, validRegisterInput())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.Logout(ctx, registered.RefreshToken); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if _, err := svc.RefreshToken(ctx, registered.RefreshToken); !errors.Is(err, ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked after logout, got %v", err)
	}

	// Logout with an unknown token is not an error
	if err := svc.Logout(ctx, "not-a-known-token"); err != nil {
		t.Fatalf("Logout with unknown token: %v", err)
	}
}

func TestLogoutAll(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, validRegisterInput())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	loggedIn, err := svc.Login(ctx, &LoginInput{
		Email:    "ada.balogun@bellsuniversity.edu.ng",
		Password: "supersecret1",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.LogoutAll(ctx, registered.User.ID); err != nil {
		t.Fatalf("LogoutAll: %v", err)
	}

	for _, token := range []string{registered.RefreshToken, loggedIn.RefreshToken} {
		if _, err := svc.RefreshToken(ctx, token); !errors.Is(err, ErrTokenRevoked) {
			t.Fatalf("expected ErrTokenRevoked after LogoutAll, got %v", err)
		}
	}
}
