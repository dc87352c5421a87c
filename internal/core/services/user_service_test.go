package services

import (
	"context"
	"errors"
	"testing"

	"bells-pay/internal/adapters/persistence/memory"
	"bells-pay/internal/adapters/persistence/models"
	"bells-pay/internal/core/domain"
	"bells-pay/internal/pkg/password"
)

func newTestUserService(t *testing.T) (*UserService, *models.User) {
	t.Helper()

	repos := memory.NewRegistry()
	hashed, err := password.Hash("password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := &models.User{
		FullName:     "John Adeyemi",
		Email:        "student@bellsuniversity.edu.ng",
		MatricNumber: "BU/21/04567",
		Password:     hashed,
		Department:   "Computer Science",
		Level:        "400 Level",
	}
	if err := repos.Users.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return NewUserService(repos.Users), user
}

func TestUpdateProfile(t *testing.T) {
	svc, user := newTestUserService(t)
	ctx := context.Background()

	updated, err := svc.UpdateProfile(ctx, user.ID, &UpdateProfileInput{
		Department: "Software Engineering",
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Department != "Software Engineering" {
		t.Errorf("department = %q", updated.Department)
	}
	// Empty fields stay untouched
	if updated.FullName != "John Adeyemi" || updated.Level != "400 Level" {
		t.Errorf("untouched fields changed: %q, %q", updated.FullName, updated.Level)
	}

	if _, err := svc.UpdateProfile(ctx, 999, &UpdateProfileInput{}); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		wantErr error
	}{
		{"valid change", "password123", "newpassword1", nil},
		{"wrong current password", "nope", "newpassword1", domain.ErrInvalidCredentials},
		{"short new password", "password123", "short", domain.ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, user := newTestUserService(t)
			ctx := context.Background()

			err := svc.ChangePassword(ctx, user.ID, &ChangePasswordInput{
				CurrentPassword: tt.current,
				NewPassword:     tt.next,
			})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ChangePassword: %v", err)
			}

			stored, _ := svc.GetProfile(ctx, user.ID)
			if !password.Verify(tt.next, stored.Password) {
				t.Error("new password does not verify against stored hash")
			}
		})
	}
}
