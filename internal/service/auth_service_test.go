package service

import (
	"errors"
	"testing"

	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
)

func seedUser(t *testing.T, repos *repository.Repositories) *model.User {
	t.Helper()
	user := &model.User{
		Username: "staff1",
		Name:     "Staff One",
		Role:     model.RoleWarehouseStaff,
		Permissions: model.Permissions{
			OrderEdit:     true,
			InventoryEdit: true,
		},
	}
	if err := user.SetPassword("correct-horse"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if err := repos.Users.Create(user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestLoginIssuesTokenWithCapabilities(t *testing.T) {
	repos := newTestRepos()
	svc := NewAuthService(repos.Users)
	seedUser(t, repos)

	resp, err := svc.Login("staff1", "correct-horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token == "" {
		t.Error("empty token")
	}
	if len(resp.Capabilities) != 2 {
		t.Errorf("capabilities = %v, want orderEdit+inventoryEdit", resp.Capabilities)
	}

	validated, err := svc.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if validated.Username != "staff1" {
		t.Errorf("username = %q", validated.Username)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repos := newTestRepos()
	svc := NewAuthService(repos.Users)
	seedUser(t, repos)

	if _, err := svc.Login("staff1", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login("nobody", "correct-horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginRotatesSession(t *testing.T) {
	repos := newTestRepos()
	svc := NewAuthService(repos.Users)
	seedUser(t, repos)

	first, err := svc.Login("staff1", "correct-horse")
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	if _, err := svc.Login("staff1", "correct-horse"); err != nil {
		t.Fatalf("second login: %v", err)
	}

	// First session's token version no longer matches
	if _, err := svc.ValidateToken(first.Token); err == nil {
		t.Error("stale token still accepted after re-login")
	}
}
