package core

import (
	"context"
	"errors"
	"sync"
	"testing"

	"rentwheels-backend-go/internal/models"
)

func TestEnsureUserCreatesWithDefaultRole(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, created, err := svc.EnsureUser(ctx, "uid-1", "Alice", "alice@example.com")
	if err != nil {
		t.Fatalf("EnsureUser: %v", err)
	}
	if !created {
		t.Fatalf("expected first call to create the user")
	}
	if user.Role != models.RoleUser {
		t.Fatalf("expected default role USER, got %q", user.Role)
	}

	// Second call finds the existing record.
	again, created, err := svc.EnsureUser(ctx, "uid-1", "Alice", "alice@example.com")
	if err != nil {
		t.Fatalf("EnsureUser: %v", err)
	}
	if created {
		t.Fatalf("expected second call to find, not create")
	}
	if again.ExternalID != "uid-1" {
		t.Fatalf("expected same record, got %q", again.ExternalID)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(repo.users))
	}
}

func TestEnsureUserKeepsExistingRole(t *testing.T) {
	repo := newMemUserRepo()
	adminID := repo.seedAdmin()
	svc := NewUserService(repo)

	user, created, err := svc.EnsureUser(context.Background(), adminID, "Admin", "admin@example.com")
	if err != nil {
		t.Fatalf("EnsureUser: %v", err)
	}
	if created {
		t.Fatalf("expected existing admin to be found, not created")
	}
	if user.Role != models.RoleAdmin {
		t.Fatalf("expected ADMIN role preserved, got %q", user.Role)
	}
}

func TestEnsureUserConcurrentBootstrapYieldsOneRecord(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	const callers = 16
	var wg sync.WaitGroup
	var mu sync.Mutex
	createdCount := 0

	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			user, created, err := svc.EnsureUser(ctx, "uid-race", "Racer", "racer@example.com")
			if err != nil {
				t.Errorf("EnsureUser: %v", err)
				return
			}
			if user == nil || user.ExternalID != "uid-race" {
				t.Errorf("unexpected user: %+v", user)
				return
			}
			if created {
				mu.Lock()
				createdCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one record after concurrent bootstrap, got %d", len(repo.users))
	}
	if createdCount != 1 {
		t.Fatalf("expected exactly one caller to report created=true, got %d", createdCount)
	}
}

func TestRoleForDefaultsToUser(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	role, err := svc.RoleFor(ctx, "never-seen")
	if err != nil {
		t.Fatalf("RoleFor: %v", err)
	}
	if role != models.RoleUser {
		t.Fatalf("expected USER for unknown identity, got %q", role)
	}

	adminID := repo.seedAdmin()
	role, err = svc.RoleFor(ctx, adminID)
	if err != nil {
		t.Fatalf("RoleFor: %v", err)
	}
	if role != models.RoleAdmin {
		t.Fatalf("expected ADMIN, got %q", role)
	}
}

func TestSetRoleValidation(t *testing.T) {
	repo := newMemUserRepo()
	adminID := repo.seedAdmin()
	svc := NewUserService(repo)
	ctx := context.Background()

	if _, _, err := svc.EnsureUser(ctx, "uid-2", "Bob", "bob@example.com"); err != nil {
		t.Fatalf("EnsureUser: %v", err)
	}

	if _, err := svc.SetRole(ctx, adminID, "uid-2", "SUPERUSER"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if _, err := svc.SetRole(ctx, adminID, "no-such-user", models.RoleAdmin); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	user, err := svc.SetRole(ctx, adminID, "uid-2", models.RoleAdmin)
	if err != nil {
		t.Fatalf("SetRole: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Fatalf("expected promoted role ADMIN, got %q", user.Role)
	}
}

func TestAdminOperationsRejectNonAdmins(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	if _, _, err := svc.EnsureUser(ctx, "uid-plain", "Plain", "plain@example.com"); err != nil {
		t.Fatalf("EnsureUser: %v", err)
	}

	// A regular user, an unknown caller and an empty caller are all rejected.
	for _, callerID := range []string{"uid-plain", "ghost", ""} {
		if _, err := svc.ListUsers(ctx, callerID); !errors.Is(err, ErrForbidden) {
			t.Errorf("ListUsers(%q): expected ErrForbidden, got %v", callerID, err)
		}
		if _, err := svc.SetRole(ctx, callerID, "uid-plain", models.RoleAdmin); !errors.Is(err, ErrForbidden) {
			t.Errorf("SetRole(%q): expected ErrForbidden, got %v", callerID, err)
		}
		if _, err := svc.DeleteUser(ctx, callerID, "uid-plain"); !errors.Is(err, ErrForbidden) {
			t.Errorf("DeleteUser(%q): expected ErrForbidden, got %v", callerID, err)
		}
	}
}

func TestDeleteUserOutcomes(t *testing.T) {
	repo := newMemUserRepo()
	adminID := repo.seedAdmin()
	svc := NewUserService(repo)
	ctx := context.Background()

	if _, _, err := svc.EnsureUser(ctx, "uid-3", "Carol", "carol@example.com"); err != nil {
		t.Fatalf("EnsureUser: %v", err)
	}

	result, err := svc.DeleteUser(ctx, adminID, "uid-3")
	if err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if result != DeleteResultDeleted {
		t.Fatalf("expected deleted, got %q", result)
	}

	// Deleting a missing user is an outcome, not an error.
	result, err = svc.DeleteUser(ctx, adminID, "uid-3")
	if err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if result != DeleteResultNotFound {
		t.Fatalf("expected not_found, got %q", result)
	}
}
