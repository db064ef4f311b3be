package store

import (
	"context"
	"testing"

	"github.com/erazemk/blagajna/internal/db"
	"github.com/erazemk/blagajna/internal/model"
)

func TestCreateAndGetUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, database, " Cashier@Pos.Local ", "hash123", model.RoleCashier)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Email != "cashier@pos.local" {
		t.Errorf("expected normalized email, got %q", user.Email)
	}
	if user.Role != model.RoleCashier {
		t.Errorf("expected role 'cashier', got %q", user.Role)
	}

	got, err := GetUser(ctx, database, user.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Email != "cashier@pos.local" {
		t.Errorf("expected email 'cashier@pos.local', got %q", got.Email)
	}
}

func TestGetUserByEmail(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, "alice@pos.local", "hash", model.RoleAdmin)

	user, err := GetUserByEmail(ctx, database, "ALICE@pos.local")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if user == nil {
		t.Fatal("expected user, got nil")
	}

	missing, err := GetUserByEmail(ctx, database, "bob@pos.local")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing user")
	}
}

func TestDeletedEmailCanBeReused(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	first, _ := CreateUser(ctx, database, "temp@pos.local", "hash", model.RoleCashier)
	DeleteUser(ctx, database, first.ID)

	if got, _ := GetUserByEmail(ctx, database, "temp@pos.local"); got != nil {
		t.Error("expected deleted user to be hidden from login lookup")
	}

	if _, err := CreateUser(ctx, database, "temp@pos.local", "hash", model.RoleCashier); err != nil {
		t.Fatalf("expected email reuse after delete: %v", err)
	}
}

func TestDuplicateEmailRejected(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, "dup@pos.local", "hash", model.RoleCashier)
	if _, err := CreateUser(ctx, database, "dup@pos.local", "hash", model.RoleCashier); err == nil {
		t.Error("expected duplicate email to fail")
	}
}

func TestListUsersAndCountAdmins(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, "a@pos.local", "hash", model.RoleAdmin)
	CreateUser(ctx, database, "b@pos.local", "hash", model.RoleManager)

	users, err := ListUsers(ctx, database)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}

	admins, err := CountAdmins(ctx, database)
	if err != nil {
		t.Fatalf("CountAdmins: %v", err)
	}
	if admins != 1 {
		t.Errorf("expected 1 admin, got %d", admins)
	}
}

func TestUpdateUserRoleAndPassword(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "pw@pos.local", "oldhash", model.RoleCashier)
	UpdateUserPassword(ctx, database, user.ID, "newhash")
	UpdateUserRole(ctx, database, user.ID, model.RoleManager)

	got, _ := GetUser(ctx, database, user.ID)
	if got.PasswordHash != "newhash" {
		t.Errorf("expected password hash 'newhash', got %q", got.PasswordHash)
	}
	if got.Role != model.RoleManager {
		t.Errorf("expected role 'manager', got %q", got.Role)
	}
}
