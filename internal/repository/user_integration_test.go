//go:build integration

package repository

import (
	"errors"
	"testing"

	"github.com/wendelDmesquita/minhas-financas-api/internal/model"
)

func TestIntegrationUserRepository_SaveAndFind(t *testing.T) {
	ctx, repo := newTestEnv(t)

	saved, err := repo.SaveUser(ctx, &model.User{
		Name:     "Wendel",
		Email:    "wendel@email.com",
		Password: "senha123",
	})
	if err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}
	if saved.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if saved.CreatedAt.IsZero() {
		t.Error("expected created_at populated")
	}

	byEmail, err := repo.FindUserByEmail(ctx, "wendel@email.com")
	if err != nil {
		t.Fatalf("FindUserByEmail failed: %v", err)
	}
	if byEmail == nil || byEmail.ID != saved.ID {
		t.Fatalf("unexpected user by email: %+v", byEmail)
	}
	if byEmail.Password != "senha123" {
		t.Errorf("password mismatch: got %q", byEmail.Password)
	}

	byID, err := repo.FindUserByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("FindUserByID failed: %v", err)
	}
	if byID == nil || byID.Email != "wendel@email.com" {
		t.Fatalf("unexpected user by id: %+v", byID)
	}
}

func TestIntegrationUserRepository_Find_Absent(t *testing.T) {
	ctx, repo := newTestEnv(t)

	byEmail, err := repo.FindUserByEmail(ctx, "ninguem@email.com")
	if err != nil {
		t.Fatalf("FindUserByEmail failed: %v", err)
	}
	if byEmail != nil {
		t.Errorf("expected nil for absent email, got %+v", byEmail)
	}

	byID, err := repo.FindUserByID(ctx, 9999)
	if err != nil {
		t.Fatalf("FindUserByID failed: %v", err)
	}
	if byID != nil {
		t.Errorf("expected nil for absent id, got %+v", byID)
	}
}

func TestIntegrationUserRepository_DuplicateEmail(t *testing.T) {
	ctx, repo := newTestEnv(t)

	user := &model.User{Name: "Wendel", Email: "wendel@email.com", Password: "senha123"}
	if _, err := repo.SaveUser(ctx, user); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}

	_, err := repo.SaveUser(ctx, &model.User{Name: "Outro", Email: "wendel@email.com", Password: "outra"})
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("expected ErrEmailExists, got %v", err)
	}
}

func TestIntegrationUserRepository_ExistsByEmail(t *testing.T) {
	ctx, repo := newTestEnv(t)

	exists, err := repo.ExistsUserByEmail(ctx, "wendel@email.com")
	if err != nil {
		t.Fatalf("ExistsUserByEmail failed: %v", err)
	}
	if exists {
		t.Error("expected email absent")
	}

	if _, err := repo.SaveUser(ctx, &model.User{Name: "Wendel", Email: "wendel@email.com", Password: "senha123"}); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}

	exists, err = repo.ExistsUserByEmail(ctx, "wendel@email.com")
	if err != nil {
		t.Fatalf("ExistsUserByEmail failed: %v", err)
	}
	if !exists {
		t.Error("expected email present")
	}
}
