package users

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryRepositoryCreateAndFind(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	user := &User{Username: "Alice", DisplayName: "Alice", Role: RoleUser}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("find by username: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("expected id %s, got %s", user.ID, got.ID)
	}

	byID, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if byID.Username != "Alice" {
		t.Fatalf("expected username Alice, got %q", byID.Username)
	}
}

func TestMemoryRepositoryRejectsDuplicateUsername(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, &User{Username: "bob"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := repo.Create(ctx, &User{Username: "BOB"})
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
	if repo.Count(ctx) != 1 {
		t.Fatalf("expected 1 user, got %d", repo.Count(ctx))
	}
}

func TestMemoryRepositoryReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	user := &User{Username: "carol", DisplayName: "Carol"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.FindByUsername(ctx, "carol")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	got.DisplayName = "mutated"

	again, err := repo.FindByUsername(ctx, "carol")
	if err != nil {
		t.Fatalf("find again: %v", err)
	}
	if again.DisplayName != "Carol" {
		t.Fatalf("stored user was mutated through the returned copy")
	}
}

func TestMemoryRepositoryUpdateLastLogin(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	user := &User{Username: "dave"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := repo.UpdateLastLogin(ctx, user.ID, at); err != nil {
		t.Fatalf("update last login: %v", err)
	}

	got, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.LastLoginAt == nil || !got.LastLoginAt.Equal(at) {
		t.Fatalf("expected last login %v, got %v", at, got.LastLoginAt)
	}
}
