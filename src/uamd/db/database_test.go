package db

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func setupTestDatabase(t *testing.T) *Database {
	t.Helper()

	database, err := New(Config{PersistPath: "", LoadOnStart: false})
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	t.Cleanup(func() { database.Shutdown() })

	return database
}

func TestSchemaVisibleAcrossPooledConnections(t *testing.T) {
	database := setupTestDatabase(t)
	ctx := context.Background()

	// Write through an explicitly checked-out connection, then release it
	// and read back through the pool. Both must hit the same store.
	conn, err := database.DB().Conn(ctx)
	if err != nil {
		t.Fatalf("failed to get connection: %v", err)
	}
	_, err = conn.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, admin_id)
		VALUES ('u1', 'alice', 'alice@example.com', 'hash', 'ADMIN', 'u1')
	`)
	conn.Close()
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	var count int
	if err := database.DB().QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 user, got %d", count)
	}
}

func TestConcurrentAccess(t *testing.T) {
	database := setupTestDatabase(t)

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			id := fmt.Sprintf("user-%d", n)
			_, err := database.DB().Exec(`
				INSERT INTO users (id, name, email, password_hash, role, admin_id)
				VALUES (?, ?, ?, 'hash', 'USER', 'admin-1')
			`, id, id, id+"@example.com")
			if err != nil {
				errs <- fmt.Errorf("worker %d insert: %w", n, err)
				return
			}

			var count int
			if err := database.DB().QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
				errs <- fmt.Errorf("worker %d count: %w", n, err)
			}
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}

	var count int
	if err := database.DB().QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		t.Fatalf("final count failed: %v", err)
	}
	if count != workers {
		t.Errorf("expected %d users, got %d", workers, count)
	}
}

func TestDatabaseInstancesIsolated(t *testing.T) {
	first := setupTestDatabase(t)
	second := setupTestDatabase(t)

	_, err := first.DB().Exec(`
		INSERT INTO users (id, name, email, password_hash, role, admin_id)
		VALUES ('u1', 'alice', 'alice@example.com', 'hash', 'ADMIN', 'u1')
	`)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	var count int
	if err := second.DB().QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected second instance to be empty, got %d users", count)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	database := setupTestDatabase(t)

	if err := database.SetSetting("greeting", "hello"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := database.SetSetting("greeting", "hola"); err != nil {
		t.Fatalf("SetSetting update failed: %v", err)
	}

	value, err := database.GetSetting("greeting")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if value != "hola" {
		t.Errorf("expected 'hola', got %q", value)
	}

	all, err := database.GetAllSettings()
	if err != nil {
		t.Fatalf("GetAllSettings failed: %v", err)
	}
	if len(all) != 1 || all["greeting"] != "hola" {
		t.Errorf("unexpected settings map: %v", all)
	}
}
