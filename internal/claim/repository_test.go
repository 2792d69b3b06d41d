package claim

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	wd, _ := os.Getwd()
	var envPath string

	for {
		envPath = filepath.Join(wd, ".env")
		if _, err := os.Stat(envPath); err == nil {
			break
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			envPath = ""
			break
		}
		wd = parent
	}

	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			t.Logf("Warning: Could not load .env file from %s: %v", envPath, err)
		}
	}

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping ledger integration test")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Skipf("Test database unreachable, skipping: %v", err)
	}

	_, err = pool.Exec(context.Background(), `DROP TABLE IF EXISTS claims`)
	if err != nil {
		t.Fatalf("Failed to drop claims table: %v", err)
	}

	return pool
}

func TestRepositoryAppendAndReadAll(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db, testLogger())
	ctx := context.Background()

	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	rows, err := repo.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll on empty ledger failed: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("Expected empty ledger, got %d rows", len(rows))
	}

	engine := NewEngine(PolicyPair, 50)
	_, records := engine.Allocate(rows, Submission{
		Name:        "A",
		Mobile:      "97150000001",
		BillNo:      "B1",
		Amount:      120,
		Nationality: "AE",
	})

	for _, rec := range records {
		if err := repo.Append(ctx, rec); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	rows, err = repo.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	if rows[0].Voucher != "VCHR-00001" || rows[1].Voucher != "VCHR-00002" {
		t.Errorf("Unexpected voucher order: %s, %s", rows[0].Voucher, rows[1].Voucher)
	}
	if rows[0].Name != "A" || rows[0].Mobile != "97150000001" || rows[0].BillNo != "B1" {
		t.Errorf("Row fields not persisted: %+v", rows[0])
	}
	if rows[0].Nationality != "AE" {
		t.Errorf("Optional field not persisted: %+v", rows[0])
	}
	if rows[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not persisted")
	}
}

func TestRepositoryVoucherUniqueConstraint(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db, testLogger())
	ctx := context.Background()

	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	engine := NewEngine(PolicyPair, 50)
	_, records := engine.Allocate(nil, Submission{
		Name: "A", Mobile: "97150000001", BillNo: "B1", Amount: 60,
	})

	if err := repo.Append(ctx, records[0]); err != nil {
		t.Fatalf("First append failed: %v", err)
	}

	// Same voucher identifier again, as two racing writers would produce.
	dup := records[0]
	dup.ID = "5a0d1c6e-0000-4000-8000-000000000001"
	if err := repo.Append(ctx, dup); err == nil {
		t.Error("Expected unique constraint violation on duplicate voucher")
	}
}
