package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dompet-app/dompet/internal/common"
	"github.com/dompet-app/dompet/internal/model"
	"github.com/dompet-app/dompet/internal/service"
	"github.com/dompet-app/dompet/internal/storage"
	"github.com/dompet-app/dompet/internal/testutil"
)

func TestSaveAndGetTransactions(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	txns := []model.Transaction{
		model.NewIncome(5_000_000, "Gaji", "Gaji", testutil.Date(2025, time.January, 1)),
		model.NewExpense(300_000, "Belanja", "Makanan", testutil.Date(2025, time.January, 8)),
		model.NewTransfer(500_000, "Nabung", 1, testutil.Date(2025, time.January, 20)),
	}
	testutil.SeedTransactions(t, store, txns...)

	got, err := store.GetTransactions(ctx)
	if err != nil {
		t.Fatalf("GetTransactions() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("GetTransactions() returned %d transactions, want 3", len(got))
	}
	if got[0].Description != "Gaji" {
		t.Errorf("expected oldest first, got %q", got[0].Description)
	}
	if got[2].Kind != model.KindTransfer || got[2].TargetID != 1 {
		t.Errorf("transfer round-trip lost kind or target: %+v", got[2])
	}
	if !got[0].Date.Equal(testutil.Date(2025, time.January, 1)) {
		t.Errorf("date round-trip mismatch: got %v", got[0].Date)
	}
}

func TestSaveTransactions_Validation(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	noID := model.NewIncome(1000, "x", "y", testutil.Date(2025, time.March, 1))
	noID.ID = ""

	orphanTransfer := model.NewTransfer(1000, "x", 1, testutil.Date(2025, time.March, 1))
	orphanTransfer.TargetID = 0

	taggedExpense := model.NewExpense(1000, "x", "y", testutil.Date(2025, time.March, 1))
	taggedExpense.TargetID = 7

	tests := []struct {
		name string
		txns []model.Transaction
	}{
		{"nil slice", nil},
		{"empty slice", []model.Transaction{}},
		{"missing id", []model.Transaction{noID}},
		{"transfer without target", []model.Transaction{orphanTransfer}},
		{"target on non-transfer", []model.Transaction{taggedExpense}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := store.SaveTransactions(ctx, tt.txns); err == nil {
				t.Error("SaveTransactions() expected error, got nil")
			}
		})
	}
}

func TestGetTransactionsByPeriod(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	testutil.SeedTransactions(t, store,
		model.NewExpense(100, "last of jan", "x", testutil.Date(2025, time.January, 31)),
		model.NewExpense(200, "first of feb", "x", testutil.Date(2025, time.February, 1)),
		model.NewExpense(300, "last of feb", "x", testutil.Date(2025, time.February, 28)),
		model.NewExpense(400, "first of mar", "x", testutil.Date(2025, time.March, 1)),
	)

	got, err := store.GetTransactionsByPeriod(ctx, model.NewPeriod(time.February, 2025))
	if err != nil {
		t.Fatalf("GetTransactionsByPeriod() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d transactions, want 2", len(got))
	}
	if got[0].Description != "first of feb" || got[1].Description != "last of feb" {
		t.Errorf("period boundary leak: %q, %q", got[0].Description, got[1].Description)
	}
}

func TestGetTransactionsByPeriod_InvalidPeriod(t *testing.T) {
	store := testutil.SetupTestDB(t)

	if _, err := store.GetTransactionsByPeriod(context.Background(), model.Period{Month: 13, Year: 2025}); err == nil {
		t.Error("expected error for month 13, got nil")
	}
}

func TestGetTransactionsByFilter(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	testutil.SeedTransactions(t, store,
		model.NewIncome(1000, "a", "x", testutil.Date(2025, time.January, 5)),
		model.NewExpense(2000, "b", "x", testutil.Date(2025, time.January, 10)),
		model.NewExpense(3000, "c", "x", testutil.Date(2025, time.February, 5)),
	)

	start := testutil.Date(2025, time.January, 6)
	tests := []struct {
		name   string
		filter service.TransactionFilter
		want   int
	}{
		{"all", service.TransactionFilter{}, 3},
		{"by kind", service.TransactionFilter{Kind: model.KindExpense}, 2},
		{"by start date", service.TransactionFilter{StartDate: &start}, 2},
		{"with limit", service.TransactionFilter{Limit: 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.GetTransactionsByFilter(ctx, tt.filter)
			if err != nil {
				t.Fatalf("GetTransactionsByFilter() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d transactions, want %d", len(got), tt.want)
			}
		})
	}

	if _, err := store.GetTransactionsByFilter(ctx, service.TransactionFilter{Kind: "loan"}); err == nil {
		t.Error("expected error for unknown kind, got nil")
	}
}

func TestDeleteTransaction(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	txn := model.NewExpense(1000, "hapus aku", "x", testutil.Date(2025, time.January, 5))
	testutil.SeedTransactions(t, store, txn)

	if err := store.DeleteTransaction(ctx, txn.ID); err != nil {
		t.Fatalf("DeleteTransaction() error = %v", err)
	}

	if _, err := store.GetTransactionByID(ctx, txn.ID); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("GetTransactionByID() after delete: error = %v, want ErrNotFound", err)
	}
	if err := store.DeleteTransaction(ctx, txn.ID); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("second delete: error = %v, want ErrNotFound", err)
	}
}

func TestGetTransactionByID(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	txn := model.NewIncome(42_000, "THR", "Gaji", testutil.Date(2025, time.April, 1))
	testutil.SeedTransactions(t, store, txn)

	got, err := store.GetTransactionByID(ctx, txn.ID)
	if err != nil {
		t.Fatalf("GetTransactionByID() error = %v", err)
	}
	if got.Amount != 42_000 || got.Description != "THR" {
		t.Errorf("round-trip mismatch: %+v", got)
	}

	if _, err := store.GetTransactionByID(ctx, "no-such-id"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("unknown id: error = %v, want ErrNotFound", err)
	}
}

// Compile-time check that SQLiteStorage satisfies the full service
// contract.
var _ service.Storage = (*storage.SQLiteStorage)(nil)
