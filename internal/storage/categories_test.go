package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dompet-app/dompet/internal/common"
	"github.com/dompet-app/dompet/internal/model"
	"github.com/dompet-app/dompet/internal/testutil"
)

func januaryCategories() []model.Category {
	return []model.Category{
		{Name: "Makanan", Kind: model.CategoryExpense, BudgetLimit: 1_000_000, Color: "#ef4444", Month: time.January, Year: 2025},
		{Name: "Transportasi", Kind: model.CategoryExpense, BudgetLimit: 400_000, Month: time.January, Year: 2025},
		{Name: "Gaji", Kind: model.CategoryIncome, Month: time.January, Year: 2025},
	}
}

func TestCreateAndGetCategories(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	testutil.SeedCategories(t, store, januaryCategories()...)

	got, err := store.GetCategoriesByPeriod(ctx, model.NewPeriod(time.January, 2025))
	if err != nil {
		t.Fatalf("GetCategoriesByPeriod() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d categories, want 3", len(got))
	}
	if got[0].Name != "Gaji" {
		t.Errorf("expected name ordering, got %q first", got[0].Name)
	}

	other, err := store.GetCategoriesByPeriod(ctx, model.NewPeriod(time.February, 2025))
	if err != nil {
		t.Fatalf("GetCategoriesByPeriod() error = %v", err)
	}
	if len(other) != 0 {
		t.Errorf("February should be empty, got %d categories", len(other))
	}
}

func TestCreateCategory_DuplicateNameInPeriod(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	cat := model.Category{Name: "Makanan", Kind: model.CategoryExpense, Month: time.January, Year: 2025}
	if _, err := store.CreateCategory(ctx, &cat); err != nil {
		t.Fatalf("CreateCategory() error = %v", err)
	}

	if _, err := store.CreateCategory(ctx, &cat); !errors.Is(err, common.ErrDuplicateEntry) {
		t.Errorf("duplicate create: error = %v, want ErrDuplicateEntry", err)
	}

	// Same name in another period is a distinct row.
	next := cat
	next.Month = time.February
	if _, err := store.CreateCategory(ctx, &next); err != nil {
		t.Errorf("same name, next period: error = %v", err)
	}
}

func TestCreateCategory_Validation(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	tests := []struct {
		name string
		cat  model.Category
	}{
		{"missing name", model.Category{Kind: model.CategoryExpense, Month: time.January, Year: 2025}},
		{"unknown kind", model.Category{Name: "x", Kind: "savings", Month: time.January, Year: 2025}},
		{"negative budget", model.Category{Name: "x", Kind: model.CategoryExpense, BudgetLimit: -1, Month: time.January, Year: 2025}},
		{"zero year", model.Category{Name: "x", Kind: model.CategoryExpense, Month: time.January}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.CreateCategory(ctx, &tt.cat); err == nil {
				t.Error("CreateCategory() expected error, got nil")
			}
		})
	}
}

func TestGetCategoryByName(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	testutil.SeedCategories(t, store, januaryCategories()...)
	jan := model.NewPeriod(time.January, 2025)

	got, err := store.GetCategoryByName(ctx, "Makanan", jan)
	if err != nil {
		t.Fatalf("GetCategoryByName() error = %v", err)
	}
	if got == nil || got.BudgetLimit != 1_000_000 {
		t.Errorf("GetCategoryByName() = %+v, want Makanan with its budget", got)
	}

	// Lookup is exact and case-sensitive.
	missing, err := store.GetCategoryByName(ctx, "makanan", jan)
	if err != nil {
		t.Fatalf("GetCategoryByName() error = %v", err)
	}
	if missing != nil {
		t.Errorf("lowercase lookup should miss, got %+v", missing)
	}
}

func TestUpdateCategory(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	created, err := store.CreateCategory(ctx, &model.Category{
		Name: "Makanan", Kind: model.CategoryExpense, BudgetLimit: 1_000_000,
		Month: time.January, Year: 2025,
	})
	if err != nil {
		t.Fatalf("CreateCategory() error = %v", err)
	}

	created.BudgetLimit = 1_500_000
	created.Color = "#22c55e"
	if err := store.UpdateCategory(ctx, created); err != nil {
		t.Fatalf("UpdateCategory() error = %v", err)
	}

	got, err := store.GetCategoryByName(ctx, "Makanan", model.NewPeriod(time.January, 2025))
	if err != nil {
		t.Fatalf("GetCategoryByName() error = %v", err)
	}
	if got.BudgetLimit != 1_500_000 || got.Color != "#22c55e" {
		t.Errorf("update not persisted: %+v", got)
	}

	ghost := *created
	ghost.ID = 9999
	if err := store.UpdateCategory(ctx, &ghost); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("updating missing category: error = %v, want ErrNotFound", err)
	}
}

func TestDeleteCategory(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	created, err := store.CreateCategory(ctx, &model.Category{
		Name: "Makanan", Kind: model.CategoryExpense, Month: time.January, Year: 2025,
	})
	if err != nil {
		t.Fatalf("CreateCategory() error = %v", err)
	}

	if err := store.DeleteCategory(ctx, created.ID); err != nil {
		t.Fatalf("DeleteCategory() error = %v", err)
	}
	if err := store.DeleteCategory(ctx, created.ID); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("second delete: error = %v, want ErrNotFound", err)
	}
}

func TestCopyCategories(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	testutil.SeedCategories(t, store, januaryCategories()...)
	jan := model.NewPeriod(time.January, 2025)
	feb := model.NewPeriod(time.February, 2025)

	// February already has its own Makanan with a different budget; the
	// copy must skip it.
	testutil.SeedCategories(t, store, model.Category{
		Name: "Makanan", Kind: model.CategoryExpense, BudgetLimit: 2_000_000,
		Month: time.February, Year: 2025,
	})

	copied, err := store.CopyCategories(ctx, jan, feb)
	if err != nil {
		t.Fatalf("CopyCategories() error = %v", err)
	}
	if copied != 2 {
		t.Errorf("copied %d categories, want 2", copied)
	}

	got, err := store.GetCategoryByName(ctx, "Makanan", feb)
	if err != nil {
		t.Fatalf("GetCategoryByName() error = %v", err)
	}
	if got.BudgetLimit != 2_000_000 {
		t.Errorf("existing destination category was overwritten: %+v", got)
	}

	febCats, err := store.GetCategoriesByPeriod(ctx, feb)
	if err != nil {
		t.Fatalf("GetCategoriesByPeriod() error = %v", err)
	}
	if len(febCats) != 3 {
		t.Errorf("February has %d categories, want 3", len(febCats))
	}

	// Copies are independent rows; January is untouched.
	janCats, err := store.GetCategoriesByPeriod(ctx, jan)
	if err != nil {
		t.Fatalf("GetCategoriesByPeriod() error = %v", err)
	}
	if len(janCats) != 3 {
		t.Errorf("January has %d categories, want 3", len(janCats))
	}
}

func TestCopyCategories_SamePeriod(t *testing.T) {
	store := testutil.SetupTestDB(t)
	jan := model.NewPeriod(time.January, 2025)

	if _, err := store.CopyCategories(context.Background(), jan, jan); err == nil {
		t.Error("expected error copying a period onto itself, got nil")
	}
}
