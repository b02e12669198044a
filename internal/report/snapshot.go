package report

import (
	"context"
	"fmt"
	"sync"

	"github.com/dompet-app/dompet/internal/model"
)

// recentCount is how many of the period's transactions a snapshot
// carries for display.
const recentCount = 5

// Reader is the read surface the snapshot service needs from storage.
type Reader interface {
	GetTransactions(ctx context.Context) ([]model.Transaction, error)
	GetCategoriesByPeriod(ctx context.Context, p model.Period) ([]model.Category, error)
	GetTargets(ctx context.Context) ([]model.Target, error)
}

// DashboardSnapshot is the full view model for one period: aggregates,
// budget consumption per category, and progress for every target
// active in the period. It is plain data; formatting belongs to the
// presentation layer.
type DashboardSnapshot struct {
	Period       model.Period
	Summary      Summary
	TotalSavings int64
	TotalBudget  int64
	Recent       []model.Transaction
	Budgets      []BudgetReport
	Targets      []Progress
}

// Service assembles snapshots from storage reads. The aggregation
// itself stays pure; the service only owns the fetch step.
type Service struct {
	store Reader
	opts  Options
}

// NewService creates a snapshot service over the given storage reader.
func NewService(store Reader, opts Options) *Service {
	return &Service{store: store, opts: opts}
}

// Snapshot fetches the period's collections and computes the full view
// model. On a failed read it returns a zeroed snapshot for the period
// together with the error, so callers can render empty aggregates
// instead of crashing on partial data.
func (s *Service) Snapshot(ctx context.Context, p model.Period) (*DashboardSnapshot, error) {
	snap := &DashboardSnapshot{Period: p}

	txns, err := s.store.GetTransactions(ctx)
	if err != nil {
		return snap, fmt.Errorf("failed to read transactions: %w", err)
	}
	categories, err := s.store.GetCategoriesByPeriod(ctx, p)
	if err != nil {
		return snap, fmt.Errorf("failed to read categories: %w", err)
	}
	targets, err := s.store.GetTargets(ctx)
	if err != nil {
		return snap, fmt.Errorf("failed to read targets: %w", err)
	}

	snap.Summary = Aggregate(txns, p)
	snap.TotalSavings = TotalSavings(txns)
	snap.Recent = RecentTransactions(txns, p, recentCount)
	snap.TotalBudget = TotalBudget(categories)
	for _, cat := range categories {
		if cat.Kind != model.CategoryExpense {
			continue
		}
		spending := SpendingByCategory(txns, p, cat.Name)
		snap.Budgets = append(snap.Budgets, EvaluateBudget(cat, spending))
	}
	for _, t := range ActiveTargets(targets, p) {
		snap.Targets = append(snap.Targets, ComputeProgress(t, txns, p, s.opts))
	}
	return snap, nil
}

// Tracker is a last-write-wins result slot for snapshot computations.
// Each computation is tagged with the period it was requested for;
// completions for any other period are discarded, so a rapid period
// change can never surface a stale snapshot.
type Tracker struct {
	mu        sync.Mutex
	requested model.Period
	latest    *DashboardSnapshot
	pending   bool
}

// Request records the period the next snapshot is wanted for and
// invalidates any in-flight computation for another period.
func (t *Tracker) Request(p model.Period) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.requested = p
	t.pending = true
}

// Offer presents a completed snapshot. It is accepted only if it was
// computed for the currently requested period; out-of-order
// completions return false and are dropped.
func (t *Tracker) Offer(snap *DashboardSnapshot) bool {
	if snap == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.pending || snap.Period != t.requested {
		return false
	}
	t.latest = snap
	t.pending = false
	return true
}

// Latest returns the most recently accepted snapshot, if any.
func (t *Tracker) Latest() (*DashboardSnapshot, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.latest == nil {
		return nil, false
	}
	return t.latest, true
}
