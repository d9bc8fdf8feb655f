package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"dashboard/internal/model"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type txCtxKey struct{}

type fakeTxManager struct{ calls int }

func (m *fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	m.calls++
	return fn(context.WithValue(ctx, txCtxKey{}, true))
}

type fakeSourceRepo struct {
	steps    []string
	monthEnd []model.MonthEndRecord
	policies []model.PolicyMaster
	failOn   string
}

func (r *fakeSourceRepo) record(ctx context.Context, step string) error {
	if ctx.Value(txCtxKey{}) == nil {
		return errors.New(step + " outside transaction")
	}
	r.steps = append(r.steps, step)
	if r.failOn == step {
		return errors.New(step + " failed")
	}
	return nil
}

func (r *fakeSourceRepo) DeleteAll(ctx context.Context) error {
	return r.record(ctx, "delete")
}

func (r *fakeSourceRepo) CreateMonthEnd(ctx context.Context, records []model.MonthEndRecord) error {
	r.monthEnd = records
	return r.record(ctx, "month_end")
}

func (r *fakeSourceRepo) CreatePolicies(ctx context.Context, policies []model.PolicyMaster) error {
	r.policies = policies
	return r.record(ctx, "policies")
}

func newTestSeedService(repo *fakeSourceRepo, tx *fakeTxManager) *seedService {
	svc := NewSeedService(repo, tx).(*seedService)
	svc.now = func() time.Time { return time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC) }
	svc.rng = rand.New(rand.NewPCG(1, 2))
	return svc
}

func TestSeed_ReplacesTablesInOneTransaction(t *testing.T) {
	repo := &fakeSourceRepo{}
	tx := &fakeTxManager{}

	summary, err := newTestSeedService(repo, tx).Seed(context.Background(), 4)
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, []string{"delete", "month_end", "policies"}, repo.steps)
	assert.Equal(t, 4, summary.Months)
	assert.Equal(t, len(repo.monthEnd), summary.MonthEndRecords)
	assert.Equal(t, len(repo.policies), summary.Policies)
}

func TestSeed_StopsOnFailure(t *testing.T) {
	repo := &fakeSourceRepo{failOn: "month_end"}

	_, err := newTestSeedService(repo, &fakeTxManager{}).Seed(context.Background(), 2)
	require.Error(t, err)
	assert.Equal(t, []string{"delete", "month_end"}, repo.steps)
}

func TestSeed_RejectsNonPositiveMonths(t *testing.T) {
	_, err := newTestSeedService(&fakeSourceRepo{}, &fakeTxManager{}).Seed(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestGenerateSeed(t *testing.T) {
	now := time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)
	data := GenerateSeed(3, now, rand.New(rand.NewPCG(1, 2)))

	require.Len(t, data.MonthEnd, 3*len(seedCategories))

	runDates := lo.Uniq(lo.Map(data.MonthEnd, func(r model.MonthEndRecord, _ int) string {
		return r.RunDate.Format(time.DateOnly)
	}))
	assert.Equal(t, []string{"2024-04-30", "2024-05-31", "2024-06-30"}, runDates)

	var lapses int64
	for _, r := range data.MonthEnd {
		assert.GreaterOrEqual(t, r.Sales, int64(20))
		lapses += r.Lapses
	}

	lapsed := lo.Filter(data.Policies, func(p model.PolicyMaster, _ int) bool {
		return p.Status != model.PolicyStatusActive
	})
	assert.Len(t, lapsed, int(lapses))
	for _, p := range lapsed {
		require.NotNil(t, p.StatusDate)
		assert.Contains(t, []string{model.PolicyStatusAutoLapse, model.PolicyStatusCancelled}, p.Status)
	}

	numbers := lo.Map(data.Policies, func(p model.PolicyMaster, _ int) string { return p.PolicyNumber })
	assert.Len(t, lo.Uniq(numbers), len(numbers))
}

func TestGenerateSeed_Deterministic(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	a := GenerateSeed(2, now, rand.New(rand.NewPCG(7, 7)))
	b := GenerateSeed(2, now, rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, a, b)
}
