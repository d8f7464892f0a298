package delete_allocation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a1exks/FCP-AllocationService/internal/calendar"
	"github.com/a1exks/FCP-AllocationService/internal/domain"
	"github.com/a1exks/FCP-AllocationService/internal/grid"
	allocationRepo "github.com/a1exks/FCP-AllocationService/internal/infra/storage/allocation"
)

type fakeRepo struct {
	records map[string][]*domain.Allocation // regime/date -> cells
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string][]*domain.Allocation)}
}

func dayKey(regime domain.Regime, date time.Time) string {
	return string(regime) + "/" + date.Format(domain.DateFormat)
}

func (r *fakeRepo) GetByDate(_ context.Context, regime domain.Regime, date time.Time) ([]*domain.Allocation, error) {
	return r.records[dayKey(regime, date)], nil
}

func (r *fakeRepo) DeleteGroup(_ context.Context, regime domain.Regime, allocationID string) (int64, error) {
	var removed int64
	for key, cells := range r.records {
		kept := cells[:0]
		for _, cell := range cells {
			if key == string(regime)+"/"+cell.DateString() && cell.ID == allocationID {
				removed++
				continue
			}
			kept = append(kept, cell)
		}
		r.records[key] = kept
	}
	if removed == 0 {
		return 0, allocationRepo.ErrAllocationNotFound
	}
	return removed, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeInvalidator struct {
	bumps int
}

func (i *fakeInvalidator) BumpVersion(context.Context) { i.bumps++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDate() time.Time {
	d, _ := time.Parse(domain.DateFormat, "2026-09-05")
	return d
}

// seedJuniorMatch stores a committed A+C junior match: 4 slots from
// 10:00 on two sections, 8 cells total.
func seedJuniorMatch(t *testing.T, repo *fakeRepo) []*domain.Allocation {
	t.Helper()

	timeRun, err := calendar.SlotsSpanned(domain.RegimeMatchDay, "10:00", 4)
	require.NoError(t, err)

	records, err := grid.NewRecordSet(grid.RecordSetParams{
		TeamName: "U9 Reds",
		Date:     testDate(),
		PitchID:  "pitch1",
		Sections: []domain.SectionID{domain.SectionA, domain.SectionC},
		TimeRun:  timeRun,
		IsGroup:  true,
	})
	require.NoError(t, err)

	key := dayKey(domain.RegimeMatchDay, testDate())
	repo.records[key] = append(repo.records[key], records...)
	return records
}

func TestExecute(t *testing.T) {
	t.Run("any member cell removes the whole group", func(t *testing.T) {
		repo := newFakeRepo()
		invalidator := &fakeInvalidator{}
		records := seedJuniorMatch(t, repo)
		uc := NewUseCase(repo, fakeTxManager{}, invalidator, nopLogger{})

		// Address the booking by its last cell on section C
		resp, err := uc.Execute(context.Background(), &Request{
			Regime:  domain.RegimeMatchDay,
			Date:    testDate(),
			Time:    "10:45",
			PitchID: "pitch1",
			Section: domain.SectionC,
		})

		require.NoError(t, err)
		assert.Equal(t, records[0].ID, resp.AllocationID)
		assert.Equal(t, "U9 Reds", resp.TeamName)
		assert.Equal(t, int64(8), resp.CellsRemoved)
		assert.Empty(t, repo.records[dayKey(domain.RegimeMatchDay, testDate())])
		assert.Equal(t, 1, invalidator.bumps)
	})

	t.Run("empty cell reports not found without invalidating reports", func(t *testing.T) {
		repo := newFakeRepo()
		invalidator := &fakeInvalidator{}
		uc := NewUseCase(repo, fakeTxManager{}, invalidator, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			Regime:  domain.RegimeMatchDay,
			Date:    testDate(),
			Time:    "10:00",
			PitchID: "pitch1",
			Section: domain.SectionA,
		})

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, 0, invalidator.bumps)
	})

	t.Run("other bookings of the day survive", func(t *testing.T) {
		repo := newFakeRepo()
		seedJuniorMatch(t, repo)

		// Second, disjoint booking later the same day
		timeRun, err := calendar.SlotsSpanned(domain.RegimeMatchDay, "12:00", 4)
		require.NoError(t, err)
		other, err := grid.NewRecordSet(grid.RecordSetParams{
			TeamName: "U9 Blues",
			Date:     testDate(),
			PitchID:  "pitch1",
			Sections: []domain.SectionID{domain.SectionB, domain.SectionD},
			TimeRun:  timeRun,
			IsGroup:  true,
		})
		require.NoError(t, err)
		key := dayKey(domain.RegimeMatchDay, testDate())
		repo.records[key] = append(repo.records[key], other...)

		uc := NewUseCase(repo, fakeTxManager{}, &fakeInvalidator{}, nopLogger{})
		resp, err := uc.Execute(context.Background(), &Request{
			Regime:  domain.RegimeMatchDay,
			Date:    testDate(),
			Time:    "10:00",
			PitchID: "pitch1",
			Section: domain.SectionA,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(8), resp.CellsRemoved)

		remaining := repo.records[key]
		require.Len(t, remaining, 8)
		for _, cell := range remaining {
			assert.Equal(t, "U9 Blues", cell.TeamName)
		}
	})

	t.Run("invalid section is rejected before touching storage", func(t *testing.T) {
		uc := NewUseCase(newFakeRepo(), fakeTxManager{}, &fakeInvalidator{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			Regime:  domain.RegimeMatchDay,
			Date:    testDate(),
			Time:    "10:00",
			PitchID: "pitch1",
			Section: "Z",
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
