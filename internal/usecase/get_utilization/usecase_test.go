package get_utilization

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a1exks/FCP-AllocationService/internal/calendar"
	"github.com/a1exks/FCP-AllocationService/internal/capacity"
	"github.com/a1exks/FCP-AllocationService/internal/domain"
	"github.com/a1exks/FCP-AllocationService/internal/grid"
	"github.com/a1exks/FCP-AllocationService/pkg/types"
)

type fakeRepo struct {
	records map[domain.Regime][]*domain.Allocation
	calls   int
}

func (r *fakeRepo) GetByDateRange(_ context.Context, regime domain.Regime, _, _ time.Time) ([]*domain.Allocation, error) {
	r.calls++
	return r.records[regime], nil
}

// fakeCache is a working in-memory stand-in for the redis report cache
type fakeCache struct {
	version int64
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Version(context.Context) int64 { return c.version }

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool) {
	payload, ok := c.entries[key]
	return payload, ok
}

func (c *fakeCache) Set(_ context.Context, key string, payload []byte) {
	c.entries[key] = payload
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testPitches() domain.PitchCatalog {
	return domain.PitchCatalog{
		{
			ID:          "pitch1",
			DisplayName: "Main Pitch",
			Sections:    append([]domain.SectionID{}, domain.StandardSections...),
		},
	}
}

func date(s string) time.Time {
	d, _ := time.Parse(domain.DateFormat, s)
	return d
}

func seededRepo(t *testing.T) *fakeRepo {
	t.Helper()

	timeRun, err := calendar.SlotsSpanned(domain.RegimeTraining, types.TimeString("17:00"), 2)
	require.NoError(t, err)
	records, err := grid.NewRecordSet(grid.RecordSetParams{
		TeamName: "U9 Reds",
		Date:     date("2026-09-05"),
		PitchID:  "pitch1",
		Sections: []domain.SectionID{domain.SectionA},
		TimeRun:  timeRun,
	})
	require.NoError(t, err)

	return &fakeRepo{records: map[domain.Regime][]*domain.Allocation{
		domain.RegimeTraining: records,
	}}
}

func TestExecute(t *testing.T) {
	t.Run("report covers every day and pitch of the window", func(t *testing.T) {
		uc := NewUseCase(seededRepo(t), testPitches(), newFakeCache(), nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			StartDate: date("2026-09-04"),
			EndDate:   date("2026-09-06"),
		})

		require.NoError(t, err)
		require.Len(t, resp.Days, 3)

		// The empty neighbours report zero, the booked day does not
		assert.Equal(t, 0, resp.Days[0].Pitches[0].PM.Percent)
		assert.Greater(t, resp.Days[1].Pitches[0].PM.Percent, 0)
		assert.Equal(t, capacity.LightGreen, resp.Days[1].Pitches[0].PM.Light)
		assert.Equal(t, 0, resp.Days[1].Pitches[0].AM.Percent)
		assert.Equal(t, 0, resp.Days[2].Pitches[0].PM.Percent)
	})

	t.Run("second identical request is served from the cache", func(t *testing.T) {
		repo := seededRepo(t)
		cache := newFakeCache()
		uc := NewUseCase(repo, testPitches(), cache, nopLogger{})
		req := &Request{StartDate: date("2026-09-05"), EndDate: date("2026-09-05")}

		first, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		callsAfterFirst := repo.calls

		second, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, callsAfterFirst, repo.calls, "cache hit must not touch storage")
		assert.Equal(t, first, second)
	})

	t.Run("a version bump invalidates the cached report", func(t *testing.T) {
		repo := seededRepo(t)
		cache := newFakeCache()
		uc := NewUseCase(repo, testPitches(), cache, nopLogger{})
		req := &Request{StartDate: date("2026-09-05"), EndDate: date("2026-09-05")}

		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		callsAfterFirst := repo.calls

		cache.version++

		_, err = uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Greater(t, repo.calls, callsAfterFirst)
	})

	t.Run("inverted period is rejected", func(t *testing.T) {
		uc := NewUseCase(seededRepo(t), testPitches(), newFakeCache(), nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			StartDate: date("2026-09-06"),
			EndDate:   date("2026-09-05"),
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("window beyond a quarter is rejected", func(t *testing.T) {
		uc := NewUseCase(seededRepo(t), testPitches(), newFakeCache(), nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			StartDate: date("2026-01-01"),
			EndDate:   date("2026-06-01"),
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
