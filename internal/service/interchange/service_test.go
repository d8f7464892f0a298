package interchange

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a1exks/FCP-AllocationService/internal/calendar"
	"github.com/a1exks/FCP-AllocationService/internal/domain"
	"github.com/a1exks/FCP-AllocationService/internal/grid"
	"github.com/a1exks/FCP-AllocationService/pkg/types"
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

func (r *fakeRepo) GetByDateRange(_ context.Context, regime domain.Regime, startDate, endDate time.Time) ([]*domain.Allocation, error) {
	var out []*domain.Allocation
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		out = append(out, r.records[dayKey(regime, d)]...)
	}
	return out, nil
}

func (r *fakeRepo) CreateBatch(_ context.Context, regime domain.Regime, records []*domain.Allocation) error {
	key := dayKey(regime, records[0].Date)
	r.records[key] = append(r.records[key], records...)
	return nil
}

func (r *fakeRepo) cellCount() int {
	n := 0
	for _, cells := range r.records {
		n += len(cells)
	}
	return n
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

func seed(t *testing.T, repo *fakeRepo, regime domain.Regime, start string, count int, sections ...domain.SectionID) []*domain.Allocation {
	t.Helper()

	timeRun, err := calendar.SlotsSpanned(regime, types.TimeString(start), count)
	require.NoError(t, err)

	records, err := grid.NewRecordSet(grid.RecordSetParams{
		TeamName:  "U9 Reds",
		TeamColor: "#d32f2f",
		Date:      testDate(),
		PitchID:   "pitch1",
		Sections:  sections,
		TimeRun:   timeRun,
	})
	require.NoError(t, err)

	key := dayKey(regime, testDate())
	repo.records[key] = append(repo.records[key], records...)
	return records
}

func TestExportImportRoundTrip(t *testing.T) {
	source := newFakeRepo()
	seed(t, source, domain.RegimeMatchDay, "10:00", 4, domain.SectionA, domain.SectionC)
	seed(t, source, domain.RegimeTraining, "17:30", 2, domain.SectionB)

	exporter := NewService(source, fakeTxManager{}, &fakeInvalidator{}, nopLogger{})
	envelope, err := exporter.Export(context.Background(), testDate(), testDate())
	require.NoError(t, err)

	assert.Equal(t, domain.AppVersion, envelope.AppVersion)
	assert.Len(t, envelope.Allocations, 10) // 8 match cells + 2 training cells

	payload, err := json.Marshal(envelope)
	require.NoError(t, err)

	target := newFakeRepo()
	invalidator := &fakeInvalidator{}
	importer := NewService(target, fakeTxManager{}, invalidator, nopLogger{})

	result, err := importer.Import(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Groups)
	assert.Equal(t, 10, result.Cells)
	assert.Equal(t, 1, invalidator.bumps)

	// The imported grid re-exports to the identical cell map modulo
	// freshly minted allocation ids.
	reExported, err := importer.Export(context.Background(), testDate(), testDate())
	require.NoError(t, err)
	require.Len(t, reExported.Allocations, 10)
	for key, doc := range envelope.Allocations {
		imported, ok := reExported.Allocations[key]
		require.True(t, ok, "cell %s lost in round trip", key)
		assert.Equal(t, doc.Team, imported.Team)
		assert.Equal(t, doc.StartTime, imported.StartTime)
		assert.Equal(t, doc.EndTime, imported.EndTime)
		assert.Equal(t, doc.TotalSlots, imported.TotalSlots)
		assert.Equal(t, doc.GroupSections, imported.GroupSections)
	}
}

func TestImport(t *testing.T) {
	exportFrom := func(t *testing.T, repo *fakeRepo) []byte {
		t.Helper()
		svc := NewService(repo, fakeTxManager{}, &fakeInvalidator{}, nopLogger{})
		envelope, err := svc.Export(context.Background(), testDate(), testDate())
		require.NoError(t, err)
		payload, err := json.Marshal(envelope)
		require.NoError(t, err)
		return payload
	}

	t.Run("bare cell map without the envelope is accepted", func(t *testing.T) {
		source := newFakeRepo()
		seed(t, source, domain.RegimeTraining, "17:00", 1, domain.SectionA)
		var envelope Envelope
		require.NoError(t, json.Unmarshal(exportFrom(t, source), &envelope))
		payload, err := json.Marshal(envelope.Allocations)
		require.NoError(t, err)

		target := newFakeRepo()
		svc := NewService(target, fakeTxManager{}, &fakeInvalidator{}, nopLogger{})

		result, err := svc.Import(context.Background(), payload)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Cells)
	})

	t.Run("conflicting import applies nothing", func(t *testing.T) {
		source := newFakeRepo()
		seed(t, source, domain.RegimeMatchDay, "10:00", 4, domain.SectionA, domain.SectionC)
		payload := exportFrom(t, source)

		// The target already holds a booking overlapping section A at 10:30
		target := newFakeRepo()
		seed(t, target, domain.RegimeMatchDay, "10:30", 2, domain.SectionA)
		before := target.cellCount()
		invalidator := &fakeInvalidator{}
		svc := NewService(target, fakeTxManager{}, invalidator, nopLogger{})

		_, err := svc.Import(context.Background(), payload)

		assert.ErrorIs(t, err, ErrConflict)
		assert.Equal(t, before, target.cellCount())
		assert.Equal(t, 0, invalidator.bumps)
	})

	t.Run("unparseable payload is rejected", func(t *testing.T) {
		svc := NewService(newFakeRepo(), fakeTxManager{}, &fakeInvalidator{}, nopLogger{})

		_, err := svc.Import(context.Background(), []byte("not json"))

		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("cell without an allocation id is rejected", func(t *testing.T) {
		payload, err := json.Marshal(map[string]Document{
			"2026-09-05|10:00|pitch1|A": {
				Regime:     "match",
				Team:       "U9 Reds",
				Date:       "2026-09-05",
				Pitch:      "pitch1",
				Section:    "A",
				StartTime:  "10:00",
				EndTime:    "10:00",
				TotalSlots: 1,
			},
		})
		require.NoError(t, err)

		svc := NewService(newFakeRepo(), fakeTxManager{}, &fakeInvalidator{}, nopLogger{})
		_, err = svc.Import(context.Background(), payload)

		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("cell disagreeing with its key is rejected", func(t *testing.T) {
		payload, err := json.Marshal(map[string]Document{
			"2026-09-05|10:00|pitch1|A": {
				AllocationID: "a1",
				Regime:       "match",
				Team:         "U9 Reds",
				Date:         "2026-09-05",
				Pitch:        "pitch2", // key says pitch1
				Section:      "A",
				StartTime:    "10:00",
				EndTime:      "10:00",
				TotalSlots:   1,
			},
		})
		require.NoError(t, err)

		svc := NewService(newFakeRepo(), fakeTxManager{}, &fakeInvalidator{}, nopLogger{})
		_, err = svc.Import(context.Background(), payload)

		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("empty payload applies nothing", func(t *testing.T) {
		svc := NewService(newFakeRepo(), fakeTxManager{}, &fakeInvalidator{}, nopLogger{})

		result, err := svc.Import(context.Background(), []byte(`{"allocations":{}}`))

		require.NoError(t, err)
		assert.Equal(t, 0, result.Groups)
	})
}
