package allocation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/a1exks/FCP-AllocationService/internal/domain"
	"github.com/a1exks/FCP-AllocationService/pkg/dbmetrics"
	"github.com/a1exks/FCP-AllocationService/pkg/psqlbuilder"
)

// Две логические коллекции: тренировочная сетка и сетка матчевых дней.
// Хранятся в отдельных таблицах и никогда не смешиваются при проверке
// конфликтов; вместе их читает только отчет загрузки.
const (
	trainingTable = "training_allocations"
	matchDayTable = "match_allocations"
)

// uniqueViolation код PostgreSQL для нарушения уникального индекса
const uniqueViolation = pq.ErrorCode("23505")

var allocationColumns = []string{
	"allocation_id",
	"team_name",
	"team_color",
	"alloc_date",
	"pitch_id",
	"section",
	"time_label",
	"start_time",
	"end_time",
	"total_slots",
	"slot_index",
	"is_multi_slot",
	"is_part_of_group",
	"group_sections",
	"created_at",
	"updated_at",
}

// Repository репозиторий документов бронирований (одна строка = одна ячейка сетки)
type Repository struct {
	db DBExecutor
}

// NewRepository создает репозиторий бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func tableFor(regime domain.Regime) (string, error) {
	switch regime {
	case domain.RegimeTraining:
		return trainingTable, nil
	case domain.RegimeMatchDay:
		return matchDayTable, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRegime, regime)
	}
}

// GetByDate читает все ячейки одной даты для регидрации сетки.
// Внутри транзакции строки блокируются FOR UPDATE: проверка конфликтов
// и последующая запись видят одно и то же состояние дня.
func (r *Repository) GetByDate(ctx context.Context, regime domain.Regime, date time.Time) ([]*domain.Allocation, error) {
	table, err := tableFor(regime)
	if err != nil {
		return nil, err
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(allocationColumns...).
		From(table).
		Where(squirrel.Eq{"alloc_date": dateOnly(date)}).
		OrderBy("time_label ASC", "pitch_id ASC", "section ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAllocations(rows)
}

// GetByDateRange читает все ячейки за период (включительно) для отчета
// загрузки и экспорта
func (r *Repository) GetByDateRange(ctx context.Context, regime domain.Regime, startDate, endDate time.Time) ([]*domain.Allocation, error) {
	table, err := tableFor(regime)
	if err != nil {
		return nil, err
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(allocationColumns...).
		From(table).
		Where(squirrel.GtOrEq{"alloc_date": dateOnly(startDate)}).
		Where(squirrel.LtOrEq{"alloc_date": dateOnly(endDate)}).
		OrderBy("alloc_date ASC", "time_label ASC", "pitch_id ASC", "section ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAllocations(rows)
}

// CreateBatch записывает полный набор ячеек одного бронирования одним
// multi-row INSERT. Вызывается только внутри транзакции use case, так
// что либо фиксируются все ячейки набора, либо ни одна. Нарушение
// уникальности ячейки возвращается как ErrCellTaken.
func (r *Repository) CreateBatch(ctx context.Context, regime domain.Regime, records []*domain.Allocation) error {
	if len(records) == 0 {
		return nil
	}
	table, err := tableFor(regime)
	if err != nil {
		return err
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert(table).Columns(
		"allocation_id",
		"team_name",
		"team_color",
		"alloc_date",
		"pitch_id",
		"section",
		"time_label",
		"start_time",
		"end_time",
		"total_slots",
		"slot_index",
		"is_multi_slot",
		"is_part_of_group",
		"group_sections",
	)

	step := stepMinutes(regime)
	for _, rec := range records {
		timeLabel, err := rec.TimeLabel(step)
		if err != nil {
			return fmt.Errorf("%w: CreateBatch - cell time label: %v", ErrBuildQuery, err)
		}
		insertBuilder = insertBuilder.Values(
			rec.ID,
			rec.TeamName,
			rec.TeamColor,
			dateOnly(rec.Date),
			rec.PitchID,
			string(rec.Section),
			timeLabel,
			rec.StartTime,
			rec.EndTime,
			rec.TotalSlots,
			rec.SlotIndex,
			rec.IsMultiSlot,
			rec.IsPartOfGroup,
			joinSections(rec.GroupSections),
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %v", ErrCellTaken, err)
		}
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// DeleteGroup удаляет все ячейки логического бронирования по его
// идентификатору одним запросом
func (r *Repository) DeleteGroup(ctx context.Context, regime domain.Regime, allocationID string) (int64, error) {
	table, err := tableFor(regime)
	if err != nil {
		return 0, err
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"allocation_id": allocationID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteGroup - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteGroup - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteGroup - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return 0, ErrAllocationNotFound
	}
	return rowsAffected, nil
}

// DeleteByDate удаляет все ячейки одной даты (массовый сброс дня)
func (r *Repository) DeleteByDate(ctx context.Context, regime domain.Regime, date time.Time) (int64, error) {
	table, err := tableFor(regime)
	if err != nil {
		return 0, err
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"alloc_date": dateOnly(date)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDate - get rows affected: %v", ErrExecQuery, err)
	}
	return rowsAffected, nil
}

// scanAllocations сканирует результаты запроса в слайс записей
func (r *Repository) scanAllocations(rows *sql.Rows) ([]*domain.Allocation, error) {
	allocations := make([]*domain.Allocation, 0)

	for rows.Next() {
		var (
			alloc         domain.Allocation
			section       string
			timeLabel     string // избыточная колонка; ячейка восстанавливается из start_time и slot_index
			groupSections sql.NullString
			createdAt     sql.NullTime
			updatedAt     sql.NullTime
		)

		err := rows.Scan(
			&alloc.ID,
			&alloc.TeamName,
			&alloc.TeamColor,
			&alloc.Date,
			&alloc.PitchID,
			&section,
			&timeLabel,
			&alloc.StartTime,
			&alloc.EndTime,
			&alloc.TotalSlots,
			&alloc.SlotIndex,
			&alloc.IsMultiSlot,
			&alloc.IsPartOfGroup,
			&groupSections,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAllocations - scan row: %v", ErrScanRow, err)
		}

		alloc.Section = domain.SectionID(section)
		if groupSections.Valid {
			alloc.GroupSections = splitSections(groupSections.String)
		}
		alloc.CreatedAt = createdAt.Time
		alloc.UpdatedAt = updatedAt.Time

		allocations = append(allocations, &alloc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAllocations - rows error: %v", ErrScanRow, err)
	}
	return allocations, nil
}

func stepMinutes(regime domain.Regime) int {
	if regime == domain.RegimeTraining {
		return domain.TrainingStepMinutes
	}
	return domain.MatchDayStepMinutes
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func joinSections(sections []domain.SectionID) interface{} {
	if len(sections) == 0 {
		return nil
	}
	parts := make([]string, len(sections))
	for i, s := range sections {
		parts[i] = string(s)
	}
	return strings.Join(parts, ",")
}

func splitSections(s string) []domain.SectionID {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]domain.SectionID, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, domain.SectionID(p))
		}
	}
	return out
}
