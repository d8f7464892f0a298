// Package grid владеет разреженной картой ячеек одного дня одного режима:
// вычисление ячеек-кандидатов, обнаружение конфликтов, атомарная укладка
// и снятие группы записей. Снимок чисто in-memory; транзакционность
// обеспечивает слой use case поверх хранилища.
package grid

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/a1exks/FCP-AllocationService/internal/calendar"
	"github.com/a1exks/FCP-AllocationService/internal/domain"
	"github.com/a1exks/FCP-AllocationService/pkg/types"
)

// Grid снимок сетки одного (режим, дата). Ключ ячейки -> запись бронирования.
type Grid struct {
	regime domain.Regime
	date   string
	cells  map[domain.CellKey]*domain.Allocation
}

// New создает пустую сетку для даты
func New(regime domain.Regime, date string) *Grid {
	return &Grid{
		regime: regime,
		date:   date,
		cells:  make(map[domain.CellKey]*domain.Allocation),
	}
}

// Rehydrate восстанавливает сетку из документов хранилища за одну дату.
// Две записи на одну ячейку означают поврежденное хранилище.
func Rehydrate(regime domain.Regime, date string, allocations []*domain.Allocation) (*Grid, error) {
	g := New(regime, date)
	step := calendar.StepMinutes(regime)

	for _, alloc := range allocations {
		key, err := alloc.CellKeyAt(step)
		if err != nil {
			return nil, fmt.Errorf("%w: allocation %s: %v", ErrCorruptSnapshot, alloc.ID, err)
		}
		if existing, ok := g.cells[key]; ok && existing.ID != alloc.ID {
			return nil, fmt.Errorf("%w: cell %s claimed by %s and %s", ErrCorruptSnapshot, key, existing.ID, alloc.ID)
		}
		g.cells[key] = alloc
	}
	return g, nil
}

// Regime возвращает режим сетки
func (g *Grid) Regime() domain.Regime { return g.regime }

// Date возвращает дату сетки (YYYY-MM-DD)
func (g *Grid) Date() string { return g.date }

// Lookup возвращает запись по ключу ячейки
func (g *Grid) Lookup(key domain.CellKey) (*domain.Allocation, bool) {
	alloc, ok := g.cells[key]
	return alloc, ok
}

// Size возвращает количество занятых ячеек
func (g *Grid) Size() int { return len(g.cells) }

// Allocations возвращает все записи снимка (по одной на ячейку)
func (g *Grid) Allocations() []*domain.Allocation {
	out := make([]*domain.Allocation, 0, len(g.cells))
	for _, alloc := range g.cells {
		out = append(out, alloc)
	}
	return out
}

// CheckConflict возвращает true, если хотя бы одна из ячеек-кандидатов занята
func (g *Grid) CheckConflict(candidates []domain.CellKey) bool {
	for _, key := range candidates {
		if _, ok := g.cells[key]; ok {
			return true
		}
	}
	return false
}

// CandidateCells вычисляет полный набор ячеек кандидата:
// декартово произведение секций на временной прогон.
func CandidateCells(date, pitchID string, sections []domain.SectionID, timeRun []types.TimeString) []domain.CellKey {
	keys := make([]domain.CellKey, 0, len(sections)*len(timeRun))
	for _, section := range sections {
		for _, label := range timeRun {
			keys = append(keys, domain.CellKey{
				Date:    date,
				Time:    label,
				PitchID: pitchID,
				Section: section,
			})
		}
	}
	return keys
}

// RecordSetParams параметры единственного конструктора набора записей
type RecordSetParams struct {
	TeamName  string
	TeamColor string
	Date      time.Time
	PitchID   string
	Sections  []domain.SectionID
	TimeRun   []types.TimeString
	IsGroup   bool
}

// NewRecordSet строит полный набор записей одного бронирования: одна запись
// на каждую ячейку, общие поля идентичны у всех записей. Это единственное
// место, где записи бронирования создаются, — инварианты группы
// обеспечиваются конструкцией, а не пост-проверкой.
func NewRecordSet(p RecordSetParams) ([]*domain.Allocation, error) {
	if p.TeamName == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrInvalidRecordSet)
	}
	if p.PitchID == "" {
		return nil, fmt.Errorf("%w: pitch id is required", ErrInvalidRecordSet)
	}
	if len(p.Sections) == 0 {
		return nil, fmt.Errorf("%w: at least one section is required", ErrInvalidRecordSet)
	}
	if len(p.TimeRun) == 0 {
		return nil, fmt.Errorf("%w: time run is empty", ErrInvalidRecordSet)
	}
	seen := make(map[domain.SectionID]bool, len(p.Sections))
	for _, s := range p.Sections {
		if !s.IsValid() {
			return nil, fmt.Errorf("%w: unknown section %q", ErrInvalidRecordSet, s)
		}
		if seen[s] {
			return nil, fmt.Errorf("%w: duplicate section %q", ErrInvalidRecordSet, s)
		}
		seen[s] = true
	}

	allocationID := uuid.NewString()
	totalSlots := len(p.TimeRun)
	startTime := p.TimeRun[0]
	endTime := p.TimeRun[totalSlots-1]

	isGroup := p.IsGroup || len(p.Sections) > 1
	var groupSections []domain.SectionID
	if isGroup {
		groupSections = make([]domain.SectionID, len(p.Sections))
		copy(groupSections, p.Sections)
	}

	records := make([]*domain.Allocation, 0, len(p.Sections)*totalSlots)
	for _, section := range p.Sections {
		for slotIndex := 0; slotIndex < totalSlots; slotIndex++ {
			records = append(records, &domain.Allocation{
				ID:            allocationID,
				TeamName:      p.TeamName,
				TeamColor:     p.TeamColor,
				Date:          p.Date,
				PitchID:       p.PitchID,
				Section:       section,
				StartTime:     startTime,
				EndTime:       endTime,
				TotalSlots:    totalSlots,
				SlotIndex:     slotIndex,
				IsMultiSlot:   totalSlots > 1,
				IsPartOfGroup: isGroup,
				GroupSections: groupSections,
			})
		}
	}
	return records, nil
}

// Place атомарно укладывает набор записей в снимок. Либо занимаются все
// ячейки набора, либо (при конфликте) снимок не меняется вовсе.
func (g *Grid) Place(records []*domain.Allocation) error {
	step := calendar.StepMinutes(g.regime)

	keys := make([]domain.CellKey, 0, len(records))
	for _, rec := range records {
		key, err := rec.CellKeyAt(step)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRecordSet, err)
		}
		keys = append(keys, key)
	}

	if g.CheckConflict(keys) {
		return ErrConflict
	}

	for i, rec := range records {
		g.cells[keys[i]] = rec
	}
	return nil
}

// GroupCells восстанавливает полный набор ключей логического бронирования
// из любой его ячейки, повторяя произведение секций группы на временной
// прогон, сохраненный избыточно в каждой записи.
func (g *Grid) GroupCells(member *domain.Allocation) ([]domain.CellKey, error) {
	timeRun, err := calendar.SlotsSpanned(g.regime, member.StartTime, member.TotalSlots)
	if err != nil {
		return nil, fmt.Errorf("%w: reconstruct group of %s: %v", ErrCorruptSnapshot, member.ID, err)
	}
	return CandidateCells(member.DateString(), member.PitchID, member.Sections(), timeRun), nil
}

// Remove снимает целиком логическое бронирование, которому принадлежит
// ячейка key. Возвращает запись-представителя группы. Удаление по любой
// ячейке группы убирает все её ячейки — снимок никогда не остается с
// частично снятой группой.
func (g *Grid) Remove(key domain.CellKey) (*domain.Allocation, error) {
	member, ok := g.cells[key]
	if !ok {
		return nil, ErrNotFound
	}

	keys, err := g.GroupCells(member)
	if err != nil {
		return nil, err
	}

	for _, k := range keys {
		delete(g.cells, k)
	}
	return member, nil
}
