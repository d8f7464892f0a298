// Package interchange экспорт и импорт сеток бронирований: канал
// резервного копирования и переноса между инсталляциями.
package interchange

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/a1exks/FCP-AllocationService/internal/calendar"
	"github.com/a1exks/FCP-AllocationService/internal/domain"
	"github.com/a1exks/FCP-AllocationService/internal/grid"
	"github.com/a1exks/FCP-AllocationService/pkg/types"
)

// Service сервис экспорта/импорта
type Service struct {
	allocationRepo AllocationRepository
	txManager      TransactionManager
	reports        ReportInvalidator
	logger         Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	allocationRepo AllocationRepository,
	txManager TransactionManager,
	reports ReportInvalidator,
	logger Logger,
) *Service {
	return &Service{
		allocationRepo: allocationRepo,
		txManager:      txManager,
		reports:        reports,
		logger:         logger,
	}
}

// Export собирает конверт экспорта за период (обе коллекции).
// Повторный импорт конверта восстанавливает эквивалентную сетку.
func (s *Service) Export(ctx context.Context, startDate, endDate time.Time) (*Envelope, error) {
	s.logger.Info("Export: %s..%s", startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))

	env := &Envelope{
		Allocations: make(map[string]Document),
		ExportDate:  time.Now().UTC().Format(time.RFC3339),
		AppVersion:  domain.AppVersion,
	}

	for _, regime := range []domain.Regime{domain.RegimeTraining, domain.RegimeMatchDay} {
		records, err := s.allocationRepo.GetByDateRange(ctx, regime, startDate, endDate)
		if err != nil {
			s.logger.Error("Export: failed to load %s allocations: %v", regime, err)
			return nil, fmt.Errorf("%w: load %s allocations: %v", ErrInternal, regime, err)
		}
		step := calendar.StepMinutes(regime)
		for _, rec := range records {
			key, err := rec.CellKeyAt(step)
			if err != nil {
				return nil, fmt.Errorf("%w: cell key of %s: %v", ErrInternal, rec.ID, err)
			}
			env.Allocations[key.String()] = documentFrom(regime, rec)
		}
	}

	s.logger.Info("Export: %d cells", len(env.Allocations))
	return env, nil
}

// Import применяет файл экспорта поверх текущего состояния. Принимает
// конверт или голую карту ячеек. Весь импорт — одна транзакция: при
// любом конфликте или противоречии не применяется ничего.
func (s *Service) Import(ctx context.Context, payload []byte) (*ImportResult, error) {
	docs, err := parsePayload(payload)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return &ImportResult{}, nil
	}

	groups, err := groupDocuments(docs)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Снимки дней загружаются по одному разу и дополняются по мере
		// укладки групп: конфликты внутри самого файла тоже ловятся
		snapshots := make(map[string]*grid.Grid)

		for _, group := range groups {
			dayKey := string(group.regime) + "/" + group.dateStr
			daySnapshot, ok := snapshots[dayKey]
			if !ok {
				existing, err := s.allocationRepo.GetByDate(txCtx, group.regime, group.date)
				if err != nil {
					s.logger.Error("Import: failed to load %s grid for %s: %v", group.regime, group.dateStr, err)
					return fmt.Errorf("%w: load day snapshot: %v", ErrInternal, err)
				}
				daySnapshot, err = grid.Rehydrate(group.regime, group.dateStr, existing)
				if err != nil {
					return fmt.Errorf("%w: rehydrate day snapshot: %v", ErrInternal, err)
				}
				snapshots[dayKey] = daySnapshot
			}

			timeRun, err := calendar.SlotsSpanned(group.regime, group.startTime, group.totalSlots)
			if err != nil {
				return fmt.Errorf("%w: group %s does not fit the %s calendar: %v",
					ErrInvalidPayload, group.sourceID, group.regime, err)
			}

			// Свежие идентификаторы: допустимо по контракту экспорта
			records, err := grid.NewRecordSet(grid.RecordSetParams{
				TeamName:  group.team,
				TeamColor: group.color,
				Date:      group.date,
				PitchID:   group.pitchID,
				Sections:  group.sections,
				TimeRun:   timeRun,
				IsGroup:   group.isGroup,
			})
			if err != nil {
				return fmt.Errorf("%w: group %s: %v", ErrInvalidPayload, group.sourceID, err)
			}

			if err := daySnapshot.Place(records); err != nil {
				s.logger.Warn("Import: group %s conflicts on %s", group.sourceID, group.dateStr)
				return fmt.Errorf("%w: group %s", ErrConflict, group.sourceID)
			}
			if err := s.allocationRepo.CreateBatch(txCtx, group.regime, records); err != nil {
				s.logger.Error("Import: failed to write group %s: %v", group.sourceID, err)
				return fmt.Errorf("%w: write group: %v", ErrInternal, err)
			}

			result.Groups++
			result.Cells += len(records)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.reports.BumpVersion(ctx)

	s.logger.Info("Import: applied %d groups (%d cells)", result.Groups, result.Cells)
	return result, nil
}

func documentFrom(regime domain.Regime, rec *domain.Allocation) Document {
	groupSections := make([]string, 0, len(rec.GroupSections))
	for _, s := range rec.GroupSections {
		groupSections = append(groupSections, string(s))
	}
	return Document{
		AllocationID:  rec.ID,
		Regime:        string(regime),
		Team:          rec.TeamName,
		Color:         rec.TeamColor,
		Date:          rec.DateString(),
		Pitch:         rec.PitchID,
		Section:       string(rec.Section),
		StartTime:     rec.StartTime.String(),
		EndTime:       rec.EndTime.String(),
		TotalSlots:    rec.TotalSlots,
		SlotIndex:     rec.SlotIndex,
		IsMultiSlot:   rec.IsMultiSlot,
		IsPartOfGroup: rec.IsPartOfGroup,
		GroupSections: groupSections,
	}
}

// parsePayload принимает конверт экспорта либо голую карту ячеек
func parsePayload(payload []byte) (map[string]Document, error) {
	var env Envelope
	if err := json.Unmarshal(payload, &env); err == nil && env.Allocations != nil {
		return env.Allocations, nil
	}

	var bare map[string]Document
	if err := json.Unmarshal(payload, &bare); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return bare, nil
}

// importGroup одно логическое бронирование, собранное из ячеек файла
type importGroup struct {
	sourceID   string // идентификатор из файла, только для диагностики
	regime     domain.Regime
	date       time.Time
	dateStr    string
	pitchID    string
	team       string
	color      string
	startTime  types.TimeString
	totalSlots int
	sections   []domain.SectionID
	isGroup    bool
}

// groupDocuments сворачивает ячейки файла обратно в логические
// бронирования и проверяет согласованность общих полей группы
func groupDocuments(docs map[string]Document) ([]*importGroup, error) {
	groups := make(map[string]*importGroup)

	// Детерминированный порядок обхода: диагностика не скачет между запусками
	keys := make([]string, 0, len(docs))
	for k := range docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, rawKey := range keys {
		doc := docs[rawKey]

		cellKey, err := domain.ParseCellKey(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		if doc.AllocationID == "" {
			return nil, fmt.Errorf("%w: cell %s has no allocationId", ErrInvalidPayload, rawKey)
		}
		regime := domain.Regime(doc.Regime)
		if !regime.IsValid() {
			return nil, fmt.Errorf("%w: cell %s has unknown regime %q", ErrInvalidPayload, rawKey, doc.Regime)
		}
		if doc.Date != cellKey.Date || doc.Pitch != cellKey.PitchID || doc.Section != string(cellKey.Section) {
			return nil, fmt.Errorf("%w: cell %s disagrees with its record", ErrInvalidPayload, rawKey)
		}

		date, err := time.Parse(domain.DateFormat, doc.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: cell %s has invalid date: %v", ErrInvalidPayload, rawKey, err)
		}
		startTime, err := types.NewTimeStringFromString(doc.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: cell %s has invalid start time: %v", ErrInvalidPayload, rawKey, err)
		}

		sections := sectionsOf(doc)
		groupKey := doc.Regime + "/" + doc.AllocationID

		if existing, ok := groups[groupKey]; ok {
			// Общие поля обязаны совпадать у всех ячеек группы
			if existing.team != doc.Team || existing.dateStr != doc.Date ||
				existing.pitchID != doc.Pitch || existing.startTime != startTime ||
				existing.totalSlots != doc.TotalSlots || !sameSections(existing.sections, sections) {
				return nil, fmt.Errorf("%w: allocation %s has inconsistent cells", ErrInvalidPayload, doc.AllocationID)
			}
			continue
		}

		groups[groupKey] = &importGroup{
			sourceID:   doc.AllocationID,
			regime:     regime,
			date:       date,
			dateStr:    doc.Date,
			pitchID:    doc.Pitch,
			team:       doc.Team,
			color:      doc.Color,
			startTime:  startTime,
			totalSlots: doc.TotalSlots,
			sections:   sections,
			isGroup:    doc.IsPartOfGroup,
		}
	}

	out := make([]*importGroup, 0, len(groups))
	groupKeys := make([]string, 0, len(groups))
	for k := range groups {
		groupKeys = append(groupKeys, k)
	}
	sort.Strings(groupKeys)
	for _, k := range groupKeys {
		out = append(out, groups[k])
	}
	return out, nil
}

// sectionsOf возвращает все секции бронирования, которому принадлежит ячейка
func sectionsOf(doc Document) []domain.SectionID {
	if doc.IsPartOfGroup && len(doc.GroupSections) > 0 {
		out := make([]domain.SectionID, 0, len(doc.GroupSections))
		for _, s := range doc.GroupSections {
			out = append(out, domain.SectionID(s))
		}
		return out
	}
	return []domain.SectionID{domain.SectionID(doc.Section)}
}

func sameSections(a, b []domain.SectionID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
