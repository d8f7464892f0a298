package allocations

import (
	"context"
	"fmt"
	"time"

	"github.com/a1exks/FCP-AllocationService/internal/domain"
	"github.com/a1exks/FCP-AllocationService/internal/grid"
	"github.com/a1exks/FCP-AllocationService/internal/layout"
	"github.com/a1exks/FCP-AllocationService/internal/service/allocations/models"
)

// Service сервис чтения сеток и справочных операций.
// Единственный общий экземпляр внедряется во все обработчики: каждый
// потребитель видит одну и ту же сетку, а не собственную копию логики.
type Service struct {
	allocationRepo AllocationRepository
	txManager      TransactionManager
	pitches        domain.PitchCatalog
	reports        ReportInvalidator
	logger         Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	allocationRepo AllocationRepository,
	txManager TransactionManager,
	pitches domain.PitchCatalog,
	reports ReportInvalidator,
	logger Logger,
) *Service {
	return &Service{
		allocationRepo: allocationRepo,
		txManager:      txManager,
		pitches:        pitches,
		reports:        reports,
		logger:         logger,
	}
}

// DayGrid возвращает снимок сетки одного дня одного режима,
// опционально суженный до одного поля. Снимок всегда перечитывается из
// хранилища: другой планировщик мог изменить тот же день.
func (s *Service) DayGrid(ctx context.Context, regime domain.Regime, date time.Time, pitchID string) (*models.DayGridResponse, error) {
	if !regime.IsValid() {
		return nil, fmt.Errorf("%w: unknown regime %q", ErrInvalidInput, regime)
	}
	if pitchID != "" {
		if _, ok := s.pitches.ByID(pitchID); !ok {
			s.logger.Warn("DayGrid: pitch %s not in catalog", pitchID)
			return nil, ErrPitchNotFound
		}
	}

	dateStr := date.Format(domain.DateFormat)
	s.logger.Info("DayGrid: loading %s grid for %s (pitch=%q)", regime, dateStr, pitchID)

	records, err := s.allocationRepo.GetByDate(ctx, regime, date)
	if err != nil {
		s.logger.Error("DayGrid: failed to load %s grid for %s: %v", regime, dateStr, err)
		return nil, fmt.Errorf("%w: load day grid: %v", ErrInternal, err)
	}

	// Регидрация валидирует снимок (двойная занятость ячейки и т.п.)
	daySnapshot, err := grid.Rehydrate(regime, dateStr, records)
	if err != nil {
		s.logger.Error("DayGrid: corrupt snapshot for %s: %v", dateStr, err)
		return nil, fmt.Errorf("%w: rehydrate day grid: %v", ErrInternal, err)
	}

	resp := &models.DayGridResponse{
		Date:   dateStr,
		Regime: regime,
		Cells:  make(map[string]models.Cell, daySnapshot.Size()),
	}
	for _, alloc := range daySnapshot.Allocations() {
		if pitchID != "" && alloc.PitchID != pitchID {
			continue
		}
		key, cell, err := models.FromAllocation(regime, alloc)
		if err != nil {
			return nil, fmt.Errorf("%w: map cell: %v", ErrInternal, err)
		}
		resp.Cells[key] = cell
	}
	return resp, nil
}

// LayoutChoices возвращает возрастную категорию команды, длительность
// матча и допустимые раскладки на поле
func (s *Service) LayoutChoices(ctx context.Context, teamName, pitchID string) (*models.LayoutChoicesResponse, error) {
	if teamName == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	pitch, ok := s.pitches.ByID(pitchID)
	if !ok {
		s.logger.Warn("LayoutChoices: pitch %s not in catalog", pitchID)
		return nil, ErrPitchNotFound
	}

	bracket := layout.BracketFor(teamName)
	choices := layout.ChoicesFor(bracket, pitch)
	duration := layout.DurationFor(bracket)

	s.logger.Info("LayoutChoices: team=%s bracket=%s pitch=%s -> %d choices",
		teamName, bracket, pitchID, len(choices))
	return models.FromLayoutChoices(teamName, bracket, duration, choices), nil
}

// ClearDay удаляет все бронирования даты в обеих коллекциях одной
// транзакцией. Частично сброшенный день невозможен: либо обе сетки
// очищены, либо ни одна.
func (s *Service) ClearDay(ctx context.Context, date time.Time) (*models.ClearDayResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	dateStr := date.Format(domain.DateFormat)
	s.logger.Info("ClearDay: clearing both grids for %s", dateStr)

	var total int64
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		for _, regime := range []domain.Regime{domain.RegimeTraining, domain.RegimeMatchDay} {
			removed, err := s.allocationRepo.DeleteByDate(txCtx, regime, date)
			if err != nil {
				s.logger.Error("ClearDay: failed to clear %s grid for %s: %v", regime, dateStr, err)
				return fmt.Errorf("%w: clear %s grid: %v", ErrInternal, regime, err)
			}
			total += removed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.reports.BumpVersion(ctx)

	s.logger.Info("ClearDay: removed %d cells for %s", total, dateStr)
	return &models.ClearDayResponse{Date: dateStr, CellsRemoved: total}, nil
}
