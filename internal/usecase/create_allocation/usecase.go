package create_allocation

import (
	"context"
	"errors"
	"fmt"

	"github.com/a1exks/FCP-AllocationService/internal/calendar"
	"github.com/a1exks/FCP-AllocationService/internal/domain"
	"github.com/a1exks/FCP-AllocationService/internal/grid"
	allocationRepo "github.com/a1exks/FCP-AllocationService/internal/infra/storage/allocation"
	"github.com/a1exks/FCP-AllocationService/internal/layout"
)

// UseCase use case создания бронирования: раскрытие раскладки в набор
// ячеек, проверка конфликтов и атомарная запись всего набора.
type UseCase struct {
	allocationRepo AllocationRepository
	txManager      TransactionManager
	pitches        domain.PitchCatalog
	teams          domain.TeamCatalog
	reports        ReportInvalidator
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	allocationRepo AllocationRepository,
	txManager TransactionManager,
	pitches domain.PitchCatalog,
	teams domain.TeamCatalog,
	reports ReportInvalidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		allocationRepo: allocationRepo,
		txManager:      txManager,
		pitches:        pitches,
		teams:          teams,
		reports:        reports,
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка конфликтов и запись набора ячеек выполняются в одной
// SERIALIZABLE-транзакции с блокировкой строк дня: два параллельных
// вызова не могут оба увидеть «свободно» и оба записаться.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAllocation: regime=%s, team=%s, pitch=%s, date=%s, start=%s",
		req.Regime, req.TeamName, req.PitchID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAllocation: validation failed: %v", err)
		return nil, err
	}

	// 2. Поле из каталога
	pitch, ok := uc.pitches.ByID(req.PitchID)
	if !ok {
		uc.logger.Warn("CreateAllocation: pitch %s not in catalog", req.PitchID)
		return nil, ErrPitchNotFound
	}

	// 3. Секции и длительность в зависимости от режима
	bracket := layout.BracketFor(req.TeamName)
	sections := req.Sections
	durationMinutes := req.DurationMinutes

	if req.Regime == domain.RegimeMatchDay {
		resolved, err := layout.SectionsFor(bracket, pitch, req.LayoutLabel)
		if err != nil {
			uc.logger.Warn("CreateAllocation: layout %q invalid for bracket %s: %v", req.LayoutLabel, bracket, err)
			return nil, fmt.Errorf("%w: %v", ErrUnknownLayout, err)
		}
		sections = resolved
		durationMinutes = layout.DurationFor(bracket)
	}

	if err := validateSectionsOnPitch(pitch, sections); err != nil {
		uc.logger.Warn("CreateAllocation: %v", err)
		return nil, err
	}

	// 4. Временной прогон; выход за границу календаря равнозначен конфликту
	slotCount := calendar.SlotCount(req.Regime, durationMinutes)
	timeRun, err := calendar.SlotsSpanned(req.Regime, req.StartTime, slotCount)
	if err != nil {
		uc.logger.Warn("CreateAllocation: %d slots from %s do not fit the %s calendar", slotCount, req.StartTime, req.Regime)
		return nil, fmt.Errorf("%w: %v", ErrConflict, err)
	}

	teamColor := uc.teams.ColorOf(req.TeamName)
	dateStr := req.Date.Format(domain.DateFormat)

	var records []*domain.Allocation

	// 5. Проверка конфликтов и запись — одна сериализуемая единица
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Снимок дня с блокировкой строк (FOR UPDATE)
		existing, err := uc.allocationRepo.GetByDate(txCtx, req.Regime, req.Date)
		if err != nil {
			uc.logger.Error("CreateAllocation: failed to load day snapshot: %v", err)
			return fmt.Errorf("%w: load day snapshot: %v", ErrInternal, err)
		}

		daySnapshot, err := grid.Rehydrate(req.Regime, dateStr, existing)
		if err != nil {
			uc.logger.Error("CreateAllocation: corrupt day snapshot: %v", err)
			return fmt.Errorf("%w: rehydrate day snapshot: %v", ErrInternal, err)
		}

		// 5.2. Ячейки кандидата: секции × временной прогон
		candidates := grid.CandidateCells(dateStr, req.PitchID, sections, timeRun)
		if daySnapshot.CheckConflict(candidates) {
			uc.logger.Warn("CreateAllocation: conflict for team=%s, pitch=%s, start=%s",
				req.TeamName, req.PitchID, req.StartTime)
			return ErrConflict
		}

		// 5.3. Единственный конструктор набора записей
		records, err = grid.NewRecordSet(grid.RecordSetParams{
			TeamName:  req.TeamName,
			TeamColor: teamColor,
			Date:      req.Date,
			PitchID:   req.PitchID,
			Sections:  sections,
			TimeRun:   timeRun,
			IsGroup:   len(sections) > 1,
		})
		if err != nil {
			return fmt.Errorf("%w: build record set: %v", ErrInternal, err)
		}

		// 5.4. Атомарная запись всего набора; уникальный индекс ячейки в БД
		// страхует от гонки и также означает конфликт
		if err := uc.allocationRepo.CreateBatch(txCtx, req.Regime, records); err != nil {
			if errors.Is(err, allocationRepo.ErrCellTaken) {
				return ErrConflict
			}
			uc.logger.Error("CreateAllocation: failed to write record set: %v", err)
			return fmt.Errorf("%w: write record set: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 6. Отчеты загрузки устарели
	uc.reports.BumpVersion(ctx)

	rep := records[0]
	uc.logger.Info("CreateAllocation: created %s (%d cells) for team=%s", rep.ID, len(records), req.TeamName)

	return &Response{
		AllocationID:    rep.ID,
		Regime:          req.Regime,
		TeamName:        rep.TeamName,
		TeamColor:       rep.TeamColor,
		Bracket:         bracket,
		Date:            req.Date,
		PitchID:         rep.PitchID,
		Sections:        rep.Sections(),
		StartTime:       rep.StartTime,
		EndTime:         rep.EndTime,
		DurationMinutes: durationMinutes,
		TotalSlots:      rep.TotalSlots,
		CellCount:       len(records),
	}, nil
}
