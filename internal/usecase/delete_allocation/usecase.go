package delete_allocation

import (
	"context"
	"errors"
	"fmt"

	"github.com/a1exks/FCP-AllocationService/internal/domain"
	"github.com/a1exks/FCP-AllocationService/internal/grid"
	allocationRepo "github.com/a1exks/FCP-AllocationService/internal/infra/storage/allocation"
)

// UseCase use case удаления бронирования: по любой ячейке группы
// снимается вся группа целиком, одной транзакцией.
type UseCase struct {
	allocationRepo AllocationRepository
	txManager      TransactionManager
	reports        ReportInvalidator
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	allocationRepo AllocationRepository,
	txManager TransactionManager,
	reports ReportInvalidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		allocationRepo: allocationRepo,
		txManager:      txManager,
		reports:        reports,
		logger:         logger,
	}
}

// Execute выполняет use case удаления бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DeleteAllocation: regime=%s, date=%s, time=%s, pitch=%s, section=%s",
		req.Regime, req.Date.Format(domain.DateFormat), req.Time, req.PitchID, req.Section)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DeleteAllocation: validation failed: %v", err)
		return nil, err
	}

	dateStr := req.Date.Format(domain.DateFormat)
	key := domain.CellKey{
		Date:    dateStr,
		Time:    req.Time,
		PitchID: req.PitchID,
		Section: req.Section,
	}

	var resp *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Снимок дня с блокировкой строк: поиск группы и её удаление
		// видят одно и то же состояние
		existing, err := uc.allocationRepo.GetByDate(txCtx, req.Regime, req.Date)
		if err != nil {
			uc.logger.Error("DeleteAllocation: failed to load day snapshot: %v", err)
			return fmt.Errorf("%w: load day snapshot: %v", ErrInternal, err)
		}

		daySnapshot, err := grid.Rehydrate(req.Regime, dateStr, existing)
		if err != nil {
			uc.logger.Error("DeleteAllocation: corrupt day snapshot: %v", err)
			return fmt.Errorf("%w: rehydrate day snapshot: %v", ErrInternal, err)
		}

		member, err := daySnapshot.Remove(key)
		if err != nil {
			if errors.Is(err, grid.ErrNotFound) {
				uc.logger.Warn("DeleteAllocation: no allocation at %s", key)
				return ErrNotFound
			}
			return fmt.Errorf("%w: reconstruct group: %v", ErrInternal, err)
		}

		removed, err := uc.allocationRepo.DeleteGroup(txCtx, req.Regime, member.ID)
		if err != nil {
			if errors.Is(err, allocationRepo.ErrAllocationNotFound) {
				return ErrNotFound
			}
			uc.logger.Error("DeleteAllocation: failed to delete group %s: %v", member.ID, err)
			return fmt.Errorf("%w: delete group: %v", ErrInternal, err)
		}

		resp = &Response{
			AllocationID: member.ID,
			TeamName:     member.TeamName,
			CellsRemoved: removed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.reports.BumpVersion(ctx)

	uc.logger.Info("DeleteAllocation: removed %s (%d cells) for team=%s",
		resp.AllocationID, resp.CellsRemoved, resp.TeamName)
	return resp, nil
}

func validateRequest(req *Request) error {
	if !req.Regime.IsValid() {
		return fmt.Errorf("%w: unknown regime %q", ErrInvalidInput, req.Regime)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}
	if req.PitchID == "" {
		return fmt.Errorf("%w: pitch id is required", ErrInvalidInput)
	}
	if !req.Section.IsValid() {
		return fmt.Errorf("%w: unknown section %q", ErrInvalidInput, req.Section)
	}
	return nil
}
