package get_utilization

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/a1exks/FCP-AllocationService/internal/capacity"
	"github.com/a1exks/FCP-AllocationService/internal/domain"
)

// maxReportDays ограничивает отчетный период одним кварталом
const maxReportDays = 92

// UseCase use case отчета загрузки: сканирует зафиксированные снимки
// обеих сеток за период и строит тепловую карту по полям и половинам дня.
// Чтение без побочных эффектов; готовый отчет кешируется до первой записи.
type UseCase struct {
	allocationRepo AllocationRepository
	pitches        domain.PitchCatalog
	reportCache    ReportCache
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	allocationRepo AllocationRepository,
	pitches domain.PitchCatalog,
	reportCache ReportCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		allocationRepo: allocationRepo,
		pitches:        pitches,
		reportCache:    reportCache,
		logger:         logger,
	}
}

// Execute выполняет use case отчета загрузки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetUtilization: validation failed: %v", err)
		return nil, err
	}

	startStr := req.StartDate.Format(domain.DateFormat)
	endStr := req.EndDate.Format(domain.DateFormat)

	// Версия в ключе кеша: любая запись в сетку повышает версию,
	// и устаревшие отчеты перестают находиться
	cacheKey := fmt.Sprintf("%s:%s:v%d", startStr, endStr, uc.reportCache.Version(ctx))
	if payload, ok := uc.reportCache.Get(ctx, cacheKey); ok {
		var cached Response
		if err := json.Unmarshal(payload, &cached); err == nil {
			uc.logger.Info("GetUtilization: cache hit for %s..%s", startStr, endStr)
			return &cached, nil
		}
	}

	uc.logger.Info("GetUtilization: computing report for %s..%s", startStr, endStr)

	// Полная картина занятости читает обе коллекции
	training, err := uc.allocationRepo.GetByDateRange(ctx, domain.RegimeTraining, req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Error("GetUtilization: failed to load training allocations: %v", err)
		return nil, fmt.Errorf("%w: load training allocations: %v", ErrInternal, err)
	}
	matchDay, err := uc.allocationRepo.GetByDateRange(ctx, domain.RegimeMatchDay, req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Error("GetUtilization: failed to load match allocations: %v", err)
		return nil, fmt.Errorf("%w: load match allocations: %v", ErrInternal, err)
	}

	byDate := make(map[string]*capacity.DayRecords)
	dayOf := func(date string) *capacity.DayRecords {
		if d, ok := byDate[date]; ok {
			return d
		}
		d := &capacity.DayRecords{}
		byDate[date] = d
		return d
	}
	for _, rec := range training {
		day := dayOf(rec.DateString())
		day.Training = append(day.Training, rec)
	}
	for _, rec := range matchDay {
		day := dayOf(rec.DateString())
		day.MatchDay = append(day.MatchDay, rec)
	}

	resp := &Response{Days: make([]DayUtilization, 0, maxReportDays)}
	for date := req.StartDate; !date.After(req.EndDate); date = date.AddDate(0, 0, 1) {
		dateStr := date.Format(domain.DateFormat)
		records := capacity.DayRecords{}
		if d, ok := byDate[dateStr]; ok {
			records = *d
		}

		day := DayUtilization{Date: dateStr, Pitches: make([]PitchUtilization, 0, len(uc.pitches))}
		for i := range uc.pitches {
			pitch := &uc.pitches[i]
			am := capacity.PercentUtilized(pitch, records, capacity.PeriodAM)
			pm := capacity.PercentUtilized(pitch, records, capacity.PeriodPM)
			day.Pitches = append(day.Pitches, PitchUtilization{
				PitchID:     pitch.ID,
				DisplayName: pitch.DisplayName,
				AM:          PeriodUtilization{Percent: am, Light: capacity.Classify(am)},
				PM:          PeriodUtilization{Percent: pm, Light: capacity.Classify(pm)},
			})
		}
		resp.Days = append(resp.Days, day)
	}

	if payload, err := json.Marshal(resp); err == nil {
		uc.reportCache.Set(ctx, cacheKey, payload)
	}
	return resp, nil
}

func validateRequest(req *Request) error {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}
	days := int(req.EndDate.Sub(req.StartDate).Hours()/24) + 1
	if days > maxReportDays {
		return fmt.Errorf("%w: report window %d days exceeds %d", ErrInvalidInput, days, maxReportDays)
	}
	return nil
}
