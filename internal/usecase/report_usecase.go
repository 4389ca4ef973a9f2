package usecase

import (
	"context"

	"shuddhify/internal/domain/entity"
	"shuddhify/internal/domain/repository"
	"shuddhify/pkg/errors"
	"shuddhify/pkg/geo"
	"shuddhify/pkg/logger"
)

type ReportUseCase struct {
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
	feed       FeedPublisher
}

func NewReportUseCase(
	reportRepo repository.ReportRepository,
	userRepo repository.UserRepository,
	feed FeedPublisher,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo: reportRepo,
		userRepo:   userRepo,
		feed:       feed,
	}
}

type CreateReportInput struct {
	FoodItem         string
	ShopName         string
	Address          string
	Area             string
	City             string
	Lat              float64
	Lng              float64
	AdulterationType string
	Description      string
	Severity         string
	Images           []string
}

func (uc *ReportUseCase) CreateReport(ctx context.Context, reporterID string, input CreateReportInput) (*entity.Report, error) {
	if input.FoodItem == "" {
		return nil, errors.BadRequest("Food item is required", nil)
	}
	if input.Description == "" {
		return nil, errors.BadRequest("Description is required", nil)
	}
	if len(input.Description) > entity.MaxDescriptionLength {
		return nil, errors.BadRequest("Description exceeds maximum length", nil)
	}
	if !entity.ValidAdulterationType(input.AdulterationType) {
		return nil, errors.BadRequest("Invalid adulteration type", nil)
	}

	severity := input.Severity
	if severity == "" {
		severity = entity.SeverityMedium
	}
	if !entity.ValidSeverity(severity) {
		return nil, errors.BadRequest("Invalid severity", nil)
	}

	coordinates := geo.Point{Lng: input.Lng, Lat: input.Lat}
	if !coordinates.Valid() {
		return nil, errors.BadRequest("Invalid coordinates", nil)
	}

	report := &entity.Report{
		FoodItem: input.FoodItem,
		Location: entity.Location{
			ShopName:    input.ShopName,
			Address:     input.Address,
			Area:        input.Area,
			City:        input.City,
			Coordinates: coordinates,
		},
		AdulterationType: input.AdulterationType,
		Severity:         severity,
		Description:      input.Description,
		Status:           entity.StatusPending,
		Images:           input.Images,
		ReportedBy:       reporterID,
	}

	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	uc.publish("report_created", report)

	return report, nil
}

func (uc *ReportUseCase) GetReportByID(ctx context.Context, id string) (*entity.Report, error) {
	return uc.reportRepo.GetByID(ctx, id)
}

func (uc *ReportUseCase) ListReports(ctx context.Context, filter repository.ReportFilter) ([]*entity.Report, error) {
	if filter.Severity != "" && !entity.ValidSeverity(filter.Severity) {
		return nil, errors.BadRequest("Invalid severity filter", nil)
	}
	return uc.reportRepo.List(ctx, filter)
}

func (uc *ReportUseCase) ListMyReports(ctx context.Context, reporterID string) ([]*entity.Report, error) {
	return uc.reportRepo.ListByReporter(ctx, reporterID)
}

// VerifyReport records one user's corroboration. All state checks run inside
// the repository transaction so concurrent verifications on the same report
// cannot race past each other.
func (uc *ReportUseCase) VerifyReport(ctx context.Context, reportID, verifierID string) (*entity.Report, error) {
	report, err := uc.reportRepo.Verify(ctx, reportID, verifierID)
	if err != nil {
		return nil, err
	}

	uc.publish("report_verified", map[string]interface{}{
		"report_id":          report.ID,
		"verification_count": report.VerificationCount,
		"status":             report.Status,
	})

	return report, nil
}

func (uc *ReportUseCase) DeleteReport(ctx context.Context, id, requesterID string) error {
	if err := uc.reportRepo.Delete(ctx, id, requesterID); err != nil {
		return err
	}

	uc.publish("report_deleted", map[string]string{"report_id": id})
	return nil
}

func (uc *ReportUseCase) publish(event string, payload interface{}) {
	if uc.feed == nil {
		return
	}
	uc.feed.Publish(event, payload)
	logger.Debug("published feed event: %s", event)
}
