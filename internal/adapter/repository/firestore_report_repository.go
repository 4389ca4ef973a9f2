package repository

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"shuddhify/internal/domain/entity"
	"shuddhify/internal/domain/repository"
	"shuddhify/pkg/errors"

	"github.com/google/uuid"
)

const (
	reportsCollection = "adulteration_reports"
	usersCollection   = "users"

	// verificationQuorum is the number of independent verifications that
	// promote a pending report to verified.
	verificationQuorum = 3

	// maxListResults caps unpaginated report listings.
	maxListResults = 500
)

type firestoreReportRepository struct {
	client *firestore.Client
}

func NewFirestoreReportRepository(client *firestore.Client) repository.ReportRepository {
	return &firestoreReportRepository{
		client: client,
	}
}

func (r *firestoreReportRepository) Create(ctx context.Context, report *entity.Report) error {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}

	now := time.Now()
	report.ReportDate = now
	report.UpdatedAt = now
	if report.Status == "" {
		report.Status = entity.StatusPending
	}
	if report.VerifiedBy == nil {
		report.VerifiedBy = []entity.Verification{}
	}
	report.VerificationCount = len(report.VerifiedBy)

	reportRef := r.client.Collection(reportsCollection).Doc(report.ID)
	userRef := r.client.Collection(usersCollection).Doc(report.ReportedBy)

	// Report write and reporter counter move together or not at all.
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		userDoc, err := tx.Get(userRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("User", err)
			}
			return err
		}

		var user entity.User
		if err := userDoc.DataTo(&user); err != nil {
			return err
		}

		user.ReportsSubmitted++
		user.UpdatedAt = now

		if err := tx.Set(reportRef, report); err != nil {
			return err
		}
		return tx.Set(userRef, &user)
	})

	return wrapTxError(err, "Failed to create report")
}

func (r *firestoreReportRepository) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	doc, err := r.client.Collection(reportsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Report", err)
		}
		return nil, errors.Internal("Failed to get report", err)
	}

	var report entity.Report
	if err := doc.DataTo(&report); err != nil {
		return nil, errors.Internal("Failed to parse report data", err)
	}

	return &report, nil
}

func (r *firestoreReportRepository) List(ctx context.Context, filter repository.ReportFilter) ([]*entity.Report, error) {
	query := r.client.Collection(reportsCollection).Query

	if filter.Severity != "" {
		query = query.Where("severity", "==", filter.Severity)
	}
	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}

	query = query.OrderBy("reportDate", firestore.Desc)

	// City and food item are substring matches, which Firestore cannot do
	// server-side; stream and filter here instead.
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list reports", err)
	}

	city := strings.ToLower(filter.City)
	foodItem := strings.ToLower(filter.FoodItem)

	var reports []*entity.Report
	for _, doc := range docs {
		var report entity.Report
		if err := doc.DataTo(&report); err != nil {
			continue
		}

		// Rejected reports are hidden unless explicitly requested.
		if filter.Status == "" && report.Status == entity.StatusRejected {
			continue
		}
		if city != "" && !strings.Contains(strings.ToLower(report.Location.City), city) {
			continue
		}
		if foodItem != "" && !strings.Contains(strings.ToLower(report.FoodItem), foodItem) {
			continue
		}

		reports = append(reports, &report)
		if len(reports) >= maxListResults {
			break
		}
	}

	return reports, nil
}

func (r *firestoreReportRepository) ListByReporter(ctx context.Context, reporterID string) ([]*entity.Report, error) {
	query := r.client.Collection(reportsCollection).
		Where("reportedBy", "==", reporterID).
		OrderBy("reportDate", firestore.Desc)

	return collectReports(query.Documents(ctx))
}

func (r *firestoreReportRepository) ListActive(ctx context.Context) ([]*entity.Report, error) {
	query := r.client.Collection(reportsCollection).
		Where("status", "in", []string{entity.StatusPending, entity.StatusVerified})

	return collectReports(query.Documents(ctx))
}

func (r *firestoreReportRepository) Verify(ctx context.Context, reportID, verifierID string) (*entity.Report, error) {
	reportRef := r.client.Collection(reportsCollection).Doc(reportID)
	verifierRef := r.client.Collection(usersCollection).Doc(verifierID)

	var updated entity.Report

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		reportDoc, err := tx.Get(reportRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Report", err)
			}
			return err
		}

		var report entity.Report
		if err := reportDoc.DataTo(&report); err != nil {
			return err
		}

		if report.VerifiedByUser(verifierID) {
			return errors.AlreadyVerified()
		}
		if report.ReportedBy == verifierID {
			return errors.SelfVerification()
		}

		verifierDoc, err := tx.Get(verifierRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("User", err)
			}
			return err
		}

		var verifier entity.User
		if err := verifierDoc.DataTo(&verifier); err != nil {
			return err
		}

		now := time.Now()
		report.VerifiedBy = append(report.VerifiedBy, entity.Verification{
			UserID:    verifierID,
			Timestamp: now,
		})
		report.VerificationCount = len(report.VerifiedBy)

		if report.VerificationCount >= verificationQuorum && report.Status == entity.StatusPending {
			report.Status = entity.StatusVerified
		}
		report.UpdatedAt = now

		verifier.VerificationsProvided++
		verifier.VerificationScore++
		verifier.UpdatedAt = now

		if err := tx.Set(reportRef, &report); err != nil {
			return err
		}
		if err := tx.Set(verifierRef, &verifier); err != nil {
			return err
		}

		updated = report
		return nil
	})

	if err != nil {
		return nil, wrapTxError(err, "Failed to verify report")
	}

	return &updated, nil
}

func (r *firestoreReportRepository) Delete(ctx context.Context, id, requesterID string) error {
	reportRef := r.client.Collection(reportsCollection).Doc(id)
	userRef := r.client.Collection(usersCollection).Doc(requesterID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		reportDoc, err := tx.Get(reportRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Report", err)
			}
			return err
		}

		var report entity.Report
		if err := reportDoc.DataTo(&report); err != nil {
			return err
		}

		if report.ReportedBy != requesterID {
			return errors.Forbidden("Only the original submitter can delete this report", nil)
		}

		userDoc, err := tx.Get(userRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("User", err)
			}
			return err
		}

		var user entity.User
		if err := userDoc.DataTo(&user); err != nil {
			return err
		}

		user.ReportsSubmitted--
		user.UpdatedAt = time.Now()

		if err := tx.Delete(reportRef); err != nil {
			return err
		}
		return tx.Set(userRef, &user)
	})

	return wrapTxError(err, "Failed to delete report")
}

func collectReports(iter *firestore.DocumentIterator) ([]*entity.Report, error) {
	var reports []*entity.Report
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to read reports", err)
		}

		var report entity.Report
		if err := doc.DataTo(&report); err != nil {
			continue
		}
		reports = append(reports, &report)
	}
	return reports, nil
}

// wrapTxError keeps AppError codes from inside a transaction intact and wraps
// everything else as a storage failure.
func wrapTxError(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return errors.Internal(message, err)
}
