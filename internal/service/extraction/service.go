package extraction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sitepulse/erp-backend-go/internal/domain/employee"
	"github.com/sitepulse/erp-backend-go/internal/domain/extraction"
	"github.com/sitepulse/erp-backend-go/internal/pkg/database"
	"github.com/sitepulse/erp-backend-go/internal/pkg/genai"
	"github.com/sitepulse/erp-backend-go/internal/repository/postgresql"
)

type extractionService struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	genaiClient  *genai.Client
}

func NewExtractionService(db *database.DB, employeeRepo employee.EmployeeRepository, genaiClient *genai.Client) extraction.ExtractionService {
	return &extractionService{
		db:           db,
		employeeRepo: employeeRepo,
		genaiClient:  genaiClient,
	}
}

func (s *extractionService) ExtractEmployees(ctx context.Context, req extraction.ExtractEmployeeRequest) (extraction.ExtractEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return extraction.ExtractEmployeeResponse{}, err
	}

	extracted, err := s.genaiClient.ExtractEmployeeInfo(ctx, genai.ExtractEmployeeRequest{
		PhotoDataURI: req.PhotoDataURI,
		Context:      req.Context,
	})
	if err != nil {
		var apiErr *genai.APIError
		if errors.As(err, &apiErr) {
			return extraction.ExtractEmployeeResponse{}, extraction.ErrExtractionFailed
		}
		return extraction.ExtractEmployeeResponse{}, fmt.Errorf("failed to extract employee info: %w", err)
	}

	candidates := make([]extraction.ExtractedCandidate, 0, len(extracted))
	for _, e := range extracted {
		candidate, err := validateCandidate(e)
		if err != nil {
			return extraction.ExtractEmployeeResponse{}, err
		}
		candidates = append(candidates, candidate)
	}

	return extraction.ExtractEmployeeResponse{Candidates: candidates}, nil
}

func (s *extractionService) ExtractAndCreateEmployees(ctx context.Context, req extraction.ExtractEmployeeRequest) (extraction.ExtractEmployeeResponse, error) {
	result, err := s.ExtractEmployees(ctx, req)
	if err != nil {
		return extraction.ExtractEmployeeResponse{}, err
	}
	if len(result.Candidates) == 0 {
		return result, nil
	}

	createdIDs := make([]string, 0, len(result.Candidates))
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for _, candidate := range result.Candidates {
			id, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("failed to generate employee id: %w", err)
			}

			if _, err := s.employeeRepo.Create(txCtx, employee.Employee{
				ID:          id.String(),
				Name:        candidate.Name,
				Designation: candidate.Designation,
				Salary:      candidate.Salary,
				Country:     candidate.Nationality,
			}); err != nil {
				return err
			}
			createdIDs = append(createdIDs, id.String())
		}
		return nil
	})
	if err != nil {
		return extraction.ExtractEmployeeResponse{}, err
	}

	result.CreatedIDs = createdIDs
	return result, nil
}

// validateCandidate applies the employee schema to a raw gateway record.
// One bad record rejects the whole batch.
func validateCandidate(e genai.ExtractedEmployee) (extraction.ExtractedCandidate, error) {
	if strings.TrimSpace(e.Name) == "" || strings.TrimSpace(e.Designation) == "" {
		return extraction.ExtractedCandidate{}, extraction.ErrMalformedOutput
	}
	// Nationality becomes the employee's country, which is required.
	if strings.TrimSpace(e.Nationality) == "" {
		return extraction.ExtractedCandidate{}, extraction.ErrMalformedOutput
	}

	salary := decimal.NewFromFloat(e.Salary)
	if !salary.IsPositive() {
		return extraction.ExtractedCandidate{}, extraction.ErrMalformedOutput
	}

	return extraction.ExtractedCandidate{
		Name:        strings.TrimSpace(e.Name),
		Designation: strings.TrimSpace(e.Designation),
		Salary:      salary,
		Nationality: strings.TrimSpace(e.Nationality),
	}, nil
}
