package extraction

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sitepulse/erp-backend-go/internal/pkg/validator"
)

type ExtractEmployeeRequest struct {
	// PhotoDataURI carries the document image inline:
	// "data:<mimetype>;base64,<encoded_data>".
	PhotoDataURI string `json:"photo_data_uri"`
	Context      string `json:"context,omitempty"`
}

func (r *ExtractEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PhotoDataURI) {
		errs = append(errs, validator.ValidationError{Field: "photo_data_uri", Message: "is required"})
	} else if !strings.HasPrefix(r.PhotoDataURI, "data:") {
		errs = append(errs, validator.ValidationError{Field: "photo_data_uri", Message: "must be a data URI"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ExtractedCandidate is one structured record pulled from the document,
// already validated against the employee schema.
type ExtractedCandidate struct {
	Name        string          `json:"name"`
	Designation string          `json:"designation"`
	Salary      decimal.Decimal `json:"salary"`
	Nationality string          `json:"nationality"`
}

type ExtractEmployeeResponse struct {
	Candidates []ExtractedCandidate `json:"candidates"`
	// CreatedIDs are set when the caller asked for the candidates to be
	// persisted as employee records.
	CreatedIDs []string `json:"created_ids,omitempty"`
}
