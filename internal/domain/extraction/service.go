package extraction

import "context"

type ExtractionService interface {
	// ExtractEmployees sends the document image to the AI gateway and
	// returns validated candidates without persisting anything.
	ExtractEmployees(ctx context.Context, req ExtractEmployeeRequest) (ExtractEmployeeResponse, error)

	// ExtractAndCreateEmployees validates every candidate first and
	// persists them in one transaction: all records or none.
	ExtractAndCreateEmployees(ctx context.Context, req ExtractEmployeeRequest) (ExtractEmployeeResponse, error)
}
