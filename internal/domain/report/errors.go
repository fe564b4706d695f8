package report

import "errors"

var (
	// ErrNoReportData signals an empty roster: export refuses to emit a
	// headerless or otherwise malformed file.
	ErrNoReportData = errors.New("no data available for this report")
)
