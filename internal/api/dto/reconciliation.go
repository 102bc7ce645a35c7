package dto

import (
	ierr "github.com/inmovia/inmovia/internal/errors"
)

// ReconcileRequest represents a bulk ingestion of externally captured
// billing rows. Rows are flat key/value records already split from the
// semicolon-delimited administration spreadsheet; alternatively the raw
// delimited payload can be posted and is split server side.
type ReconcileRequest struct {
	Rows []map[string]string `json:"rows,omitempty"`
	Data string              `json:"data,omitempty"`
}

func (r ReconcileRequest) Validate() error {
	if len(r.Rows) == 0 && r.Data == "" {
		return ierr.NewError("reconcile request is empty").
			WithHint("Provide parsed rows or the raw delimited payload").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// UnmatchedRow reports a row that could not be mapped to a property
type UnmatchedRow struct {
	RowNumber int               `json:"row_number"`
	Row       map[string]string `json:"row"`
	Reason    string            `json:"reason"`
}

// FailedRow reports a row excluded because a monetary field could not be
// parsed. Failures are per row and never abort the batch.
type FailedRow struct {
	RowNumber int               `json:"row_number"`
	Row       map[string]string `json:"row"`
	Field     string            `json:"field"`
	Reason    string            `json:"reason"`
}

// ReconcileResponse reports the outcome of a reconciliation batch
type ReconcileResponse struct {
	Items      []*LineItemResponse `json:"items"`
	SkippedIDs []string            `json:"skipped_ids,omitempty"`
	Unmatched  []UnmatchedRow      `json:"unmatched,omitempty"`
	Failed     []FailedRow         `json:"failed,omitempty"`
}
