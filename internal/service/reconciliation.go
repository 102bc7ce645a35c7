package service

import (
	"context"
	"strings"
	"time"

	"github.com/inmovia/inmovia/internal/api/dto"
	"github.com/inmovia/inmovia/internal/domain/billing"
	"github.com/inmovia/inmovia/internal/domain/property"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/idempotency"
	"github.com/inmovia/inmovia/internal/types"
	"github.com/shopspring/decimal"
)

// Column vocabulary of the administration spreadsheet. Mapping relies on
// column presence, not order.
const (
	colAdministration = "administracion"
	colReference      = "NUM"
	colRent           = "IMPORTE"
	colDueDate        = "VENCIMIENTO"
	colElectricity    = "LUZ"
	colWater          = "AGUA"
	colGas            = "GAS"
	colMunicipal      = "MUN EXP EMOS"
)

// monetaryColumns maps each monetary column to the kind of line item it
// produces, in emission order.
var monetaryColumns = []struct {
	column string
	kind   types.LineItemKind
}{
	{colRent, types.LineItemKindRent},
	{colElectricity, types.LineItemKindElectricity},
	{colWater, types.LineItemKindWater},
	{colGas, types.LineItemKindGas},
	{colMunicipal, types.LineItemKindTaxes},
}

var dueDateLayouts = []string{time.RFC3339, "2006-01-02", "02/01/2006"}

// ReconciliationService ingests externally captured billing rows and maps
// them onto line items against the property directory. Rows that cannot
// be matched or parsed are reported per row and never abort the batch.
type ReconciliationService interface {
	Reconcile(ctx context.Context, req dto.ReconcileRequest) (*dto.ReconcileResponse, error)
}

type reconciliationService struct {
	ServiceParams
	idempGen *idempotency.Generator
}

// NewReconciliationService creates a new reconciliation service
func NewReconciliationService(params ServiceParams) ReconciliationService {
	return &reconciliationService{
		ServiceParams: params,
		idempGen:      idempotency.NewGenerator(),
	}
}

func (s *reconciliationService) Reconcile(ctx context.Context, req dto.ReconcileRequest) (*dto.ReconcileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rows := req.Rows
	if req.Data != "" {
		rows = append(rows, ParseDelimited([]byte(req.Data))...)
	}

	properties, err := s.PropertyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.ReconcileResponse{Items: []*dto.LineItemResponse{}}

	for i, row := range rows {
		rowNumber := i + 1

		prop := matchProperty(properties, row[colAdministration])
		if prop == nil {
			resp.Unmatched = append(resp.Unmatched, dto.UnmatchedRow{
				RowNumber: rowNumber,
				Row:       row,
				Reason:    "no property title contains the administration label",
			})
			continue
		}

		items, failed := s.rowLineItems(ctx, rowNumber, row, prop)
		if failed != nil {
			resp.Failed = append(resp.Failed, *failed)
			continue
		}

		// One row's line items commit as a unit, so a re-import never
		// sees a half-written row.
		err = s.DB.WithTx(ctx, func(ctx context.Context) error {
			for _, item := range items {
				inserted, err := s.BillRepo.CreateIfAbsent(ctx, item)
				if err != nil {
					return err
				}
				if inserted {
					resp.Items = append(resp.Items, dto.NewLineItemResponse(item))
				} else {
					resp.SkippedIDs = append(resp.SkippedIDs, item.ID)
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	s.Logger.Infow("reconciled billing rows",
		"rows", len(rows),
		"created", len(resp.Items),
		"skipped", len(resp.SkippedIDs),
		"unmatched", len(resp.Unmatched),
		"failed", len(resp.Failed),
	)

	return resp, nil
}

// rowLineItems derives the line items for one matched row. A parse
// failure on any monetary field excludes the whole row.
func (s *reconciliationService) rowLineItems(ctx context.Context, rowNumber int, row map[string]string, prop *property.Property) ([]*billing.LineItem, *dto.FailedRow) {
	referenceDate := parseDueDate(row[colDueDate])
	contractRef := strings.TrimSpace(row[colReference])
	if contractRef == "" {
		contractRef = "N/A"
	}

	var items []*billing.LineItem
	for _, mc := range monetaryColumns {
		raw := strings.TrimSpace(row[mc.column])
		if raw == "" {
			continue
		}

		amount, err := ParseLocalizedAmount(raw)
		if err != nil {
			return nil, &dto.FailedRow{
				RowNumber: rowNumber,
				Row:       row,
				Field:     mc.column,
				Reason:    err.Error(),
			}
		}
		if !amount.IsPositive() {
			continue
		}

		items = append(items, &billing.LineItem{
			ID:                s.importBillID(prop.ID, mc.kind, amount, referenceDate, contractRef),
			PropertyID:        prop.ID,
			Kind:              mc.kind,
			Amount:            amount,
			ReferenceDate:     referenceDate,
			ContractReference: contractRef,
			Status:            types.BillStatusPending,
			BaseModel:         types.GetDefaultBaseModel(ctx),
		})
	}
	return items, nil
}

// importBillID derives the line item id from the row content so that
// re-importing the same file reproduces the same ids.
func (s *reconciliationService) importBillID(propertyID string, kind types.LineItemKind, amount decimal.Decimal, referenceDate time.Time, contractRef string) string {
	return s.idempGen.GenerateKey(idempotency.ScopeImportBill, map[string]interface{}{
		"property_id":    propertyID,
		"kind":           kind.String(),
		"amount":         amount.String(),
		"reference_date": referenceDate.Format("2006-01-02"),
		"contract_ref":   contractRef,
	})
}

// matchProperty finds the first property whose title contains the
// administration label, case-insensitively.
func matchProperty(properties []*property.Property, label string) *property.Property {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return nil
	}
	for _, p := range properties {
		if strings.Contains(strings.ToLower(p.Title), label) {
			return p
		}
	}
	return nil
}

// ParseLocalizedAmount parses a monetary field accepting both
// decimal-comma ("1.234,56") and decimal-point ("1234.56") input, since
// source spreadsheets are locale specific.
func ParseLocalizedAmount(raw string) (decimal.Decimal, error) {
	normalized := strings.TrimSpace(raw)
	if strings.Contains(normalized, ",") {
		normalized = strings.ReplaceAll(normalized, ".", "")
		normalized = strings.ReplaceAll(normalized, ",", ".")
	}

	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, ierr.WithError(err).
			WithHintf("Monetary field %q is not numeric", raw).
			Mark(ierr.ErrParse)
	}
	return amount, nil
}

// parseDueDate parses the due-date column, falling back to now when the
// value is absent or not a recognizable date.
func parseDueDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		for _, layout := range dueDateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t.UTC()
			}
		}
	}
	return time.Now().UTC()
}

// ParseDelimited splits a semicolon-delimited payload with a header line
// into the flat key/value rows the reconciler consumes. A UTF-8 BOM is
// stripped when present.
func ParseDelimited(data []byte) []map[string]string {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if len(lines) == 0 {
		return nil
	}

	headers := strings.Split(lines[0], ";")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	var rows []map[string]string
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := strings.Split(line, ";")
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(values) {
				row[header] = strings.TrimSpace(values[i])
			}
		}
		rows = append(rows, row)
	}
	return rows
}
