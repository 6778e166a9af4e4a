package transform

import (
	"strings"

	"github.com/ledgerize-dev/ledgerize/internal/dates"
	"github.com/ledgerize-dev/ledgerize/internal/model"
)

// resetMarker triggers the classification override when it appears anywhere
// in the narration. Matching is case-sensitive and unanchored.
const resetMarker = "RESET"

// Record maps one raw statement row into a normalized TransactionRecord.
// Both date fields are expanded to four-digit years against refYear; amounts
// pass through exactly as read. mop is the file-wide payment-method tag.
func Record(raw model.RawRow, mop string, refYear int) model.TransactionRecord {
	rec := model.TransactionRecord{
		Date:      dates.Expand(raw[model.LabelDate], "", refYear),
		Narration: raw[model.LabelNarration],
		MOP:       mop,
		AmtDr:     raw[model.LabelWithdrawal],
		ChqRef:    raw[model.LabelChqRef],
		ValueDt:   dates.Expand(raw[model.LabelValueDt], "", refYear),
		AmtCr:     raw[model.LabelDeposit],
	}

	if strings.Contains(rec.Narration, resetMarker) {
		rec.Item = resetMarker
		rec.Category = resetMarker
		rec.Place = resetMarker
		rec.Freq = resetMarker
		rec.For = resetMarker
	}

	return rec
}
