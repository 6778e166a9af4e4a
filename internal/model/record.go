package model

// Column labels of the statement header template.
const (
	LabelDate       = "Date"
	LabelNarration  = "Narration"
	LabelChqRef     = "Chq./Ref.No."
	LabelValueDt    = "Value Dt"
	LabelWithdrawal = "Withdrawal Amt."
	LabelDeposit    = "Deposit Amt."
	LabelClosing    = "Closing Balance"
)

// HeaderTemplate is the ordered label sequence that marks where statement
// data begins in a source worksheet.
var HeaderTemplate = [7]string{
	LabelDate,
	LabelNarration,
	LabelChqRef,
	LabelValueDt,
	LabelWithdrawal,
	LabelDeposit,
	LabelClosing,
}

// RawRow maps each HeaderTemplate label to its cell value for one data row.
type RawRow map[string]string

// TransactionRecord is one normalized ledger row. Amount fields carry the
// source cell text untouched.
type TransactionRecord struct {
	Date      string
	Narration string
	Item      string
	Category  string
	Place     string
	Freq      string
	For       string
	MOP       string
	AmtDr     string
	ChqRef    string
	ValueDt   string
	AmtCr     string
}

// OutputHeader is the column order of the written ledger sheet.
var OutputHeader = []string{
	"Date", "Narration", "Item", "Category", "Place", "Freq", "For",
	"MOP", "Amt (Dr)", "Chq./Ref.No.", "Value Dt", "Amt (Cr)",
}

// Fields returns the record's values in OutputHeader order.
func (r TransactionRecord) Fields() []string {
	return []string{
		r.Date, r.Narration, r.Item, r.Category, r.Place, r.Freq, r.For,
		r.MOP, r.AmtDr, r.ChqRef, r.ValueDt, r.AmtCr,
	}
}
