package entries

// Entry is the API response model for a ledger entry.
// It is used only for responses, not for request bodies.
type Entry struct {
	ID          string `json:"id" doc:"Entry UUID"`
	Voucher     string `json:"voucher" doc:"Voucher number"`
	Account     int    `json:"account" doc:"Account code"`
	Amount      string `json:"amount" doc:"Decimal amount, empty when the source cell was blank"`
	EntryDate   string `json:"entryDate" doc:"Entry date (YYYY-MM-DD)"`
	EntryText   string `json:"entryText" doc:"Entry description"`
	Counterpart string `json:"counterpart" doc:"Counterpart name"`
	LineNo      int    `json:"lineNo" doc:"Zero-based position in the imported ledger"`
}
