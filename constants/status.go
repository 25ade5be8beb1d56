package constants

// ReceiptStatus is the canonical lifecycle status for rows in receipts.
type ReceiptStatus string

// Stable values (store these exact strings in DB).
const (
	StatusProcessing ReceiptStatus = "PROCESSING" // placeholder row created at upload time
	StatusCompleted  ReceiptStatus = "COMPLETED"  // extraction finished, fields populated
	StatusFailed     ReceiptStatus = "FAILED"     // terminal extraction failure
)

// AllStatuses lists every valid status, in lifecycle order.
func AllStatuses() []string {
	return []string{
		string(StatusProcessing),
		string(StatusCompleted),
		string(StatusFailed),
	}
}
