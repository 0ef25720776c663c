package share

// MessageResponse carries the shareable message for a stored receipt
type MessageResponse struct {
	ReceiptID string `json:"receipt_id"`
	Message   string `json:"message"`
}
