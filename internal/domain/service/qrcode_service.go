package service

// QRCodeService renders order receipt QR codes.
type QRCodeService interface {
	// GenerateOrderQR renders a PNG QR code pointing at the given order.
	GenerateOrderQR(orderID string) ([]byte, error)

	// ParseOrderQR extracts the order ID from a scanned receipt payload.
	ParseOrderQR(qrData string) (string, error)
}
