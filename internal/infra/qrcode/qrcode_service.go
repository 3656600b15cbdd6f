// Package qrcode renders order receipt QR codes.
package qrcode

import (
	"encoding/json"
	"strings"

	"solarsavers/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const receiptType = "order"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// ReceiptData is the JSON payload encoded in a receipt QR code when no base URL is configured.
type ReceiptData struct {
	OrderID string `json:"order_id"`
	Type    string `json:"type"`
}

// NewQRCodeService creates a receipt QR renderer. With a baseURL the code encodes
// "<baseURL>/orders/<id>", otherwise a ReceiptData JSON payload.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateOrderQR renders the receipt QR code as PNG.
func (s *qrcodeService) GenerateOrderQR(orderID string) ([]byte, error) {
	if orderID == "" {
		return nil, errors.New("order id is empty")
	}

	content, err := s.payload(orderID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) payload(orderID string) (string, error) {
	if s.baseURL != "" {
		return s.baseURL + "/orders/" + orderID, nil
	}

	jsonData, err := json.Marshal(ReceiptData{OrderID: orderID, Type: receiptType})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal receipt data")
	}

	return string(jsonData), nil
}

// ParseOrderQR accepts either payload form and returns the order ID.
func (s *qrcodeService) ParseOrderQR(qrData string) (string, error) {
	if s.baseURL != "" && strings.HasPrefix(qrData, s.baseURL+"/orders/") {
		orderID := strings.TrimPrefix(qrData, s.baseURL+"/orders/")
		if orderID == "" || strings.Contains(orderID, "/") {
			return "", errors.Errorf("invalid receipt url: %s", qrData)
		}

		return orderID, nil
	}

	var data ReceiptData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal receipt data")
	}

	if data.Type != receiptType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.OrderID == "" {
		return "", errors.New("receipt has no order id")
	}

	return data.OrderID, nil
}
