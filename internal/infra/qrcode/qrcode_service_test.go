package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateOrderQR(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		level string
	}{
		{"Small low", 128, "L"},
		{"Medium default", 256, "invalid"},
		{"Large highest", 512, "H"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.level, "")

			pngBytes, err := svc.GenerateOrderQR("ORD-1001")
			require.NoError(t, err)
			require.Greater(t, len(pngBytes), 4)

			// PNG magic number
			assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, pngBytes[:4])
		})
	}
}

func TestQRCodeService_GenerateOrderQR_EmptyID(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")

	_, err := svc.GenerateOrderQR("")
	assert.Error(t, err)
}

func TestQRCodeService_ParseOrderQR_JSON(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")

	raw, err := json.Marshal(ReceiptData{OrderID: "ORD-1001", Type: "order"})
	require.NoError(t, err)

	orderID, err := svc.ParseOrderQR(string(raw))
	require.NoError(t, err)
	assert.Equal(t, "ORD-1001", orderID)
}

func TestQRCodeService_ParseOrderQR_URL(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://solarsavers.example/")

	orderID, err := svc.ParseOrderQR("https://solarsavers.example/orders/ORD-7")
	require.NoError(t, err)
	assert.Equal(t, "ORD-7", orderID)

	_, err = svc.ParseOrderQR("https://solarsavers.example/orders/")
	assert.Error(t, err)
}

func TestQRCodeService_ParseOrderQR_Invalid(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")

	_, err := svc.ParseOrderQR("invalid json")
	assert.ErrorContains(t, err, "failed to unmarshal receipt data")

	_, err = svc.ParseOrderQR(`{"order_id":"ORD-1","type":"subscription"}`)
	assert.ErrorContains(t, err, "invalid QR code type")

	_, err = svc.ParseOrderQR(`{"type":"order"}`)
	assert.Error(t, err)
}
