package qrcode

import (
	"testing"

	"drinkpos/config"
	"drinkpos/internal/domain/service"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQRConfig(size int, level string) *config.Config {
	return &config.Config{QRCode: &config.QRCodeConfig{
		Size:                 size,
		ErrorCorrectionLevel: level,
		BankBin:              "970436",
		AccountNumber:        "0359140685",
		AccountName:          "NGUYEN VAN A",
	}}
}

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "m", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseRecoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_TransferPayload(t *testing.T) {
	svc := NewQRCodeService(newTestQRConfig(256, "M"))

	payload := svc.TransferPayload(service.TransferQRRequest{Amount: 55000, Memo: "DH1A2B3C4D"})

	assert.Equal(t,
		"00020101021238540010A00000072701240006970436011003591406850208QRIBFTTA53037045405550005802VN5912NGUYEN VAN A62140810DH1A2B3C4D63045350",
		payload,
	)
}

func TestQRCodeService_TransferPayload_StripsNonASCIIMemo(t *testing.T) {
	svc := NewQRCodeService(newTestQRConfig(256, "M"))

	payload := svc.TransferPayload(service.TransferQRRequest{Amount: 1000, Memo: "Thanh toán đơn"})

	assert.Contains(t, payload, "0811Thanh ton n")
}

func TestCRC16CCITT_CheckValue(t *testing.T) {
	assert.Equal(t, uint16(0x29B1), crc16CCITT([]byte("123456789")))
}

func TestQRCodeService_GenerateTransferQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Default size", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(newTestQRConfig(tt.size, "M"))

			qrBytes, err := svc.GenerateTransferQR(service.TransferQRRequest{Amount: 30000, Memo: "DH00000001"})
			require.NoError(t, err)
			require.NotEmpty(t, qrBytes)

			// Verify it's a valid PNG (starts with PNG magic number)
			assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
		})
	}
}

func TestQRCodeService_GenerateTransferQR_Rejects(t *testing.T) {
	svc := NewQRCodeService(newTestQRConfig(256, "M"))
	_, err := svc.GenerateTransferQR(service.TransferQRRequest{Amount: 0})
	assert.Error(t, err)

	unconfigured := NewQRCodeService(&config.Config{})
	_, err = unconfigured.GenerateTransferQR(service.TransferQRRequest{Amount: 1000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bank account is not configured")
}
