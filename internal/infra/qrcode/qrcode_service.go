package qrcode

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"drinkpos/config"
	"drinkpos/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 320

	// NAPAS VietQR identifiers
	napasGUID         = "A000000727"
	napasServiceCode  = "QRIBFTTA"
	currencyVND       = "704"
	countryVietnam    = "VN"
	maxMemoLength     = 25
	maxAccountNameLen = 25
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	bankBin              string
	accountNumber        string
	accountName          string
}

// NewQRCodeService creates a new QR code service instance from the qrcode config section
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qr := cfg.QRCode
	if qr == nil {
		qr = &config.QRCodeConfig{}
	}

	size := qr.Size
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(qr.ErrorCorrectionLevel),
		bankBin:              qr.BankBin,
		accountNumber:        qr.AccountNumber,
		accountName:          qr.AccountName,
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateTransferQR renders the VietQR payload of req as a PNG
func (s *qrcodeService) GenerateTransferQR(req service.TransferQRRequest) ([]byte, error) {
	if s.bankBin == "" || s.accountNumber == "" {
		return nil, errors.New("shop bank account is not configured")
	}
	if req.Amount <= 0 {
		return nil, errors.New("transfer amount must be positive")
	}

	qrCode, err := qrcode.New(s.TransferPayload(req), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// TransferPayload builds the EMVCo merchant-presented payload used by Vietnamese banking apps
func (s *qrcodeService) TransferPayload(req service.TransferQRRequest) string {
	beneficiary := tlv("00", s.bankBin) + tlv("01", s.accountNumber)
	merchantAccount := tlv("00", napasGUID) + tlv("01", beneficiary) + tlv("02", napasServiceCode)

	var b strings.Builder
	b.WriteString(tlv("00", "01"))
	b.WriteString(tlv("01", "12"))
	b.WriteString(tlv("38", merchantAccount))
	b.WriteString(tlv("53", currencyVND))
	if req.Amount > 0 {
		b.WriteString(tlv("54", strconv.FormatInt(req.Amount, 10)))
	}
	b.WriteString(tlv("58", countryVietnam))
	if name := sanitize(s.accountName, maxAccountNameLen); name != "" {
		b.WriteString(tlv("59", name))
	}
	if memo := sanitize(req.Memo, maxMemoLength); memo != "" {
		b.WriteString(tlv("62", tlv("08", memo)))
	}
	b.WriteString("6304")

	payload := b.String()

	return payload + fmt.Sprintf("%04X", crc16CCITT([]byte(payload)))
}

func tlv(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}

// sanitize keeps printable ASCII so field lengths count bytes.
func sanitize(value string, limit int) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(value) {
		if r < unicode.MaxASCII && unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}

	out := b.String()
	if len(out) > limit {
		out = out[:limit]
	}

	return out
}

// crc16CCITT is CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF) as required by EMVCo tag 63.
func crc16CCITT(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, c := range data {
		crc ^= uint16(c) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}

	return crc
}
