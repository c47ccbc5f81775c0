package service

// TransferQRRequest is the bank transfer a QR code encodes.
type TransferQRRequest struct {
	Amount int64  // Amount in đồng.
	Memo   string // Transfer description, e.g. "DH1A2B3C4D".
}

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateTransferQR renders a PNG QR for a bank transfer to the shop account
	GenerateTransferQR(req TransferQRRequest) ([]byte, error)

	// TransferPayload returns the text encoded by GenerateTransferQR
	TransferPayload(req TransferQRRequest) string
}
