package service

// QRCodeService renders links as QR code images.
type QRCodeService interface {
	// GenerateLinkQR encodes link as a PNG QR code.
	GenerateLinkQR(link string) ([]byte, error)
}
