package qrcode

import (
	"fmt"
	"strings"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service rendering PNGs of the given pixel size.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateLinkQR encodes link as a PNG QR code.
func (s *qrcodeService) GenerateLinkQR(link string) ([]byte, error) {
	if strings.TrimSpace(link) == "" {
		return nil, errors.New("link must not be empty")
	}

	pngBytes, err := qrcode.Encode(link, s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
