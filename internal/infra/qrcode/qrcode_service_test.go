package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		input string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.input))
		})
	}
}

func TestQRCodeService_GenerateLinkQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateLinkQR("https://shop.example.com/?productId=3")
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_GenerateLinkQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"Small QR", 128, 128},
		{"Large QR", 512, 512},
		{"Non-positive size uses default", 0, defaultSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "L")

			qrBytes, err := service.GenerateLinkQR("https://shop.example.com/?productId=user-1")
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.want, img.Bounds().Dx())
		})
	}
}

func TestQRCodeService_GenerateLinkQR_EmptyLink(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateLinkQR("  ")
	assert.Error(t, err)
}
