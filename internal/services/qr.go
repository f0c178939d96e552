package services

import (
	"net/url"

	"github.com/skip2/go-qrcode"
)

const qrAPIEndpoint = "https://api.qrserver.com/v1/create-qr-code/"

// BuildQRCodeURL returns the third-party QR-rendering URL for a short URL.
// The endpoint is called by URL convention only; the response is treated as
// an image reference.
func BuildQRCodeURL(shortURL string) string {
	return qrAPIEndpoint + "?size=150x150&data=" + url.QueryEscape(shortURL)
}

// RenderQRCodePNG renders a QR code locally as a PNG, for clients that do
// not want to fetch the external image.
func RenderQRCodePNG(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}
