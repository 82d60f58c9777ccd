package util

import (
	"encoding/base64"

	"github.com/skip2/go-qrcode"
)

// QRCodeDataURI renders content as a PNG QR code inlined in a data URI
func QRCodeDataURI(content string, size int) (string, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
