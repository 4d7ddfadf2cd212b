package render

import (
	"encoding/base64"
	htmltemplate "html/template"

	qrcode "github.com/skip2/go-qrcode"
)

// qrDataURI encodes content as a QR PNG and returns it as a data URI suitable
// for an <img src>. Returns empty on encode failure so the confirmation email
// simply omits the block.
func qrDataURI(content string) htmltemplate.URL {
	png, err := qrcode.Encode(content, qrcode.Medium, 160)
	if err != nil {
		return ""
	}
	return htmltemplate.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
}
