package messaging

import (
	"net/url"
	"strings"
)

const whatsAppBaseURL = "https://wa.me/"

// Link builds the deep link that opens a chat with phone prefilled with text.
// Spaces are sent as %20 because the app does not read '+' as a space everywhere.
func Link(phone, text string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return whatsAppBaseURL + url.PathEscape(phone) + "?text=" + encoded
}
