// Package whatsapp renders an order into the message sent to the store owner
// and the wa.me deep link that opens WhatsApp with the message pre-filled.
// Everything here is a pure string transform over an already-loaded order.
package whatsapp

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"grocery-store-api/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Settings is the slice of store configuration the formatter needs.
type Settings struct {
	StoreName string
	Number    string // destination WhatsApp number as configured, any format
}

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// Rupiah renders a monetary value as thousands-grouped integer rupiah,
// e.g. 10000 -> "Rp 10.000". Fractional currency units are never shown.
func Rupiah(v float64) string {
	return rupiahPrinter.Sprintf("Rp %d", int64(math.Round(v)))
}

// Message builds the fixed multi-section order summary. The address line
// appears only for delivery orders, the Ongkir line only when the fee is
// nonzero, and the Catatan block only when notes were left.
func Message(o *models.Order, s Settings) string {
	var b strings.Builder

	b.WriteString("🛒 *Pesanan Baru dari " + s.StoreName + "*\n\n")
	b.WriteString("📋 *Detail Pesanan:*\n")
	b.WriteString("Nomor Pesanan: " + o.OrderNumber + "\n")
	b.WriteString("Nama: " + o.CustomerName + "\n")
	b.WriteString("No. HP: " + o.CustomerPhone + "\n")

	if o.DeliveryType == models.DeliveryDelivery && o.CustomerAddress != "" {
		b.WriteString("Alamat: " + o.CustomerAddress + "\n")
	}

	if o.DeliveryType == models.DeliveryDelivery {
		b.WriteString("Jenis Pengiriman: Antar ke Rumah\n\n")
	} else {
		b.WriteString("Jenis Pengiriman: Ambil di Toko\n\n")
	}

	b.WriteString("🛍️ *Item Pesanan:*\n")
	for _, item := range o.Items {
		b.WriteString("• " + item.ProductName + " - " + strconv.Itoa(item.Quantity) +
			"x @ " + Rupiah(item.ProductPrice) + " = " + Rupiah(item.Total) + "\n")
	}

	b.WriteString("\n💰 *Ringkasan Biaya:*\n")
	b.WriteString("Subtotal: " + Rupiah(o.Subtotal) + "\n")
	if o.DeliveryFee > 0 {
		b.WriteString("Ongkir: " + Rupiah(o.DeliveryFee) + "\n")
	}
	b.WriteString("**Total: " + Rupiah(o.Total) + "**\n\n")

	if o.Notes != "" {
		b.WriteString("📝 *Catatan:* " + o.Notes + "\n\n")
	}

	b.WriteString("Terima kasih telah berbelanja di " + s.StoreName + "! 🙏")

	return b.String()
}

var nonDigits = regexp.MustCompile(`[^0-9]`)

// NormalizeNumber strips formatting from a phone number and converts the
// local trunk prefix to Indonesia's country code: "0812-3456" -> "628123456".
// Numbers already in international form are left alone.
func NormalizeNumber(number string) string {
	digits := nonDigits.ReplaceAllString(number, "")
	if strings.HasPrefix(digits, "0") {
		return "62" + digits[1:]
	}
	return digits
}

// DeepLink builds the wa.me URL that opens a chat with the store's number and
// the message pre-filled.
func DeepLink(o *models.Order, s Settings) string {
	msg := Message(o, s)
	return "https://wa.me/" + NormalizeNumber(s.Number) + "?text=" + url.QueryEscape(msg)
}
