// Package whatsapp builds wa.me click-to-chat links with prefilled
// messages. No API calls are made; the links are handed to the frontend
// which opens them in a new tab.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hygienicomfort/shop_api/internal/models"
)

const baseURL = "https://wa.me/"

// Link builds a wa.me URL for a raw phone number and message text.
// Non-digit characters are stripped from the phone before use.
func Link(phone, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return baseURL + digits + "?text=" + url.QueryEscape(message)
}

// ConfirmationLink builds the approval confirmation message for an order.
func ConfirmationLink(order *models.Order, shopName string) string {
	msg := fmt.Sprintf(
		"Hello %s, as per your confirmation on call, we have confirmed your order (Ref ID: %s). Thank you for shopping with %s!",
		order.CustomerName, order.RefID(), shopName,
	)
	return Link(order.PhoneNumber, msg)
}

// StatusLink builds a status update message for an order. It returns an
// empty string for statuses that have no customer-facing message.
func StatusLink(order *models.Order, shopName string) string {
	var msg string
	switch order.Status {
	case models.StatusPacked:
		msg = fmt.Sprintf(
			"Hello %s, your order (Ref ID: %s) has been packed and will be shipped soon. - %s",
			order.CustomerName, order.RefID(), shopName,
		)
	case models.StatusShipped:
		msg = fmt.Sprintf(
			"Hello %s, your order (Ref ID: %s) has been shipped and is on its way. - %s",
			order.CustomerName, order.RefID(), shopName,
		)
	case models.StatusDelivered:
		msg = fmt.Sprintf(
			"Hello %s, your order (Ref ID: %s) has been delivered. Thank you for shopping with %s!",
			order.CustomerName, order.RefID(), shopName,
		)
	default:
		return ""
	}
	return Link(order.PhoneNumber, msg)
}
