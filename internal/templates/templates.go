// Package templates embeds the notification email templates.
package templates

import "embed"

// OrderNotification is the template sent to the shop for every accepted order.
const OrderNotification = "order_notification.txt"

//go:embed *.txt
var FS embed.FS
