package render

import (
	htmltemplate "html/template"
	texttemplate "text/template"
)

// The HTML documents are self-contained: inline styles only, images either
// linked per item or embedded as data URIs.

var confirmationHTML = htmltemplate.Must(htmltemplate.New("order_confirmation_html").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Order Confirmation</title>
</head>
<body style="margin:0;padding:0;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;background-color:#f4f5f7;">
<table width="100%" cellpadding="0" cellspacing="0" style="background-color:#f4f5f7;padding:40px 0;">
<tr><td align="center">
<table width="560" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;overflow:hidden;box-shadow:0 2px 8px rgba(0,0,0,0.08);">
  <tr><td style="padding:32px 40px;text-align:center;background-color:#2e7d32;">
    <h1 style="margin:0;font-size:24px;color:#ffffff;">Thank you for your order!</h1>
  </td></tr>
  <tr><td style="padding:24px 40px 8px;">
    <p style="margin:0 0 16px;font-size:15px;color:#4a4a68;line-height:1.6;">
      Hello {{.CustomerName}}, your order <strong>{{.OrderNumber}}</strong> has been placed successfully.
    </p>
  </td></tr>
  <tr><td style="padding:0 40px;">
    <table width="100%" cellpadding="0" cellspacing="0" style="font-size:14px;color:#4a4a68;">
      <tr><td style="padding:4px 0;">Order Number</td><td align="right">{{.OrderNumber}}</td></tr>
      {{if .Phone}}<tr><td style="padding:4px 0;">Phone</td><td align="right">{{.Phone}}</td></tr>
      {{end}}{{if .PaymentMethod}}<tr><td style="padding:4px 0;">Payment Method</td><td align="right">{{.PaymentMethod}}</td></tr>
      {{end}}{{if .DeliveryOption}}<tr><td style="padding:4px 0;">Delivery Option</td><td align="right">{{.DeliveryOption}}</td></tr>
      {{end}}{{if .DeliveryDistance}}<tr><td style="padding:4px 0;">Distance</td><td align="right">{{.DeliveryDistance}}</td></tr>
      {{end}}</table>
  </td></tr>
  <tr><td style="padding:16px 40px 0;">
    <h2 style="margin:0 0 8px;font-size:17px;color:#1a1a2e;">Your Items</h2>
    {{if .Items}}{{range .Items}}<table width="100%" cellpadding="0" cellspacing="0" class="item" style="border-top:1px solid #eeeef2;">
      <tr>
        {{if .ImageURL}}<td width="72" style="padding:8px 12px 8px 0;"><img src="{{.ImageURL}}" alt="{{.Name}}" width="64" style="border-radius:6px;display:block;"></td>
        {{end}}<td style="padding:8px 0;">
          <p style="margin:0;font-size:14px;color:#1a1a2e;"><strong>{{.Name}}</strong> (Quantity: {{.Quantity}})</p>
          {{if .Description}}<p style="margin:4px 0 0;font-size:13px;color:#8888a0;">{{.Description}}</p>
          {{end}}{{if .Color}}<p style="margin:4px 0 0;font-size:13px;color:#8888a0;">Color: {{.Color}}</p>
          {{end}}</td>
      </tr>
    </table>
    {{end}}{{else}}<p style="margin:0;font-size:14px;color:#8888a0;">No items are listed for this order.</p>
    {{end}}</td></tr>
  <tr><td style="padding:16px 40px 8px;">
    <table width="100%" cellpadding="0" cellspacing="0" style="font-size:14px;color:#4a4a68;">
      <tr><td style="padding:4px 0;">Subtotal</td><td align="right">{{.Subtotal}}</td></tr>
      {{if .DeliveryCharge}}<tr><td style="padding:4px 0;">Delivery Charge</td><td align="right">{{.DeliveryCharge}}</td></tr>
      {{end}}{{if .PaymentCharges}}<tr><td style="padding:4px 0;">Payment Charges</td><td align="right">{{.PaymentCharges}}</td></tr>
      {{end}}{{if .Discount}}<tr><td style="padding:4px 0;">Discount</td><td align="right">-{{.Discount}}</td></tr>
      {{end}}<tr><td style="padding:8px 0;border-top:1px solid #eeeef2;"><strong>Total</strong></td><td align="right" style="padding:8px 0;border-top:1px solid #eeeef2;"><strong>{{.Total}}</strong></td></tr>
    </table>
  </td></tr>
  {{if .EstimatedDelivery}}<tr><td style="padding:0 40px 8px;">
    <p style="margin:0;font-size:14px;color:#4a4a68;">Estimated Delivery: <strong>{{.EstimatedDelivery}}</strong></p>
  </td></tr>
  {{end}}{{if .DeliveryAddress}}<tr><td style="padding:0 40px 8px;">
    <p style="margin:0;font-size:14px;color:#4a4a68;">Delivery Address: {{.DeliveryAddress}}</p>
  </td></tr>
  {{end}}{{if .QRCode}}<tr><td style="padding:16px 40px;text-align:center;">
    <img src="{{.QRCode}}" alt="Order QR code" width="160" height="160" style="display:inline-block;">
    <p style="margin:8px 0 0;font-size:12px;color:#8888a0;">Show this code when your order is handed over.</p>
  </td></tr>
  {{end}}<tr><td style="padding:16px 40px;background-color:#f9f9fc;border-top:1px solid #eeeef2;">
    <p style="margin:0;font-size:12px;color:#aaaabc;text-align:center;">
      &copy; BloomBasket &mdash; This is an automated message, please do not reply.
    </p>
  </td></tr>
</table>
</td></tr>
</table>
</body>
</html>`))

var confirmationText = texttemplate.Must(texttemplate.New("order_confirmation_text").Parse(`Order Confirmation - {{.OrderNumber}}

Hello {{.CustomerName}},

Thank you for your order! Here are your order details:

Order Number: {{.OrderNumber}}
{{- if .Phone}}
Phone: {{.Phone}}
{{- end}}
{{- if .PaymentMethod}}
Payment Method: {{.PaymentMethod}}
{{- end}}
{{- if .DeliveryOption}}
Delivery Option: {{.DeliveryOption}}
{{- end}}
{{- if .DeliveryDistance}}
Distance: {{.DeliveryDistance}}
{{- end}}

Items:
{{- if .Items}}
{{- range .Items}}
- {{.Name}} (Quantity: {{.Quantity}})
{{- if .Description}}
  {{.Description}}
{{- end}}
{{- if .Color}}
  Color: {{.Color}}
{{- end}}
{{- end}}
{{- else}}
No items are listed for this order.
{{- end}}

Subtotal: {{.Subtotal}}
{{- if .DeliveryCharge}}
Delivery Charge: {{.DeliveryCharge}}
{{- end}}
{{- if .PaymentCharges}}
Payment Charges: {{.PaymentCharges}}
{{- end}}
{{- if .Discount}}
Discount: -{{.Discount}}
{{- end}}
Total: {{.Total}}
{{- if .EstimatedDelivery}}

Estimated Delivery: {{.EstimatedDelivery}}
{{- end}}
{{- if .DeliveryAddress}}
Delivery Address: {{.DeliveryAddress}}
{{- end}}

Thank you for shopping with BloomBasket!
`))

var statusHTML = htmltemplate.Must(htmltemplate.New("order_status_html").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Order Status Update</title>
</head>
<body style="margin:0;padding:0;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;background-color:#f4f5f7;">
<table width="100%" cellpadding="0" cellspacing="0" style="background-color:#f4f5f7;padding:40px 0;">
<tr><td align="center">
<table width="560" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;overflow:hidden;box-shadow:0 2px 8px rgba(0,0,0,0.08);">
  <tr><td style="padding:32px 40px;text-align:center;background-color:#1565c0;">
    <h1 style="margin:0;font-size:24px;color:#ffffff;">Order Status Update</h1>
  </td></tr>
  <tr><td style="padding:24px 40px 8px;">
    <p style="margin:0 0 8px;font-size:15px;color:#4a4a68;line-height:1.6;">Hello {{.CustomerName}},</p>
    <p style="margin:0 0 16px;font-size:15px;color:#1a1a2e;line-height:1.6;"><strong>{{.StatusMessage}}</strong></p>
    <p style="margin:0;font-size:14px;color:#4a4a68;">Order Number: <strong>{{.OrderNumber}}</strong></p>
  </td></tr>
  <tr><td style="padding:16px 40px 0;">
    <h2 style="margin:0 0 8px;font-size:17px;color:#1a1a2e;">Items</h2>
    {{if .Items}}{{range .Items}}<p class="item" style="margin:0 0 4px;font-size:14px;color:#4a4a68;border-top:1px solid #eeeef2;padding-top:4px;">{{.Name}} (Quantity: {{.Quantity}})</p>
    {{end}}{{else}}<p style="margin:0;font-size:14px;color:#8888a0;">No items are listed for this order.</p>
    {{end}}</td></tr>
  <tr><td style="padding:16px 40px 8px;">
    <p style="margin:0;font-size:14px;color:#1a1a2e;">Total: <strong>{{.Total}}</strong></p>
  </td></tr>
  {{if .EstimatedDelivery}}<tr><td style="padding:0 40px 8px;">
    <p style="margin:0;font-size:14px;color:#4a4a68;">Estimated Delivery: <strong>{{.EstimatedDelivery}}</strong></p>
  </td></tr>
  {{end}}{{if .DeliveryAddress}}<tr><td style="padding:0 40px 8px;">
    <p style="margin:0;font-size:14px;color:#4a4a68;">Delivery Address: {{.DeliveryAddress}}</p>
  </td></tr>
  {{end}}<tr><td style="padding:16px 40px;background-color:#f9f9fc;border-top:1px solid #eeeef2;">
    <p style="margin:0;font-size:12px;color:#aaaabc;text-align:center;">
      &copy; BloomBasket &mdash; This is an automated message, please do not reply.
    </p>
  </td></tr>
</table>
</td></tr>
</table>
</body>
</html>`))

var statusText = texttemplate.Must(texttemplate.New("order_status_text").Parse(`Order {{.OrderNumber}} Status Update: {{.Status}}

Hello {{.CustomerName}},

{{.StatusMessage}}

Order Number: {{.OrderNumber}}

Items:
{{- if .Items}}
{{- range .Items}}
- {{.Name}} (Quantity: {{.Quantity}})
{{- end}}
{{- else}}
No items are listed for this order.
{{- end}}

Total: {{.Total}}
{{- if .EstimatedDelivery}}

Estimated Delivery: {{.EstimatedDelivery}}
{{- end}}
{{- if .DeliveryAddress}}
Delivery Address: {{.DeliveryAddress}}
{{- end}}

Thank you for shopping with BloomBasket!
`))
