// Package notification - gửi email cảnh báo vận hành qua SMTP.
package notification

import (
	"fmt"
	"strings"

	catalogmodels "bioma_system/internal/api/catalog/models"
	"bioma_system/config"

	"gopkg.in/gomail.v2"
)

// Mailer gửi email qua SMTP từ cấu hình server.
// SMTP_Host trống nghĩa là môi trường không gửi mail — mọi Send trở thành no-op.
type Mailer struct {
	host       string
	port       int
	user       string
	password   string
	from       string
	recipients []string
}

// NewMailer tạo Mailer từ cấu hình.
func NewMailer(cfg *config.Configuration) *Mailer {
	var recipients []string
	for _, r := range strings.Split(cfg.AlertRecipients, ",") {
		if r = strings.TrimSpace(r); r != "" {
			recipients = append(recipients, r)
		}
	}
	return &Mailer{
		host:       cfg.SMTP_Host,
		port:       cfg.SMTP_Port,
		user:       cfg.SMTP_User,
		password:   cfg.SMTP_Password,
		from:       cfg.SMTP_From,
		recipients: recipients,
	}
}

// Enabled cho biết mailer có cấu hình đủ để gửi không.
func (m *Mailer) Enabled() bool {
	return m.host != "" && len(m.recipients) > 0
}

// SendLowStockDigest gửi danh sách sản phẩm sắp hết hàng cho người phụ trách kho.
func (m *Mailer) SendLowStockDigest(products []catalogmodels.Product) error {
	if !m.Enabled() || len(products) == 0 {
		return nil
	}

	var rows strings.Builder
	for _, p := range products {
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding:4px 12px;">%s</td><td style="padding:4px 12px;text-align:right;">%d</td><td style="padding:4px 12px;text-align:right;">%d</td></tr>`,
			p.Name, p.Stock, p.MinStock))
	}

	htmlContent := fmt.Sprintf(`
		<p>Các sản phẩm sau đã chạm ngưỡng tồn kho cảnh báo:</p>
		<table style="border-collapse:collapse;">
			<tr><th style="padding:4px 12px;text-align:left;">Sản phẩm</th><th style="padding:4px 12px;">Tồn</th><th style="padding:4px 12px;">Ngưỡng</th></tr>
			%s
		</table>`, rows.String())

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.recipients...)
	msg.SetHeader("Subject", fmt.Sprintf("[Bioma] %d sản phẩm sắp hết hàng", len(products)))
	msg.SetBody("text/html", htmlContent)

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.password)
	return dialer.DialAndSend(msg)
}
