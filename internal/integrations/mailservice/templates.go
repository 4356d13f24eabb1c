package mailservice

import (
	"fmt"
	"html"

	"github.com/bettersystemsai/BSA-BookingService/internal/domain"
)

// customerEmailHTML письмо-подтверждение заявителю
func customerEmailHTML(booking *domain.Booking, formattedDate, displayTime string) string {
	return fmt.Sprintf(`
<div style="font-family: -apple-system, sans-serif; max-width: 600px; margin: 0 auto; padding: 32px;">
  <h1 style="margin: 0 0 8px 0;">Your Call is Booked!</h1>
  <p style="color: #64748b; margin: 0 0 24px 0;">Discovery Call with Better Systems AI</p>
  <div style="background: #f1f5f9; border-radius: 12px; padding: 24px; margin-bottom: 20px; text-align: center;">
    <p style="color: #64748b; font-size: 14px; margin: 0 0 8px 0;">SCHEDULED FOR</p>
    <p style="font-size: 22px; font-weight: bold; margin: 0;">%s</p>
    <p style="font-size: 18px; margin: 8px 0 0 0;">%s (Arizona Time)</p>
  </div>
  <ul style="line-height: 1.8; padding-left: 20px;">
    <li>15-minute discovery call</li>
    <li>We'll discuss your business automation needs</li>
    <li>You'll receive a calendar invite with the meeting link shortly before your call</li>
  </ul>
  <p style="color: #94a3b8; font-size: 12px; margin-top: 30px;">Better Systems AI | bettersystems.ai</p>
</div>`, html.EscapeString(formattedDate), html.EscapeString(displayTime))
}

// adminEmailHTML уведомление администратору с данными заявителя
func adminEmailHTML(booking *domain.Booking, formattedDate, displayTime string) string {
	return fmt.Sprintf(`
<div style="font-family: -apple-system, sans-serif; max-width: 600px; margin: 0 auto; padding: 32px;">
  <h1 style="margin: 0 0 24px 0;">New Discovery Call Booked</h1>
  <table style="width: 100%%; border-collapse: collapse;">
    <tr><td style="color: #64748b; padding: 6px 0;">When:</td><td style="padding: 6px 0;"><strong>%s at %s</strong></td></tr>
    <tr><td style="color: #64748b; padding: 6px 0;">Name:</td><td style="padding: 6px 0;">%s</td></tr>
    <tr><td style="color: #64748b; padding: 6px 0;">Email:</td><td style="padding: 6px 0;">%s</td></tr>
    <tr><td style="color: #64748b; padding: 6px 0;">Company:</td><td style="padding: 6px 0;">%s</td></tr>
    <tr><td style="color: #64748b; padding: 6px 0;">Interest:</td><td style="padding: 6px 0;">%s</td></tr>
    <tr><td style="color: #64748b; padding: 6px 0;">Notes:</td><td style="padding: 6px 0;">%s</td></tr>
  </table>
</div>`,
		html.EscapeString(formattedDate),
		html.EscapeString(displayTime),
		html.EscapeString(booking.Name),
		html.EscapeString(booking.Email),
		html.EscapeString(orDefault(booking.Company, "Not provided")),
		html.EscapeString(orDefault(booking.Interest, "Not specified")),
		html.EscapeString(orDefault(booking.Notes, "No notes")),
	)
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
