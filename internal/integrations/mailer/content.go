package mailer

import "fmt"

// BookingConfirmation данные для письма-подтверждения бронирования
type BookingConfirmation struct {
	UserName   string
	CentreName string
	Location   string
	SportName  string
	CourtName  string
	Date       string
	StartTime  string
	EndTime    string
}

// ConfirmationSubject тема письма-подтверждения
const ConfirmationSubject = "Your Quick Court Slot is Confirmed"

// BuildBookingConfirmation собирает HTML тело письма-подтверждения
func BuildBookingConfirmation(c BookingConfirmation) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2e7d32;">Booking Confirmed!</h2>
  <p>Hi %s,</p>
  <p>Your court booking has been confirmed. Here are the details:</p>
  <table style="border-collapse: collapse; width: 100%%;">
    <tr><td style="padding: 6px 12px; font-weight: bold;">Centre</td><td style="padding: 6px 12px;">%s</td></tr>
    <tr><td style="padding: 6px 12px; font-weight: bold;">Location</td><td style="padding: 6px 12px;">%s</td></tr>
    <tr><td style="padding: 6px 12px; font-weight: bold;">Sport</td><td style="padding: 6px 12px;">%s</td></tr>
    <tr><td style="padding: 6px 12px; font-weight: bold;">Court</td><td style="padding: 6px 12px;">%s</td></tr>
    <tr><td style="padding: 6px 12px; font-weight: bold;">Date</td><td style="padding: 6px 12px;">%s</td></tr>
    <tr><td style="padding: 6px 12px; font-weight: bold;">Time</td><td style="padding: 6px 12px;">%s &ndash; %s</td></tr>
  </table>
  <p>Please arrive 10 minutes before your slot. See you on the court!</p>
  <p style="color: #888; font-size: 12px;">Quick Court &middot; this is an automated message, please do not reply.</p>
</div>`,
		c.UserName,
		c.CentreName,
		c.Location,
		c.SportName,
		c.CourtName,
		c.Date,
		c.StartTime,
		c.EndTime,
	)
}
