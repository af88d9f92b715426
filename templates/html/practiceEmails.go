package templates

import (
	"fmt"
	"html"
)

// RenderHearingReminderEmail generates the HTML for the day-before hearing reminder
func RenderHearingReminderEmail(lawyerName, hearingTitle, caseNumber, courtName, date, startTime string) string {
	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1, minimum-scale=1, maximum-scale=1">
  <title>Hearing Tomorrow - LawDesk</title>
  <style type="text/css">
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #f4f5f7; }
    .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; }
    .header { background: linear-gradient(135deg, #1e3a8a 0%%, #312e81 100%%); padding: 40px 30px; text-align: center; }
    .header h1 { color: #fff; margin: 0; font-size: 24px; font-weight: 700; }
    .content { padding: 40px 30px; color: #1f2937; }
    .content h2 { color: #111827; margin-top: 0; }
    .info-grid { display: table; width: 100%%; margin: 20px 0; }
    .info-row { display: table-row; }
    .info-label { display: table-cell; padding: 10px 15px 10px 0; color: #6b7280; font-size: 14px; width: 40%%; }
    .info-value { display: table-cell; padding: 10px 0; color: #111827; font-size: 14px; font-weight: 600; }
    .footer { padding: 30px; text-align: center; color: #6b7280; font-size: 12px; border-top: 1px solid #e5e7eb; }
    .footer a { color: #1e3a8a; text-decoration: none; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Hearing Tomorrow</h1>
    </div>
    <div class="content">
      <h2>Hi %s,</h2>
      <p>This is a reminder that you have a hearing scheduled for tomorrow.</p>
      <div class="info-grid">
        <div class="info-row">
          <div class="info-label">Hearing</div>
          <div class="info-value">%s</div>
        </div>
        <div class="info-row">
          <div class="info-label">Case</div>
          <div class="info-value">%s</div>
        </div>
        <div class="info-row">
          <div class="info-label">Court</div>
          <div class="info-value">%s</div>
        </div>
        <div class="info-row">
          <div class="info-label">Date</div>
          <div class="info-value">%s</div>
        </div>
        <div class="info-row">
          <div class="info-label">Start Time</div>
          <div class="info-value">%s</div>
        </div>
      </div>
      <p style="margin-top: 30px; color: #6b7280; font-size: 14px;">Check your dashboard for the full day's schedule and any filing tasks still pending for this case.</p>
    </div>
    <div class="footer">
      <p>&copy; LawDesk | <a href="https://www.lawdesk.app">lawdesk.app</a></p>
    </div>
  </div>
</body>
</html>`,
		html.EscapeString(lawyerName),
		html.EscapeString(hearingTitle),
		html.EscapeString(caseNumber),
		html.EscapeString(courtName),
		html.EscapeString(date),
		html.EscapeString(startTime),
	)
}

// RenderDeadlineEscalationEmail generates the HTML for the red-zone deadline escalation
func RenderDeadlineEscalationEmail(assigneeName, deadlineTitle, caseNumber, dueDate string, daysRemaining int) string {
	urgency := fmt.Sprintf("%d day(s) remaining", daysRemaining)
	if daysRemaining < 0 {
		urgency = fmt.Sprintf("overdue by %d day(s)", -daysRemaining)
	} else if daysRemaining == 0 {
		urgency = "due today"
	}

	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1, minimum-scale=1, maximum-scale=1">
  <title>Urgent Deadline - LawDesk</title>
  <style type="text/css">
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #f4f5f7; }
    .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; }
    .header { background: linear-gradient(135deg, #b91c1c 0%%, #7f1d1d 100%%); padding: 40px 30px; text-align: center; }
    .header h1 { color: #fff; margin: 0; font-size: 24px; font-weight: 700; }
    .content { padding: 40px 30px; color: #1f2937; }
    .content h2 { color: #111827; margin-top: 0; }
    .alert-box { background: #fef2f2; border: 1px solid #fecaca; border-radius: 8px; padding: 15px; margin: 20px 0; }
    .alert-box p { margin: 0; color: #b91c1c; font-size: 14px; font-weight: 600; }
    .info-grid { display: table; width: 100%%; margin: 20px 0; }
    .info-row { display: table-row; }
    .info-label { display: table-cell; padding: 10px 15px 10px 0; color: #6b7280; font-size: 14px; width: 40%%; }
    .info-value { display: table-cell; padding: 10px 0; color: #111827; font-size: 14px; font-weight: 600; }
    .footer { padding: 30px; text-align: center; color: #6b7280; font-size: 12px; border-top: 1px solid #e5e7eb; }
    .footer a { color: #1e3a8a; text-decoration: none; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Urgent Statutory Deadline</h1>
    </div>
    <div class="content">
      <h2>Hi %s,</h2>
      <div class="alert-box">
        <p>This deadline is %s.</p>
      </div>
      <div class="info-grid">
        <div class="info-row">
          <div class="info-label">Deadline</div>
          <div class="info-value">%s</div>
        </div>
        <div class="info-row">
          <div class="info-label">Case</div>
          <div class="info-value">%s</div>
        </div>
        <div class="info-row">
          <div class="info-label">Due Date</div>
          <div class="info-value">%s</div>
        </div>
      </div>
      <p style="margin-top: 30px; color: #6b7280; font-size: 14px;">Mark the deadline complete in LawDesk once the filing is done so escalations stop.</p>
    </div>
    <div class="footer">
      <p>&copy; LawDesk | <a href="https://www.lawdesk.app">lawdesk.app</a></p>
    </div>
  </div>
</body>
</html>`,
		html.EscapeString(assigneeName),
		html.EscapeString(urgency),
		html.EscapeString(deadlineTitle),
		html.EscapeString(caseNumber),
		html.EscapeString(dueDate),
	)
}
