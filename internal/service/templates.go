package service

import (
	"fmt"
	"strings"
	"time"
)

// htmlEscaper escapes HTML special characters in submitted values before they
// are interpolated into email bodies. Submissions are untrusted input.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// firmNotificationEmail builds the internal intake notification: a structured
// summary of every submitted field, addressed to the firm's intake inbox,
// with reply-to set to the submitter so the firm can answer directly.
func firmNotificationEmail(sub *Submission, intakeEmail string) EmailMessage {
	html := fmt.Sprintf(
		"<h2>New Case Evaluation Request</h2>"+
			"<table cellpadding=\"6\">"+
			"<tr><td><b>Name</b></td><td>%s %s</td></tr>"+
			"<tr><td><b>Company</b></td><td>%s</td></tr>"+
			"<tr><td><b>Email</b></td><td>%s</td></tr>"+
			"<tr><td><b>Phone</b></td><td>%s</td></tr>"+
			"<tr><td><b>Subject</b></td><td>%s</td></tr>"+
			"</table>"+
			"<h3>Message</h3><p>%s</p>",
		escapeHTML(sub.FirstName),
		escapeHTML(sub.LastName),
		escapeHTML(sub.Company),
		escapeHTML(sub.Email),
		escapeHTML(sub.Phone),
		escapeHTML(sub.Subject),
		escapeHTML(sub.Message),
	)

	return EmailMessage{
		To:      intakeEmail,
		Subject: fmt.Sprintf("New Case Evaluation: %s", sub.Subject),
		HTML:    html,
		ReplyTo: sub.Email,
	}
}

// clientConfirmationEmail builds the acknowledgment sent back to the
// submitter. Fixed subject, no reply-to override.
func clientConfirmationEmail(sub *Submission, now time.Time) EmailMessage {
	html := fmt.Sprintf(
		"<p>Dear %s,</p>"+
			"<p>Thank you for contacting Caldwell &amp; Associates regarding "+
			"<b>%s</b>. We received your request on %s and a member of our team "+
			"will review it and get back to you within one business day.</p>"+
			"<p>Sincerely,<br>Caldwell &amp; Associates</p>",
		escapeHTML(sub.FirstName),
		escapeHTML(sub.Subject),
		now.Format("January 2, 2006"),
	)

	return EmailMessage{
		To:      sub.Email,
		Subject: "Thank you for contacting Caldwell & Associates",
		HTML:    html,
	}
}

// clientConfirmationSMS builds the plain-text confirmation message
func clientConfirmationSMS(sub *Submission, firmPhone string) string {
	return fmt.Sprintf(
		"Hi %s, thank you for contacting Caldwell & Associates. "+
			"We received your request (%q) and will be in touch shortly. "+
			"Questions? Call us at %s.",
		sub.FirstName,
		sub.Subject,
		firmPhone,
	)
}
