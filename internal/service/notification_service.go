package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"

	"ukhamba-backend/internal/config"
	"ukhamba-backend/internal/models"
	"ukhamba-backend/pkg/logger"
	"ukhamba-backend/pkg/validator"
)

// ErrPartialSend marks a notification where one of the two emails went out
// and the other did not, even after a retry. The receipt identifies the leg
// that succeeded.
var ErrPartialSend = errors.New("one of two emails failed to send")

var ErrEmailDisabled = errors.New("email service is disabled or not configured")

// EmailSender is the transport behind the notification service.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) (string, error)
}

type EmailMessage struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// ResendSender sends through the Resend API.
type ResendSender struct {
	client *resend.Client
}

func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey)}
}

func (s *ResendSender) Send(ctx context.Context, msg EmailMessage) (string, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if msg.ReplyTo != "" {
		params.ReplyTo = msg.ReplyTo
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("resend send failed: %w", err)
	}
	return sent.Id, nil
}

// SendReceipt carries the provider ids of the organization notification and
// the end-user confirmation.
type SendReceipt struct {
	NotificationID string `json:"notificationId,omitempty"`
	ConfirmationID string `json:"confirmationId,omitempty"`
}

// NotificationService turns validated form payloads into the two outbound
// emails each form produces: one to the organization, one confirming to the
// submitter. The two sends are one logical operation; a failed leg is
// retried once and reported explicitly if it still fails.
type NotificationService struct {
	sender  EmailSender
	cfg     *config.Config
	enabled bool

	now func() time.Time
}

func NewNotificationService(sender EmailSender, cfg *config.Config) *NotificationService {
	return &NotificationService{
		sender:  sender,
		cfg:     cfg,
		enabled: cfg.EnableEmail && cfg.ResendAPIKey != "",
		now:     time.Now,
	}
}

func (s *NotificationService) Enabled() bool {
	return s != nil && s.enabled
}

func (s *NotificationService) Contact(ctx context.Context, req models.ContactRequest) (SendReceipt, error) {
	name := clean(req.Name)
	subject := clean(req.Subject)
	message := nl2br(clean(req.Message))

	notification := EmailMessage{
		From:    s.cfg.EmailFrom,
		To:      []string{s.cfg.ContactEmail},
		ReplyTo: req.Email,
		Subject: "New Contact Form Submission: " + subject,
		HTML: "<h2>New Contact Form Submission</h2>" +
			"<p><strong>Name:</strong> " + name + "</p>" +
			"<p><strong>Email:</strong> " + req.Email + "</p>" +
			"<p><strong>Subject:</strong> " + subject + "</p>" +
			"<p><strong>Message:</strong></p>" +
			"<p>" + message + "</p>" +
			"<hr>" +
			"<p><em>Reply to this message by contacting " + req.Email + " directly.</em></p>",
	}

	confirmation := EmailMessage{
		From:    s.cfg.EmailFrom,
		To:      []string{req.Email},
		Subject: "Thank you for contacting Ukhamba",
		HTML: "<h1>Thank you for reaching out, " + name + "!</h1>" +
			"<p>We have received your message about \"" + subject + "\" and will get back to you as soon as possible.</p>" +
			"<p>Your message:</p>" +
			"<blockquote style=\"border-left: 3px solid #ddd; padding-left: 15px; margin: 20px 0; color: #666;\">" + message + "</blockquote>" +
			"<p>Best regards,<br>The Ukhamba Team</p>",
	}

	return s.sendPair(ctx, "contact", notification, confirmation)
}

func (s *NotificationService) Donation(ctx context.Context, req models.DonationRequest) (SendReceipt, error) {
	firstName := clean(req.FirstName)
	fullName := firstName + " " + clean(req.LastName)
	amount := clean(req.Amount)
	message := clean(req.Message)

	donationType := "one-time"
	if req.IsMonthly {
		donationType = "monthly recurring"
	}

	messageRow := ""
	if message != "" {
		messageRow = "<p><strong>Message:</strong> " + message + "</p>"
	}

	notification := EmailMessage{
		From:    s.cfg.EmailFrom,
		To:      []string{s.cfg.DonationsEmail},
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("New Donation: R%s (%s)", amount, donationType),
		HTML: "<h2>New Donation Received</h2>" +
			"<p><strong>Donor:</strong> " + fullName + "</p>" +
			"<p><strong>Email:</strong> " + req.Email + "</p>" +
			"<p><strong>Amount:</strong> R" + amount + "</p>" +
			"<p><strong>Type:</strong> " + donationType + "</p>" +
			messageRow +
			"<p><strong>Date:</strong> " + s.now().Format(time.RFC1123) + "</p>" +
			"<hr>" +
			"<p><em>Please process this donation and send receipt if needed.</em></p>",
	}

	confirmation := EmailMessage{
		From:    s.cfg.EmailFrom,
		To:      []string{req.Email},
		Subject: "Thank you for your generous donation!",
		HTML: "<h1>Thank you, " + firstName + "!</h1>" +
			"<p>Your " + donationType + " donation of <strong>R" + amount + "</strong> has been received and will make a meaningful impact in our community.</p>" +
			"<h2>Donation Details:</h2>" +
			"<p><strong>Amount:</strong> R" + amount + "</p>" +
			"<p><strong>Type:</strong> " + donationType + "</p>" +
			"<p><strong>Date:</strong> " + s.now().Format("2 January 2006") + "</p>" +
			messageRow +
			"<p>Best regards,<br>The Ukhamba Team</p>",
	}

	return s.sendPair(ctx, "donation", notification, confirmation)
}

func (s *NotificationService) Volunteer(ctx context.Context, req models.VolunteerRequest) (SendReceipt, error) {
	fullName := clean(req.FullName)
	phone := clean(req.Phone)
	interests := clean(strings.Join(req.Interests, ", "))
	availability := clean(req.Availability)
	skills := nl2br(clean(req.Skills))

	notification := EmailMessage{
		From:    s.cfg.EmailFrom,
		To:      []string{s.cfg.VolunteerEmail},
		ReplyTo: req.Email,
		Subject: "New Volunteer Application: " + fullName,
		HTML: "<h2>New Volunteer Application</h2>" +
			"<p><strong>Name:</strong> " + fullName + "</p>" +
			"<p><strong>Email:</strong> " + req.Email + "</p>" +
			"<p><strong>Phone:</strong> " + phone + "</p>" +
			"<p><strong>Interests:</strong> " + interests + "</p>" +
			"<p><strong>Availability:</strong> " + availability + "</p>" +
			"<p><strong>Skills:</strong></p>" +
			"<p>" + skills + "</p>" +
			"<hr>" +
			"<p><em>Please follow up with " + fullName + " at " + req.Email + " or " + phone + ".</em></p>",
	}

	confirmation := EmailMessage{
		From:    s.cfg.EmailFrom,
		To:      []string{req.Email},
		Subject: "Thank you for your volunteer application!",
		HTML: "<h1>Thank you for applying to volunteer, " + fullName + "!</h1>" +
			"<p>We're excited about your interest in joining the Ukhamba community and making a positive impact.</p>" +
			"<h2>Your Application Details:</h2>" +
			"<p><strong>Areas of Interest:</strong> " + interests + "</p>" +
			"<p><strong>Availability:</strong> " + availability + "</p>" +
			"<p><strong>Skills:</strong> " + skills + "</p>" +
			"<p>Our volunteer coordinator will review your application and get back to you within 3-5 business days with next steps.</p>" +
			"<p>Thank you for choosing to make a difference with Ukhamba!</p>" +
			"<p>Best regards,<br>The Ukhamba Volunteer Team</p>",
	}

	return s.sendPair(ctx, "volunteer", notification, confirmation)
}

func (s *NotificationService) Newsletter(ctx context.Context, req models.NewsletterRequest) (SendReceipt, error) {
	confirmation := EmailMessage{
		From:    s.cfg.EmailFrom,
		To:      []string{req.Email},
		Subject: "Welcome to Ukhamba Newsletter!",
		HTML: "<h1>Welcome to the Ukhamba Community!</h1>" +
			"<p>Thank you for subscribing to our newsletter. You'll now receive updates about:</p>" +
			"<ul>" +
			"<li>Our community programs and initiatives</li>" +
			"<li>Upcoming events and workshops</li>" +
			"<li>Ways to get involved and make a difference</li>" +
			"<li>Impact stories from our community</li>" +
			"</ul>" +
			"<p>We're excited to have you on this journey with us as we work together to create positive change across South Africa.</p>" +
			"<p>Best regards,<br>The Ukhamba Team</p>" +
			"<hr>" +
			"<p style=\"font-size: 12px; color: #666;\">You can unsubscribe from this newsletter at any time by contacting us.</p>",
	}

	notification := EmailMessage{
		From:    s.cfg.EmailFrom,
		To:      []string{s.cfg.NewsletterEmail},
		Subject: "New Newsletter Subscription",
		HTML: "<h2>New Newsletter Subscription</h2>" +
			"<p>A new subscriber has joined the newsletter:</p>" +
			"<p><strong>Email:</strong> " + req.Email + "</p>" +
			"<p><strong>Subscribed at:</strong> " + s.now().Format(time.RFC1123) + "</p>",
	}

	return s.sendPair(ctx, "newsletter", notification, confirmation)
}

// sendPair sends the organization notification and the user confirmation as
// one logical operation. A failed leg gets one retry; if it still fails the
// caller receives ErrPartialSend along with the id of the leg that went out.
func (s *NotificationService) sendPair(ctx context.Context, kind string, notification, confirmation EmailMessage) (SendReceipt, error) {
	if !s.Enabled() {
		return SendReceipt{}, ErrEmailDisabled
	}

	var receipt SendReceipt
	notifyErr := s.sendWithRetry(ctx, notification, &receipt.NotificationID)
	confirmErr := s.sendWithRetry(ctx, confirmation, &receipt.ConfirmationID)

	switch {
	case notifyErr == nil && confirmErr == nil:
		logger.Info("Notification emails sent", map[string]interface{}{
			"kind":            kind,
			"notification_id": receipt.NotificationID,
			"confirmation_id": receipt.ConfirmationID,
		})
		return receipt, nil
	case notifyErr != nil && confirmErr != nil:
		return receipt, fmt.Errorf("failed to send %s emails: %w", kind, notifyErr)
	case notifyErr != nil:
		logger.Error(notifyErr, "Organization notification failed after retry", map[string]interface{}{"kind": kind})
		return receipt, fmt.Errorf("%w: organization notification failed: %s", ErrPartialSend, notifyErr)
	default:
		logger.Error(confirmErr, "User confirmation failed after retry", map[string]interface{}{"kind": kind})
		return receipt, fmt.Errorf("%w: user confirmation failed: %s", ErrPartialSend, confirmErr)
	}
}

func (s *NotificationService) sendWithRetry(ctx context.Context, msg EmailMessage, id *string) error {
	sentID, err := s.sender.Send(ctx, msg)
	if err != nil {
		sentID, err = s.sender.Send(ctx, msg)
	}
	if err != nil {
		return err
	}
	*id = sentID
	return nil
}

// clean strips markup from user-supplied text before it is embedded in email
// HTML.
func clean(s string) string {
	return strings.TrimSpace(validator.SanitizeString(s))
}

func nl2br(s string) string {
	return strings.ReplaceAll(s, "\n", "<br>")
}
