package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ukhamba-backend/internal/config"
	"ukhamba-backend/internal/models"
)

type fakeSender struct {
	sent     []EmailMessage
	failTo   string
	failures int
	attempts map[string]int
}

func (f *fakeSender) Send(ctx context.Context, msg EmailMessage) (string, error) {
	if f.attempts == nil {
		f.attempts = map[string]int{}
	}
	to := msg.To[0]
	f.attempts[to]++
	if to == f.failTo && f.attempts[to] <= f.failures {
		return "", errors.New("smtp refused")
	}
	f.sent = append(f.sent, msg)
	return "id-" + to, nil
}

func emailConfig() *config.Config {
	return &config.Config{
		EnableEmail:     true,
		ResendAPIKey:    "re_test",
		EmailFrom:       "Ukhamba <onboarding@resend.dev>",
		ContactEmail:    "info@ukhamba.org",
		DonationsEmail:  "donations@ukhamba.org",
		VolunteerEmail:  "volunteers@ukhamba.org",
		NewsletterEmail: "info@ukhamba.org",
	}
}

func TestContactSendsBothLegs(t *testing.T) {
	sender := &fakeSender{}
	svc := NewNotificationService(sender, emailConfig())

	receipt, err := svc.Contact(context.Background(), models.ContactRequest{
		Name:    "Thandi M",
		Email:   "thandi@example.com",
		Subject: "Partnership",
		Message: "Hello\nthere",
	})
	if err != nil {
		t.Fatalf("contact: %v", err)
	}
	if receipt.NotificationID == "" || receipt.ConfirmationID == "" {
		t.Fatalf("receipt incomplete: %+v", receipt)
	}
	if len(sender.sent) != 2 {
		t.Fatalf("expected 2 emails, got %d", len(sender.sent))
	}

	org := sender.sent[0]
	if org.To[0] != "info@ukhamba.org" || org.ReplyTo != "thandi@example.com" {
		t.Fatalf("unexpected org leg: %+v", org)
	}
	if !strings.Contains(org.HTML, "Hello<br>there") {
		t.Fatalf("newlines not converted: %s", org.HTML)
	}
}

func TestContactStripsMarkupFromFreeText(t *testing.T) {
	sender := &fakeSender{}
	svc := NewNotificationService(sender, emailConfig())

	_, err := svc.Contact(context.Background(), models.ContactRequest{
		Name:    "Eve",
		Email:   "eve@example.com",
		Subject: "hi",
		Message: "<script>alert(1)</script>hello",
	})
	if err != nil {
		t.Fatalf("contact: %v", err)
	}
	for _, msg := range sender.sent {
		if strings.Contains(msg.HTML, "<script>") {
			t.Fatalf("script tag leaked into email HTML: %s", msg.HTML)
		}
	}
}

func TestFailedLegIsRetriedOnce(t *testing.T) {
	sender := &fakeSender{failTo: "omar@example.com", failures: 1}
	svc := NewNotificationService(sender, emailConfig())

	receipt, err := svc.Newsletter(context.Background(), models.NewsletterRequest{Email: "omar@example.com"})
	if err != nil {
		t.Fatalf("retry should have recovered: %v", err)
	}
	if receipt.ConfirmationID == "" {
		t.Fatalf("confirmation id missing: %+v", receipt)
	}
	if sender.attempts["omar@example.com"] != 2 {
		t.Fatalf("expected 2 attempts, got %d", sender.attempts["omar@example.com"])
	}
}

func TestPartialFailureIsReported(t *testing.T) {
	sender := &fakeSender{failTo: "dana@example.com", failures: 2}
	svc := NewNotificationService(sender, emailConfig())

	receipt, err := svc.Donation(context.Background(), models.DonationRequest{
		FirstName: "Dana",
		LastName:  "K",
		Email:     "dana@example.com",
		Amount:    "250",
	})
	if !errors.Is(err, ErrPartialSend) {
		t.Fatalf("expected ErrPartialSend, got %v", err)
	}
	// The organization leg went out; its id must survive the partial failure.
	if receipt.NotificationID == "" {
		t.Fatalf("successful leg id lost: %+v", receipt)
	}
	if receipt.ConfirmationID != "" {
		t.Fatalf("failed leg must have no id: %+v", receipt)
	}
}

func TestBothLegsFailingIsNotPartial(t *testing.T) {
	sender := &fakeSender{failTo: "volunteers@ukhamba.org", failures: 4}
	svc := NewNotificationService(sender, emailConfig())

	// Fail the user leg too by pointing it at the same address.
	_, err := svc.Volunteer(context.Background(), models.VolunteerRequest{
		FullName:     "Sam",
		Email:        "volunteers@ukhamba.org",
		Phone:        "0123456789",
		Interests:    []string{"youth"},
		Availability: "weekends",
		Skills:       "teaching",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrPartialSend) {
		t.Fatalf("total failure must not be partial: %v", err)
	}
}

func TestDisabledServiceRefusesToSend(t *testing.T) {
	cfg := emailConfig()
	cfg.ResendAPIKey = ""
	svc := NewNotificationService(&fakeSender{}, cfg)

	_, err := svc.Newsletter(context.Background(), models.NewsletterRequest{Email: "a@b.co"})
	if !errors.Is(err, ErrEmailDisabled) {
		t.Fatalf("expected ErrEmailDisabled, got %v", err)
	}
}
