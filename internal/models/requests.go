package models

// Form payloads accepted by the notification endpoints. The frontend
// validates before submitting; the handlers re-validate via binding tags so a
// malformed direct POST cannot reach the email provider.

type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=2"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,min=2"`
	Message string `json:"message" binding:"required,min=10"`
}

type DonationRequest struct {
	FirstName string `json:"firstName" binding:"required,min=2"`
	LastName  string `json:"lastName" binding:"required,min=2"`
	Email     string `json:"email" binding:"required,email"`
	Amount    string `json:"amount" binding:"required"`
	IsMonthly bool   `json:"isMonthly"`
	Message   string `json:"message"`
}

type VolunteerRequest struct {
	FullName     string   `json:"fullName" binding:"required,min=2"`
	Email        string   `json:"email" binding:"required,email"`
	Phone        string   `json:"phone" binding:"required,min=7"`
	Interests    []string `json:"interests" binding:"required,min=1"`
	Availability string   `json:"availability" binding:"required"`
	Skills       string   `json:"skills" binding:"required,min=5"`
}

type NewsletterRequest struct {
	Email string `json:"email" binding:"required,email"`
}
