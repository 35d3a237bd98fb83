package notifications

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"cabanas/pkg/client"
	"cabanas/pkg/logger"
	"cabanas/pkg/model"
)

const confirmationTemplate = `<h1>Reservation confirmed</h1>
<p>Hi {{.GuestName}},</p>
<p>Your stay at <strong>{{.CabinName}}</strong> is confirmed.</p>
<ul>
  <li>Check-in: {{.CheckIn}}</li>
  <li>Check-out: {{.CheckOut}}</li>
  <li>Guests: {{.PartySize}}</li>
  <li>Reservation code: {{.ReservationID}}</li>
</ul>
<p>We look forward to hosting you in Ushuaia.</p>`

type emailPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// EmailNotifier sends the confirmation email inline through the email
// delivery provider's HTTP API.
type EmailNotifier struct {
	client *client.HttpClient
	apiKey string
	from   string
	tmpl   *template.Template
	log    *logger.Logger
}

func NewEmailNotifier(httpClient *client.HttpClient, apiKey, from string, log *logger.Logger) *EmailNotifier {
	return &EmailNotifier{
		client: httpClient,
		apiKey: apiKey,
		from:   from,
		tmpl:   template.Must(template.New("confirmation").Parse(confirmationTemplate)),
		log:    log,
	}
}

func (n *EmailNotifier) Notify(ctx context.Context, reservation *model.Reservation, cabin *model.Cabin) error {
	var body strings.Builder
	err := n.tmpl.Execute(&body, map[string]any{
		"GuestName":     reservation.Guest.Name,
		"CabinName":     cabin.Name,
		"CheckIn":       reservation.CheckIn,
		"CheckOut":      reservation.CheckOut,
		"PartySize":     reservation.PartySize,
		"ReservationID": reservation.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to render confirmation email: %w", err)
	}

	payload := emailPayload{
		From:    n.from,
		To:      []string{reservation.Guest.Email},
		Subject: fmt.Sprintf("Reservation confirmed: %s", cabin.Name),
		HTML:    body.String(),
	}

	resp, err := n.client.POST(ctx, "/emails", payload, map[string]string{
		"Authorization": "Bearer " + n.apiKey,
	})
	if err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		n.log.Error("Email provider rejected confirmation",
			"status", resp.StatusCode,
			"reservation_id", reservation.ID,
		)
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}

	return nil
}
