package reminder

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Notifier interface {
	Notify(ctx context.Context, b models.Booking, salonName string) error
}

func Message(b models.Booking, salonName string) string {
	return fmt.Sprintf(
		"Hola %s, te recordamos tu cita de %s en %s el %s a las %s.",
		b.Nombre, b.Servicio, salonName, b.Fecha, b.Hora,
	)
}

// ----------------------------------------------------
// Twilio SMS
// ----------------------------------------------------

type TwilioNotifier struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioNotifier(accountSID, authToken, from string) *TwilioNotifier {
	return &TwilioNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
	}
}

func (n *TwilioNotifier) Notify(_ context.Context, b models.Booking, salonName string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(b.Telefono)
	params.SetFrom(n.from)
	params.SetBody(Message(b, salonName))

	if _, err := n.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio: send to %s: %w", b.Telefono, err)
	}
	return nil
}

// ----------------------------------------------------
// Log only
// ----------------------------------------------------

// LogNotifier writes reminders to the log; used when no SMS provider is configured.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, b models.Booking, salonName string) error {
	n.log.Info("reminder",
		zap.String("booking_id", b.ID),
		zap.String("to", b.Telefono),
		zap.String("body", Message(b, salonName)),
	)
	return nil
}
