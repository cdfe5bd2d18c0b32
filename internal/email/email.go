package email

import (
	"context"
	"fmt"

	"github.com/astralvoyages/spacebooking/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("send email to user %s: booking %s %s (%s)\n", event.UserID, event.BookingID, event.Type, event.Destination)
	return nil
}
