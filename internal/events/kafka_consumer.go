package events

import (
	"context"
	"errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/hotel-desk/service-booking/internal/domain"
	bookingDomain "github.com/hotel-desk/service-booking/internal/domain/booking"
	"github.com/hotel-desk/service-booking/internal/messaging"
)

// BookingCommands is the part of the booking service driven by commands.
type BookingCommands interface {
	ConfirmBooking(ctx context.Context, bookingID int64) (bookingDomain.Booking, error)
	CancelBooking(ctx context.Context, bookingID int64) (bookingDomain.Booking, error)
}

// BookingCommandConsumer listens to booking commands sent by a front desk or
// channel manager and applies them to stored bookings.
type BookingCommandConsumer struct {
	consumer *messaging.Consumer
	service  BookingCommands
	logger   *zap.Logger
}

// NewBookingCommandConsumer creates a new BookingCommandConsumer.
func NewBookingCommandConsumer(
	brokers []string,
	groupID string,
	service BookingCommands,
	logger *zap.Logger,
) *BookingCommandConsumer {
	consumer := messaging.NewConsumer(brokers, groupID, messaging.TopicBookingCommands, logger)
	return &BookingCommandConsumer{
		consumer: consumer,
		service:  service,
		logger:   logger,
	}
}

// Start begins consuming booking commands. This blocks until the context is cancelled.
func (c *BookingCommandConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *BookingCommandConsumer) Close() error {
	return c.consumer.Close()
}

func (c *BookingCommandConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	cloudEvent, err := messaging.ParseCloudEvent(msg.Value)
	if err != nil {
		c.logger.Error("failed to parse cloud event from command topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // Don't retry malformed messages
	}
	return c.handleCommand(ctx, cloudEvent)
}

func (c *BookingCommandConsumer) handleCommand(ctx context.Context, cloudEvent messaging.CloudEvent) error {
	var apply func(context.Context, int64) (bookingDomain.Booking, error)
	switch cloudEvent.Type {
	case messaging.CommandConfirmBooking:
		apply = c.service.ConfirmBooking
	case messaging.CommandCancelBooking:
		apply = c.service.CancelBooking
	default:
		c.logger.Debug("ignoring unhandled command type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}

	var cmd messaging.BookingCommand
	if err := cloudEvent.ParseData(&cmd); err != nil {
		c.logger.Error("failed to parse booking command data",
			zap.String("type", cloudEvent.Type),
			zap.Error(err),
		)
		return nil // Don't retry malformed data
	}

	c.logger.Info("processing booking command",
		zap.String("type", cloudEvent.Type),
		zap.Int64("booking_id", cmd.BookingID),
		zap.String("requested_by", cmd.RequestedBy),
	)

	bk, err := apply(ctx, cmd.BookingID)
	if err != nil {
		// Rejected commands are committed; other failures are retried.
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) {
			c.logger.Warn("booking command rejected",
				zap.String("type", cloudEvent.Type),
				zap.Int64("booking_id", cmd.BookingID),
				zap.Error(err),
			)
			return nil
		}
		c.logger.Error("failed to apply booking command",
			zap.String("type", cloudEvent.Type),
			zap.Int64("booking_id", cmd.BookingID),
			zap.Error(err),
		)
		return err
	}

	c.logger.Info("booking command applied",
		zap.Int64("booking_id", bk.ID),
		zap.String("status", bk.Status.String()),
	)
	return nil
}
