package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ansj1105/coin-csms-sub001/internal/domain"
	pkgkafka "github.com/ansj1105/coin-csms-sub001/pkg/kafka"
)

// Kafka topic constants for user and currency domain events.
const (
	TopicUserRegistered  = "csms.user.registered"
	TopicUserUpdated     = "csms.user.updated"
	TopicUserDeactivated = "csms.user.deactivated"
	TopicCurrencyCreated = "csms.currency.created"
	TopicCurrencyUpdated = "csms.currency.updated"
)

// Aggregate type constants.
const (
	AggregateTypeUser     = "user"
	AggregateTypeCurrency = "currency"
)

// Source identifier for events originating from this service.
const SourceAuthService = "coin-csms"

// UserRegisteredData is the payload for a user.registered event.
type UserRegisteredData struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

// UserUpdatedData is the payload for a user.updated event.
type UserUpdatedData struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
}

// UserDeactivatedData is the payload for a user.deactivated event.
type UserDeactivatedData struct {
	UserID string `json:"user_id"`
}

// CurrencyData is the payload for currency.created and currency.updated events.
type CurrencyData struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Decimals int    `json:"decimals"`
	IsActive bool   `json:"is_active"`
}

// Producer publishes domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishUserRegistered publishes a user.registered event.
func (p *Producer) PublishUserRegistered(ctx context.Context, user *domain.User) error {
	data := UserRegisteredData{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role.String(),
	}

	event, err := pkgkafka.NewEvent(TopicUserRegistered, user.ID, AggregateTypeUser, SourceAuthService, data)
	if err != nil {
		return fmt.Errorf("create user.registered event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicUserRegistered, event); err != nil {
		return fmt.Errorf("publish user.registered event: %w", err)
	}

	p.logger.DebugContext(ctx, "published user.registered event",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return nil
}

// PublishUserUpdated publishes a user.updated event.
func (p *Producer) PublishUserUpdated(ctx context.Context, user *domain.User) error {
	data := UserUpdatedData{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role.String(),
		IsActive:  user.IsActive,
	}

	event, err := pkgkafka.NewEvent(TopicUserUpdated, user.ID, AggregateTypeUser, SourceAuthService, data)
	if err != nil {
		return fmt.Errorf("create user.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicUserUpdated, event); err != nil {
		return fmt.Errorf("publish user.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published user.updated event",
		slog.String("user_id", user.ID),
	)

	return nil
}

// PublishUserDeactivated publishes a user.deactivated event.
func (p *Producer) PublishUserDeactivated(ctx context.Context, userID string) error {
	data := UserDeactivatedData{UserID: userID}

	event, err := pkgkafka.NewEvent(TopicUserDeactivated, userID, AggregateTypeUser, SourceAuthService, data)
	if err != nil {
		return fmt.Errorf("create user.deactivated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicUserDeactivated, event); err != nil {
		return fmt.Errorf("publish user.deactivated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published user.deactivated event",
		slog.String("user_id", userID),
	)

	return nil
}

// PublishCurrencyCreated publishes a currency.created event.
func (p *Producer) PublishCurrencyCreated(ctx context.Context, c *domain.Currency) error {
	return p.publishCurrency(ctx, TopicCurrencyCreated, c)
}

// PublishCurrencyUpdated publishes a currency.updated event.
func (p *Producer) PublishCurrencyUpdated(ctx context.Context, c *domain.Currency) error {
	return p.publishCurrency(ctx, TopicCurrencyUpdated, c)
}

func (p *Producer) publishCurrency(ctx context.Context, topic string, c *domain.Currency) error {
	data := CurrencyData{
		Code:     c.Code,
		Name:     c.Name,
		Decimals: c.Decimals,
		IsActive: c.IsActive,
	}

	event, err := pkgkafka.NewEvent(topic, c.Code, AggregateTypeCurrency, SourceAuthService, data)
	if err != nil {
		return fmt.Errorf("create %s event: %w", topic, err)
	}

	if err := p.kafka.Publish(ctx, topic, event); err != nil {
		return fmt.Errorf("publish %s event: %w", topic, err)
	}

	p.logger.DebugContext(ctx, "published currency event",
		slog.String("topic", topic),
		slog.String("code", c.Code),
	)

	return nil
}
