package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	deliverycontext "cotiza/internal/delivery/context"
	"cotiza/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	// Ordering keys keep one recipient's events in submission order.
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishProposalEvent publishes a proposal event to Google Pub/Sub, keyed
// by recipient id.
func (p *googlePubSubPublisher) PublishProposalEvent(ctx context.Context, event *service.ProposalEvent) error {
	data, err := event.MarshalEnvelope()
	if err != nil {
		return err
	}

	// Attributes allow filtered subscriptions without decoding the payload
	attributes := map[string]string{
		"event":       string(event.Type),
		"proposal_id": strconv.FormatInt(event.ProposalID, 10),
	}
	// Carrying the request ID lets worker log lines join the API's.
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		attributes["request_id"] = requestID
	}

	msg := &pubsub.Message{
		Data:        data,
		Attributes:  attributes,
		OrderingKey: event.RecipientID,
	}

	p.logger.Info("[GooglePubSub] Publishing event",
		slog.String("event", string(event.Type)),
		slog.Int64("proposal_id", event.ProposalID),
		slog.String("recipient_id", event.RecipientID),
	)

	// Publish message
	result := p.publisher.Publish(ctx, msg)

	// Wait for publish result
	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[GooglePubSub] Event published successfully",
		slog.String("event", string(event.Type)),
		slog.Int64("proposal_id", event.ProposalID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
