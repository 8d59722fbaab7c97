package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
)

const EventDeliveryReady = "delivery.ready"

// Publisher is the subset of the SNS client used here.
type Publisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Presigner is the subset of the S3 presign client used here.
type Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type DeliveryEvent struct {
	Type          string          `json:"type"`
	OrderID       string          `json:"order_id"`
	SessionID     string          `json:"session_id"`
	GalleryID     string          `json:"gallery_id"`
	ClientID      string          `json:"client_id"`
	ClientEmail   string          `json:"client_email"`
	Amount        string          `json:"amount"`
	Currency      string          `json:"currency"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	LinksExpireAt time.Time       `json:"links_expire_at"`
	Photos        []DeliveryPhoto `json:"photos"`
}

type DeliveryPhoto struct {
	PhotoID  string `json:"photo_id"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// SNSDeliveryNotifier publishes a delivery.ready event carrying time-limited
// download links for every photo the client selected.
type SNSDeliveryNotifier struct {
	galleries application.GalleryRepository
	publisher Publisher
	presigner Presigner
	topicARN  string
	bucket    string
	expiry    time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

func NewSNSDeliveryNotifier(
	galleries application.GalleryRepository,
	publisher Publisher,
	presigner Presigner,
	topicARN, bucket string,
	expiry time.Duration,
	logger *slog.Logger,
) *SNSDeliveryNotifier {
	return &SNSDeliveryNotifier{
		galleries: galleries,
		publisher: publisher,
		presigner: presigner,
		topicARN:  topicARN,
		bucket:    bucket,
		expiry:    expiry,
		now:       time.Now,
		logger:    logger,
	}
}

var _ application.DeliveryNotifier = (*SNSDeliveryNotifier)(nil)

func (n *SNSDeliveryNotifier) NotifyPaid(ctx context.Context, order *domain.Order) error {
	event, err := n.buildEvent(ctx, order)
	if err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal delivery event: %w", err)
	}

	out, err := n.publisher.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]snstypes.MessageAttributeValue{
			"event_type": {
				DataType:    aws.String("String"),
				StringValue: aws.String(EventDeliveryReady),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("sns publish failed for topic %s: %w", n.topicARN, err)
	}

	n.logger.Info("delivery notification published",
		"order_id", order.ID,
		"photos", len(event.Photos),
		"message_id", aws.ToString(out.MessageId))
	return nil
}

func (n *SNSDeliveryNotifier) buildEvent(ctx context.Context, order *domain.Order) (*DeliveryEvent, error) {
	client, err := n.galleries.FindClient(ctx, order.ClientID)
	if err != nil {
		return nil, fmt.Errorf("load client: %w", err)
	}

	photos, err := n.galleries.ListSelectedPhotos(ctx, order.GalleryID, order.ClientID)
	if err != nil {
		return nil, fmt.Errorf("load selected photos: %w", err)
	}

	event := &DeliveryEvent{
		Type:          EventDeliveryReady,
		OrderID:       order.ID,
		SessionID:     order.SessionID,
		GalleryID:     order.GalleryID,
		ClientID:      order.ClientID,
		ClientEmail:   client.Email,
		Amount:        order.Total.Decimal(),
		Currency:      order.Total.Currency,
		PaidAt:        order.PaidAt,
		LinksExpireAt: n.now().Add(n.expiry).UTC(),
		Photos:        make([]DeliveryPhoto, 0, len(photos)),
	}

	for _, photo := range photos {
		url, err := n.downloadURL(ctx, photo)
		if err != nil {
			return nil, err
		}
		event.Photos = append(event.Photos, DeliveryPhoto{
			PhotoID:  photo.ID,
			Filename: photo.Filename,
			URL:      url,
		})
	}
	return event, nil
}

func (n *SNSDeliveryNotifier) downloadURL(ctx context.Context, photo domain.Photo) (string, error) {
	if n.bucket == "" || photo.StorageKey == "" {
		return photo.OriginalURL, nil
	}

	req, err := n.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(n.bucket),
		Key:    aws.String(photo.StorageKey),
	}, s3.WithPresignExpires(n.expiry))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", photo.StorageKey, err)
	}
	return req.URL, nil
}

// LogNotifier only records paid orders. Used when no delivery topic is set.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyPaid(_ context.Context, order *domain.Order) error {
	n.logger.Info("order paid, delivery topic not configured",
		"order_id", order.ID,
		"gallery_id", order.GalleryID,
		"amount", order.Total.String())
	return nil
}
