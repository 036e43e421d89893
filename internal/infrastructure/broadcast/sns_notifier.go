package broadcast

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"accuracy_wms/internal/domain/entities"
	"accuracy_wms/internal/infrastructure/tenancy"
	"accuracy_wms/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSCartonNotifier publishes carton lifecycle events to an SNS topic, from
// which the scanner frontends fan out per tenant. Delivery is best-effort:
// a publish failure is logged, never returned, so the validation flow is
// not coupled to the broker.
//
// With no topic configured (CARTON_EVENTS_TOPIC_ARN unset) events are only
// logged, which keeps local development broker-free.

type SNSCartonNotifier struct {
	client   *sns.Client
	topicARN string
}

var _ interfaces.ICartonNotifier = (*SNSCartonNotifier)(nil)

func NewSNSCartonNotifier(client *sns.Client, topicARN string) *SNSCartonNotifier {
	if topicARN == "" {
		log.Printf("[broadcast][sns] no topic configured; carton events will be log-only")
	}
	return &SNSCartonNotifier{client: client, topicARN: topicARN}
}

type cartonEvent struct {
	Event            string     `json:"event"`
	Tenant           string     `json:"tenant,omitempty"`
	CartonID         string     `json:"carton_id"`
	Barcode          string     `json:"barcode"`
	InternalSKU      string     `json:"internal_sku"`
	ValidationStatus string     `json:"validation_status"`
	Status           string     `json:"status"`
	ProcessedAt      *time.Time `json:"processed_at,omitempty"`
	ProcessedBy      string     `json:"processed_by,omitempty"`
	NextStep         string     `json:"next_step,omitempty"`
}

func (n *SNSCartonNotifier) CartonValidated(ctx context.Context, carton entities.CartonBox) {
	n.publish(ctx, newCartonEvent(ctx, "carton.validated", carton, ""))
}

func (n *SNSCartonNotifier) CartonProcessed(ctx context.Context, carton entities.CartonBox, nextStep string) {
	n.publish(ctx, newCartonEvent(ctx, "carton.processed", carton, nextStep))
}

func newCartonEvent(ctx context.Context, name string, carton entities.CartonBox, nextStep string) cartonEvent {
	tenant, _ := tenancy.FromContext(ctx)
	return cartonEvent{
		Event:            name,
		Tenant:           tenant,
		CartonID:         carton.ID,
		Barcode:          carton.Barcode,
		InternalSKU:      carton.InternalSKU,
		ValidationStatus: string(carton.ValidationStatus),
		Status:           string(carton.Status),
		ProcessedAt:      carton.ProcessedAt,
		ProcessedBy:      carton.ProcessedBy,
		NextStep:         nextStep,
	}
}

func (n *SNSCartonNotifier) publish(ctx context.Context, event cartonEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("[broadcast][sns] marshal failed event=%s carton_id=%s err=%v", event.Event, event.CartonID, err)
		return
	}

	if n.client == nil || n.topicARN == "" {
		log.Printf("[broadcast][sns] event=%s payload=%s", event.Event, body)
		return
	}

	_, err = n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Message:  aws.String(string(body)),
	})
	if err != nil {
		log.Printf("[broadcast][sns] publish failed event=%s carton_id=%s err=%v", event.Event, event.CartonID, err)
		return
	}
	log.Printf("[broadcast][sns] published event=%s carton_id=%s", event.Event, event.CartonID)
}
