package notify

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"floorcraft/internal/domain/entities"
	"floorcraft/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

var ErrMissingWebhookURL = errors.New("missing ESTIMATE_WEBHOOK_URL")

// estimateSentEvent is the payload posted to the delivery collaborator. The
// collaborator owns rendering/email; this service only emits the recomputed
// snapshot.
type estimateSentEvent struct {
	ProjectID       string    `json:"project_id"`
	ContractorID    string    `json:"contractor_id"`
	CustomerName    string    `json:"customer_name"`
	Status          string    `json:"status"`
	PricePerSqFt    float64   `json:"price_per_sq_ft"`
	TotalSquareFeet float64   `json:"total_square_feet"`
	EstimatedCost   float64   `json:"estimated_cost"`
	BalanceDue      float64   `json:"balance_due"`
	SendCount       int       `json:"send_count"`
	SentAt          time.Time `json:"sent_at"`
}

// WebhookNotifier posts estimate-sent events to a configured HTTP endpoint.
type WebhookNotifier struct {
	client *resty.Client
	url    string
}

var _ interfaces.IEstimateNotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(url string) (*WebhookNotifier, error) {
	if url == "" {
		return nil, ErrMissingWebhookURL
	}

	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	return &WebhookNotifier{client: client, url: url}, nil
}

func (n *WebhookNotifier) NotifyEstimateSent(ctx context.Context, p entities.Project) error {
	event := estimateSentEvent{
		ProjectID:       p.ID,
		ContractorID:    p.ContractorID,
		CustomerName:    p.CustomerName,
		Status:          string(p.Status),
		PricePerSqFt:    p.PricePerSqFt,
		TotalSquareFeet: p.TotalSquareFeet,
		EstimatedCost:   p.EstimatedCost,
		BalanceDue:      p.BalanceDue,
		SendCount:       p.SendCount,
	}
	if p.SentAt != nil {
		event.SentAt = *p.SentAt
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(event).
		Post(n.url)
	if err != nil {
		log.Printf("[notify][webhook] post failed project_id=%s err=%v", p.ID, err)
		return err
	}
	if resp.IsError() {
		log.Printf("[notify][webhook] post rejected project_id=%s status=%d", p.ID, resp.StatusCode())
		return fmt.Errorf("estimate webhook returned status %d", resp.StatusCode())
	}

	log.Printf("[notify][webhook] estimate sent project_id=%s send_count=%d", p.ID, p.SendCount)
	return nil
}
