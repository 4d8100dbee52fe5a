package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/config"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/models"
	"github.com/nguyentranbao-ct/ott-backoffice/pkg/util"
)

// NotificationEvent is the envelope published for every notification fan-out,
// consumed by downstream analytics.
type NotificationEvent struct {
	Audience string                  `json:"audience"` // "admin" or "client"
	ClientID string                  `json:"client_id,omitempty"`
	Type     models.NotificationType `json:"type"`
	Title    string                  `json:"title"`
	Message  string                  `json:"message"`
	At       time.Time               `json:"at"`
}

type Producer interface {
	PublishNotification(ctx context.Context, event NotificationEvent)
}

type saramaProducer struct {
	producer sarama.AsyncProducer
	topic    string
	metrics  *prometheus.HistogramVec
}

// NewProducer returns a no-op producer when Kafka is disabled.
func NewProducer(lc fx.Lifecycle, cfg *config.Config) (Producer, error) {
	if !cfg.Kafka.Enabled {
		return &noopProducer{}, nil
	}

	sc := sarama.NewConfig()
	sc.Producer.Return.Successes = false
	sc.Producer.Return.Errors = true
	sc.Producer.RequiredAcks = sarama.WaitForLocal

	metrics, err := util.GetHistogramVec("kafka_notifications_published", "audience", "topic")
	if err != nil {
		return nil, fmt.Errorf("get histogram vec: %w", err)
	}

	producer, err := sarama.NewAsyncProducer(cfg.Kafka.Brokers, sc)
	if err != nil {
		return nil, fmt.Errorf("new async producer: %w", err)
	}

	p := &saramaProducer{
		producer: producer,
		topic:    cfg.Kafka.Topic,
		metrics:  metrics,
	}

	go p.drainErrors()

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return producer.Close()
		},
	})

	return p, nil
}

// PublishNotification is fire-and-forget: a broker outage must never fail the
// mutation that triggered the notification.
func (p *saramaProducer) PublishNotification(ctx context.Context, event NotificationEvent) {
	start := time.Now()
	payload, err := json.Marshal(event)
	if err != nil {
		log.Errorw(ctx, "marshal notification event", "error", err)
		return
	}

	p.producer.Input() <- &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.Audience),
		Value: sarama.ByteEncoder(payload),
	}
	p.metrics.
		WithLabelValues(event.Audience, p.topic).
		Observe(time.Since(start).Seconds())
}

func (p *saramaProducer) drainErrors() {
	ctx := context.Background()
	for err := range p.producer.Errors() {
		log.Warnw(ctx, "kafka publish failed", "topic", err.Msg.Topic, "error", err.Err)
	}
}

type noopProducer struct{}

func (noopProducer) PublishNotification(context.Context, NotificationEvent) {}
