package realtime

import (
	"context"
	"fmt"
	"reflect"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	"github.com/vfg2006/ad-monitor-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-monitor-api/infrastructure/repository"
	"github.com/vfg2006/ad-monitor-api/internal/domain"
	"github.com/vfg2006/ad-monitor-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Formatos de timestamp que o row_to_json do postgres pode produzir
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
}

type NotificationSource interface {
	Listen(ctx context.Context) (<-chan postgres.Notification, error)
}

// AlertSubscription converte as notificações de inserção em alerts em AlertEvents
type AlertSubscription struct {
	source NotificationSource
	alerts repository.AlertRepository
}

func NewAlertSubscription(source NotificationSource, alerts repository.AlertRepository) *AlertSubscription {
	return &AlertSubscription{
		source: source,
		alerts: alerts,
	}
}

// Subscribe entrega os eventos na ordem de chegada; o canal fecha quando ctx termina
func (s *AlertSubscription) Subscribe(ctx context.Context) (<-chan domain.AlertEvent, error) {
	notifications, err := s.source.Listen(ctx)
	if err != nil {
		return nil, err
	}

	events := make(chan domain.AlertEvent)

	go func() {
		defer close(events)

		for n := range notifications {
			event, err := s.resolve(ctx, n.Payload)
			if err != nil {
				log.L.WithError(err).WithField("payload", n.Payload).Warn("realtime: discarding alert notification")
				continue
			}
			if event == nil {
				continue
			}

			select {
			case events <- *event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}

func (s *AlertSubscription) resolve(ctx context.Context, payload string) (*domain.AlertEvent, error) {
	event, idOnly, err := decodeAlertPayload(payload)
	if err != nil {
		return nil, err
	}
	if !idOnly {
		return event, nil
	}

	stored, err := s.alerts.GetByID(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		log.L.WithField("alert_id", event.ID).Warn("realtime: notified alert not found")
	}

	return stored, nil
}

// decodeAlertPayload aceita a linha inteira (row_to_json) ou apenas {"id": ...}
func decodeAlertPayload(payload string) (*domain.AlertEvent, bool, error) {
	var raw map[string]interface{}
	if err := json.UnmarshalFromString(payload, &raw); err != nil {
		return nil, false, fmt.Errorf("realtime: invalid payload: %w", err)
	}

	if _, ok := raw["id"]; !ok {
		return nil, false, fmt.Errorf("realtime: payload without id")
	}

	var event domain.AlertEvent
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToTimestampHook(),
			breachesHook(),
		),
		WeaklyTypedInput: true,
		Result:           &event,
	})
	if err != nil {
		return nil, false, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, false, fmt.Errorf("realtime: decoding alert: %w", err)
	}

	_, hasAdID := raw["ad_id"]
	return &event, !hasAdID, nil
}

func stringToTimestampHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(time.Time{}) {
			return data, nil
		}

		value := data.(string)
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t, nil
			}
		}

		return nil, fmt.Errorf("unrecognized timestamp %q", value)
	}
}

func breachesHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf([]string{}) {
			return data, nil
		}
		return domain.BreachNames(data)
	}
}
