package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// AlertEvent é uma linha inserida na tabela alerts por um processo externo
type AlertEvent struct {
	ID        int64      `json:"id" mapstructure:"id"`
	AdID      string     `json:"ad_id" mapstructure:"ad_id"`
	Severity  string     `json:"severity" mapstructure:"severity"`
	Breaches  []string   `json:"breaches" mapstructure:"breaches"`
	CreatedAt *time.Time `json:"created_at,omitempty" mapstructure:"created_at"`
}

// AlertMessage é um AlertEvent recebido pela assinatura, numerado em ordem de chegada
type AlertMessage struct {
	Seq        uint64     `json:"seq"`
	ReceivedAt time.Time  `json:"received_at"`
	Event      AlertEvent `json:"event"`
}

// AlertNotification é o corpo aceito pelo proxy de notificação.
// Breaches é repassado como veio, sem validação de formato.
type AlertNotification struct {
	AdID     string          `json:"ad_id"`
	Severity string          `json:"severity"`
	Breaches json.RawMessage `json:"breaches"`
}

// Notification monta o corpo de notificação a partir do evento recebido
func (e AlertEvent) Notification() AlertNotification {
	breaches, err := json.Marshal(e.Breaches)
	if err != nil || e.Breaches == nil {
		breaches = json.RawMessage("null")
	}

	return AlertNotification{
		AdID:     e.AdID,
		Severity: e.Severity,
		Breaches: breaches,
	}
}

// BreachNames normaliza o campo breaches, que pode chegar como lista de nomes,
// objeto {métrica: bool} ou o texto JSON de um dos dois
func BreachNames(v interface{}) ([]string, error) {
	switch b := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return b, nil
	case []interface{}:
		names := make([]string, 0, len(b))
		for _, item := range b {
			name, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("breaches: unexpected item %T", item)
			}
			names = append(names, name)
		}
		return names, nil
	case map[string]interface{}:
		names := make([]string, 0, len(b))
		for name, flag := range b {
			if truthy(flag) {
				names = append(names, name)
			}
		}
		sort.Strings(names)
		return names, nil
	case string:
		return breachNamesFromJSON([]byte(b))
	case []byte:
		return breachNamesFromJSON(b)
	}

	return nil, fmt.Errorf("breaches: unexpected type %T", v)
}

func breachNamesFromJSON(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var decoded interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("breaches: %w", err)
	}
	if _, isString := decoded.(string); isString {
		return nil, fmt.Errorf("breaches: unexpected JSON string")
	}

	return BreachNames(decoded)
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	}
	return v != nil
}
