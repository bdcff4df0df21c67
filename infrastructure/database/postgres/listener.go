package postgres

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/ad-monitor-api/internal/config"
	"github.com/vfg2006/ad-monitor-api/pkg/log"
	"github.com/vfg2006/ad-monitor-api/pkg/metrics"
)

const listenerPingInterval = 90 * time.Second

// Notification é um payload recebido via LISTEN/NOTIFY
type Notification struct {
	Channel string
	Payload string
}

// Listener assina um canal LISTEN/NOTIFY e reconecta sozinho quando a conexão cai
type Listener struct {
	listener *pq.Listener
	channel  string
}

func NewListener(cfg config.Database) *Listener {
	channel := cfg.AlertChannel

	eventCallback := func(ev pq.ListenerEventType, err error) {
		logger := log.L.WithField("channel", channel)
		switch ev {
		case pq.ListenerEventConnected:
			logger.Info("postgres: listener connected")
		case pq.ListenerEventDisconnected:
			logger.WithError(err).Warn("postgres: listener disconnected")
		case pq.ListenerEventReconnected:
			metrics.SubscriptionReconnectsTotal.Inc()
			logger.Info("postgres: listener reconnected")
		case pq.ListenerEventConnectionAttemptFailed:
			logger.WithError(err).Error("postgres: listener connection attempt failed")
		}
	}

	return &Listener{
		listener: pq.NewListener(cfg.DSN, cfg.ListenerMinReconnect, cfg.ListenerMaxReconnect, eventCallback),
		channel:  channel,
	}
}

// Listen inicia a escuta; o canal retornado fecha quando ctx é cancelado
func (l *Listener) Listen(ctx context.Context) (<-chan Notification, error) {
	if err := l.listener.Listen(l.channel); err != nil {
		return nil, errors.Wrapf(err, "postgres: listen %s", l.channel)
	}

	out := make(chan Notification)

	go func() {
		defer close(out)
		defer func() {
			if err := l.listener.Close(); err != nil {
				log.L.WithError(err).Warn("postgres: error closing listener")
			}
		}()

		ticker := time.NewTicker(listenerPingInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case n := <-l.listener.Notify:
				// nil indica reconexão; notificações podem ter sido perdidas no intervalo
				if n == nil {
					continue
				}
				select {
				case out <- Notification{Channel: n.Channel, Payload: n.Extra}:
				case <-ctx.Done():
					return
				}
			case <-ticker.C:
				go func() {
					if err := l.listener.Ping(); err != nil {
						log.L.WithError(err).Warn("postgres: listener ping failed")
					}
				}()
			}
		}
	}()

	return out, nil
}
