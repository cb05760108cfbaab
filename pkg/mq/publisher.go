// Package mq publica e consome eventos JSON em filas duráveis do RabbitMQ.
package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	// dialTimeout limita o tempo de conexão; Publish roda no caminho da requisição
	dialTimeout = 2 * time.Second
	// retryInterval intervalo mínimo entre reconexões depois de uma falha
	retryInterval = 10 * time.Second
)

// ErrBrokerUnavailable a última reconexão falhou há menos de retryInterval
var ErrBrokerUnavailable = errors.New("RabbitMQ indisponível")

// dial conecta com timeout curto
func dial(url string) (*amqp.Connection, error) {
	return amqp.DialConfig(url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(dialTimeout),
	})
}

// Publisher publica na fila pela exchange padrão (routing key = nome da fila).
// A conexão é reaberta na próxima publicação quando cai.
type Publisher struct {
	url    string
	queue  string
	logger *zap.Logger

	mu      sync.Mutex
	conn    *amqp.Connection
	ch      *amqp.Channel
	retryAt time.Time
	now     func() time.Time
}

// NewPublisher conecta e declara a fila
func NewPublisher(url, queue string, logger *zap.Logger) (*Publisher, error) {
	p := &Publisher{url: url, queue: queue, logger: logger, now: time.Now}
	if err := p.connect(); err != nil {
		return nil, err
	}
	logger.Info("RabbitMQ conectado", zap.String("fila", queue))
	return p, nil
}

func (p *Publisher) connect() error {
	conn, err := dial(p.url)
	if err != nil {
		return fmt.Errorf("falha ao conectar no RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("falha ao abrir canal: %w", err)
	}
	if err := declareQueue(ch, p.queue); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}
	p.conn, p.ch = conn, ch
	return nil
}

// Publish serializa event em JSON e publica como mensagem persistente
func (p *Publisher) Publish(ctx context.Context, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("falha ao serializar evento: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() || p.conn.IsClosed() {
		if p.now().Before(p.retryAt) {
			return ErrBrokerUnavailable
		}
		p.logger.Warn("canal do RabbitMQ fechado, reconectando")
		p.closeLocked()
		if err := p.connect(); err != nil {
			p.retryAt = p.now().Add(retryInterval)
			return err
		}
		p.retryAt = time.Time{}
	}

	return p.ch.PublishWithContext(ctx,
		"",      // exchange padrão
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}

// Close fecha canal e conexão
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closeLocked()
}

func (p *Publisher) closeLocked() error {
	var err error
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		err = p.conn.Close()
		p.conn = nil
	}
	return err
}

// declareQueue fila durável, idempotente
func declareQueue(ch *amqp.Channel, name string) error {
	if _, err := ch.QueueDeclare(
		name,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return fmt.Errorf("falha ao declarar fila %s: %w", name, err)
	}
	return nil
}
