package mq

import (
	"context"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Handler processa o corpo de uma mensagem. Erro rejeita a mensagem sem
// devolvê-la à fila.
type Handler func(ctx context.Context, body []byte) error

// Consumer consome uma fila com ack manual e reconexão com backoff
type Consumer struct {
	url      string
	queue    string
	prefetch int
	logger   *zap.Logger
}

// NewConsumer cria o consumidor; a conexão acontece em Run
func NewConsumer(url, queue string, logger *zap.Logger) *Consumer {
	return &Consumer{url: url, queue: queue, prefetch: 50, logger: logger}
}

// Run consome até ctx ser cancelado
func (c *Consumer) Run(ctx context.Context, handle Handler) error {
	backoff := time.Second
	for {
		conn, err := dial(c.url)
		if err != nil {
			c.logger.Warn("falha ao conectar no RabbitMQ",
				zap.Duration("nova_tentativa_em", backoff),
				zap.Error(err),
			)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = c.consume(ctx, conn, handle)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.logger.Warn("consumo interrompido, reconectando", zap.Error(err))
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection, handle Handler) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("falha ao abrir canal: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		c.logger.Warn("falha ao configurar QoS", zap.Error(err))
	}
	if err := declareQueue(ch, c.queue); err != nil {
		return err
	}

	msgs, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("falha ao consumir fila: %w", err)
	}
	c.logger.Info("consumindo fila", zap.String("fila", c.queue))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("canal de entregas fechado")
			}
			if err := handle(ctx, d.Body); err != nil {
				c.logger.Error("falha ao processar mensagem", zap.Error(err))
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
