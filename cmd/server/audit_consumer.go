package main

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/luisapuppin/escala360/internal/dto"
	"github.com/luisapuppin/escala360/pkg/mq"
)

// logAuditEvent grava cada evento de auditoria como uma linha de log.
// Corpo ilegível retorna erro e a mensagem é descartada pelo consumidor.
func logAuditEvent(logger *zap.Logger) mq.Handler {
	return func(_ context.Context, body []byte) error {
		var event dto.AuditEntryResponse
		if err := json.Unmarshal(body, &event); err != nil {
			return fmt.Errorf("evento de auditoria inválido: %w", err)
		}

		logger.Info("auditoria",
			zap.Int("id", event.ID),
			zap.String("entidade", event.Entidade),
			zap.Int("id_entidade", event.IDEntidade),
			zap.String("acao", event.Acao),
			zap.String("usuario", event.Usuario),
			zap.String("data_hora", event.DataHora),
		)
		return nil
	}
}
