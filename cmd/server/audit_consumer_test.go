package main

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogAuditEvent(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handle := logAuditEvent(zap.New(core))

	body := []byte(`{"id":7,"entidade":"substituicoes","id_entidade":1,"acao":"aprovado","usuario":"sistema","data_hora":"2025-07-01T09:00:00Z"}`)
	if err := handle(context.Background(), body); err != nil {
		t.Fatalf("evento válido não deveria falhar: %v", err)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("esperada 1 linha de log, obtidas %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["acao"] != "aprovado" || fields["entidade"] != "substituicoes" {
		t.Errorf("campos inesperados: %v", fields)
	}
}

func TestLogAuditEvent_InvalidBody(t *testing.T) {
	handle := logAuditEvent(zap.NewNop())
	if err := handle(context.Background(), []byte("not json")); err == nil {
		t.Error("corpo inválido deveria retornar erro")
	}
}
