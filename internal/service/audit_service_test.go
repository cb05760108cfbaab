package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/luisapuppin/escala360/internal/dto"
	"github.com/luisapuppin/escala360/internal/model"
)

func setupTestAuditService(pub *mockPublisher) (*auditService, *testRepos) {
	repos := newTestRepos()
	var publisher EventPublisher
	if pub != nil {
		publisher = pub
	}
	svc := NewAuditService(repos.toRepository(), publisher, zap.NewNop()).(*auditService)
	svc.now = func() time.Time { return time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC) }
	return svc, repos
}

func TestAuditService_Record_Publishes(t *testing.T) {
	pub := &mockPublisher{}
	svc, repos := setupTestAuditService(pub)

	svc.Record(context.Background(), model.EntitySubstitution, 7, "aprovado", model.ActorSupervisor)

	if len(repos.audit.entries) != 1 {
		t.Fatalf("esperado 1 registro, obtidos %d", len(repos.audit.entries))
	}
	if len(pub.events) != 1 {
		t.Fatalf("esperado 1 evento publicado, obtidos %d", len(pub.events))
	}
	event, ok := pub.events[0].(dto.AuditEntryResponse)
	if !ok {
		t.Fatalf("evento de tipo inesperado: %T", pub.events[0])
	}
	if event.Entidade != "substituicao" || event.IDEntidade != 7 || event.DataHora != "2025-07-01T09:00:00Z" {
		t.Errorf("evento inesperado: %+v", event)
	}
}

func TestAuditService_Record_FailuresAreSwallowed(t *testing.T) {
	pub := &mockPublisher{err: errors.New("fila indisponível")}
	svc, repos := setupTestAuditService(pub)

	// falha de publicação: o registro fica gravado
	svc.Record(context.Background(), model.EntityShift, 1, "criado", model.ActorSystem)
	if len(repos.audit.entries) != 1 {
		t.Error("registro deveria ser gravado mesmo sem publicação")
	}

	// falha de gravação: nada é publicado
	pub.err = nil
	repos.audit.createErr = errors.New("banco indisponível")
	svc.Record(context.Background(), model.EntityShift, 2, "criado", model.ActorSystem)
	if len(pub.events) != 0 {
		t.Error("registro não gravado não deveria ser publicado")
	}
}

func TestAuditService_List(t *testing.T) {
	svc, _ := setupTestAuditService(nil)
	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		svc.Record(ctx, model.EntityProfessional, i, "criado", model.ActorSystem)
	}
	svc.Record(ctx, model.EntityShift, 1, "criado", model.ActorSystem)

	list, total, err := svc.List(ctx, &dto.AuditListRequest{Entidade: model.EntityProfessional})
	if err != nil {
		t.Fatalf("List falhou: %v", err)
	}
	if total != 3 || len(list) != 3 {
		t.Fatalf("esperados 3 registros, obtidos %d (total %d)", len(list), total)
	}
	if list[0].IDEntidade != 3 {
		t.Errorf("mais recente primeiro, obtido id_entidade %d", list[0].IDEntidade)
	}

	page, total, _ := svc.List(ctx, &dto.AuditListRequest{
		PaginationRequest: dto.PaginationRequest{Page: 2, PageSize: 3},
	})
	if total != 4 || len(page) != 1 {
		t.Errorf("página 2: %d itens de %d", len(page), total)
	}
}
