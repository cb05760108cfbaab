package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/luisapuppin/escala360/internal/model"
	"github.com/luisapuppin/escala360/internal/repository"
)

// ── Erros de exportação ──

var (
	ErrExportNoAssignments = errors.New("não há escalas para exportar")
	ErrExportGenerateFail  = errors.New("falha ao gerar o arquivo")
)

// ExportService exportação da visão processada das escalas
//
//   - planilha .xlsx com uma linha por escala, ordenada por data e horário
//   - agenda iCalendar (.ics) com os plantões efetivos de um profissional
//
// Os arquivos voltam em memória; o handler define os cabeçalhos HTTP.
type ExportService interface {
	ExportAssignments(ctx context.Context) (*bytes.Buffer, string, error)
	ProfessionalAgenda(ctx context.Context, professionalID int) ([]byte, string, error)
}

type exportService struct {
	repo   *repository.Repository
	loc    *time.Location
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService cria o ExportService; loc é o fuso dos horários dos plantões
func NewExportService(repo *repository.Repository, loc *time.Location, logger *zap.Logger) ExportService {
	if loc == nil {
		loc = time.UTC
	}
	return &exportService{repo: repo, loc: loc, logger: logger, now: time.Now}
}

// ═══════════════════════════════════════════════════════════
// ExportAssignments: planilha da visão processada
// ═══════════════════════════════════════════════════════════
//
// Colunas: Data | Início | Fim | Função | Local | Profissional escalado |
// Profissional atual | Status | Substituição

func (s *exportService) ExportAssignments(ctx context.Context) (*bytes.Buffer, string, error) {
	rows, names, err := loadProcessedView(ctx, s.repo, s.logger)
	if err != nil {
		return nil, "", err
	}
	if len(rows) == 0 {
		return nil, "", ErrExportNoAssignments
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Assignment.Shift, rows[j].Assignment.Shift
		if a == nil || b == nil {
			return a != nil
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.StartTime < b.StartTime
	})

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Escalas"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"Data", "Início", "Fim", "Função", "Local", "Profissional escalado", "Profissional atual", "Status", "Substituição"}
	widths := []float64{12, 8, 8, 24, 20, 24, 24, 12, 14}
	for i, h := range headers {
		col := colName(i)
		f.SetColWidth(sheetName, col, col, widths[i])
		f.SetCellValue(sheetName, cell(col, 1), h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2E75B6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	f.SetCellStyle(sheetName, "A1", cell(colName(len(headers)-1), 1), headerStyle)

	for i, r := range rows {
		row := i + 2
		a := r.Assignment
		var date, start, end, role, location string
		if a.Shift != nil {
			date, start, end = a.Shift.Date, a.Shift.StartTime, a.Shift.EndTime
			if a.Shift.Role != nil {
				role = a.Shift.Role.Name
			}
			if a.Shift.Location != nil {
				location = a.Shift.Location.Name
			}
		}
		substitution := "-"
		switch {
		case r.SubstitutionApproved:
			substitution = model.SubstitutionApproved
		case r.SubstitutionPending:
			substitution = model.SubstitutionPending
		}

		values := []any{date, start, end, role, location, names[a.ProfessionalID], names[r.CurrentProfessionalID], a.Status, substitution}
		for c, v := range values {
			f.SetCellValue(sheetName, cell(colName(c), row), v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("falha ao escrever planilha", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("escalas_%s.xlsx", s.now().In(s.loc).Format("20060102"))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ProfessionalAgenda: plantões efetivos do profissional em iCalendar
// ═══════════════════════════════════════════════════════════
//
// Entram as escalas em que ele é o profissional atual: as próprias ativas e
// as que assumiu por substituição aprovada.

func (s *exportService) ProfessionalAgenda(ctx context.Context, professionalID int) ([]byte, string, error) {
	p, err := s.repo.Professional.GetByID(ctx, professionalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrProfessionalNotFound
		}
		s.logger.Error("falha ao buscar profissional", zap.Int("id", professionalID), zap.Error(err))
		return nil, "", err
	}

	rows, _, err := loadProcessedView(ctx, s.repo, s.logger)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Escala360//Agenda de plantões//PT")
	cal.SetXWRCalName("Plantões - " + p.Name)
	cal.SetXWRTimezone(s.loc.String())

	stamp := s.now().UTC()
	for _, r := range rows {
		a := r.Assignment
		if r.CurrentProfessionalID != p.ID || a.Shift == nil {
			continue
		}
		if a.Status == model.AssignmentInactive {
			continue
		}
		if a.Status == model.AssignmentSubstituted && !r.SubstitutionApproved {
			continue
		}

		start, err := time.ParseInLocation(dateLayout+" "+timeLayout, a.Shift.Date+" "+a.Shift.StartTime, s.loc)
		if err != nil {
			continue
		}
		end, err := time.ParseInLocation(dateLayout+" "+timeLayout, a.Shift.Date+" "+a.Shift.EndTime, s.loc)
		if err != nil {
			continue
		}

		summary := "Plantão"
		if a.Shift.Role != nil {
			summary += " - " + a.Shift.Role.Name
		}
		event := cal.AddEvent(fmt.Sprintf("escala-%d@escala360", a.ID))
		event.SetDtStampTime(stamp)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(summary)
		if a.Shift.Location != nil {
			event.SetLocation(a.Shift.Location.Name)
		}
		if r.SubstitutionApproved {
			event.SetDescription("Assumido por substituição aprovada")
		}
	}

	return []byte(cal.Serialize()), fmt.Sprintf("agenda_profissional_%d.ics", p.ID), nil
}

// ── Auxiliares ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
