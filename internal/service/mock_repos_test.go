package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/luisapuppin/escala360/internal/model"
	"github.com/luisapuppin/escala360/internal/repository"
	pkgerrors "github.com/luisapuppin/escala360/pkg/errors"
)

// Os dublês guardam cópias; ids seguem max(existente)+1.

func nextID[T any](m map[int]*T) int {
	maxID := 0
	for id := range m {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

func sortedIDs[T any](m map[int]*T) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// ── Mock RoleRepository ──

type mockRoleRepo struct {
	roles map[int]*model.Role
}

func newMockRoleRepo() *mockRoleRepo {
	return &mockRoleRepo{roles: make(map[int]*model.Role)}
}

func (m *mockRoleRepo) GetByID(_ context.Context, id int) (*model.Role, error) {
	if r, ok := m.roles[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoleRepo) List(_ context.Context) ([]model.Role, error) {
	var out []model.Role
	for _, id := range sortedIDs(m.roles) {
		out = append(out, *m.roles[id])
	}
	return out, nil
}

func (m *mockRoleRepo) Upsert(_ context.Context, roles []model.Role) error {
	for i := range roles {
		r := roles[i]
		m.roles[r.ID] = &r
	}
	return nil
}

// ── Mock LocationRepository ──

type mockLocationRepo struct {
	locations map[int]*model.Location
}

func newMockLocationRepo() *mockLocationRepo {
	return &mockLocationRepo{locations: make(map[int]*model.Location)}
}

func (m *mockLocationRepo) Create(_ context.Context, loc *model.Location) error {
	loc.ID = nextID(m.locations)
	cp := *loc
	m.locations[loc.ID] = &cp
	return nil
}

func (m *mockLocationRepo) GetByID(_ context.Context, id int) (*model.Location, error) {
	if l, ok := m.locations[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLocationRepo) List(_ context.Context, includeInactive bool) ([]model.Location, error) {
	var out []model.Location
	for _, id := range sortedIDs(m.locations) {
		l := m.locations[id]
		if !includeInactive && !l.Active {
			continue
		}
		out = append(out, *l)
	}
	return out, nil
}

func (m *mockLocationRepo) Upsert(_ context.Context, locs []model.Location) error {
	for i := range locs {
		l := locs[i]
		m.locations[l.ID] = &l
	}
	return nil
}

// ── Mock ProfessionalRepository ──

type mockProfessionalRepo struct {
	professionals map[int]*model.Professional
}

func newMockProfessionalRepo() *mockProfessionalRepo {
	return &mockProfessionalRepo{professionals: make(map[int]*model.Professional)}
}

func (m *mockProfessionalRepo) Create(_ context.Context, p *model.Professional) error {
	p.ID = nextID(m.professionals)
	cp := *p
	m.professionals[p.ID] = &cp
	return nil
}

func (m *mockProfessionalRepo) GetByID(_ context.Context, id int) (*model.Professional, error) {
	if p, ok := m.professionals[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfessionalRepo) List(_ context.Context, onlyActive bool) ([]model.Professional, error) {
	var out []model.Professional
	for _, id := range sortedIDs(m.professionals) {
		p := m.professionals[id]
		if onlyActive && !p.Active {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProfessionalRepo) Update(_ context.Context, p *model.Professional) error {
	if _, ok := m.professionals[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	m.professionals[p.ID] = &cp
	return nil
}

func (m *mockProfessionalRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, p := range m.professionals {
		if p.Active {
			n++
		}
	}
	return n, nil
}

func (m *mockProfessionalRepo) Upsert(_ context.Context, ps []model.Professional) error {
	for i := range ps {
		p := ps[i]
		m.professionals[p.ID] = &p
	}
	return nil
}

// ── Mock ShiftRepository ──

type mockShiftRepo struct {
	shifts map[int]*model.Shift
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{shifts: make(map[int]*model.Shift)}
}

func (m *mockShiftRepo) Create(_ context.Context, s *model.Shift) error {
	s.ID = nextID(m.shifts)
	cp := *s
	m.shifts[s.ID] = &cp
	return nil
}

func (m *mockShiftRepo) GetByID(_ context.Context, id int) (*model.Shift, error) {
	if s, ok := m.shifts[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftRepo) List(_ context.Context) ([]model.Shift, error) {
	var out []model.Shift
	for _, id := range sortedIDs(m.shifts) {
		out = append(out, *m.shifts[id])
	}
	return out, nil
}

func (m *mockShiftRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.shifts)), nil
}

func (m *mockShiftRepo) Upsert(_ context.Context, shifts []model.Shift) error {
	for i := range shifts {
		s := shifts[i]
		m.shifts[s.ID] = &s
	}
	return nil
}

// ── Mock AssignmentRepository ──

// mockAssignmentRepo resolve o plantão de cada escala (com função e local)
// pelos mocks, como o Preload faria
type mockAssignmentRepo struct {
	assignments map[int]*model.Assignment
	shifts      *mockShiftRepo
	roles       *mockRoleRepo
	locations   *mockLocationRepo
}

func newMockAssignmentRepo(shifts *mockShiftRepo, roles *mockRoleRepo, locations *mockLocationRepo) *mockAssignmentRepo {
	return &mockAssignmentRepo{
		assignments: make(map[int]*model.Assignment),
		shifts:      shifts,
		roles:       roles,
		locations:   locations,
	}
}

func (m *mockAssignmentRepo) withShift(a model.Assignment) model.Assignment {
	if s, ok := m.shifts.shifts[a.ShiftID]; ok {
		cp := *s
		if role, ok := m.roles.roles[cp.RoleID]; ok {
			r := *role
			cp.Role = &r
		}
		if loc, ok := m.locations.locations[cp.LocationID]; ok {
			l := *loc
			cp.Location = &l
		}
		a.Shift = &cp
	}
	return a
}

func (m *mockAssignmentRepo) Create(_ context.Context, a *model.Assignment) error {
	a.ID = nextID(m.assignments)
	cp := *a
	cp.Shift, cp.Professional = nil, nil
	m.assignments[a.ID] = &cp
	return nil
}

func (m *mockAssignmentRepo) GetByID(_ context.Context, id int) (*model.Assignment, error) {
	if a, ok := m.assignments[id]; ok {
		cp := m.withShift(*a)
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) List(_ context.Context) ([]model.Assignment, error) {
	var out []model.Assignment
	for _, id := range sortedIDs(m.assignments) {
		out = append(out, m.withShift(*m.assignments[id]))
	}
	return out, nil
}

func (m *mockAssignmentRepo) ListByDateRange(_ context.Context, from, to string) ([]model.Assignment, error) {
	var out []model.Assignment
	for _, id := range sortedIDs(m.assignments) {
		a := m.withShift(*m.assignments[id])
		if a.Shift == nil || a.Shift.Date < from || a.Shift.Date > to {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *mockAssignmentRepo) UpdateStatus(_ context.Context, a *model.Assignment, status string) error {
	stored, ok := m.assignments[a.ID]
	if !ok || stored.Version != a.Version {
		return pkgerrors.ErrOptimisticLock
	}
	stored.Status = status
	stored.Version++
	a.Status = status
	a.Version = stored.Version
	return nil
}

func (m *mockAssignmentRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, a := range m.assignments {
		if a.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *mockAssignmentRepo) Upsert(_ context.Context, list []model.Assignment) error {
	for i := range list {
		a := list[i]
		m.assignments[a.ID] = &a
	}
	return nil
}

// ── Mock SubstitutionRepository ──

type mockSubstitutionRepo struct {
	substitutions map[int]*model.Substitution
	// updateErr força falha na próxima UpdateStatus
	updateErr error
}

func newMockSubstitutionRepo() *mockSubstitutionRepo {
	return &mockSubstitutionRepo{substitutions: make(map[int]*model.Substitution)}
}

func (m *mockSubstitutionRepo) Create(_ context.Context, s *model.Substitution) error {
	s.ID = nextID(m.substitutions)
	cp := *s
	cp.Requester, cp.Substitute, cp.OriginalAssignment = nil, nil, nil
	m.substitutions[s.ID] = &cp
	return nil
}

func (m *mockSubstitutionRepo) GetByID(_ context.Context, id int) (*model.Substitution, error) {
	if s, ok := m.substitutions[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubstitutionRepo) List(_ context.Context, status string) ([]model.Substitution, error) {
	var out []model.Substitution
	for _, id := range sortedIDs(m.substitutions) {
		s := m.substitutions[id]
		if status != "" && s.Status != status {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockSubstitutionRepo) UpdateStatus(_ context.Context, s *model.Substitution, status string) error {
	if m.updateErr != nil {
		err := m.updateErr
		m.updateErr = nil
		return err
	}
	stored, ok := m.substitutions[s.ID]
	if !ok || stored.Version != s.Version {
		return pkgerrors.ErrOptimisticLock
	}
	stored.Status = status
	stored.Version++
	s.Status = status
	s.Version = stored.Version
	return nil
}

func (m *mockSubstitutionRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, s := range m.substitutions {
		if s.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *mockSubstitutionRepo) Upsert(_ context.Context, list []model.Substitution) error {
	for i := range list {
		s := list[i]
		m.substitutions[s.ID] = &s
	}
	return nil
}

// ── Mock AuditRepository ──

type mockAuditRepo struct {
	entries   []model.AuditEntry
	createErr error
}

func newMockAuditRepo() *mockAuditRepo {
	return &mockAuditRepo{}
}

func (m *mockAuditRepo) Create(_ context.Context, e *model.AuditEntry) error {
	if m.createErr != nil {
		return m.createErr
	}
	e.ID = len(m.entries) + 1
	m.entries = append(m.entries, *e)
	return nil
}

func (m *mockAuditRepo) List(_ context.Context, filter repository.AuditFilter, offset, limit int) ([]model.AuditEntry, int64, error) {
	var matched []model.AuditEntry
	for i := len(m.entries) - 1; i >= 0; i-- {
		e := m.entries[i]
		if filter.EntityType != "" && e.EntityType != filter.EntityType {
			continue
		}
		if filter.EntityID > 0 && e.EntityID != filter.EntityID {
			continue
		}
		matched = append(matched, e)
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return []model.AuditEntry{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

// ── Mock Cache ──

type mockCache struct {
	values  map[string][]byte
	deletes int
}

func newMockCache() *mockCache {
	return &mockCache{values: make(map[string][]byte)}
}

func (m *mockCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	raw, ok := m.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = raw
	return nil
}

func (m *mockCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.values, k)
	}
	m.deletes++
	return nil
}

// ── Mock EventPublisher ──

type mockPublisher struct {
	events []any
	err    error
}

func (m *mockPublisher) Publish(_ context.Context, event any) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, event)
	return nil
}

// ── Agregado de teste ──

type testRepos struct {
	role         *mockRoleRepo
	location     *mockLocationRepo
	professional *mockProfessionalRepo
	shift        *mockShiftRepo
	assignment   *mockAssignmentRepo
	substitution *mockSubstitutionRepo
	audit        *mockAuditRepo
}

func newTestRepos() *testRepos {
	shifts := newMockShiftRepo()
	roles := newMockRoleRepo()
	locations := newMockLocationRepo()
	return &testRepos{
		role:         roles,
		location:     locations,
		professional: newMockProfessionalRepo(),
		shift:        shifts,
		assignment:   newMockAssignmentRepo(shifts, roles, locations),
		substitution: newMockSubstitutionRepo(),
		audit:        newMockAuditRepo(),
	}
}

func (r *testRepos) toRepository() *repository.Repository {
	return &repository.Repository{
		Role:         r.role,
		Location:     r.location,
		Professional: r.professional,
		Shift:        r.shift,
		Assignment:   r.assignment,
		Substitution: r.substitution,
		Audit:        r.audit,
	}
}

// seedBasicData 2 funções, 1 local, 3 profissionais (Ana, Carlos, Beatriz; 40h)
func seedBasicData(r *testRepos) {
	r.role.roles[1] = &model.Role{ID: 1, Name: "Médico"}
	r.role.roles[2] = &model.Role{ID: 2, Name: "Enfermeiro"}
	r.location.locations[1] = &model.Location{ID: 1, Name: "Pronto Socorro", Active: true}
	r.professional.professionals[1] = &model.Professional{ID: 1, Name: "Ana Souza", JobTitle: "Enfermeira", Active: true, MaxWeeklyHours: 40}
	r.professional.professionals[2] = &model.Professional{ID: 2, Name: "Carlos Lima", JobTitle: "Médico", Active: true, MaxWeeklyHours: 40}
	r.professional.professionals[3] = &model.Professional{ID: 3, Name: "Beatriz Santos", JobTitle: "Técnico de Enfermagem", Active: true, MaxWeeklyHours: 40}
}

// addShift cria um plantão com a função 2 no local 1
func addShift(r *testRepos, date, start, end string) int {
	id := nextID(r.shift.shifts)
	r.shift.shifts[id] = &model.Shift{ID: id, Date: date, StartTime: start, EndTime: end, RoleID: 2, LocationID: 1}
	return id
}

func addAssignment(r *testRepos, shiftID, professionalID int, status string) int {
	id := nextID(r.assignment.assignments)
	a := &model.Assignment{ID: id, ShiftID: shiftID, ProfessionalID: professionalID, Status: status}
	a.Version = 1
	r.assignment.assignments[id] = a
	return id
}

func addSubstitution(r *testRepos, assignmentID, requesterID, substituteID int, status string) int {
	id := nextID(r.substitution.substitutions)
	s := &model.Substitution{ID: id, OriginalAssignmentID: assignmentID, RequesterID: requesterID, SubstituteID: substituteID, Status: status}
	s.Version = 1
	r.substitution.substitutions[id] = s
	return id
}
