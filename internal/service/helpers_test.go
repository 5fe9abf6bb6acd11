package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rdubel/trailhead/internal/domain"
	"github.com/rdubel/trailhead/internal/repository"
	"github.com/rdubel/trailhead/internal/testutil"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// env wires every repository and service over one test database.
type env struct {
	db *sql.DB

	paths        repository.PathRepo
	units        repository.UnitRepo
	sections     repository.SectionRepo
	topics       repository.TopicRepo
	requirements repository.RequirementRepo
	resources    repository.ResourceRepo
	logs         repository.LogRepo

	pathSvc     PathService
	sectionSvc  SectionService
	progressSvc ProgressService
	agendaSvc   AgendaService
	logSvc      LogService
	snapshotSvc SnapshotService
	importSvc   ImportService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	e := &env{
		db:           database,
		paths:        repository.NewSQLitePathRepo(database),
		units:        repository.NewSQLiteUnitRepo(database),
		sections:     repository.NewSQLiteSectionRepo(database),
		topics:       repository.NewSQLiteTopicRepo(database),
		requirements: repository.NewSQLiteRequirementRepo(database),
		resources:    repository.NewSQLiteResourceRepo(database),
		logs:         repository.NewSQLiteLogRepo(database),
	}
	e.pathSvc = NewPathService(e.paths, e.units, e.sections)
	e.sectionSvc = NewSectionService(e.paths, e.units, e.sections, e.topics, e.requirements, e.resources)
	e.progressSvc = NewProgressService(e.sections, e.topics, e.requirements, uow)
	e.agendaSvc = NewAgendaService(e.sections)
	e.logSvc = NewLogService(e.paths, e.logs)
	e.snapshotSvc = NewSnapshotService(e.paths, e.units, e.sections, e.topics, e.requirements, e.resources, e.logs)
	e.importSvc = NewImportService(uow)
	return e
}

func (e *env) createPath(t *testing.T, name string, opts ...testutil.PathOption) *domain.LearningPath {
	t.Helper()
	p := testutil.NewTestPath(name, opts...)
	require.NoError(t, e.paths.Create(context.Background(), p))
	return p
}

func (e *env) createUnit(t *testing.T, pathID, name string, order int) *domain.Unit {
	t.Helper()
	u := testutil.NewTestUnit(pathID, name, testutil.WithUnitOrder(order))
	require.NoError(t, e.units.Create(context.Background(), u))
	return u
}

func (e *env) createSection(t *testing.T, unitID, name string, opts ...testutil.SectionOption) *domain.Section {
	t.Helper()
	s := testutil.NewTestSection(unitID, name, opts...)
	require.NoError(t, e.sections.Create(context.Background(), s))
	return s
}

func (e *env) createTopic(t *testing.T, sectionID, content string, opts ...testutil.TopicOption) *domain.Topic {
	t.Helper()
	topic := testutil.NewTestTopic(sectionID, content, opts...)
	require.NoError(t, e.topics.Create(context.Background(), topic))
	return topic
}

func (e *env) createRequirement(t *testing.T, sectionID, content string, opts ...testutil.RequirementOption) *domain.Requirement {
	t.Helper()
	r := testutil.NewTestRequirement(sectionID, content, opts...)
	require.NoError(t, e.requirements.Create(context.Background(), r))
	return r
}

func (e *env) getSection(t *testing.T, id string) *domain.Section {
	t.Helper()
	s, err := e.sections.GetByID(context.Background(), id)
	require.NoError(t, err)
	return s
}
