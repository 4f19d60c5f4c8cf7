package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/ngocmaitran/portfolio-cms/internal/domain/section"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type SectionRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	sectionRepo section.Repository
}

func (s *SectionRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.sectionRepo = NewPostgresSectionRepo(s.dbPool, logger.NewNop())
}

func (s *SectionRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestSectionRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(SectionRepoIntegrationTestSuite))
}

func (s *SectionRepoIntegrationTestSuite) Test_Save_And_FindByID() {
	ctx := context.Background()

	title := "Intro"
	align := "center"
	sec := section.New(section.TypeTextBlock, "round-trip-page", 0)
	sec.Title = &title
	sec.Settings = section.Settings{Alignment: &align}

	s.NoError(s.sectionRepo.Save(ctx, sec))

	found, err := s.sectionRepo.FindByID(ctx, sec.ID)
	s.NoError(err)
	s.NotNil(found)
	s.Equal(section.TypeTextBlock, found.SectionType)
	s.Equal("Intro", *found.Title)
	s.Equal("center", *found.Settings.Alignment)
	s.Equal("round-trip-page", found.Parent)
}

func (s *SectionRepoIntegrationTestSuite) Test_ListByParent_Ordering() {
	ctx := context.Background()

	parent := "ordering-page"
	first := section.New(section.TypeQuote, parent, 0)
	second := section.New(section.TypeDivider, parent, 1)
	third := section.New(section.TypeTextBlock, parent, 2)

	s.NoError(s.sectionRepo.Save(ctx, first))
	s.NoError(s.sectionRepo.Save(ctx, second))
	s.NoError(s.sectionRepo.Save(ctx, third))

	// Swap the first two via order writes.
	s.NoError(s.sectionRepo.UpdateOrder(ctx, first.ID, 1))
	s.NoError(s.sectionRepo.UpdateOrder(ctx, second.ID, 0))

	listed, err := s.sectionRepo.ListByParent(ctx, parent)
	s.NoError(err)
	s.Len(listed, 3)
	s.Equal(second.ID, listed[0].ID)
	s.Equal(first.ID, listed[1].ID)
	s.Equal(third.ID, listed[2].ID)
}

func (s *SectionRepoIntegrationTestSuite) Test_Update_KeepsTypeImmutable() {
	ctx := context.Background()

	sec := section.New(section.TypeImageGallery, "update-page", 0)
	sec.Images = []string{"https://cdn.example.com/a.jpg"}
	s.NoError(s.sectionRepo.Save(ctx, sec))

	cols := 4
	sec.Images = append(sec.Images, "https://cdn.example.com/b.jpg")
	sec.Settings = section.Settings{Columns: &cols}
	sec.UpdatedAt = time.Now().UTC()
	s.NoError(s.sectionRepo.Update(ctx, sec))

	found, err := s.sectionRepo.FindByID(ctx, sec.ID)
	s.NoError(err)
	s.Equal(section.TypeImageGallery, found.SectionType)
	s.Len(found.Images, 2)
	s.Equal(4, *found.Settings.Columns)
}

func (s *SectionRepoIntegrationTestSuite) Test_Delete_Missing() {
	ctx := context.Background()

	sec := section.New(section.TypeFullImage, "delete-page", 0)
	s.NoError(s.sectionRepo.Save(ctx, sec))
	s.NoError(s.sectionRepo.Delete(ctx, sec.ID))

	_, err := s.sectionRepo.FindByID(ctx, sec.ID)
	s.Error(err)

	s.Error(s.sectionRepo.Delete(ctx, uuid.New()))
}
