package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngocmaitran/portfolio-cms/adapters/event"
	builderUC "github.com/ngocmaitran/portfolio-cms/internal/application/usecase/builder"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/section"
	"github.com/ngocmaitran/portfolio-cms/pkg/apperror"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

type memSectionRepo struct {
	seq  int
	rows map[uuid.UUID]*section.Section
	ins  map[uuid.UUID]int
}

func newMemSectionRepo() *memSectionRepo {
	return &memSectionRepo{rows: map[uuid.UUID]*section.Section{}, ins: map[uuid.UUID]int{}}
}

func (r *memSectionRepo) Save(_ context.Context, s *section.Section) error {
	cp := *s
	r.rows[s.ID] = &cp
	r.seq++
	r.ins[s.ID] = r.seq
	return nil
}

func (r *memSectionRepo) Update(_ context.Context, s *section.Section) error {
	if _, ok := r.rows[s.ID]; !ok {
		return apperror.NewNotFound("section", s.ID.String())
	}
	cp := *s
	r.rows[s.ID] = &cp
	return nil
}

func (r *memSectionRepo) UpdateOrder(_ context.Context, id uuid.UUID, displayOrder int) error {
	s, ok := r.rows[id]
	if !ok {
		return apperror.NewNotFound("section", id.String())
	}
	s.DisplayOrder = displayOrder
	return nil
}

func (r *memSectionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.rows[id]; !ok {
		return apperror.NewNotFound("section", id.String())
	}
	delete(r.rows, id)
	return nil
}

func (r *memSectionRepo) FindByID(_ context.Context, id uuid.UUID) (*section.Section, error) {
	s, ok := r.rows[id]
	if !ok {
		return nil, apperror.NewNotFound("section", id.String())
	}
	cp := *s
	return &cp, nil
}

func (r *memSectionRepo) ListByParent(_ context.Context, parent string) ([]*section.Section, error) {
	var list []*section.Section
	for _, s := range r.rows {
		if s.Parent == parent {
			cp := *s
			list = append(list, &cp)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].DisplayOrder != list[j].DisplayOrder {
			return list[i].DisplayOrder < list[j].DisplayOrder
		}
		return r.ins[list[i].ID] < r.ins[list[j].ID]
	})
	return list, nil
}

func (r *memSectionRepo) ListParents(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	for _, s := range r.rows {
		seen[s.Parent] = true
	}
	var parents []string
	for p := range seen {
		parents = append(parents, p)
	}
	sort.Strings(parents)
	return parents, nil
}

type noopEvents struct{}

func (noopEvents) PublishContentEvent(context.Context, event.ContentEventPayload) error { return nil }

func newBuilderRouter(repo *memSectionRepo) *gin.Engine {
	log := logger.NewNop()

	handler := NewSectionHandler(
		builderUC.NewListSectionsUseCase(repo),
		nil, // parent listing is not under test here
		builderUC.NewCreateSectionUseCase(repo, noopEvents{}, log),
		builderUC.NewSaveSectionUseCase(repo, noopEvents{}, log),
		builderUC.NewReorderSectionsUseCase(repo, noopEvents{}, log),
		builderUC.NewSaveOrderUseCase(repo, noopEvents{}, log),
		builderUC.NewDuplicateSectionUseCase(repo, noopEvents{}, log),
		builderUC.NewDeleteSectionUseCase(repo, noopEvents{}, log),
		log,
	)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(log))

	admin := router.Group("/api/admin")
	{
		admin.GET("/pages/:parent/sections", handler.ListSections)
		admin.POST("/sections", handler.CreateSection)
		admin.PUT("/sections/:id", handler.SaveSection)
		admin.DELETE("/sections/:id", handler.DeleteSection)
		admin.POST("/sections/:id/duplicate", handler.DuplicateSection)
		admin.POST("/sections/reorder", handler.ReorderSections)
		admin.PUT("/pages/:parent/order", handler.SaveOrder)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestSectionEndpointsRoundTrip(t *testing.T) {
	repo := newMemSectionRepo()
	router := newBuilderRouter(repo)

	// Create three text blocks on home.
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		rr := doJSON(t, router, http.MethodPost, "/api/admin/sections",
			gin.H{"section_type": "text_block", "parent": "home"})
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var created section.Section
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
		assert.Equal(t, i, created.DisplayOrder)
		ids = append(ids, created.ID)
	}

	// Edit the middle one.
	rr := doJSON(t, router, http.MethodPut, "/api/admin/sections/"+ids[1].String(), gin.H{
		"title":         "Process",
		"content":       "How the work gets done.",
		"display_order": 1,
		"settings":      gin.H{"alignment": "center"},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	// Push a new full order.
	rr = doJSON(t, router, http.MethodPut, "/api/admin/pages/home/order", gin.H{
		"ordered_ids": []uuid.UUID{ids[2], ids[0], ids[1]},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var ordered OrderedSectionsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ordered))
	assert.Empty(t, ordered.FailedIndices)
	require.Len(t, ordered.Sections, 3)
	assert.Equal(t, ids[2], ordered.Sections[0].ID)

	// A fresh list shows the persisted order.
	rr = doJSON(t, router, http.MethodGet, "/api/admin/pages/home/sections", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var listed []*section.Section
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	require.Len(t, listed, 3)
	assert.Equal(t, ids[2], listed[0].ID)
	assert.Equal(t, 0, listed[0].DisplayOrder)
	assert.Equal(t, "Process", *listed[2].Title)
}

func TestCreateSectionRejectsBadType(t *testing.T) {
	router := newBuilderRouter(newMemSectionRepo())

	rr := doJSON(t, router, http.MethodPost, "/api/admin/sections",
		gin.H{"section_type": "carousel", "parent": "home"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSaveSectionUnknownIDIs404(t *testing.T) {
	router := newBuilderRouter(newMemSectionRepo())

	rr := doJSON(t, router, http.MethodPut, "/api/admin/sections/"+uuid.NewString(), gin.H{
		"title": "ghost",
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestReorderEndpointSwapsNeighbors(t *testing.T) {
	repo := newMemSectionRepo()
	router := newBuilderRouter(repo)

	var ids []uuid.UUID
	for i := 0; i < 2; i++ {
		rr := doJSON(t, router, http.MethodPost, "/api/admin/sections",
			gin.H{"section_type": "quote", "parent": "home"})
		require.Equal(t, http.StatusCreated, rr.Code)
		var created section.Section
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
		ids = append(ids, created.ID)
	}

	rr := doJSON(t, router, http.MethodPost, "/api/admin/sections/reorder", gin.H{
		"parent": "home", "index": 1, "direction": -1,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var out OrderedSectionsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Len(t, out.Sections, 2)
	assert.Equal(t, ids[1], out.Sections[0].ID)
	assert.Equal(t, ids[0], out.Sections[1].ID)
}

func TestDuplicateEndpoint(t *testing.T) {
	repo := newMemSectionRepo()
	router := newBuilderRouter(repo)

	rr := doJSON(t, router, http.MethodPost, "/api/admin/sections",
		gin.H{"section_type": "divider", "parent": "home"})
	require.Equal(t, http.StatusCreated, rr.Code)
	var created section.Section
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	rr = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/admin/sections/%s/duplicate", created.ID), nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var dup section.Section
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dup))
	assert.NotEqual(t, created.ID, dup.ID)
	assert.Equal(t, created.SectionType, dup.SectionType)
	assert.Equal(t, 1, dup.DisplayOrder)
}
