package charts

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"excelviz/internal/database"
	"excelviz/internal/middleware"
	"excelviz/internal/model"
	"excelviz/internal/service"
	"excelviz/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func restore() {
	createChart = store.CreateChart
	getChartByID = store.GetChartByID
	listChartsByUser = store.ListChartsByUser
	deleteChart = store.DeleteChart
	getFileByID = store.GetFileByID
}

func newJSONCtx(e *echo.Echo, body string, claims *service.CustomClaims) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/charts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.Set(middleware.ContextUserKey, claims)
	return ctx, rec
}

func newIDCtx(e *echo.Echo, method, id string, claims *service.CustomClaims) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/charts/"+id, nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetPath("/charts/:id")
	ctx.SetParamNames("id")
	ctx.SetParamValues(id)
	ctx.Set(middleware.ContextUserKey, claims)
	return ctx, rec
}

const validChartBody = `{"fileId":3,"title":"Sales by month","chartType":"2d-bar","xAxis":"Month","yAxis":"Sales"}`

func TestCreateHandler(t *testing.T) {
	e := echo.New()
	owner := &service.CustomClaims{UserID: 1}

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, "{", owner)
		require.NoError(t, CreateHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("chartType must be one of the supported values")}
		ctx, rec := newJSONCtx(e, validChartBody, owner)
		require.NoError(t, CreateHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("referenced file missing", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getFileByID = func(context.Context, database.DB, int) (*model.File, error) {
			return nil, fmt.Errorf("GetFileByID: %w", pgx.ErrNoRows)
		}
		ctx, rec := newJSONCtx(e, validChartBody, owner)
		require.NoError(t, CreateHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "File not found")
	})

	t.Run("not the file owner", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getFileByID = func(context.Context, database.DB, int) (*model.File, error) {
			return &model.File{ID: 3, UserID: 99}, nil
		}
		ctx, rec := newJSONCtx(e, validChartBody, owner)
		require.NoError(t, CreateHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "Not authorized to create chart for this file")
	})

	t.Run("admin may chart another user's file", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getFileByID = func(context.Context, database.DB, int) (*model.File, error) {
			return &model.File{ID: 3, UserID: 99}, nil
		}
		createChart = func(_ context.Context, _ database.DB, ch *model.Chart) (*model.Chart, error) {
			ch.ID = 7
			return ch, nil
		}
		ctx, rec := newJSONCtx(e, validChartBody, &service.CustomClaims{UserID: 2, IsAdmin: true})
		require.NoError(t, CreateHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("success persists the caller as owner", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getFileByID = func(_ context.Context, _ database.DB, id int) (*model.File, error) {
			require.Equal(t, 3, id)
			return &model.File{ID: 3, UserID: 1}, nil
		}
		var created *model.Chart
		createChart = func(_ context.Context, _ database.DB, ch *model.Chart) (*model.Chart, error) {
			created = ch
			ch.ID = 7
			return ch, nil
		}
		ctx, rec := newJSONCtx(e, validChartBody, owner)
		require.NoError(t, CreateHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, created)
		require.Equal(t, 1, created.UserID)
		require.Equal(t, 3, created.FileID)
		require.Equal(t, "2d-bar", created.ChartType)
		require.Equal(t, "Month", created.XAxis)
		require.Equal(t, "Sales", created.YAxis)
		require.Contains(t, rec.Body.String(), `"id":7`)
	})
}

func TestListHandler(t *testing.T) {
	e := echo.New()

	t.Run("success includes file names", func(t *testing.T) {
		t.Cleanup(restore)
		listChartsByUser = func(_ context.Context, _ database.DB, userID int) ([]model.ChartWithFile, error) {
			require.Equal(t, 1, userID)
			return []model.ChartWithFile{
				{Chart: model.Chart{ID: 2, Title: "Newest"}, FileName: "sales.xlsx"},
				{Chart: model.Chart{ID: 1, Title: "Oldest"}, FileName: ""},
			}, nil
		}
		req := httptest.NewRequest(http.MethodGet, "/charts", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 1})
		require.NoError(t, ListHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"fileName":"sales.xlsx"`)
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		listChartsByUser = func(context.Context, database.DB, int) ([]model.ChartWithFile, error) {
			return nil, errors.New("boom")
		}
		req := httptest.NewRequest(http.MethodGet, "/charts", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 1})
		require.NoError(t, ListHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetHandler(t *testing.T) {
	e := echo.New()
	owner := &service.CustomClaims{UserID: 1}

	t.Run("invalid id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newIDCtx(e, http.MethodGet, "abc", owner)
		require.NoError(t, GetHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		getChartByID = func(context.Context, database.DB, int) (*model.ChartWithFile, error) {
			return nil, fmt.Errorf("GetChartByID: %w", pgx.ErrNoRows)
		}
		ctx, rec := newIDCtx(e, http.MethodGet, "7", owner)
		require.NoError(t, GetHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "Chart not found")
	})

	t.Run("not owner", func(t *testing.T) {
		t.Cleanup(restore)
		getChartByID = func(context.Context, database.DB, int) (*model.ChartWithFile, error) {
			return &model.ChartWithFile{Chart: model.Chart{ID: 7, UserID: 99}}, nil
		}
		ctx, rec := newIDCtx(e, http.MethodGet, "7", owner)
		require.NoError(t, GetHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "Not authorized to access this chart")
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		getChartByID = func(context.Context, database.DB, int) (*model.ChartWithFile, error) {
			return &model.ChartWithFile{
				Chart:    model.Chart{ID: 7, UserID: 1, Title: "Sales by month", ChartType: "3d-column"},
				FileName: "sales.xlsx",
			}, nil
		}
		ctx, rec := newIDCtx(e, http.MethodGet, "7", owner)
		require.NoError(t, GetHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"chartType":"3d-column"`)
		require.Contains(t, rec.Body.String(), `"fileName":"sales.xlsx"`)
	})
}

func TestDeleteHandler(t *testing.T) {
	e := echo.New()
	owner := &service.CustomClaims{UserID: 1}

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		getChartByID = func(context.Context, database.DB, int) (*model.ChartWithFile, error) {
			return nil, fmt.Errorf("GetChartByID: %w", pgx.ErrNoRows)
		}
		ctx, rec := newIDCtx(e, http.MethodDelete, "7", owner)
		require.NoError(t, DeleteHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("not owner", func(t *testing.T) {
		t.Cleanup(restore)
		getChartByID = func(context.Context, database.DB, int) (*model.ChartWithFile, error) {
			return &model.ChartWithFile{Chart: model.Chart{ID: 7, UserID: 99}}, nil
		}
		ctx, rec := newIDCtx(e, http.MethodDelete, "7", owner)
		require.NoError(t, DeleteHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "Not authorized to delete this chart")
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		getChartByID = func(context.Context, database.DB, int) (*model.ChartWithFile, error) {
			return &model.ChartWithFile{Chart: model.Chart{ID: 7, UserID: 1}}, nil
		}
		deleted := false
		deleteChart = func(_ context.Context, _ database.DB, id int) error {
			require.Equal(t, 7, id)
			deleted = true
			return nil
		}
		ctx, rec := newIDCtx(e, http.MethodDelete, "7", owner)
		require.NoError(t, DeleteHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Chart removed")
		require.True(t, deleted)
	})

	t.Run("delete error", func(t *testing.T) {
		t.Cleanup(restore)
		getChartByID = func(context.Context, database.DB, int) (*model.ChartWithFile, error) {
			return &model.ChartWithFile{Chart: model.Chart{ID: 7, UserID: 1}}, nil
		}
		deleteChart = func(context.Context, database.DB, int) error {
			return errors.New("boom")
		}
		ctx, rec := newIDCtx(e, http.MethodDelete, "7", owner)
		require.NoError(t, DeleteHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
