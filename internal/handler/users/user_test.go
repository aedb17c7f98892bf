package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"crud-boilerplate/internal/database"
	"crud-boilerplate/internal/model"
	"crud-boilerplate/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func newJSONCtx(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newParamCtx(e *echo.Echo, method, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/users/"+id, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/users/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func restore() {
	createUser = service.CreateUser
	getUser = service.GetUser
	listUsers = service.ListUsers
	updateUser = service.UpdateUser
	deleteUser = service.DeleteUser
}

func TestCreateUserHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, http.MethodPost, "{")
		err := CreateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid request body")
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"username":"alice","email":"alice@example.com"}`)
		err := CreateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "v")
	})

	t.Run("email taken", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			return nil, service.ErrEmailTaken
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"username":"alice","email":"alice@example.com"}`)
		err := CreateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Email already registered")
	})

	t.Run("username taken", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			return nil, service.ErrUsernameTaken
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"username":"alice","email":"new@example.com"}`)
		err := CreateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Username already taken")
	})

	t.Run("create error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			return nil, errors.New("c")
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"username":"alice","email":"alice@example.com"}`)
		err := CreateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		now := time.Now().UTC()
		var gotEmail string
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			gotEmail = u.Email
			u.ID = 1
			u.IsActive = true
			u.CreatedAt = now
			return u, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"username":"alice","email":"Alice@EXAMPLE.com","full_name":"Alice Liddell"}`)
		err := CreateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "alice@example.com", gotEmail)
		require.Contains(t, rec.Body.String(), "\"id\":1")
		require.Contains(t, rec.Body.String(), "\"is_active\":true")
	})
}

func TestListUsersHandler(t *testing.T) {
	e := echo.New()

	t.Run("list error", func(t *testing.T) {
		t.Cleanup(restore)
		listUsers = func(context.Context, database.DB, int, int) ([]model.User, error) {
			return nil, errors.New("l")
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		err := ListUsersHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("empty list is a JSON array", func(t *testing.T) {
		t.Cleanup(restore)
		listUsers = func(context.Context, database.DB, int, int) ([]model.User, error) {
			return nil, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		err := ListUsersHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("forwards query pagination", func(t *testing.T) {
		t.Cleanup(restore)
		var gotSkip, gotLimit int
		listUsers = func(_ context.Context, _ database.DB, skip, limit int) ([]model.User, error) {
			gotSkip, gotLimit = skip, limit
			return []model.User{{ID: 3, Username: "alice", Email: "alice@example.com"}}, nil
		}
		req := httptest.NewRequest(http.MethodGet, "/users?skip=2&limit=5", nil)
		rec := httptest.NewRecorder()
		err := ListUsersHandler(nil)(e.NewContext(req, rec))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 2, gotSkip)
		require.Equal(t, 5, gotLimit)
		require.Contains(t, rec.Body.String(), "\"id\":3")
	})

	t.Run("ignores malformed pagination", func(t *testing.T) {
		t.Cleanup(restore)
		var gotSkip, gotLimit int
		listUsers = func(_ context.Context, _ database.DB, skip, limit int) ([]model.User, error) {
			gotSkip, gotLimit = skip, limit
			return nil, nil
		}
		req := httptest.NewRequest(http.MethodGet, "/users?skip=abc&limit=", nil)
		rec := httptest.NewRecorder()
		err := ListUsersHandler(nil)(e.NewContext(req, rec))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, service.DefaultSkip, gotSkip)
		require.Equal(t, service.DefaultLimit, gotLimit)
	})
}

func TestGetUserHandler(t *testing.T) {
	e := echo.New()

	t.Run("bad id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newParamCtx(e, http.MethodGet, "x", "")
		err := GetUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid user ID")
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		getUser = func(context.Context, database.DB, int) (*model.User, error) {
			return nil, service.ErrUserNotFound
		}
		ctx, rec := newParamCtx(e, http.MethodGet, "999", "")
		err := GetUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "User not found")
	})

	t.Run("get error", func(t *testing.T) {
		t.Cleanup(restore)
		getUser = func(context.Context, database.DB, int) (*model.User, error) {
			return nil, errors.New("g")
		}
		ctx, rec := newParamCtx(e, http.MethodGet, "1", "")
		err := GetUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		now := time.Now().UTC()
		getUser = func(_ context.Context, _ database.DB, id int) (*model.User, error) {
			return &model.User{ID: id, Username: "alice", Email: "alice@example.com", IsActive: true, CreatedAt: now}, nil
		}
		ctx, rec := newParamCtx(e, http.MethodGet, "1", "")
		err := GetUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "\"id\":1")
		require.Contains(t, rec.Body.String(), "\"username\":\"alice\"")
	})
}

func TestUpdateUserHandler(t *testing.T) {
	e := echo.New()
	e.Validator = &stubValidator{}

	t.Run("bad id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newParamCtx(e, http.MethodPut, "x", "{}")
		err := UpdateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newParamCtx(e, http.MethodPut, "1", "{")
		err := UpdateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid request body")
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newParamCtx(e, http.MethodPut, "1", `{"email":"bad"}`)
		err := UpdateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("email taken", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		updateUser = func(context.Context, database.DB, int, *model.UserPatch) (*model.User, error) {
			return nil, service.ErrEmailTaken
		}
		ctx, rec := newParamCtx(e, http.MethodPut, "1", `{"email":"taken@example.com"}`)
		err := UpdateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Email already registered")
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		updateUser = func(context.Context, database.DB, int, *model.UserPatch) (*model.User, error) {
			return nil, service.ErrUserNotFound
		}
		ctx, rec := newParamCtx(e, http.MethodPut, "999", `{"username":"alice"}`)
		err := UpdateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		updateUser = func(context.Context, database.DB, int, *model.UserPatch) (*model.User, error) {
			return nil, errors.New("u")
		}
		ctx, rec := newParamCtx(e, http.MethodPut, "1", `{"username":"alice"}`)
		err := UpdateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success lowercases email", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		now := time.Now().UTC()
		var got model.UserPatch
		updateUser = func(_ context.Context, _ database.DB, id int, p *model.UserPatch) (*model.User, error) {
			got = *p
			return &model.User{ID: id, Username: "alice", Email: *p.Email, IsActive: true, CreatedAt: now, UpdatedAt: &now}, nil
		}
		ctx, rec := newParamCtx(e, http.MethodPut, "2", `{"email":"Alice@EXAMPLE.com"}`)
		err := UpdateUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, got.Email)
		require.Equal(t, "alice@example.com", *got.Email)
		require.Nil(t, got.Username)
		require.Contains(t, rec.Body.String(), "\"id\":2")
	})
}

func TestDeleteUserHandler(t *testing.T) {
	e := echo.New()

	t.Run("bad id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newParamCtx(e, http.MethodDelete, "x", "")
		err := DeleteUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		deleteUser = func(context.Context, database.DB, int) error { return service.ErrUserNotFound }
		ctx, rec := newParamCtx(e, http.MethodDelete, "999", "")
		err := DeleteUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "User not found")
	})

	t.Run("delete error", func(t *testing.T) {
		t.Cleanup(restore)
		deleteUser = func(context.Context, database.DB, int) error { return errors.New("d") }
		ctx, rec := newParamCtx(e, http.MethodDelete, "1", "")
		err := DeleteUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		deleteUser = func(context.Context, database.DB, int) error { return nil }
		ctx, rec := newParamCtx(e, http.MethodDelete, "2", "")
		err := DeleteUserHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}
