package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/roomly/booking-system/internal/core/domain"
	"github.com/roomly/booking-system/internal/core/ports"
)

// stubUserService implements ports.UserService with per-method hooks.
type stubUserService struct {
	create       func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	update       func(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error)
	delete       func(ctx context.Context, id string) error
	list         func(ctx context.Context) ([]domain.User, error)
	getByID      func(ctx context.Context, id string) (*domain.User, error)
	listByActive func(ctx context.Context, active bool) ([]domain.User, error)
	search       func(ctx context.Context, query string) ([]domain.User, error)
	stats        func(ctx context.Context) (*domain.UserStats, error)
}

func (s *stubUserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.create(ctx, input)
}

func (s *stubUserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	return s.update(ctx, id, input)
}

func (s *stubUserService) Delete(ctx context.Context, id string) error { return s.delete(ctx, id) }

func (s *stubUserService) List(ctx context.Context) ([]domain.User, error) { return s.list(ctx) }

func (s *stubUserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.getByID(ctx, id)
}

func (s *stubUserService) ListByActive(ctx context.Context, active bool) ([]domain.User, error) {
	return s.listByActive(ctx, active)
}

func (s *stubUserService) Search(ctx context.Context, query string) ([]domain.User, error) {
	return s.search(ctx, query)
}

func (s *stubUserService) Stats(ctx context.Context) (*domain.UserStats, error) {
	return s.stats(ctx)
}

func TestUserHandler_Create(t *testing.T) {
	svc := &stubUserService{
		create: func(_ context.Context, input ports.CreateUserInput) (*domain.User, error) {
			return &domain.User{ID: "1", Name: input.Name, Email: input.Email, Registration: input.Registration, Role: domain.RoleStandard, IsActive: true}, nil
		},
	}
	h := NewUserHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/api/user",
		`{"name":"Maria Santos","email":"maria@email.com","registration":"REG-001"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}

	var got domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.ID != "1" || !got.IsActive {
		t.Errorf("body = %+v", got)
	}
}

func TestUserHandler_CreateRejectsBadEmail(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(http.MethodPost, "/api/user",
		`{"name":"Maria","email":"not-an-email","registration":"REG-001"}`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_CreateForwardsDuplicateError(t *testing.T) {
	svc := &stubUserService{
		create: func(context.Context, ports.CreateUserInput) (*domain.User, error) {
			return nil, &domain.DuplicateFieldError{Field: "email", Value: "maria@email.com"}
		},
	}
	h := NewUserHandler(svc)

	c, _ := newTestContext(http.MethodPost, "/api/user",
		`{"name":"Maria","email":"maria@email.com","registration":"REG-001"}`)
	err := h.Create(c)

	var dup *domain.DuplicateFieldError
	if !errors.As(err, &dup) {
		t.Fatalf("domain errors must pass through untouched, got %v", err)
	}
}

func TestUserHandler_ListWithActiveFilter(t *testing.T) {
	var filtered *bool
	svc := &stubUserService{
		list: func(context.Context) ([]domain.User, error) {
			return []domain.User{{ID: "1"}, {ID: "2"}}, nil
		},
		listByActive: func(_ context.Context, active bool) ([]domain.User, error) {
			filtered = &active
			return []domain.User{{ID: "1"}}, nil
		},
	}
	h := NewUserHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/api/user?isActive=false", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if filtered == nil || *filtered {
		t.Error("isActive=false must route to ListByActive(false)")
	}

	// A garbage value is a client error.
	c, _ = newTestContext(http.MethodGet, "/api/user?isActive=maybe", "")
	err := h.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_SearchRequiresQuery(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(http.MethodGet, "/api/user/search", "")
	err := h.Search(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_UpdateRejectsEmptyPatch(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(http.MethodPut, "/api/user/1", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	err := h.Update(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError for empty patch, got %v", err)
	}
}

func TestUserHandler_UpdateRejectsUnknownRole(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(http.MethodPut, "/api/user/1", `{"role":"Owner"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	err := h.Update(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_UpdateForwardsPatch(t *testing.T) {
	var captured ports.UpdateUserInput
	svc := &stubUserService{
		update: func(_ context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
			captured = input
			return &domain.User{ID: id}, nil
		},
	}
	h := NewUserHandler(svc)

	c, rec := newTestContext(http.MethodPut, "/api/user/1", `{"role":"Admin","isActive":false}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if captured.Role == nil || *captured.Role != domain.RoleAdmin {
		t.Error("role patch not forwarded")
	}
	if captured.IsActive == nil || *captured.IsActive {
		t.Error("isActive patch not forwarded")
	}
	if captured.Name != nil || captured.Email != nil {
		t.Error("absent fields must stay nil")
	}
}

func TestUserHandler_Delete(t *testing.T) {
	svc := &stubUserService{
		delete: func(_ context.Context, id string) error {
			if id != "1" {
				return domain.ErrUserNotFound
			}
			return nil
		},
	}
	h := NewUserHandler(svc)

	c, rec := newTestContext(http.MethodDelete, "/api/user/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	var body deleteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Message != "user deleted" {
		t.Errorf("message = %q", body.Message)
	}

	c, _ = newTestContext(http.MethodDelete, "/api/user/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")
	if err := h.Delete(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
