package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/youquote/internal/models"
)

type fakeClient struct {
	mu    sync.Mutex
	calls []string

	loginRes    *models.LoginResult
	loginErr    error
	registerErr error
	lastLogin   models.LoginForm
	lastReg     models.RegisterForm
	lastRole    models.Role

	active  []models.Quote
	deleted []models.Quote
	users   []models.User

	mutateErr      error
	listActiveErr  error
	listDeletedErr error
	listUsersErr   error
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Login(_ context.Context, form models.LoginForm) (*models.LoginResult, error) {
	f.record("Login")
	f.lastLogin = form
	return f.loginRes, f.loginErr
}

func (f *fakeClient) Register(_ context.Context, form models.RegisterForm) (*models.User, error) {
	f.record("Register")
	f.lastReg = form
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &models.User{ID: 7, Name: form.Name, Email: form.Email, Role: models.RoleUser}, nil
}

func (f *fakeClient) ListQuotes(context.Context) ([]models.Quote, error) {
	f.record("ListQuotes")
	return f.active, nil
}

func (f *fakeClient) GetQuote(_ context.Context, id int64) (*models.Quote, error) {
	f.record("GetQuote")
	return &models.Quote{ID: id, Lifecycle: models.Active()}, nil
}

func (f *fakeClient) ListAuthors(context.Context) ([]models.Author, error) {
	f.record("ListAuthors")
	return nil, nil
}

func (f *fakeClient) GetAuthor(_ context.Context, id int64) (*models.AuthorQuotes, error) {
	f.record("GetAuthor")
	return &models.AuthorQuotes{Author: "someone"}, nil
}

func (f *fakeClient) ListUsers(context.Context) ([]models.User, error) {
	f.record("ListUsers")
	return f.users, f.listUsersErr
}

func (f *fakeClient) ChangeUserRole(_ context.Context, _ int64, role models.Role) error {
	f.record("ChangeUserRole")
	f.lastRole = role
	return f.mutateErr
}

func (f *fakeClient) DeleteUser(context.Context, int64) error {
	f.record("DeleteUser")
	return f.mutateErr
}

func (f *fakeClient) ListActiveQuotes(context.Context) ([]models.Quote, error) {
	f.record("ListActiveQuotes")
	return f.active, f.listActiveErr
}

func (f *fakeClient) ListDeletedQuotes(context.Context) ([]models.Quote, error) {
	f.record("ListDeletedQuotes")
	return f.deleted, f.listDeletedErr
}

func (f *fakeClient) DeleteQuote(context.Context, int64) error {
	f.record("DeleteQuote")
	return f.mutateErr
}

func (f *fakeClient) RestoreQuote(context.Context, int64) error {
	f.record("RestoreQuote")
	return f.mutateErr
}

func (f *fakeClient) PurgeQuote(context.Context, int64) error {
	f.record("PurgeQuote")
	return f.mutateErr
}

func (f *fakeClient) RestoreAllQuotes(context.Context) error {
	f.record("RestoreAllQuotes")
	return f.mutateErr
}

func (f *fakeClient) PurgeAllQuotes(context.Context) error {
	f.record("PurgeAllQuotes")
	return f.mutateErr
}

type fakeSession struct {
	cred     string
	role     models.Role
	setErr   error
	clearErr error
	cleared  bool
}

func (s *fakeSession) Credential() (string, bool) { return s.cred, s.cred != "" }

func (s *fakeSession) Role() models.Role {
	if s.cred == "" || !s.role.Valid() {
		return models.RoleUser
	}
	return s.role
}

func (s *fakeSession) SetSession(_ context.Context, cred string, role models.Role) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.cred, s.role = cred, role
	return nil
}

func (s *fakeSession) Clear(context.Context) error {
	if s.clearErr != nil {
		return s.clearErr
	}
	s.cred, s.role, s.cleared = "", "", true
	return nil
}
