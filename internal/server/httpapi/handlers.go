package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/youquote/internal/common"
	"github.com/dmitrijs2005/youquote/internal/models"
	"github.com/dmitrijs2005/youquote/internal/server/auth"
	"github.com/dmitrijs2005/youquote/internal/validation"
)

func (s *Server) invalid(w http.ResponseWriter, err error) {
	var verr *validation.Error
	if !errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	fields := make(map[string][]string, len(verr.Fields))
	for f, msg := range verr.Fields {
		fields[f] = []string{"The " + f + " field " + msg + "."}
	}
	writeError(w, http.StatusUnprocessableEntity, "The given data was invalid.", fields)
}

// storeError maps a store failure to a response.
func (s *Server) storeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, "Not found.", nil)
	case errors.Is(err, common.ErrorInvalidRole):
		writeError(w, http.StatusUnprocessableEntity, "The given data was invalid.",
			map[string][]string{"role": {"The selected role is invalid."}})
	default:
		s.logger.Error(r.Context(), "store failure", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "Server Error", nil)
	}
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var form models.LoginForm
	if !decode(w, r, &form) {
		return
	}
	if err := s.validate.Validate(form); err != nil {
		s.invalid(w, err)
		return
	}

	user, err := s.store.Authenticate(r.Context(), form.Email, form.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		s.logger.Error(r.Context(), "token generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Server Error", nil)
		return
	}

	s.logger.Info(r.Context(), "login", "user_id", user.ID)
	writeJSON(w, http.StatusOK, models.LoginResult{Token: token, User: user})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var form models.RegisterForm
	if !decode(w, r, &form) {
		return
	}
	if err := s.validate.Validate(form); err != nil {
		s.invalid(w, err)
		return
	}
	if form.Password != form.PasswordConfirmation {
		writeError(w, http.StatusUnprocessableEntity, "The password field confirmation does not match.",
			map[string][]string{"password": {"The password field confirmation does not match."}})
		return
	}

	user, err := s.store.CreateUser(r.Context(), form.Name, form.Email, form.Password, models.RoleUser)
	if errors.Is(err, common.ErrorEmailTaken) {
		writeError(w, http.StatusUnprocessableEntity, "The email has already been taken.",
			map[string][]string{"email": {"The email has already been taken."}})
		return
	}
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "registered", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, struct {
		User models.User `json:"user"`
	}{user})
}

type wrappedQuote struct {
	Quote models.Quote `json:"quote"`
}

func (s *Server) listQuotes(w http.ResponseWriter, r *http.Request) {
	quotes := s.store.ActiveQuotes(r.Context())
	out := make([]wrappedQuote, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, wrappedQuote{Quote: q})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getQuote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	q, err := s.store.Quote(r.Context(), id)
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (s *Server) listAuthors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Authors(r.Context()))
}

func (s *Server) getAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	aq, err := s.store.AuthorQuotes(r.Context(), id)
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, aq)
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Users(r.Context()))
}

func (s *Server) changeRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var body models.RoleChange
	if !decode(w, r, &body) {
		return
	}
	if err := s.validate.Validate(body); err != nil {
		s.invalid(w, err)
		return
	}
	if err := s.store.SetRole(r.Context(), id, body.Role); err != nil {
		s.storeError(w, r, err)
		return
	}
	s.logger.Info(r.Context(), "role changed", "user_id", id, "role", body.Role)
	writeMessage(w, "Role updated.")
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if me, _ := currentUser(r.Context()); me.ID == id {
		writeError(w, http.StatusUnprocessableEntity, "You cannot delete your own account.", nil)
		return
	}
	if err := s.store.DeleteUser(r.Context(), id); err != nil {
		s.storeError(w, r, err)
		return
	}
	s.logger.Info(r.Context(), "user deleted", "user_id", id)
	writeMessage(w, "User deleted.")
}

func (s *Server) listActive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ActiveQuotes(r.Context()))
}

func (s *Server) listDeleted(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.DeletedQuotes(r.Context()))
}

func (s *Server) transition(w http.ResponseWriter, r *http.Request, t models.Transition, msg string) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.Transition(r.Context(), id, t); err != nil {
		s.storeError(w, r, err)
		return
	}
	s.logger.Info(r.Context(), "quote transition", "quote_id", id, "transition", t)
	writeMessage(w, msg)
}

func (s *Server) deleteQuote(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, models.TransitionDelete, "Quote deleted.")
}

func (s *Server) restoreQuote(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, models.TransitionRestore, "Quote restored.")
}

func (s *Server) purgeQuote(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, models.TransitionPurge, "Quote permanently deleted.")
}

func (s *Server) bulk(w http.ResponseWriter, r *http.Request, t models.Transition, msg string) {
	n, err := s.store.TransitionDeleted(r.Context(), t)
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	s.logger.Info(r.Context(), "bulk quote transition", "transition", t, "count", n)
	writeCount(w, msg, n)
}

func (s *Server) restoreAll(w http.ResponseWriter, r *http.Request) {
	s.bulk(w, r, models.TransitionRestore, "All quotes restored.")
}

func (s *Server) purgeAll(w http.ResponseWriter, r *http.Request) {
	s.bulk(w, r, models.TransitionPurge, "All deleted quotes permanently removed.")
}
