package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shashiranjanraj/pitstore/app/models"
	"github.com/shashiranjanraj/pitstore/app/repositories"
	"github.com/shashiranjanraj/pitstore/pkg/collection"
	"github.com/shashiranjanraj/pitstore/pkg/event"
	"github.com/shashiranjanraj/pitstore/pkg/logger"
	"github.com/shashiranjanraj/pitstore/pkg/validate"
)

// AdminID is the fixed id of the bootstrap admin account.
const AdminID int64 = 999999

// AuthOptions configures the admin account and the clock used for ids and
// timestamps.
type AuthOptions struct {
	AdminEmail    string
	AdminPassword string
	// AdminAutoLogin signs an anonymous session in as the admin during
	// EnsureAdminBootstrap.
	AdminAutoLogin bool
	Now            func() time.Time
}

// SignUpInput is the sign-up form.
type SignUpInput struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthService keeps the user registry and the current session.
type AuthService struct {
	mu      sync.Mutex
	users   *repositories.UserRepository
	session *repositories.SessionRepository
	events  *event.Dispatcher
	opts    AuthOptions

	registry []models.User
	current  *models.User
}

func NewAuthService(users *repositories.UserRepository, session *repositories.SessionRepository, events *event.Dispatcher, opts AuthOptions) *AuthService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &AuthService{users: users, session: session, events: events, opts: opts, registry: []models.User{}}
}

// Load rehydrates the registry and the session.
func (s *AuthService) Load(ctx context.Context) error {
	users, err := s.users.All(ctx)
	if err != nil {
		return fmt.Errorf("auth: load users: %w", err)
	}
	current, err := s.session.Current(ctx)
	if err != nil {
		return fmt.Errorf("auth: load session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = users
	s.current = current
	return nil
}

// SignUp registers a new user. The session is left alone; callers that want
// the new user signed in follow up with SignIn.
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (models.User, error) {
	in := SignUpInput{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: password,
	}
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return models.User{}, &ValidationError{Fields: errs}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if collection.Contains(s.registry, func(u models.User) bool { return u.Email == in.Email }) {
		return models.User{}, fmt.Errorf("sign up %s: %w", in.Email, ErrConflict)
	}

	now := s.opts.Now()
	user := models.User{
		ID:        s.nextID(now),
		Name:      in.Name,
		Email:     in.Email,
		Password:  in.Password,
		CreatedAt: now,
		Orders:    []int64{},
	}

	registry := append(cloneUsers(s.registry), user)
	if err := s.users.Save(ctx, registry); err != nil {
		return models.User{}, fmt.Errorf("sign up: %w", err)
	}
	s.registry = registry

	logger.WithCtx(ctx).Info("auth: signed up", "user_id", user.ID)
	s.events.Fire(event.UserSignedUp, user.Clone())
	return user.Clone(), nil
}

// SignIn starts a session for the user with the given email and password.
// The failure does not reveal which of the two was wrong.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := collection.First(s.registry, func(u models.User) bool {
		return u.Email == email && u.Password == password
	})
	if !ok {
		logger.WithCtx(ctx).Info("auth: sign in rejected", "email", email)
		s.events.Fire(event.SignInFailed, email)
		return models.User{}, ErrInvalidCredentials
	}

	if err := s.startSession(ctx, user); err != nil {
		return models.User{}, err
	}
	s.events.Fire(event.UserSignedIn, user.Clone())
	return user.Clone(), nil
}

// SignOut ends the session. Signing out while signed out is harmless.
func (s *AuthService) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.Clear(ctx); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	prev := s.current
	s.current = nil
	if prev != nil {
		s.events.Fire(event.UserSignedOut, prev.Clone())
	}
	return nil
}

// Current returns the signed-in user.
func (s *AuthService) Current() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.User{}, false
	}
	return s.current.Clone(), true
}

// IsAdmin reports whether the session user is the configured admin account
// or carries the admin flag.
func (s *AuthService) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isAdmin(s.current)
}

func (s *AuthService) isAdmin(u *models.User) bool {
	return u != nil && (u.IsAdmin || u.Email == s.opts.AdminEmail)
}

// EnsureAdminBootstrap makes sure the admin account exists and that the
// session belongs to an admin. An anonymous session is signed in as the
// admin when auto-login is enabled.
func (s *AuthService) EnsureAdminBootstrap(ctx context.Context) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.WithCtx(ctx)

	admin, ok := collection.First(s.registry, func(u models.User) bool { return u.Email == s.opts.AdminEmail })
	if !ok {
		admin = models.User{
			ID:        AdminID,
			Name:      "Admin User",
			Email:     s.opts.AdminEmail,
			Password:  s.opts.AdminPassword,
			CreatedAt: s.opts.Now(),
			Orders:    []int64{},
			IsAdmin:   true,
		}
		registry := append(cloneUsers(s.registry), admin)
		if err := s.users.Save(ctx, registry); err != nil {
			return models.User{}, fmt.Errorf("admin bootstrap: %w", err)
		}
		s.registry = registry
		log.Info("auth: admin account created", "email", admin.Email)
	}

	switch {
	case s.current == nil && s.opts.AdminAutoLogin:
		if err := s.startSession(ctx, admin); err != nil {
			return models.User{}, err
		}
		log.Warn("auth: anonymous session promoted to admin", "email", admin.Email)
		return admin.Clone(), nil
	case s.current == nil:
		return models.User{}, ErrUnauthenticated
	case !s.isAdmin(s.current):
		return models.User{}, ErrForbidden
	}
	return s.current.Clone(), nil
}

// AttachOrder records orderID against the signed-in user, both in the
// registry and in the session.
func (s *AuthService) AttachOrder(ctx context.Context, orderID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrUnauthenticated
	}

	me := s.current.Clone()
	me.Orders = append(me.Orders, orderID)

	registry := cloneUsers(s.registry)
	if i := collection.IndexOf(registry, func(u models.User) bool { return u.ID == me.ID }); i >= 0 {
		registry[i].Orders = append(registry[i].Orders, orderID)
		if err := s.users.Save(ctx, registry); err != nil {
			return fmt.Errorf("attach order %d: %w", orderID, err)
		}
		s.registry = registry
	}

	if err := s.session.Set(ctx, me); err != nil {
		return fmt.Errorf("attach order %d: %w", orderID, err)
	}
	s.current = &me
	return nil
}

// Users lists every registered user. Admin only.
func (s *AuthService) Users(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(); err != nil {
		logger.WithCtx(ctx).Debug("auth: user listing refused", "error", err)
		return nil, err
	}
	return cloneUsers(s.registry), nil
}

// RequireAdmin fails with ErrUnauthenticated or ErrForbidden unless the
// session user is an admin.
func (s *AuthService) RequireAdmin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requireAdmin()
}

func (s *AuthService) requireAdmin() error {
	if s.current == nil {
		return ErrUnauthenticated
	}
	if !s.isAdmin(s.current) {
		return ErrForbidden
	}
	return nil
}

// startSession persists u as the session user. Callers hold s.mu.
func (s *AuthService) startSession(ctx context.Context, u models.User) error {
	if err := s.session.Set(ctx, u); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	c := u.Clone()
	s.current = &c
	return nil
}

// nextID derives an id from the clock, stepping past any id already taken.
func (s *AuthService) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	for collection.Contains(s.registry, func(u models.User) bool { return u.ID == id }) {
		id++
	}
	return id
}

func cloneUsers(users []models.User) []models.User {
	return collection.Map(users, models.User.Clone)
}
