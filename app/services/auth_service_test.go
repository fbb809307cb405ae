package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/pitstore/app/repositories"
	"github.com/shashiranjanraj/pitstore/app/services"
	"github.com/shashiranjanraj/pitstore/pkg/event"
	"github.com/shashiranjanraj/pitstore/pkg/kv"
)

func TestSignUpLeavesSessionAlone(t *testing.T) {
	h := newHarness(t)

	u, err := h.auth.SignUp(h.ctx, " Lando Norris ", "lando@example.com", "papaya4")
	require.NoError(t, err)
	assert.Equal(t, "Lando Norris", u.Name)
	assert.Equal(t, epoch.Add(1e9).UnixMilli(), u.ID)
	assert.Empty(t, u.Orders)
	assert.False(t, u.IsAdmin)

	_, ok := h.auth.Current()
	assert.False(t, ok, "signing up does not sign in")

	signedIn, err := h.auth.SignIn(h.ctx, "lando@example.com", "papaya4")
	require.NoError(t, err)
	assert.Equal(t, u.ID, signedIn.ID)
}

func TestSignUpKeepsAdminSession(t *testing.T) {
	store := kv.NewMemory()
	h := newHarnessWith(t, store, approve(), true)
	_, err := h.auth.EnsureAdminBootstrap(h.ctx)
	require.NoError(t, err)

	_, err = h.auth.SignUp(h.ctx, "Lando Norris", "lando@example.com", "papaya4")
	require.NoError(t, err)

	current, ok := h.auth.Current()
	require.True(t, ok)
	assert.Equal(t, "admin@f1store.com", current.Email)
	assert.True(t, h.auth.IsAdmin())

	session, err := repositories.NewSessionRepository(store, repositories.NewKeys("f1_")).Current(h.ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "admin@f1store.com", session.Email)
}

func TestSignUpValidation(t *testing.T) {
	h := newHarness(t)

	_, err := h.auth.SignUp(h.ctx, "", "not-an-email", "123")
	require.ErrorIs(t, err, services.ErrValidation)

	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")

	_, err = h.auth.SignUp(h.ctx, "Lando", " lando@example.com", "papaya4")
	require.ErrorAs(t, err, &verr, "surrounding spaces are not stripped from the email")
	assert.Contains(t, verr.Fields, "email")

	_, ok := h.auth.Current()
	assert.False(t, ok)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	store := kv.NewMemory()
	h := newHarnessWith(t, store, approve(), false)
	_, err := h.auth.SignUp(h.ctx, "Oscar", "oscar@example.com", "secret1")
	require.NoError(t, err)

	_, err = h.auth.SignUp(h.ctx, "Other Oscar", "oscar@example.com", "secret2")
	assert.ErrorIs(t, err, services.ErrConflict)

	users, err := repositories.NewUserRepository(store, repositories.NewKeys("f1_")).All(h.ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestSignUpIDsAreUnique(t *testing.T) {
	h := newHarness(t)
	a, err := h.auth.SignUp(h.ctx, "A", "a@example.com", "secret1")
	require.NoError(t, err)
	b, err := h.auth.SignUp(h.ctx, "B", "b@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSignIn(t *testing.T) {
	h := newHarness(t)
	_, err := h.auth.SignUp(h.ctx, "George", "george@example.com", "silver1")
	require.NoError(t, err)
	require.NoError(t, h.auth.SignOut(h.ctx))

	var failures []interface{}
	h.events.Listen(event.SignInFailed, func(p interface{}) { failures = append(failures, p) })

	_, err = h.auth.SignIn(h.ctx, "george@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	assert.ErrorIs(t, err, services.ErrUnauthenticated)
	_, ok := h.auth.Current()
	assert.False(t, ok)

	_, err = h.auth.SignIn(h.ctx, "nobody@example.com", "silver1")
	assert.Equal(t, services.ErrInvalidCredentials, err, "same failure for unknown email")

	_, err = h.auth.SignIn(h.ctx, " george@example.com", "silver1")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials, "emails match exactly")
	assert.Len(t, failures, 3)

	u, err := h.auth.SignIn(h.ctx, "george@example.com", "silver1")
	require.NoError(t, err)
	current, ok := h.auth.Current()
	require.True(t, ok)
	assert.Equal(t, u, current)
}

func TestSessionSurvivesReload(t *testing.T) {
	store := kv.NewMemory()
	h := newHarnessWith(t, store, approve(), false)
	signUpAndIn(t, h, "Max", "max@example.com", "verstappen")

	reloaded := newHarnessWith(t, store, approve(), false)
	u, ok := reloaded.auth.Current()
	require.True(t, ok)
	assert.Equal(t, "max@example.com", u.Email)

	require.NoError(t, reloaded.auth.SignOut(reloaded.ctx))
	require.NoError(t, reloaded.auth.SignOut(reloaded.ctx), "signing out twice is fine")

	again := newHarnessWith(t, store, approve(), false)
	_, ok = again.auth.Current()
	assert.False(t, ok)
}

func TestAdminBootstrapAutoLogin(t *testing.T) {
	store := kv.NewMemory()
	h := newHarnessWith(t, store, approve(), true)

	admin, err := h.auth.EnsureAdminBootstrap(h.ctx)
	require.NoError(t, err)
	assert.Equal(t, services.AdminID, admin.ID)
	assert.Equal(t, "Admin User", admin.Name)
	assert.True(t, h.auth.IsAdmin())

	_, err = h.auth.EnsureAdminBootstrap(h.ctx)
	require.NoError(t, err)
	users, err := h.auth.Users(h.ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1, "bootstrap is idempotent")
}

func TestAdminBootstrapWithoutAutoLogin(t *testing.T) {
	h := newHarness(t)

	_, err := h.auth.EnsureAdminBootstrap(h.ctx)
	assert.ErrorIs(t, err, services.ErrUnauthenticated)

	_, err = h.auth.SignIn(h.ctx, "admin@f1store.com", "admin123")
	require.NoError(t, err, "the account exists even without auto-login")
	_, err = h.auth.EnsureAdminBootstrap(h.ctx)
	assert.NoError(t, err)
}

func TestAdminBootstrapRejectsShopper(t *testing.T) {
	h := newHarnessWith(t, kv.NewMemory(), approve(), true)
	signUpAndIn(t, h, "Yuki", "yuki@example.com", "tsunoda")

	_, err := h.auth.EnsureAdminBootstrap(h.ctx)
	assert.ErrorIs(t, err, services.ErrForbidden)

	_, err = h.auth.Users(h.ctx)
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestUsersRequiresSession(t *testing.T) {
	h := newHarness(t)
	_, err := h.auth.Users(h.ctx)
	assert.ErrorIs(t, err, services.ErrUnauthenticated)
}

func TestAttachOrder(t *testing.T) {
	store := kv.NewMemory()
	h := newHarnessWith(t, store, approve(), false)

	assert.ErrorIs(t, h.auth.AttachOrder(h.ctx, 1), services.ErrUnauthenticated)

	signUpAndIn(t, h, "Alex", "alex@example.com", "albon23")
	require.NoError(t, h.auth.AttachOrder(h.ctx, 77))

	current, _ := h.auth.Current()
	assert.Equal(t, []int64{77}, current.Orders)

	users, err := repositories.NewUserRepository(store, repositories.NewKeys("f1_")).All(h.ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{77}, users[0].Orders)
}
