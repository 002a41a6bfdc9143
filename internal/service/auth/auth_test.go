package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "rxautos-service/internal/domain/account"
	"rxautos-service/internal/pkg/authstate"
	xerrors "rxautos-service/internal/pkg/errors"
	"rxautos-service/internal/pkg/ratelimit"
	account "rxautos-service/internal/repository/account"
)

// fakeAPI scripts the hosted account service.
type fakeAPI struct {
	signUpErr   error
	signInErr   error
	signOutErr  error
	resetErr    error
	getUserErr  error
	countErr    error
	emailCount  int
	signUpCalls int
}

func (f *fakeAPI) SignUp(_ context.Context, email, _ string, metadata map[string]interface{}) (*domain.User, error) {
	f.signUpCalls++
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return &domain.User{ID: "uid-1", Email: email, Metadata: metadata}, nil
}

func (f *fakeAPI) SignInWithPassword(_ context.Context, email, _ string) (*domain.Session, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return &domain.Session{
		AccessToken: "tok",
		User:        &domain.User{ID: "uid-1", Email: email},
	}, nil
}

func (f *fakeAPI) SignOut(context.Context, string) error { return f.signOutErr }

func (f *fakeAPI) ResetPasswordForEmail(context.Context, string) error { return f.resetErr }

func (f *fakeAPI) GetUser(context.Context, string) (*domain.User, error) {
	if f.getUserErr != nil {
		return nil, f.getUserErr
	}
	return &domain.User{ID: "uid-1", Email: "maria@example.com"}, nil
}

func (f *fakeAPI) CountByEmail(context.Context, string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.emailCount, nil
}

func newService(api *fakeAPI) (*AuthService, *authstate.Watcher) {
	state := authstate.NewWatcher()
	return NewAuthService(api, ratelimit.NewLoginLimiter(nil), state, zap.NewNop()), state
}

func TestSignUpSuccess(t *testing.T) {
	api := &fakeAPI{}
	s, _ := newService(api)

	user, err := s.SignUp(context.Background(), "maria@example.com", "Abc12345!", "Maria Silva")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.ID)
	assert.Equal(t, "Maria Silva", user.FullName())
}

func TestSignUpPreCheckRoutesDuplicateEmail(t *testing.T) {
	api := &fakeAPI{emailCount: 1}
	s, _ := newService(api)

	_, err := s.SignUp(context.Background(), "maria@example.com", "Abc12345!", "Maria")
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrDuplicateEntry)
	assert.Equal(t, MsgEmailTaken, err.Error())
	assert.Zero(t, api.signUpCalls, "remote signup must not fire when the email is taken")
}

func TestSignUpRemoteDuplicateAlsoRoutesDedicatedPath(t *testing.T) {
	api := &fakeAPI{signUpErr: &account.Error{Kind: account.KindDuplicateEmail, Message: "User already registered"}}
	s, _ := newService(api)

	_, err := s.SignUp(context.Background(), "maria@example.com", "Abc12345!", "Maria")
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrDuplicateEntry)
	assert.Equal(t, MsgEmailTaken, err.Error())
}

func TestSignUpUnreachableServerTranslated(t *testing.T) {
	api := &fakeAPI{signUpErr: &account.Error{Kind: account.KindUnreachable, Message: "Failed to fetch"}}
	s, _ := newService(api)

	_, err := s.SignUp(context.Background(), "maria@example.com", "Abc12345!", "Maria")
	require.Error(t, err)
	assert.Equal(t, MsgServerUnreachable, err.Error())
}

func TestSignUpFlakyEmailCheckDoesNotBlock(t *testing.T) {
	api := &fakeAPI{countErr: &account.Error{Kind: account.KindNetwork, Message: "network down"}}
	s, _ := newService(api)

	_, err := s.SignUp(context.Background(), "maria@example.com", "Abc12345!", "Maria")
	assert.NoError(t, err)
	assert.Equal(t, 1, api.signUpCalls)
}

func TestSignInPublishesSessionChange(t *testing.T) {
	api := &fakeAPI{}
	s, state := newService(api)

	events, unsubscribe := state.Subscribe()
	defer unsubscribe()

	session, err := s.SignIn(context.Background(), "10.0.0.1", "maria@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", session.AccessToken)

	e := <-events
	assert.Equal(t, authstate.SignedIn, e.Type)
	assert.Equal(t, "uid-1", e.UserID)
}

func TestSignInUnknownRejectionReadsAsBadCredentials(t *testing.T) {
	api := &fakeAPI{signInErr: &account.Error{Kind: account.KindUnknown, Message: "Invalid login credentials"}}
	s, _ := newService(api)

	_, err := s.SignIn(context.Background(), "10.0.0.1", "maria@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, MsgBadCredentials, err.Error())
	assert.ErrorIs(t, err, xerrors.ErrUnauthorized)
}

func TestSignInNetworkProblemTranslated(t *testing.T) {
	api := &fakeAPI{signInErr: &account.Error{Kind: account.KindNetwork, Message: "connection reset"}}
	s, _ := newService(api)

	_, err := s.SignIn(context.Background(), "10.0.0.1", "maria@example.com", "pw")
	require.Error(t, err)
	assert.Equal(t, MsgConnectionIssue, err.Error())
}

func TestSignOutPublishesSignedOut(t *testing.T) {
	api := &fakeAPI{}
	s, state := newService(api)

	events, unsubscribe := state.Subscribe()
	defer unsubscribe()

	require.NoError(t, s.SignOut(context.Background(), "tok"))
	e := <-events
	assert.Equal(t, authstate.SignedOut, e.Type)
}

func TestResetPasswordTranslatesFailure(t *testing.T) {
	api := &fakeAPI{resetErr: &account.Error{Kind: account.KindUnreachable, Message: "Failed to fetch"}}
	s, _ := newService(api)

	err := s.ResetPassword(context.Background(), "maria@example.com")
	require.Error(t, err)
	assert.Equal(t, MsgServerUnreachable, err.Error())
}

func TestCurrentUserFallbackSentence(t *testing.T) {
	api := &fakeAPI{getUserErr: &account.Error{Kind: account.KindUnknown, Message: ""}}
	s, _ := newService(api)

	_, err := s.CurrentUser(context.Background(), "tok")
	require.Error(t, err)
	assert.Equal(t, MsgUnexpected, err.Error())
}

func TestCurrentUserKeepsRemoteMessageWhenPresent(t *testing.T) {
	api := &fakeAPI{getUserErr: &account.Error{Kind: account.KindUnknown, Message: "token expired"}}
	s, _ := newService(api)

	_, err := s.CurrentUser(context.Background(), "tok")
	require.Error(t, err)
	assert.Equal(t, "token expired", err.Error())
}
