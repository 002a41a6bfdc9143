// internal/service/auth/auth.go
package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domain "rxautos-service/internal/domain/account"
	"rxautos-service/internal/pkg/authstate"
	xerrors "rxautos-service/internal/pkg/errors"
	"rxautos-service/internal/pkg/ratelimit"
	account "rxautos-service/internal/repository/account"
)

// Fixed user-facing sentences. Remote failures are translated into exactly
// one of these; raw service messages never reach the user.
const (
	MsgServerUnreachable = "Não foi possível conectar ao servidor. Por favor, tente novamente."
	MsgEmailTaken        = "Este email já está cadastrado. Por favor, faça login ou use outro email."
	MsgConnectionIssue   = "Problema de conexão detectado. Por favor, verifique sua internet."
	MsgUnexpected        = "Ocorreu um erro inesperado. Por favor, tente novamente."
	MsgBadCredentials    = "Email ou senha incorretos"
	MsgTooManyAttempts   = "Muitas tentativas de login. Tente novamente em 15 minutos."
)

// AccountAPI is the slice of the hosted account/data service the auth flow
// consumes.
type AccountAPI interface {
	SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) (*domain.User, error)
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error)
	SignOut(ctx context.Context, token string) error
	ResetPasswordForEmail(ctx context.Context, email string) error
	GetUser(ctx context.Context, token string) (*domain.User, error)
	CountByEmail(ctx context.Context, email string) (int, error)
}

type AuthService struct {
	api     AccountAPI
	limiter *ratelimit.LoginLimiter
	state   *authstate.Watcher
	logger  *zap.Logger
}

func NewAuthService(api AccountAPI, limiter *ratelimit.LoginLimiter, state *authstate.Watcher, logger *zap.Logger) *AuthService {
	return &AuthService{
		api:     api,
		limiter: limiter,
		state:   state,
		logger:  logger,
	}
}

// translatedError carries the user-facing sentence while keeping the original
// cause reachable for errors.Is.
type translatedError struct {
	msg   string
	cause error
}

func (e *translatedError) Error() string { return e.msg }
func (e *translatedError) Unwrap() error { return e.cause }

// translate maps a boundary-tagged remote failure to its fixed sentence.
func translate(err error) error {
	var remoteErr *account.Error
	if errors.As(err, &remoteErr) {
		switch remoteErr.Kind {
		case account.KindUnreachable:
			return &translatedError{msg: MsgServerUnreachable, cause: err}
		case account.KindDuplicateEmail:
			return &translatedError{msg: MsgEmailTaken, cause: xerrors.ErrDuplicateEntry}
		case account.KindNetwork:
			return &translatedError{msg: MsgConnectionIssue, cause: err}
		}
		if remoteErr.Message != "" {
			return &translatedError{msg: remoteErr.Message, cause: err}
		}
	}
	return &translatedError{msg: MsgUnexpected, cause: err}
}

// EmailExists checks the profile table for an email. Lookup failures count as
// "not registered" so a flaky check never blocks a signup outright.
func (s *AuthService) EmailExists(ctx context.Context, email string) bool {
	count, err := s.api.CountByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("email existence check failed", zap.Error(err))
		return false
	}
	return count > 0
}

// SignUp registers a new account. A duplicate email — detected either by the
// pre-check or by the remote rejection — comes back matching
// xerrors.ErrDuplicateEntry so callers can route it to the dedicated path.
func (s *AuthService) SignUp(ctx context.Context, email, password, fullName string) (*domain.User, error) {
	if s.EmailExists(ctx, email) {
		return nil, &translatedError{msg: MsgEmailTaken, cause: xerrors.ErrDuplicateEntry}
	}

	user, err := s.api.SignUp(ctx, email, password, map[string]interface{}{"full_name": fullName})
	if err != nil {
		s.logger.Error("signup failed", zap.String("email", email), zap.Error(err))
		return nil, translate(err)
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID), zap.String("email", email))
	return user, nil
}

// SignIn authenticates against the hosted service and publishes the session
// change. A rejection with no recognizable category reads as bad credentials.
func (s *AuthService) SignIn(ctx context.Context, ip, email, password string) (*domain.Session, error) {
	allowed, remaining, err := s.limiter.Allow(ctx, ip, email)
	if err != nil {
		s.logger.Warn("login rate limiter unavailable", zap.Error(err))
	} else if !allowed {
		return nil, &translatedError{msg: MsgTooManyAttempts, cause: xerrors.ErrRateLimited}
	}

	session, err := s.api.SignInWithPassword(ctx, email, password)
	if err != nil {
		s.logger.Warn("login failed",
			zap.String("email", email),
			zap.String("ip", ip),
			zap.Int64("attempts_remaining", remaining),
			zap.Error(err),
		)
		var remoteErr *account.Error
		if errors.As(err, &remoteErr) && remoteErr.Kind == account.KindUnknown {
			return nil, &translatedError{msg: MsgBadCredentials, cause: xerrors.ErrUnauthorized}
		}
		return nil, translate(err)
	}

	if err := s.limiter.Reset(ctx, ip, email); err != nil {
		s.logger.Warn("failed to reset login attempts", zap.Error(err))
	}

	if session.User != nil {
		s.state.Publish(authstate.Event{
			Type:   authstate.SignedIn,
			UserID: session.User.ID,
			Email:  session.User.Email,
		})
	}
	return session, nil
}

// SignOut revokes the session and publishes the change.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	if err := s.api.SignOut(ctx, token); err != nil {
		s.logger.Warn("logout failed", zap.Error(err))
		return translate(err)
	}
	s.state.Publish(authstate.Event{Type: authstate.SignedOut})
	return nil
}

// ResetPassword asks the hosted service to send a recovery email.
func (s *AuthService) ResetPassword(ctx context.Context, email string) error {
	if err := s.api.ResetPasswordForEmail(ctx, email); err != nil {
		s.logger.Warn("password reset failed", zap.String("email", email), zap.Error(err))
		return translate(err)
	}
	return nil
}

// CurrentUser resolves the user behind a session token.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	user, err := s.api.GetUser(ctx, token)
	if err != nil {
		return nil, translate(err)
	}
	return user, nil
}
