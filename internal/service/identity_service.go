package service

import (
	"context"

	"swadesh-ai-be/internal/identity"
	"swadesh-ai-be/internal/pkg/logger"
	"swadesh-ai-be/internal/repository/specification"
	"swadesh-ai-be/internal/repository/unitofwork"
)

type IIdentityResolver interface {
	// Resolve never fails: anything short of a valid session for an
	// existing user is Anonymous.
	Resolve(ctx context.Context, creds identity.Credentials) identity.Identity
}

type identityResolver struct {
	sessions   ISessionService
	uowFactory unitofwork.RepositoryFactory // nil without a database
	logger     logger.ILogger
}

func NewIdentityResolver(sessions ISessionService, uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IIdentityResolver {
	return &identityResolver{sessions: sessions, uowFactory: uowFactory, logger: log}
}

func (r *identityResolver) Resolve(ctx context.Context, creds identity.Credentials) identity.Identity {
	// Checked first so a guest request never touches storage.
	if creds.GuestMode {
		return identity.Guest()
	}
	if creds.SessionToken == "" || r.uowFactory == nil {
		return identity.Anonymous()
	}

	session, err := r.sessions.Lookup(ctx, creds.SessionToken)
	if err != nil {
		r.logger.Warn("IDENTITY", "Session store lookup failed", map[string]interface{}{"error": err.Error()})
		return identity.Anonymous()
	}
	if session == nil {
		return identity.Anonymous()
	}

	uow := r.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByUserID{ID: session.UserId})
	if err != nil {
		r.logger.Warn("IDENTITY", "User lookup failed", map[string]interface{}{
			"user_id": session.UserId,
			"error":   err.Error(),
		})
		return identity.Anonymous()
	}
	if user == nil {
		return identity.Anonymous()
	}

	return identity.Authenticated(user.Id)
}
