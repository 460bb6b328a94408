package v1handler

import (
	"context"
	"fmt"

	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/api/specs/v1specs"
	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/config"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/logger"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ctxKey string

// OperatorIDKey holds the uuid.UUID of the authenticated operator.
const OperatorIDKey ctxKey = "operatorID"

// SecHandlerOptions configure bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is a PEM encoded RSA public key.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler verifies RS256 bearer tokens whose subject is an operator UUID.
type SecHandler struct {
	parser *jwt.Parser
	key    any
}

var _ v1specs.SecurityHandler = (*SecHandler)(nil)

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
		key: key,
	}, nil
}

// HandleBearerAuth validates the token and stores the operator id in ctx.
func (s *SecHandler) HandleBearerAuth(
	ctx context.Context,
	operationName v1specs.OperationName,
	t v1specs.BearerAuth,
) (context.Context, error) {
	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(t.Token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	operatorID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	ctx = context.WithValue(ctx, OperatorIDKey, operatorID)

	return logger.WithFields(ctx,
		zap.Stringer("operatorID", operatorID),
		zap.String("operation", operationName)), nil
}
