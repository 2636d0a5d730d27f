//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"lab-dashboard/internal/domain/user"
	"lab-dashboard/internal/pkg/clock"
	"lab-dashboard/internal/pkg/config"
	"lab-dashboard/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg   config.JWTConfig
	clock clock.Clock
}

// NewJWTHelper issues tokens on clk, which must be the clock the server validates with.
func NewJWTHelper(cfg config.JWTConfig, clk clock.Clock) *JWTHelper {
	return &JWTHelper{cfg: cfg, clock: clk}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, h.clock)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken issues a token an hour before the helper's clock.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	past := clock.NewMockClock(h.clock.Now().Add(-time.Hour))
	service := jwt.NewService(h.cfg.Secret, time.Minute, past)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
