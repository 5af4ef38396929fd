package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
[database]
user = "studio"
dbname = "studio_booking"

[admin]
jwt_secret = "secret"

[email]
api_key = "re_test"
from = "bookings@studio.test"

[cloudinary]
cloud_name = "demo"
api_key = "key"
api_secret = "secret"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "SHEDIDTHAT", cfg.Booking.ReferencePrefix)
	assert.Equal(t, 10, cfg.Booking.MaxProofSizeMB)
	assert.Equal(t, 5*time.Minute, cfg.Booking.HoldSweepInterval.Duration)
	assert.Zero(t, cfg.Booking.PendingHold())
	assert.Equal(t, "authenticated", cfg.Admin.RequiredRole)
	assert.Empty(t, cfg.RateLimit.TrustedProxies)

	hours, err := cfg.BusinessHours()
	require.NoError(t, err)
	assert.Equal(t, 8, hours.OpenHour)
	assert.Equal(t, 18, hours.CloseHour)
	assert.Equal(t, 30, hours.SlotIntervalMinutes)
	assert.Equal(t, []time.Weekday{time.Sunday}, hours.ClosedWeekdays)
	assert.Equal(t, "Africa/Johannesburg", hours.Location.String())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+`
[business]
timezone = "UTC"
open_hour = 9
close_hour = 17
closed_weekdays = ["Sunday", "monday"]

[booking]
pending_hold_minutes = 120
hold_sweep_interval = "30s"
`))
	require.NoError(t, err)

	hours, err := cfg.BusinessHours()
	require.NoError(t, err)
	assert.Equal(t, 9, hours.OpenHour)
	assert.Equal(t, []time.Weekday{time.Sunday, time.Monday}, hours.ClosedWeekdays)
	assert.Equal(t, 2*time.Hour, cfg.Booking.PendingHold())
	assert.Equal(t, 30*time.Second, cfg.Booking.HoldSweepInterval.Duration)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv(envDBPassword, "from-env")
	t.Setenv(envAdminJWTSecret, "env-secret")

	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "env-secret", cfg.Admin.JWTSecret)
	assert.Contains(t, cfg.Database.DSN(), "password=from-env")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		extra string
	}{
		{"close before open", "[business]\nopen_hour = 18\nclose_hour = 8\n"},
		{"unknown weekday", "[business]\nclosed_weekdays = [\"funday\"]\n"},
		{"unknown timezone", "[business]\ntimezone = \"Mars/Olympus\"\n"},
		{"zero interval", "[business]\nslot_interval_minutes = 0\n"},
		{"negative hold", "[booking]\npending_hold_minutes = -1\n"},
		{"zero proof size", "[booking]\nmax_proof_size_mb = 0\n"},
		{"bad rate limit", "[rate_limit]\nrequests_per_minute = 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, minimalConfig+tt.extra))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	_, err := Load(writeConfig(t, `
[database]
user = "studio"
dbname = "studio_booking"
`))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_BadDuration(t *testing.T) {
	_, err := Load(writeConfig(t, minimalConfig+"[booking]\nhold_sweep_interval = \"soon\"\n"))
	assert.Error(t, err)
}
