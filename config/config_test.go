package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ncerr "peerchat/internal/errors"
)

// ── ParseRole ────────────────────────────────────────────────────────

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Role
		wantErr error
	}{
		{"server", []string{"server"}, RoleListener, nil},
		{"client", []string{"client"}, RoleDialer, nil},
		{"no args", nil, "", ncerr.ErrNoRole},
		{"two args", []string{"server", "client"}, "", ncerr.ErrNoRole},
		{"unknown", []string{"peer"}, "", ncerr.ErrUnknownRole},
		{"case sensitive", []string{"Server"}, "", ncerr.ErrUnknownRole},
		{"empty", []string{""}, "", ncerr.ErrUnknownRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRole(tt.args)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, ncerr.IsUsage(err), "want UsageError, got %T", err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "listener", RoleListener.String())
	assert.Equal(t, "dialer", RoleDialer.String())
	assert.Equal(t, "unknown", Role("x").String())
}

// ── Address policy ───────────────────────────────────────────────────

func TestParseAddrPolicy(t *testing.T) {
	p, err := ParseAddrPolicy("Strict")
	require.NoError(t, err)
	assert.Equal(t, AddrStrict, p)

	p, err = ParseAddrPolicy("lenient")
	require.NoError(t, err)
	assert.Equal(t, AddrLenient, p)

	_, err = ParseAddrPolicy("loose")
	assert.True(t, ncerr.IsUsage(err))
}

func TestResolvePeerAddr(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		policy       AddrPolicy
		want         string
		wantFallback bool
		wantErr      error
	}{
		{"strict valid", "127.0.0.1", AddrStrict, "127.0.0.1", false, nil},
		{"strict trims newline", "10.0.0.7\n", AddrStrict, "10.0.0.7", false, nil},
		{"strict hostname", "localhost", AddrStrict, "", false, ncerr.ErrBadAddress},
		{"strict ipv6", "::1", AddrStrict, "", false, ncerr.ErrBadAddress},
		{"strict empty", "", AddrStrict, "", false, ncerr.ErrNoAddress},
		{"lenient valid", "192.168.1.1", AddrLenient, "192.168.1.1", false, nil},
		{"lenient garbage", "not-an-ip", AddrLenient, LenientFallbackAddr, true, nil},
		{"lenient empty", "", AddrLenient, LenientFallbackAddr, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fallback, err := ResolvePeerAddr(tt.raw, tt.policy)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, ncerr.IsUsage(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantFallback, fallback)
		})
	}
}

// ── Config.Validate ──────────────────────────────────────────────────

func TestNew_Defaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, AddrStrict, cfg.AddrPolicy)
	assert.Empty(t, cfg.Role)
}

func TestValidate(t *testing.T) {
	valid := func(mut func(c *Config)) Config {
		c := New()
		c.Role = RoleListener
		mut(c)
		return *c
	}

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid listener", valid(func(c *Config) {}), false},
		{"valid dialer no addr", valid(func(c *Config) { c.Role = RoleDialer }), false},
		{"valid dialer addr", valid(func(c *Config) { c.Role = RoleDialer; c.PeerAddr = "127.0.0.1" }), false},
		{"dialer bad addr strict", valid(func(c *Config) { c.Role = RoleDialer; c.PeerAddr = "nope" }), true},
		{"dialer bad addr lenient", valid(func(c *Config) {
			c.Role = RoleDialer
			c.PeerAddr = "nope"
			c.AddrPolicy = AddrLenient
		}), false},
		{"listener ignores addr", valid(func(c *Config) { c.PeerAddr = "nope" }), false},
		{"no role", valid(func(c *Config) { c.Role = "" }), true},
		{"bad role", valid(func(c *Config) { c.Role = "peer" }), true},
		{"port too high", valid(func(c *Config) { c.Port = 70000 }), true},
		{"ephemeral port", valid(func(c *Config) { c.Port = 0 }), false},
		{"bad policy", valid(func(c *Config) { c.AddrPolicy = "loose" }), true},
		{"negative timeout", valid(func(c *Config) { c.DialTimeout = -time.Second }), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, ncerr.IsUsage(err), "want UsageError, got %T: %v", err, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_ErrorMessages(t *testing.T) {
	cfg := New()
	cfg.Role = RoleDialer
	cfg.PeerAddr = "host.example"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hint:")
	assert.Contains(t, err.Error(), "lenient")
}
