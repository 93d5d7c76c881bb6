package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadFromEnv_Peer(t *testing.T) {
	t.Setenv("PEERCHAT_PEER", " 10.1.2.3 ")
	cfg := New()
	LoadFromEnv(cfg)
	assert.Equal(t, "10.1.2.3", cfg.PeerAddr)
}

func TestLoadFromEnv_AddrPolicy(t *testing.T) {
	t.Setenv("PEERCHAT_ADDR_POLICY", "LENIENT")
	cfg := New()
	LoadFromEnv(cfg)
	assert.Equal(t, AddrLenient, cfg.AddrPolicy)
}

func TestLoadFromEnv_Timeout(t *testing.T) {
	t.Setenv("PEERCHAT_TIMEOUT", "10")
	cfg := New()
	LoadFromEnv(cfg)
	assert.Equal(t, 10*time.Second, cfg.DialTimeout)
}

func TestLoadFromEnv_Booleans(t *testing.T) {
	for _, v := range []string{"1", "true", "yes", "TRUE", "Yes"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("PEERCHAT_TIMESTAMPS", v)
			cfg := New()
			LoadFromEnv(cfg)
			assert.True(t, cfg.Timestamps)
		})
	}
}

func TestLoadFromEnv_Verbose(t *testing.T) {
	t.Setenv("PEERCHAT_VERBOSE", "3")
	cfg := New()
	LoadFromEnv(cfg)
	assert.Equal(t, 3, cfg.Verbose)
}

func TestLoadFromEnv_PortNotOverridable(t *testing.T) {
	t.Setenv("PEERCHAT_PORT", "9999")
	cfg := New()
	LoadFromEnv(cfg)
	assert.Equal(t, DefaultPort, cfg.Port)
}

func TestLoadFromEnv_NoOverrideWhenEmpty(t *testing.T) {
	for _, k := range []string{"PEERCHAT_PEER", "PEERCHAT_ADDR_POLICY", "PEERCHAT_TIMEOUT", "PEERCHAT_VERBOSE", "PEERCHAT_TIMESTAMPS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg := New()
	cfg.PeerAddr = "original"
	LoadFromEnv(cfg)

	assert.Equal(t, "original", cfg.PeerAddr)
	assert.Equal(t, AddrStrict, cfg.AddrPolicy)
	assert.Zero(t, cfg.DialTimeout)
}

func TestLoadFromEnv_InvalidIntIgnored(t *testing.T) {
	t.Setenv("PEERCHAT_TIMEOUT", "not-a-number")
	cfg := New()
	LoadFromEnv(cfg)
	assert.Zero(t, cfg.DialTimeout)
}
