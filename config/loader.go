package config

// loader.go - configuration loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. Defaults   (defaults.go)

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the PEERCHAT_ prefix.  Boolean values
// accept "1", "true", "yes" (case-insensitive).  The port has no
// override.

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  This should be called BEFORE
// CLI flag parsing so that flags take precedence.
func LoadFromEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("PEERCHAT_PEER")); v != "" {
		cfg.PeerAddr = v
	}
	if v := os.Getenv("PEERCHAT_ADDR_POLICY"); v != "" {
		cfg.AddrPolicy = AddrPolicy(strings.ToLower(v))
	}
	if v := envInt("PEERCHAT_TIMEOUT"); v > 0 {
		cfg.DialTimeout = secondsDuration(v)
	}
	if v := envInt("PEERCHAT_VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
	if envBool("PEERCHAT_TIMESTAMPS") {
		cfg.Timestamps = true
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}

func secondsDuration(sec int) time.Duration {
	return time.Duration(sec) * time.Second
}
