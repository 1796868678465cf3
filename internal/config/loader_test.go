package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoader(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T) []string
		wantErr bool
		assert  func(t *testing.T, cfg Config)
	}{
		{
			name: "returns defaults when no overrides",
			setup: func(t *testing.T) []string {
				t.Setenv("NICKGATE_SERVER__AUTH__KEYS", "test-key")
				return nil
			},
			assert: func(t *testing.T, cfg Config) {
				require.Equal(t, 8080, cfg.Server.Listen.Port)
				require.Equal(t, "memory", cfg.Server.Cache.Backend)
				require.Equal(t, 300, cfg.Server.Cache.TTLSeconds)
				require.Equal(t, "https://order.codashop.com", cfg.Server.Upstream.CodashopURL)
				require.Equal(t, "*", cfg.Server.HTTP.AllowOrigin)
			},
		},
		{
			name: "merges file overrides",
			setup: func(t *testing.T) []string {
				dir := t.TempDir()
				path := filepath.Join(dir, "server.yaml")
				contents := "server:\n  listen:\n    port: 9090\n  auth:\n    keys:\n      - file-key\n  cache:\n    ttlSeconds: 60\n"
				require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
				return []string{path}
			},
			assert: func(t *testing.T, cfg Config) {
				require.Equal(t, 9090, cfg.Server.Listen.Port)
				require.Equal(t, []string{"file-key"}, cfg.Server.Auth.Keys)
				require.Equal(t, 60, cfg.Server.Cache.TTLSeconds)
			},
		},
		{
			name: "loads json files by extension",
			setup: func(t *testing.T) []string {
				dir := t.TempDir()
				path := filepath.Join(dir, "server.json")
				contents := `{"server":{"listen":{"port":9095},"auth":{"keys":["json-key"]}}}`
				require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
				return []string{path}
			},
			assert: func(t *testing.T, cfg Config) {
				require.Equal(t, 9095, cfg.Server.Listen.Port)
				require.Equal(t, []string{"json-key"}, cfg.Server.Auth.Keys)
			},
		},
		{
			name: "prefers env overrides",
			setup: func(t *testing.T) []string {
				dir := t.TempDir()
				path := filepath.Join(dir, "server.yaml")
				contents := "server:\n  listen:\n    port: 9090\n  auth:\n    keys:\n      - file-key\n"
				require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
				t.Setenv("NICKGATE_SERVER__LISTEN__PORT", "9091")
				return []string{path}
			},
			assert: func(t *testing.T, cfg Config) {
				require.Equal(t, 9091, cfg.Server.Listen.Port)
			},
		},
		{
			name: "maps camel-case env keys",
			setup: func(t *testing.T) []string {
				t.Setenv("NICKGATE_SERVER__AUTH__KEYS", "test-key")
				t.Setenv("NICKGATE_SERVER__CACHE__TTLSECONDS", "45")
				t.Setenv("NICKGATE_SERVER__UPSTREAM__CODASHOPURL", "https://mirror.invalid")
				t.Setenv("NICKGATE_SERVER__HTTP__ALLOWORIGIN", "https://app.example.com")
				return nil
			},
			assert: func(t *testing.T, cfg Config) {
				require.Equal(t, 45, cfg.Server.Cache.TTLSeconds)
				require.Equal(t, "https://mirror.invalid", cfg.Server.Upstream.CodashopURL)
				require.Equal(t, "https://app.example.com", cfg.Server.HTTP.AllowOrigin)
			},
		},
		{
			name: "fails when file missing",
			setup: func(t *testing.T) []string {
				dir := t.TempDir()
				return []string{filepath.Join(dir, "missing.yaml")}
			},
			wantErr: true,
		},
		{
			name: "fails validation without keys",
			setup: func(t *testing.T) []string {
				return nil
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			files := tc.setup(t)
			loader := NewLoader("NICKGATE", files...)
			cfg, err := loader.Load(context.Background())
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tc.assert(t, cfg)
		})
	}
}
