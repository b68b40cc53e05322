package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/jpdb/jpdb"
)

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		token             string
		wantErr           bool
		want              *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `jpdb:
  base_url: http://localhost:8080/api/v1/
  read_timeout: 30s
  write_timeout: 10s
`,
			token: "secret",
			want: &Config{
				JPDB: JPDBConfig{
					Token:        "secret",
					BaseURL:      "http://localhost:8080/api/v1/",
					ReadTimeout:  30 * time.Second,
					WriteTimeout: 10 * time.Second,
				},
			},
		},
		{
			name: "no config file uses defaults",
			want: &Config{
				JPDB: JPDBConfig{
					BaseURL:      jpdb.DefaultBaseURL,
					ReadTimeout:  jpdb.DefaultReadTimeout,
					WriteTimeout: jpdb.DefaultWriteTimeout,
				},
			},
		},
		{
			name: "partial config with missing fields uses defaults",
			configContent: `jpdb:
  read_timeout: 1m
`,
			want: &Config{
				JPDB: JPDBConfig{
					BaseURL:      jpdb.DefaultBaseURL,
					ReadTimeout:  time.Minute,
					WriteTimeout: jpdb.DefaultWriteTimeout,
				},
			},
		},
		{
			name: "explicit config file path",
			configContent: `jpdb:
  base_url: https://example.com/api/v1
`,
			useExplicitPath: true,
			want: &Config{
				JPDB: JPDBConfig{
					BaseURL:      "https://example.com/api/v1",
					ReadTimeout:  jpdb.DefaultReadTimeout,
					WriteTimeout: jpdb.DefaultWriteTimeout,
				},
			},
		},
		{
			name: "invalid YAML format",
			configContent: `jpdb:
  base_url: http://localhost
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "base url is not a URL",
			configContent: `jpdb:
  base_url: not a url
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
				"jpdb.base_url must be an http or https URL",
			},
		},
		{
			name: "non positive read timeout",
			configContent: `jpdb:
  read_timeout: 0s
  write_timeout: 0s
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
				"read_timeout",
			},
		},
		{
			name: "write timeout longer than read timeout",
			configContent: `jpdb:
  read_timeout: 5s
  write_timeout: 10s
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
				"write_timeout",
			},
		},
		{
			name: "invalid duration",
			configContent: `jpdb:
  read_timeout: soon
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration format",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("HOME", tempDir)
			t.Setenv("JPDB_TOKEN", tt.token)

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "jpdb.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else {
				if tt.configContent != "" {
					require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644))
				}
				t.Chdir(tempDir)
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigLoader_LoadMissingExplicitFile(t *testing.T) {
	loader, err := NewConfigLoader(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	_, err = loader.Load()
	assert.Error(t, err)
}

func TestJPDBConfig_ClientOptions(t *testing.T) {
	cfg := JPDBConfig{
		BaseURL:      "http://localhost:8080/api/v1",
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	}

	client, err := jpdb.NewClient("token", cfg.ClientOptions(slog.Default())...)
	require.NoError(t, err)
	defer client.Close()
	assert.Equal(t, "http://localhost:8080/api/v1/", client.BaseURL())
}
