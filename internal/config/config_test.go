package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name: "missing bot token",
			env: map[string]string{
				"RECOMMENDER_URL": "http://localhost:8000",
				"DB_PASSWORD":     "secret",
			},
			wantErr: "BOT_TOKEN is required",
		},
		{
			name: "missing recommender url",
			env: map[string]string{
				"BOT_TOKEN":   "token",
				"DB_PASSWORD": "secret",
			},
			wantErr: "RECOMMENDER_URL is required",
		},
		{
			name: "missing db password",
			env: map[string]string{
				"BOT_TOKEN":       "token",
				"RECOMMENDER_URL": "http://localhost:8000",
			},
			wantErr: "DB_PASSWORD is required",
		},
		{
			name: "bad recommend limit",
			env: map[string]string{
				"BOT_TOKEN":       "token",
				"RECOMMENDER_URL": "http://localhost:8000",
				"DB_PASSWORD":     "secret",
				"RECOMMEND_LIMIT": "zero",
			},
			wantErr: "RECOMMEND_LIMIT must be a positive integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.env {
				os.Setenv(k, v)
			}
			defer os.Clearenv()

			cfg, err := Load()

			assert.Nil(t, cfg)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("BOT_TOKEN", "token")
	os.Setenv("RECOMMENDER_URL", "http://localhost:8000")
	os.Setenv("DB_PASSWORD", "secret")
	defer os.Clearenv()

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, 10, cfg.RecommendLimit)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "shelfmark", cfg.Database.Name)
}
