package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, "ALL Accra Graph Data", cfg.Sheets.SheetName)
	require.Equal(t, "Accra", cfg.Report.CampusName)
	require.Equal(t, "0 6 * * 1", cfg.Report.Schedule)
	require.Equal(t, 2*time.Minute, cfg.Report.QueryTimeout)
	require.Equal(t, "neo4j://localhost:7687", cfg.Graph.URI)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_FileValues(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
graph:
  uri: neo4j+s://graph.example.com
  username: reader
  password: secret
notifier:
  baseUrl: https://notify.example.com
  secretKey: shh
  recipients:
    - "233200000001"
    - "233200000002"
report:
  campusName: Kumasi
  queryTimeout: 30s
`))
	require.NoError(t, err)

	require.Equal(t, "neo4j+s://graph.example.com", cfg.Graph.URI)
	require.Equal(t, "reader", cfg.Graph.Username)
	require.Equal(t, "https://notify.example.com", cfg.Notifier.BaseURL)
	require.Equal(t, []string{"233200000001", "233200000002"}, cfg.Notifier.Recipients)
	require.Equal(t, "Kumasi", cfg.Report.CampusName)
	require.Equal(t, 30*time.Second, cfg.Report.QueryTimeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("REPORT_CAMPUS_NAME", "Tema")
	t.Setenv("NOTIFY_RECIPIENTS", "1,2,3")

	cfg, err := config.Load(writeConfig(t, "report:\n  campusName: Kumasi\n"))
	require.NoError(t, err)
	require.Equal(t, "Tema", cfg.Report.CampusName)
	require.Equal(t, []string{"1", "2", "3"}, cfg.Notifier.Recipients)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
