package appointment

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Колонки, которыми оперирует репозиторий, должны существовать в схеме миграции
func TestAppointmentColumnsMatchMigration(t *testing.T) {
	schemaColumns := migrationTableColumns(t, "appointments")

	for _, column := range appointmentColumns {
		require.Contains(t, schemaColumns, column,
			"column %q used by repository is absent from migrations/001_init.sql", column)
	}
	require.Len(t, appointmentColumns, len(schemaColumns),
		"repository column list diverged from the appointments table")
}

// migrationTableColumns извлекает имена колонок таблицы из DDL миграции
func migrationTableColumns(t *testing.T, table string) map[string]struct{} {
	t.Helper()

	raw, err := os.ReadFile("../../../../migrations/001_init.sql")
	require.NoError(t, err)

	re := regexp.MustCompile(`(?s)CREATE TABLE ` + table + ` \((.*?)\n\);`)
	match := re.FindSubmatch(raw)
	require.NotNil(t, match, "table %q not found in migration", table)

	columns := make(map[string]struct{})
	for _, line := range strings.Split(string(match[1]), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") || strings.HasPrefix(line, "PRIMARY KEY") {
			continue
		}
		columns[strings.Fields(line)[0]] = struct{}{}
	}
	return columns
}
