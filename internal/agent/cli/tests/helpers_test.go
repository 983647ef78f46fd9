package tests

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/acm-uic/acm-catalog/internal/agent/cli"
	"github.com/acm-uic/acm-catalog/internal/agent/config"
)

// newApp собирает состояние CLI с временным файлом учётных данных.
func newApp(t *testing.T, serverURL, token string) *cli.App {
	t.Helper()

	return &cli.App{
		ServerURL: serverURL,
		CredsPath: filepath.Join(t.TempDir(), "credentials.json"),
		Creds:     &config.Credentials{Token: token},
	}
}

// stubPassword подменяет интерактивный ввод пароля на фиксированное значение.
func stubPassword(t *testing.T, password string) {
	t.Helper()

	orig := cli.ReadPassword
	cli.ReadPassword = func(cmd *cobra.Command, fromStdin bool) (string, error) {
		return password, nil
	}
	t.Cleanup(func() { cli.ReadPassword = orig })
}

// runCmd выполняет команду с перехватом stdout и stderr.
func runCmd(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// savedToken читает токен, сохранённый командой в файл учётных данных.
func savedToken(t *testing.T, app *cli.App) string {
	t.Helper()

	creds, err := config.Load(app.CredsPath)
	if err != nil {
		t.Fatalf("load credentials: %v", err)
	}
	return creds.Token
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && indexOf(s, substr) >= 0
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
