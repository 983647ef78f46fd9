package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acm-uic/acm-catalog/internal/agent/config"
)

// NewLoginCmd создаёт CLI-команду для входа пользователя в систему.
//
// Команда выполняет аутентификацию пользователя на сервере acm-catalog,
// получает токен (действует 30 дней) и сохраняет его в локальный
// конфигурационный файл.
//
// Пароль по умолчанию запрашивается интерактивно (скрытый ввод).
// Для скриптов доступен флаг --password-stdin.
//
// Пример использования:
//
//	catalogctl login --email test@example.com
func NewLoginCmd(app *App) *cobra.Command {
	var (
		email             string
		passwordFromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Логин пользователя (получить токен)",
		Long: `Логин пользователя.

Пароль запрашивается скрытым вводом (или читается из STDIN с --password-stdin).

Пример:
  catalogctl login --email test@example.com
  echo "StrongPass123" | catalogctl login --email test@example.com --password-stdin
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := ReadPassword(cmd, passwordFromStdin)
			if err != nil {
				return err
			}

			// создаём API-клиент для общения с сервером
			c := NewAPIClient(app.ServerURL)
			// выполняем логин пользователя
			resp, err := c.Login(email, password)
			if err != nil {
				return err
			}

			// сохраняем полученный токен в состоянии приложения
			app.Creds.Token = resp.Token

			// сохраняем токен в локальный конфигурационный файл
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "login ok (token saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for login")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN")
	cmd.MarkFlagRequired("email")

	return cmd
}
