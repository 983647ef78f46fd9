package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acm-uic/acm-catalog/internal/agent/config"
)

// NewSignupCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Команда регистрирует пользователя на сервере acm-catalog по email и паролю
// и сразу сохраняет выданный токен в локальный конфигурационный файл
// (регистрация на сервере сразу логинит пользователя).
//
// Пароль по умолчанию запрашивается интерактивно (скрытый ввод).
// Для скриптов доступен флаг --password-stdin.
//
// Пример использования:
//
//	catalogctl signup --email test@example.com --name "Test User"
func NewSignupCmd(app *App) *cobra.Command {
	var (
		email             string
		name              string
		passwordFromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пароль запрашивается скрытым вводом (или читается из STDIN с --password-stdin).

Пример:
  catalogctl signup --email test@example.com
  echo "StrongPass123" | catalogctl signup --email test@example.com --password-stdin
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := ReadPassword(cmd, passwordFromStdin)
			if err != nil {
				return err
			}

			var namePtr *string
			if name != "" {
				namePtr = &name
			}

			c := NewAPIClient(app.ServerURL)
			// регистрируем пользователя и сразу получаем токен
			resp, err := c.Signup(email, password, namePtr)
			if err != nil {
				return err
			}

			app.Creds.Token = resp.Token
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "signup ok: %s (token saved)\n", resp.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().StringVar(&name, "name", "", "display name (optional)")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN")
	cmd.MarkFlagRequired("email")

	return cmd
}
