package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acm-uic/acm-catalog/internal/agent/config"
)

// NewLogoutCmd создаёт CLI-команду выхода.
//
// Сервер на logout ничего не инвалидирует (токен остаётся действительным
// до истечения 30 дней), поэтому главное действие команды — удаление
// токена из локального конфигурационного файла.
//
// Пример использования:
//
//	catalogctl logout
func NewLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "logout",
		Short:        "Выход (удалить локальный токен)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// уведомляем сервер; ошибка сети не мешает локальному выходу
			c := NewAPIClient(app.ServerURL)
			if _, err := c.Logout(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "server logout failed: %v\n", err)
			}

			app.Creds.Token = ""
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "logout ok (local token removed)")
			return nil
		},
	}
}
