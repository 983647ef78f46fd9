package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMeCmd создаёт CLI-команду для просмотра профиля текущего пользователя.
//
// Команда отправляет запрос на /api/auth/me с сохранённым токеном
// и выводит публичный профиль (id, email, name, created_at).
//
// Пример использования:
//
//	catalogctl me
func NewMeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "me",
		Short:        "Профиль текущего пользователя",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.Token == "" {
				return fmt.Errorf("no token, run: catalogctl login")
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.Me(app.Creds.Token)
			if err != nil {
				return err
			}

			name := "-"
			if resp.User.Name != nil {
				name = *resp.User.Name
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"id=%s\nemail=%s\nname=%s\ncreated_at=%s\n",
				resp.User.ID, resp.User.Email, name, resp.User.CreatedAt,
			)
			return nil
		},
	}
}
