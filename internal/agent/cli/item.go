package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acm-uic/acm-catalog/internal/shared/models"
	"github.com/acm-uic/acm-catalog/internal/shared/utils"
)

// NewItemCmd создаёт группу CLI-команд для работы с каталогом оборудования.
//
// Подкоманды:
//
//	item list              — все позиции каталога (без токена)
//	item get <id>          — одна позиция (без токена)
//	item create            — создать позицию (нужен токен)
//	item update <id>       — частично обновить позицию (нужен токен)
//	item delete <id>       — удалить позицию (нужен токен)
func NewItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Работа с каталогом оборудования",
	}

	cmd.AddCommand(newItemListCmd(app))
	cmd.AddCommand(newItemGetCmd(app))
	cmd.AddCommand(newItemCreateCmd(app))
	cmd.AddCommand(newItemUpdateCmd(app))
	cmd.AddCommand(newItemDeleteCmd(app))

	return cmd
}

// printItem пишет позицию каталога в однострочном формате списка.
func printItem(cmd *cobra.Command, it models.Item) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s  qty=%d  %s\n", it.ID, it.Qty, it.Name)
	if it.Description != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", it.Description)
	}
}

// requireToken проверяет, что пользователь залогинен.
func requireToken(app *App) error {
	if app.Creds == nil || app.Creds.Token == "" {
		return fmt.Errorf("no token, run: catalogctl login")
	}
	return nil
}

func newItemListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "Показать все позиции каталога",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			resp, err := c.ListItems()
			if err != nil {
				return err
			}

			if len(resp.Items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "catalog is empty")
				return nil
			}
			for _, it := range resp.Items {
				printItem(cmd, it)
			}
			return nil
		},
	}
}

func newItemGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "get <id>",
		Short:        "Показать одну позицию каталога",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			resp, err := c.GetItem(args[0])
			if err != nil {
				return err
			}

			it := resp.Item
			fmt.Fprintf(cmd.OutOrStdout(),
				"id=%s\nname=%s\ndescription=%s\nqty=%d\nupdated_at=%s\ncreated_at=%s\n",
				it.ID, it.Name, it.Description, it.Qty,
				it.UpdatedAt.Format("2006-01-02 15:04:05"),
				it.CreatedAt.Format("2006-01-02 15:04:05"),
			)
			return nil
		},
	}
}

func newItemCreateCmd(app *App) *cobra.Command {
	var (
		name        string
		description string
		qty         int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать позицию каталога",
		Long: `Создаёт новую позицию каталога.

Пример:
  catalogctl item create --name "Oscilloscope" --description "Rigol DS1054Z" --qty 3
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(app); err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.CreateItem(models.CreateItemRequest{
				Name:        name,
				Description: description,
				Qty:         qty,
			}, app.Creds.Token)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created item %s\n", resp.Item.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "item name")
	cmd.Flags().StringVar(&description, "description", "", "item description")
	cmd.Flags().IntVar(&qty, "qty", 0, "quantity available")
	cmd.MarkFlagRequired("name")

	return cmd
}

func newItemUpdateCmd(app *App) *cobra.Command {
	var (
		name        string
		description string
		qty         int
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Частично обновить позицию каталога",
		Long: `Обновляет только те поля, чьи флаги заданы.

Пример:
  catalogctl item update 8bd4e27a-... --qty 5
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(app); err != nil {
				return err
			}

			// передаём на сервер только изменённые флаги
			var req models.UpdateItemRequest
			if cmd.Flags().Changed("name") {
				req.Name = utils.StrPtr(name)
			}
			if cmd.Flags().Changed("description") {
				req.Description = utils.StrPtr(description)
			}
			if cmd.Flags().Changed("qty") {
				req.Qty = utils.IntPtr(qty)
			}
			if req.Name == nil && req.Description == nil && req.Qty == nil {
				return fmt.Errorf("nothing to update: set --name, --description or --qty")
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.UpdateItem(args[0], req, app.Creds.Token)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated item %s\n", resp.Item.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "item name")
	cmd.Flags().StringVar(&description, "description", "", "item description")
	cmd.Flags().IntVar(&qty, "qty", 0, "quantity available")

	return cmd
}

func newItemDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "delete <id>",
		Short:        "Удалить позицию каталога",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(app); err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			if _, err := c.DeleteItem(args[0], app.Creds.Token); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted item %s\n", args[0])
			return nil
		},
	}
}
