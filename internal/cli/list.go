package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/storenav/internal/store"
	"github.com/katalvlaran/storenav/shoplist"
)

func listCmd(a *app) *cobra.Command {
	var list string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Manage stored shopping lists",
	}
	cmd.PersistentFlags().StringVarP(&list, "list", "l", store.DefaultList, "list name")

	var id string
	add := &cobra.Command{
		Use:   "add name@aisle:section",
		Short: "Add an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := ParseItem(args[0])
			if err != nil {
				return err
			}
			it.ID = id
			g, err := a.grid()
			if err != nil {
				return err
			}
			if err := (shoplist.List{{ID: "new", Aisle: it.Aisle, Section: it.Section}}).Validate(g); err != nil {
				return err
			}

			st, err := a.store()
			if err != nil {
				return err
			}
			defer st.Close()
			it, err = st.Add(cmd.Context(), list, it)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Added %s %s\n", it.ID, it)
			return nil
		},
	}
	add.Flags().StringVar(&id, "id", "", "item id (default: random UUID)")

	rm := &cobra.Command{
		Use:   "rm id",
		Short: "Remove an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.store()
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.Remove(cmd.Context(), list, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed %s\n", args[0])
			return nil
		},
	}

	ls := &cobra.Command{
		Use:   "ls",
		Short: "Show a list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.store()
			if err != nil {
				return err
			}
			defer st.Close()
			items, err := st.Items(cmd.Context(), list)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintf(out, "List %q is empty\n", list)
				return nil
			}
			fmt.Fprintf(out, "List %q, %d item(s):\n\n", list, len(items))
			for _, it := range items {
				fmt.Fprintf(out, "%-36s %s\n", it.ID, it)
			}
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every item of a list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.store()
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.Clear(cmd.Context(), list); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Cleared %q\n", list)
			return nil
		},
	}

	cmd.AddCommand(add, rm, ls, clearCmd)
	return cmd
}
