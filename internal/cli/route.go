package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/storenav/internal/store"
	"github.com/katalvlaran/storenav/narrate"
	"github.com/katalvlaran/storenav/navigator"
	"github.com/katalvlaran/storenav/shoplist"
)

func routeCmd(a *app) *cobra.Command {
	var (
		list   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "route [name@aisle:section ...]",
		Short: "Plan and narrate a route",
		Long: `Plan a route for the items given as arguments, or for a stored list
when no arguments are given.`,
		Example: `  storenav route Milk@5:2 Bread@3:2
  storenav route --list weekly`,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.routeItems(cmd, list, args)
			if err != nil {
				return err
			}
			p, err := a.planner()
			if err != nil {
				return err
			}

			res, planErr := p.Plan(items)
			if planErr != nil {
				a.log.Warn("route failed", "err", planErr)
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(res); err != nil {
					return err
				}
			} else {
				printResult(out, res)
			}
			return planErr
		},
	}
	cmd.Flags().StringVarP(&list, "list", "l", store.DefaultList, "stored list to route when no items are given")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func (a *app) routeItems(cmd *cobra.Command, list string, args []string) (shoplist.List, error) {
	if len(args) == 0 {
		st, err := a.store()
		if err != nil {
			return nil, err
		}
		defer st.Close()
		return st.Items(cmd.Context(), list)
	}
	items := make(shoplist.List, 0, len(args))
	for i, arg := range args {
		it, err := ParseItem(arg)
		if err != nil {
			return nil, err
		}
		it.ID = strconv.Itoa(i + 1)
		items = append(items, it)
	}
	return items, nil
}

// ParseItem reads "name@aisle:section".
func ParseItem(s string) (shoplist.Item, error) {
	name, loc, ok := strings.Cut(s, "@")
	if !ok || strings.TrimSpace(name) == "" {
		return shoplist.Item{}, fmt.Errorf("item %q: want name@aisle:section", s)
	}
	as, ss, ok := strings.Cut(loc, ":")
	if !ok {
		return shoplist.Item{}, fmt.Errorf("item %q: want name@aisle:section", s)
	}
	aisle, err := strconv.Atoi(as)
	if err != nil {
		return shoplist.Item{}, fmt.Errorf("item %q: aisle: %w", s, err)
	}
	section, err := strconv.Atoi(ss)
	if err != nil {
		return shoplist.Item{}, fmt.Errorf("item %q: section: %w", s, err)
	}
	return shoplist.Item{Name: strings.TrimSpace(name), Aisle: aisle, Section: section}, nil
}

var (
	turnColor   = color.New(color.FgCyan)
	itemColor   = color.New(color.FgGreen, color.Bold)
	finishColor = color.New(color.FgMagenta)
	warnColor   = color.New(color.FgYellow)
)

func printResult(w io.Writer, res *navigator.Result) {
	for i, in := range res.Instructions {
		text := in.Text
		switch {
		case in.Kind.IsItemTurn() || in.Kind == narrate.KindScan:
			text = itemColor.Sprint(text)
		case in.Kind == narrate.KindLeft || in.Kind == narrate.KindRight:
			text = turnColor.Sprint(text)
		case in.Kind == narrate.KindFinish:
			text = finishColor.Sprint(text)
		}
		fmt.Fprintf(w, "%3d. %-11s %s\n", i+1, in.Kind, text)
	}
	for _, it := range res.Unreachable {
		fmt.Fprintf(w, "%s %s\n", warnColor.Sprint("unreachable:"), it)
	}
	if res.Route != nil {
		fmt.Fprintf(w, "%d item(s), %d steps\n", len(res.Items), res.Steps())
	}
}
