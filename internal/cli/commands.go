package cli

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/itams/internal/asset"
	"github.com/JonMunkholm/itams/internal/prefs"
	"github.com/JonMunkholm/itams/internal/sheet"
	"github.com/JonMunkholm/itams/internal/view"
)

// =============================================================================
// Session
// =============================================================================

func (a *app) loginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return errors.New("password wajib diisi (-p atau stdin)")
				}
				password = strings.TrimRight(line, "\r\n")
			}

			screen := &view.LoginScreen{}
			if !screen.Submit(cmd.Context(), a.client, a.state, username, password) {
				return errors.New(screen.Error)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Login berhasil sebagai %s.\n", screen.Username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.state.ClearToken(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logout berhasil.")
			return nil
		},
	}
}

func (a *app) themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the display theme.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				next := prefs.ParseTheme(args[0])
				switch strings.ToLower(args[0]) {
				case "toggle":
					next = a.state.Theme().Toggle()
				case "light", "dark":
				default:
					return fmt.Errorf("tema tidak dikenal: %q", args[0])
				}
				if err := a.state.SetTheme(next); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.state.Theme())
			return nil
		},
	}
}

// =============================================================================
// Assets
// =============================================================================

func (a *app) listCmd() *cobra.Command {
	var category, search, unit string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assets, optionally narrowed by category, text and unit type.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}

			var c asset.Category
			if category != "" {
				parsed, err := asset.ParseCategory(category)
				if err != nil {
					return userError(err)
				}
				c = parsed
			}

			screen := view.NewListScreen(c, search, unit)
			if err := screen.Load(cmd.Context(), a.client); err != nil {
				return userError(err)
			}
			switch {
			case screen.Phase() == view.PhaseError:
				slog.Debug("list failed", "error", screen.Err())
				return errors.New(screen.Message())
			case len(screen.Visible) == 0:
				fmt.Fprintln(cmd.OutOrStdout(), screen.Message())
				return nil
			}
			return printAssets(cmd, screen.Visible)
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "category, e.g. \"Radio RIG\"")
	cmd.Flags().StringVarP(&search, "search", "s", "", "match name, serial number or model")
	cmd.Flags().StringVar(&unit, "unit", "", "unit type (Radio RIG only)")
	return cmd
}

func printAssets(cmd *cobra.Command, assets []asset.Asset) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tKATEGORI\tNAMA ASET\tMODEL\tSERIAL NUMBER\tSTATUS")
	for _, as := range assets {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			as.ID,
			as.Category,
			as.Display(asset.FieldName),
			as.Display(asset.FieldModel),
			as.Display(asset.FieldSerialNumber),
			as.Display(asset.FieldStatus),
		)
	}
	return tw.Flush()
}

// =============================================================================
// Reports
// =============================================================================

func (a *app) exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every asset to an .xlsx workbook.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}

			tmp, err := os.CreateTemp(filepath.Dir(output), ".itams-export-*.xlsx")
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			defer os.Remove(tmp.Name())

			n, err := (&view.ReportsScreen{}).Export(cmd.Context(), a.client, tmp)
			if cerr := tmp.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return userError(err)
			}
			if err := os.Rename(tmp.Name(), output); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d aset diekspor ke %s.\n", n, output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", sheet.ExportFileName, "output file")
	return cmd
}

func (a *app) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.xlsx>",
		Short: "Import assets from a workbook in one bulk request.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}

			screen := &view.ReportsScreen{}
			f, err := os.Open(args[0])
			if err != nil {
				screen.ReadFailed()
				return fmt.Errorf("%s: %w", screen.Status.Message, err)
			}
			defer f.Close()

			if err := screen.Import(cmd.Context(), a.client, f); err != nil {
				return userError(err)
			}
			if !screen.Status.Success {
				return errors.New(screen.Status.Message)
			}
			fmt.Fprintln(cmd.OutOrStdout(), screen.Status.Message)
			return nil
		},
	}
}
