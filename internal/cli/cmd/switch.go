package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/duskd/internal/application/usecase"
	"github.com/bnema/duskd/internal/cli/styles"
	"github.com/bnema/duskd/internal/domain/entity"
	"github.com/bnema/duskd/internal/domain/service"
)

var switchCmd = &cobra.Command{
	Use:       "switch light|dark",
	Short:     "Apply a theme now",
	ValidArgs: []string{"light", "dark"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Long: `Switch applies the given theme through gsettings immediately.

A running daemon is not told about manual switches: the next battery,
unlock or resume event applies its own decision again.

Examples:
  duskd switch dark
  duskd switch light`,
	RunE: runSwitch,
}

func init() {
	rootCmd.AddCommand(switchCmd)
}

func runSwitch(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	theme, err := entity.ParseTheme(args[0])
	if err != nil {
		return err
	}

	uc := usecase.NewSwitchThemeUseCase(app.Applier, service.NewPostponeManager(), app.Themes)
	if err := uc.UpdateTheme(app.Ctx(), theme, entity.NewSwitchContext(entity.SwitchSourceManual)); err != nil {
		return fmt.Errorf("switch to %s: %w", theme, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", app.Theme.SuccessStyle.Render(styles.IconCheck), app.Theme.Normal.Render("Switched to "+theme.String()))
	return nil
}
