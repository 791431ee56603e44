package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive board picker",
	Long: `Opens a menu listing the configured boards. Pick a board with the
arrow keys, choose a difficulty with left/right and press Enter to play.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationInteractive: "true"},
	RunE:        runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play the selected board in a window")
	menuCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable terminal colours")
}

func runMenu(cmd *cobra.Command, args []string) error {
	selection, cfg, err := tui.RunMenu(terminalConfig(), appConfig.Difficulty.Preset)
	if err != nil {
		return err
	}
	// User quit
	if selection == nil {
		return nil
	}
	return playBoard(selection.Item.GameID, selection.Difficulty, cfg)
}
