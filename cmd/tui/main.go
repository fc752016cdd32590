package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jhoicas/foodhub/internal/application/menu"
	"github.com/jhoicas/foodhub/internal/domain/entity"
	"github.com/jhoicas/foodhub/internal/interfaces/tui"
	"github.com/jhoicas/foodhub/pkg/config"
	"github.com/jhoicas/foodhub/pkg/logger"
)

var (
	roleFlag    string
	logFileFlag string
)

var rootCmd = &cobra.Command{
	Use:   "foodhub-tui",
	Short: "FoodHub en la terminal",
	Long: `Carta, pedido y herramientas del chef en una interfaz de terminal.

Roles:
  - client: arma el pedido, filtra la carta y paga
  - chef:   edita, agrega y quita platos

Ejemplo:
  foodhub-tui --role chef --log-file foodhub.log`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&roleFlag, "role", "", "rol inicial (client | chef)")
	rootCmd.Flags().StringVar(&logFileFlag, "log-file", "", "archivo de log (por defecto LOG_FILE; vacío = sin log)")
}

func run(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	role, err := entity.ParseRole(roleFlag)
	if err != nil {
		return err
	}

	// La terminal la ocupa la interfaz: el log va a archivo o se descarta.
	log := logger.Nop()
	logPath := logFileFlag
	if logPath == "" {
		logPath = cfg.Log.File
	}
	if logPath != "" {
		f, err := logger.OpenFile(logPath)
		if err != nil {
			return err
		}
		defer f.Close()
		log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Out: f})
	}

	app := menu.NewModel(
		menu.WithCurrencySymbol(cfg.Menu.CurrencySymbol),
		menu.WithCascadeRemovals(cfg.Menu.CascadeRemovals),
	)
	app.SelectRole(role)
	log.Info().Str("role", string(role)).Msg("iniciando interfaz de terminal")

	p := tea.NewProgram(tui.New(app, tui.DefaultStyles(), log.Zerolog()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interfaz de terminal: %w", err)
	}
	log.Info().Msg("interfaz cerrada")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
