package main

import (
	"log"
	"os"

	"github.com/Skepar/lychen/internal/app"
	_ "github.com/Skepar/lychen/internal/patterns"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
)

func main() {
	cfg := app.NewConfig()
	parser := flaggy.NewParser("lychen")
	parser.Description = "Conway's Game of Life with live editing"
	parser.ShowHelpOnUnexpected = true
	cfg.Bind(parser)
	if err := parser.Parse(); err != nil {
		parser.ShowHelpAndExit(err.Error())
	}
	if err := cfg.Validate(); err != nil {
		parser.ShowHelpAndExit(err.Error())
	}

	logger, closer, err := cfg.Logger()
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	m := cfg.NewModel()
	switch cfg.Frontend {
	case app.FrontendHeadless:
		summary := app.RunHeadless(m, cfg.Generations, os.Stderr)
		summary.Print(os.Stdout, true)
		return
	case app.FrontendWindow:
		app.Help(os.Stdout, true)
		err = app.RunWindow(cfg, m, logger)
	default:
		err = app.RunTerminal(cfg, m, logger)
	}
	if err != nil {
		log.Fatalf("%s: %v", aurora.Red("lychen"), err)
	}
}
