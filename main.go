package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"VectorBoard/internal/config"
	"VectorBoard/internal/logging"
	"VectorBoard/internal/render"
	"VectorBoard/internal/session"
	"VectorBoard/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	openPath := flag.String("open", "", "drawing to open at startup")
	exportPath := flag.String("export", "", "render the -open drawing to this PDF file and exit")
	verbose := flag.Bool("verbose", false, "log every stroke transition")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *verbose {
		cfg.Verbose = true
	}

	log, err := logging.New(cfg.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if *exportPath != "" {
		if err := runExport(cfg, log, *openPath, *exportPath); err != nil {
			log.Errorf("[MAIN] %v", err)
			os.Exit(1)
		}
		return
	}

	log.Infof("[MAIN] Starting VectorBoard %dx%d\n\n%s\n", cfg.Width, cfg.Height, session.Controls)
	if err := ui.RunApp(cfg, log, *openPath); err != nil {
		log.Errorf("[MAIN] %v", err)
		os.Exit(1)
	}
}

// runExport renders a saved drawing to PDF without opening a window.
func runExport(cfg config.Config, log *zap.SugaredLogger, openPath, pdfPath string) error {
	if openPath == "" {
		return errors.New("-export needs a drawing to render, pass it with -open")
	}
	s := session.New(render.NewRecorder(cfg.Width, cfg.Height), cfg, log)
	if err := s.OpenFile(openPath); err != nil {
		return err
	}
	return s.ExportPDF(pdfPath)
}
