package main

import (
	"fmt"
	"log/slog"
	"os"

	"Doodle/internal/config"
	"Doodle/internal/export"
	"Doodle/internal/gallery"
	"Doodle/internal/ui"

	"github.com/tdewolff/argp"
)

type Doodle struct {
	Config string `short:"c" default:"" desc:"Config file (default: $DOODLE_CONFIG or user config dir)"`
}

type Gallery struct {
	Config string `short:"c" default:"" desc:"Config file"`
}

type Export struct {
	Config string `short:"c" default:"" desc:"Config file"`
	Output string `short:"o" desc:"Output PDF file"`
	ID     int64  `index:"0" default:"0" desc:"Picture id as listed by gallery"`
}

func main() {
	root := argp.NewCmd(&Doodle{}, "Doodle: a freehand drawing pad that saves PNG pictures")
	root.AddCmd(&Gallery{}, "gallery", "List saved pictures")
	root.AddCmd(&Export{}, "export", "Export a saved picture as PDF")
	root.Parse()
	root.PrintHelp()
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	level, _ := cfg.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return cfg, nil
}

func (cmd *Doodle) Run() error {
	cfg, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}
	slog.Info("starting doodle", "album", cfg.AlbumDir())

	var indexer gallery.Indexer
	idx, err := gallery.OpenIndex(cfg.IndexPath)
	if err != nil {
		slog.Warn("media index unavailable, pictures will not be catalogued", "err", err)
	} else {
		defer idx.Close()
		indexer = idx
	}
	return ui.RunApp(cfg, indexer)
}

func (cmd *Gallery) Run() error {
	cfg, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}
	idx, err := gallery.OpenIndex(cfg.IndexPath)
	if err != nil {
		return err
	}
	defer idx.Close()

	entries, err := idx.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No pictures saved yet")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%4d  %s  %4dx%-4d  %s\n", e.ID, e.SavedAt.Local().Format("2006-01-02 15:04:05"), e.Width, e.Height, e.Path)
	}
	return nil
}

func (cmd *Export) Run() error {
	if cmd.ID <= 0 {
		return argp.ShowUsage
	} else if cmd.Output == "" {
		fmt.Println("ERROR: must specify output filename")
		return argp.ShowUsage
	}

	cfg, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}
	idx, err := gallery.OpenIndex(cfg.IndexPath)
	if err != nil {
		return err
	}
	defer idx.Close()

	e, err := idx.Lookup(cmd.ID)
	if err != nil {
		return err
	}
	if err := export.WritePDF(cmd.Output, e.Path); err != nil {
		return err
	}
	slog.Info("exported picture", "id", e.ID, "from", e.Path, "to", cmd.Output)
	return nil
}
