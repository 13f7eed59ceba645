package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/vanderheijden86/conceptscope/internal/datasource"
	"github.com/vanderheijden86/conceptscope/pkg/agents"
	"github.com/vanderheijden86/conceptscope/pkg/config"
	"github.com/vanderheijden86/conceptscope/pkg/debug"
	"github.com/vanderheijden86/conceptscope/pkg/export"
	"github.com/vanderheijden86/conceptscope/pkg/model"
	"github.com/vanderheijden86/conceptscope/pkg/surface"
	"github.com/vanderheijden86/conceptscope/pkg/ui"
	"github.com/vanderheijden86/conceptscope/pkg/version"
	"github.com/vanderheijden86/conceptscope/pkg/viz"
	"github.com/vanderheijden86/conceptscope/pkg/watcher"
)

func main() {
	topk := flag.Int("topk", 0, "Concepts shown per output context (0 = mode default)")
	snapshot := flag.String("snapshot", "", "Snapshot name inside a SQLite catalogue")
	exportPath := flag.String("export", "", "Write a static export (.html, .svg or .png) and exit")
	title := flag.String("title", "", "Title shown in the header and in exports")
	watch := flag.Bool("watch", false, "Reload the view when the snapshot file changes")
	noMouse := flag.Bool("no-mouse", false, "Disable mouse hover/click")
	help := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *help {
		fmt.Println("Usage: cv [options] [snapshot.json | snapshots.db | directory]")
		fmt.Println("\nAn interactive viewer for concept attribution snapshots.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("cv %s\n", version.Version)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	if *topk == 0 && cfg.UI.TopK > 0 {
		*topk = cfg.UI.TopK
	}

	path := flag.Arg(0)
	if path == "" {
		path = "."
	}

	snapshotName := *snapshot
	if snapshotName == "" && *exportPath == "" && agents.Interactive() {
		snapshotName = pickSnapshot(path)
	}

	data, srcPath, err := datasource.Load(path, snapshotName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		os.Exit(1)
	}
	debug.Log("loaded %s: %d concepts, %d sentences, %d outputs",
		srcPath, len(data.Concepts), len(data.Inputs), data.NumOutputs())

	vizOpts := vizOptionsFor(data, *topk)
	pageTitle := *title
	if pageTitle == "" {
		pageTitle = strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	}

	if *exportPath != "" {
		if err := runExport(data, vizOpts, *exportPath, pageTitle, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(*exportPath)
		return
	}

	if !agents.Interactive() {
		fmt.Fprintln(os.Stderr, "Not a terminal; use -export to produce a static artifact.")
		os.Exit(1)
	}

	var w *watcher.Watcher
	if *watch || cfg.Watch.Enabled {
		w, err = watcher.New(srcPath,
			watcher.WithForcePoll(cfg.Watch.ForcePoll),
			watcher.WithPollInterval(time.Duration(cfg.Watch.PollMillis)*time.Millisecond),
		)
		if err == nil {
			err = w.Start()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot watch %s: %v\n", srcPath, err)
			w = nil
		} else {
			defer w.Stop()
		}
	}

	m, err := ui.New(data, ui.Options{
		Title:      pageTitle,
		VizOptions: vizOpts,
		Config:     cfg,
		Watcher:    w,
		Reload: func() (*model.Dataset, error) {
			d, _, err := datasource.Load(path, snapshotName)
			return d, err
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building view: %v\n", err)
		os.Exit(1)
	}

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse && !*noMouse {
		progOpts = append(progOpts, tea.WithMouseAllMotion())
	}
	if _, err := tea.NewProgram(m, progOpts...).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// vizOptionsFor derives panel presence from the snapshot itself: an outputs
// section means the full concepts view, multiple concepts mean a class
// strip, a single concept means the plain highlight view.
func vizOptionsFor(d *model.Dataset, topk int) viz.Options {
	opts := viz.Options{InputsContainer: "inputs", TopK: topk}
	if d.Outputs != nil {
		opts.ConceptsContainer = "concepts"
		opts.OutputsContainer = "outputs"
	} else if len(d.Concepts) > 1 {
		opts.ConceptsContainer = "concepts"
	}
	return opts
}

// pickSnapshot offers a form when the path is a SQLite catalogue holding
// more than one snapshot. Any failure falls back to the newest snapshot.
func pickSnapshot(path string) string {
	infos, err := datasource.ListCatalogue(path)
	if err != nil || len(infos) < 2 {
		return ""
	}

	options := make([]huh.Option[string], 0, len(infos))
	for _, info := range infos {
		label := info.Name
		if !info.CreatedAt.IsZero() {
			label = fmt.Sprintf("%s (%s)", info.Name, info.CreatedAt.Format("2006-01-02 15:04"))
		}
		options = append(options, huh.NewOption(label, info.Name))
	}

	var picked string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Choose a snapshot").
			Options(options...).
			Value(&picked),
	))
	if err := form.Run(); err != nil {
		return ""
	}
	return picked
}

func runExport(data *model.Dataset, vizOpts viz.Options, path, title string, cfg config.Config) error {
	tree := surface.NewTree()
	view, err := viz.New(tree, data, vizOpts)
	if err != nil {
		return err
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		format = cfg.Export.Format
	}
	switch format {
	case "html":
		stats := model.Summary(data)
		return export.SaveHTML(path, view, export.HTMLOptions{Title: title, Stats: &stats})
	case "svg", "png":
		return export.SaveSnapshot(view, export.SnapshotOptions{Path: path, Format: format, Title: title})
	default:
		return fmt.Errorf("unsupported export format %q (want html, svg or png)", format)
	}
}
