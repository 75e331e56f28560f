// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/shelfscope/internal/client"
	"github.com/pdiddy/shelfscope/internal/httputil"
	"github.com/pdiddy/shelfscope/internal/render"
	"github.com/pdiddy/shelfscope/pkg/types"
)

const browseHelp = `Type a search term to search once typing pauses. Commands:
  :go          search now and return to the first page
  :next        next page
  :prev        previous page
  :size N      change the page size
  :clear       clear the search
  :help        show this help
  :quit        exit`

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Search the gateway interactively with paging",
	Long: `Browse opens an interactive prompt. Each line you type becomes the search
term once input has been quiet for the debounce delay (2s by default). Use
:next and :prev to page and :size to change the page size.

` + browseHelp,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().String("gateway", "", "gateway base URL (default http://localhost:3300)")
	browseCmd.Flags().Duration("debounce", 0, "quiet period before a typed query is sent (default 2s)")
	browseCmd.Flags().Int("page-size", 0, "initial page size (default 10)")
	_ = viper.BindPFlag("client.gateway_url", browseCmd.Flags().Lookup("gateway"))
	_ = viper.BindPFlag("client.debounce", browseCmd.Flags().Lookup("debounce"))
	_ = viper.BindPFlag("client.page_size", browseCmd.Flags().Lookup("page-size"))

	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper(), loadedSecrets)
	if err != nil {
		return err
	}
	api := client.NewAPI(httputil.NewClient(cfg.Client.HTTPConfig), cfg.Client.GatewayURL)
	sess, err := client.NewSession(cmd.Context(), api, client.Options{
		Debounce:  cfg.Client.Debounce,
		PageSize:  cfg.Client.PageSize,
		PageSizes: cfg.Client.PageSizes,
	})
	if err != nil {
		return err
	}
	defer sess.Close()

	v := newViewer(cmd.OutOrStdout(), os.Stderr)
	defer v.close()
	sess.OnChange(v.update)
	v.update(sess.Snapshot())

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	history := historyPath()
	if f, err := os.Open(history); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	defer saveHistory(line, history)

	for {
		input, err := line.Prompt("shelfscope> ")
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		quit, msg := handleLine(sess, input)
		if msg != "" {
			fmt.Fprintln(cmd.OutOrStdout(), msg)
		}
		if quit {
			return nil
		}
	}
}

// handleLine applies one line of input to sess. It reports whether the
// user asked to quit and a message to print, if any.
func handleLine(sess *client.Session, input string) (bool, string) {
	if !strings.HasPrefix(input, ":") {
		sess.SetQuery(input)
		return false, ""
	}

	fields := strings.Fields(input)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return true, ""
	case ":go":
		sess.Submit()
	case ":next", ":n":
		if !sess.Next() {
			return false, "no next page"
		}
	case ":prev", ":p":
		if !sess.Prev() {
			return false, "already on the first page"
		}
	case ":size":
		if len(fields) != 2 {
			return false, "usage: :size N"
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return false, fmt.Sprintf("invalid page size %q", fields[1])
		}
		if err := sess.SetPageSize(n); err != nil {
			return false, err.Error()
		}
	case ":clear":
		sess.SetQuery("")
		sess.Submit()
	case ":help", ":h":
		return false, browseHelp
	default:
		return false, fmt.Sprintf("unknown command %s (try :help)", fields[0])
	}
	return false, ""
}

// viewer redraws the session whenever what it shows changes. A spinner runs
// while a fetch is outstanding.
type viewer struct {
	out     io.Writer
	spinOut io.Writer

	mu   sync.Mutex
	spin *render.Spinner
	last viewKey
	seen bool
}

// viewKey is the part of a State that affects what is drawn.
type viewKey struct {
	status   client.Status
	result   *types.SearchResult
	page     int
	pageSize int
}

func newViewer(out, spinOut io.Writer) *viewer {
	return &viewer{out: out, spinOut: spinOut}
}

func (v *viewer) update(st client.State) {
	v.mu.Lock()
	defer v.mu.Unlock()

	key := viewKey{status: st.Status, result: st.Result, page: st.Page, pageSize: st.PageSize}
	if v.seen && key == v.last {
		return
	}
	v.seen = true
	v.last = key

	if st.Status == client.StatusLoading {
		if v.spin == nil && v.spinOut != nil {
			v.spin = render.StartSpinner(v.spinOut, render.LoadingMessage)
		}
		return
	}
	v.stopSpinner()
	if err := render.Render(v.out, st); err != nil {
		logrus.WithError(err).Debug("rendering session")
	}
}

func (v *viewer) close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stopSpinner()
}

func (v *viewer) stopSpinner() {
	if v.spin != nil {
		v.spin.Stop()
		v.spin = nil
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".shelfscope_history"
	}
	return filepath.Join(home, ".shelfscope_history")
}

func saveHistory(line *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		logrus.WithError(err).Debug("saving history")
		return
	}
	defer f.Close()
	if _, err := line.WriteHistory(f); err != nil {
		logrus.WithError(err).Debug("saving history")
	}
}
