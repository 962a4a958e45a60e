package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"benchplot/internal/history"
)

// executeCommand runs the CLI with the given args and returns captured
// output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags clears command flag state that persists between Execute calls.
func resetFlags() {
	plotCSV, plotOut = "", ""
	plotOnlySuccess, plotSave = false, false
	summaryCSV, summaryFormat = "", "table"
	summaryOnlySuccess = false
	checkCSV = ""
	checkOnlySuccess = false
	historyLimit = 20

	for _, c := range []*cobra.Command{plotCmd, summaryCmd, checkCmd, historyCmd} {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const sampleCSV = `timestamp,run,tool,target_id,elapsed_seconds,exit_code,notes
2024-01-01T10:00:00,1,EGAfetch,EGAD001,60,0,
2024-01-01T10:05:00,1,pyEGA3,EGAD001,180,0,
2024-01-01T11:00:00,2,EGAfetch,EGAD001,120,0,
2024-01-01T11:10:00,2,pyEGA3,EGAD001,240,0,
`

const multiTargetCSV = sampleCSV + `2024-01-02T10:00:00,1,EGAfetch,EGAD002,30,0,
2024-01-02T10:05:00,1,pyEGA3,EGAD002,90,0,
`

// mockHistoryStore records saved entries in memory.
type mockHistoryStore struct {
	saved  []history.Entry
	listed []history.Entry
}

func (m *mockHistoryStore) Close() error { return nil }

func (m *mockHistoryStore) SaveEntry(e history.Entry) error {
	m.saved = append(m.saved, e)
	return nil
}

func (m *mockHistoryStore) List(limit int) ([]history.Entry, error) {
	if limit < len(m.listed) {
		return m.listed[:limit], nil
	}
	return m.listed, nil
}

// withMockStore swaps the history store factory for the test's lifetime.
func withMockStore(t *testing.T, store *mockHistoryStore) {
	t.Helper()
	orig := newHistoryStore
	newHistoryStore = func(path string) (history.Store, error) { return store, nil }
	t.Cleanup(func() { newHistoryStore = orig })
}

// withMockViewer swaps the chart viewer for the test's lifetime, recording
// shown paths.
func withMockViewer(t *testing.T, shown *[]string) {
	t.Helper()
	orig := showChart
	showChart = func(path string) error {
		*shown = append(*shown, path)
		return nil
	}
	t.Cleanup(func() { showChart = orig })
}
