package main

import (
	"fmt"
	"io"

	"swipe-lab/internal"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	inspectPrefix string
	inspectLimit  int

	inspectCmd = &cobra.Command{
		Use:   "inspect",
		Short: "List badger keys under a prefix, decoded",
		RunE:  runInspect,
	}
)

func init() {
	inspectCmd.Flags().StringVar(&inspectPrefix, "prefix", "chan:", "key prefix to scan (chan:, inflight:, profile:, swipe:, match:, seen:, notify:, photo:)")
	inspectCmd.Flags().IntVar(&inspectLimit, "limit", 200, "maximum rows")
}

func runInspect(cmd *cobra.Command, _ []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLogger(nil))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer db.Close()

	table := newTable(cmd.OutOrStdout(), []string{"Key", "Type", "Time", "Entity", "Namespace", "Detail", "Meta"})
	rows := 0
	err = db.View(func(txn *badger.Txn) error {
		prefix := []byte(inspectPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix) && rows < inspectLimit; it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				row := internal.RecordMapper(string(item.Key()), v)
				table.Append([]string{row.Key, row.Type, row.Timestamp, row.EntityID, row.Namespace, row.Detail, row.Meta})
				return nil
			})
			if err != nil {
				return err
			}
			rows++
		}
		return nil
	})
	if err != nil {
		return err
	}
	table.Render()
	return nil
}

func newTable(out io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
