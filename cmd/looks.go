package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/shouni/gemini-cinema-kit/pkg/domain"

	"github.com/spf13/cobra"
)

// looksCmd は、利用可能なシネマティック・ルックの一覧を表示するサブコマンドです。
var looksCmd = &cobra.Command{
	Use:   "looks",
	Short: "利用可能なシネマティック・ルックを一覧表示します。",
	RunE:  looksCommand,
}

func looksCommand(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
	for _, look := range domain.Looks() {
		desc := look.Description
		if look.IsReference() {
			desc += " (--reference が必須)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", look.ID, look.Name, desc)
	}
	return w.Flush()
}
