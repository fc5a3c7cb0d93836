package main

import (
	"fmt"
	"github.com/fatih/color"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/core/domain"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/profiles"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "Print the ICE profiles of an environment",
		Example: "ice-profiles list --environment genband",
		RunE:    runList,
	}
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	env, err := profiles.ParseEnvironment(cfg.Environment)
	if err != nil {
		return err
	}

	ps, err := profiles.NewTable().Configs(env)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "[ICE PROFILES: %s]\n", env)

	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	headers := []any{"NAME"}
	for _, key := range domain.ProfileKeys {
		headers = append(headers, key)
	}
	tbl := table.New(headers...)
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt).WithWriter(out)

	for _, p := range ps {
		row := []any{p.Name}
		for _, key := range domain.ProfileKeys {
			row = append(row, p.Data[key])
		}
		tbl.AddRow(row...)
	}

	tbl.Print()
	return nil
}
