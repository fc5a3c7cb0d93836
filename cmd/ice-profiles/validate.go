package main

import (
	"errors"
	"fmt"
	"github.com/fatih/color"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/core/services"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/profiles"
	"github.com/spf13/cobra"
)

var errInvalidProfiles = errors.New("invalid ICE profiles")

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "validate",
		Short:   "Check that every profile of every environment is usable by an ICE agent",
		Example: "ice-profiles validate",
		RunE:    runValidate,
	}
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}

	okFmt := color.New(color.FgGreen).SprintFunc()
	failFmt := color.New(color.FgRed).SprintFunc()
	out := cmd.OutOrStdout()

	tbl := profiles.NewTable()
	failed := false
	for _, env := range tbl.Environments() {
		ps, err := tbl.Configs(env)
		if err == nil {
			err = services.ValidateProfiles(ps)
		}
		if err != nil {
			failed = true
			fmt.Fprintf(out, "%s %s: %v\n", failFmt("FAIL"), env, err)
			continue
		}
		fmt.Fprintf(out, "%s %s (%d profiles)\n", okFmt("OK"), env, len(ps))
	}

	if failed {
		return errInvalidProfiles
	}
	return nil
}
