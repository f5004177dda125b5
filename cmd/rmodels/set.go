package main

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/sharedcode/redismodels/models"
)

func (a *app) setCmd() *cobra.Command {
	membersCmd := &cobra.Command{
		Use:   "members [key]",
		Short: "Print the members of a set, sorted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := models.NewSet(a.client, args[0]).Members(cmd.Context()).Await(cmd.Context())
			if err != nil {
				return err
			}
			printLines(cmd.OutOrStdout(), sorted(m))
			return nil
		},
	}
	addCmd := &cobra.Command{
		Use:   "add [key] [value]",
		Short: "Add a member to a set",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := models.NewSet(a.client, args[0]).Add(cmd.Context(), args[1]).Await(cmd.Context())
			return printCount(cmd, n, err)
		},
	}
	removeCmd := &cobra.Command{
		Use:   "remove [key] [value]",
		Short: "Remove a member from a set",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := models.NewSet(a.client, args[0]).Remove(cmd.Context(), args[1]).Await(cmd.Context())
			return printCount(cmd, n, err)
		},
	}
	return a.group("set", "Operate on Redis sets", membersCmd, addCmd, removeCmd)
}

func sorted(s []string) []string {
	sort.Strings(s)
	return s
}
