package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sharedcode/redismodels/models"
)

func (a *app) hashCmd() *cobra.Command {
	getCmd := &cobra.Command{
		Use:   "get [key] [field]",
		Short: "Read a hash field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := models.NewHash(a.client, args[0]).Get(cmd.Context(), args[1]).Await(cmd.Context())
			return printValue(cmd, v, err)
		},
	}
	setCmd := &cobra.Command{
		Use:   "set [key] [field] [value]",
		Short: "Write a hash field",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := models.NewHash(a.client, args[0]).Set(cmd.Context(), args[1], args[2]).Await(cmd.Context())
			return printCount(cmd, n, err)
		},
	}
	getAllCmd := &cobra.Command{
		Use:   "getall [key]",
		Short: "Print every field=value of a hash, sorted by field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := models.NewHash(a.client, args[0]).GetAll(cmd.Context()).Await(cmd.Context())
			if err != nil {
				return err
			}
			fields := make([]string, 0, len(all))
			for f := range all {
				fields = append(fields, f)
			}
			for _, f := range sorted(fields) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", f, all[f])
			}
			return nil
		},
	}
	return a.group("hash", "Operate on Redis hashes", getCmd, setCmd, getAllCmd)
}
