package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sharedcode/redismodels/models"
)

func (a *app) stringCmd() *cobra.Command {
	getCmd := &cobra.Command{
		Use:   "get [key]",
		Short: "Read a string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := models.NewString(a.client, args[0]).Get(cmd.Context()).Await(cmd.Context())
			return printValue(cmd, v, err)
		},
	}
	setCmd := &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Write a string",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := models.SetOptions{Timeout: a.v.GetDuration("ttl")}
			switch {
			case a.v.GetBool("nx"):
				opts.Condition = models.IfNotExists
			case a.v.GetBool("xx"):
				opts.Condition = models.IfExists
			}
			ok, err := models.NewString(a.client, args[0]).Set(cmd.Context(), args[1], opts).Await(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "(nil)")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
	setCmd.Flags().Duration("ttl", time.Duration(0), wrapHelp("expire the key after this duration, 0 keeps it forever"))
	setCmd.Flags().Bool("nx", false, wrapHelp("only set the key if it does not exist"))
	setCmd.Flags().Bool("xx", false, wrapHelp("only set the key if it already exists"))
	setCmd.MarkFlagsMutuallyExclusive("nx", "xx")

	return a.group("string", "Operate on Redis strings", getCmd, setCmd)
}
