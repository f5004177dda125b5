package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sharedcode/redismodels/models"
)

func (a *app) listCmd() *cobra.Command {
	rangeCmd := &cobra.Command{
		Use:   "range [key] [start] [stop]",
		Short: "Print the items between start and stop (inclusive, negative counts from the tail)",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, stop := int64(0), int64(-1)
			var err error
			if len(args) > 1 {
				if start, err = strconv.ParseInt(args[1], 10, 64); err != nil {
					return err
				}
			}
			if len(args) > 2 {
				if stop, err = strconv.ParseInt(args[2], 10, 64); err != nil {
					return err
				}
			}
			items, err := models.NewList(a.client, args[0]).Range(cmd.Context(), start, stop).Await(cmd.Context())
			if err != nil {
				return err
			}
			printLines(cmd.OutOrStdout(), items)
			return nil
		},
	}
	pushCmd := &cobra.Command{
		Use:   "push [key] [value...]",
		Short: "Push values onto the head of a list (--back for the tail)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := models.NewList(a.client, args[0])
			push := l.Push
			if a.v.GetBool("back") {
				push = l.PushBack
			}
			n, err := push(cmd.Context(), args[1:]...).Await(cmd.Context())
			return printCount(cmd, n, err)
		},
	}
	pushCmd.Flags().Bool("back", false, wrapHelp("append at the tail instead"))

	popCmd := &cobra.Command{
		Use:   "pop [key]",
		Short: "Pop the head of a list (--back for the tail)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := models.NewList(a.client, args[0])
			pop := l.Pop
			if a.v.GetBool("back") {
				pop = l.PopBack
			}
			v, err := pop(cmd.Context()).Await(cmd.Context())
			return printValue(cmd, v, err)
		},
	}
	popCmd.Flags().Bool("back", false, wrapHelp("pop the tail instead"))

	return a.group("list", "Operate on Redis lists", rangeCmd, pushCmd, popCmd)
}
