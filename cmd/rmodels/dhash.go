package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sharedcode/redismodels/models"
)

func (a *app) dhashCmd() *cobra.Command {
	// fields/fields-inverted and get/get-inverted only differ in the side they read
	list := func(use, short string, inverted bool) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				dh := a.doubleHash()
				read := dh.Fields
				if inverted {
					read = dh.FieldsInverted
				}
				fields, err := read(cmd.Context())
				if err != nil {
					return err
				}
				printLines(cmd.OutOrStdout(), fields)
				return nil
			},
		}
	}
	get := func(use, short string, inverted bool) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				dh := a.doubleHash()
				members := dh.Get
				if inverted {
					members = dh.GetInverted
				}
				values, err := members(ctx, args[0]).Await(ctx)
				if err != nil {
					return err
				}
				printLines(cmd.OutOrStdout(), sorted(values))
				return nil
			},
		}
	}
	write := func(use, short string, nargs int, fn func(dh *models.DoubleHash, cmd *cobra.Command, args []string) error) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(nargs),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := fn(a.doubleHash(), cmd, args); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "OK")
				return nil
			},
		}
	}

	g := a.group("dhash", "Operate on a double hash (two-way field/value index)",
		list("fields", "List the fields", false),
		list("fields-inverted", "List the values (inverted fields)", true),
		get("get [field]", "List the values of a field", false),
		get("get-inverted [value]", "List the fields of a value", true),
		write("set [field] [value]", "Associate a value with a field", 2, func(dh *models.DoubleHash, cmd *cobra.Command, args []string) error {
			return dh.Set(cmd.Context(), args[0], args[1])
		}),
		write("set-inverted [value] [field]", "Associate a field with a value", 2, func(dh *models.DoubleHash, cmd *cobra.Command, args []string) error {
			return dh.SetInverted(cmd.Context(), args[0], args[1])
		}),
		write("unset [field] [value]", "Dissociate a value from a field", 2, func(dh *models.DoubleHash, cmd *cobra.Command, args []string) error {
			return dh.Unset(cmd.Context(), args[0], args[1])
		}),
		write("remove [field]", "Remove a field and all its associations", 1, func(dh *models.DoubleHash, cmd *cobra.Command, args []string) error {
			return dh.Remove(cmd.Context(), args[0])
		}),
		write("remove-inverted [value]", "Remove a value and all its associations", 1, func(dh *models.DoubleHash, cmd *cobra.Command, args []string) error {
			return dh.RemoveInverted(cmd.Context(), args[0])
		}),
		write("delete", "Delete the whole double hash", 0, func(dh *models.DoubleHash, cmd *cobra.Command, _ []string) error {
			return dh.Delete(cmd.Context())
		}),
	)
	g.PersistentFlags().String("key", "", wrapHelp("prefix of the forward sets"))
	g.PersistentFlags().String("inverse-key", "", wrapHelp("prefix of the inverse sets"))
	_ = g.MarkPersistentFlagRequired("key")
	_ = g.MarkPersistentFlagRequired("inverse-key")
	return g
}

func (a *app) doubleHash() *models.DoubleHash {
	return models.NewDoubleHash(a.client, a.v.GetString("key"), a.v.GetString("inverse-key"))
}
