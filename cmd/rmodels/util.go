package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sharedcode/redismodels/redis"
)

// helpWidth is the column flag help text is wrapped at.
const helpWidth = 50

// wrapHelp wraps text at helpWidth characters, breaking between words only.
func wrapHelp(text string) string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > helpWidth {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// printValue prints v, or (nil) when err is redis.Nil.
func printValue(cmd *cobra.Command, v string, err error) error {
	if redis.IsNil(err) {
		fmt.Fprintln(cmd.OutOrStdout(), "(nil)")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

func printLines(w io.Writer, lines []string) {
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}

func printCount(cmd *cobra.Command, n int64, err error) error {
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "(integer) %d\n", n)
	return nil
}
