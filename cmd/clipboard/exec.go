package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/clipboard/internal/logic"
)

func newExecCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "exec [COMMAND]...",
		Short: "Run commands without the TUI, one per argument or per line of stdin",
		Example: `  clipboard exec "add course CS2103T" "select 1" "add group T08"
  printf 'select 1\nsession 1\n' | clipboard exec`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), *configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			in := cmd.InOrStdin()
			if len(args) > 0 {
				in = strings.NewReader(strings.Join(args, "\n"))
			}
			failed, err := runLines(cmd.Context(), s.logic, in, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d command(s) failed", failed)
			}
			return nil
		},
	}
}

// runLines executes one command per line of in, printing each result or
// error to out. Blank lines and lines starting with # are skipped. It stops
// after exit and returns the number of failed commands.
func runLines(ctx context.Context, l *logic.Logic, in io.Reader, out io.Writer) (int, error) {
	failed := 0
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res, err := l.Execute(ctx, line)
		if err != nil {
			failed++
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, res.Message)
		if res.Command.Kind == logic.KindExit {
			return failed, l.Save(ctx)
		}
	}
	return failed, sc.Err()
}
