package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/clipboard/internal/testdata"
)

func newSeedCmd(configPath *string) *cobra.Command {
	opts := testdata.DefaultOptions()
	var force bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the roster with generated sample courses, students and attendance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), *configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			if n := s.logic.Roster().Size(); n > 0 && !force {
				return fmt.Errorf("roster at %s already has %d course(s) (use --force to replace it)", s.store.Path(), n)
			}
			r, err := testdata.Roster(opts)
			if err != nil {
				return err
			}
			if err := s.store.Save(cmd.Context(), r); err != nil {
				return fmt.Errorf("save roster: %w", err)
			}
			s.log.Info("roster seeded", "path", s.store.Path(), "courses", r.Size())
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d course(s) into %s\n", r.Size(), s.store.Path())
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.Courses, "courses", opts.Courses, "number of courses")
	f.IntVar(&opts.Groups, "groups", opts.Groups, "groups per course")
	f.IntVar(&opts.Students, "students", opts.Students, "students per group")
	f.IntVar(&opts.Sessions, "sessions", opts.Sessions, "sessions per group")
	f.Uint64Var(&opts.Seed, "seed", opts.Seed, "random seed")
	f.BoolVar(&force, "force", false, "replace a non-empty roster")
	return cmd
}
