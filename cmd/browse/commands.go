package browse

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/LuigiBlood/dwarfone/pkg/dwarf1"
)

const defaultListCount = 20

func newListCmd(s *Session) *cobra.Command {
	return &cobra.Command{
		Use:     "list [from] [count]",
		Short:   "list entry headers",
		Aliases: []string{"l", "ls"},
		Args:    cobra.MaximumNArgs(2),
		Annotations: map[string]string{
			cmdGroupAnnotation: cmdGroupEntries,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			from, count := 0, defaultListCount
			var err error
			if len(args) > 0 {
				if from, err = strconv.Atoi(args[0]); err != nil || from < 0 {
					return errors.Errorf("invalid index: %s", args[0])
				}
			}
			if len(args) > 1 {
				if count, err = strconv.Atoi(args[1]); err != nil || count <= 0 {
					return errors.Errorf("invalid count: %s", args[1])
				}
			}
			if from >= len(s.entries) {
				return errors.Errorf("index %d out of range, %d entries", from, len(s.entries))
			}

			w := cmd.OutOrStdout()
			for i, e := range s.entries[from:min(from+count, len(s.entries))] {
				fmt.Fprintf(w, "%-6d%s\n", from+i, header(e))
			}
			return nil
		},
	}
}

func newShowCmd(s *Session) *cobra.Command {
	return &cobra.Command{
		Use:     "show <offset>",
		Short:   "show the entry at a section offset (hex)",
		Aliases: []string{"p", "print"},
		Args:    cobra.ExactArgs(1),
		Annotations: map[string]string{
			cmdGroupAnnotation: cmdGroupEntries,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			off, err := strconv.ParseUint(args[0], 16, 32)
			if err != nil {
				return errors.Errorf("invalid offset: %s", args[0])
			}
			for _, e := range s.entries {
				if e.Offset == uint32(off) {
					s.dumper.Entry(e)
					return nil
				}
			}
			return errors.Errorf("no entry at %#x", off)
		},
	}
}

func newFindCmd(s *Session) *cobra.Command {
	return &cobra.Command{
		Use:   "find <tag>",
		Short: "list entries with a tag, by name or code",
		Args:  cobra.ExactArgs(1),
		Annotations: map[string]string{
			cmdGroupAnnotation: cmdGroupEntries,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			match := func(t dwarf1.Tag) bool { return t.String() == args[0] }
			if code, err := strconv.ParseUint(args[0], 0, 16); err == nil {
				match = func(t dwarf1.Tag) bool { return t == dwarf1.Tag(code) }
			}

			w := cmd.OutOrStdout()
			found := 0
			for i, e := range s.entries {
				if e.Terminator || !match(e.Tag) {
					continue
				}
				fmt.Fprintf(w, "%-6d%s\n", i, header(e))
				found++
			}
			if found == 0 {
				return errors.Errorf("no entry with tag %s", args[0])
			}
			return nil
		},
	}
}

func newStatsCmd(s *Session) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "count entries per tag",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			cmdGroupAnnotation: cmdGroupInfo,
		},
		Run: func(cmd *cobra.Command, args []string) {
			var terminators, attrs, swapped int
			tags := map[string]int{}
			for _, e := range s.entries {
				if e.Terminator {
					terminators++
					continue
				}
				tags[e.Tag.String()]++
				attrs += len(e.Attrs)
				for _, a := range e.Attrs {
					if a.Swapped {
						swapped++
					}
				}
			}

			names := make([]string, 0, len(tags))
			for name := range tags {
				names = append(names, name)
			}
			sort.Strings(names)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "entries: %d (terminators: %d)\n", len(s.entries), terminators)
			fmt.Fprintf(w, "attributes: %d (byte swapped: %d)\n", attrs, swapped)
			for _, name := range names {
				fmt.Fprintf(w, "  %-24s%d\n", name, tags[name])
			}
		},
	}
}

func newExitCmd(s *Session) *cobra.Command {
	return &cobra.Command{
		Use:     "exit",
		Short:   "leave the browser",
		Aliases: []string{"quit", "q"},
		Annotations: map[string]string{
			cmdGroupAnnotation: cmdGroupOthers,
		},
		Run: func(cmd *cobra.Command, args []string) {
			s.Stop()
		},
	}
}
