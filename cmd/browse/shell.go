package browse

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"go.uber.org/atomic"

	"github.com/LuigiBlood/dwarfone/pkg/dump"
	"github.com/LuigiBlood/dwarfone/pkg/dwarf1"
)

const (
	cmdGroupAnnotation = "cmd_group_annotation"

	cmdGroupEntries = "1-entries"
	cmdGroupInfo    = "2-info"
	cmdGroupOthers  = "3-other"
	cmdGroupCobra   = "other"

	cmdGroupDelimiter = "-"

	prefix    = "dwarfone> "
	descShort = "dwarfone interactive browsing commands"
)

// Session is an interactive browser over decoded entries.
type Session struct {
	prefix string
	root   *cobra.Command
	liner  *liner.State
	last   string
	out    io.Writer

	entries []*dwarf1.Entry
	dumper  *dump.Dumper

	stopped  *atomic.Bool
	executed *atomic.Uint64
}

// NewSession returns a session browsing entries, writing to out.
func NewSession(entries []*dwarf1.Entry, out io.Writer, colored bool) *Session {
	s := &Session{
		prefix:   prefix,
		out:      out,
		entries:  entries,
		dumper:   dump.New(out, colored),
		stopped:  atomic.NewBool(false),
		executed: atomic.NewUint64(0),
	}

	root := &cobra.Command{
		Use:           "help [command]",
		Short:         descShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, cmd.Short)
		fmt.Fprintln(w)
		fmt.Fprintln(w, cmd.Use)
		fmt.Fprintln(w, helpMessageByGroups(cmd))
	})
	root.SetOut(out)
	root.SetErr(out)
	root.AddCommand(
		newListCmd(s),
		newShowCmd(s),
		newFindCmd(s),
		newStatsCmd(s),
		newExitCmd(s),
	)
	s.root = root
	return s
}

// Start reads commands until exit or end of input.
func (s *Session) Start() error {
	s.liner = liner.NewLiner()
	defer s.liner.Close()

	s.liner.SetCtrlCAborts(true)
	s.liner.SetCompleter(s.completer)
	s.liner.SetTabCompletionStyle(liner.TabPrints)

	for !s.stopped.Load() {
		txt, err := s.liner.Prompt(s.prefix)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if txt = strings.TrimSpace(txt); txt != "" {
			s.liner.AppendHistory(txt)
		}
		if err := s.Exec(txt); err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
		}
	}
	return nil
}

// Exec runs one command line. An empty line repeats the last command.
func (s *Session) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		line = s.last
	}
	if line == "" {
		return nil
	}
	s.last = line
	s.executed.Inc()

	s.root.SetArgs(strings.Fields(line))
	return s.root.Execute()
}

// Stop ends the command loop after the running command.
func (s *Session) Stop() {
	s.stopped.Store(true)
}

// Stopped reports whether exit has been requested.
func (s *Session) Stopped() bool {
	return s.stopped.Load()
}

// Executed returns the number of command lines run.
func (s *Session) Executed() uint64 {
	return s.executed.Load()
}

func (s *Session) completer(line string) []string {
	cmds := []string{}
	for _, c := range s.root.Commands() {
		if strings.HasPrefix(c.Use, line) {
			cmds = append(cmds, strings.Split(c.Use, " ")[0])
		}
		for _, alias := range c.Aliases {
			if strings.HasPrefix(alias, line) {
				cmds = append(cmds, alias)
			}
		}
	}
	return cmds
}

// helpMessageByGroups lists commands under their group annotation.
func helpMessageByGroups(cmd *cobra.Command) string {
	groups := map[string][]string{}
	for _, c := range cmd.Commands() {
		groupName, ok := c.Annotations[cmdGroupAnnotation]
		if !ok {
			groupName = cmdGroupCobra
		}
		groupCmds := append(groups[groupName], fmt.Sprintf("  %-16s:%s", c.Name(), c.Short))
		sort.Strings(groupCmds)
		groups[groupName] = groupCmds
	}

	if len(groups[cmdGroupCobra]) != 0 {
		groups[cmdGroupOthers] = append(groups[cmdGroupOthers], groups[cmdGroupCobra]...)
	}
	delete(groups, cmdGroupCobra)

	groupNames := []string{}
	for k := range groups {
		groupNames = append(groupNames, k)
	}
	sort.Strings(groupNames)

	buf := bytes.Buffer{}
	for _, groupName := range groupNames {
		group := strings.Split(groupName, cmdGroupDelimiter)[1]
		buf.WriteString(fmt.Sprintf("- [%s]\n", group))
		for _, cmd := range groups[groupName] {
			buf.WriteString(cmd + "\n")
		}
		buf.WriteString("\n")
	}
	return buf.String()
}

// header renders the one line summary of an entry.
func header(e *dwarf1.Entry) string {
	if e.Terminator {
		return fmt.Sprintf("%x: <%d>", e.Offset, e.Length)
	}
	return fmt.Sprintf("%x: <%d> %s (%d attributes)", e.Offset, e.Length, e.Tag, len(e.Attrs))
}
