package logic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/clipboard/internal/model"
)

// Usage strings, shown verbatim on malformed input and by help.
const (
	UsageSelect = "select: Views the item at the index number in the current displayed list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: select 1"
	UsageSelectStudent = "select student: Views the attendance of a student for the selected session.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: select student 2"
	UsageSession = "session: Views the sessions of the group at the index number.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: session 1"
	UsageBack = "back: Returns to the previous page.\n" +
		"Example: back"
	UsageHome = "home: Returns to the course page.\n" +
		"Example: home"
	UsageHelp = "help: Shows the list of commands.\n" +
		"Example: help"
	UsageExit = "exit: Saves and exits the program.\n" +
		"Example: exit"
	UsageAddCourse = "add course: Adds a course. Parameters: COURSE_CODE\n" +
		"Example: add course CS2103T"
	UsageAddGroup = "add group: Adds a group to the selected course. Parameters: GROUP_NAME\n" +
		"Example: add group T08\n" +
		"Note: Whitespaces are not allowed in the group name"
	UsageAddSession = "add session: Adds a session to the selected group. Parameters: SESSION_NAME\n" +
		"Example: add session Tutorial1\n" +
		"Note: Whitespaces are not allowed in the session name"
	UsageAddStudent = "add student: Adds a student to the selected group. " +
		"Parameters: n/NAME sid/STUDENT_ID [p/PHONE] [e/EMAIL]\n" +
		"Example: add student n/Alex Yeoh sid/A0123456X p/87438807 e/alexyeoh@example.com"
	UsageMark = "mark: Marks the selected student, or the student at the index number, as present.\n" +
		"Parameters: [INDEX] (must be a positive integer)\n" +
		"Example: mark 1"
	UsageUnmark = "unmark: Marks the selected student, or the student at the index number, as absent.\n" +
		"Parameters: [INDEX] (must be a positive integer)\n" +
		"Example: unmark 1"
	UsageAdd = "add: Adds an entity to the current page. Types: course, group, session, student\n" +
		"Example: add course CS2103T"
)

const messageInvalidIndex = "Index is not a non-zero unsigned integer."

// commandWords are the first words Parse accepts.
var commandWords = []string{"select", "session", "back", "home", "help", "exit", "add", "mark", "unmark"}

var usageByKind = map[Kind]string{
	KindSelect:               UsageSelect,
	KindSelectSessionStudent: UsageSelectStudent,
	KindOpenSessions:         UsageSession,
	KindBack:                 UsageBack,
	KindHome:                 UsageHome,
	KindHelp:                 UsageHelp,
	KindExit:                 UsageExit,
	KindAddCourse:            UsageAddCourse,
	KindAddGroup:             UsageAddGroup,
	KindAddStudent:           UsageAddStudent,
	KindAddSession:           UsageAddSession,
	KindMark:                 UsageMark,
	KindUnmark:               UsageUnmark,
}

// HelpMessage lists the usage of every command.
func HelpMessage() string {
	parts := make([]string, 0, len(Kinds))
	for _, k := range Kinds {
		parts = append(parts, usageByKind[k])
	}
	return strings.Join(parts, "\n\n")
}

// Parse turns one line of input into a Command. Malformed input fails with a
// *ParseError; entity fields that break a format rule fail with a
// *model.ConstraintViolation.
func Parse(input string) (Command, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return Command{}, invalidFormat(UsageHelp)
	}
	word, args := strings.ToLower(fields[0]), fields[1:]

	switch word {
	case "select":
		if len(args) == 2 && strings.EqualFold(args[0], "student") {
			idx, err := parseIndex(args[1], UsageSelectStudent)
			if err != nil {
				return Command{}, err
			}
			return NewSelectSessionStudent(idx), nil
		}
		idx, err := singleIndex(args, UsageSelect)
		if err != nil {
			return Command{}, err
		}
		return NewSelect(idx), nil
	case "session":
		idx, err := singleIndex(args, UsageSession)
		if err != nil {
			return Command{}, err
		}
		return NewOpenSessions(idx), nil
	case "back":
		return noArgs(args, NewBack(), UsageBack)
	case "home":
		return noArgs(args, NewHome(), UsageHome)
	case "help":
		return noArgs(args, NewHelp(), UsageHelp)
	case "exit":
		return noArgs(args, NewExit(), UsageExit)
	case "mark", "unmark":
		usage, build := UsageMark, NewMark
		if word == "unmark" {
			usage, build = UsageUnmark, NewUnmark
		}
		if len(args) == 0 {
			return build(NoIndex), nil
		}
		idx, err := singleIndex(args, usage)
		if err != nil {
			return Command{}, err
		}
		return build(idx), nil
	case "add":
		return parseAdd(args)
	}
	return Command{}, unknownCommand(word)
}

func parseAdd(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, invalidFormat(UsageAdd)
	}
	typeWord, rest := strings.ToLower(args[0]), args[1:]
	switch typeWord {
	case "course":
		if len(rest) != 1 {
			return Command{}, invalidFormat(UsageAddCourse)
		}
		c, err := model.NewCourse(strings.ToUpper(rest[0]))
		if err != nil {
			return Command{}, err
		}
		return NewAddCourse(c), nil
	case "group":
		if len(rest) != 1 {
			return Command{}, invalidFormat(UsageAddGroup)
		}
		g, err := model.NewGroup(rest[0])
		if err != nil {
			return Command{}, err
		}
		return NewAddGroup(g), nil
	case "session":
		if len(rest) != 1 {
			return Command{}, invalidFormat(UsageAddSession)
		}
		se, err := model.NewSession(rest[0])
		if err != nil {
			return Command{}, err
		}
		return NewAddSession(se), nil
	case "student":
		return parseAddStudent(rest)
	}
	return Command{}, &ParseError{Message: "Unrecognised category for command: " + args[0], Usage: UsageAdd}
}

func parseAddStudent(args []string) (Command, error) {
	values, preamble := tokenizePrefixed(args, "n/", "sid/", "p/", "e/")
	name, hasName := values["n/"]
	id, hasID := values["sid/"]
	if preamble != "" || !hasName || !hasID {
		return Command{}, invalidFormat(UsageAddStudent)
	}
	s, err := model.NewStudent(strings.ToUpper(id), name, values["p/"], values["e/"])
	if err != nil {
		return Command{}, err
	}
	return NewAddStudent(s), nil
}

// tokenizePrefixed splits words into values keyed by prefix, e.g.
// ["n/Alex", "Yeoh", "sid/A0123456X"] -> {"n/": "Alex Yeoh", "sid/": "A0123456X"}.
// A repeated prefix keeps the last value. Words before the first prefix are
// returned as the preamble.
func tokenizePrefixed(words []string, prefixes ...string) (map[string]string, string) {
	values := map[string]string{}
	var preamble []string
	current := ""
	var buf []string
	flush := func() {
		if current != "" {
			values[current] = strings.Join(buf, " ")
		}
	}
	for _, w := range words {
		matched := ""
		for _, p := range prefixes {
			if strings.HasPrefix(w, p) {
				matched = p
				break
			}
		}
		switch {
		case matched != "":
			flush()
			current = matched
			buf = buf[:0]
			if v := strings.TrimPrefix(w, matched); v != "" {
				buf = append(buf, v)
			}
		case current == "":
			preamble = append(preamble, w)
		default:
			buf = append(buf, w)
		}
	}
	flush()
	return values, strings.Join(preamble, " ")
}

func singleIndex(args []string, usage string) (int, error) {
	if len(args) != 1 {
		return 0, invalidFormat(usage)
	}
	return parseIndex(args[0], usage)
}

// parseIndex converts a one-based index to zero-based.
func parseIndex(s, usage string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, &ParseError{Message: messageInvalidIndex, Usage: usage}
	}
	return n - 1, nil
}

func noArgs(args []string, c Command, usage string) (Command, error) {
	if len(args) != 0 {
		return Command{}, invalidFormat(usage)
	}
	return c, nil
}

func unknownCommand(word string) *ParseError {
	best, bestDist := "", 3
	for _, w := range commandWords {
		if d := levenshtein.ComputeDistance(word, w); d < bestDist {
			best, bestDist = w, d
		}
	}
	if best == "" {
		return &ParseError{Message: "Unknown command"}
	}
	return &ParseError{Message: fmt.Sprintf("Unknown command. Did you mean %q?", best)}
}
