package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	flag "github.com/spf13/pflag"

	llmmd "github.com/alnah/go-llmmd"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags, comma separated
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// sourceGlob matches the Markdown sources accepted as arguments.
const sourceGlob = "*.md,*.markdown"

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"engine":          {Values: llmmd.Engines()},
	"highlight-style": {Values: styles.Names()},
	"completion":      {Values: []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)}},

	// File flags with glob patterns
	"config": {FileGlob: "*.yaml,*.yml"},
	"style":  {FileGlob: "*.css"},
	"css":    {FileGlob: "*.css"},

	// Directory flags
	"output":     {IsDir: true},
	"asset-path": {IsDir: true},
}

// completionFlags returns the command flags enriched with completion metadata,
// sorted by long name.
func completionFlags() []flagDef {
	fs := newFlagSet(&convertFlags{})
	fs.SortFlags = true
	return extractFlagsFromFlagSet(fs)
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		// Determine base type from pflag type
		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		// Override type based on completion metadata
		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = append([]string(nil), meta.Values...)
				sort.Strings(fd.Values)
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	flags := completionFlags()

	var script string
	switch shell {
	case ShellBash:
		script = generateBash(flags)
	case ShellZsh:
		script = generateZsh(flags)
	case ShellFish:
		script = generateFish(flags)
	case ShellPowerShell:
		script = generatePowerShell(flags)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}

	_, err := io.WriteString(w, script)
	return err
}

// flagNames returns every spelling of fd, long form first.
func flagNames(fd flagDef) []string {
	names := []string{"--" + fd.Long}
	if fd.Short != "" {
		names = append(names, "-"+fd.Short)
	}
	return names
}

// globPatterns splits a comma separated glob list.
func globPatterns(glob string) []string {
	if glob == "" {
		return nil
	}
	return strings.Split(glob, ",")
}

func generateBash(flags []flagDef) string {
	var sb strings.Builder
	var all []string

	sb.WriteString("# bash completion for llmmd\n\n")
	sb.WriteString("_llmmd_completions() {\n")
	sb.WriteString("    local cur prev\n")
	sb.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	sb.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	sb.WriteString("    case \"$prev\" in\n")

	for _, fd := range flags {
		names := flagNames(fd)
		all = append(all, names...)
		pattern := strings.Join(names, "|")

		switch fd.Type {
		case flagEnum:
			fmt.Fprintf(&sb, "        %s)\n            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n            return\n            ;;\n",
				pattern, strings.Join(fd.Values, " "))
		case flagFile:
			fmt.Fprintf(&sb, "        %s)\n            COMPREPLY=($(compgen -f -- \"$cur\"))\n            return\n            ;;\n", pattern)
		case flagDir:
			fmt.Fprintf(&sb, "        %s)\n            COMPREPLY=($(compgen -d -- \"$cur\"))\n            return\n            ;;\n", pattern)
		case flagString, flagInt:
			fmt.Fprintf(&sb, "        %s)\n            return\n            ;;\n", pattern)
		}
	}

	sb.WriteString("    esac\n\n")
	sb.WriteString("    if [[ \"$cur\" == -* ]]; then\n")
	fmt.Fprintf(&sb, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(all, " "))
	sb.WriteString("        return\n")
	sb.WriteString("    fi\n\n")
	sb.WriteString("    COMPREPLY=($(compgen -f -- \"$cur\"))\n")
	sb.WriteString("}\n\n")
	sb.WriteString("complete -o filenames -F _llmmd_completions llmmd\n")

	return sb.String()
}

// zshEscape escapes a description for an _arguments spec.
func zshEscape(s string) string {
	r := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)
	return r.Replace(s)
}

func generateZsh(flags []flagDef) string {
	var sb strings.Builder

	sb.WriteString("#compdef llmmd\n\n")
	sb.WriteString("_llmmd() {\n")
	sb.WriteString("    _arguments -s \\\n")

	for _, fd := range flags {
		var spec string
		if fd.Short != "" {
			spec = fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]", fd.Short, fd.Long, fd.Short, fd.Long, zshEscape(fd.Desc))
		} else {
			spec = fmt.Sprintf("'--%s[%s]", fd.Long, zshEscape(fd.Desc))
		}

		switch fd.Type {
		case flagEnum:
			spec += fmt.Sprintf(":%s:(%s)", fd.Long, strings.Join(fd.Values, " "))
		case flagFile:
			var globs []string
			for _, g := range globPatterns(fd.FileGlob) {
				globs = append(globs, g+"(-.)")
			}
			spec += fmt.Sprintf(":file:_files -g \"%s\"", strings.Join(globs, " "))
		case flagDir:
			spec += ":directory:_files -/"
		case flagString, flagInt:
			spec += ":" + fd.Long + ":"
		}

		sb.WriteString("        " + spec + "' \\\n")
	}

	var sources []string
	for _, g := range globPatterns(sourceGlob) {
		sources = append(sources, g+"(-.)")
	}
	fmt.Fprintf(&sb, "        '*:markdown file:_files -g \"%s\"'\n", strings.Join(sources, " "))
	sb.WriteString("}\n\n")
	sb.WriteString("_llmmd \"$@\"\n")

	return sb.String()
}

// fishEscape escapes a description for a single-quoted fish string.
func fishEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s)
}

func generateFish(flags []flagDef) string {
	var sb strings.Builder

	sb.WriteString("# fish completion for llmmd\n\n")
	sb.WriteString("complete -c llmmd -f\n")

	for _, fd := range flags {
		sb.WriteString("complete -c llmmd")
		if fd.Short != "" {
			sb.WriteString(" -s " + fd.Short)
		}
		sb.WriteString(" -l " + fd.Long)
		sb.WriteString(" -d '" + fishEscape(fd.Desc) + "'")

		switch fd.Type {
		case flagEnum:
			sb.WriteString(" -x -a '" + strings.Join(fd.Values, " ") + "'")
		case flagFile:
			sb.WriteString(" -r -F")
		case flagDir:
			sb.WriteString(" -x -a '(__fish_complete_directories)'")
		case flagString, flagInt:
			sb.WriteString(" -x")
		}
		sb.WriteString("\n")
	}

	for _, g := range globPatterns(sourceGlob) {
		fmt.Fprintf(&sb, "complete -c llmmd -k -a '(__fish_complete_suffix %s)'\n", strings.TrimPrefix(g, "*"))
	}

	return sb.String()
}

// psEscape escapes a single-quoted PowerShell string.
func psEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func generatePowerShell(flags []flagDef) string {
	var sb strings.Builder

	sb.WriteString("# powershell completion for llmmd\n\n")
	sb.WriteString("Register-ArgumentCompleter -Native -CommandName llmmd -ScriptBlock {\n")
	sb.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	sb.WriteString("    $flags = @(\n")

	for _, fd := range flags {
		for _, name := range flagNames(fd) {
			fmt.Fprintf(&sb, "        @{ Name = '%s'; Desc = '%s' }\n", name, psEscape(fd.Desc))
		}
	}

	sb.WriteString("    )\n\n")
	sb.WriteString("    $flags | Where-Object { $_.Name -like \"$wordToComplete*\" } | ForEach-Object {\n")
	sb.WriteString("        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Desc)\n")
	sb.WriteString("    }\n")
	sb.WriteString("}\n")

	return sb.String()
}
