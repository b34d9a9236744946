package affix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lexigraph/spellkit/pkg/spellerr"
)

// FlagMode selects how flag identifiers are encoded in a dictionary's
// .dic flag strings, declared once per dictionary by the .aff FLAG
// keyword.
type FlagMode int

const (
	FlagChar FlagMode = iota // single ASCII character per flag
	FlagLong                 // fixed two-ASCII-character pairs
	FlagNum                  // comma-separated decimal integers
)

// File is the parsed result of a .aff source: encoding/try metadata plus
// the PFX/SFX rule tables, keyed by flag.
type File struct {
	Encoding string
	TryChars string
	FlagMode FlagMode
	Prefixes map[string][]*Rule
	Suffixes map[string][]*Rule
}

func (f *File) appendRule(typ Type, flag string, r *Rule) {
	if typ == Prefix {
		f.Prefixes[flag] = append(f.Prefixes[flag], r)
	} else {
		f.Suffixes[flag] = append(f.Suffixes[flag], r)
	}
}

// Parse reads a Hunspell .aff file. path is used only to annotate
// structured errors with a line reference; it need not be a real
// filesystem path. Unknown keywords (REP, MAP, COMPOUNDRULE,
// COMPOUNDWORDMIN, COMPOUNDFLAG, and anything else) are captured as
// no-ops, matching spec's "captured but unused" policy.
func Parse(r io.Reader, path string) (*File, error) {
	f := &File{
		Encoding: "UTF-8",
		Prefixes: make(map[string][]*Rule),
		Suffixes: make(map[string][]*Rule),
	}

	scanner := bufio.NewScanner(r)
	lineNum := 0

	type pendingSection struct {
		typ          Type
		flag         string
		crossProduct bool
		remaining    int
	}
	var pending *pendingSection

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if pending != nil && pending.remaining > 0 {
			fields := strings.Fields(line)
			if len(fields) < 4 {
				return nil, spellerr.BadFormat(path, lineNum, fmt.Sprintf("malformed %s rule body: %q", pending.typ, line))
			}
			// fields[0] is the keyword again (PFX/SFX), fields[1] the flag.
			strip := fields[2]
			if strip == "0" {
				strip = ""
			}
			add := fields[3]
			if add == "0" {
				add = ""
			}
			condPattern := "."
			if len(fields) >= 5 {
				condPattern = fields[4]
			}
			rule, err := NewRule(pending.typ, pending.flag, strip, add, condPattern, pending.crossProduct)
			if err != nil {
				return nil, spellerr.BadFormat(path, lineNum, err.Error())
			}
			f.appendRule(pending.typ, pending.flag, rule)
			pending.remaining--
			if pending.remaining == 0 {
				pending = nil
			}
			continue
		}

		fields := strings.Fields(line)
		keyword := fields[0]
		switch keyword {
		case "SET":
			if len(fields) >= 2 {
				f.Encoding = fields[1]
			}
		case "TRY":
			if len(fields) >= 2 {
				f.TryChars = fields[1]
			}
		case "FLAG":
			if len(fields) < 2 {
				return nil, spellerr.BadFormat(path, lineNum, "FLAG directive missing mode")
			}
			switch fields[1] {
			case "long":
				f.FlagMode = FlagLong
			case "num":
				f.FlagMode = FlagNum
			default:
				f.FlagMode = FlagChar
			}
		case "PFX", "SFX":
			if len(fields) < 4 {
				return nil, spellerr.BadFormat(path, lineNum, fmt.Sprintf("malformed %s header: %q", keyword, line))
			}
			flag := fields[1]
			crossProduct := fields[2] == "Y"
			count, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, spellerr.BadFormat(path, lineNum, fmt.Sprintf("bad rule count in %s header: %q", keyword, fields[3]))
			}
			typ := Prefix
			if keyword == "SFX" {
				typ = Suffix
			}
			if count > 0 {
				pending = &pendingSection{typ: typ, flag: flag, crossProduct: crossProduct, remaining: count}
			}
		default:
			// REP, MAP, COMPOUNDRULE, COMPOUNDWORDMIN, COMPOUNDFLAG, and any
			// other keyword we do not implement: captured as a no-op.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, spellerr.Runtime("failed reading affix file", err)
	}
	if pending != nil {
		return nil, spellerr.BadFormat(path, lineNum, fmt.Sprintf("%s %s header declared %d rules but file ended early", pending.typ, pending.flag, pending.remaining))
	}
	return f, nil
}

// DecodeFlagString splits a .dic flagstring into individual flag tokens
// according to mode: consecutive characters for FlagChar, consecutive
// pairs for FlagLong, comma-separated decimal integers for FlagNum.
func DecodeFlagString(mode FlagMode, flagstring string) ([]string, error) {
	if flagstring == "" {
		return nil, nil
	}
	switch mode {
	case FlagChar:
		runes := []rune(flagstring)
		flags := make([]string, len(runes))
		for i, r := range runes {
			flags[i] = string(r)
		}
		return flags, nil
	case FlagLong:
		runes := []rune(flagstring)
		if len(runes)%2 != 0 {
			return nil, fmt.Errorf("long-mode flagstring %q has odd length", flagstring)
		}
		flags := make([]string, 0, len(runes)/2)
		for i := 0; i < len(runes); i += 2 {
			flags = append(flags, string(runes[i:i+2]))
		}
		return flags, nil
	case FlagNum:
		parts := strings.Split(flagstring, ",")
		flags := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if _, err := strconv.Atoi(p); err != nil {
				return nil, fmt.Errorf("num-mode flag %q is not an integer", p)
			}
			flags = append(flags, p)
		}
		return flags, nil
	default:
		return nil, fmt.Errorf("unknown flag mode")
	}
}
