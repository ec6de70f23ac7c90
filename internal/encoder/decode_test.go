package encoder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The decoder below exists only to verify encoder output.

var wireLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Trailer", Pattern: `a9a9a9a9a9`},
	{Name: "Sentinel", Pattern: `!`},
	{Name: "Dir", Pattern: `[lrud]`},
	{Name: "Digit", Pattern: `[0-9]`},
})

type wireCommand struct {
	Tokens  []*wireToken `parser:"'!' @@*"`
	Trailer string       `parser:"@Trailer"`
	Nonce   []string     `parser:"@Digit+"`
}

type wireToken struct {
	Dir   string `parser:"@Dir"`
	Count int    `parser:"@Digit"`
}

var wireParser = participle.MustBuild[wireCommand](participle.Lexer(wireLexer))

type decoded struct {
	Runs  []Run
	Nonce uint32
}

func directionFromByte(b byte) (Direction, error) {
	switch b {
	case 'l':
		return Left, nil
	case 'r':
		return Right, nil
	case 'u':
		return Up, nil
	case 'd':
		return Down, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", b)
	}
}

// decodeCommand reverses EncodeRuns. Full chunks ("x9") accumulate into the
// run that the next non-9 remainder token closes.
func decodeCommand(s string) (*decoded, error) {
	cmd, err := wireParser.ParseString("command", s)
	if err != nil {
		return nil, err
	}

	out := &decoded{}
	var (
		open  bool
		dir   Direction
		count int
	)
	for _, tok := range cmd.Tokens {
		d, err := directionFromByte(tok.Dir[0])
		if err != nil {
			return nil, err
		}
		if open && d != dir {
			return nil, fmt.Errorf("chunk of %s continued as %s", dir, d)
		}
		open, dir = true, d
		count += tok.Count
		if tok.Count != ChunkSize {
			out.Runs = append(out.Runs, Run{Dir: dir, Count: count})
			open, count = false, 0
		}
	}
	if open {
		return nil, fmt.Errorf("unterminated run of %s", dir)
	}

	digits := strings.Join(cmd.Nonce, "")
	if len(digits) > 10 || (len(digits) > 1 && digits[0] == '0') {
		return nil, fmt.Errorf("malformed nonce %q", digits)
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("nonce %q: %w", digits, err)
	}
	out.Nonce = uint32(n)
	return out, nil
}
