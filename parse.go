package gridsheet

// TokenKind classifies a raw formula operand.
type TokenKind int

const (
	TokenMalformed TokenKind = iota // anything that is neither a number nor a label
	TokenNumber                     // digits only
	TokenLabel                      // one letter run, optionally followed by one digit run
)

func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "number"
	case TokenLabel:
		return "label"
	default:
		return "malformed"
	}
}

// Token is a classified formula operand.
type Token struct {
	Raw     string
	Kind    TokenKind
	Letters string // column part of a label
	Digits  string // row part of a label, or the whole number literal
}

// HasRow reports whether a label carries a numeric row part.
func (t Token) HasRow() bool {
	return t.Kind == TokenLabel && t.Digits != ""
}

// tokenizer states
const (
	stStart = iota
	stLetters
	stDigits      // digits following letters
	stLeadDigits  // digits with no letters before them
)

// ClassifyToken splits s into its letter and digit runs and classifies it.
// Accepted shapes are "123" (number) and "AB" or "AB12" (label); anything
// else, including several letter runs or digits followed by letters, is
// malformed.
func ClassifyToken(s string) Token {
	tok := Token{Raw: s, Kind: TokenMalformed}
	state := stStart
	split := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isLetter(c):
			switch state {
			case stStart, stLetters:
				state = stLetters
			default:
				return tok
			}
		case isDigit(c):
			switch state {
			case stStart:
				state = stLeadDigits
			case stLetters:
				state = stDigits
				split = i
			}
		default:
			return tok
		}
	}

	switch state {
	case stLeadDigits:
		tok.Kind = TokenNumber
		tok.Digits = s
	case stLetters:
		tok.Kind = TokenLabel
		tok.Letters = s
	case stDigits:
		tok.Kind = TokenLabel
		tok.Letters = s[:split]
		tok.Digits = s[split:]
	}
	return tok
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return true
}
