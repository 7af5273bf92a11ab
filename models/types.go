package models

// Guess values
const (
	GuessHuman = "human"
	GuessBot   = "bot"
)

// Known truth sources; the table is open-ended, these are the ones the
// client renders with a named badge
const (
	SourceHuman   = "human"
	SourceChatGPT = "chatgpt"
	SourceClaude  = "claude"
	SourceGemini  = "gemini"
)

// Vote submission outcomes
const (
	VoteStatusOK        = "ok"
	VoteStatusDuplicate = "duplicate"
)

// CooldownMillis is the window during which repeat votes on the same item
// by the same client are suppressed (24 hours).
const CooldownMillis = 24 * 60 * 60 * 1000

// Request types

type VoteRequest struct {
	ItemID      string `json:"item_id"`
	Guess       string `json:"guess"`
	Section     string `json:"section"`
	TruthSource string `json:"truth_source"`
	ClientID    string `json:"client_id"`
	TimeMs      *int64 `json:"time_ms,omitempty"`
}

// Response types

type VoteResponse struct {
	Status     string  `json:"status"`
	BotPercent float64 `json:"bot_percent"`
}

type StatsResponse struct {
	TotalVotes        int                    `json:"total_votes"`
	TotalBotGuesses   int                    `json:"total_bot_guesses"`
	TotalHumanGuesses int                    `json:"total_human_guesses"`
	BySource          map[string]SourceStats `json:"by_source"`
	ByItem            map[string]ItemStats   `json:"by_item"`
}

type SourceStats struct {
	Total      int     `json:"total"`
	BotGuesses int     `json:"bot_guesses"`
	BotPercent float64 `json:"bot_percent"`
}

type ItemStats struct {
	Section     string  `json:"section"`
	TruthSource string  `json:"truth_source"`
	Total       int     `json:"total"`
	BotGuesses  int     `json:"bot_guesses"`
	BotPercent  float64 `json:"bot_percent"`
}

// Domain types

type Vote struct {
	ID          string `json:"id"`
	ItemID      string `json:"item_id"`
	ClientID    string `json:"-"` // Never expose in JSON
	Guess       string `json:"guess"`
	Section     string `json:"section"`
	TruthSource string `json:"truth_source"`
	TimeMs      *int64 `json:"time_ms,omitempty"`
	CreatedAt   int64  `json:"created_at"` // epoch millis, server clock
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ValidGuess reports whether g is one of the two accepted guess values.
func ValidGuess(g string) bool {
	return g == GuessHuman || g == GuessBot
}
