// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package quiz

import (
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/spot-the-bot/catalog"
	"github.com/danielhkuo/spot-the-bot/client"
	"github.com/danielhkuo/spot-the-bot/models"
	"github.com/danielhkuo/spot-the-bot/session"
)

// Display labels for the known truth sources. Anything outside the set
// falls back to a generic AI badge.
var sourceLabels = map[string]string{
	models.SourceHuman:   "Human",
	models.SourceChatGPT: "ChatGPT",
	models.SourceClaude:  "Claude",
	models.SourceGemini:  "Gemini",
}

// pollsOrder fixes the by-source listing so the polls view reads the
// same way every time regardless of map iteration.
var pollsOrder = []string{
	models.SourceHuman,
	models.SourceChatGPT,
	models.SourceClaude,
	models.SourceGemini,
}

// SourceLabel maps a truth source to its badge text.
func SourceLabel(source string) string {
	if label, ok := sourceLabels[source]; ok {
		return label
	}
	return "AI"
}

// Game runs one interactive quiz over a loaded catalog. It owns the
// current item and its guess lock; rendering goes to out.
type Game struct {
	picker  *catalog.Picker
	api     *client.Client
	session *session.Manager
	out     io.Writer
	now     func() time.Time

	current   *catalog.Item
	presented time.Time
	locked    bool
}

func NewGame(items []catalog.Item, api *client.Client, sess *session.Manager, out io.Writer) *Game {
	return &Game{
		picker:  catalog.NewPicker(items),
		api:     api,
		session: sess,
		out:     out,
		now:     time.Now,
	}
}

// Next advances to a fresh item and renders its passage. The guess lock
// is released so the new item can be answered.
func (g *Game) Next() {
	item := g.picker.Pick()
	if item == nil {
		fmt.Fprintln(g.out, "No items in the catalog.")
		return
	}
	g.current = item
	g.presented = g.now()
	g.locked = false

	fmt.Fprintln(g.out)
	if item.Title != "" {
		fmt.Fprintf(g.out, "%s — %s\n", item.Section, item.Title)
	} else {
		fmt.Fprintf(g.out, "%s\n", item.Section)
	}
	fmt.Fprintln(g.out)
	fmt.Fprintln(g.out, catalog.Normalize(item.Text))
	fmt.Fprintln(g.out)
	fmt.Fprintln(g.out, "Human or Bot? [h/b]")
}

// Guess resolves the current item: it locks further input, records the
// session tally, submits the vote best-effort, and renders the reveal.
// Guessing with no item up, or twice on the same item, is a no-op.
func (g *Game) Guess(ctx context.Context, guess string) {
	if g.current == nil {
		fmt.Fprintln(g.out, "No item up — pick one first.")
		return
	}
	if g.locked {
		fmt.Fprintln(g.out, "Already answered. Next item? [n]")
		return
	}
	if !models.ValidGuess(guess) {
		fmt.Fprintf(g.out, "Unknown guess %q — answer h or b.\n", guess)
		return
	}
	g.locked = true

	item := g.current
	elapsed := g.now().Sub(g.presented).Milliseconds()

	isBot := item.Truth.Source != models.SourceHuman
	correct := (guess == models.GuessBot) == isBot

	tally := g.session.RecordGuess(guess, correct)

	resp, err := g.api.SubmitVote(ctx, models.VoteRequest{
		ItemID:      item.ID,
		Guess:       guess,
		Section:     item.Section,
		TruthSource: item.Truth.Source,
		ClientID:    g.session.ClientID(),
		TimeMs:      &elapsed,
	})

	fmt.Fprintln(g.out)
	if correct {
		fmt.Fprintln(g.out, "Correct!")
	} else {
		fmt.Fprintln(g.out, "Not quite.")
	}

	label := SourceLabel(item.Truth.Source)
	if item.Truth.ModelDetail != "" {
		fmt.Fprintf(g.out, "Written by: %s (%s)\n", label, item.Truth.ModelDetail)
	} else {
		fmt.Fprintf(g.out, "Written by: %s\n", label)
	}

	if err != nil {
		fmt.Fprintln(g.out, "(vote service unreachable; your guess counted locally only)")
	} else {
		fmt.Fprintf(g.out, "%d%% of players guessed Bot on this one.\n", int(math.Round(resp.BotPercent)))
	}

	fmt.Fprintf(g.out, "Session: %d/%d correct\n", tally.Correct, tally.Total)
}

// RenderPolls fetches the global statistics and prints the polls view:
// overall totals, the per-source breakdown in a fixed order, and the
// per-item table sorted by item id.
func (g *Game) RenderPolls(ctx context.Context) error {
	stats, err := g.api.FetchStats(ctx)
	if err != nil {
		return fmt.Errorf("loading polls: %w", err)
	}

	fmt.Fprintln(g.out)
	fmt.Fprintf(g.out, "Total votes: %s (%s bot, %s human)\n",
		humanize.Comma(int64(stats.TotalVotes)),
		humanize.Comma(int64(stats.TotalBotGuesses)),
		humanize.Comma(int64(stats.TotalHumanGuesses)))

	fmt.Fprintln(g.out)
	fmt.Fprintln(g.out, "By source:")
	for _, source := range sourcesInOrder(stats.BySource) {
		s := stats.BySource[source] // zero value renders a zero row
		fmt.Fprintf(g.out, "  %-8s %s votes, %.1f%% guessed bot\n",
			SourceLabel(source), humanize.Comma(int64(s.Total)), s.BotPercent)
	}

	if len(stats.ByItem) == 0 {
		return nil
	}

	ids := make([]string, 0, len(stats.ByItem))
	for id := range stats.ByItem {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintln(g.out)
	w := tabwriter.NewWriter(g.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tSECTION\tSOURCE\tVOTES\tBOT%")
	for _, id := range ids {
		it := stats.ByItem[id]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1f\n",
			id, it.Section, SourceLabel(it.TruthSource), humanize.Comma(int64(it.Total)), it.BotPercent)
	}
	return w.Flush()
}

// RenderSession prints the current session tally.
func (g *Game) RenderSession() {
	t := g.session.Stats()
	fmt.Fprintln(g.out)
	if t.Total == 0 {
		fmt.Fprintln(g.out, "No guesses this session yet.")
		return
	}
	accuracy := float64(t.Correct) / float64(t.Total) * 100
	fmt.Fprintf(g.out, "Session: %d guesses, %d correct (%.0f%%)\n", t.Total, t.Correct, accuracy)
	fmt.Fprintf(g.out, "Said human %d times, bot %d times.\n", t.Human, t.Bot)
}

// Reset discards the session tally and rotates the session id.
func (g *Game) Reset() {
	g.session.Reset()
	fmt.Fprintln(g.out, "Session reset.")
}

// sourcesInOrder returns the known sources in their fixed order whether
// or not they have votes yet, then any unexpected sources sorted
// alphabetically.
func sourcesInOrder(bySource map[string]models.SourceStats) []string {
	out := make([]string, 0, len(pollsOrder)+len(bySource))
	seen := make(map[string]bool, len(pollsOrder))
	for _, s := range pollsOrder {
		out = append(out, s)
		seen[s] = true
	}
	var extra []string
	for s := range bySource {
		if !seen[s] {
			extra = append(extra, s)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}
