// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/danielhkuo/spot-the-bot/catalog"
	"github.com/danielhkuo/spot-the-bot/client"
	"github.com/danielhkuo/spot-the-bot/kv"
	"github.com/danielhkuo/spot-the-bot/models"
	"github.com/danielhkuo/spot-the-bot/quiz"
	"github.com/danielhkuo/spot-the-bot/session"
)

func main() {
	apiBase := flag.String("api", "http://localhost:8787", "Base URL of the vote service")
	dataSource := flag.String("data", "spot-the-bot-data.json", "Catalog source (file path or http(s) URL)")
	statePath := flag.String("state", "spot-the-bot-state.json", "Where client identity and session stats persist")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "play"
	}

	store, err := kv.NewFileStore(*statePath)
	if err != nil {
		slog.Error("Failed to open state file", "path", *statePath, "error", err)
		os.Exit(1)
	}

	sess := session.NewManager(store)
	api := client.New(*apiBase, nil)
	ctx := context.Background()

	switch command {
	case "play":
		items, err := catalog.Load(ctx, http.DefaultClient, *dataSource)
		if err != nil {
			slog.Error("Failed to load catalog", "source", *dataSource, "error", err)
			os.Exit(1)
		}
		play(ctx, items, api, sess)
	case "polls":
		g := quiz.NewGame(nil, api, sess, os.Stdout)
		if err := g.RenderPolls(ctx); err != nil {
			slog.Error("Failed to load polls", "error", err)
			os.Exit(1)
		}
	case "reset":
		quiz.NewGame(nil, api, sess, os.Stdout).Reset()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q (want play, polls, or reset)\n", command)
		os.Exit(2)
	}
}

// play runs the interactive loop on stdin until q or EOF.
func play(ctx context.Context, items []catalog.Item, api *client.Client, sess *session.Manager) {
	g := quiz.NewGame(items, api, sess, os.Stdout)

	fmt.Println("Spot the Bot — guess whether each passage was written by a human or a model.")
	fmt.Println("Keys: [h]uman  [b]ot  [n]ext  [p]olls  [s]ession  [r]eset  [q]uit")
	g.Next()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "h", models.GuessHuman:
			g.Guess(ctx, models.GuessHuman)
		case "b", models.GuessBot:
			g.Guess(ctx, models.GuessBot)
		case "n", "next", "":
			g.Next()
		case "p", "polls":
			if err := g.RenderPolls(ctx); err != nil {
				fmt.Println(err)
			}
		case "s", "session":
			g.RenderSession()
		case "r", "reset":
			g.Reset()
		case "q", "quit", "exit":
			return
		default:
			fmt.Println("Keys: [h]uman  [b]ot  [n]ext  [p]olls  [s]ession  [r]eset  [q]uit")
		}
	}
}
