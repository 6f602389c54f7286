// moviectl is a small command line front end over the client SDK.
//
// Usage:
//
//	moviectl [-server URL] [-stay] login <email> <password>
//	moviectl [-server URL] [-stay] signup <username> <email> <password>
//	moviectl [-server URL] movies
//	moviectl [-server URL] search <title>
//	moviectl [-server URL] like <movieID>
//	moviectl [-server URL] later <movieID>
//	moviectl [-server URL] liked
//	moviectl [-server URL] watchlist
//	moviectl [-server URL] profile
//	moviectl [-server URL] watch
//	moviectl [-server URL] logout
//
// Session state (cookie-backed profile mirror) is kept in the file named
// by CLIENT_STORE_PATH, so consecutive invocations share a login.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/muhammadumair512/movieweb/internal/client"
	"github.com/muhammadumair512/movieweb/internal/client/localstore"
	"github.com/muhammadumair512/movieweb/internal/config"
	"github.com/muhammadumair512/movieweb/internal/model"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := config.Load()

	server := flag.String("server", "http://localhost:"+cfg.Port, "API base URL")
	stay := flag.Bool("stay", false, "request a persistent session cookie")
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	store, err := localstore.Open(cfg.ClientStorePath)
	if err != nil {
		fatal(err)
	}
	defer store.Close()

	c, err := client.New(*server, store)
	if err != nil {
		fatal(err)
	}

	ctx := context.Background()
	args := flag.Args()

	// Every command except login/signup works off the stored profile.
	switch args[0] {
	case "login", "signup":
	default:
		if _, err := c.Resume(ctx); err != nil && !errors.Is(err, localstore.ErrNotFound) {
			fatal(err)
		}
	}

	if err := run(ctx, c, cfg, args, *stay); err != nil {
		fatal(err)
	}
}

func run(ctx context.Context, c *client.Client, cfg config.Config, args []string, stay bool) error {
	switch cmd := args[0]; cmd {
	case "login":
		if len(args) != 3 {
			return errors.New("usage: login <email> <password>")
		}
		u, err := c.Login(ctx, args[1], args[2], stay)
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s (%s)\n", u.Username, u.Email)
		return nil

	case "signup":
		if len(args) != 4 {
			return errors.New("usage: signup <username> <email> <password>")
		}
		u, err := c.Signup(ctx, model.User{
			Username: args[1],
			Email:    args[2],
			Password: args[3],
		}, stay)
		if err != nil {
			return err
		}
		fmt.Printf("account created for %s (%s)\n", u.Username, u.Email)
		return nil

	case "movies":
		movies, err := c.Movies(ctx)
		if err != nil {
			return err
		}
		printMovies(movies)
		return nil

	case "search":
		if len(args) != 2 {
			return errors.New("usage: search <title>")
		}
		movies, err := c.SearchMovies(ctx, args[1])
		if err != nil {
			return err
		}
		printMovies(movies)
		return nil

	case "like", "later":
		if len(args) != 2 {
			return errors.New("usage: " + cmd + " <movieID>")
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("movie id must be a number: %q", args[1])
		}
		toggle := c.ToggleLike
		if cmd == "later" {
			toggle = c.ToggleWatchLater
		}
		u, err := toggle(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("liked: %v\nwatch later: %v\n", u.LikedMovies, u.WatchLater)
		return nil

	case "liked":
		movies, err := c.LikedMovies(ctx)
		if err != nil {
			return err
		}
		printMovies(movies)
		return nil

	case "watchlist":
		movies, err := c.WatchLaterMovies(ctx)
		if err != nil {
			return err
		}
		printMovies(movies)
		return nil

	case "profile":
		u, err := c.RefreshProfile(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s>\nliked: %v\nwatch later: %v\n", u.Username, u.Email, u.LikedMovies, u.WatchLater)
		return nil

	case "watch":
		return watchSession(c, cfg)

	case "logout":
		if err := c.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// watchSession polls until the session is invalidated elsewhere or the
// process is interrupted.
func watchSession(c *client.Client, cfg config.Config) error {
	if !c.Authenticated() {
		return client.ErrNotAuthenticated
	}

	w := c.StartSessionWatch(cfg.PollInterval, func() {
		fmt.Println("session invalidated, logged out")
	})
	defer w.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	fmt.Printf("watching session every %s, ctrl-c to stop\n", cfg.PollInterval)
	select {
	case <-quit:
	case <-w.Done():
	}
	return nil
}

func printMovies(movies []model.Movie) {
	if len(movies) == 0 {
		fmt.Println("no movies")
		return
	}
	for _, m := range movies {
		fmt.Printf("%4d  %-30s %s\n", m.ID, m.Title, m.Category)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
