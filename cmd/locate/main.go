// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"cmp"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/locate/search"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "locate",
		Usage:     "Binary search a sorted collection for a target value",
		ArgsUsage: "[element ...] (use -- before negative numbers)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Element type (int, float, char, string)",
				Value:   "int",
			},
			&cli.StringFlag{
				Name:  "target",
				Usage: "Value to search for",
			},
			&cli.BoolFlag{
				Name:  "check-sorted",
				Usage: "Reject collections that are not in non-decreasing order",
				Value: true,
			},
		},
		Before: setupLogger,
		Action: locateCommand,
	}
}

func locateCommand(c *cli.Context) error {
	elems := c.Args().Slice()

	// Without input, search the sample collection
	if !c.IsSet("target") && len(elems) == 0 {
		return locateAndPrint(c, "a", []string{"a", "b", "c"}, charKind)
	}

	if !c.IsSet("target") {
		return fmt.Errorf("target is required")
	}

	r, err := kindByName(c.String("type"))
	if err != nil {
		return err
	}
	return r.run(c, c.String("target"), elems)
}

func locateAndPrint[T cmp.Ordered](c *cli.Context, rawTarget string, rawElems []string, k kind[T]) error {
	target, err := k.parse(rawTarget)
	if err != nil {
		return fmt.Errorf("invalid target: %w", err)
	}

	collection := make([]T, 0, len(rawElems))
	for _, raw := range rawElems {
		v, err := k.parse(raw)
		if err != nil {
			return fmt.Errorf("invalid element: %w", err)
		}
		collection = append(collection, v)
	}

	if c.Bool("check-sorted") {
		if err := search.ValidateSorted(collection); err != nil {
			return err
		}
	}

	engine, err := search.NewEngine[T](search.WithLogger(slog.Default()))
	if err != nil {
		return fmt.Errorf("failed to create search engine: %w", err)
	}

	out := c.App.Writer
	fmt.Fprintf(out, "Target: %s\n", k.format(target))
	fmt.Fprint(out, "Collection: ")
	for _, v := range collection {
		fmt.Fprintf(out, "%s, ", k.format(v))
	}
	fmt.Fprintln(out)

	if i, ok := engine.Locate(target, collection); ok {
		fmt.Fprintf(out, "Result: %s\n", k.format(collection[i]))
	} else {
		fmt.Fprintln(out, "Not found")
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
