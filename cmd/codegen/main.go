package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/brightparty/signals/cmd/codegen/templates"
)

const arityCountKey = "count"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed signal wrappers",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Highest signal arity to generate",
				Value: 4,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for typed signals started")
	defer func() {
		log.Printf("Codegen for typed signals finished in %v", time.Since(start))
	}()

	arityCount := int(cmd.Uint(arityCountKey))
	log.Printf("Arities: 1..%d", arityCount)

	contents := templates.TypedGen(arityCount)
	return os.WriteFile("typed/signals.go", []byte(contents), 0644)
}
