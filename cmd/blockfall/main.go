// Command blockfall plays the game locally in the terminal, with no
// server involved. The engine runs in-process against its own 60Hz
// clock and the shared high score file is honored.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/blockfall/blockfall/game/config"
	"github.com/blockfall/blockfall/game/engine"
	"github.com/blockfall/blockfall/game/session"
	"github.com/blockfall/blockfall/terminal"
)

func main() {
	cmd := &cli.Command{
		Name:  "blockfall",
		Usage: "play a falling-block game in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config-dir",
				Value: "configs",
				Usage: "directory containing rule configurations",
			},
			&cli.StringFlag{
				Name:  "config",
				Value: "",
				Usage: "rule configuration to play (defaults to classic)",
			},
			&cli.StringFlag{
				Name:  "highscore-file",
				Value: "highscore.txt",
				Usage: "file persisting the best score",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	configManager, err := config.NewManager(cmd.String("config-dir"))
	if err != nil {
		return fmt.Errorf("failed to load configurations: %w", err)
	}

	gameConfig := configManager.GetDefault()
	if name := cmd.String("config"); name != "" {
		gameConfig, err = configManager.LoadConfig(name)
		if err != nil {
			return fmt.Errorf("failed to load config %q: %w", name, err)
		}
	}

	eng, err := engine.NewEngine(gameConfig)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	eng.UseHighScoreStore(session.NewFileHighScoreStore(cmd.String("highscore-file")))

	client, err := terminal.NewClient(eng)
	if err != nil {
		return err
	}

	if err := client.Run(); err != nil {
		return err
	}

	score := eng.Score()
	fmt.Printf("Final score: %d (best %d)\n", score.Score, eng.HighScore())
	return nil
}
