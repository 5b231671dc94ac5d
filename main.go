package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/beka-birhanu/forkmaze/config"
	"github.com/beka-birhanu/forkmaze/render"
	"github.com/beka-birhanu/forkmaze/service"
	"github.com/beka-birhanu/forkmaze/service/i"
)

// Global variables for dependencies
var (
	envs       config.Config
	renderer   i.Renderer
	mazeRunner *service.MazeRunner
	appLogger  *log.Logger
)

func initConfig() {
	var err error
	envs, err = config.Load()
	if err != nil {
		appLogger.Printf("%s[ERROR]%s loading configuration: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s configuration loaded", config.LogInfoColor, config.LogColorReset)
}

func initRenderer() {
	if !render.Fits(os.Stdout, envs.Width) {
		appLogger.Printf("%s[WARN]%s a %d column maze is wider than the terminal", config.LogWarnColor, config.LogColorReset, envs.Width)
	}
	renderer = render.NewTerminal(os.Stdout, render.ColorSupported(os.Stdout))
	appLogger.Printf("%s[INFO]%s renderer initialized", config.LogInfoColor, config.LogColorReset)
}

func initMazeRunner() {
	runnerLogger := log.New(os.Stdout, config.ColorCyan+"[MAZE-RUNNER] "+config.ColorReset, log.LstdFlags)

	var err error
	mazeRunner, err = service.NewMazeRunner(&service.Config{
		Width:     envs.Width,
		Height:    envs.Height,
		Fork:      envs.Fork(),
		Seed:      envs.Seed,
		Exit:      envs.Exit(),
		Animate:   envs.Animate,
		StepDelay: envs.StepDelay,
		Renderer:  renderer,
		Logger:    runnerLogger,
	})
	if err != nil {
		appLogger.Printf("%s[ERROR]%s creating maze runner: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s maze runner initialized", config.LogInfoColor, config.LogColorReset)
}

func main() {
	appLogger = log.New(os.Stdout, config.ColorGreen+"[APP] "+config.ColorReset, log.LstdFlags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	initConfig()
	initRenderer()
	initMazeRunner()

	result, err := mazeRunner.Run(ctx)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s running maze: %v", config.LogErrorColor, config.LogColorReset, err)
		stop()
		os.Exit(1)
	}

	fmt.Printf("Result: %v\n", result.Solution.Reached)
}
